package main

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WeatherCmd struct {
	City []string `arg:"" optional:"" help:"City name"`
	JSON bool     `name:"json" help:"Print the raw response from the weather provider"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *WeatherCmd) Run(globals *Globals) error {
	weather, err := globals.weather()
	if err != nil {
		return err
	}

	city, err := banner.ValidateCity(strings.Join(cmd.City, " "))
	if err != nil {
		fmt.Println(show(globals, banner.Warning(banner.InvalidCity)).Render())
		return nil
	}

	// Print the raw response
	if cmd.JSON {
		response, err := weather.Current(globals.ctx, &weatherapi.CurrentWeatherRequest{Query: city})
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	// Look up the weather and print the reading with the answer the agent
	// would be given
	result := weather.Lookup(globals.ctx, city)
	globals.observe(result)
	fmt.Println(banner.Table(result))
	fmt.Println(show(globals, banner.New(result.String())).Render())
	return nil
}
