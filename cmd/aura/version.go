package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-aura/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}
