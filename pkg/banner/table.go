package banner

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Table renders a lookup result as a table: the reading on success, or the
// outcome and error otherwise
func Table(result weatherapi.Result) string {
	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if result.Failed() {
		t.Headers("Outcome", "Error")
		t.Row(result.Outcome.String(), formatCell(result.Err))
	} else {
		t.Headers("City", "Temperature", "Condition")
		t.Row(
			formatCell(result.Reading.City),
			strconv.FormatFloat(result.Reading.TempC, 'f', -1, 64)+"°C",
			formatCell(result.Reading.Condition),
		)
	}

	// Only constrain to terminal width if the natural render exceeds it
	rendered := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		widest := 0
		for _, line := range strings.Split(rendered, "\n") {
			if n := len([]rune(line)); n > widest {
				widest = n
			}
		}
		if widest > w {
			t.Width(w)
			rendered = t.Render()
		}
	}
	return rendered
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// formatCell converts a value to a display string for a table cell
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case error:
		return val.Error()
	case string:
		if val == "" {
			return "-"
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}
