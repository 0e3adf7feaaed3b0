package banner

import (
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	lipgloss "github.com/charmbracelet/lipgloss"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	infoStyle    = boxStyle("12") // blue
	successStyle = boxStyle("10") // green
	warningStyle = boxStyle("11") // yellow
	errorStyle   = boxStyle("9")  // red
)

func boxStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(color)).
		Padding(0, 1)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render draws the banner as a coloured box for terminal output
func (b Banner) Render() string {
	return b.Style.box().Render(strings.TrimSpace(b.Text))
}

// RenderMarkdown renders the banner text as markdown inside the box when
// stdout is a terminal, and falls back to Render otherwise
func (b Banner) RenderMarkdown() string {
	if !IsTerminal() {
		return b.Render()
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width()-4),
	)
	if err != nil {
		return b.Render()
	}
	out, err := r.Render(b.Text)
	if err != nil {
		return b.Render()
	}
	return b.Style.box().Render(strings.TrimSpace(out))
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s Style) box() lipgloss.Style {
	switch s {
	case StyleSuccess:
		return successStyle
	case StyleWarning:
		return warningStyle
	case StyleError:
		return errorStyle
	default:
		return infoStyle
	}
}

// width returns the terminal width, or 80 when unknown
func width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 80
}
