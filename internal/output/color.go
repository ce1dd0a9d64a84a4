package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles used by TextFormatter.
type Styles struct {
	Path      lipgloss.Style
	Position  lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style
	Notice    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. With force set it emits
// ANSI colors even when w is not a terminal.
func NewRenderer(w io.Writer, force bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

// NewStyles creates the default color styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Path:      r.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Position:  r.NewStyle().Foreground(lipgloss.Color("2")), // green
		Separator: r.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Match:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Notice:    r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

