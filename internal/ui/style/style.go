// Package style provides the shared colours and icons of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Tilde   = "~"
)
