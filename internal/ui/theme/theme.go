package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, plus the navy used for table headers in exported PDFs.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Brand    = lipgloss.Color("#0a3854")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Warning and Success color the resolver's report lines.
	Warning = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)

	TabBar = lipgloss.NewStyle().Background(Brand).Foreground(Text)
)
