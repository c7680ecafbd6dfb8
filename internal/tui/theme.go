package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorBadgeFg = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"}
	colorDanger  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

var (
	styleOwner   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleNav     = lipgloss.NewStyle().Bold(true)
	styleBadge   = lipgloss.NewStyle().Bold(true).Foreground(colorBadgeFg)
	styleRule    = lipgloss.NewStyle().Foreground(colorBorder)
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleDismiss = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleCardFocused = styleCard.
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorAccent)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)
)
