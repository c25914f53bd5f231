package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2E7D32") // forest green
	colorAccent  = lipgloss.Color("#00897B") // teal
	colorWarn    = lipgloss.Color("#F9A825")
	colorError   = lipgloss.Color("#C62828")
	colorMuted   = lipgloss.Color("#888888")

	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginTop(1)

	subHeaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// statusStyle picks a style for badge-like values (stock status, compliance
// status, carbon footprint).
func statusStyle(value string) lipgloss.Style {
	switch value {
	case "In Stock", "Compliant", "Delivered", "Low", "Paid":
		return successStyle
	case "Low Stock", "Under Review", "In Transit", "Processing", "Medium", "Pending":
		return warnStyle
	case "Out of Stock", "Non-Compliant", "Cancelled", "High", "Refunded":
		return errorStyle
	}
	return mutedStyle
}
