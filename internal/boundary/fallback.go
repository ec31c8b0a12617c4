package boundary

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Actions names the keys offered by the default fallback. Empty entries are
// left out.
type Actions struct {
	Retry  string
	Home   string
	Reload string
}

var (
	fallbackBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#FF4D4F")).
				Padding(1, 2)
	fallbackTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	fallbackTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	fallbackErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	fallbackHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// DefaultFallback renders the "something went wrong" card.
func DefaultFallback(actions Actions, supportEmail string) Fallback {
	return func(err error, width int) string {
		lines := []string{
			fallbackTitleStyle.Render("Oops! Something went wrong"),
			"",
			fallbackTextStyle.Render("The page hit an unexpected error. You can try again, go home or reload."),
		}
		if err != nil {
			lines = append(lines, "", fallbackErrStyle.Render("Error: "+err.Error()))
		}
		var keys []string
		if actions.Retry != "" {
			keys = append(keys, actions.Retry+": try again")
		}
		if actions.Home != "" {
			keys = append(keys, actions.Home+": go home")
		}
		if actions.Reload != "" {
			keys = append(keys, actions.Reload+": reload")
		}
		if len(keys) > 0 {
			lines = append(lines, "", fallbackHelpStyle.Render(strings.Join(keys, "  ")))
		}
		if supportEmail != "" {
			lines = append(lines, "", fallbackTextStyle.Render("Need help? Contact "+supportEmail))
		}
		box := fallbackBoxStyle
		if width > 8 {
			inner := width - 4
			if inner > 72 {
				inner = 72
			}
			box = box.Width(inner)
		}
		return box.Render(strings.Join(lines, "\n"))
	}
}
