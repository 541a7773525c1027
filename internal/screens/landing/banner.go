package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/azzautomation2026/shama/internal/ui/layout"
	"github.com/azzautomation2026/shama/internal/ui/theme"
)

const bannerArt = ` ███████╗██╗  ██╗ █████╗ ███╗   ███╗ █████╗
 ██╔════╝██║  ██║██╔══██╗████╗ ████║██╔══██╗
 ███████╗███████║███████║██╔████╔██║███████║
 ╚════██║██╔══██║██╔══██║██║╚██╔╝██║██╔══██║
 ███████║██║  ██║██║  ██║██║ ╚═╝ ██║██║  ██║
 ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝`

const compactBanner = `Sham'a ✦ شمعة`

// RenderBanner renders the app banner, falling back to a single line on
// narrow terminals.
func RenderBanner(width int) string {
	if layout.IsCompactWidth(width) {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(compactBanner)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(bannerArt)
}
