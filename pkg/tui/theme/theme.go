package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/daylist/pkg/glyph"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	List   ListTheme

	categories map[glyph.Category]lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ListTheme styles the rows of the day list.
type ListTheme struct {
	Date     lipgloss.Style
	Section  lipgloss.Style
	Time     lipgloss.Style
	Title    lipgloss.Style
	Rule     lipgloss.Style
	Selected lipgloss.Style
}

// Default returns the built-in theme. dark picks colors that read on a dark
// terminal background.
func Default(dark bool) Theme {
	pick := lipgloss.LightDark(dark)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		List: ListTheme{
			Date:     lipgloss.NewStyle().Bold(true).Underline(true),
			Section:  lipgloss.NewStyle().Bold(true),
			Time:     lipgloss.NewStyle().Foreground(pick(lipgloss.Color("240"), lipgloss.Color("244"))),
			Title:    lipgloss.NewStyle(),
			Rule:     lipgloss.NewStyle().Foreground(pick(lipgloss.Color("250"), lipgloss.Color("238"))),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		categories: categoryStyles(dark),
	}
}

// Category returns the header style for c.
func (t Theme) Category(c glyph.Category) lipgloss.Style {
	if s, ok := t.categories[c]; ok {
		return s
	}
	return lipgloss.NewStyle().Bold(true)
}

// categoryStyles spreads the categories evenly around the HCL hue wheel.
func categoryStyles(dark bool) map[glyph.Category]lipgloss.Style {
	cats := glyph.Categories()
	light := 0.45
	if dark {
		light = 0.75
	}
	styles := make(map[glyph.Category]lipgloss.Style, len(cats))
	for i, c := range cats {
		hue := 360 * float64(i) / float64(len(cats))
		styles[c] = lipgloss.NewStyle().Bold(true).Foreground(hcl(hue, 0.55, light))
	}
	return styles
}

func hcl(h, c, l float64) color.Color {
	return colorful.Hcl(h, c, l).Clamped()
}
