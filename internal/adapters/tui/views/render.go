package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"verge/internal/adapters/tui/styles"
	"verge/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderTitle renders a title with the standard title style
func RenderTitle(title string) string {
	return styles.Title.Render(title)
}

// RenderSubtitle renders a subtitle with the standard subtitle style
func RenderSubtitle(subtitle string) string {
	return styles.Subtitle.Render(subtitle)
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.InputLabel.Render(label+":"),
		value,
	)
}

// RenderTypeBadge renders the type label as a badge in the type color
func RenderTypeBadge(t domain.GardenType) string {
	return styles.Badge.Background(styles.TypeColor(t)).Render(t.Label())
}

// RenderHealthBadge renders the health level as a colored badge
func RenderHealthBadge(h domain.HealthLevel) string {
	return styles.Badge.Background(styles.HealthColor(h)).Render(domain.TitleCase(string(h)))
}

// RenderPlantBadge renders a plant status badge ("Needs Attention")
func RenderPlantBadge(s domain.PlantStatus) string {
	return styles.Badge.Background(styles.PlantStatusColor(s)).Render(domain.TitleCase(s.Label()))
}

// RenderFloodBanner renders the headline and optional note for a flood risk
func RenderFloodBanner(g domain.Garden) string {
	headline, note := g.FloodBanner()
	out := styles.FloodBanner(g.FloodRisk).Render(headline)
	if note != "" {
		out += " " + RenderMuted(note)
	}
	return out
}

// RenderBar draws a percentage bar of the given width
func RenderBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 20
	}
	percent = max(0, min(percent, 100))
	filled := int(percent / 100 * float64(width))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		styles.MutedText.Render(strings.Repeat("░", width-filled))
}

// RenderMetrics renders the moisture, pH and water depth line shown on cards
func RenderMetrics(g domain.Garden) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		RenderMuted("Moisture"), fmt.Sprintf("%g%%", g.SoilMoisture),
		RenderMuted("pH"), fmt.Sprintf("%g", g.PH),
		RenderMuted("Water"), fmt.Sprintf("%gmm", g.WaterDepth),
	)
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(RenderTitle(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(RenderSubtitle(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(RenderMuted(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}

// StringUnwrapped returns the built view string without app style wrapping
func (v *ViewBuilder) StringUnwrapped() string {
	return v.b.String()
}
