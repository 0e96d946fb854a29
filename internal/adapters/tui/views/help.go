package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"verge/internal/adapters/tui/styles"
	"verge/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToCatalogMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Verge Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Community verge gardens and bioswales"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Browsing"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move between gardens"))
	b.WriteString(helpLine("Ctrl+F / Ctrl+B", "Next / previous page"))
	b.WriteString(helpLine("Enter", "Open garden details"))
	b.WriteString(helpLine("m", "Toggle list / map"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Filtering"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Search name or location"))
	b.WriteString(helpLine("Tab", "Cycle All Gardens / Verge Gardens / Bioswales"))
	b.WriteString(helpLine("r", "Cycle radius ("+domain.RadiusChoicesString()+" km)"))
	b.WriteString(helpLine("L", "Find gardens near me"))
	b.WriteString(helpLine("x", "Clear my location"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Garden"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy coordinates"))
	b.WriteString(helpLine("o", "Open in OpenStreetMap"))
	b.WriteString(helpLine("c", "Add a comment (detail view)"))
	b.WriteString(helpLine("R", "Report maintenance (detail view)"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
