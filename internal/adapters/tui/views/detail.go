package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"verge/internal/adapters/tui/styles"
	"verge/internal/application"
	"verge/internal/application/commands"
	"verge/internal/domain"
	"verge/internal/ports"
)

// DetailFocus is the part of the detail view receiving keys
type DetailFocus int

const (
	FocusNone DetailFocus = iota
	FocusComment
	FocusReport
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Back    key.Binding
	Up      key.Binding
	Down    key.Binding
	Comment key.Binding
	Report  key.Binding
	Submit  key.Binding
	Browse  key.Binding
	Help    key.Binding
}

var DetailKeys = DetailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "h"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	Report: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "maintenance report"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Browse: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open map"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// FormKeyMap defines the keys active while a form has focus
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var FormKeys = FormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// DetailModel shows one garden: metrics, flood banner, plants, comments and
// the maintenance report form
type DetailModel struct {
	ViewState
	catalog *application.Catalog
	authors ports.AuthorResolver
	opener  ports.MapOpener
	logger  zerolog.Logger
	now     func() time.Time

	garden domain.Garden
	loaded bool
	focus  DetailFocus
	scroll int

	comment textarea.Model
	report  textarea.Model

	reportVisible   bool
	reportSubmitted bool
}

// NewDetailModel creates the detail view
func NewDetailModel(catalog *application.Catalog, authors ports.AuthorResolver, opener ports.MapOpener, logger zerolog.Logger) *DetailModel {
	comment := textarea.New()
	comment.Placeholder = "Add a note about planting, weeding, or observations..."
	comment.SetHeight(3)
	comment.ShowLineNumbers = false

	report := textarea.New()
	report.Placeholder = "Describe the maintenance issue or work completed..."
	report.SetHeight(4)
	report.ShowLineNumbers = false

	return &DetailModel{
		catalog: catalog,
		authors: authors,
		opener:  opener,
		logger:  logger.With().Str("component", "tui").Logger(),
		now:     time.Now,
		comment: comment,
		report:  report,
	}
}

// SetGarden loads the garden to show and resets the forms
func (m *DetailModel) SetGarden(id string) error {
	g, err := commands.NewGetGardenCommand(m.catalog, id).Execute(context.Background())
	if err != nil {
		m.loaded = false
		return err
	}
	m.garden = *g
	m.loaded = true
	m.focus = FocusNone
	m.scroll = 0
	m.reportVisible = false
	m.reportSubmitted = false
	m.comment.Reset()
	m.comment.Blur()
	m.report.Reset()
	m.report.Blur()
	m.ClearMessage()
	return nil
}

// Garden returns the garden being shown
func (m *DetailModel) Garden() domain.Garden {
	return m.garden
}

// Focus returns which form, if any, has focus
func (m *DetailModel) Focus() DetailFocus {
	return m.focus
}

// ReportVisible reports whether the maintenance form is open
func (m *DetailModel) ReportVisible() bool {
	return m.reportVisible
}

// ReportSubmitted reports whether the open form has been lodged
func (m *DetailModel) ReportSubmitted() bool {
	return m.reportSubmitted
}

// SetSize updates the view dimensions and the form widths
func (m *DetailModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	w := max(m.ContentWidth()-4, 30)
	m.comment.SetWidth(w)
	m.report.SetWidth(w)
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case FocusComment:
			return m.updateComment(msg)
		case FocusReport:
			return m.updateReport(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.reportSubmitted {
		// any key closes the confirmation
		m.reportSubmitted = false
		m.reportVisible = false
		m.ClearMessage()
		return m, nil
	}

	m.ClearMessage()

	switch {
	case key.Matches(msg, DetailKeys.Back):
		return m, func() tea.Msg {
			return SwitchToCatalogMsg{}
		}

	case key.Matches(msg, DetailKeys.Up):
		m.scroll = max(m.scroll-1, 0)

	case key.Matches(msg, DetailKeys.Down):
		m.scroll++

	case key.Matches(msg, DetailKeys.Comment):
		m.focus = FocusComment
		return m, m.comment.Focus()

	case key.Matches(msg, DetailKeys.Report):
		m.reportVisible = !m.reportVisible
		if m.reportVisible {
			m.focus = FocusReport
			return m, m.report.Focus()
		}

	case key.Matches(msg, DetailKeys.Browse):
		if m.opener != nil {
			if err := m.opener.Open(m.garden.Position()); err != nil {
				m.SetError(err)
			}
		}

	case key.Matches(msg, DetailKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *DetailModel) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FormKeys.Cancel):
		m.focus = FocusNone
		m.comment.Blur()
		return m, nil

	case key.Matches(msg, FormKeys.Submit):
		return m, m.submitComment()
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	return m, cmd
}

func (m *DetailModel) submitComment() tea.Cmd {
	result, err := commands.NewAddCommentCommand(m.catalog, m.authors, m.garden.ID, m.comment.Value()).
		WithClock(m.now).
		Execute(context.Background())
	if err != nil {
		m.SetError(err)
		return nil
	}

	m.focus = FocusNone
	m.comment.Blur()
	if !result.Added {
		m.SetMessage(result.Message, false)
		return nil
	}

	m.comment.Reset()
	m.garden = *result.Garden
	m.SetMessage(result.Message, false)
	m.logger.Info().Str("garden_id", m.garden.ID).Str("comment_id", result.Comment.ID).Msg("comment added")

	updated := m.garden
	return func() tea.Msg {
		return GardenUpdatedMsg{Garden: updated}
	}
}

func (m *DetailModel) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FormKeys.Cancel):
		m.focus = FocusNone
		m.reportVisible = false
		m.report.Blur()
		m.ClearMessage()
		return m, nil

	case key.Matches(msg, FormKeys.Submit):
		result, err := commands.NewLodgeReportCommand(m.catalog, m.garden.ID, m.report.Value()).Execute(context.Background())
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.focus = FocusNone
		m.report.Blur()
		m.report.Reset()
		m.reportSubmitted = true
		m.SetMessage(result.Message, false)
		m.logger.Info().Str("garden_id", m.garden.ID).Msg("maintenance report lodged")
		return m, nil
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

// View renders the detail view
func (m *DetailModel) View() string {
	if !m.loaded {
		return styles.App.Render(RenderMuted("No garden selected"))
	}

	v := NewViewBuilder()
	v.Raw(m.visibleBody())
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	switch {
	case m.focus != FocusNone:
		v.Help(FormKeys.Submit, FormKeys.Cancel)
	case m.reportSubmitted:
		v.Muted("Press any key to close")
	default:
		v.Help(DetailKeys.Back, DetailKeys.Down, DetailKeys.Comment, DetailKeys.Report, DetailKeys.Browse, DetailKeys.Help)
	}
	return v.String()
}

// visibleBody keeps the forms on screen and scrolls the rest
func (m *DetailModel) visibleBody() string {
	lines := strings.Split(m.renderBody(), "\n")
	if m.focus != FocusNone || m.Height <= 0 {
		return strings.Join(lines, "\n")
	}

	room := max(m.Height-6, 5)
	m.scroll = min(m.scroll, max(len(lines)-room, 0))
	end := min(m.scroll+room, len(lines))
	return strings.Join(lines[m.scroll:end], "\n")
}

func (m *DetailModel) renderBody() string {
	g := m.garden
	var b strings.Builder

	b.WriteString(RenderTitle(g.Name))
	b.WriteString("\n")
	b.WriteString("📍 " + g.Location + "  " + RenderTypeBadge(g.Type))
	b.WriteString("\n")
	b.WriteString(RenderMuted(g.Position().String()))
	b.WriteString("\n\n")

	// Health
	b.WriteString(styles.InputLabel.Render("Health Status"))
	b.WriteString("\n")
	score := g.HealthScore()
	b.WriteString(fmt.Sprintf("Overall Health %s %d%%\n", RenderBar(float64(score), 30, styles.HealthColor(g.Health)), score))
	b.WriteString(fmt.Sprintf("%s %g%%   %s %g   %s %gcm\n",
		RenderMuted("Soil Moisture"), g.SoilMoisture,
		RenderMuted("pH Level"), g.PH,
		RenderMuted("Water Depth"), g.WaterDepth,
	))
	b.WriteString("\n")

	// Flood
	b.WriteString(RenderFloodBanner(g))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Water level at %.0f%% capacity\n", g.WaterCapacity()))
	b.WriteString("\n")

	// Maintenance report
	if m.reportVisible {
		b.WriteString(styles.InputLabel.Render("Maintenance Report"))
		b.WriteString("\n")
		if m.reportSubmitted {
			b.WriteString(styles.Success.Render(commands.ReportLodgedMessage))
		} else {
			b.WriteString(m.report.View())
		}
		b.WriteString("\n\n")
	}
	if n := len(m.catalog.Reports(g.ID)); n > 0 {
		b.WriteString(RenderMuted(fmt.Sprintf("%d maintenance report(s) lodged this session", n)))
		b.WriteString("\n\n")
	}

	// Plants
	b.WriteString(styles.InputLabel.Render("Native Plants"))
	b.WriteString("\n")
	if len(g.Plants) == 0 {
		b.WriteString(RenderMuted("  No plants recorded"))
		b.WriteString("\n")
	}
	for _, p := range g.Plants {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", p.Name, styles.Subtitle.Render(p.ScientificName), RenderPlantBadge(p.Status)))
	}
	b.WriteString("\n")

	// Comments
	b.WriteString(styles.InputLabel.Render("Notes & Comments"))
	b.WriteString("\n")
	if m.focus == FocusComment {
		b.WriteString(m.comment.View())
		b.WriteString("\n")
	}
	if len(g.Comments) == 0 {
		b.WriteString(RenderMuted("  No comments yet"))
		b.WriteString("\n")
	}
	for _, c := range g.Comments {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", styles.CardTitle.Render(c.Author), RenderMuted(c.Date), RenderMuted("["+string(c.Type)+"]")))
		b.WriteString("  " + c.Content + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
