package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"verge/internal/adapters/tui/styles"
	"verge/internal/application"
	"verge/internal/application/commands"
	"verge/internal/domain"
	"verge/internal/ports"
)

// CatalogMode selects how the filtered gardens are shown
type CatalogMode int

const (
	ModeList CatalogMode = iota
	ModeMap
)

// CatalogKeyMap defines key bindings for the catalog view
type CatalogKeyMap struct {
	Up            key.Binding
	Down          key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	Open          key.Binding
	Search        key.Binding
	Filter        key.Binding
	Radius        key.Binding
	Locate        key.Binding
	ClearLocation key.Binding
	ToggleMap     key.Binding
	Copy          key.Binding
	Browse        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

var CatalogKeys = CatalogKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "type"),
	),
	Radius: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "radius"),
	),
	Locate: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "near me"),
	),
	ClearLocation: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear location"),
	),
	ToggleMap: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "list/map"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy coords"),
	),
	Browse: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open map"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SearchInputKeyMap defines the keys active while typing a search
type SearchInputKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

var SearchInputKeys = SearchInputKeyMap{
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}

// headerLines is the space the header, chips and help line take
const headerLines = 12

// CatalogModel is the garden browser: search, filter chips, radius,
// location and the card list or map
type CatalogModel struct {
	ViewState
	catalog *application.Catalog
	locator ports.Locator
	opener  ports.MapOpener
	logger  zerolog.Logger

	search    textinput.Model
	searching bool
	filter    domain.Filter
	gardens   []domain.Garden
	summary   string
	paginator *Paginator
	mode      CatalogMode
	locating  bool

	copyText func(string) error
}

// NewCatalogModel creates the catalog view
func NewCatalogModel(catalog *application.Catalog, locator ports.Locator, opener ports.MapOpener, logger zerolog.Logger) *CatalogModel {
	input := textinput.New()
	input.Placeholder = "Search gardens by name or location..."
	input.Prompt = "🔍 "
	input.CharLimit = 80

	m := &CatalogModel{
		catalog:   catalog,
		locator:   locator,
		opener:    opener,
		logger:    logger.With().Str("component", "tui").Logger(),
		search:    input,
		filter:    domain.NewFilter(),
		paginator: NewPaginator(3),
		copyText:  clipboard.WriteAll,
	}
	m.refresh()
	return m
}

// SetDefaultRadius sets the starting radius (ignored if not a radius choice)
func (m *CatalogModel) SetDefaultRadius(r float64) {
	if domain.ValidRadius(r) {
		m.filter.RadiusKm = r
		m.refresh()
	}
}

// Filter returns the current filter state
func (m *CatalogModel) Filter() domain.Filter {
	return m.filter
}

// Gardens returns the gardens currently passing the filter
func (m *CatalogModel) Gardens() []domain.Garden {
	return m.gardens
}

// Summary returns the results counter text
func (m *CatalogModel) Summary() string {
	return m.summary
}

// Mode returns whether the list or the map is shown
func (m *CatalogModel) Mode() CatalogMode {
	return m.mode
}

// Selected returns the garden under the cursor
func (m *CatalogModel) Selected() (domain.Garden, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.gardens) {
		return domain.Garden{}, false
	}
	return m.gardens[i], true
}

// SetSize updates the view dimensions and the number of cards per page
func (m *CatalogModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = max(m.ContentWidth()-4, 20)
	m.paginator.SetPageSize(PageSizeFor(height - headerLines))
}

// Init initializes the catalog view
func (m *CatalogModel) Init() tea.Cmd {
	return nil
}

// refresh re-runs the filter after any input change
func (m *CatalogModel) refresh() {
	m.filter.Query = m.search.Value()
	result, err := commands.NewFilterGardensCommand(m.catalog, m.filter).Execute(context.Background())
	if err != nil {
		m.SetError(err)
		return
	}
	m.gardens = result.Gardens
	m.summary = result.Summary
	m.paginator.SetTotal(len(m.gardens))
}

type locatedMsg struct {
	result *commands.LocateResult
}

type locateErrMsg struct {
	err error
}

func (m *CatalogModel) locate() tea.Cmd {
	locator := m.locator
	return func() tea.Msg {
		result, err := commands.NewLocateCommand(locator).Execute(context.Background())
		if err != nil {
			return locateErrMsg{err}
		}
		return locatedMsg{result}
	}
}

// Update handles messages for the catalog
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case locatedMsg:
		m.locating = false
		p := msg.result.Position
		m.filter.Near = &p
		m.SetMessage(msg.result.Message, false)
		m.logger.Debug().Str("position", p.String()).Msg("location found")
		m.refresh()
		return m, nil

	case locateErrMsg:
		m.locating = false
		m.SetError(msg.err)
		m.logger.Warn().Err(msg.err).Msg("location request failed")
		return m, nil

	case GardenUpdatedMsg:
		for i := range m.gardens {
			if m.gardens[i].ID == msg.Garden.ID {
				m.gardens[i] = msg.Garden
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *CatalogModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, SearchInputKeys.Done):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, SearchInputKeys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.paginator.Reset()
		m.refresh()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.paginator.Reset()
		m.refresh()
	}
	return m, cmd
}

func (m *CatalogModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, CatalogKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, CatalogKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, CatalogKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, CatalogKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, CatalogKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, CatalogKeys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, CatalogKeys.Filter):
		m.filter.Type = m.filter.Type.Next()
		m.paginator.Reset()
		m.refresh()

	case key.Matches(msg, CatalogKeys.Radius):
		m.filter.RadiusKm = domain.NextRadius(m.filter.RadiusKm)
		m.refresh()

	case key.Matches(msg, CatalogKeys.Locate):
		if m.locating {
			return m, nil
		}
		m.locating = true
		m.SetMessage("Locating...", false)
		return m, m.locate()

	case key.Matches(msg, CatalogKeys.ClearLocation):
		if m.filter.Near != nil {
			m.filter.Near = nil
			m.refresh()
		}

	case key.Matches(msg, CatalogKeys.ToggleMap):
		if m.mode == ModeList {
			m.mode = ModeMap
		} else {
			m.mode = ModeList
		}

	case key.Matches(msg, CatalogKeys.Copy):
		if g, ok := m.Selected(); ok {
			coords := g.Position().String()
			if err := m.copyText(coords); err != nil {
				m.SetMessage(fmt.Sprintf("Could not copy: %v", err), true)
			} else {
				m.SetMessage("Copied "+coords, false)
			}
		}

	case key.Matches(msg, CatalogKeys.Browse):
		if g, ok := m.Selected(); ok && m.opener != nil {
			if err := m.opener.Open(g.Position()); err != nil {
				m.SetError(err)
			} else {
				m.SetMessage("Opened "+m.opener.MapURL(g.Position()), false)
			}
		}

	case key.Matches(msg, CatalogKeys.Open):
		if g, ok := m.Selected(); ok {
			id := g.ID
			return m, func() tea.Msg {
				return SwitchToDetailMsg{GardenID: id}
			}
		}

	case key.Matches(msg, CatalogKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

// View renders the catalog
func (m *CatalogModel) View() string {
	v := NewViewBuilder()

	v.Raw(RenderTitle("Verge"))
	v.Line("")
	v.Line(RenderSubtitle("Community verge gardens and bioswales"))
	v.BlankLine()

	inputStyle := styles.InputField
	if m.searching {
		inputStyle = styles.InputFocused
	}
	v.Line(inputStyle.Render(m.search.View()))

	v.Line(m.renderChips() + "  " + m.renderRadius())
	if m.summary != "" {
		v.Muted(m.summary)
	}
	v.BlankLine()

	if m.mode == ModeMap {
		v.Line(RenderMap(m.gardens, m.paginator.Cursor(), m.ContentWidth(), max(m.Height-headerLines-8, 10)))
		if g, ok := m.Selected(); ok {
			v.Line(m.renderCard(g, true))
		}
	} else {
		v.Raw(m.renderList())
	}

	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	if m.searching {
		v.Help(SearchInputKeys.Done, SearchInputKeys.Cancel)
	} else {
		v.Help(CatalogKeys.Open, CatalogKeys.Search, CatalogKeys.Filter, CatalogKeys.Radius,
			CatalogKeys.Locate, CatalogKeys.ToggleMap, CatalogKeys.Copy, CatalogKeys.Help, CatalogKeys.Quit)
	}

	return v.String()
}

func (m *CatalogModel) renderChips() string {
	var chips []string
	for _, tf := range domain.TypeFilters {
		if tf == m.filter.Type {
			chips = append(chips, styles.ChipActive.Render(tf.Label()))
		} else {
			chips = append(chips, styles.Chip.Render(tf.Label()))
		}
	}
	return strings.Join(chips, " ")
}

func (m *CatalogModel) renderRadius() string {
	label := fmt.Sprintf("Radius %gkm", m.filter.RadiusKm)
	if m.filter.Near == nil {
		return RenderMuted(label + " (location off)")
	}
	return styles.InputLabel.Render(label)
}

func (m *CatalogModel) renderList() string {
	if len(m.gardens) == 0 {
		return RenderMuted("No gardens match your search.") + "\n"
	}

	var b strings.Builder
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(m.gardens[i], i == m.paginator.Cursor()))
		b.WriteString("\n")
	}
	if label := m.paginator.Label(); label != "" {
		b.WriteString(RenderMuted(label))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *CatalogModel) renderCard(g domain.Garden, selected bool) string {
	header := RenderTypeBadge(g.Type) + " " + RenderHealthBadge(g.Health) + " " + styles.CardTitle.Render(g.Name)
	if g.FloodRisk == domain.FloodHigh {
		header += " " + styles.FloodMarker.Render("⚠")
	}

	location := "📍 " + g.Location
	if m.filter.Near != nil {
		location += RenderMuted(fmt.Sprintf("  %.1f km away", domain.Distance(*m.filter.Near, g.Position())))
	}

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	width := max(m.ContentWidth()-2, 40)
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, header, location, RenderMetrics(g)))
}
