package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"verge/internal/adapters/tui/views"
	"verge/internal/application"
	"verge/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCatalog ViewState = iota
	ViewDetail
	ViewHelp
)

// Deps are the adapters the TUI talks to. Locator and Opener may be nil.
type Deps struct {
	Catalog         *application.Catalog
	Locator         ports.Locator
	Authors         ports.AuthorResolver
	Opener          ports.MapOpener
	Logger          zerolog.Logger
	DefaultRadiusKm float64
}

// App is the main TUI application model
type App struct {
	state   ViewState
	catalog *views.CatalogModel
	detail  *views.DetailModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(d Deps) *App {
	catalog := views.NewCatalogModel(d.Catalog, d.Locator, d.Opener, d.Logger)
	if d.DefaultRadiusKm > 0 {
		catalog.SetDefaultRadius(d.DefaultRadiusKm)
	}

	return &App{
		state:   ViewCatalog,
		catalog: catalog,
		detail:  views.NewDetailModel(d.Catalog, d.Authors, d.Opener, d.Logger),
		help:    views.NewHelpModel(),
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.catalog.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.catalog.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToDetailMsg:
		if err := a.detail.SetGarden(msg.GardenID); err != nil {
			a.catalog.SetError(err)
			return a, nil
		}
		a.state = ViewDetail
		return a, a.detail.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToCatalogMsg:
		a.state = ViewCatalog
		return a, nil

	// Comments show up in the list as soon as they are added
	case views.GardenUpdatedMsg:
		_, cmd := a.catalog.Update(msg)
		return a, cmd
	}

	// Location results reach the catalog even after the user left it
	var bg tea.Cmd
	if a.state != ViewCatalog {
		if _, ok := msg.(tea.KeyMsg); !ok {
			_, bg = a.catalog.Update(msg)
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewCatalog:
		_, cmd = a.catalog.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, tea.Batch(bg, cmd)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.catalog.View()
	}
}
