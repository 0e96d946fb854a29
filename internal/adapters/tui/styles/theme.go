package styles

import (
	"github.com/charmbracelet/lipgloss"

	"verge/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#15803D") // Garden green
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Garden type colors
	TypeVerge    = lipgloss.Color("#22C55E") // Green
	TypeBioswale = lipgloss.Color("#3B82F6") // Blue

	// Health colors
	HealthGood = lipgloss.Color("#16A34A")
	HealthFair = lipgloss.Color("#EAB308")
	HealthPoor = lipgloss.Color("#DC2626")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Card list
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true)

	Badge = lipgloss.NewStyle().
		Foreground(White).
		Bold(true).
		Padding(0, 1)

	// Filter chips
	Chip = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	ChipActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	// Flood banners
	FloodHighBanner = lipgloss.NewStyle().
			Background(Error).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	FloodMediumBanner = lipgloss.NewStyle().
				Background(Warning).
				Foreground(Black).
				Padding(0, 1)

	FloodLowBanner = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(White).
			Padding(0, 1)

	FloodMarker = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Map
	MapFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Muted)

	MapSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TypeColor returns the badge color for a garden type
func TypeColor(t domain.GardenType) lipgloss.Color {
	if t == domain.TypeBioswale {
		return TypeBioswale
	}
	return TypeVerge
}

// HealthColor returns the color for a health level
func HealthColor(h domain.HealthLevel) lipgloss.Color {
	switch h {
	case domain.HealthGood:
		return HealthGood
	case domain.HealthFair:
		return HealthFair
	case domain.HealthPoor:
		return HealthPoor
	default:
		return Muted
	}
}

// PlantStatusColor returns the badge color for a plant status
func PlantStatusColor(s domain.PlantStatus) lipgloss.Color {
	switch s {
	case domain.PlantHealthy:
		return HealthGood
	case domain.PlantNeedsAttention:
		return Warning
	case domain.PlantPoor:
		return HealthPoor
	default:
		return Muted
	}
}

// FloodBanner returns the banner style for a flood risk level
func FloodBanner(r domain.FloodRisk) lipgloss.Style {
	switch r {
	case domain.FloodHigh:
		return FloodHighBanner
	case domain.FloodMedium:
		return FloodMediumBanner
	default:
		return FloodLowBanner
	}
}
