package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HealthScore maps the health category to the percentage shown on the
// health bar
func (g Garden) HealthScore() int {
	switch g.Health {
	case HealthGood:
		return 85
	case HealthFair:
		return 65
	case HealthPoor:
		return 35
	default:
		return 0
	}
}

// fullWaterDepth is the depth treated as 100% capacity
const fullWaterDepth = 20.0

// WaterCapacity estimates how full the site is, capped at 100%
func (g Garden) WaterCapacity() float64 {
	return min(g.WaterDepth/fullWaterDepth*100, 100)
}

// FloodBanner returns the headline and note shown for the flood risk
func (g Garden) FloodBanner() (headline, note string) {
	switch g.FloodRisk {
	case FloodHigh:
		return "High Flood Risk", "Consider drainage maintenance"
	case FloodMedium:
		return "Caution: Moderate Water Level", ""
	default:
		return "Safe Water Level", ""
	}
}

// TitleCase capitalises each word of a label ("needs attention" -> "Needs Attention")
func TitleCase(s string) string {
	// cases.Caser keeps state, so one per call
	return cases.Title(language.English).String(s)
}
