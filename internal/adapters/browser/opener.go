package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strconv"

	"verge/internal/domain"
	"verge/internal/ports"
)

// DefaultMapBase is the web map positions are opened on
const DefaultMapBase = "https://www.openstreetmap.org/"

// DefaultZoom is close enough to see the street a garden sits on
const DefaultZoom = 17

// Opener implements ports.MapOpener
type Opener struct {
	base string
	zoom int
}

// Ensure Opener implements MapOpener
var _ ports.MapOpener = (*Opener)(nil)

// NewOpener creates a new map opener for the given web map base URL
func NewOpener(base string, zoom int) *Opener {
	if base == "" {
		base = DefaultMapBase
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Opener{base: base, zoom: zoom}
}

// Open opens the position in the user's browser
func (o *Opener) Open(p domain.Point) error {
	return o.openURI(o.MapURL(p))
}

// MapURL builds a marker URL for p, e.g.
// https://www.openstreetmap.org/?mlat=-26.82&mlon=153.05#map=17/-26.82/153.05
func (o *Opener) MapURL(p domain.Point) string {
	lat := strconv.FormatFloat(p.Lat, 'f', -1, 64)
	lng := strconv.FormatFloat(p.Lng, 'f', -1, 64)

	q := url.Values{}
	q.Set("mlat", lat)
	q.Set("mlon", lng)

	return fmt.Sprintf("%s?%s#map=%d/%s/%s", o.base, q.Encode(), o.zoom, lat, lng)
}

func (o *Opener) openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
