package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

// DefaultLookupURL is an IP geolocation endpoint answering with lat/lon JSON
const DefaultLookupURL = "http://ip-api.com/json/?fields=status,message,lat,lon"

// IPLookup estimates the position from the machine's public IP address.
// The fix is coarse (city level), so HighAccuracy cannot be honoured.
type IPLookup struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// Ensure IPLookup implements Locator
var _ ports.Locator = (*IPLookup)(nil)

// NewIPLookup creates a lookup against url (DefaultLookupURL when empty)
func NewIPLookup(url string, logger zerolog.Logger) *IPLookup {
	if url == "" {
		url = DefaultLookupURL
	}
	return &IPLookup{
		url:    url,
		client: &http.Client{},
		logger: logger.With().Str("component", "iplookup").Logger(),
	}
}

// lookupResponse accepts both the lat/lon and latitude/longitude spellings
type lookupResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Locate performs one request, bounded by opts.Timeout
func (l *IPLookup) Locate(ctx context.Context, opts ports.LocateOptions) (domain.Point, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return domain.Point{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "verge/1.0")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return domain.Point{}, &application.LocationError{Reason: "timeout expired"}
		}
		return domain.Point{}, &application.LocationError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	l.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("ip geolocation response")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Point{}, &application.LocationError{
			Reason: fmt.Sprintf("lookup returned status %d: %s", resp.StatusCode, body),
		}
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Point{}, &application.LocationError{Reason: fmt.Sprintf("malformed lookup response: %v", err)}
	}
	if out.Status != "" && out.Status != "success" {
		reason := out.Message
		if reason == "" {
			reason = out.Status
		}
		return domain.Point{}, &application.LocationError{Reason: reason}
	}

	lat, lng := out.Lat, out.Lon
	if lat == nil || lng == nil {
		lat, lng = out.Latitude, out.Longitude
	}
	if lat == nil || lng == nil {
		return domain.Point{}, &application.LocationError{Reason: "lookup response has no coordinates"}
	}

	return domain.Point{Lat: *lat, Lng: *lng}, nil
}
