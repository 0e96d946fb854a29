package views

import "verge/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SetError shows err on the message line, or clears it when err is nil
func (s *ViewState) SetError(err error) {
	if err == nil {
		s.ClearMessage()
		return
	}
	s.SetMessage(err.Error(), true)
}

// ContentWidth is the usable width inside the app padding
func (s *ViewState) ContentWidth() int {
	if s.Width <= 4 {
		return 76
	}
	return s.Width - 4
}

// Shared messages for switching between views

// SwitchToCatalogMsg returns to the garden list
type SwitchToCatalogMsg struct{}

// SwitchToDetailMsg opens the detail view for a garden
type SwitchToDetailMsg struct {
	GardenID string
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// GardenUpdatedMsg tells the catalog a garden changed (a comment was added)
type GardenUpdatedMsg struct {
	Garden domain.Garden
}
