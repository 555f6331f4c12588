package model

// Restaurant represents a single restaurant record returned by the search
// provider. Records are immutable and carry no identity beyond their fields.
type Restaurant struct {
	Name        string
	Cuisine     string
	Description string
}

// Coordinates represents a geographic position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinates are within range.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Language represents a supported display language.
type Language struct {
	Code string
	Name string
}

// LocateFailure classifies a failed location acquisition.
type LocateFailure int

const (
	LocateFailureUnknown LocateFailure = iota
	LocateFailurePermissionDenied
	LocateFailureUnavailable
	LocateFailureTimeout
)

// Phase represents the mutually exclusive primary UI state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseManualPrompt
	PhaseError
	PhaseResults
)

// Message keys resolved through the localization table. These are the only
// error strings the user ever sees; the underlying causes go to the log.
const (
	KeyLocationNotSupported     = "locationNotSupported"
	KeyLocationPermissionDenied = "locationPermissionDenied"
	KeyLocationUnavailable      = "locationUnavailable"
	KeyLocationTimeout          = "locationTimeout"
	KeyLocationError            = "locationError"
	KeyManualLocationError      = "manualLocationError"
	KeyFetchError               = "fetchError"
)

// Session is the single live search session owned by the orchestrator.
// Gen increments on every search start; completions stamped with an older
// generation are discarded.
type Session struct {
	Phase       Phase
	Restaurants []Restaurant
	ErrorKey    string
	ShowManual  bool
	Gen         int
}

// BeginSearch resets the session for a new request and returns the new
// generation. The reset happens synchronously, before any async call is
// dispatched, so stale results are never visible next to a fresh spinner.
func (s *Session) BeginSearch() int {
	s.Gen++
	s.Phase = PhaseLoading
	s.Restaurants = nil
	s.ErrorKey = ""
	s.ShowManual = false
	return s.Gen
}
