package model

// Bubble Tea message types. Every async completion carries the generation
// of the request that produced it.

// LocatedMsg is sent when the device position has been acquired.
type LocatedMsg struct {
	Gen    int
	Coords Coordinates
}

// LocateFailedMsg is sent when location acquisition fails.
type LocateFailedMsg struct {
	Gen  int
	Kind LocateFailure
	Err  error
}

// RestaurantsFoundMsg is sent when a provider search completes.
type RestaurantsFoundMsg struct {
	Gen         int
	Restaurants []Restaurant
}

// SearchFailedMsg is sent when a provider search fails.
type SearchFailedMsg struct {
	Gen int
	Err error
}
