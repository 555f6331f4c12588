package util

import (
	"fmt"

	"nosh/internal/model"
)

// FormatCoordinates formats coordinates for display, e.g. "37.0000, -122.0000".
func FormatCoordinates(c model.Coordinates) string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
