package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"nosh/internal/model"
)

const defaultEndpoint = "http://ip-api.com/json"

// Error is a classified location failure. Kind drives the user-facing
// message; Err keeps the underlying cause for the operator log.
type Error struct {
	Kind model.LocateFailure
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case model.LocateFailurePermissionDenied:
		return fmt.Sprintf("location permission denied: %v", e.Err)
	case model.LocateFailureUnavailable:
		return fmt.Sprintf("position unavailable: %v", e.Err)
	case model.LocateFailureTimeout:
		return fmt.Sprintf("location timed out: %v", e.Err)
	default:
		return fmt.Sprintf("location failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Client wraps a one-shot IP-geolocation lookup.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a geolocation client. An empty endpoint selects the
// default public service.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Supported reports whether location lookup is available. Callers must
// check it before Locate.
func (c *Client) Supported() bool {
	return c.endpoint != ""
}

// Locate acquires the device position once. Failures are always returned
// as a classified *Error.
func (c *Client) Locate(ctx context.Context) (model.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"?fields=status,message,lat,lon", nil)
	if err != nil {
		return model.Coordinates{}, &Error{Kind: model.LocateFailureUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Coordinates{}, &Error{Kind: classifyTransport(err), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests:
		return model.Coordinates{}, &Error{
			Kind: model.LocateFailurePermissionDenied,
			Err:  fmt.Errorf("geolocation service refused request: status %d", resp.StatusCode),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return model.Coordinates{}, &Error{
			Kind: model.LocateFailureUnknown,
			Err:  fmt.Errorf("geolocation service error: status %d", resp.StatusCode),
		}
	}

	var result positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.Coordinates{}, &Error{
			Kind: model.LocateFailureUnavailable,
			Err:  fmt.Errorf("JSON decode error: %w", err),
		}
	}

	if result.Status != "success" {
		return model.Coordinates{}, &Error{
			Kind: model.LocateFailureUnavailable,
			Err:  fmt.Errorf("no position fix: %s", result.Message),
		}
	}

	coords := model.Coordinates{Latitude: result.Lat, Longitude: result.Lon}
	if !coords.Valid() {
		return model.Coordinates{}, &Error{
			Kind: model.LocateFailureUnavailable,
			Err:  fmt.Errorf("coordinates out of range: %.4f, %.4f", result.Lat, result.Lon),
		}
	}

	return coords, nil
}

func classifyTransport(err error) model.LocateFailure {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.LocateFailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.LocateFailureTimeout
	}
	return model.LocateFailureUnknown
}

// API response type

type positionResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
