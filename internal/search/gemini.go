package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nosh/internal/model"
)

const (
	geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.0-flash"
	maxResults    = 8
)

// ErrProvider is the generic search-provider failure. The orchestrator
// surfaces it uniformly; callers are not expected to distinguish causes.
var ErrProvider = errors.New("search provider failure")

// Client wraps the natural-language search provider.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search client. An empty baseURL selects the default
// provider endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = geminiAPIBase
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ByCoordinates searches for restaurants near a geographic position.
// Descriptions come back in the requested language.
func (c *Client) ByCoordinates(ctx context.Context, lat, lon float64, langCode string) ([]model.Restaurant, error) {
	prompt := fmt.Sprintf(
		"List up to %d real restaurants near latitude %.4f, longitude %.4f.",
		maxResults, lat, lon,
	)
	return c.generate(ctx, prompt, langCode)
}

// ByQuery searches for restaurants near a free-text location.
func (c *Client) ByQuery(ctx context.Context, place, langCode string) ([]model.Restaurant, error) {
	prompt := fmt.Sprintf("List up to %d real restaurants in or near %q.", maxResults, place)
	return c.generate(ctx, prompt, langCode)
}

func (c *Client) generate(ctx context.Context, prompt, langCode string) ([]model.Restaurant, error) {
	prompt += fmt.Sprintf(
		" Answer in the language with code %q."+
			" Respond only with a JSON array of objects, each with exactly"+
			" the string keys \"name\", \"cuisine\" and \"description\".",
		langCode,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrProvider, err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, geminiModel)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: request creation failed: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: network error: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: API error: status %d", ErrProvider, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: JSON decode error: %v", ErrProvider, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrProvider)
	}

	var records []restaurantRecord
	text := result.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, fmt.Errorf("%w: malformed result payload: %v", ErrProvider, err)
	}

	// A response either fully validates or the whole call fails; callers
	// never see partial records.
	restaurants := make([]model.Restaurant, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		cuisine := strings.TrimSpace(rec.Cuisine)
		description := strings.TrimSpace(rec.Description)
		if name == "" || cuisine == "" || description == "" {
			return nil, fmt.Errorf("%w: incomplete restaurant record at index %d", ErrProvider, i)
		}
		restaurants = append(restaurants, model.Restaurant{
			Name:        name,
			Cuisine:     cuisine,
			Description: description,
		})
	}

	return restaurants, nil
}

// API request/response types

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type restaurantRecord struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}
