package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nosh/internal/model"
)

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		name   string
		coords model.Coordinates
		want   bool
	}{
		{"origin", model.Coordinates{}, true},
		{"typical", model.Coordinates{Latitude: 37.77, Longitude: -122.42}, true},
		{"lat max", model.Coordinates{Latitude: 90, Longitude: 0}, true},
		{"lat min", model.Coordinates{Latitude: -90, Longitude: 0}, true},
		{"lon max", model.Coordinates{Latitude: 0, Longitude: 180}, true},
		{"lon min", model.Coordinates{Latitude: 0, Longitude: -180}, true},
		{"lat too high", model.Coordinates{Latitude: 90.01, Longitude: 0}, false},
		{"lat too low", model.Coordinates{Latitude: -91, Longitude: 0}, false},
		{"lon too high", model.Coordinates{Latitude: 0, Longitude: 181}, false},
		{"lon too low", model.Coordinates{Latitude: 0, Longitude: -180.5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coords.Valid())
		})
	}
}

func TestBeginSearchResetsSession(t *testing.T) {
	s := model.Session{
		Phase:       model.PhaseResults,
		Restaurants: []model.Restaurant{{Name: "Old", Cuisine: "Thai", Description: "stale"}},
		ErrorKey:    model.KeyFetchError,
		ShowManual:  true,
	}

	gen := s.BeginSearch()

	assert.Equal(t, 1, gen)
	assert.Equal(t, model.PhaseLoading, s.Phase)
	assert.Nil(t, s.Restaurants)
	assert.Empty(t, s.ErrorKey)
	assert.False(t, s.ShowManual)
}

func TestBeginSearchGenerationsAreMonotonic(t *testing.T) {
	var s model.Session
	first := s.BeginSearch()
	second := s.BeginSearch()
	third := s.BeginSearch()

	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
	assert.Equal(t, third, s.Gen)
}
