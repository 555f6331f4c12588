package i18n_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nosh/internal/i18n"
	"nosh/internal/model"
)

func requireFullyPopulated(t *testing.T, text i18n.UIText) {
	t.Helper()
	v := reflect.ValueOf(text)
	for i := 0; i < v.NumField(); i++ {
		require.NotEmpty(t, v.Field(i).String(),
			"UIText.%s must never be empty", v.Type().Field(i).Name)
	}
}

func TestResolveIsTotal(t *testing.T) {
	table := i18n.New()

	codes := []string{"en", "es", "fr", "ar", "de", "zz", "", "en-US", "ar-SA", "nonsense"}
	for _, code := range codes {
		t.Run("code "+code, func(t *testing.T) {
			requireFullyPopulated(t, table.Resolve(code))
		})
	}
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	table := i18n.New()

	en := table.Resolve("en")
	unknown := table.Resolve("zz")
	assert.Equal(t, en, unknown)

	es := table.Resolve("es")
	assert.NotEqual(t, en.FindButton, es.FindButton)
}

func TestRightToLeft(t *testing.T) {
	assert.True(t, i18n.RightToLeft("ar"))
	assert.True(t, i18n.RightToLeft("ar-SA"))
	assert.False(t, i18n.RightToLeft("en"))
	assert.False(t, i18n.RightToLeft("es"))
	assert.False(t, i18n.RightToLeft("fr"))
	assert.False(t, i18n.RightToLeft(""))
	assert.False(t, i18n.RightToLeft("zz"))
}

func TestLanguages(t *testing.T) {
	table := i18n.New()

	langs := table.Languages()
	require.Len(t, langs, 4)
	assert.Equal(t, model.Language{Code: "en", Name: "English"}, langs[0])

	for _, lang := range langs {
		requireFullyPopulated(t, table.Resolve(lang.Code))
	}

	// The returned slice is a copy; mutating it must not affect the table.
	langs[0].Name = "mutated"
	assert.Equal(t, "English", table.Languages()[0].Name)
}

func TestErrorTextCoversAllKeys(t *testing.T) {
	text := i18n.New().Resolve("en")

	keys := []string{
		model.KeyLocationNotSupported,
		model.KeyLocationPermissionDenied,
		model.KeyLocationUnavailable,
		model.KeyLocationTimeout,
		model.KeyLocationError,
		model.KeyManualLocationError,
		model.KeyFetchError,
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		msg := text.ErrorText(key)
		assert.NotEmpty(t, msg, "key %s", key)
		assert.NotEqual(t, key, msg, "key %s must resolve to a localized string", key)
		assert.False(t, seen[msg], "message for %s duplicates another key", key)
		seen[msg] = true
	}

	// Unknown keys degrade to themselves rather than an empty banner.
	assert.Equal(t, "someKey", text.ErrorText("someKey"))
}
