package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"nosh/internal/model"
)

//go:embed messages.*.toml
var messageFS embed.FS

const defaultLanguage = "en"

// supported is the fixed language set, in picker order. English is the
// fallback for every unrecognized code.
var supported = []model.Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "fr", Name: "Français"},
	{Code: "ar", Name: "العربية"},
}

// UIText is the fixed set of display strings for one language. Resolve
// always returns it fully populated.
type UIText struct {
	Title             string
	Tagline           string
	FindButton        string
	SearchingText     string
	ManualPrompt      string
	ManualPlaceholder string
	ManualButton      string
	ResultsTitle      string
	NoResults         string
	Welcome           string
	LanguageLabel     string

	LocationNotSupported     string
	LocationPermissionDenied string
	LocationUnavailable      string
	LocationTimeout          string
	LocationError            string
	ManualLocationError      string
	FetchError               string
}

// ErrorText maps a session message key to its localized string.
func (t UIText) ErrorText(key string) string {
	switch key {
	case model.KeyLocationNotSupported:
		return t.LocationNotSupported
	case model.KeyLocationPermissionDenied:
		return t.LocationPermissionDenied
	case model.KeyLocationUnavailable:
		return t.LocationUnavailable
	case model.KeyLocationTimeout:
		return t.LocationTimeout
	case model.KeyLocationError:
		return t.LocationError
	case model.KeyManualLocationError:
		return t.ManualLocationError
	case model.KeyFetchError:
		return t.FetchError
	default:
		return key
	}
}

// Table resolves language codes to UI strings.
type Table struct {
	bundle *i18n.Bundle
}

// New loads the embedded message files into a bundle. The files ship with
// the binary, so a load failure is a build defect.
func New() *Table {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range supported {
		if _, err := bundle.LoadMessageFileFS(messageFS, fmt.Sprintf("messages.%s.toml", lang.Code)); err != nil {
			panic(fmt.Sprintf("i18n: load messages for %s: %v", lang.Code, err))
		}
	}
	return &Table{bundle: bundle}
}

// Languages returns the supported language set in picker order.
func (t *Table) Languages() []model.Language {
	langs := make([]model.Language, len(supported))
	copy(langs, supported)
	return langs
}

// Resolve returns the UI strings for a language code. It is total:
// unrecognized codes fall back to the default language field by field.
func (t *Table) Resolve(code string) UIText {
	loc := i18n.NewLocalizer(t.bundle, code, defaultLanguage)
	msg := func(id string) string {
		s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return id
		}
		return s
	}
	return UIText{
		Title:             msg("Title"),
		Tagline:           msg("Tagline"),
		FindButton:        msg("FindButton"),
		SearchingText:     msg("SearchingText"),
		ManualPrompt:      msg("ManualPrompt"),
		ManualPlaceholder: msg("ManualPlaceholder"),
		ManualButton:      msg("ManualButton"),
		ResultsTitle:      msg("ResultsTitle"),
		NoResults:         msg("NoResults"),
		Welcome:           msg("Welcome"),
		LanguageLabel:     msg("LanguageLabel"),

		LocationNotSupported:     msg("LocationNotSupported"),
		LocationPermissionDenied: msg("LocationPermissionDenied"),
		LocationUnavailable:      msg("LocationUnavailable"),
		LocationTimeout:          msg("LocationTimeout"),
		LocationError:            msg("LocationError"),
		ManualLocationError:      msg("ManualLocationError"),
		FetchError:               msg("FetchError"),
	}
}

// RightToLeft reports whether a language code renders right to left. It is
// a pure function of the code and is re-evaluated on every language change.
func RightToLeft(code string) bool {
	base, _, _ := strings.Cut(code, "-")
	return strings.EqualFold(base, "ar")
}
