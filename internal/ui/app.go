package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nosh/internal/i18n"
	"nosh/internal/location"
	"nosh/internal/model"
	"nosh/internal/util"
)

// Locator acquires the device position. Supported must be checked before
// Locate; calling Locate when unsupported is a caller error.
type Locator interface {
	Supported() bool
	Locate(ctx context.Context) (model.Coordinates, error)
}

// Searcher is the external restaurant-search boundary.
type Searcher interface {
	ByCoordinates(ctx context.Context, lat, lon float64, langCode string) ([]model.Restaurant, error)
	ByQuery(ctx context.Context, place, langCode string) ([]model.Restaurant, error)
}

// Model is the root Bubble Tea model. It owns the single live search
// session; all state changes happen on the program loop, either from a key
// handler or from an async completion message.
type Model struct {
	locator  Locator
	searcher Searcher
	table    *i18n.Table

	session  model.Session
	language model.Language
	text     i18n.UIText
	rtl      bool

	coords model.Coordinates
	hasFix bool

	manualInput textinput.Model
	spin        spinner.Model
	keys        KeyMap

	width       int
	height      int
	showingHelp bool
}

// New creates the root model. An unknown langCode falls back to the first
// supported language.
func New(locator Locator, searcher Searcher, table *i18n.Table, langCode string) Model {
	langs := table.Languages()
	lang := langs[0]
	for _, l := range langs {
		if l.Code == langCode {
			lang = l
			break
		}
	}

	in := textinput.New()
	in.CharLimit = 120
	in.Prompt = "where> "

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(SpinnerStyle),
	)

	m := Model{
		locator:     locator,
		searcher:    searcher,
		table:       table,
		manualInput: in,
		spin:        sp,
		keys:        DefaultKeyMap(),
	}
	m.setLanguage(lang)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.session.ShowManual && m.manualInput.Focused() {
			return m.handleManualInput(msg)
		}
		return m.handleNav(msg)

	case model.LocatedMsg:
		if msg.Gen != m.session.Gen {
			slog.Debug("discarding stale position fix", "gen", msg.Gen, "current", m.session.Gen)
			return m, nil
		}
		m.coords = msg.Coords
		m.hasFix = true
		slog.Info("position acquired", "coords", util.FormatCoordinates(msg.Coords))
		// Still loading: the provider search is the second leg of the
		// automatic flow.
		return m, searchByCoordinatesCmd(m.searcher, msg.Coords, m.language.Code, msg.Gen)

	case model.LocateFailedMsg:
		if msg.Gen != m.session.Gen {
			slog.Debug("discarding stale location failure", "gen", msg.Gen, "current", m.session.Gen)
			return m, nil
		}
		slog.Warn("location acquisition failed", "kind", int(msg.Kind), "err", msg.Err)
		m.session.Phase = model.PhaseManualPrompt
		m.session.ErrorKey = keyForLocateFailure(msg.Kind)
		m.session.ShowManual = true
		m.manualInput.Focus()
		return m, nil

	case model.RestaurantsFoundMsg:
		if msg.Gen != m.session.Gen {
			slog.Debug("discarding stale search results", "gen", msg.Gen, "current", m.session.Gen)
			return m, nil
		}
		m.session.Phase = model.PhaseResults
		m.session.Restaurants = msg.Restaurants
		m.session.ErrorKey = ""
		return m, nil

	case model.SearchFailedMsg:
		if msg.Gen != m.session.Gen {
			slog.Debug("discarding stale search failure", "gen", msg.Gen, "current", m.session.Gen)
			return m, nil
		}
		slog.Error("provider search failed", "err", msg.Err)
		m.session.Phase = model.PhaseError
		m.session.ErrorKey = model.KeyFetchError
		m.session.Restaurants = nil
		return m, nil

	case spinner.TickMsg:
		if m.session.Phase == model.PhaseLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showingHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Language):
		return m.cycleLanguage(), nil
	case key.Matches(msg, m.keys.Manual):
		m.session.ShowManual = true
		m.manualInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Find):
		return m.startAutoSearch()
	}
	return m, nil
}

func (m Model) handleManualInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.startManualSearch(m.manualInput.Value())
	case key.Matches(msg, m.keys.Cancel):
		m.session.ShowManual = false
		m.session.ErrorKey = ""
		if m.session.Phase == model.PhaseManualPrompt || m.session.Phase == model.PhaseError {
			m.session.Phase = model.PhaseIdle
		}
		m.manualInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Language):
		return m.cycleLanguage(), nil
	}

	var cmd tea.Cmd
	m.manualInput, cmd = m.manualInput.Update(msg)
	return m, cmd
}

// startAutoSearch is the automatic entry point: reset the session, then
// acquire a position and search around it. The reset happens before any
// async work is dispatched.
func (m Model) startAutoSearch() (Model, tea.Cmd) {
	gen := m.session.BeginSearch()
	m.manualInput.Blur()

	if m.locator == nil || !m.locator.Supported() {
		m.session.Phase = model.PhaseManualPrompt
		m.session.ErrorKey = model.KeyLocationNotSupported
		m.session.ShowManual = true
		m.manualInput.Focus()
		return m, nil
	}

	return m, tea.Batch(m.spin.Tick, locateCmd(m.locator, gen))
}

// startManualSearch is the manual entry point. Blank input is rejected
// before any request is issued; the form stays open for another attempt.
func (m Model) startManualSearch(raw string) (Model, tea.Cmd) {
	query := strings.TrimSpace(raw)
	if query == "" {
		m.session.Phase = model.PhaseError
		m.session.ErrorKey = model.KeyManualLocationError
		m.session.ShowManual = true
		return m, nil
	}

	gen := m.session.BeginSearch()
	m.manualInput.Blur()
	return m, tea.Batch(m.spin.Tick, searchByQueryCmd(m.searcher, query, m.language.Code, gen))
}

func (m Model) cycleLanguage() Model {
	langs := m.table.Languages()
	for i, l := range langs {
		if l.Code == m.language.Code {
			m.setLanguage(langs[(i+1)%len(langs)])
			return m
		}
	}
	m.setLanguage(langs[0])
	return m
}

func (m *Model) setLanguage(lang model.Language) {
	m.language = lang
	m.text = m.table.Resolve(lang.Code)
	m.rtl = i18n.RightToLeft(lang.Code)
	m.manualInput.Placeholder = m.text.ManualPlaceholder
}

func keyForLocateFailure(kind model.LocateFailure) string {
	switch kind {
	case model.LocateFailurePermissionDenied:
		return model.KeyLocationPermissionDenied
	case model.LocateFailureUnavailable:
		return model.KeyLocationUnavailable
	case model.LocateFailureTimeout:
		return model.KeyLocationTimeout
	default:
		return model.KeyLocationError
	}
}

// Commands

func locateCmd(loc Locator, gen int) tea.Cmd {
	return func() tea.Msg {
		coords, err := loc.Locate(context.Background())
		if err != nil {
			kind := model.LocateFailureUnknown
			var lerr *location.Error
			if errors.As(err, &lerr) {
				kind = lerr.Kind
			}
			return model.LocateFailedMsg{Gen: gen, Kind: kind, Err: err}
		}
		return model.LocatedMsg{Gen: gen, Coords: coords}
	}
}

func searchByCoordinatesCmd(s Searcher, coords model.Coordinates, langCode string, gen int) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return model.SearchFailedMsg{Gen: gen, Err: errors.New("no search provider configured")}
		}
		restaurants, err := s.ByCoordinates(context.Background(), coords.Latitude, coords.Longitude, langCode)
		if err != nil {
			return model.SearchFailedMsg{Gen: gen, Err: err}
		}
		return model.RestaurantsFoundMsg{Gen: gen, Restaurants: restaurants}
	}
}

func searchByQueryCmd(s Searcher, place, langCode string, gen int) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return model.SearchFailedMsg{Gen: gen, Err: errors.New("no search provider configured")}
		}
		restaurants, err := s.ByQuery(context.Background(), place, langCode)
		if err != nil {
			return model.SearchFailedMsg{Gen: gen, Err: err}
		}
		return model.RestaurantsFoundMsg{Gen: gen, Restaurants: restaurants}
	}
}
