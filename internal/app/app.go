// Package app contains the root bubbletea model wiring playback, catalog
// search, lyrics, and persistence together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/config"
	"github.com/Bimbok/Harmonix/internal/lyrics"
	"github.com/Bimbok/Harmonix/internal/notify"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/state"
	"github.com/Bimbok/Harmonix/internal/ui/lyricspanel"
	"github.com/Bimbok/Harmonix/internal/ui/queuepanel"
	"github.com/Bimbok/Harmonix/internal/ui/resultspanel"
)

// FocusTarget identifies which panel receives navigation keys.
type FocusTarget int

const (
	FocusResults FocusTarget = iota
	FocusQueue
)

// Deps bundles the services the model depends on. Everything is constructed
// in main and injected so tests can substitute mocks.
type Deps struct {
	Config   *config.Config
	Playback playback.Service
	Catalog  *catalog.Client
	Lyrics   *lyrics.Cache
	StateMgr state.Interface
	Notifier notify.Notifier
}

// Model is the root application model containing all state.
type Model struct {
	cfg      *config.Config
	playback playback.Service
	catalog  *catalog.Client
	lyrics   *lyrics.Cache
	stateMgr state.Interface
	notifier notify.Notifier

	playbackSub *playback.Subscription

	ResultsPanel resultspanel.Model
	QueuePanel   queuepanel.Model
	LyricsPanel  lyricspanel.Model
	SearchInput  textinput.Model

	Focus         FocusTarget
	SearchMode    bool
	LyricsVisible bool
	ErrorMsg      string

	// Versions guard against stale async results after a newer request.
	searchVersion int
	lyricsVersion int

	notificationID uint32

	Width  int
	Height int
}

// New creates the root model. The queue and volume are expected to have been
// restored onto the playback service already.
func New(deps Deps) Model {
	input := textinput.New()
	input.Placeholder = "Search the catalog…"
	input.CharLimit = 200
	input.Prompt = "/ "

	m := Model{
		cfg:          deps.Config,
		playback:     deps.Playback,
		catalog:      deps.Catalog,
		lyrics:       deps.Lyrics,
		stateMgr:     deps.StateMgr,
		notifier:     deps.Notifier,
		playbackSub:  deps.Playback.Subscribe(),
		ResultsPanel: resultspanel.New(),
		QueuePanel:   queuepanel.New(),
		LyricsPanel:  lyricspanel.New(),
		SearchInput:  input,
		Focus:        FocusResults,
	}
	m.ResultsPanel.SetFocused(true)
	m.syncQueuePanel()
	m.syncModes()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), m.WatchServiceEvents())
}

// syncQueuePanel refreshes the queue panel from the playback service.
func (m *Model) syncQueuePanel() {
	m.QueuePanel.SetTracks(m.playback.QueueTracks(), m.playback.QueueCurrentIndex())
}

// syncModes refreshes the repeat/shuffle header indicators.
func (m *Model) syncModes() {
	m.QueuePanel.SetModes(m.playback.RepeatMode(), m.playback.Shuffle())
}

// setFocus moves key focus between the two panels.
func (m *Model) setFocus(target FocusTarget) {
	m.Focus = target
	m.ResultsPanel.SetFocused(target == FocusResults)
	m.QueuePanel.SetFocused(target == FocusQueue)
}
