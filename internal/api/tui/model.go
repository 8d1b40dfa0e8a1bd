// Package tui provides a Bubble Tea terminal user interface over a browsing session.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vinylshelf/internal/app/modal"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/initial"
	"github.com/osa030/vinylshelf/internal/infra/history"
)

// inputMode represents what the bottom input line is collecting.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeRoute
	modeInitial
)

// Message types
type (
	// eventsMsg carries navigation events drained from the platform history.
	eventsMsg struct {
		Events []history.Event
	}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	session      *session.Manager
	platform     session.Platform
	transitions  *transitionLog
	subscription string

	mode   inputMode
	input  textinput.Model
	help   help.Model
	cursor int
	status string
	err    error

	width  int
	height int
}

// NewModel creates a new TUI model. The session must already be started.
func NewModel(s *session.Manager, p session.Platform) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	log := &transitionLog{}
	return Model{
		session:      s,
		platform:     p,
		transitions:  log,
		subscription: s.Subscribe(log),
		input:        ti,
		help:         help.New(),
	}
}

// Close stops listening to session transitions.
func (m Model) Close() {
	m.session.Unsubscribe(m.subscription)
}

// Init drains the events queued before the program started.
func (m Model) Init() tea.Cmd {
	return m.drain()
}

// drain returns a command that delivers the queued history events as one message.
func (m Model) drain() tea.Cmd {
	return func() tea.Msg {
		return eventsMsg{Events: m.platform.Drain()}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	model := next.(Model)
	model.applyTransitions()
	return model, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case eventsMsg:
		if len(msg.Events) == 0 {
			return m, nil
		}
		for _, ev := range msg.Events {
			zlog.Debug().Msgf("tui: dispatch %s %s", ev.Type, ev.Hash)
			m.session.Dispatch(ev)
		}
		// a redirect queues more events
		return m, m.drain()

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Select):
		m.selectItem()

	case key.Matches(msg, keys.Back):
		m.platform.Back()

	case key.Matches(msg, keys.SwipeBack):
		m.session.SwipeBack()

	case key.Matches(msg, keys.Close):
		m.session.CloseModal(modal.ReasonUserAction)

	case key.Matches(msg, keys.Home):
		m.session.Home()

	case key.Matches(msg, keys.PrevPage):
		if m.view() == state.ViewSearch {
			m.session.PrevSearchPage()
		} else {
			m.session.PrevArtistPage()
		}

	case key.Matches(msg, keys.NextPage):
		if m.view() == state.ViewSearch {
			m.session.NextSearchPage()
		} else {
			m.session.NextArtistPage()
		}

	case key.Matches(msg, keys.Filters):
		n, _ := strconv.Atoi(msg.String())
		order := search.Order()
		if n >= 1 && n <= len(order) {
			if err := m.session.ToggleFilter(order[n-1]); err != nil {
				m.err = err
			}
		}

	case key.Matches(msg, keys.Search):
		return m.startInput(modeSearch, "search: ", m.session.Snapshot().State.SearchQuery)

	case key.Matches(msg, keys.Route):
		return m.startInput(modeRoute, "hash: ", m.platform.Hash())

	case key.Matches(msg, keys.Initial):
		return m.startInput(modeInitial, "initial (A-Z, 가-하, #): ", "")

	default:
		return m, nil
	}
	return m, m.drain()
}

func (m Model) startInput(mode inputMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		mode := m.mode
		m.mode = modeBrowse
		m.input.Blur()
		m.submit(mode, value)
		return m, m.drain()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the value of a finished input.
func (m *Model) submit(mode inputMode, value string) {
	switch mode {
	case modeSearch:
		if value == "" {
			m.session.ClearSearchInput()
			return
		}
		m.session.NavigateToSearch(value)

	case modeRoute:
		m.platform.SetHash(value)

	case modeInitial:
		if value == "" {
			// toggling the current key clears it
			m.session.SetInitialFilter(m.session.Snapshot().State.Initial)
			return
		}
		k, ok := initial.ParseKey(value)
		if !ok {
			m.status = "unknown initial: " + value
			return
		}
		m.session.SetInitialFilter(k)
	}
}

// selectItem acts on the item under the cursor.
func (m *Model) selectItem() {
	if _, open := m.session.Modal(); open {
		return
	}

	switch m.view() {
	case state.ViewArtists:
		items := m.session.Artists().Page.Items
		if m.cursor < len(items) {
			m.session.NavigateToAlbums(items[m.cursor].Name)
		}
	case state.ViewAlbums:
		v := m.session.Albums()
		if m.cursor < len(v.Albums) {
			a := v.Albums[m.cursor]
			m.session.NavigateToTracks(a.Artist, a.Title)
		}
	case state.ViewTracks:
		tracks := m.session.Tracks().Tracks
		if m.cursor < len(tracks) {
			m.session.OpenTrack(tracks[m.cursor])
		}
	case state.ViewSearch:
		items := m.session.SearchResults().Page.Items
		if m.cursor < len(items) {
			if err := m.session.SelectResult(items[m.cursor]); err != nil {
				m.err = err
			}
		}
	}
}

func (m Model) view() state.View {
	return m.session.Snapshot().State.View
}

// itemCount returns the number of rows the current view lists.
func (m Model) itemCount() int {
	switch m.view() {
	case state.ViewArtists:
		return len(m.session.Artists().Page.Items)
	case state.ViewAlbums:
		return len(m.session.Albums().Albums)
	case state.ViewTracks:
		return len(m.session.Tracks().Tracks)
	case state.ViewSearch:
		return len(m.session.SearchResults().Page.Items)
	}
	return 0
}

// Run starts the terminal program and blocks until it exits.
func Run(s *session.Manager, p session.Platform) error {
	m := NewModel(s, p)
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
