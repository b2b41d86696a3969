package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"pathshadow/internal/model"
)

// MsgShadowsReady indicates that the scan has completed.
type MsgShadowsReady struct {
	Events      []model.ShadowEvent
	Diagnostics []string
}

// MsgError indicates an error occurred.
type MsgError error

// Init starts the scan in background.
func (m AppModel) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		events, diags, err := load()
		if err != nil {
			return MsgError(err)
		}
		return MsgShadowsReady{Events: events, Diagnostics: diags}
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgShadowsReady:
		m.Loading = false
		m.Events = msg.Events
		m.Diagnostics = msg.Diagnostics
		m.refilter()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.refilter()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.refilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.clearSearch()
			}
			m.ShowDiagnostics = false
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "s":
			m.Visibility = m.Visibility.Next()
			m.refilter()
		case "d":
			m.ShowDiagnostics = !m.ShowDiagnostics
		case "/", "w":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.refilter()
}

// refilter applies the visibility policy and the name prefix search.
func (m *AppModel) refilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	m.SearchActive = term != ""

	var result []int
	for i, ev := range m.Events {
		if !m.Visibility.Allows(ev.Identical) {
			continue
		}
		if m.SearchActive && !strings.HasPrefix(strings.ToLower(ev.Name), term) {
			continue
		}
		result = append(result, i)
	}
	m.FilteredIndices = result

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
