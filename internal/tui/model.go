package tui

import (
	"pathshadow/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadFunc runs the scan and returns every shadow event with the diagnostics it produced.
type LoadFunc func() ([]model.ShadowEvent, []string, error)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Events      []model.ShadowEvent
	Diagnostics []string
	Loading     bool
	Err         error

	// UI State
	Visibility  model.Visibility
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowDiagnostics bool

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Events to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model

	load LoadFunc
}

// InitialModel returns the initial state.
func InitialModel(load LoadFunc, v model.Visibility) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Command name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		Visibility:  v,
		load:        load,
	}
}

// Selected returns the event under the cursor.
func (m AppModel) Selected() (model.ShadowEvent, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return model.ShadowEvent{}, false
	}
	return m.Events[m.FilteredIndices[m.SelectedIdx]], true
}
