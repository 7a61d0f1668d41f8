// Package tui implements the Bubble Tea program that edits a trip.
package tui

import (
	"path/filepath"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/waypoint/internal/core/logging"
	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/notify"
	"github.com/colonyops/waypoint/internal/tui/views/points"
)

// Options configures the root model.
type Options struct {
	KeyMap   keys.KeyMap
	Sort     trip.SortType
	TripFile string

	// Optional. A nil watcher disables live reload.
	Watcher *trip.Watcher
}

// Model is the root Bubble Tea model. Global key listeners see every key
// press first; whatever they leave goes to the point list.
type Model struct {
	model    *trip.Model
	list     *points.ListPresenter
	registry *keys.Registry
	keymap   keys.KeyMap
	bus      *notify.Bus
	log      zerolog.Logger

	toasts    *ToastController
	toastView *ToastView
	help      help.Model

	watcher  *trip.Watcher
	tripFile string

	width    int
	height   int
	quitting bool
}

// New creates the root model for a loaded trip.
func New(model *trip.Model, opts Options) Model {
	registry := keys.NewRegistry()
	bus := notify.NewBus()
	toasts := NewToastController()
	bus.Subscribe(toasts.Push)

	list := points.NewListPresenter(points.ListParams{
		Model:  model,
		Keys:   registry,
		KeyMap: opts.KeyMap,
		Sort:   opts.Sort,
		Bus:    bus,
	})
	list.Init()

	return Model{
		model:     model,
		list:      list,
		registry:  registry,
		keymap:    opts.KeyMap,
		bus:       bus,
		log:       logging.Component("tui"),
		toasts:    toasts,
		toastView: NewToastView(toasts),
		help:      help.New(),
		watcher:   opts.Watcher,
		tripFile:  opts.TripFile,
	}
}

// Bus returns the notification bus toasts are fed from.
func (m Model) Bus() *notify.Bus { return m.bus }

// List returns the point list.
func (m Model) List() *points.ListPresenter { return m.list }

func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForTripChange(m.watcher)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)
	case tripReloadedMsg:
		m.model.Replace(trip.UpdateTypeMajor, msg.trip)
		m.bus.Infof("Reloaded %s", filepath.Base(msg.path))
		cmd = m.Init()
	case tripReloadFailedMsg:
		m.log.Error().Err(msg.err).Str("path", msg.path).Msg("reload trip file")
		m.bus.Errorf("Could not reload %s: %v", filepath.Base(msg.path), msg.err)
		cmd = m.Init()
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		m.toasts.SetTicking(false)
	case tea.KeyPressMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.quitting = true
			m.list.Close()
			return m, tea.Quit
		}
	default:
		cmd = m.list.Update(msg)
	}

	return m, tea.Batch(cmd, m.scheduleToasts())
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (cmd tea.Cmd, quit bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}
	if m.registry.Dispatch(msg) {
		return nil, false
	}

	if _, editing := m.list.Editing(); !editing {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return nil, true
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil, false
		}
	}

	return m.list.Update(msg), false
}

func (m *Model) scheduleToasts() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	parts := []string{m.list.View()}
	if _, editing := m.list.Editing(); !editing {
		parts = append(parts, styles.HelpStyle.Render(m.help.View(m.keymap)))
	}
	main := lipgloss.JoinVertical(lipgloss.Left, parts...)

	v := tea.NewView(m.toastView.Overlay(main, w, h))
	v.AltScreen = true
	return v
}
