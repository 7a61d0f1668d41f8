package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/waypoint/internal/core/trip"
)

type tripReloadedMsg struct {
	path string
	trip trip.Trip
}

type tripReloadFailedMsg struct {
	path string
	err  error
}

// waitForTripChange blocks until the watcher reports a change, then reloads
// the trip file. It returns nil once the watcher is closed.
func waitForTripChange(w *trip.Watcher) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-w.Events()
		if !ok {
			return nil
		}
		return reloadTrip(change.Path)
	}
}

func reloadTrip(path string) tea.Msg {
	t, err := trip.LoadFile(path)
	if err != nil {
		return tripReloadFailedMsg{path: path, err: err}
	}
	return tripReloadedMsg{path: path, trip: t}
}
