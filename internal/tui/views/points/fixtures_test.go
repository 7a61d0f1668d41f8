package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/mount"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func testTrip() trip.Trip {
	return trip.Trip{
		Destinations: []trip.Destination{
			{ID: "ams", Name: "Amsterdam", Description: "Canals and **bikes**."},
			{ID: "gva", Name: "Geneva", Description: "A lake city.", Pictures: []string{"gva-1.jpg"}},
		},
		Offers: map[trip.PointType][]trip.Offer{
			trip.PointTypeTaxi: {
				{ID: "taxi-radio", Title: "Radio", Price: 5},
				{ID: "taxi-upgrade", Title: "Upgrade", Price: 20},
			},
			trip.PointTypeBus: {
				{ID: "bus-seat", Title: "Choose seat", Price: 3},
			},
		},
		Points: []trip.Point{
			{
				ID:          "1",
				Type:        trip.PointTypeTaxi,
				Destination: "ams",
				DueDate:     trip.DueDate{From: at(1, 10, 0), To: at(1, 12, 0)},
				BasePrice:   1100,
				Offers:      []string{"taxi-radio"},
			},
			{
				ID:          "2",
				Type:        trip.PointTypeBus,
				Destination: "gva",
				DueDate:     trip.DueDate{From: at(2, 9, 0), To: at(2, 9, 30)},
				BasePrice:   20,
				IsFavorite:  true,
			},
			{
				ID:          "3",
				Type:        trip.PointTypeTaxi,
				Destination: "gva",
				DueDate:     trip.DueDate{From: at(3, 8, 0), To: at(3, 20, 0)},
				BasePrice:   300,
			},
		},
	}
}

type change struct {
	action     trip.UserAction
	updateType trip.UpdateType
	point      trip.Point
}

type recorder struct {
	changes     []change
	modeChanges int
}

func (r *recorder) onDataChange(action trip.UserAction, updateType trip.UpdateType, point trip.Point) {
	r.changes = append(r.changes, change{action: action, updateType: updateType, point: point})
}

func (r *recorder) onModeChange() { r.modeChanges++ }

type presenterFixture struct {
	model     *trip.Model
	container *mount.Container
	registry  *keys.Registry
	rec       *recorder
	presenter *Presenter
}

// newPresenterFixture builds a presenter for the point with the given id and
// initializes it.
func newPresenterFixture(t *testing.T, id string) *presenterFixture {
	t.Helper()
	return newPresenterFixtureFor(t, testTrip(), id)
}

func newPresenterFixtureFor(t *testing.T, tr trip.Trip, id string) *presenterFixture {
	t.Helper()

	f := &presenterFixture{
		model:     trip.NewModel(tr),
		container: mount.NewContainer(),
		registry:  keys.NewRegistry(),
		rec:       &recorder{},
	}
	f.presenter = NewPresenter(PresenterParams{
		Container:    f.container,
		OnDataChange: f.rec.onDataChange,
		OnModeChange: f.rec.onModeChange,
		Keys:         f.registry,
		Catalog:      f.model,
		KeyMap:       keys.DefaultKeyMap(),
	})
	f.presenter.Init(f.initParams(t, id))
	return f
}

func (f *presenterFixture) initParams(t *testing.T, id string) InitParams {
	t.Helper()
	point, ok := f.model.Point(id)
	require.True(t, ok, "fixture point %s", id)
	return InitParams{
		Point:       point,
		Offers:      f.model.Offers(point.Type),
		Destination: f.model.Destination(point.Destination),
	}
}

// requireOneMounted checks that exactly the view matching the mode is mounted.
func requireOneMounted(t *testing.T, p *Presenter, c *mount.Container) {
	t.Helper()
	pv, ev := p.PointView(), p.EditView()
	require.NotNil(t, pv)
	require.NotNil(t, ev)

	switch p.Mode() {
	case ModeDisplay:
		require.True(t, c.Contains(pv), "display view mounted")
		require.False(t, c.Contains(ev), "edit view not mounted")
	case ModeEditing:
		require.True(t, c.Contains(ev), "edit view mounted")
		require.False(t, c.Contains(pv), "display view not mounted")
	}
}
