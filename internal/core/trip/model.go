package trip

import (
	"errors"
	"fmt"
	"slices"
)

// ErrPointNotFound is returned when an update or delete names a point the
// model does not hold.
var ErrPointNotFound = errors.New("point not found")

// Observer is called after every successful change to the model.
type Observer func(updateType UpdateType, point Point)

// Model is the in-memory collection of points for one trip together with
// the offer and destination catalogs. It is not safe for concurrent use; the
// TUI only touches it from its update loop.
type Model struct {
	points       []Point
	offers       map[PointType][]Offer
	destinations []Destination

	observers []observerEntry
	nextObsID int
}

type observerEntry struct {
	id int
	fn Observer
}

// NewModel creates a model from a loaded trip.
func NewModel(t Trip) *Model {
	m := &Model{
		points:       clonePoints(t.Points),
		offers:       make(map[PointType][]Offer, len(t.Offers)),
		destinations: slices.Clone(t.Destinations),
	}
	for typ, offers := range t.Offers {
		m.offers[typ] = slices.Clone(offers)
	}
	return m
}

// Points returns a copy of all points in storage order.
func (m *Model) Points() []Point {
	return clonePoints(m.points)
}

// Point returns the point with the given id.
func (m *Model) Point(id string) (Point, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return Point{}, false
	}
	return m.points[i].Clone(), true
}

// Offers returns the offers available for the given point type.
func (m *Model) Offers(t PointType) []Offer {
	return slices.Clone(m.offers[t])
}

// Destinations returns every known destination.
func (m *Model) Destinations() []Destination {
	return slices.Clone(m.destinations)
}

// Destination returns the destination with the given id, or the zero value.
func (m *Model) Destination(id string) Destination {
	for _, d := range m.destinations {
		if d.ID == id {
			return d
		}
	}
	return Destination{}
}

// UpdatePoint replaces the stored point that has the same id as p.
func (m *Model) UpdatePoint(updateType UpdateType, p Point) error {
	i := m.indexOf(p.ID)
	if i < 0 {
		return fmt.Errorf("update point %q: %w", p.ID, ErrPointNotFound)
	}

	m.points[i] = p.Clone()
	m.notify(updateType, p.Clone())
	return nil
}

// DeletePoint removes the stored point that has the same id as p.
func (m *Model) DeletePoint(updateType UpdateType, p Point) error {
	i := m.indexOf(p.ID)
	if i < 0 {
		return fmt.Errorf("delete point %q: %w", p.ID, ErrPointNotFound)
	}

	m.points = slices.Delete(m.points, i, i+1)
	m.notify(updateType, p.Clone())
	return nil
}

// Replace swaps in a freshly loaded trip and notifies observers with a zero
// point.
func (m *Model) Replace(updateType UpdateType, t Trip) {
	fresh := NewModel(t)
	m.points = fresh.points
	m.offers = fresh.offers
	m.destinations = fresh.destinations
	m.notify(updateType, Point{})
}

// AddObserver registers fn and returns a function that unregisters it.
// Observers run synchronously in registration order.
func (m *Model) AddObserver(fn Observer) (remove func()) {
	id := m.nextObsID
	m.nextObsID++
	m.observers = append(m.observers, observerEntry{id: id, fn: fn})

	return func() {
		m.observers = slices.DeleteFunc(m.observers, func(e observerEntry) bool {
			return e.id == id
		})
	}
}

func (m *Model) notify(updateType UpdateType, p Point) {
	// Copy so observers may unregister while being notified.
	observers := slices.Clone(m.observers)
	for _, o := range observers {
		o.fn(updateType, p)
	}
}

func (m *Model) indexOf(id string) int {
	return slices.IndexFunc(m.points, func(p Point) bool { return p.ID == id })
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}
