// Package trip holds the itinerary domain: points, offers, destinations and
// the in-memory points model the TUI edits.
package trip

import (
	"slices"
	"time"
)

// PointType is the kind of trip leg a point represents.
type PointType string

const (
	PointTypeTaxi        PointType = "taxi"
	PointTypeBus         PointType = "bus"
	PointTypeTrain       PointType = "train"
	PointTypeShip        PointType = "ship"
	PointTypeDrive       PointType = "drive"
	PointTypeFlight      PointType = "flight"
	PointTypeCheckIn     PointType = "check-in"
	PointTypeSightseeing PointType = "sightseeing"
	PointTypeRestaurant  PointType = "restaurant"
)

// PointTypes lists every point type in display order.
var PointTypes = []PointType{
	PointTypeTaxi,
	PointTypeBus,
	PointTypeTrain,
	PointTypeShip,
	PointTypeDrive,
	PointTypeFlight,
	PointTypeCheckIn,
	PointTypeSightseeing,
	PointTypeRestaurant,
}

// IsValid reports whether t is one of the known point types.
func (t PointType) IsValid() bool {
	return slices.Contains(PointTypes, t)
}

// DueDate is the start/end pair of a point.
type DueDate struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Duration returns the time between From and To. Negative ranges yield zero.
func (d DueDate) Duration() time.Duration {
	if d.To.Before(d.From) {
		return 0
	}
	return d.To.Sub(d.From)
}

// Equal reports whether both ends of the range are the same instant.
func (d DueDate) Equal(other DueDate) bool {
	return d.From.Equal(other.From) && d.To.Equal(other.To)
}

// IsDatesEqual reports whether two due dates describe the same range.
func IsDatesEqual(a, b DueDate) bool {
	return a.Equal(b)
}

// Point is one itinerary entry. Points are passed by value; callers that
// hand a point to someone else should use Clone so the Offers slice is not
// shared.
type Point struct {
	ID          string    `json:"id"`
	DueDate     DueDate   `json:"due_date"`
	IsFavorite  bool      `json:"is_favorite"`
	Offers      []string  `json:"offers"`
	Destination string    `json:"destination"`
	Type        PointType `json:"type"`
	BasePrice   int       `json:"base_price"`
}

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point {
	c := p
	c.Offers = slices.Clone(p.Offers)
	return c
}

// HasOffer reports whether the point has the offer with the given id selected.
func (p Point) HasOffer(id string) bool {
	return slices.Contains(p.Offers, id)
}

// Offer is an optional add-on that can be attached to a point.
type Offer struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Price int    `json:"price" yaml:"price"`
}

// Destination is the place a point leads to.
type Destination struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Pictures    []string `json:"pictures,omitempty" yaml:"pictures"`
}

// SelectedOffers returns the offers from available that p has selected,
// in the order they appear in available.
func SelectedOffers(p Point, available []Offer) []Offer {
	var out []Offer
	for _, o := range available {
		if p.HasOffer(o.ID) {
			out = append(out, o)
		}
	}
	return out
}
