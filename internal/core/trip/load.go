package trip

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DateLayouts are the accepted date formats in trip files and edit forms,
// tried in order.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Trip is the content of a trip file after decoding.
type Trip struct {
	Destinations []Destination
	Offers       map[PointType][]Offer
	Points       []Point
}

type tripFile struct {
	Destinations []Destination    `yaml:"destinations"`
	Offers       []offerGroupFile `yaml:"offers"`
	Points       []pointFile      `yaml:"points"`
}

type offerGroupFile struct {
	Type   PointType `yaml:"type"`
	Offers []Offer   `yaml:"offers"`
}

type pointFile struct {
	ID          string    `yaml:"id"`
	Type        PointType `yaml:"type"`
	Destination string    `yaml:"destination"`
	From        string    `yaml:"from"`
	To          string    `yaml:"to"`
	BasePrice   int       `yaml:"base_price"`
	IsFavorite  bool      `yaml:"is_favorite"`
	Offers      []string  `yaml:"offers"`
}

// ParseDate parses s using the first matching layout in DateLayouts.
// Values without a zone are read in the local time zone.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// LoadFile reads and decodes the trip file at path.
func LoadFile(path string) (Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Trip{}, fmt.Errorf("read trip file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return Trip{}, fmt.Errorf("parse trip file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a trip document. Points without an id get a random UUID.
func Parse(data []byte) (Trip, error) {
	var f tripFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Trip{}, err
	}

	t := Trip{
		Destinations: f.Destinations,
		Offers:       make(map[PointType][]Offer, len(f.Offers)),
		Points:       make([]Point, 0, len(f.Points)),
	}

	destinations := make(map[string]bool, len(f.Destinations))
	for _, d := range f.Destinations {
		if d.ID == "" {
			return Trip{}, errors.New("destination without id")
		}
		destinations[d.ID] = true
	}

	for _, g := range f.Offers {
		if !g.Type.IsValid() {
			return Trip{}, fmt.Errorf("offers: unknown point type %q", g.Type)
		}
		t.Offers[g.Type] = append(t.Offers[g.Type], g.Offers...)
	}

	seen := make(map[string]bool, len(f.Points))
	for i, pf := range f.Points {
		p, err := pf.toPoint()
		if err != nil {
			return Trip{}, fmt.Errorf("points[%d]: %w", i, err)
		}
		if pf.Destination != "" && !destinations[pf.Destination] {
			return Trip{}, fmt.Errorf("points[%d]: unknown destination %q", i, pf.Destination)
		}
		if seen[p.ID] {
			return Trip{}, fmt.Errorf("points[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		t.Points = append(t.Points, p)
	}

	return t, nil
}

func (pf pointFile) toPoint() (Point, error) {
	if !pf.Type.IsValid() {
		return Point{}, fmt.Errorf("unknown point type %q", pf.Type)
	}

	from, err := ParseDate(pf.From)
	if err != nil {
		return Point{}, fmt.Errorf("from: %w", err)
	}
	to, err := ParseDate(pf.To)
	if err != nil {
		return Point{}, fmt.Errorf("to: %w", err)
	}
	if to.Before(from) {
		return Point{}, fmt.Errorf("to %s is before from %s", pf.To, pf.From)
	}

	id := pf.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Point{
		ID:          id,
		DueDate:     DueDate{From: from, To: to},
		IsFavorite:  pf.IsFavorite,
		Offers:      pf.Offers,
		Destination: pf.Destination,
		Type:        pf.Type,
		BasePrice:   pf.BasePrice,
	}, nil
}
