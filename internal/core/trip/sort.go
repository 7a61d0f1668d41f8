package trip

import (
	"cmp"
	"fmt"
	"slices"
)

// SortType selects the ordering of the point list.
type SortType string

const (
	SortDay   SortType = "day"
	SortTime  SortType = "time"
	SortPrice SortType = "price"
)

// SortTypes lists the supported sort types in cycle order.
var SortTypes = []SortType{SortDay, SortTime, SortPrice}

// ParseSortType converts a user supplied string into a SortType.
func ParseSortType(s string) (SortType, error) {
	t := SortType(s)
	if !slices.Contains(SortTypes, t) {
		return "", fmt.Errorf("unknown sort %q (want one of day, time, price)", s)
	}
	return t, nil
}

// Next returns the sort type after t, wrapping around.
func (t SortType) Next() SortType {
	i := slices.Index(SortTypes, t)
	return SortTypes[(i+1)%len(SortTypes)]
}

// SortPoints returns a sorted copy of points. Day sorts by start ascending,
// time by duration descending and price by base price descending. Ties keep
// their relative order.
func SortPoints(points []Point, by SortType) []Point {
	out := slices.Clone(points)

	switch by {
	case SortTime:
		slices.SortStableFunc(out, func(a, b Point) int {
			return cmp.Compare(b.DueDate.Duration(), a.DueDate.Duration())
		})
	case SortPrice:
		slices.SortStableFunc(out, func(a, b Point) int {
			return cmp.Compare(b.BasePrice, a.BasePrice)
		})
	default:
		slices.SortStableFunc(out, func(a, b Point) int {
			return a.DueDate.From.Compare(b.DueDate.From)
		})
	}

	return out
}
