// Package points renders a trip as a list of points. Each point is owned by
// a Presenter that swaps between a one-line display view and an inline edit
// form; the ListPresenter owns the presenters and applies their changes to
// the points model.
package points

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/mount"
)

// PointViewOpts configures a new PointView.
type PointViewOpts struct {
	Point       trip.Point
	Offers      []trip.Offer
	Destination trip.Destination
	KeyMap      keys.KeyMap

	// Required. A nil value panics at construction time.
	OnExpand   func()
	OnFavorite func()
}

// PointView is the compact, read-only rendering of a point.
type PointView struct {
	mount.Node

	point       trip.Point
	offers      []trip.Offer
	destination trip.Destination
	keymap      keys.KeyMap
	selected    bool

	onExpand   func()
	onFavorite func()
}

// NewPointView creates the display view for a point. Offers are the offers
// available for the point's type; only the selected ones are shown.
func NewPointView(opts PointViewOpts) *PointView {
	if opts.OnExpand == nil {
		panic("points.NewPointView: OnExpand is required")
	}
	if opts.OnFavorite == nil {
		panic("points.NewPointView: OnFavorite is required")
	}

	return &PointView{
		point:       opts.Point.Clone(),
		offers:      trip.SelectedOffers(opts.Point, opts.Offers),
		destination: opts.Destination,
		keymap:      opts.KeyMap,
		onExpand:    opts.OnExpand,
		onFavorite:  opts.OnFavorite,
	}
}

// SetSelected toggles the cursor highlight.
func (v *PointView) SetSelected(selected bool) { v.selected = selected }

// Selected reports whether the view is under the cursor.
func (v *PointView) Selected() bool { return v.selected }

// Update handles the expand and favorite keys.
func (v *PointView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Expand):
		v.onExpand()
	case key.Matches(keyMsg, v.keymap.Favorite):
		v.onFavorite()
	}
	return nil
}

// View renders the point on a single line.
func (v *PointView) View() string {
	p := v.point

	star := styles.FavoriteDefaultStyle.Render(styles.IconNotFavorite)
	if p.IsFavorite {
		star = styles.FavoriteActiveStyle.Render(styles.IconFavorite)
	}

	parts := []string{
		styles.PointDateStyle.Render(strings.ToUpper(p.DueDate.From.Format("Jan 02"))),
		styles.PointTypeStyle.Render(styles.PointTypeIcon(string(p.Type))),
		styles.PointTitleStyle.Render(pointTitle(p, v.destination)),
		styles.PointTimeStyle.Render(fmt.Sprintf("%s %s %s  %s",
			p.DueDate.From.Format("15:04"),
			styles.IconArrowRight,
			p.DueDate.To.Format("15:04"),
			FormatDuration(p.DueDate.Duration()),
		)),
		styles.PointPriceStyle.Render(fmt.Sprintf("€%d", p.BasePrice)),
	}
	if len(v.offers) > 0 {
		parts = append(parts, styles.PointOfferStyle.Render(offerSummary(v.offers)))
	}
	parts = append(parts, star)

	row := strings.Join(parts, "  ")
	if v.selected {
		return styles.PointRowCursorStyle.Render(row)
	}
	return styles.PointRowStyle.Render(row)
}

func pointTitle(p trip.Point, dest trip.Destination) string {
	title := typeLabel(p.Type)
	if dest.Name != "" {
		title += " " + dest.Name
	}
	return title
}

func typeLabel(t trip.PointType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func offerSummary(offers []trip.Offer) string {
	items := make([]string, len(offers))
	for i, o := range offers {
		items[i] = fmt.Sprintf("+ %s €%d", o.Title, o.Price)
	}
	return strings.Join(items, ", ")
}

// FormatDuration renders a duration as "30M", "02H 05M" or "01D 02H 05M".
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%02dD %02dH %02dM", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%02dH %02dM", hours, minutes)
	default:
		return fmt.Sprintf("%02dM", minutes)
	}
}
