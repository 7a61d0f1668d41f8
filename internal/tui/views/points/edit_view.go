package points

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/components/form"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/mount"
)

// DateLayout is the format of the start and end fields.
const DateLayout = "2006-01-02 15:04"

const descriptionWidth = 56

// Catalog provides the offers and destinations an edit form can choose from.
// *trip.Model satisfies it.
type Catalog interface {
	Offers(t trip.PointType) []trip.Offer
	Destinations() []trip.Destination
	Destination(id string) trip.Destination
}

// EditViewOpts configures a new EditView.
type EditViewOpts struct {
	Point       trip.Point
	Offers      []trip.Offer
	Destination trip.Destination
	KeyMap      keys.KeyMap

	// Required. A nil value panics at construction time.
	Catalog  Catalog
	OnSubmit func(candidate trip.Point)
	OnRollup func()
	OnDelete func()
}

// EditView is the inline edit form of a point. It never validates input:
// unparseable dates and prices fall back to the point's current values.
type EditView struct {
	mount.Node

	point       trip.Point
	offers      []trip.Offer
	destination trip.Destination

	catalog Catalog
	keymap  keys.KeyMap
	help    help.Model

	dialog      *form.Dialog
	typeField   *form.SelectFormField
	destField   *form.SelectFormField
	fromField   *form.TextField
	toField     *form.TextField
	priceField  *form.TextField
	offersField *form.MultiSelectField

	// shownType tracks which type's offers the offers field holds.
	shownType trip.PointType
	descCache map[string]string

	onSubmit func(trip.Point)
	onRollup func()
	onDelete func()
}

// NewEditView creates the edit form for a point.
func NewEditView(opts EditViewOpts) *EditView {
	switch {
	case opts.Catalog == nil:
		panic("points.NewEditView: Catalog is required")
	case opts.OnSubmit == nil:
		panic("points.NewEditView: OnSubmit is required")
	case opts.OnRollup == nil:
		panic("points.NewEditView: OnRollup is required")
	case opts.OnDelete == nil:
		panic("points.NewEditView: OnDelete is required")
	}

	v := &EditView{
		catalog:   opts.Catalog,
		keymap:    opts.KeyMap,
		help:      help.New(),
		descCache: make(map[string]string),
		onSubmit:  opts.OnSubmit,
		onRollup:  opts.OnRollup,
		onDelete:  opts.OnDelete,
	}

	v.typeField = form.NewSelectFormField("Type", typeOptions(), "")
	v.destField = form.NewSelectFormField("Destination", destinationOptions(opts.Catalog.Destinations()), "")
	v.fromField = form.NewTextField("Start", DateLayout, "")
	v.toField = form.NewTextField("End", DateLayout, "")
	v.priceField = form.NewTextField("Price, €", "0", "")
	v.offersField = form.NewMultiSelectFormField("Offers", nil, nil).
		WithEmptyText("no offers for this type")

	v.dialog = form.NewDialog("Edit point",
		v.typeField, v.destField, v.fromField, v.toField, v.priceField, v.offersField,
	)

	v.Reset(opts.Point, opts.Offers, opts.Destination)
	return v
}

// Reset restores every field from the given point and discards edits.
func (v *EditView) Reset(point trip.Point, offers []trip.Offer, destination trip.Destination) {
	v.point = point.Clone()
	v.offers = offers
	v.destination = destination

	v.typeField.SetValue(string(point.Type))
	v.destField.SetValue(point.Destination)
	v.fromField.SetValue(formatDate(point.DueDate.From))
	v.toField.SetValue(formatDate(point.DueDate.To))
	v.priceField.SetValue(strconv.Itoa(point.BasePrice))
	v.offersField.SetOptions(offerOptions(offers), point.Offers)
	v.shownType = point.Type

	v.dialog.Reset()
}

// Candidate builds the point the form currently describes.
func (v *EditView) Candidate() trip.Point {
	c := v.point.Clone()

	if t := trip.PointType(fieldString(v.typeField)); t.IsValid() {
		c.Type = t
	}
	if id := fieldString(v.destField); id != "" {
		c.Destination = id
	}

	c.DueDate.From = editedDate(fieldString(v.fromField), v.point.DueDate.From)
	c.DueDate.To = editedDate(fieldString(v.toField), v.point.DueDate.To)

	if price, err := strconv.Atoi(strings.TrimSpace(fieldString(v.priceField))); err == nil {
		c.BasePrice = price
	}

	if selected, ok := v.offersField.Value().([]string); ok {
		c.Offers = selected
	}
	return c
}

// CapturesEscape reports whether the focused field is typing a filter and
// wants escape for itself.
func (v *EditView) CapturesEscape() bool {
	return v.dialog.CapturesEscape()
}

// Update handles the form action keys and forwards everything else to the
// focused field.
func (v *EditView) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && !v.dialog.CapturesEscape() {
		switch {
		case key.Matches(keyMsg, v.keymap.Submit):
			v.submit()
			return nil
		case key.Matches(keyMsg, v.keymap.Rollup):
			v.onRollup()
			return nil
		case key.Matches(keyMsg, v.keymap.Delete):
			v.onDelete()
			return nil
		}
	}

	var cmd tea.Cmd
	v.dialog, cmd = v.dialog.Update(msg)
	if v.dialog.Submitted() {
		v.submit()
		return cmd
	}

	return tea.Batch(cmd, v.syncOffers())
}

func (v *EditView) submit() {
	candidate := v.Candidate()
	v.dialog.Reset()
	v.onSubmit(candidate)
}

// syncOffers swaps the offer list when the type selection moves.
func (v *EditView) syncOffers() tea.Cmd {
	t := trip.PointType(fieldString(v.typeField))
	if !t.IsValid() || t == v.shownType {
		return nil
	}

	v.shownType = t
	selected, _ := v.offersField.Value().([]string)
	if len(selected) == 0 {
		selected = v.point.Offers
	}
	return v.offersField.SetOptions(offerOptions(v.catalog.Offers(t)), selected)
}

// View renders the form, the destination description and the key help.
func (v *EditView) View() string {
	parts := []string{v.dialog.View()}

	if desc := v.description(fieldString(v.destField)); desc != "" {
		parts = append(parts, "", desc)
	}
	parts = append(parts, "", v.help.ShortHelpView(v.keymap.EditHelp()))

	return styles.EditPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (v *EditView) description(destID string) string {
	if out, ok := v.descCache[destID]; ok {
		return out
	}

	dest := v.catalog.Destination(destID)
	if destID == v.destination.ID && dest.ID == "" {
		dest = v.destination
	}

	out := renderMarkdown(dest.Description, descriptionWidth)
	if len(dest.Pictures) > 0 {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			styles.TextMutedStyle.Render(fmt.Sprintf("%d photo(s)", len(dest.Pictures))))
	}
	v.descCache[destID] = out
	return out
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw description")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render description, showing raw text")
		return md
	}
	return strings.Trim(rendered, "\n")
}

func typeOptions() []form.Option {
	opts := make([]form.Option, len(trip.PointTypes))
	for i, t := range trip.PointTypes {
		opts[i] = form.Option{Value: string(t), Label: styles.PointTypeIcon(string(t)) + " " + typeLabel(t)}
	}
	return opts
}

func destinationOptions(dests []trip.Destination) []form.Option {
	opts := make([]form.Option, len(dests))
	for i, d := range dests {
		opts[i] = form.Option{Value: d.ID, Label: d.Name}
	}
	return opts
}

func offerOptions(offers []trip.Offer) []form.Option {
	opts := make([]form.Option, len(offers))
	for i, o := range offers {
		opts[i] = form.Option{Value: o.ID, Label: fmt.Sprintf("%s +€%d", o.Title, o.Price)}
	}
	return opts
}

func fieldString(f form.Field) string {
	s, _ := f.Value().(string)
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// editedDate returns the time a date field describes. The field only holds
// minutes, so untouched text keeps current as is, seconds included.
func editedDate(text string, current time.Time) time.Time {
	text = strings.TrimSpace(text)
	if text == formatDate(current) {
		return current
	}
	t, err := time.ParseInLocation(DateLayout, text, current.Location())
	if err != nil {
		return current
	}
	return t
}
