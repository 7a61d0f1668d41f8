package points

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/waypoint/internal/core/logging"
	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/mount"
	"github.com/colonyops/waypoint/internal/tui/notify"
)

// EmptyMessage is shown when the trip has no points.
const EmptyMessage = "There are no points in this trip yet"

// ListParams configures a new ListPresenter.
type ListParams struct {
	// Required. A nil value panics at construction time.
	Model *trip.Model
	Keys  *keys.Registry

	KeyMap keys.KeyMap
	Sort   trip.SortType

	// Optional. A nil bus disables error notifications.
	Bus *notify.Bus
}

// ListPresenter renders every point of the model through its own Presenter,
// applies their change requests to the model and re-renders on model events.
// At most one presenter is in editing mode at a time.
type ListPresenter struct {
	container *mount.Container
	model     *trip.Model
	registry  *keys.Registry
	keymap    keys.KeyMap
	bus       *notify.Bus
	log       zerolog.Logger

	presenters map[string]*Presenter
	order      []string
	sort       trip.SortType
	editingID  string
	cursor     int

	removeObserver func()
}

// NewListPresenter creates a list presenter. Call Init to render.
func NewListPresenter(params ListParams) *ListPresenter {
	switch {
	case params.Model == nil:
		panic("points.NewListPresenter: Model is required")
	case params.Keys == nil:
		panic("points.NewListPresenter: Keys is required")
	}

	sort := params.Sort
	if sort == "" {
		sort = trip.SortDay
	}

	return &ListPresenter{
		container:  mount.NewContainer(),
		model:      params.Model,
		registry:   params.Keys,
		keymap:     params.KeyMap,
		bus:        params.Bus,
		log:        logging.Component("point-list"),
		presenters: make(map[string]*Presenter),
		sort:       sort,
	}
}

// Init subscribes to the model and renders the list.
func (l *ListPresenter) Init() {
	if l.removeObserver == nil {
		l.removeObserver = l.model.AddObserver(l.handleModelEvent)
	}
	l.renderList()
}

// Close unsubscribes from the model and unmounts everything.
func (l *ListPresenter) Close() {
	if l.removeObserver != nil {
		l.removeObserver()
		l.removeObserver = nil
	}
	l.clearList()
}

// Container returns the container the point views are mounted in.
func (l *ListPresenter) Container() *mount.Container { return l.container }

// Sort returns the active sort type.
func (l *ListPresenter) Sort() trip.SortType { return l.sort }

// SetSort collapses any open form and re-renders in the new order.
func (l *ListPresenter) SetSort(t trip.SortType) {
	for _, p := range l.presenters {
		p.ResetView()
	}
	l.sort = t
	l.clearList()
	l.renderList()
	l.log.Debug().Str("sort", string(t)).Msg("sort changed")
}

// Len returns the number of rendered points.
func (l *ListPresenter) Len() int { return len(l.order) }

// IDs returns the point ids in render order.
func (l *ListPresenter) IDs() []string {
	return append([]string(nil), l.order...)
}

// Presenter returns the presenter of the point with the given id.
func (l *ListPresenter) Presenter(id string) (*Presenter, bool) {
	p, ok := l.presenters[id]
	return p, ok
}

// Editing returns the presenter in editing mode, if any.
func (l *ListPresenter) Editing() (*Presenter, bool) {
	p, ok := l.presenters[l.editingID]
	if !ok || p.Mode() != ModeEditing {
		return nil, false
	}
	return p, true
}

// Cursor returns the index of the highlighted point.
func (l *ListPresenter) Cursor() int { return l.cursor }

// Update routes input. While a point is being edited every message goes to
// its form; otherwise navigation and sort keys are handled here and the rest
// goes to the point under the cursor.
func (l *ListPresenter) Update(msg tea.Msg) tea.Cmd {
	if p, ok := l.Editing(); ok {
		return p.Update(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, l.keymap.Up):
		l.moveCursor(-1)
	case key.Matches(keyMsg, l.keymap.Down):
		l.moveCursor(1)
	case key.Matches(keyMsg, l.keymap.Sort):
		l.SetSort(l.sort.Next())
	default:
		if p := l.presenterAt(l.cursor); p != nil {
			return p.Update(msg)
		}
	}
	return nil
}

// View renders the header and the mounted points.
func (l *ListPresenter) View() string {
	header := styles.HeaderStyle.Render(fmt.Sprintf("%d points %s sorted by %s",
		len(l.order), styles.IconArrowRight, l.sort))
	return lipgloss.JoinVertical(lipgloss.Left, header, l.container.View())
}

func (l *ListPresenter) renderList() {
	points := trip.SortPoints(l.model.Points(), l.sort)
	if len(points) == 0 {
		if err := mount.Render(newEmptyView(EmptyMessage), l.container); err != nil {
			l.log.Error().Err(err).Msg("render empty state")
		}
		l.cursor = 0
		return
	}

	for _, point := range points {
		l.renderPoint(point)
	}
	l.cursor = min(l.cursor, len(l.order)-1)
	l.syncCursor()
}

func (l *ListPresenter) renderPoint(point trip.Point) {
	id := point.ID
	p := NewPresenter(PresenterParams{
		Container:    l.container,
		OnDataChange: l.handleDataChange,
		OnModeChange: func() { l.handleModeChange(id) },
		Keys:         l.registry,
		Catalog:      l.model,
		KeyMap:       l.keymap,
	})
	p.Init(l.initParams(point))

	l.presenters[id] = p
	l.order = append(l.order, id)
}

func (l *ListPresenter) initParams(point trip.Point) InitParams {
	return InitParams{
		Point:       point,
		Offers:      l.model.Offers(point.Type),
		Destination: l.model.Destination(point.Destination),
	}
}

// clearList destroys every presenter and unmounts whatever is left, such as
// the empty state.
func (l *ListPresenter) clearList() {
	for _, p := range l.presenters {
		p.Destroy()
	}
	clear(l.presenters)
	l.order = nil
	l.editingID = ""
	l.container.Clear()
}

func (l *ListPresenter) handleModeChange(id string) {
	if l.editingID != "" && l.editingID != id {
		if prev, ok := l.presenters[l.editingID]; ok {
			prev.ResetView()
		}
	}
	l.editingID = id

	for i, oid := range l.order {
		if oid == id {
			l.cursor = i
		}
	}
	l.syncCursor()
}

func (l *ListPresenter) handleDataChange(action trip.UserAction, updateType trip.UpdateType, point trip.Point) {
	var err error
	switch action {
	case trip.UserActionUpdatePoint:
		err = l.model.UpdatePoint(updateType, point)
	case trip.UserActionDeletePoint:
		err = l.model.DeletePoint(updateType, point)
	default:
		err = fmt.Errorf("unknown action %q", action)
	}

	if err != nil {
		l.log.Error().Err(err).
			Str("action", string(action)).
			Str("point", point.ID).
			Msg("apply point change")
		if l.bus != nil {
			l.bus.Errorf("Could not %s: %v", actionVerb(action), err)
		}
	}
}

func (l *ListPresenter) handleModelEvent(updateType trip.UpdateType, point trip.Point) {
	l.log.Debug().
		Str("update", string(updateType)).
		Str("point", point.ID).
		Msg("model changed")

	switch updateType {
	case trip.UpdateTypePatch:
		if p, ok := l.presenters[point.ID]; ok {
			p.Init(l.initParams(point))
		}
	case trip.UpdateTypeMinor:
		l.rerender()
	case trip.UpdateTypeMajor:
		l.sort = trip.SortDay
		l.rerender()
	}
}

// rerender rebuilds the list and keeps the cursor on the same point when it
// is still present.
func (l *ListPresenter) rerender() {
	var selectedID string
	if l.cursor < len(l.order) {
		selectedID = l.order[l.cursor]
	}

	l.clearList()
	l.renderList()

	for i, id := range l.order {
		if id == selectedID {
			l.cursor = i
			l.syncCursor()
			return
		}
	}
}

func (l *ListPresenter) moveCursor(delta int) {
	if len(l.order) == 0 {
		return
	}
	l.cursor = max(0, min(len(l.order)-1, l.cursor+delta))
	l.syncCursor()
}

func (l *ListPresenter) syncCursor() {
	for i, id := range l.order {
		l.presenters[id].SetSelected(i == l.cursor)
	}
}

func (l *ListPresenter) presenterAt(i int) *Presenter {
	if i < 0 || i >= len(l.order) {
		return nil
	}
	return l.presenters[l.order[i]]
}

func actionVerb(action trip.UserAction) string {
	switch action {
	case trip.UserActionDeletePoint:
		return "delete point"
	default:
		return "update point"
	}
}

type emptyView struct {
	mount.Node
	text string
}

func newEmptyView(text string) *emptyView {
	return &emptyView{text: text}
}

func (v *emptyView) View() string {
	return styles.EmptyStateStyle.Render(v.text)
}
