package points

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/waypoint/internal/core/logging"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/internal/tui/mount"
)

// Mode is the visual state of a presenter.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	default:
		return "display"
	}
}

// modeState is the presenter state. Only the editing variant holds a key
// listener, so a display presenter cannot own one.
type modeState interface {
	mode() Mode
}

type displayState struct{}

func (displayState) mode() Mode { return ModeDisplay }

type editingState struct {
	listener keys.Handle
}

func (editingState) mode() Mode { return ModeEditing }

// DataChangeFunc receives the normalized changes a presenter requests.
type DataChangeFunc func(action trip.UserAction, updateType trip.UpdateType, point trip.Point)

// PresenterParams configures a new Presenter.
type PresenterParams struct {
	// Required. A nil value panics at construction time.
	Container    *mount.Container
	OnDataChange DataChangeFunc
	OnModeChange func()
	Keys         *keys.Registry
	Catalog      Catalog

	KeyMap keys.KeyMap
}

// InitParams is the data a presenter renders. Offers are the offers available
// for the point's type.
type InitParams struct {
	Point       trip.Point
	Offers      []trip.Offer
	Destination trip.Destination
}

// Presenter owns one point. It mounts either the display view or the edit
// view into its container and turns view events into mode changes or data
// change requests.
type Presenter struct {
	container    *mount.Container
	onDataChange DataChangeFunc
	onModeChange func()
	registry     *keys.Registry
	catalog      Catalog
	keymap       keys.KeyMap
	log          zerolog.Logger

	data      InitParams
	pointView *PointView
	editView  *EditView
	state     modeState
	selected  bool
}

// NewPresenter creates a presenter. Nothing is mounted until Init.
func NewPresenter(params PresenterParams) *Presenter {
	switch {
	case params.Container == nil:
		panic("points.NewPresenter: Container is required")
	case params.OnDataChange == nil:
		panic("points.NewPresenter: OnDataChange is required")
	case params.OnModeChange == nil:
		panic("points.NewPresenter: OnModeChange is required")
	case params.Keys == nil:
		panic("points.NewPresenter: Keys is required")
	case params.Catalog == nil:
		panic("points.NewPresenter: Catalog is required")
	}

	return &Presenter{
		container:    params.Container,
		onDataChange: params.OnDataChange,
		onModeChange: params.OnModeChange,
		registry:     params.Keys,
		catalog:      params.Catalog,
		keymap:       params.KeyMap,
		log:          logging.Component("point-presenter"),
		state:        displayState{},
	}
}

// Init builds fresh views for data and reconciles them with whatever is
// mounted. The first call mounts the display view; later calls swap the
// visible view in place and release both previous views.
func (p *Presenter) Init(data InitParams) {
	p.data = InitParams{
		Point:       data.Point.Clone(),
		Offers:      slices.Clone(data.Offers),
		Destination: data.Destination,
	}

	prevPoint, prevEdit := p.pointView, p.editView
	p.pointView = p.newPointView()
	p.editView = p.newEditView()
	p.pointView.SetSelected(p.selected)

	p.reconcile(prevPoint, prevEdit)
}

func (p *Presenter) newPointView() *PointView {
	return NewPointView(PointViewOpts{
		Point:       p.data.Point,
		Offers:      p.data.Offers,
		Destination: p.data.Destination,
		KeyMap:      p.keymap,
		OnExpand:    p.handleExpand,
		OnFavorite:  p.handleFavorite,
	})
}

func (p *Presenter) newEditView() *EditView {
	return NewEditView(EditViewOpts{
		Point:       p.data.Point,
		Offers:      p.data.Offers,
		Destination: p.data.Destination,
		KeyMap:      p.keymap,
		Catalog:     p.catalog,
		OnSubmit:    p.handleSubmit,
		OnRollup:    p.handleRollup,
		OnDelete:    p.handleDelete,
	})
}

func (p *Presenter) reconcile(prevPoint *PointView, prevEdit *EditView) {
	if prevPoint == nil || prevEdit == nil {
		p.check(mount.Render(p.pointView, p.container), "render point view")
		return
	}

	switch p.state.(type) {
	case editingState:
		p.check(mount.Replace(p.editView, prevEdit), "replace edit view")
	default:
		p.check(mount.Replace(p.pointView, prevPoint), "replace point view")
	}

	p.check(mount.Remove(prevPoint), "release point view")
	p.check(mount.Remove(prevEdit), "release edit view")
}

// ResetView collapses the presenter to display mode, discarding unsaved
// edits. It does nothing in display mode or before Init.
func (p *Presenter) ResetView() {
	if _, ok := p.state.(editingState); !ok {
		return
	}
	p.editView.Reset(p.data.Point, p.data.Offers, p.data.Destination)
	p.replaceEditWithPoint()
}

// Destroy unmounts both views and drops any key listener. The presenter can
// be initialized again afterwards.
func (p *Presenter) Destroy() {
	if p.pointView == nil {
		return
	}

	if editing, ok := p.state.(editingState); ok {
		p.registry.Remove(editing.listener)
	}
	p.check(mount.Remove(p.pointView), "remove point view")
	p.check(mount.Remove(p.editView), "remove edit view")

	p.pointView = nil
	p.editView = nil
	p.state = displayState{}
	p.log.Debug().Str("point", p.data.Point.ID).Msg("destroyed")
}

// Mode returns the current mode.
func (p *Presenter) Mode() Mode { return p.state.mode() }

// Point returns a copy of the last point passed to Init.
func (p *Presenter) Point() trip.Point { return p.data.Point.Clone() }

// PointView returns the current display view, or nil before Init.
func (p *Presenter) PointView() *PointView { return p.pointView }

// EditView returns the current edit view, or nil before Init.
func (p *Presenter) EditView() *EditView { return p.editView }

// SetSelected moves the cursor highlight on or off this point.
func (p *Presenter) SetSelected(selected bool) {
	p.selected = selected
	if p.pointView != nil {
		p.pointView.SetSelected(selected)
	}
}

// Update forwards msg to the visible view.
func (p *Presenter) Update(msg tea.Msg) tea.Cmd {
	if p.pointView == nil {
		return nil
	}
	if _, ok := p.state.(editingState); ok {
		return p.editView.Update(msg)
	}
	return p.pointView.Update(msg)
}

func (p *Presenter) replacePointWithEdit() {
	if p.pointView == nil {
		return
	}
	if _, ok := p.state.(displayState); !ok {
		return
	}

	if err := mount.Replace(p.editView, p.pointView); err != nil {
		p.log.Error().Err(err).Str("point", p.data.Point.ID).Msg("open edit view")
		return
	}
	listener := p.registry.Add(p.handleEscapeKey)
	p.onModeChange()
	p.state = editingState{listener: listener}

	p.log.Debug().Str("point", p.data.Point.ID).Msg("editing")
}

func (p *Presenter) replaceEditWithPoint() {
	editing, ok := p.state.(editingState)
	if !ok {
		return
	}

	p.check(mount.Replace(p.pointView, p.editView), "close edit view")
	if !p.registry.Remove(editing.listener) {
		p.log.Warn().Str("point", p.data.Point.ID).Msg("escape listener was already removed")
	}
	p.state = displayState{}

	p.log.Debug().Str("point", p.data.Point.ID).Msg("display")
}

func (p *Presenter) handleEscapeKey(msg tea.KeyPressMsg) bool {
	if _, ok := p.state.(editingState); !ok {
		return false
	}
	if !key.Matches(msg, p.keymap.Cancel) || p.editView.CapturesEscape() {
		return false
	}

	p.editView.Reset(p.data.Point, p.data.Offers, p.data.Destination)
	p.replaceEditWithPoint()
	return true
}

func (p *Presenter) handleExpand() {
	p.replacePointWithEdit()
}

func (p *Presenter) handleRollup() {
	p.ResetView()
}

func (p *Presenter) handleDelete() {
	p.onDataChange(trip.UserActionDeletePoint, trip.UpdateTypeMinor, p.data.Point.Clone())
}

func (p *Presenter) handleSubmit(candidate trip.Point) {
	updateType := trip.SubmitUpdateType(p.data.Point, candidate)
	p.onDataChange(trip.UserActionUpdatePoint, updateType, candidate.Clone())
	// The owner may have re-initialized or destroyed us by now; both leave
	// the state consistent for the swap below.
	p.replaceEditWithPoint()
}

func (p *Presenter) handleFavorite() {
	update := p.data.Point.Clone()
	update.IsFavorite = !update.IsFavorite
	p.onDataChange(trip.UserActionUpdatePoint, trip.UpdateTypeMinor, update)
}

func (p *Presenter) check(err error, op string) {
	if err != nil {
		p.log.Error().Err(err).Str("point", p.data.Point.ID).Msg(op)
	}
}
