// Package operator turns pointer and single-touch input into selection, move,
// resize and rotate operations on a list of entities.
//
// An Operator is not safe for concurrent use. One operator drives one entity
// list; every input call runs to completion and ends with a redraw.
package operator

import (
	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
)

// Viewport is the size of the rendering surface in device units.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Options configure an Operator.
type Options struct {
	// LimitInCanvas keeps moved entities inside Viewport.
	LimitInCanvas bool
	Viewport      Viewport
	// LockGroupResize disables the resize handles of a multi-selection.
	LockGroupResize bool
	// TouchBoxSelect lets a touch on empty space start a box selection.
	// By default it only clears the selection.
	TouchBoxSelect bool
}

// Renderer receives a full frame after every input event.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

func (fn RendererFunc) Render(f Frame) { fn(f) }

// SelectRect is the rubber band of a box selection, in device space.
type SelectRect struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

// Rect returns the band as a non-flipped rectangle.
func (s SelectRect) Rect() geom.Rectangle {
	return geom.NewRectangle(geom.Mid(s.Start, s.End), s.End.X-s.Start.X, s.End.Y-s.Start.Y).Normalized()
}

// Operator is the input state machine of one editor surface.
type Operator struct {
	opts     Options
	renderer Renderer

	entities   []entity.Entity
	collection *entity.Collection

	status   Status
	cursor   Cursor
	dragging bool

	lastPos geom.Point

	hovered        entity.Entity
	hoveredControl *entity.Control
	selectRect     *SelectRect

	prevTouch *geom.Point
}

// New returns an operator with no entities. renderer may be nil.
func New(renderer Renderer, opts Options) *Operator {
	return &Operator{
		opts:     opts,
		renderer: renderer,
		status:   StatusBoxSelect,
		cursor:   CursorAuto,
	}
}

// Options returns the current options.
func (o *Operator) Options() Options { return o.opts }

// SetOptions replaces the options.
func (o *Operator) SetOptions(opts Options) { o.opts = opts }

// SetRenderer replaces the renderer.
func (o *Operator) SetRenderer(r Renderer) { o.renderer = r }

// Status returns the current status.
func (o *Operator) Status() Status { return o.status }

// Cursor returns the last requested cursor.
func (o *Operator) Cursor() Cursor { return o.cursor }

// Dragging reports whether a press is in progress.
func (o *Operator) Dragging() bool { return o.dragging }

// Collection returns the multi-selection group, or nil when at most one
// entity is active.
func (o *Operator) Collection() *entity.Collection { return o.collection }

// Entities returns all entities in drawing order, bottom first.
func (o *Operator) Entities() []entity.Entity {
	return append([]entity.Entity(nil), o.entities...)
}

// Add appends e on top of the scene.
func (o *Operator) Add(e entity.Entity) {
	o.entities = append(o.entities, e)
	o.refreshCollection()
}

// Remove deletes the entity with the given id and reports whether it was
// present.
func (o *Operator) Remove(id string) bool {
	for i, e := range o.entities {
		if e.Attrs().ID != id {
			continue
		}
		o.entities = append(o.entities[:i], o.entities[i+1:]...)
		if o.hovered == e {
			o.hovered = nil
			o.hoveredControl = nil
		}
		o.refreshCollection()
		return true
	}
	return false
}

// Find returns the entity with the given id.
func (o *Operator) Find(id string) (entity.Entity, bool) {
	for _, e := range o.entities {
		if e.Attrs().ID == id {
			return e, true
		}
	}
	return nil, false
}

// Visible returns the visible entities in drawing order.
func (o *Operator) Visible() []entity.Entity {
	var out []entity.Entity
	for _, e := range o.entities {
		if e.Attrs().Visible {
			out = append(out, e)
		}
	}
	return out
}

// Active returns the visible, active entities in drawing order.
func (o *Operator) Active() []entity.Entity {
	var out []entity.Entity
	for _, e := range o.entities {
		if b := e.Attrs(); b.Visible && b.Active {
			out = append(out, e)
		}
	}
	return out
}

// Select replaces the selection with the entities whose ids are given.
// Unknown ids are ignored.
func (o *Operator) Select(ids ...string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, e := range o.entities {
		e.Attrs().Active = want[e.Attrs().ID]
	}
	o.refreshCollection()
}

func (o *Operator) deactivateAll() {
	for _, e := range o.Visible() {
		e.Attrs().Active = false
	}
}

// refreshCollection groups the active entities when there is more than one.
func (o *Operator) refreshCollection() {
	active := o.Active()
	if len(active) < 2 {
		o.collection = nil
		return
	}

	c, err := entity.NewCollection(active)
	if err != nil {
		o.collection = nil
		return
	}
	if o.opts.LockGroupResize {
		c.LockAll()
	}
	o.collection = c
}

// handleTarget is the entity whose handles are hit-tested: the group when
// several entities are active, else the single active entity.
func (o *Operator) handleTarget() entity.Entity {
	active := o.Active()
	switch {
	case len(active) == 0:
		return nil
	case len(active) > 1 && o.collection != nil:
		return o.collection
	default:
		return active[0]
	}
}

// Hover classifies what a press at p would do and returns the cursor to
// show. It does nothing while dragging.
func (o *Operator) Hover(p geom.Point) Cursor {
	if o.dragging {
		return o.cursor
	}

	o.status = StatusBoxSelect
	o.cursor = CursorAuto
	o.hovered = nil
	o.hoveredControl = nil

	if target := o.handleTarget(); target != nil {
		if h, ok := entity.HitHandle(target, p); ok {
			o.status = handleStatus(h)
			o.cursor = CursorPointer
			if h == entity.HandleRotate {
				o.cursor = CursorCrosshair
			}
			return o.cursor
		}

		if target.Attrs().DrawControls {
			if c, ok := entity.HitControl(target, p); ok {
				o.status = StatusControlClick
				o.cursor = Cursor(c.Cursor)
				o.hoveredControl = c
				return o.cursor
			}
		}
	}

	if o.collection != nil && geom.IsPointInRectangle(p, entity.Bound(o.collection)) {
		o.status = StatusMoveEntity
		o.cursor = CursorMove
		return o.cursor
	}

	visible := o.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		if geom.IsPointInRectangle(p, entity.Bound(visible[i])) {
			o.status = StatusMoveEntity
			o.cursor = CursorMove
			o.hovered = visible[i]
			return o.cursor
		}
	}
	return o.cursor
}

// Redraw sends the current frame to the renderer.
func (o *Operator) Redraw() {
	if o.renderer != nil {
		o.renderer.Render(o.Frame())
	}
}
