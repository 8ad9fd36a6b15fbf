package operator

import (
	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
)

// Frame is everything a renderer needs to repaint the surface from scratch.
type Frame struct {
	// Entities are the visible entities, bottom first.
	Entities []EntityView
	// Collection is the multi-selection group, drawn above the entities.
	Collection *EntityView
	SelectRect *geom.Rectangle
	Cursor     Cursor
	Status     Status
	Pointer    geom.Point
}

// EntityView is one entity as it should appear in this frame.
type EntityView struct {
	Entity entity.Entity
	Bound  geom.Rectangle
	// ShowBound is set for active entities.
	ShowBound bool
	Handles   []HandleView
	Controls  []ControlView
}

// HandleView is a handle's hit square. Stem is set on the rotate handle and
// is the top edge midpoint it hangs from.
type HandleView struct {
	Handle entity.Handle
	Bound  geom.Rectangle
	Stem   *geom.Point
}

// ControlView is a custom control placed for this frame.
type ControlView struct {
	Control *entity.Control
	Bound   geom.Rectangle
}

// Frame builds the current frame. Members of a multi-selection show their
// bound but leave handles and controls to the group.
func (o *Operator) Frame() Frame {
	f := Frame{
		Cursor:  o.cursor,
		Status:  o.status,
		Pointer: o.lastPos,
	}

	for _, e := range o.Visible() {
		grouped := o.collection != nil && o.collection.Contains(e)
		f.Entities = append(f.Entities, view(e, !grouped))
	}

	if o.collection != nil {
		v := view(o.collection, true)
		f.Collection = &v
	}

	if o.status == StatusBoxSelect && o.selectRect != nil {
		r := o.selectRect.Rect()
		f.SelectRect = &r
	}
	return f
}

func view(e entity.Entity, decorate bool) EntityView {
	b := e.Attrs()
	v := EntityView{
		Entity:    e,
		Bound:     entity.Bound(e),
		ShowBound: b.Active,
	}
	if !b.Active || !decorate {
		return v
	}

	if b.DrawControlPoint {
		for _, h := range entity.Handles(e) {
			hv := HandleView{Handle: h, Bound: entity.HandleBound(e, h)}
			if h == entity.HandleRotate {
				stem := entity.HandleCenter(e, entity.HandleMT)
				hv.Stem = &stem
			}
			v.Handles = append(v.Handles, hv)
		}
	}

	if b.DrawControls && len(b.Controls) > 0 {
		for _, c := range b.Controls {
			v.Controls = append(v.Controls, ControlView{Control: c, Bound: c.Bound(v.Bound)})
		}
	}
	return v
}
