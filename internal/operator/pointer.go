package operator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
)

// PointerDown starts a drag with the status decided by the last Hover.
func (o *Operator) PointerDown(p geom.Point) {
	o.press(p, false)
}

// PointerMove hovers when no button is held and drags otherwise. movement is
// the pointer delta since the previous sample. It returns the cursor to show.
func (o *Operator) PointerMove(p geom.Point, movement geom.Vector) Cursor {
	if !o.dragging {
		return o.Hover(p)
	}
	o.drag(p, movement)
	return o.cursor
}

// PointerUp ends the drag.
func (o *Operator) PointerUp(p geom.Point) {
	o.release(p, false)
}

func (o *Operator) press(p geom.Point, touch bool) {
	o.dragging = true
	o.lastPos = p

	switch o.status {
	case StatusMoveEntity:
		o.selectForMove(p)
	case StatusControlClick:
		if c := o.hoveredControl; c != nil {
			if touch {
				c.TouchStart(p)
			} else {
				c.Down(p)
			}
		}
	case StatusBoxSelect:
		o.selectRect = &SelectRect{Start: p, End: p}
		o.deactivateAll()
	case StatusNone:
		o.deactivateAll()
	}

	o.refreshCollection()
	o.Redraw()
}

// selectForMove replaces the selection with the hovered entity unless the
// press lands on the current selection.
func (o *Operator) selectForMove(p geom.Point) {
	active := o.Active()
	if len(active) > 0 {
		bounds := make([]geom.Rectangle, len(active))
		for i, e := range active {
			bounds[i] = entity.Bound(e)
		}
		union, err := geom.Union(bounds)
		if err == nil && geom.IsPointInRectangle(p, union) {
			return
		}
		o.deactivateAll()
	}
	if o.hovered != nil {
		o.hovered.Attrs().Active = true
	}
}

func (o *Operator) drag(p geom.Point, movement geom.Vector) {
	switch {
	case o.status == StatusBoxSelect:
		if o.selectRect != nil {
			o.selectRect.End = p
		}
	case o.status == StatusMoveEntity:
		o.moveActive(movement)
	case o.status.Resizing():
		o.resizeActive(p)
	case o.status == StatusRotateEntity:
		o.rotateActive(p)
	case o.status == StatusControlClick:
		if c := o.hoveredControl; c != nil {
			c.Move(p)
		}
	}

	o.lastPos = p
	o.Redraw()
}

func (o *Operator) release(p geom.Point, touch bool) {
	switch o.status {
	case StatusBoxSelect:
		if o.selectRect != nil {
			band := o.selectRect.Rect()
			for _, e := range o.Visible() {
				if geom.Intersects(band, entity.Bound(e)) {
					e.Attrs().Active = true
				}
			}
		}
	case StatusControlClick:
		if c := o.hoveredControl; c != nil {
			if touch {
				c.TouchEnd(p)
			} else {
				c.Up(p)
			}
		}
	}

	o.refreshCollection()
	o.dragging = false
	o.selectRect = nil
	o.Redraw()
}

// moveActive translates every active entity by delta, then pushes each one
// back inside the viewport when LimitInCanvas is set.
func (o *Operator) moveActive(delta geom.Vector) {
	for _, e := range o.Active() {
		b := e.Attrs()
		b.Displace(delta)
		if o.opts.LimitInCanvas {
			b.Displace(o.clampCorrection(entity.Bound(e)))
		}
	}
}

func (o *Operator) clampCorrection(bound geom.Rectangle) geom.Vector {
	vp := o.opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return geom.Vector{}
	}

	corners := bound.Corners()
	xs := make([]float64, len(corners))
	ys := make([]float64, len(corners))
	for i, c := range corners {
		xs[i] = c.X
		ys[i] = c.Y
	}
	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)

	var v geom.Vector
	if minX < 0 {
		v.X = -minX
	}
	if maxX > vp.Width {
		v.X = vp.Width - maxX
	}
	if minY < 0 {
		v.Y = -minY
	}
	if maxY > vp.Height {
		v.Y = vp.Height - maxY
	}
	return v
}

type zoomFunc func(b *entity.Base, origin geom.Point, scale float64)

// resizeGeometry returns, for the handle being dragged, the pivot opposite
// to it, the current distance the pointer distance is compared against, and
// the zoom to apply.
func resizeGeometry(s Status, bound geom.Rectangle) (geom.Point, float64, zoomFunc) {
	lt, ld, rt, rd := bound.LT(), bound.LD(), bound.RT(), bound.RD()
	diag := lt.Distance(rd)
	width := lt.Distance(rt)
	height := lt.Distance(ld)

	switch s {
	case StatusResizeLT:
		return rd, diag, (*entity.Base).Zoom
	case StatusResizeLM:
		return geom.Mid(rt, rd), width, (*entity.Base).ZoomX
	case StatusResizeLB:
		return rt, ld.Distance(rt), (*entity.Base).Zoom
	case StatusResizeMB:
		return geom.Mid(lt, rt), height, (*entity.Base).ZoomY
	case StatusResizeRB:
		return lt, diag, (*entity.Base).Zoom
	case StatusResizeRM:
		return geom.Mid(lt, ld), width, (*entity.Base).ZoomX
	case StatusResizeRT:
		return ld, ld.Distance(rt), (*entity.Base).Zoom
	case StatusResizeMT:
		return geom.Mid(ld, rd), height, (*entity.Base).ZoomY
	}
	return geom.Point{}, 0, nil
}

// resizeActive scales every active entity about the pivot opposite to the
// dragged handle. The ratio is taken against the live bound, so each sample
// applies only the change since the previous one.
func (o *Operator) resizeActive(p geom.Point) {
	active := o.Active()
	if len(active) == 0 {
		return
	}

	var bound geom.Rectangle
	if o.collection != nil {
		bound = entity.Bound(o.collection)
	} else {
		bound = entity.Bound(active[0])
	}

	pivot, ref, zoom := resizeGeometry(o.status, bound)
	if zoom == nil || ref == 0 {
		return
	}
	scale := p.Distance(pivot) / ref
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return
	}

	for _, e := range active {
		zoom(e.Attrs(), pivot, scale)
	}
}

// rotateActive turns each active entity about its own center so that its
// rotate handle follows the pointer.
func (o *Operator) rotateActive(p geom.Point) {
	for _, e := range o.Active() {
		center := entity.Bound(e).Location
		handle := entity.HandleCenter(e, entity.HandleRotate)

		from := geom.CartesianToPolar(geom.Point(center.VectorTo(handle))).Angle
		to := geom.CartesianToPolar(geom.Point(center.VectorTo(p))).Angle
		e.Attrs().RotateAnticlockwise(-(to - from))
	}
}
