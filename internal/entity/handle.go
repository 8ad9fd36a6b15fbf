package entity

import "github.com/inamate/inamate/editor-go/internal/geom"

// Handle identifies one of the grips drawn around an active entity.
type Handle int

// Handles are declared in hit-test priority order.
const (
	HandleLT Handle = iota
	HandleLB
	HandleRB
	HandleRT
	HandleLM
	HandleRM
	HandleMB
	HandleMT
	HandleRotate
)

var handleNames = [...]string{
	HandleLT:     "lt",
	HandleLB:     "lb",
	HandleRB:     "rb",
	HandleRT:     "rt",
	HandleLM:     "lm",
	HandleRM:     "rm",
	HandleMB:     "mb",
	HandleMT:     "mt",
	HandleRotate: "rotate",
}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "unknown"
	}
	return handleNames[h]
}

// Corner reports whether h is one of the four diagonal handles.
func (h Handle) Corner() bool { return h <= HandleRT }

// Bound returns the entity's bounding rectangle in device space. It turns with
// the entity.
func Bound(e Entity) geom.Rectangle {
	b := e.Attrs()
	w := e.BoundWorld()
	center := b.coord.WorldToDevice(geom.Mid(w.LT(), w.RD()))

	r := geom.NewRectangle(center, w.Width/b.coord.LenX(), w.Height/b.coord.LenY())
	r.Angle = b.coord.Angle()
	return r
}

// HandleCenter returns the device-space position of handle h. The rotate
// handle sits RotateControlDistance world units above the top edge midpoint.
func HandleCenter(e Entity, h Handle) geom.Point {
	b := e.Attrs()
	w := e.BoundWorld()

	var p geom.Point
	switch h {
	case HandleLT:
		p = w.LT()
	case HandleLB:
		p = w.LD()
	case HandleRB:
		p = w.RD()
	case HandleRT:
		p = w.RT()
	case HandleLM:
		p = geom.Mid(w.LT(), w.LD())
	case HandleRM:
		p = geom.Mid(w.RT(), w.RD())
	case HandleMB:
		p = geom.Mid(w.LD(), w.RD())
	case HandleMT:
		p = geom.Mid(w.LT(), w.RT())
	case HandleRotate:
		tm := geom.Mid(w.LT(), w.RT())
		p = geom.Pt(tm.X, tm.Y-b.RotateControlDistance)
	}
	return b.coord.WorldToDevice(p)
}

// HandleBound returns the square hit region of handle h. It is not rotated.
func HandleBound(e Entity, h Handle) geom.Rectangle {
	size := e.Attrs().ControlSize
	return geom.NewRectangle(HandleCenter(e, h), size, size)
}

// HandleEnabled reports whether the lock flags allow handle h.
func (b *Base) HandleEnabled(h Handle) bool {
	switch h {
	case HandleLT, HandleLB, HandleRB, HandleRT:
		return !b.DiagLocked
	case HandleLM, HandleRM:
		return !b.XLocked
	case HandleMB, HandleMT:
		return !b.YLocked
	case HandleRotate:
		return !b.RotateLocked
	}
	return false
}

// Handles lists the enabled handles of e in hit-test priority order.
func Handles(e Entity) []Handle {
	b := e.Attrs()
	var hs []Handle
	for h := HandleLT; h <= HandleRotate; h++ {
		if b.HandleEnabled(h) {
			hs = append(hs, h)
		}
	}
	return hs
}

// HitHandle returns the first enabled handle of e whose hit region contains
// p.
func HitHandle(e Entity, p geom.Point) (Handle, bool) {
	for _, h := range Handles(e) {
		if geom.IsPointInRectangle(p, HandleBound(e, h)) {
			return h, true
		}
	}
	return 0, false
}

// HitControl returns the first control of e whose bound contains p.
func HitControl(e Entity, p geom.Point) (*Control, bool) {
	if len(e.Attrs().Controls) == 0 {
		return nil, false
	}
	owner := Bound(e)
	for _, c := range e.Attrs().Controls {
		if geom.IsPointInRectangle(p, c.Bound(owner)) {
			return c, true
		}
	}
	return nil, false
}
