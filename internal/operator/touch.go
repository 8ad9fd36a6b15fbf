package operator

import "github.com/inamate/inamate/editor-go/internal/geom"

// TouchStart classifies the touch point like a hover and presses there. A
// touch on empty space clears the selection and, unless TouchBoxSelect is
// set, starts nothing.
func (o *Operator) TouchStart(p geom.Point) {
	if o.dragging {
		return
	}

	o.Hover(p)
	if o.status == StatusBoxSelect && !o.opts.TouchBoxSelect {
		o.status = StatusNone
	}

	o.prevTouch = &p
	o.press(p, true)
}

// TouchMove drags with the delta from the previous touch sample, since touch
// events carry absolute positions only.
func (o *Operator) TouchMove(p geom.Point) {
	if !o.dragging {
		return
	}

	var delta geom.Vector
	if o.prevTouch != nil {
		delta = o.prevTouch.VectorTo(p)
	}
	o.prevTouch = &p
	o.drag(p, delta)
}

// TouchEnd finishes the touch.
func (o *Operator) TouchEnd(p geom.Point) {
	o.release(p, true)
	o.prevTouch = nil
}
