package operator

import "github.com/inamate/inamate/editor-go/internal/entity"

// Status is what a press at the current pointer position would do, or what
// the ongoing drag is doing.
type Status int

const (
	StatusNone Status = iota
	StatusBoxSelect
	StatusControlClick
	StatusRotateEntity
	StatusMoveEntity
	StatusResizeLT
	StatusResizeLM
	StatusResizeLB
	StatusResizeMB
	StatusResizeRB
	StatusResizeRM
	StatusResizeRT
	StatusResizeMT
)

var statusNames = [...]string{
	StatusNone:         "none",
	StatusBoxSelect:    "boxSelect",
	StatusControlClick: "controlClick",
	StatusRotateEntity: "rotateEntity",
	StatusMoveEntity:   "moveEntity",
	StatusResizeLT:     "resizeLT",
	StatusResizeLM:     "resizeLM",
	StatusResizeLB:     "resizeLB",
	StatusResizeMB:     "resizeMB",
	StatusResizeRB:     "resizeRB",
	StatusResizeRM:     "resizeRM",
	StatusResizeRT:     "resizeRT",
	StatusResizeMT:     "resizeMT",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Resizing reports whether s is one of the resize statuses.
func (s Status) Resizing() bool {
	return s >= StatusResizeLT && s <= StatusResizeMT
}

func handleStatus(h entity.Handle) Status {
	switch h {
	case entity.HandleLT:
		return StatusResizeLT
	case entity.HandleLB:
		return StatusResizeLB
	case entity.HandleRB:
		return StatusResizeRB
	case entity.HandleRT:
		return StatusResizeRT
	case entity.HandleLM:
		return StatusResizeLM
	case entity.HandleRM:
		return StatusResizeRM
	case entity.HandleMB:
		return StatusResizeMB
	case entity.HandleMT:
		return StatusResizeMT
	case entity.HandleRotate:
		return StatusRotateEntity
	}
	return StatusNone
}

// Cursor is the pointer style the operator asks the host to show.
type Cursor string

const (
	CursorAuto      Cursor = "auto"
	CursorPointer   Cursor = "pointer"
	CursorCrosshair Cursor = "crosshair"
	CursorMove      Cursor = "move"
)
