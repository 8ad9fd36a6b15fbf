package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inamate/inamate/editor-go/internal/document"
	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

var ErrEntityNotFound = errors.New("entity not found")

// Options configure an Engine. Zero handle settings keep the entity defaults.
type Options struct {
	Operator              operator.Options
	ControlSize           float64
	RotateControlDistance float64
	ControlStyle          entity.ControlStyle
}

// FrameListener is called with the compiled draw commands of every redraw.
type FrameListener func(commands []DrawCommand)

// Engine is the editor facade. It owns the entity list through an operator,
// applies editor-wide settings to new entities and exposes JSON queries for
// the frontend.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	opts Options
	op   *operator.Operator

	scene *document.Scene

	// Redraw bookkeeping
	redraws  int
	listener FrameListener
}

// NewEngine creates an engine with an empty scene.
func NewEngine(opts Options) *Engine {
	e := &Engine{opts: opts}
	e.op = operator.New(operator.RendererFunc(e.onFrame), opts.Operator)
	return e
}

func (e *Engine) onFrame(f operator.Frame) {
	e.redraws++
	if e.listener != nil {
		e.listener(CompileDrawCommands(f))
	}
}

// --- Commands (frontend → backend) ---

// SetFrameListener registers fn to receive every redraw. nil removes it.
func (e *Engine) SetFrameListener(fn FrameListener) {
	e.listener = fn
}

// LoadScene replaces all entities with those described by jsonData.
func (e *Engine) LoadScene(jsonData string) error {
	var scene document.Scene
	if err := json.Unmarshal([]byte(jsonData), &scene); err != nil {
		return fmt.Errorf("decode scene: %w", err)
	}
	return e.LoadDocument(&scene)
}

// LoadSampleScene loads the built-in sample scene.
func (e *Engine) LoadSampleScene(sceneID string) error {
	return e.LoadDocument(document.NewSampleScene(sceneID))
}

// LoadDocument replaces all entities with those of scene. A scene with a
// size also becomes the viewport.
func (e *Engine) LoadDocument(scene *document.Scene) error {
	entities, err := BuildEntities(scene)
	if err != nil {
		return fmt.Errorf("build scene %s: %w", scene.ID, err)
	}

	for _, ent := range e.op.Entities() {
		e.op.Remove(ent.Attrs().ID)
	}
	e.scene = scene
	if scene.Width > 0 && scene.Height > 0 {
		e.opts.Operator.Viewport = operator.Viewport{Width: float64(scene.Width), Height: float64(scene.Height)}
		e.op.SetOptions(e.opts.Operator)
	}
	e.AddEntity(entities...)
	return nil
}

// AddEntity puts entities on top of the scene, applying the editor-wide
// handle settings, and redraws.
func (e *Engine) AddEntity(entities ...entity.Entity) {
	for _, ent := range entities {
		e.applyDefaults(ent.Attrs())
		e.op.Add(ent)
	}
	e.op.Redraw()
}

func (e *Engine) applyDefaults(b *entity.Base) {
	if e.opts.ControlSize > 0 {
		b.ControlSize = e.opts.ControlSize
	}
	if e.opts.RotateControlDistance > 0 {
		b.RotateControlDistance = e.opts.RotateControlDistance
	}
	if e.opts.ControlStyle != "" {
		b.ControlStyle = e.opts.ControlStyle
	}
}

// RemoveEntity deletes the entity with the given id and redraws.
func (e *Engine) RemoveEntity(id string) error {
	if !e.op.Remove(id) {
		return fmt.Errorf("remove %s: %w", id, ErrEntityNotFound)
	}
	e.op.Redraw()
	return nil
}

// SetSelection replaces the selection and redraws.
func (e *Engine) SetSelection(ids []string) {
	e.op.Select(ids...)
	e.op.Redraw()
}

// SetViewport resizes the surface used by LimitInCanvas.
func (e *Engine) SetViewport(width, height float64) {
	e.opts.Operator.Viewport = operator.Viewport{Width: width, Height: height}
	e.op.SetOptions(e.opts.Operator)
}

// SetOperatorOptions replaces the interaction options. A zero viewport keeps
// the current one.
func (e *Engine) SetOperatorOptions(opts operator.Options) {
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = e.opts.Operator.Viewport
	}
	e.opts.Operator = opts
	e.op.SetOptions(opts)
	e.op.Redraw()
}

// SetXLocked sets the horizontal resize lock on every entity.
func (e *Engine) SetXLocked(v bool) {
	e.setLock(func(b *entity.Base) { b.XLocked = v })
}

// SetYLocked sets the vertical resize lock on every entity.
func (e *Engine) SetYLocked(v bool) {
	e.setLock(func(b *entity.Base) { b.YLocked = v })
}

// SetDiagLocked sets the corner resize lock on every entity.
func (e *Engine) SetDiagLocked(v bool) {
	e.setLock(func(b *entity.Base) { b.DiagLocked = v })
}

// SetRotateLocked sets the rotate lock on every entity.
func (e *Engine) SetRotateLocked(v bool) {
	e.setLock(func(b *entity.Base) { b.RotateLocked = v })
}

func (e *Engine) setLock(set func(b *entity.Base)) {
	for _, ent := range e.op.Entities() {
		set(ent.Attrs())
	}
	e.op.Redraw()
}

// Redraw pushes a fresh frame to the listener.
func (e *Engine) Redraw() {
	e.op.Redraw()
}

// Hover updates the cursor for a pointer at (x, y) without pressing.
func (e *Engine) Hover(x, y float64) string {
	return string(e.op.Hover(geom.Pt(x, y)))
}

func (e *Engine) PointerDown(x, y float64) {
	e.op.PointerDown(geom.Pt(x, y))
}

// PointerMove returns the cursor to show after the move.
func (e *Engine) PointerMove(x, y, dx, dy float64) string {
	return string(e.op.PointerMove(geom.Pt(x, y), geom.Vector{X: dx, Y: dy}))
}

func (e *Engine) PointerUp(x, y float64) {
	e.op.PointerUp(geom.Pt(x, y))
}

func (e *Engine) TouchStart(x, y float64) {
	e.op.TouchStart(geom.Pt(x, y))
}

func (e *Engine) TouchMove(x, y float64) {
	e.op.TouchMove(geom.Pt(x, y))
}

func (e *Engine) TouchEnd(x, y float64) {
	e.op.TouchEnd(geom.Pt(x, y))
}

// --- Queries (frontend ← backend) ---

// Entity returns the entity with the given id.
func (e *Engine) Entity(id string) (entity.Entity, error) {
	ent, ok := e.op.Find(id)
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", id, ErrEntityNotFound)
	}
	return ent, nil
}

// Entities returns all entities, bottom first.
func (e *Engine) Entities() []entity.Entity {
	return e.op.Entities()
}

// ActiveEntities returns the selected entities, bottom first.
func (e *Engine) ActiveEntities() []entity.Entity {
	return e.op.Active()
}

// Frame returns the current frame.
func (e *Engine) Frame() operator.Frame {
	return e.op.Frame()
}

// Cursor returns the cursor last requested by the operator.
func (e *Engine) Cursor() string {
	return string(e.op.Cursor())
}

// Status returns the operator status name.
func (e *Engine) Status() string {
	return e.op.Status().String()
}

// Redraws returns how many frames have been pushed.
func (e *Engine) Redraws() int {
	return e.redraws
}

// Render compiles the current frame and returns draw commands as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(CompileDrawCommands(e.op.Frame()))
	return result
}

// HitTest returns the id of the topmost entity under (x, y), or empty string.
func (e *Engine) HitTest(x, y float64) string {
	return HitTest(e.op.Entities(), geom.Pt(x, y))
}

// GetSelectionBounds returns the bounding box of the current selection as JSON.
func (e *Engine) GetSelectionBounds() string {
	r, ok := SelectionBounds(e.op.Active())
	if !ok {
		return RectToJSON(geom.Rectangle{})
	}
	return RectToJSON(r)
}

// GetSelection returns the ids of the selected entities as JSON.
func (e *Engine) GetSelection() string {
	active := e.op.Active()
	ids := make([]string, len(active))
	for i, ent := range active {
		ids[i] = ent.Attrs().ID
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

// GetScene returns the loaded scene metadata as JSON.
func (e *Engine) GetScene() string {
	if e.scene == nil {
		return "{}"
	}
	data, _ := json.Marshal(map[string]interface{}{
		"id":     e.scene.ID,
		"name":   e.scene.Name,
		"width":  e.scene.Width,
		"height": e.scene.Height,
	})
	return string(data)
}

// GetState returns the input state machine's state as JSON.
func (e *Engine) GetState() string {
	data, _ := json.Marshal(map[string]interface{}{
		"status":   e.op.Status().String(),
		"cursor":   e.op.Cursor(),
		"dragging": e.op.Dragging(),
		"entities": len(e.op.Entities()),
		"redraws":  e.redraws,
	})
	return string(data)
}
