package engine

import (
	"encoding/json"

	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // "path", "image", "ellipse", "bound", "handle", "control", "selectRect"
	EntityID    string        `json:"entityId,omitempty"`    // For hit correlation
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] world to device matrix
	Path        []PathCommand `json:"path,omitempty"`        // Device-space path data
	Fill        string        `json:"fill,omitempty"`        // Fill color
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width
	Dash        []float64     `json:"dash,omitempty"`        // Line dash pattern
	X           float64       `json:"x"`                     // Center, or left-top for images
	Y           float64       `json:"y"`
	Width       float64       `json:"width,omitempty"`
	Height      float64       `json:"height,omitempty"`
	RadiusX     float64       `json:"radiusX,omitempty"`
	RadiusY     float64       `json:"radiusY,omitempty"`
	Angle       float64       `json:"angle,omitempty"` // Counter-clockwise, radians
	Shape       string        `json:"shape,omitempty"` // Handle style: "rectangle" or "circle"
	ImageSource string        `json:"imageSource,omitempty"`
}

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["Z"].
type PathCommand []interface{}

// CompileDrawCommands generates a draw command buffer from a frame.
// Commands are in painter's order (back to front).
func CompileDrawCommands(f operator.Frame) []DrawCommand {
	var commands []DrawCommand
	for _, v := range f.Entities {
		compileContent(v.Entity, &commands)
		compileDecorations(v, &commands)
	}

	if f.Collection != nil {
		compileDecorations(*f.Collection, &commands)
	}

	if f.SelectRect != nil {
		corners := f.SelectRect.Corners()
		commands = append(commands, DrawCommand{
			Op:     "selectRect",
			Path:   polygonPath(corners[:], true),
			Stroke: "black",
			Dash:   []float64{6},
			X:      f.SelectRect.Location.X,
			Y:      f.SelectRect.Location.Y,
			Width:  f.SelectRect.Width,
			Height: f.SelectRect.Height,
		})
	}
	return commands
}

// compileContent emits the entity's own drawing.
func compileContent(e entity.Entity, commands *[]DrawCommand) {
	switch ent := e.(type) {
	case *entity.PolyShape:
		cmd := DrawCommand{
			Op:       "path",
			EntityID: ent.ID,
			Path:     polygonPath(ent.DeviceVertices(), ent.Closed),
		}
		applyShapeStyle(&cmd, ent.ShapeStyle)
		*commands = append(*commands, cmd)

	case *entity.Circle:
		c := ent.Center()
		cmd := DrawCommand{
			Op:        "ellipse",
			EntityID:  ent.ID,
			Transform: ent.Transform().Matrix().ToSlice(),
			X:         c.X,
			Y:         c.Y,
			RadiusX:   ent.RadiusX,
			RadiusY:   ent.RadiusY,
		}
		applyShapeStyle(&cmd, ent.ShapeStyle)
		*commands = append(*commands, cmd)

	case *entity.Image:
		p := ent.Position()
		*commands = append(*commands, DrawCommand{
			Op:          "image",
			EntityID:    ent.ID,
			Transform:   ent.Transform().Matrix().ToSlice(),
			X:           p.X,
			Y:           p.Y,
			Width:       ent.Width,
			Height:      ent.Height,
			ImageSource: ent.Source,
		})
	}
}

func applyShapeStyle(cmd *DrawCommand, s entity.ShapeStyle) {
	if s.Filled {
		cmd.Fill = s.Fill
		return
	}
	cmd.Stroke = s.Stroke
	cmd.StrokeWidth = s.LineWidth
}

// compileDecorations emits the selection bound, handles and controls of an
// entity view.
func compileDecorations(v operator.EntityView, commands *[]DrawCommand) {
	b := v.Entity.Attrs()

	if v.ShowBound {
		corners := v.Bound.Corners()
		*commands = append(*commands, DrawCommand{
			Op:          "bound",
			EntityID:    b.ID,
			Path:        polygonPath(corners[:], true),
			Stroke:      b.BorderColor,
			StrokeWidth: b.BorderWidth,
			X:           v.Bound.Location.X,
			Y:           v.Bound.Location.Y,
			Width:       v.Bound.Width,
			Height:      v.Bound.Height,
			Angle:       v.Bound.Angle,
		})
	}

	for _, h := range v.Handles {
		if h.Stem != nil {
			*commands = append(*commands, DrawCommand{
				Op:          "path",
				EntityID:    b.ID,
				Path:        polygonPath([]geom.Point{*h.Stem, h.Bound.Location}, false),
				Stroke:      b.BorderColor,
				StrokeWidth: b.BorderWidth,
			})
		}
		*commands = append(*commands, DrawCommand{
			Op:       "handle",
			EntityID: b.ID,
			Fill:     b.BorderColor,
			X:        h.Bound.Location.X,
			Y:        h.Bound.Location.Y,
			Width:    h.Bound.Width,
			Height:   h.Bound.Height,
			Shape:    string(b.ControlStyle),
		})
	}

	for _, c := range v.Controls {
		*commands = append(*commands, DrawCommand{
			Op:          "control",
			EntityID:    b.ID,
			X:           c.Bound.Location.X,
			Y:           c.Bound.Location.Y,
			Width:       c.Bound.Width,
			Height:      c.Bound.Height,
			Angle:       c.Bound.Angle,
			ImageSource: c.Control.Source,
		})
	}
}

func polygonPath(points []geom.Point, closed bool) []PathCommand {
	if len(points) == 0 {
		return nil
	}
	path := make([]PathCommand, 0, len(points)+1)
	path = append(path, PathCommand{"M", points[0].X, points[0].Y})
	for _, p := range points[1:] {
		path = append(path, PathCommand{"L", p.X, p.Y})
	}
	if closed {
		path = append(path, PathCommand{"Z"})
	}
	return path
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// HitTest returns the ID of the topmost visible entity whose device bound
// contains p, or empty string.
func HitTest(entities []entity.Entity, p geom.Point) string {
	// Traverse in reverse order (front to back) to get topmost hit
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if !e.Attrs().Visible {
			continue
		}
		if geom.IsPointInRectangle(p, entity.Bound(e)) {
			return e.Attrs().ID
		}
	}
	return ""
}

// SelectionBounds returns the axis-aligned union of the device bounds of
// entities. ok is false when entities is empty.
func SelectionBounds(entities []entity.Entity) (geom.Rectangle, bool) {
	if len(entities) == 0 {
		return geom.Rectangle{}, false
	}
	bounds := make([]geom.Rectangle, len(entities))
	for i, e := range entities {
		bounds[i] = entity.Bound(e)
	}
	r, err := geom.Union(bounds)
	if err != nil {
		return geom.Rectangle{}, false
	}
	return r, true
}

// RectToJSON serializes a rectangle as its axis-aligned left-top corner and
// size.
func RectToJSON(r geom.Rectangle) string {
	lt := r.LT()
	data, _ := json.Marshal(map[string]float64{
		"x":      lt.X,
		"y":      lt.Y,
		"width":  r.Width,
		"height": r.Height,
		"angle":  r.Angle,
	})
	return string(data)
}
