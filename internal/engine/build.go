package engine

import (
	"errors"
	"fmt"

	"github.com/inamate/inamate/editor-go/internal/document"
	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

var (
	ErrUnknownNodeKind = errors.New("unknown node kind")
	ErrDuplicateID     = errors.New("duplicate entity id")
)

// BuildEntities turns a scene description into editor entities, bottom
// first. The first node that cannot be built aborts the load.
func BuildEntities(scene *document.Scene) ([]entity.Entity, error) {
	entities := make([]entity.Entity, 0, len(scene.Entities))
	for i := range scene.Entities {
		e, err := buildEntity(&scene.Entities[i])
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// AddNode builds one entity from n, puts it on top of the scene and returns
// its id.
func (e *Engine) AddNode(n document.Node) (string, error) {
	ent, err := buildEntity(&n)
	if err != nil {
		return "", err
	}
	if _, ok := e.op.Find(ent.Attrs().ID); ok {
		return "", fmt.Errorf("add %s: %w", ent.Attrs().ID, ErrDuplicateID)
	}
	e.AddEntity(ent)
	return ent.Attrs().ID, nil
}

func buildEntity(n *document.Node) (entity.Entity, error) {
	var e entity.Entity
	switch n.Kind {
	case document.NodeKindPolyShape:
		points := make([]geom.Point, len(n.Points))
		for i, p := range n.Points {
			points[i] = geom.Pt(p.X, p.Y)
		}
		s, err := entity.NewPolyShape(points, n.Closed)
		if err != nil {
			return nil, err
		}
		applyStyle(&s.ShapeStyle, n.Style)
		e = s

	case document.NodeKindCircle:
		c := entity.NewCircle(geom.Pt(n.X, n.Y), n.RadiusX, n.RadiusY)
		applyStyle(&c.ShapeStyle, n.Style)
		e = c

	case document.NodeKindImage:
		e = entity.NewImage(geom.Pt(n.X, n.Y), n.Source, n.Width, n.Height)

	default:
		return nil, fmt.Errorf("%q: %w", n.Kind, ErrUnknownNodeKind)
	}

	b := e.Attrs()
	if n.ID != "" {
		b.ID = n.ID
	}
	if b.ID == "" {
		b.ID = typeid.NewEntityID()
	}
	b.Visible = !n.Hidden
	b.XLocked = n.Locks.X
	b.YLocked = n.Locks.Y
	b.DiagLocked = n.Locks.Diag
	b.RotateLocked = n.Locks.Rotate

	for _, nc := range n.Controls {
		anchor, err := entity.ParseAnchor(nc.Anchor)
		if err != nil {
			return nil, err
		}
		c := entity.NewControl(anchor, nc.OffsetX, nc.OffsetY, nc.Width, nc.Height)
		if nc.Cursor != "" {
			c.Cursor = nc.Cursor
		}
		c.Source = nc.Source
		b.AddControl(c)
	}

	if n.Angle != 0 {
		b.RotateAnticlockwise(n.Angle)
	}
	return e, nil
}

func applyStyle(dst *entity.ShapeStyle, s *document.Style) {
	if s == nil {
		return
	}
	if s.Fill != "" {
		dst.Fill = s.Fill
	}
	if s.Stroke != "" {
		dst.Stroke = s.Stroke
	}
	if s.StrokeWidth > 0 {
		dst.LineWidth = s.StrokeWidth
	}
	dst.Filled = s.Filled
}
