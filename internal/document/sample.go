package document

import "github.com/inamate/inamate/editor-go/internal/typeid"

// NewSampleScene returns a small scene with one entity of every kind.
func NewSampleScene(sceneID string) *Scene {
	return &Scene{
		ID:     sceneID,
		Name:   "Sample",
		Width:  1280,
		Height: 720,
		Entities: []Node{
			{
				ID:   typeid.NewEntityID(),
				Kind: NodeKindPolyShape,
				Points: []Point{
					{X: 100, Y: 100},
					{X: 260, Y: 100},
					{X: 260, Y: 220},
					{X: 100, Y: 220},
				},
				Closed: true,
				Style:  &Style{Fill: "#4a90d9", Stroke: "#2c5aa0", StrokeWidth: 2, Filled: true},
			},
			{
				ID:   typeid.NewEntityID(),
				Kind: NodeKindPolyShape,
				Points: []Point{
					{X: 400, Y: 120},
					{X: 480, Y: 260},
					{X: 320, Y: 260},
				},
				Closed: true,
				Style:  &Style{Stroke: "#e74c3c", StrokeWidth: 3},
			},
			{
				ID:      typeid.NewEntityID(),
				Kind:    NodeKindCircle,
				X:       640,
				Y:       200,
				RadiusX: 60,
				Style:   &Style{Fill: "#2ecc71", Filled: true},
			},
			{
				ID:      typeid.NewEntityID(),
				Kind:    NodeKindCircle,
				X:       860,
				Y:       200,
				RadiusX: 90,
				RadiusY: 45,
				Angle:   0.3,
				Style:   &Style{Stroke: "#9b59b6", StrokeWidth: 2},
			},
			{
				ID:     typeid.NewEntityID(),
				Kind:   NodeKindImage,
				X:      300,
				Y:      380,
				Width:  240,
				Height: 160,
				Source: "/assets/sample.png",
				Locks:  Locks{Rotate: true},
				Controls: []Control{
					{Anchor: "RT", OffsetX: 10, OffsetY: -10, Width: 24, Height: 24, Cursor: "pointer", Source: "/assets/close.svg"},
				},
			},
		},
	}
}
