package document

// Scene is the JSON description of an editor surface and the entities placed
// on it, bottom first.
type Scene struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Entities []Node `json:"entities"`
}

type NodeKind string

const (
	NodeKindPolyShape NodeKind = "polyShape"
	NodeKindCircle    NodeKind = "circle"
	NodeKindImage     NodeKind = "image"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Filled      bool    `json:"filled"`
}

// Locks mirror the per-entity handle lock flags.
type Locks struct {
	X      bool `json:"x"`
	Y      bool `json:"y"`
	Diag   bool `json:"diag"`
	Rotate bool `json:"rotate"`
}

// Control is a custom control hanging off an entity's bound.
type Control struct {
	Anchor  string  `json:"anchor"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Cursor  string  `json:"cursor"`
	Source  string  `json:"source"`
}

// Node is one entity in world coordinates. Which geometry fields apply
// depends on Kind: Points and Closed for poly shapes, X/Y as the center and
// RadiusX/RadiusY for circles, X/Y as the left-top and Width/Height for
// images.
type Node struct {
	ID      string   `json:"id"`
	Kind    NodeKind `json:"kind"`
	Points  []Point  `json:"points,omitempty"`
	Closed  bool     `json:"closed,omitempty"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	RadiusX float64  `json:"radiusX,omitempty"`
	RadiusY float64  `json:"radiusY,omitempty"`
	Source  string   `json:"source,omitempty"`

	// Angle is an initial counter-clockwise rotation in radians about the
	// entity's center.
	Angle float64 `json:"angle,omitempty"`

	Style    *Style    `json:"style,omitempty"`
	Hidden   bool      `json:"hidden,omitempty"`
	Locks    Locks     `json:"locks"`
	Controls []Control `json:"controls,omitempty"`
}

// NewEmptyScene creates a scene with no entities.
func NewEmptyScene(sceneID string, width, height int) *Scene {
	return &Scene{
		ID:       sceneID,
		Name:     "Scene 1",
		Width:    width,
		Height:   height,
		Entities: []Node{},
	}
}
