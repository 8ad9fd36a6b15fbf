package session

import (
	"encoding/json"

	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

// Message is the envelope of everything sent over a session websocket.
type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

// Client to server.
const (
	TypeInput        = "input"
	TypeSceneLoad    = "scene.load"
	TypeSceneSample  = "scene.sample"
	TypeSelectionSet = "selection.set"
	TypeEntityAdd    = "entity.add"
	TypeEntityRemove = "entity.remove"
	TypeLocksSet     = "locks.set"
	TypeOptionsSet   = "options.set"
)

// Server to client.
const (
	TypeFrame        = "frame"
	TypeCursor       = "cursor"
	TypeError        = "error"
	TypeSessionJoin  = "session.join"
	TypeSessionLeave = "session.leave"
)

// FramePayload carries a full redraw. Seq on the envelope orders frames.
type FramePayload struct {
	Commands []engine.DrawCommand `json:"commands"`
	Cursor   string               `json:"cursor"`
	Status   string               `json:"status"`
}

// CursorPayload is sent to the sender of an input that changed the cursor
// without a redraw.
type CursorPayload struct {
	Cursor string `json:"cursor"`
}

type ErrorPayload struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type SelectionPayload struct {
	IDs []string `json:"ids"`
}

type EntityPayload struct {
	ID string `json:"id"`
}

// LocksPayload sets the given locks on every entity. Nil fields are left
// alone.
type LocksPayload struct {
	X      *bool `json:"x,omitempty"`
	Y      *bool `json:"y,omitempty"`
	Diag   *bool `json:"diag,omitempty"`
	Rotate *bool `json:"rotate,omitempty"`
}

type OptionsPayload struct {
	LimitInCanvas   bool               `json:"limitInCanvas"`
	LockGroupResize bool               `json:"lockGroupResize"`
	TouchBoxSelect  bool               `json:"touchBoxSelect"`
	Viewport        *operator.Viewport `json:"viewport,omitempty"`
}

type JoinPayload struct {
	UserID   string `json:"userId"`
	ClientID string `json:"clientId"`
}
