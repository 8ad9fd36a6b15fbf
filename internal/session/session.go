package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inamate/inamate/editor-go/internal/document"
	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

var ErrUnknownMessage = errors.New("unknown message type")

// Session is one shared editor surface. Every connected client sees the same
// entities; input from any of them drives the session's engine and the
// resulting frames go to all of them.
type Session struct {
	id string

	// mu serializes access to the engine, which is not safe for concurrent
	// use.
	mu      sync.Mutex
	engine  *engine.Engine
	seq     int64
	pending []engine.DrawCommand
	redrawn bool

	clientsMu sync.RWMutex
	clients   map[string]*Client // clientID -> client
	idleAt    time.Time          // zero while clients are connected
}

func NewSession(id string, opts engine.Options) *Session {
	s := &Session{
		id:      id,
		engine:  engine.NewEngine(opts),
		clients: make(map[string]*Client),
		idleAt:  time.Now(),
	}
	s.engine.SetFrameListener(s.onFrame)
	return s
}

func (s *Session) ID() string { return s.id }

// onFrame runs with mu held. Only the last frame of a message is sent.
func (s *Session) onFrame(commands []engine.DrawCommand) {
	s.pending = commands
	s.redrawn = true
}

// Do runs fn against the engine with the session locked and broadcasts the
// frame if fn redrew.
func (s *Session) Do(fn func(e *engine.Engine) error) error {
	s.mu.Lock()
	err := fn(s.engine)
	frame := s.takeFrameLocked()
	s.mu.Unlock()

	if frame != nil {
		s.broadcast(frame, "")
	}
	return err
}

// takeFrameLocked wraps the pending redraw in a frame message, or returns nil
// when there was none.
func (s *Session) takeFrameLocked() *Message {
	if !s.redrawn {
		return nil
	}
	s.redrawn = false
	commands := s.pending
	s.pending = nil
	return s.frameMessageLocked(commands)
}

func (s *Session) frameMessageLocked(commands []engine.DrawCommand) *Message {
	if commands == nil {
		commands = []engine.DrawCommand{}
	}
	s.seq++
	payload, _ := json.Marshal(FramePayload{
		Commands: commands,
		Cursor:   s.engine.Cursor(),
		Status:   s.engine.Status(),
	})
	return &Message{
		Type:      TypeFrame,
		SessionID: s.id,
		Seq:       s.seq,
		Payload:   payload,
	}
}

// Snapshot returns a frame of the current state without redrawing.
func (s *Session) Snapshot() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameMessageLocked(engine.CompileDrawCommands(s.engine.Frame()))
}

// State returns the engine state and selection as JSON.
func (s *Session) State() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, _ := json.Marshal(map[string]interface{}{
		"id":        s.id,
		"clients":   s.ClientCount(),
		"state":     json.RawMessage(s.engine.GetState()),
		"scene":     json.RawMessage(s.engine.GetScene()),
		"selection": json.RawMessage(s.engine.GetSelection()),
	})
	return data
}

// Handle applies a client message. Errors go back to the sender only.
func (s *Session) Handle(sender *Client, msg *Message) {
	s.mu.Lock()
	cursor, err := s.applyLocked(msg)
	frame := s.takeFrameLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Warn("message rejected", "type", msg.Type, "error", err, "session", s.id, "user", sender.UserID)
		payload, _ := json.Marshal(ErrorPayload{Type: msg.Type, Error: err.Error()})
		sender.Send(&Message{Type: TypeError, SessionID: s.id, Payload: payload})
	}

	switch {
	case frame != nil:
		s.broadcast(frame, "")
	case msg.Type == TypeInput && err == nil:
		payload, _ := json.Marshal(CursorPayload{Cursor: cursor})
		sender.Send(&Message{Type: TypeCursor, SessionID: s.id, Payload: payload})
	}
}

func (s *Session) applyLocked(msg *Message) (string, error) {
	e := s.engine
	switch msg.Type {
	case TypeInput:
		var in engine.Input
		if err := json.Unmarshal(msg.Payload, &in); err != nil {
			return "", fmt.Errorf("invalid input: %w", err)
		}
		slog.Debug("input", "kind", in.Kind, "x", in.X, "y", in.Y, "session", s.id)
		return e.Dispatch(in)

	case TypeSceneLoad:
		return "", e.LoadScene(string(msg.Payload))

	case TypeSceneSample:
		return "", e.LoadSampleScene(s.id)

	case TypeSelectionSet:
		var p SelectionPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return "", fmt.Errorf("invalid selection: %w", err)
		}
		e.SetSelection(p.IDs)

	case TypeEntityAdd:
		var n document.Node
		if err := json.Unmarshal(msg.Payload, &n); err != nil {
			return "", fmt.Errorf("invalid entity: %w", err)
		}
		id, err := e.AddNode(n)
		if err != nil {
			return "", err
		}
		slog.Debug("entity added", "entity", id, "session", s.id)

	case TypeEntityRemove:
		var p EntityPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return "", fmt.Errorf("invalid entity: %w", err)
		}
		return "", e.RemoveEntity(p.ID)

	case TypeLocksSet:
		var p LocksPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return "", fmt.Errorf("invalid locks: %w", err)
		}
		if p.X != nil {
			e.SetXLocked(*p.X)
		}
		if p.Y != nil {
			e.SetYLocked(*p.Y)
		}
		if p.Diag != nil {
			e.SetDiagLocked(*p.Diag)
		}
		if p.Rotate != nil {
			e.SetRotateLocked(*p.Rotate)
		}

	case TypeOptionsSet:
		var p OptionsPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return "", fmt.Errorf("invalid options: %w", err)
		}
		opts := operator.Options{
			LimitInCanvas:   p.LimitInCanvas,
			LockGroupResize: p.LockGroupResize,
			TouchBoxSelect:  p.TouchBoxSelect,
		}
		if p.Viewport != nil {
			opts.Viewport = *p.Viewport
		}
		e.SetOperatorOptions(opts)

	default:
		return "", fmt.Errorf("%q: %w", msg.Type, ErrUnknownMessage)
	}
	return "", nil
}

func (s *Session) addClient(c *Client) {
	s.clientsMu.Lock()
	s.clients[c.ClientID] = c
	s.idleAt = time.Time{}
	s.clientsMu.Unlock()
}

// removeClient reports whether c was a member.
func (s *Session) removeClient(c *Client) bool {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if _, ok := s.clients[c.ClientID]; !ok {
		return false
	}
	delete(s.clients, c.ClientID)
	if len(s.clients) == 0 {
		s.idleAt = time.Now()
	}
	return true
}

// idleSince reports when the last client left, and whether the session has
// no clients.
func (s *Session) idleSince() (time.Time, bool) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return s.idleAt, len(s.clients) == 0
}

func (s *Session) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

func (s *Session) clientList() []*Client {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	clients := make([]*Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

func (s *Session) broadcast(msg *Message, excludeClientID string) {
	for _, c := range s.clientList() {
		if c.ClientID != excludeClientID {
			c.Send(msg)
		}
	}
}
