package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	defaultIdleTimeout = 30 * time.Minute
	sweepInterval      = time.Minute
)

// Hub owns the live sessions and attaches clients to them. A session lives
// until it is deleted or has had no clients for the idle timeout.
type Hub struct {
	opts        engine.Options
	idleTimeout time.Duration

	mu         sync.RWMutex
	sessions   map[string]*Session // sessionID -> session
	register   chan registration
	unregister chan *Client
	done       chan struct{} // closed when Run returns
}

type registration struct {
	client *Client
	done   chan struct{}
}

// NewHub returns a hub whose sessions start with opts.
func NewHub(opts engine.Options) *Hub {
	return &Hub{
		opts:        opts,
		idleTimeout: defaultIdleTimeout,
		sessions:    make(map[string]*Session),
		register:    make(chan registration),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
	}
}

// SetIdleTimeout changes how long a session without clients is kept. Call it
// before Run.
func (h *Hub) SetIdleTimeout(d time.Duration) {
	if d > 0 {
		h.idleTimeout = d
	}
}

// Run serializes client registration and expires idle sessions until ctx is
// done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	sweep := time.NewTicker(sweepInterval)
	defer sweep.Stop()

	for {
		select {
		case r := <-h.register:
			h.addClient(r.client)
			close(r.done)
		case client := <-h.unregister:
			h.removeClient(client)
		case now := <-sweep.C:
			h.expireIdle(now)
		case <-ctx.Done():
			return
		}
	}
}

// Register attaches client to its session and returns once the client has
// been sent the current frame, so messages it sends afterwards see it as a
// member. After Run has stopped the client is closed instead.
func (h *Hub) Register(client *Client) {
	done := make(chan struct{})
	select {
	case h.register <- registration{client: client, done: done}:
		<-done
	case <-h.done:
		client.closeSend()
	}
}

// Unregister detaches client. It does not block once Run has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		client.closeSend()
	}
}

// expireIdle closes the sessions that have had no clients since before
// now minus the idle timeout, and returns how many it closed.
func (h *Hub) expireIdle(now time.Time) int {
	h.mu.RLock()
	var expired []string
	for id, s := range h.sessions {
		if since, idle := s.idleSince(); idle && now.Sub(since) >= h.idleTimeout {
			expired = append(expired, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range expired {
		if err := h.CloseSession(id); err == nil {
			slog.Info("session expired", "session", id)
		}
	}
	return len(expired)
}

// CreateSession starts an empty session.
func (h *Hub) CreateSession() *Session {
	s := NewSession(typeid.NewSessionID(), h.opts)

	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.mu.Unlock()

	slog.Info("session created", "session", s.ID())
	return s
}

func (h *Hub) Session(id string) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return s, nil
}

// CloseSession drops the session and disconnects its clients.
func (h *Hub) CloseSession(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	for _, c := range s.clientList() {
		s.removeClient(c)
		c.closeSend()
		if c.conn != nil {
			c.conn.Close(websocket.StatusGoingAway, "session closed")
		}
	}

	slog.Info("session closed", "session", id)
	return nil
}

func (h *Hub) addClient(client *Client) {
	s, err := h.Session(client.SessionID)
	if err != nil {
		slog.Warn("client for unknown session", "session", client.SessionID, "user", client.UserID)
		client.closeSend()
		return
	}
	s.addClient(client)

	// Send the current frame to the new client
	client.Send(s.Snapshot())

	// Broadcast join to other clients
	joinPayload, _ := json.Marshal(JoinPayload{
		UserID:   client.UserID,
		ClientID: client.ClientID,
	})
	s.broadcast(&Message{
		Type:      TypeSessionJoin,
		SessionID: s.ID(),
		UserID:    client.UserID,
		Payload:   joinPayload,
	}, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "session", s.ID())
}

func (h *Hub) removeClient(client *Client) {
	client.closeSend()

	s, err := h.Session(client.SessionID)
	if err != nil || !s.removeClient(client) {
		return
	}

	// Broadcast leave to remaining clients
	leavePayload, _ := json.Marshal(JoinPayload{
		UserID:   client.UserID,
		ClientID: client.ClientID,
	})
	s.broadcast(&Message{
		Type:      TypeSessionLeave,
		SessionID: s.ID(),
		UserID:    client.UserID,
		Payload:   leavePayload,
	}, "")

	slog.Info("client left", "user", client.UserID, "session", s.ID())
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	s, err := h.Session(sender.SessionID)
	if err != nil {
		slog.Warn("message for closed session", "session", sender.SessionID, "user", sender.UserID)
		return
	}
	s.Handle(sender, msg)
}
