package session

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/inamate/editor-go/internal/auth"
	"github.com/inamate/inamate/editor-go/internal/document"
	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

type Handler struct {
	hub            *Hub
	auth           *auth.Service
	originPatterns []string
}

func NewHandler(hub *Hub, authSvc *auth.Service, originPatterns []string) *Handler {
	return &Handler{
		hub:            hub,
		auth:           authSvc,
		originPatterns: originPatterns,
	}
}

type createRequest struct {
	Sample bool            `json:"sample"`
	Scene  json.RawMessage `json:"scene"`
}

type createResponse struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Token     string `json:"token"`
}

// Create starts a session, optionally loading a scene, and returns a token
// for connecting to it. An empty body starts an empty session.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		auth.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	s := h.hub.CreateSession()

	var loadErr error
	switch {
	case len(req.Scene) > 0:
		loadErr = s.Do(func(e *engine.Engine) error { return e.LoadScene(string(req.Scene)) })
	case req.Sample:
		loadErr = s.Do(func(e *engine.Engine) error { return e.LoadSampleScene(s.ID()) })
	default:
		vp := h.hub.opts.Operator.Viewport
		scene := document.NewEmptyScene(s.ID(), int(vp.Width), int(vp.Height))
		loadErr = s.Do(func(e *engine.Engine) error { return e.LoadDocument(scene) })
	}
	if loadErr != nil {
		h.hub.CloseSession(s.ID())
		auth.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": loadErr.Error()})
		return
	}

	userID := "anon-" + uuid.New().String()[:8]
	token, err := h.auth.IssueToken(userID, s.ID())
	if err != nil {
		slog.Error("issue token", "error", err)
		h.hub.CloseSession(s.ID())
		auth.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	auth.WriteJSON(w, http.StatusCreated, createResponse{
		SessionID: s.ID(),
		UserID:    userID,
		Token:     token,
	})
}

// authorized reports whether the request's token grants the session in the
// route. Routes behind AuthMiddleware only.
func (h *Handler) authorized(r *http.Request) (string, bool) {
	sessionID := mux.Vars(r)["sessionId"]
	claims := auth.ClaimsFromContext(r.Context())
	return sessionID, claims != nil && claims.SessionID == sessionID
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorized(r)
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		auth.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}
	if !ok {
		auth.WriteJSON(w, http.StatusForbidden, map[string]string{"error": "token is for another session"})
		return
	}

	s, err := h.hub.Session(sessionID)
	if err != nil {
		auth.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	auth.WriteJSON(w, http.StatusOK, s.State())
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorized(r)
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		auth.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}
	if !ok {
		auth.WriteJSON(w, http.StatusForbidden, map[string]string{"error": "token is for another session"})
		return
	}

	if err := h.hub.CloseSession(sessionID); err != nil {
		auth.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeWebSocket attaches a connection to the session in the route. The
// token comes from the query string since browsers cannot set headers on
// websocket requests.
func (h *Handler) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.auth.ValidateSessionToken(token, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionMismatch) {
			http.Error(w, "token is for another session", http.StatusForbidden)
			return
		}
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := h.hub.Session(sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(h.hub, conn, claims.UserID, sessionID, clientID)

	h.hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
