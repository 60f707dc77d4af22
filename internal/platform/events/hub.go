// Package events pushes store-change notifications to session observers over
// WebSockets. The server publishes an event after every successful store
// mutation; every observer subscribed to that session re-reads the store's
// snapshot and re-renders. Hub-and-spoke: one hub, clients keyed by the
// session id they watch.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Store names used in change events.
const (
	StoreChat     = "chat"
	StoreDoctor   = "doctor"
	StorePharmacy = "pharmacy"
	StoreUser     = "user"
)

// Event is a store-change notification sent to session observers.
type Event struct {
	SessionID string    `json:"session_id"`
	Store     string    `json:"store"`
	Op        string    `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is a single observer connection watching one session.
type Client struct {
	ID        string
	SessionID string
	Send      chan []byte
	conn      Conn
}

// Hub tracks observer clients per session id. All operations are thread-safe
// via sync.RWMutex.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{} // session id -> observers
}

// NewHub creates a Hub ready to manage observer clients.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

// Register adds an observer for its session.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.SessionID] == nil {
		h.clients[client.SessionID] = make(map[*Client]struct{})
	}
	h.clients[client.SessionID][client] = struct{}{}
}

// Unregister removes an observer and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	observers, ok := h.clients[client.SessionID]
	if !ok {
		return
	}
	if _, ok := observers[client]; !ok {
		return
	}
	delete(observers, client)
	if len(observers) == 0 {
		delete(h.clients, client.SessionID)
	}
	close(client.Send)
}

// Publish notifies every observer of the event's session that a store
// changed. Observers with full buffers are skipped rather than blocking the
// mutation path.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[event.SessionID] {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// ObserverCount returns the number of observers watching a session.
func (h *Hub) ObserverCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// ---------------------------------------------------------------------------
// Handler — echo HTTP handler for observer connections
// ---------------------------------------------------------------------------

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; tighten in production.
	},
}

// Handler upgrades HTTP connections to WebSocket observers.
type Handler struct {
	hub *Hub
}

// NewHandler creates a handler bound to the given Hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes registers the observer endpoint on the provided echo group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/sessions/:id", h.HandleConnect)
}

// HandleConnect upgrades the connection, registers the observer for the
// session named in the path, and starts the read/write pumps.
func (h *Handler) HandleConnect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:        uuid.New().String(),
		SessionID: c.Param("id"),
		Send:      make(chan []byte, 256),
		conn:      &gorillaConnAdapter{ws},
	}

	h.hub.Register(client)

	go h.writePump(client)
	go h.readPump(client)

	return nil
}

// readPump drains inbound frames until the connection drops; observers are
// read-only, so the payloads are discarded.
func (h *Handler) readPump(client *Client) {
	defer func() {
		h.hub.Unregister(client)
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump writes events from the Send channel to the connection.
func (h *Handler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.Send {
		if err := client.conn.WriteMessage(gorillawebsocket.TextMessage, message); err != nil {
			break
		}
	}
}

// gorillaConnAdapter wraps a gorilla/websocket.Conn to satisfy Conn.
type gorillaConnAdapter struct {
	conn *gorillawebsocket.Conn
}

func (a *gorillaConnAdapter) ReadMessage() (int, []byte, error) {
	return a.conn.ReadMessage()
}

func (a *gorillaConnAdapter) WriteMessage(messageType int, data []byte) error {
	return a.conn.WriteMessage(messageType, data)
}

func (a *gorillaConnAdapter) Close() error {
	return a.conn.Close()
}
