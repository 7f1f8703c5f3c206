// Package sessionws pushes booking-status updates to connected clients.
// Clients still poll the REST API; the hub is an additive substitution so a
// connected app can re-render without waiting out the poll interval.
package sessionws

import (
	"encoding/json"
	"strconv"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan *event
	logger     *zap.Logger
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type SessionUpdate struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type event struct {
	update     SessionUpdate
	recipients []string
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan *event, 64),
		logger:     logger,
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.userID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.clients, client.userID)
			}
		case ev := <-h.events:
			h.deliver(ev)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// PublishSessionUpdate fans a status change out to both session
// participants. Drops the event if the hub is saturated; polling remains the
// source of truth.
func (h *Hub) PublishSessionUpdate(userID, trainerID, sessionID int64, status string) {
	ev := &event{
		update: SessionUpdate{
			Type:      "session_update",
			SessionID: strconv.FormatInt(sessionID, 10),
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		recipients: []string{
			strconv.FormatInt(userID, 10),
			strconv.FormatInt(trainerID, 10),
		},
	}

	select {
	case h.events <- ev:
	default:
		h.logger.Warn("session update dropped, hub saturated",
			zap.Int64("session_id", sessionID),
			zap.String("status", status),
		)
	}
}

func (h *Hub) deliver(ev *event) {
	payload, err := json.Marshal(ev.update)
	if err != nil {
		h.logger.Error("encode session update", zap.Error(err))
		return
	}

	for _, recipient := range ev.recipients {
		h.sendToUser(recipient, payload)
	}
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	set, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range set {
		select {
		case client.send <- payload:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// ReadPump drains the connection until it closes. Clients send nothing
// meaningful; the socket is one-way.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
