package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"numberzz/internal/domain/repository"
	"numberzz/pkg/logger"
)

// Client represents one connected viewer (a browser tab or device).
type Client struct {
	ViewerID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// Manager fans committed store changes out to every connected viewer. It is
// purely a notifier: viewers re-read authoritative state, they never act on
// the payload alone.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ViewerID] = client
				m.mutex.Unlock()
				logger.Debug("Viewer registered: %s", client.ViewerID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ViewerID]; ok {
					delete(m.clients, client.ViewerID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Viewer unregistered: %s", client.ViewerID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client.ViewerID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// AttachFeed subscribes the manager to the store's change feed. Returns the
// unsubscribe function.
func (m *Manager) AttachFeed(feed repository.ChangeFeed) func() {
	return feed.Subscribe(func(change repository.Change) {
		payload, err := json.Marshal(change)
		if err != nil {
			logger.Error("Failed to encode change event: %v", err)
			return
		}
		m.broadcast <- payload
	})
}

// ReadPump drains the connection until it closes. Incoming frames are
// ignored: the sync channel is one-way, clients mutate through the API.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Viewer connection error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued change events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Viewer write error: %v", err)
			return
		}
	}
}
