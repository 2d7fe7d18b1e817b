package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"cambiazo/internal/domain/repository"
	"cambiazo/pkg/logger"
)

// Client represents one connected browser session. Each client owns the live
// feed subscriptions opened on its behalf; tearing the client down stops all
// of them before the connection is forgotten, so a late snapshot can never
// reach a closed socket.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu    sync.Mutex
	feeds map[string]repository.Subscription
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		feeds:  make(map[string]repository.Subscription),
	}
}

// AttachFeed registers a running subscription under a feed key, replacing
// (and stopping) any previous subscription on the same key.
func (c *Client) AttachFeed(key string, sub repository.Subscription) {
	c.mu.Lock()
	prev := c.feeds[key]
	c.feeds[key] = sub
	c.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// DetachFeed stops and removes a single feed subscription.
func (c *Client) DetachFeed(key string) {
	c.mu.Lock()
	sub := c.feeds[key]
	delete(c.feeds, key)
	c.mu.Unlock()

	if sub != nil {
		sub.Stop()
	}
}

// StopFeeds detaches every feed owned by the client.
func (c *Client) StopFeeds() {
	c.mu.Lock()
	subs := make([]repository.Subscription, 0, len(c.feeds))
	for key, sub := range c.feeds {
		subs = append(subs, sub)
		delete(c.feeds, key)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Stop()
	}
}

// Manager tracks all active WebSocket connections by account id.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				// Feeds must stop before the send channel closes so no
				// snapshot lands on a closed channel.
				client.StopFeeds()
				m.mutex.Lock()
				if current, ok := m.clients[client.UserID]; ok && current == client {
					delete(m.clients, client.UserID)
				}
				close(client.Send)
				m.mutex.Unlock()
				logger.Info("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser sends a message to a specific connected user; it is a no-op
// when the user has no active connection.
func (m *Manager) SendToUser(userID string, message []byte) {
	// The send happens under the read lock so it cannot interleave with the
	// channel close in the unregister path.
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping message for slow client %s", userID)
	}
}

// SendJSONToUser marshals v and sends it to a connected user.
func (m *Manager) SendJSONToUser(userID string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal websocket payload: %v", err)
		return
	}
	m.SendToUser(userID, payload)
}

// WritePump sends queued messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Websocket write failed for %s: %v", c.UserID, err)
			return
		}
	}
}
