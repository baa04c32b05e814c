package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four/internal/domain"
)

var errConnectionGone = errors.New("connection closed")

type connection struct {
	conn *websocket.Conn
	// conn.WriteJSON is not safe for concurrent use
	writeMu sync.Mutex

	stateMu sync.Mutex
	ready   bool
	pending *domain.ServerMessage // latest state published before ready
}

// ConnectionManager tracks every connected renderer and fans table changes
// out to them. It implements game.Subscriber.
type ConnectionManager struct {
	connections map[string]*connection
	mu          sync.RWMutex // Protects the map itself
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*connection),
	}
}

// AddConnection registers conn and sends it the greeting. greeting runs after
// registration and without locks held; a state published meanwhile is held
// back and sent right after the greeting, so the renderer never ends on a
// stale board.
func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn, greeting func() domain.ServerMessage) error {
	c := &connection{conn: conn}

	cm.mu.Lock()
	cm.connections[id] = c
	cm.mu.Unlock()

	if err := c.write(greeting()); err != nil {
		return err
	}

	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	c.ready = true
	if c.pending != nil {
		return c.write(*c.pending)
	}
	return nil
}

// RemoveConnection closes and forgets a connection
func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if c, exists := cm.connections[id]; exists {
		c.conn.Close()
		delete(cm.connections, id)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage sends a JSON message to one connection
func (cm *ConnectionManager) SendMessage(id string, message domain.ServerMessage) error {
	cm.mu.RLock()
	c, exists := cm.connections[id]
	cm.mu.RUnlock()

	if !exists {
		return nil // disconnected, ignore
	}
	return c.write(message)
}

func (cm *ConnectionManager) Ping(id string) error {
	cm.mu.RLock()
	c, exists := cm.connections[id]
	cm.mu.RUnlock()

	if !exists {
		return errConnectionGone
	}
	return c.ping()
}

// Publish pushes the new state to every renderer, one connection at a time
// so that each of them sees changes in order.
func (cm *ConnectionManager) Publish(state domain.Snapshot) {
	cm.mu.RLock()
	targets := make([]*connection, 0, len(cm.connections))
	for _, c := range cm.connections {
		targets = append(targets, c)
	}
	cm.mu.RUnlock()

	msg := StateMessage(state)
	for _, c := range targets {
		if err := c.publish(msg); err != nil {
			// the read loop notices the closed socket and cleans up
			c.conn.Close()
		}
	}
}

func (c *connection) write(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(message)
}

func (c *connection) publish(message domain.ServerMessage) error {
	c.stateMu.Lock()
	if !c.ready {
		c.pending = &message
		c.stateMu.Unlock()
		return nil
	}
	c.stateMu.Unlock()
	return c.write(message)
}

func (c *connection) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
}

func StateMessage(state domain.Snapshot) domain.ServerMessage {
	return domain.ServerMessage{Type: "state", State: &state}
}

func ErrorMessage(err error) domain.ServerMessage {
	return domain.ServerMessage{Type: "error", Message: err.Error()}
}
