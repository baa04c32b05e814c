package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/httputil"
	"github.com/iamasit07/connect-four/pkg/uid"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

var errUnknownMessage = errors.New("unknown message type")

type TableService interface {
	State() domain.Snapshot
	DropDisc(token string, column int) (domain.Snapshot, error)
	Reset(token string) (domain.Snapshot, error)
}

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Table       TableService
	Upgrader    websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list
// accepts any origin.
func NewHandler(cm *ConnectionManager, table TableService, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager: cm,
		Table:       table,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) Gin(c *gin.Context) {
	h.HandleWebSocket(c.Writer, c.Request)
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	// a seat cookie sent with the upgrade stands in for messages without a token
	seatToken, _ := httputil.GetTokenFromRequest(r)
	h.handleConnection(conn, seatToken)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn, seatToken string) {
	id := uid.GenerateConnectionID()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	err := h.ConnManager.AddConnection(id, conn, func() domain.ServerMessage {
		return StateMessage(h.Table.State())
	})
	if err != nil {
		log.Printf("[WS] Failed to send initial state to %s: %v", id, err)
		h.ConnManager.RemoveConnection(id)
		return
	}
	log.Printf("[WS] Renderer %s connected (%d open)", id, h.ConnManager.Count())

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnection(id)
		log.Printf("[WS] Renderer %s disconnected", id)
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(id); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Renderer %s disconnected unexpectedly: %v", id, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(id, domain.ServerMessage{Type: "error", Message: "invalid message format"})
			continue
		}

		if msg.Token == "" {
			msg.Token = seatToken
		}
		if err := h.processMessage(id, msg); err != nil {
			h.ConnManager.SendMessage(id, ErrorMessage(err))
		}
	}
}

// processMessage routes specific actions. Accepted changes reach every
// renderer, the sender included, through the table's subscribers.
func (h *Handler) processMessage(id string, msg domain.ClientMessage) error {
	switch msg.Type {
	case "drop_disc":
		if msg.Column == nil {
			return domain.ErrInvalidColumn
		}
		_, err := h.Table.DropDisc(msg.Token, *msg.Column)
		return err

	case "reset":
		_, err := h.Table.Reset(msg.Token)
		return err

	case "state":
		return h.ConnManager.SendMessage(id, StateMessage(h.Table.State()))
	}
	return errUnknownMessage
}
