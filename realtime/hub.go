package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the wire frame broadcast to connected clients.
type Message struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp string      `json:"timestamp"`
}

// Hub fans a message out to every connected websocket client. Dispatch is
// fire-and-forget: slow clients are dropped, never waited on.
type Hub struct {
	clients   map[*websocket.Conn]chan Message
	mutex     sync.RWMutex
	broadcast chan Message
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]chan Message),
		broadcast: make(chan Message, 256),
	}
}

func (h *Hub) Run() {
	for message := range h.broadcast {
		h.mutex.RLock()
		for conn, send := range h.clients {
			select {
			case send <- message:
			default:
				log.WithField("remote", conn.RemoteAddr().String()).
					Warn("Client send buffer full, dropping message")
			}
		}
		h.mutex.RUnlock()
	}
}

// Emit broadcasts an event to all connected clients without blocking the
// caller.
func (h *Hub) Emit(event string, payload interface{}) {
	message := Message{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	select {
	case h.broadcast <- message:
	default:
		log.Warn("Broadcast channel full, dropping message")
	}
}

func (h *Hub) register(conn *websocket.Conn) chan Message {
	send := make(chan Message, 32)
	h.mutex.Lock()
	h.clients[conn] = send
	count := len(h.clients)
	h.mutex.Unlock()
	log.WithField("client_count", count).Info("Client connected")
	return send
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
	}
	count := len(h.clients)
	h.mutex.Unlock()
	log.WithField("client_count", count).Info("Client disconnected")
}

// ServeWS upgrades the connection and keeps it subscribed until it closes.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	send := h.register(conn)

	go func() {
		defer conn.Close()
		for message := range send {
			data, err := json.Marshal(message)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
