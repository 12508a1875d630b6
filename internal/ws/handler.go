package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/table"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

// InputSubmitter accepts pointer input for the table.
type InputSubmitter interface {
	Submit(in table.Input) error
}

// Client is the connected presentation layer.
type Client struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// Hub bridges one controlling websocket connection to the table. A new
// connection replaces the current one.
type Hub struct {
	inputs   InputSubmitter
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	current *Client
}

// NewHub creates a hub feeding inputs. checkOrigin may be nil to allow any origin.
func NewHub(inputs InputSubmitter, checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Hub{
		inputs: inputs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

// Connected reports whether a presentation client is attached.
func (h *Hub) Connected() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current != nil
}

// ServeWS upgrades the request and makes it the controlling connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.register(client)

	go h.writePump(client)
	go h.readPump(client)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old := h.current; old != nil {
		log.Printf("[WS] client %s replaced by %s", old.id, c.id)
		if err := old.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by new connection"), time.Now().Add(time.Second)); err != nil {
			log.Printf("[WS] close control to %s: %v", old.id, err)
		}
		old.close()
	}
	h.current = c
	log.Printf("[WS] client %s connected", c.id)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == c {
		h.current = nil
		log.Printf("[WS] client %s disconnected", c.id)
	}
	c.close()
}

// FrameMessage is what the presentation client receives every tick.
type FrameMessage struct {
	Type string `json:"type"`
	game.Snapshot
	Report game.FrameReport `json:"report"`
}

// Deliver sends the frame to the current client, dropping it if the client
// is not keeping up.
func (h *Hub) Deliver(snap game.Snapshot, report game.FrameReport) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return
	}

	data, err := json.Marshal(FrameMessage{Type: "frame", Snapshot: snap, Report: report})
	if err != nil {
		log.Printf("[WS] Error marshaling frame %d: %v", snap.Frame, err)
		return
	}
	select {
	case h.current.send <- data:
	default:
	}
}

// writePump writes messages to the WebSocket connection
func (h *Hub) writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed: replaced or disconnected. Best-effort close frame.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] write error for client %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for client %s: %v", c.id, err)
				return
			}
		}
	}
}
