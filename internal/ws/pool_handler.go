package ws

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/billiards/internal/table"
)

// WSMessage is the envelope for client messages.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// PointerData carries a pointer position in table units.
type PointerData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var errBadPointer = errors.New("invalid pointer data")

// readPump reads pointer messages until the connection fails.
func (h *Hub) readPump(c *Client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] unexpected close for client %s: %v", c.id, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			h.sendError(c, "Invalid message")
			continue
		}
		h.handleMessage(c, msg)
	}
}

// handleMessage turns a client message into table input.
func (h *Hub) handleMessage(c *Client, msg WSMessage) {
	in, err := toInput(msg)
	if err != nil {
		h.sendError(c, err.Error())
		return
	}
	if err := h.inputs.Submit(in); err != nil {
		log.Printf("[WS] input %s from %s rejected: %v", in.Kind, c.id, err)
		h.sendError(c, err.Error())
	}
}

func toInput(msg WSMessage) (table.Input, error) {
	kind := table.InputKind(msg.Type)
	switch kind {
	case table.InputPointerMove, table.InputPointerUp:
		var p PointerData
		if len(msg.Data) == 0 || json.Unmarshal(msg.Data, &p) != nil {
			return table.Input{}, errBadPointer
		}
		return table.Input{Kind: kind, X: p.X, Y: p.Y}, nil
	case table.InputPointerDown, table.InputRack:
		return table.Input{Kind: kind}, nil
	default:
		return table.Input{}, errors.New("unknown message type")
	}
}

// sendError sends an error message to the client
func (h *Hub) sendError(c *Client, message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":    "error",
		"message": message,
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current != c {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
