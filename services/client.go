package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/flashdeck/flashdeck-backend/viewer"

	"github.com/gorilla/websocket"
)

// Client is one mounted viewer: a websocket connection plus the viewer
// state machine it drives. Commands from the socket and snapshots from the
// hub both funnel through mu, so every transition is atomic.
type Client struct {
	userID uint
	deckID string
	conn   *websocket.Conn
	hub    *Hub
	send   chan []byte
	once   sync.Once

	mu     sync.Mutex
	viewer *viewer.Viewer
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// ApplySnapshot feeds an upstream snapshot into the viewer and pushes the
// resulting state.
func (c *Client) ApplySnapshot(snap *viewer.Snapshot) {
	c.mu.Lock()
	c.viewer.Apply(snap)
	c.mu.Unlock()
	c.sendState()
}

// clientMessage is what the frontend sends over the socket.
type clientMessage struct {
	Action string `json:"action"` // flip | next | prev | shuffle | key
	Key    string `json:"key,omitempty"`
}

// --------------------
// Client read/write pumps
// --------------------
func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.deckID, c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[Client %d] disconnected normally", c.userID)
			} else {
				log.Printf("[Client %d] read error: %v", c.userID, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("[Client %d] invalid message: %v", c.userID, err)
			continue
		}

		c.mu.Lock()
		var changed bool
		switch msg.Action {
		case "flip":
			changed = c.viewer.Flip()
		case "next":
			changed = c.viewer.Next()
		case "prev":
			changed = c.viewer.Prev()
		case "shuffle":
			changed = c.viewer.Shuffle()
		case "key":
			changed = c.viewer.HandleKey(msg.Key)
		default:
			log.Printf("[Client %d] unknown action: %q", c.userID, msg.Action)
		}
		c.mu.Unlock()

		if changed {
			c.sendState()
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[Client %d] write error: %v", c.userID, err)
			return
		}
	}
}

// sendState marshals the viewer state and queues it, dropping the frame if
// the client is too slow to drain its channel.
func (c *Client) sendState() {
	c.mu.Lock()
	state := c.viewer.State()
	c.mu.Unlock()

	payload := struct {
		Type string `json:"type"`
		viewer.State
	}{Type: "state", State: state}

	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Client %d] marshal error: %v", c.userID, err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Client %d] recovered send on closed channel: %v", c.userID, r)
		}
	}()
	select {
	case c.send <- b:
	default:
		log.Printf("[Client %d] dropping state frame", c.userID)
	}
}
