package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Clients only listen, so
	// anything beyond a close frame is noise.
	maxMessageSize = 512

	// Per-client send buffer; a client that falls this far behind is cut.
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Local visualiser; any origin may watch.
		return true
	},
}

// CellUpdate is one cell's visual state on the wire.
type CellUpdate struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	State string `json:"state"`
}

// Frame is a single broadcast message.
type Frame struct {
	Event  string       `json:"event"`
	Rows   int          `json:"rows,omitempty"`
	Cols   int          `json:"cols,omitempty"`
	Cells  []CellUpdate `json:"cells,omitempty"`
	Status string       `json:"status,omitempty"`
}

// client is one WebSocket viewer.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active viewers and fans frames out to them.
type Hub struct {
	// Registered viewers.
	clients map[*client]bool

	// Outbound frames to every viewer.
	broadcast chan *Frame

	// Register requests from new connections.
	register chan *client

	// Unregister requests from dying connections.
	unregister chan *client
}

// NewHub creates an empty hub. Call Run in its own goroutine before
// serving connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan *Frame),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run starts the hub's event loop, serializing all registry mutations.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			log.Printf("stream: viewer joined (total %d)", len(h.clients))

		case c := <-h.unregister:
			h.drop(c)

		case f := <-h.broadcast:
			h.fanOut(f)
		}
	}
}

// ServeWS upgrades an HTTP request to a viewer connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// BroadcastCell pushes a single cell's new state to every viewer.
func (h *Hub) BroadcastCell(c *grid.Cell) {
	h.broadcast <- &Frame{
		Event: "cells",
		Cells: []CellUpdate{{Row: c.Row, Col: c.Col, State: c.State.String()}},
	}
}

// BroadcastStatus pushes a terminal outcome line to every viewer.
func (h *Hub) BroadcastStatus(status string) {
	h.broadcast <- &Frame{Event: "status", Status: status}
}

// BroadcastGrid pushes a full snapshot of g, for viewers that joined
// mid-run or after a generator rebuilt the field.
func (h *Hub) BroadcastGrid(g *grid.Grid) {
	f := &Frame{
		Event: "grid",
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([]CellUpdate, 0, g.Rows()*g.Cols()),
	}
	g.Each(func(c *grid.Cell) {
		f.Cells = append(f.Cells, CellUpdate{Row: c.Row, Col: c.Col, State: c.State.String()})
	})
	h.broadcast <- f
}

// drop removes a client and closes its send channel.
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.Printf("stream: viewer left (remaining %d)", len(h.clients))
	}
}

// fanOut marshals f once and queues it to every viewer, cutting any
// whose buffer is full.
func (h *Hub) fanOut(f *Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		log.Printf("stream: marshal failed: %v", err)
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.drop(c)
		}
	}
}

// readPump drains the connection so control frames are processed; viewer
// input is otherwise ignored.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("stream: read error: %v", err)
			}
			break
		}
	}
}

// writePump pumps queued frames to the connection and keeps it alive
// with pings.
func (c *client) writePump() {
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
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
