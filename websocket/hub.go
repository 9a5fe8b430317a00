package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/anjiri1684/mockprep/analysis"
	"github.com/google/uuid"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// sendBuffer is how many snapshots may queue for one socket before the hub
// gives up on it.
const sendBuffer = 8

type Client struct {
	InterviewID uuid.UUID
	Conn        Conn

	send chan interface{}
	done chan struct{}
}

type broadcast struct {
	interviewID uuid.UUID
	payload     interface{}
}

// Hub fans analysis snapshots out to the sockets watching each interview.
// Every client gets its own writer goroutine, so a stalled socket only
// backs up its own queue.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcast
	quit       chan struct{}

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, 16),
		quit:       make(chan struct{}),
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.quit)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, set := range h.clients {
				for c := range set {
					close(c.send)
					c.Conn.Close()
				}
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.InterviewID] == nil {
				h.clients[c.InterviewID] = make(map[*Client]struct{})
			}
			h.clients[c.InterviewID][c] = struct{}{}
			h.mu.Unlock()
			go h.write(c)
			log.Printf("Analysis client registered for interview %s", c.InterviewID)
		case c := <-h.unregister:
			h.remove(c)
		case m := <-h.broadcast:
			h.mu.RLock()
			targets := make([]*Client, 0, len(h.clients[m.interviewID]))
			for c := range h.clients[m.interviewID] {
				targets = append(targets, c)
			}
			h.mu.RUnlock()

			for _, c := range targets {
				select {
				case c.send <- m.payload:
				default:
					log.Printf("Analysis client on interview %s is not keeping up, dropping it", m.interviewID)
					if h.remove(c) {
						c.Conn.Close()
					}
				}
			}
		}
	}
}

// write drains one client's queue. After a failed write it keeps draining,
// without writing, until the hub closes the queue.
func (h *Hub) write(c *Client) {
	defer close(c.done)
	failed := false
	for payload := range c.send {
		if failed {
			continue
		}
		if err := c.Conn.WriteJSON(payload); err != nil {
			log.Printf("Error sending analysis to client on interview %s: %v", c.InterviewID, err)
			failed = true
			c.Conn.Close()
			go h.Unregister(c)
		}
	}
}

// remove forgets c and closes its queue. It reports whether c was still
// registered.
func (h *Hub) remove(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.InterviewID]
	if !ok {
		return false
	}
	_, found := set[c]
	if found {
		delete(set, c)
		close(c.send)
		log.Printf("Analysis client unregistered for interview %s", c.InterviewID)
	}
	if len(set) == 0 {
		delete(h.clients, c.InterviewID)
	}
	return found
}

func (h *Hub) Register(c *Client) {
	c.send = make(chan interface{}, sendBuffer)
	c.done = make(chan struct{})
	select {
	case h.register <- c:
	case <-h.quit:
		close(c.done)
	}
}

// Unregister removes c and waits until nothing writes to its socket any more.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
	if c.done != nil {
		<-c.done
	}
}

// Publish implements analysis.Sink.
func (h *Hub) Publish(interviewID uuid.UUID, snapshot analysis.Snapshot) {
	select {
	case h.broadcast <- broadcast{interviewID: interviewID, payload: snapshot}:
	case <-h.quit:
	}
}

func (h *Hub) Subscribers(interviewID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[interviewID])
}

var _ analysis.Sink = (*Hub)(nil)
