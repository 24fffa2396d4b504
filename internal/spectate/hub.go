// Package spectate streams encounter snapshots to websocket viewers.
package spectate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"go-magic-survivor/internal/app"
)

const (
	DefaultBuffer = 8
	writeTimeout  = 5 * time.Second
)

type client struct {
	id   uuid.UUID
	send chan []byte
}

// Hub fans msgpack frames out to every connected spectator. A spectator
// whose queue is full misses the frame; the simulation never waits.
type Hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*client
	buffer  int
	dropped atomic.Uint64
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	return &Hub{
		clients: make(map[uuid.UUID]*client),
		buffer:  buffer,
	}
}

// Publish encodes snap and queues it for every spectator.
func (h *Hub) Publish(snap app.Snapshot) error {
	frame, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	h.Broadcast(frame)
	return nil
}

// Broadcast queues an encoded frame without blocking.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.dropped.Add(1)
		}
	}
}

// Count returns the number of connected spectators.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow spectators.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) register() *client {
	c := &client{id: uuid.New(), send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept spectator", "err", err)
		return
	}
	defer conn.CloseNow()

	c := h.register()
	defer h.unregister(c)
	slog.DebugContext(ctx, "spectator connected", "spectator_id", c.id)

	// Зрители ничего не присылают; CloseRead отменит ctx при закрытии соединения.
	ctx = conn.CloseRead(ctx)
	if err := h.stream(ctx, conn, c); err != nil {
		slog.DebugContext(ctx, "spectator disconnected", "spectator_id", c.id, "err", err)
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) stream(ctx context.Context, conn *websocket.Conn, c *client) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageBinary, frame)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}
