package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/logging"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to idle peers with this period.
	pingPeriod = 54 * time.Second
)

// wsHub fans reload messages out to connected preview clients.
type wsHub struct {
	cfg    *config.Config
	logger logging.Logger

	register   chan *wsClient
	unregister chan *wsClient
	messages   chan string
	done       chan struct{}

	mu      sync.Mutex
	clients map[*wsClient]bool
}

type wsClient struct {
	conn *websocket.Conn
	send chan string
}

func newWSHub(cfg *config.Config, logger logging.Logger) *wsHub {
	return &wsHub{
		cfg:        cfg,
		logger:     logger.WithComponent("websocket_hub"),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		messages:   make(chan string, 16),
		done:       make(chan struct{}),
		clients:    make(map[*wsClient]bool),
	}
}

func (h *wsHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !checkOrigin(r, h.cfg) {
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan string, 8),
	}

	if !h.add(client) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	go client.writePump(h)
	go client.readPump(h)
}

// add registers a client with the hub loop. It returns false once the hub
// has shut down, so late upgrades never block on a loop that no longer runs.
func (h *wsHub) add(client *wsClient) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// remove hands a client back to the hub loop, or returns immediately when
// the hub has already shut down and closed every client itself.
func (h *wsHub) remove(client *wsClient) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// broadcast queues a message for all connected clients without blocking the
// caller.
func (h *wsHub) broadcast(message string) {
	select {
	case h.messages <- message:
	default:
	}
}

func (h *wsHub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.drop(client)
		case message := <-h.messages:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; it reconnects after the reload anyway.
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *wsHub) drop(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client] {
		delete(h.clients, client)
		close(client.send)
		client.conn.Close(websocket.StatusNormalClosure, "")
	}
}

func (h *wsHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	close(h.done)
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
		client.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// readPump drains the connection so pings are processed; the preview
// protocol is write-only from the server side.
func (c *wsClient) readPump(h *wsHub) {
	defer h.remove(c)
	ctx := context.Background()
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

func (c *wsClient) writePump(h *wsHub) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ctx := context.Background()
	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, []byte(message))
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
