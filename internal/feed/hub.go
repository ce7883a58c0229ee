package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/logger"
)

// Message types pushed to websocket clients.
const (
	TypeMintProcessed = "mintProcessed"
	TypeNetwork       = "network"
	TypeError         = "error"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// MintPayload is MintProcessed with big numbers rendered as decimal strings.
type MintPayload struct {
	User        string   `json:"user"`
	TokenIDs    []string `json:"tokenIds"`
	Nonce       string   `json:"nonce"`
	TxHash      string   `json:"txHash,omitempty"`
	BlockNumber uint64   `json:"blockNumber,omitempty"`
}

// Message is one frame on /ws.
type Message struct {
	Type    string       `json:"type"`
	Mint    *MintPayload `json:"mint,omitempty"`
	Network *guard.State `json:"network,omitempty"`
	Error   string       `json:"error,omitempty"`
	At      time.Time    `json:"at"`
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

type HubOption func(*Hub)

func WithLogger(l *zap.Logger) HubOption { return func(h *Hub) { h.logger = logger.OrNop(l) } }

// WithSendBuffer sets how many frames may queue per client before it is dropped.
func WithSendBuffer(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// Hub fans listener and guard notifications out to websocket clients.
type Hub struct {
	mu         sync.RWMutex
	clients    map[uuid.UUID]*client
	upgrader   websocket.Upgrader
	logger     *zap.Logger
	stats      *Stats
	sendBuffer int
	now        func() time.Time
	onRegister func() // runs inside the registration critical section
}

var (
	_ events.Observer     = (*Hub)(nil)
	_ guard.StateObserver = (*Hub)(nil)
)

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients: make(map[uuid.UUID]*client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:     zap.NewNop(),
		stats:      NewStats(),
		sendBuffer: 64,
		now:        time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Hub) Stats() *Stats { return h.stats }

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) OnMintProcessed(m events.MintProcessed) {
	h.stats.recordMint(m)
	p := &MintPayload{
		User:        m.User.Hex(),
		TokenIDs:    m.TokenIDStrings(),
		Nonce:       m.NonceString(),
		BlockNumber: m.BlockNumber,
	}
	if m.TxHash != (common.Hash{}) {
		p.TxHash = m.TxHash.Hex()
	}
	h.Broadcast(Message{Type: TypeMintProcessed, Mint: p})
}

func (h *Hub) OnError(err error) {
	h.stats.recordError()
	h.Broadcast(Message{Type: TypeError, Error: err.Error()})
}

// OnNetworkState records st and queues it under the same lock ServeWS holds
// while registering, so a new client sees either the old state followed by st
// or st alone.
func (h *Hub) OnNetworkState(st guard.State) {
	b, ok := h.encode(Message{Type: TypeNetwork, Network: &st})

	h.mu.Lock()
	h.stats.recordNetwork(st)
	var slow []uuid.UUID
	if ok {
		slow = h.queueLocked(b)
	}
	h.mu.Unlock()
	h.dropSlow(slow)
}

// Broadcast queues msg for every client. Clients whose queue is full are dropped.
func (h *Hub) Broadcast(msg Message) {
	b, ok := h.encode(msg)
	if !ok {
		return
	}
	h.mu.RLock()
	slow := h.queueLocked(b)
	h.mu.RUnlock()
	h.dropSlow(slow)
}

func (h *Hub) encode(msg Message) ([]byte, bool) {
	if msg.At.IsZero() {
		msg.At = h.now()
	}
	b, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode feed message", zap.Error(err))
		return nil, false
	}
	return b, true
}

// queueLocked needs h.mu held (read or write) and returns the clients that could not keep up.
func (h *Hub) queueLocked(b []byte) []uuid.UUID {
	var slow []uuid.UUID
	for id, c := range h.clients {
		select {
		case c.send <- b:
		default:
			slow = append(slow, id)
		}
	}
	return slow
}

func (h *Hub) dropSlow(ids []uuid.UUID) {
	for _, id := range ids {
		h.logger.Warn("dropping slow feed client", zap.String("client", id.String()))
		h.remove(id)
	}
}

// ServeWS upgrades the request and registers the connection. A new client
// first receives the latest network state, if one is known.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, h.sendBuffer)}

	h.mu.Lock()
	if st, ok := h.stats.Network(); ok {
		if b, ok := h.encode(Message{Type: TypeNetwork, Network: &st}); ok {
			c.send <- b
		}
	}
	if h.onRegister != nil {
		h.onRegister()
	}
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Info("feed client connected", zap.String("client", c.id.String()), zap.String("remote", r.RemoteAddr))

	go h.writePump(c)
	go h.readPump(c)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	ids := make([]uuid.UUID, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	h.mu.Unlock()
	for _, id := range ids {
		h.remove(id)
	}
}

// remove unregisters a client and closes its queue; the write pump then closes the socket.
func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(c.send)
	}
	h.mu.Unlock()
	if ok {
		h.logger.Info("feed client disconnected", zap.String("client", id.String()))
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case b, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				h.remove(c.id)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c.id)
				return
			}
		}
	}
}

// readPump only services control frames; the feed is one-way.
func (h *Hub) readPump(c *client) {
	defer h.remove(c.id)
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
