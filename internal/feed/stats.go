package feed

import (
	"sync"
	"time"

	"github.com/axiomhq/hyperloglog"

	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/guard"
)

// Stats counts what went through the feed since start.
type Stats struct {
	mu        sync.Mutex
	started   time.Time
	mints     uint64
	tokens    uint64
	errors    uint64
	lastNonce string
	minters   *hyperloglog.Sketch // unique users, 1.63% error
	network   *guard.State
}

// StatsSnapshot is the /api/stats body.
type StatsSnapshot struct {
	Mints         uint64       `json:"mints"`
	Tokens        uint64       `json:"tokens"`
	Errors        uint64       `json:"errors"`
	UniqueMinters uint64       `json:"uniqueMinters"`
	LastNonce     string       `json:"lastNonce,omitempty"`
	Network       *guard.State `json:"network,omitempty"`
	Clients       int          `json:"clients"`
	UptimeSeconds int64        `json:"uptimeSeconds"`
}

func NewStats() *Stats {
	return &Stats{started: time.Now(), minters: hyperloglog.New14()}
}

func (s *Stats) recordMint(m events.MintProcessed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mints++
	s.tokens += uint64(len(m.TokenIDs))
	s.lastNonce = m.NonceString()
	s.minters.Insert(m.User.Bytes())
}

func (s *Stats) recordError() {
	s.mu.Lock()
	s.errors++
	s.mu.Unlock()
}

func (s *Stats) recordNetwork(st guard.State) {
	s.mu.Lock()
	s.network = &st
	s.mu.Unlock()
}

// Network returns the last guard state seen, if any.
func (s *Stats) Network() (guard.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.network == nil {
		return guard.State{}, false
	}
	return *s.network, true
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := StatsSnapshot{
		Mints:         s.mints,
		Tokens:        s.tokens,
		Errors:        s.errors,
		UniqueMinters: s.minters.Estimate(),
		LastNonce:     s.lastNonce,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}
	if s.network != nil {
		st := *s.network
		snap.Network = &st
	}
	return snap
}
