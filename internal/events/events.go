package events

import (
	"context"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/seasonnft"
)

//go:generate mockgen -source=events.go -destination=../mocks/events_mock.go -package=mocks

// MintProcessed is the oracle's answer to a mint request.
type MintProcessed struct {
	User        common.Address `json:"user"`
	TokenIDs    []*big.Int     `json:"tokenIds"`
	Nonce       *big.Int       `json:"nonce"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
}

// FromBinding converts a decoded contract event.
func FromBinding(ev *seasonnft.SeasonNFTMintProcessed) MintProcessed {
	return MintProcessed{
		User:        ev.User,
		TokenIDs:    ev.TokenIds,
		Nonce:       ev.Nonce,
		TxHash:      ev.Raw.TxHash,
		BlockNumber: ev.Raw.BlockNumber,
	}
}

// TokenIDStrings renders the token ids in decimal.
func (m MintProcessed) TokenIDStrings() []string {
	out := make([]string, 0, len(m.TokenIDs))
	for _, id := range m.TokenIDs {
		out = append(out, id.String())
	}
	return out
}

func (m MintProcessed) NonceString() string {
	if m.Nonce == nil {
		return "0"
	}
	return m.Nonce.String()
}

// Observer receives listener deliveries. Calls come from the listener goroutine.
type Observer interface {
	OnMintProcessed(MintProcessed)
	OnError(error)
}

// Source is where the listener gets MintProcessed events from.
type Source interface {
	// Watch subscribes to new events with no filter.
	Watch(ctx context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error)
	// Past returns the events emitted from block from up to the chain head.
	Past(ctx context.Context, from uint64) ([]*seasonnft.SeasonNFTMintProcessed, error)
}

// LogObserver writes one log line per delivery.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(l *zap.Logger) *LogObserver { return &LogObserver{logger: logger.OrNop(l)} }

func (o *LogObserver) OnMintProcessed(m MintProcessed) {
	o.logger.Info("mint processed",
		zap.String("user", m.User.Hex()),
		zap.String("tokenIds", strings.Join(m.TokenIDStrings(), ",")),
		zap.String("nonce", m.NonceString()),
		zap.Uint64("block", m.BlockNumber))
}

func (o *LogObserver) OnError(err error) {
	o.logger.Error("mint event error", zap.Error(err))
}

// Notification is one delivery on a Channel: either an event or an error.
type Notification struct {
	Event *MintProcessed
	Err   error
}

// Channel hands deliveries to a buffered channel for a UI loop to drain.
// When the reader falls behind, new deliveries are dropped.
type Channel struct {
	ch      chan Notification
	dropped atomic.Uint64
}

func NewChannel(size int) *Channel {
	if size <= 0 {
		size = 16
	}
	return &Channel{ch: make(chan Notification, size)}
}

func (c *Channel) C() <-chan Notification { return c.ch }

// Dropped counts deliveries lost to a full buffer.
func (c *Channel) Dropped() uint64 { return c.dropped.Load() }

func (c *Channel) OnMintProcessed(m MintProcessed) { c.push(Notification{Event: &m}) }

func (c *Channel) OnError(err error) { c.push(Notification{Err: err}) }

func (c *Channel) push(n Notification) {
	select {
	case c.ch <- n:
	default:
		c.dropped.Add(1)
	}
}

type bindingSource struct {
	f *seasonnft.SeasonNFTFilterer
}

// NewBindingSource reads events through the generated contract filterer.
func NewBindingSource(f *seasonnft.SeasonNFTFilterer) Source { return bindingSource{f: f} }

func (s bindingSource) Watch(ctx context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
	return s.f.WatchMintProcessed(&bind.WatchOpts{Context: ctx}, sink, nil)
}

func (s bindingSource) Past(ctx context.Context, from uint64) ([]*seasonnft.SeasonNFTMintProcessed, error) {
	it, err := s.f.FilterMintProcessed(&bind.FilterOpts{Start: from, Context: ctx}, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []*seasonnft.SeasonNFTMintProcessed
	for it.Next() {
		out = append(out, it.Event)
	}
	return out, it.Error()
}
