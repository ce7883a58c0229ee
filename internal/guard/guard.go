package guard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/wallet"
)

//go:generate mockgen -source=guard.go -destination=../mocks/guard_mock.go -package=mocks

// DefaultExpectedChain is Polygon mainnet.
const DefaultExpectedChain = "0x89"

// View is the presentation side of the guard. Implementations decide what
// "blurred" looks like; the guard only toggles the two flags.
type View interface {
	SetBlurred(blurred bool)
	SetConnectPromptVisible(visible bool)
}

// State is the outcome of the most recent check.
type State struct {
	ChainID    string    `json:"chainId"`
	Expected   string    `json:"expected"`
	OnExpected bool      `json:"onExpected"`
	CheckedAt  time.Time `json:"checkedAt"`
	Err        string    `json:"error,omitempty"`
}

// StateObserver receives every state the guard applies to its view.
type StateObserver interface {
	OnNetworkState(State)
}

type Option func(*Guard)

func WithExpectedChain(hex string) Option {
	return func(g *Guard) {
		if h := strings.ToLower(strings.TrimSpace(hex)); h != "" {
			g.expected = h
		}
	}
}

func WithLogger(l *zap.Logger) Option { return func(g *Guard) { g.logger = logger.OrNop(l) } }
func WithObserver(o StateObserver) Option { return func(g *Guard) { g.observers = append(g.observers, o) } }
func WithClock(now func() time.Time) Option { return func(g *Guard) { g.now = now } }

// Guard keeps the view in sync with the wallet's active chain.
type Guard struct {
	provider  wallet.Provider
	view      View
	expected  string
	logger    *zap.Logger
	observers []StateObserver
	now       func() time.Time

	mu   sync.Mutex // serializes checks so the view shows the latest one
	last State
}

// New builds a guard. provider may be nil when no wallet is present.
func New(provider wallet.Provider, view View, opts ...Option) *Guard {
	g := &Guard{
		provider: provider,
		view:     view,
		expected: DefaultExpectedChain,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Guard) Expected() string { return g.expected }

// Last returns the state applied by the most recent check.
func (g *Guard) Last() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Check reads the active chain and applies the result to the view. Without a
// provider it does nothing and the view keeps its default state.
func (g *Guard) Check(ctx context.Context) State {
	if g.provider == nil {
		return State{Expected: g.expected}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	st := State{Expected: g.expected}
	id, err := wallet.ChainID(ctx, g.provider)
	st.CheckedAt = g.now()
	if err != nil {
		g.logger.Error("chain id query failed", zap.Error(err))
		st.Err = err.Error()
	} else {
		st.ChainID = id
		st.OnExpected = strings.EqualFold(id, g.expected)
	}

	if g.view != nil {
		g.view.SetBlurred(!st.OnExpected)
		g.view.SetConnectPromptVisible(!st.OnExpected)
	}
	g.logger.Debug("network checked",
		zap.String("chainId", st.ChainID),
		zap.String("expected", g.expected),
		zap.Bool("onExpected", st.OnExpected))

	g.last = st
	for _, o := range g.observers {
		o.OnNetworkState(st)
	}
	return st
}

// Connect asks the wallet to switch to the expected chain. Failures are
// logged and reported as false, never returned.
func (g *Guard) Connect(ctx context.Context) bool {
	if g.provider == nil {
		g.logger.Warn("no wallet present, cannot switch network")
		return false
	}
	if err := wallet.SwitchChain(ctx, g.provider, g.expected); err != nil {
		if wallet.IsUserRejected(err) {
			g.logger.Warn("network switch rejected", zap.String("chainId", g.expected))
		} else {
			g.logger.Error("network switch failed", zap.String("chainId", g.expected), zap.Error(err))
		}
		return false
	}
	return true
}

// Run performs the initial check and re-checks on every chain change until
// ctx is done or the subscription fails.
func (g *Guard) Run(ctx context.Context) error {
	if g.provider == nil {
		return nil
	}
	ch := make(chan string, 8)
	sub := g.provider.SubscribeChainChanged(ch)
	defer sub.Unsubscribe()

	g.Check(ctx)
	for {
		select {
		case id := <-ch:
			g.logger.Info("chain changed", zap.String("chainId", id))
			g.Check(ctx)
		case err := <-sub.Err():
			if err == nil {
				return nil
			}
			return err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		}
	}
}
