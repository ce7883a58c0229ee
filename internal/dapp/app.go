// Package dapp wires the network guard, the mint action and the MintProcessed
// listener into one page-level object. Which flows run is chosen with Options.
package dapp

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/mint"
	"github.com/ligun0805/season-mint/internal/wallet"
)

// ErrDisabled is returned by actions whose flow is not enabled.
var ErrDisabled = errors.New("flow not enabled")

// Options selects the flows a front end runs.
type Options struct {
	Guard  bool
	Mint   bool
	Listen bool
}

var (
	FullPage  = Options{Guard: true, Mint: true, Listen: true}
	MintOnly  = Options{Mint: true, Listen: true}
	GuardOnly = Options{Guard: true}
)

// Deps are the collaborators the flows are built from. Provider may be nil
// when no wallet is present.
type Deps struct {
	Provider wallet.Provider
	View     guard.View
	Contract mint.Contract
	Signer   mint.TransactorSource
	Events   events.Source

	ExpectedChain  string
	MintAmount     int64
	FromBlock      *uint64
	Observers      []events.Observer
	StateObservers []guard.StateObserver
	Logger         *zap.Logger
}

type App struct {
	opts     Options
	logger   *zap.Logger
	guard    *guard.Guard
	minter   *mint.Minter
	listener *events.Listener
}

func New(opts Options, deps Deps) (*App, error) {
	l := logger.OrNop(deps.Logger)
	a := &App{opts: opts, logger: l}

	if opts.Guard {
		gopts := []guard.Option{guard.WithLogger(l.Named("guard")), guard.WithExpectedChain(deps.ExpectedChain)}
		for _, o := range deps.StateObservers {
			gopts = append(gopts, guard.WithObserver(o))
		}
		a.guard = guard.New(deps.Provider, deps.View, gopts...)
	}

	if opts.Mint {
		if deps.Contract == nil || deps.Signer == nil {
			return nil, errors.New("mint flow needs a contract and a signer")
		}
		a.minter = mint.New(deps.Provider, deps.Contract, deps.Signer,
			mint.WithLogger(l.Named("mint")),
			mint.WithDefaultAmount(deps.MintAmount))
	}

	if opts.Listen {
		if deps.Events == nil {
			return nil, errors.New("listen flow needs an event source")
		}
		lopts := []events.ListenerOption{
			events.WithListenerLogger(l.Named("events")),
			events.WithObserver(events.NewLogObserver(l.Named("events"))),
		}
		for _, o := range deps.Observers {
			lopts = append(lopts, events.WithObserver(o))
		}
		if deps.FromBlock != nil {
			lopts = append(lopts, events.WithFromBlock(*deps.FromBlock))
		}
		a.listener = events.NewListener(deps.Events, lopts...)
	}
	return a, nil
}

func (a *App) Options() Options { return a.opts }

// Guard returns the network guard, or nil when the flow is disabled.
func (a *App) Guard() *guard.Guard { return a.guard }

// Minter returns the mint action, or nil when the flow is disabled.
func (a *App) Minter() *mint.Minter { return a.minter }

// Check runs one network check.
func (a *App) Check(ctx context.Context) (guard.State, error) {
	if a.guard == nil {
		return guard.State{}, ErrDisabled
	}
	return a.guard.Check(ctx), nil
}

// Connect asks the wallet to switch to the expected chain.
func (a *App) Connect(ctx context.Context) bool {
	if a.guard == nil {
		return false
	}
	return a.guard.Connect(ctx)
}

// Mint submits one mint request. amount <= 0 uses the configured amount.
func (a *App) Mint(ctx context.Context, amount int64) (*types.Transaction, error) {
	if a.minter == nil {
		return nil, ErrDisabled
	}
	return a.minter.Mint(ctx, amount)
}

// MintInFlight reports whether a mint is being submitted.
func (a *App) MintInFlight() bool { return a.minter != nil && a.minter.InFlight() }

// Start runs the guard loop and the listener until ctx is done. A guard
// subscription failure is logged and does not stop the listener.
func (a *App) Start(ctx context.Context) {
	var wg sync.WaitGroup
	if a.guard != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.guard.Run(ctx); err != nil {
				a.logger.Error("network guard stopped", zap.Error(err))
			}
		}()
	}
	if a.listener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.listener.Run(ctx); err != nil {
				a.logger.Error("listener stopped", zap.Error(err))
			}
		}()
	}
	wg.Wait()
}
