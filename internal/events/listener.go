package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/seasonnft"
)

type ListenerOption func(*Listener)

func WithListenerLogger(l *zap.Logger) ListenerOption {
	return func(ln *Listener) { ln.logger = logger.OrNop(l) }
}

func WithObserver(o Observer) ListenerOption {
	return func(ln *Listener) { ln.observers = append(ln.observers, o) }
}

// WithFromBlock replays events from block once the first subscription is open.
func WithFromBlock(block uint64) ListenerOption {
	return func(ln *Listener) {
		ln.backfill = true
		ln.fromBlock = block
	}
}

// WithRetry bounds the delay between resubscription attempts.
func WithRetry(initial, max time.Duration) ListenerOption {
	return func(ln *Listener) {
		ln.retryInitial = initial
		ln.retryMax = max
	}
}

// Listener watches MintProcessed and fans deliveries out to observers.
// Subscription errors are reported and followed by a resubscribe, they never
// stop the listener. After a resubscribe the gap since the last delivered
// block is replayed.
type Listener struct {
	src       Source
	observers []Observer
	logger    *zap.Logger

	backfill  bool
	fromBlock uint64

	delivered bool
	lastBlock uint64
	seen      map[uint]struct{} // log indexes delivered from lastBlock

	retryInitial time.Duration
	retryMax     time.Duration
}

func NewListener(src Source, opts ...ListenerOption) *Listener {
	ln := &Listener{
		src:          src,
		logger:       zap.NewNop(),
		retryInitial: time.Second,
		retryMax:     30 * time.Second,
	}
	for _, o := range opts {
		o(ln)
	}
	return ln
}

// Run blocks until ctx is done.
func (ln *Listener) Run(ctx context.Context) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = ln.retryInitial
	eb.MaxInterval = ln.retryMax
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(eb, ctx)

	next, replay := ln.fromBlock, ln.backfill
	for {
		err := ln.watch(ctx, policy, next, replay)
		if ctx.Err() != nil {
			return nil
		}
		ln.fail(err)

		d := policy.NextBackOff()
		if d == backoff.Stop {
			return nil
		}
		ln.logger.Warn("resubscribing to MintProcessed", zap.Duration("in", d))
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil
		}
		// the last block may hold logs that were never delivered
		if ln.delivered {
			next, replay = ln.lastBlock, true
		}
	}
}

func (ln *Listener) replay(ctx context.Context, from uint64) error {
	past, err := ln.src.Past(ctx, from)
	if err != nil {
		return err
	}
	if len(past) > 0 {
		ln.logger.Info("replaying missed events", zap.Int("count", len(past)), zap.Uint64("fromBlock", from))
	}
	for _, ev := range past {
		ln.deliver(ev)
	}
	return nil
}

// watch subscribes, replays from block when asked, and delivers until the
// subscription fails or ctx ends. The subscription is opened before the replay
// so nothing emitted in between is missed; live events the replay already
// covered are dropped by deliver.
func (ln *Listener) watch(ctx context.Context, policy backoff.BackOff, from uint64, replay bool) error {
	sink := make(chan *seasonnft.SeasonNFTMintProcessed, 16)
	sub, err := ln.src.Watch(ctx, sink)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Unsubscribe()
	ln.logger.Info("watching MintProcessed")

	if replay {
		if err := ln.replay(ctx, from); err != nil {
			ln.fail(fmt.Errorf("backfill from block %d: %w", from, err))
		}
	}

	for {
		select {
		case ev := <-sink:
			ln.deliver(ev)
			policy.Reset()
		case err := <-sub.Err():
			if err == nil {
				err = errors.New("subscription closed")
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// deliver fans ev out once. Logs arrive in (block, index) order, so anything
// below the last delivered block, or already seen in it, is a duplicate.
func (ln *Listener) deliver(ev *seasonnft.SeasonNFTMintProcessed) {
	if ev == nil || ev.Raw.Removed {
		return
	}
	block, index := ev.Raw.BlockNumber, ev.Raw.Index
	switch {
	case !ln.delivered || block > ln.lastBlock:
		ln.lastBlock = block
		ln.seen = map[uint]struct{}{}
	case block < ln.lastBlock:
		return
	default:
		if _, dup := ln.seen[index]; dup {
			return
		}
	}
	ln.seen[index] = struct{}{}
	ln.delivered = true

	m := FromBinding(ev)
	for _, o := range ln.observers {
		o.OnMintProcessed(m)
	}
}

func (ln *Listener) fail(err error) {
	for _, o := range ln.observers {
		o.OnError(err)
	}
}
