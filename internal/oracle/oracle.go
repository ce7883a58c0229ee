package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/seasonnft"
)

//go:generate mockgen -source=oracle.go -destination=../mocks/oracle_mock.go -package=mocks -mock_names=Contract=MockOracleContract

// MintGasLimit is the gas limit of a fulfilment transaction.
const MintGasLimit = 300_000

var one = big.NewInt(1)

// Contract is the oracle side of the season NFT binding.
type Contract interface {
	LastProcessedNonce(opts *bind.CallOpts) (*big.Int, error)
	Mint(opts *bind.TransactOpts, user common.Address, tokenIds []*big.Int, nonce *big.Int, data []byte) (*types.Transaction, error)
}

// Requests reads MintRequest events.
type Requests interface {
	Watch(ctx context.Context, sink chan<- *seasonnft.SeasonNFTMintRequest) (event.Subscription, error)
	// Past returns the requests emitted with nonce, searching from genesis.
	Past(ctx context.Context, nonce *big.Int) ([]*seasonnft.SeasonNFTMintRequest, error)
}

// Signer signs on behalf of the oracle account.
type Signer interface {
	Transactor(ctx context.Context, from common.Address) (*bind.TransactOpts, error)
}

type Option func(*Oracle)

func WithLogger(l *zap.Logger) Option { return func(o *Oracle) { o.logger = logger.OrNop(l) } }

// WithRoll replaces the random source; rolls must fall in [0, RollRange).
func WithRoll(roll func() uint32) Option { return func(o *Oracle) { o.roll = roll } }

// WithMaxAmount caps the token count of one request; larger requests are skipped.
func WithMaxAmount(n int64) Option {
	return func(o *Oracle) {
		if n > 0 {
			o.maxAmount = n
		}
	}
}

// WithRetry bounds the delay between restarts after a failure.
func WithRetry(initial, max time.Duration) Option {
	return func(o *Oracle) {
		o.retryInitial = initial
		o.retryMax = max
	}
}

// Oracle answers MintRequest events with mint calls carrying drawn token ids.
// Requests are fulfilled in nonce order from lastProcessedNonce+1. Run owns
// the cursor, so an Oracle must not be run twice at once.
type Oracle struct {
	from     common.Address
	contract Contract
	requests Requests
	signer   Signer
	backend  bind.DeployBackend
	logger   *zap.Logger

	roll      func() uint32
	maxAmount int64

	retryInitial time.Duration
	retryMax     time.Duration

	processed *big.Int
}

func New(from common.Address, contract Contract, requests Requests, signer Signer, backend bind.DeployBackend, opts ...Option) *Oracle {
	o := &Oracle{
		from:         from,
		contract:     contract,
		requests:     requests,
		signer:       signer,
		backend:      backend,
		logger:       zap.NewNop(),
		roll:         defaultRoll,
		maxAmount:    50,
		retryInitial: 5 * time.Second,
		retryMax:     time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CatchUp fulfils every request after the contract's lastProcessedNonce,
// one nonce at a time, until no request with the next nonce exists.
func (o *Oracle) CatchUp(ctx context.Context) error {
	last, err := o.contract.LastProcessedNonce(&bind.CallOpts{Context: ctx})
	if err != nil {
		return fmt.Errorf("read lastProcessedNonce: %w", err)
	}
	o.processed = new(big.Int).Set(last)
	o.logger.Info("catching up", zap.String("lastProcessedNonce", last.String()))

	for {
		next := new(big.Int).Add(o.processed, one)
		reqs, err := o.requests.Past(ctx, next)
		if err != nil {
			return fmt.Errorf("read request %s: %w", next, err)
		}
		if len(reqs) == 0 {
			return nil
		}
		if err := o.fulfil(ctx, reqs[0]); err != nil {
			return err
		}
	}
}

// Run catches up, then answers live requests until ctx is done. Any failure
// restarts the cycle after a backoff.
func (o *Oracle) Run(ctx context.Context) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = o.retryInitial
	eb.MaxInterval = o.retryMax
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(eb, ctx)

	for {
		err := o.serve(ctx, policy)
		if ctx.Err() != nil {
			return nil
		}
		d := policy.NextBackOff()
		if d == backoff.Stop {
			return nil
		}
		o.logger.Error("oracle failed, restarting", zap.Error(err), zap.Duration("in", d))
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil
		}
	}
}

// serve subscribes before catching up so requests emitted meanwhile are
// queued; the ones catch-up already answered are skipped by nonce.
func (o *Oracle) serve(ctx context.Context, policy backoff.BackOff) error {
	sink := make(chan *seasonnft.SeasonNFTMintRequest, 64)
	sub, err := o.requests.Watch(ctx, sink)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Unsubscribe()

	if err := o.CatchUp(ctx); err != nil {
		return err
	}
	policy.Reset()
	o.logger.Info("watching MintRequest", zap.String("lastProcessedNonce", o.processed.String()))

	for {
		select {
		case req := <-sink:
			if err := o.handle(ctx, req); err != nil {
				return err
			}
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

func (o *Oracle) handle(ctx context.Context, req *seasonnft.SeasonNFTMintRequest) error {
	if req == nil || req.Nonce == nil || req.Raw.Removed {
		return nil
	}
	next := new(big.Int).Add(o.processed, one)
	switch req.Nonce.Cmp(next) {
	case -1:
		o.logger.Debug("request already processed", zap.String("nonce", req.Nonce.String()))
		return nil
	case 1:
		// a request was missed; the contract cursor says where to resume
		return o.CatchUp(ctx)
	}
	return o.fulfil(ctx, req)
}

func (o *Oracle) fulfil(ctx context.Context, req *seasonnft.SeasonNFTMintRequest) error {
	log := o.logger.With(zap.String("user", req.User.Hex()), zap.String("nonce", req.Nonce.String()))
	amount := req.Amount
	if amount == nil || amount.Sign() <= 0 || amount.Cmp(big.NewInt(o.maxAmount)) > 0 {
		log.Warn("skipping request with invalid amount", zap.String("amount", fmt.Sprint(amount)))
		o.processed = new(big.Int).Set(req.Nonce)
		return nil
	}

	ids := Draw(OddsFor(req.Crystals), int(amount.Int64()), o.roll)
	opts, err := o.signer.Transactor(ctx, o.from)
	if err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	opts.GasLimit = MintGasLimit

	tx, err := o.contract.Mint(opts, req.User, ids, req.Nonce, []byte{})
	if err != nil {
		return fmt.Errorf("mint nonce %s: %w", req.Nonce, err)
	}
	rcpt, err := bind.WaitMined(ctx, o.backend, tx)
	if err != nil {
		return fmt.Errorf("wait mint %s: %w", tx.Hash().Hex(), err)
	}
	if rcpt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("mint nonce %s reverted in %s", req.Nonce, tx.Hash().Hex())
	}
	o.processed = new(big.Int).Set(req.Nonce)
	log.Info("mint fulfilled", zap.Strings("tokenIds", idStrings(ids)), zap.String("tx", tx.Hash().Hex()))
	return nil
}

func idStrings(ids []*big.Int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

type bindingRequests struct {
	f *seasonnft.SeasonNFTFilterer
}

// NewRequestSource reads MintRequest through the generated contract filterer.
func NewRequestSource(f *seasonnft.SeasonNFTFilterer) Requests { return bindingRequests{f: f} }

func (r bindingRequests) Watch(ctx context.Context, sink chan<- *seasonnft.SeasonNFTMintRequest) (event.Subscription, error) {
	return r.f.WatchMintRequest(&bind.WatchOpts{Context: ctx}, sink, nil, nil, nil)
}

func (r bindingRequests) Past(ctx context.Context, nonce *big.Int) ([]*seasonnft.SeasonNFTMintRequest, error) {
	it, err := r.f.FilterMintRequest(&bind.FilterOpts{Start: 0, Context: ctx}, nil, []*big.Int{nonce}, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	var out []*seasonnft.SeasonNFTMintRequest
	for it.Next() {
		out = append(out, it.Event)
	}
	return out, it.Error()
}
