package wallet

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
)

var (
	// ErrUnknownChain is returned when the initial network is not in the registry.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrNetworkChanged is returned when a transaction is signed after the
	// active network moved away from the one its options were built for.
	ErrNetworkChanged = errors.New("network changed since the transaction was prepared")
)

// ApprovalRequest describes what the user is asked to confirm.
type ApprovalRequest struct {
	Method  string
	Account common.Address
	Network Network
}

// Approver stands in for the wallet's confirmation popup.
type Approver interface {
	Approve(ctx context.Context, req ApprovalRequest) (bool, error)
}

type ApproverFunc func(ctx context.Context, req ApprovalRequest) (bool, error)

func (f ApproverFunc) Approve(ctx context.Context, req ApprovalRequest) (bool, error) { return f(ctx, req) }

// AutoApprove confirms everything.
var AutoApprove = ApproverFunc(func(context.Context, ApprovalRequest) (bool, error) { return true, nil })

// Dialer opens the JSON-RPC client for a network.
type Dialer func(ctx context.Context, n Network) (*rpc.Client, error)

func defaultDialer(ctx context.Context, n Network) (*rpc.Client, error) {
	return rpc.DialContext(ctx, n.Endpoint())
}

type Option func(*Wallet)

func WithLogger(l *zap.Logger) Option { return func(w *Wallet) { w.logger = logger.OrNop(l) } }
func WithApprover(a Approver) Option { return func(w *Wallet) { w.approver = a } }
func WithDialer(d Dialer) Option { return func(w *Wallet) { w.dial = d } }
func WithMaxRetries(n uint64) Option { return func(w *Wallet) { w.maxRetries = n } }
func WithRetryInterval(d time.Duration) Option {
	return func(w *Wallet) { w.retryInterval = d }
}

// Wallet is a local key wallet. It answers the wallet methods itself and
// forwards every other request to the node of the active network.
type Wallet struct {
	key     *ecdsa.PrivateKey
	account common.Address

	registry      *Registry
	approver      Approver
	dial          Dialer
	logger        *zap.Logger
	maxRetries    uint64
	retryInterval time.Duration

	active atomic.Pointer[Network]

	mu      sync.Mutex
	clients map[uint64]*rpc.Client

	switchMu sync.Mutex // keeps chainChanged notifications in switch order
	feed     event.Feed
	scope    event.SubscriptionScope
}

// New creates a wallet starting on initial (chain id or name). An empty key
// gives a read-only wallet that refuses account requests.
func New(keyHex string, registry *Registry, initial string, opts ...Option) (*Wallet, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	w := &Wallet{
		registry:      registry,
		dial:          defaultDialer,
		logger:        zap.NewNop(),
		maxRetries:    3,
		retryInterval: 200 * time.Millisecond,
		clients:       make(map[uint64]*rpc.Client),
	}
	for _, o := range opts {
		o(w)
	}

	if strings.TrimSpace(keyHex) != "" {
		prv, err := hexToECDSAPriv(keyHex)
		if err != nil {
			return nil, fmt.Errorf("private key: %w", err)
		}
		w.key = prv
		w.account = gethcrypto.PubkeyToAddress(prv.PublicKey)
	}

	n, ok := registry.Lookup(initial)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChain, initial)
	}
	w.active.Store(&n)
	return w, nil
}

// Account returns the managed account and whether a key is loaded.
func (w *Wallet) Account() (common.Address, bool) { return w.account, w.key != nil }

// Network returns the active network.
func (w *Wallet) Network() Network { return *w.active.Load() }

func (w *Wallet) Registry() *Registry { return w.registry }

func (w *Wallet) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	switch method {
	case MethodChainID:
		return json.Marshal(w.Network().ChainIDHex())

	case MethodAccounts:
		return json.Marshal(w.accounts())

	case MethodRequestAccounts:
		if w.key == nil {
			return nil, &RPCError{Code: CodeUnauthorized, Message: "no account configured"}
		}
		if err := w.approve(ctx, ApprovalRequest{Method: method, Account: w.account, Network: w.Network()}); err != nil {
			return nil, err
		}
		return json.Marshal(w.accounts())

	case MethodSwitchChain:
		chainID, err := decodeSwitchParams(params)
		if err != nil {
			return nil, err
		}
		if err := w.SwitchChain(ctx, chainID); err != nil {
			return nil, err
		}
		return json.RawMessage("null"), nil
	}
	return w.forward(ctx, method, params)
}

func (w *Wallet) SubscribeChainChanged(ch chan<- string) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// SwitchChain makes chainIDHex the active network and notifies subscribers
// when it actually changed.
func (w *Wallet) SwitchChain(ctx context.Context, chainIDHex string) error {
	n, ok := w.registry.ByChainID(chainIDHex)
	if !ok {
		return &RPCError{Code: CodeUnrecognizedChain, Message: fmt.Sprintf("unrecognized chain id %s", chainIDHex)}
	}

	w.switchMu.Lock()
	defer w.switchMu.Unlock()

	if w.active.Load().ChainID == n.ChainID {
		return nil
	}
	if err := w.approve(ctx, ApprovalRequest{Method: MethodSwitchChain, Account: w.account, Network: n}); err != nil {
		return err
	}
	w.active.Store(&n)
	w.logger.Info("network switched", zap.String("network", n.Name), zap.String("chainId", n.ChainIDHex()))
	w.feed.Send(n.ChainIDHex())
	return nil
}

// Backend returns an ethclient bound to the active network.
func (w *Wallet) Backend(ctx context.Context) (*ethclient.Client, error) {
	c, err := w.client(ctx, w.Network())
	if err != nil {
		return nil, err
	}
	return ethclient.NewClient(c), nil
}

// Transactor returns signing options for from on the active chain. The tip is
// raised to the network floor when the node suggests less. Signing fails with
// ErrNetworkChanged once the wallet is on another chain.
func (w *Wallet) Transactor(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	if w.key == nil {
		return nil, &RPCError{Code: CodeUnauthorized, Message: "no account configured"}
	}
	if from != w.account {
		return nil, &RPCError{Code: CodeUnauthorized, Message: fmt.Sprintf("account %s is not managed by this wallet", from.Hex())}
	}
	n := w.Network()
	opts, err := newTransactor(w.key, n.ChainID)
	if err != nil {
		return nil, fmt.Errorf("transactor: %w", err)
	}
	opts.Context = ctx
	sign := opts.Signer
	opts.Signer = func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if cur := w.Network(); cur.ChainID != n.ChainID {
			return nil, fmt.Errorf("%w: prepared for %s, active is %s", ErrNetworkChanged, n.Name, cur.Name)
		}
		return sign(addr, tx)
	}

	if n.MinTipGwei > 0 {
		ec, err := w.Backend(ctx)
		if err != nil {
			return nil, err
		}
		floor := gweiToWei(n.MinTipGwei)
		tip, err := ec.SuggestGasTipCap(ctx)
		if err != nil || tip.Cmp(floor) < 0 {
			tip = floor
		}
		opts.GasTipCap = new(big.Int).Set(tip)
	}
	return opts, nil
}

// Close drops subscriptions and closes every dialed client.
func (w *Wallet) Close() {
	w.scope.Close()
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, c := range w.clients {
		c.Close()
		delete(w.clients, id)
	}
}

func (w *Wallet) accounts() []string {
	if w.key == nil {
		return []string{}
	}
	return []string{w.account.Hex()}
}

func (w *Wallet) approve(ctx context.Context, req ApprovalRequest) error {
	if w.approver == nil {
		return nil
	}
	ok, err := w.approver.Approve(ctx, req)
	if err != nil {
		return fmt.Errorf("approval: %w", err)
	}
	if !ok {
		w.logger.Warn("request rejected by user", zap.String("method", req.Method))
		return errUserRejected
	}
	return nil
}

// client returns (and caches) the rpc client for n. Dialing happens outside the lock.
func (w *Wallet) client(ctx context.Context, n Network) (*rpc.Client, error) {
	w.mu.Lock()
	if c := w.clients[n.ChainID]; c != nil {
		w.mu.Unlock()
		return c, nil
	}
	w.mu.Unlock()

	c, err := w.dial(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", n.Name, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing := w.clients[n.ChainID]; existing != nil {
		c.Close()
		return existing, nil
	}
	w.clients[n.ChainID] = c
	return c, nil
}

// forward performs the call on the active node, retrying rate-limit errors with backoff.
func (w *Wallet) forward(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	c, err := w.client(ctx, w.Network())
	if err != nil {
		return nil, err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = w.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, w.maxRetries), ctx)

	var out json.RawMessage
	op := func() error {
		err := c.CallContext(ctx, &out, method, params...)
		if err == nil || isRateLimitError(err) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, d time.Duration) {
		w.logger.Debug("rpc rate limited, retrying", zap.String("method", method), zap.Duration("in", d), zap.Error(err))
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return out, nil
}
