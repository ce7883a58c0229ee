package mint

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/seasonnft"
	"github.com/ligun0805/season-mint/internal/wallet"
)

//go:generate mockgen -source=mint.go -destination=../mocks/mint_mock.go -package=mocks

var (
	ErrNoAccounts   = errors.New("wallet returned no accounts")
	ErrMintInFlight = errors.New("a mint request is already in flight")
)

// Contract is the write side of the season NFT binding.
type Contract interface {
	RequestMintCrystals(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error)
	ParseMintRequest(log types.Log) (*seasonnft.SeasonNFTMintRequest, error)
}

// TransactorSource signs on behalf of an account the wallet exposed.
type TransactorSource interface {
	Transactor(ctx context.Context, from common.Address) (*bind.TransactOpts, error)
}

type Option func(*Minter)

func WithLogger(l *zap.Logger) Option { return func(m *Minter) { m.logger = logger.OrNop(l) } }

// WithDefaultAmount sets the amount used when Mint is called with amount <= 0.
func WithDefaultAmount(n int64) Option {
	return func(m *Minter) {
		if n > 0 {
			m.defaultAmount = n
		}
	}
}

// Minter submits requestMintCrystals from the wallet's first account.
type Minter struct {
	provider      wallet.Provider
	contract      Contract
	signer        TransactorSource
	logger        *zap.Logger
	defaultAmount int64

	inFlight atomic.Bool
}

func New(provider wallet.Provider, contract Contract, signer TransactorSource, opts ...Option) *Minter {
	m := &Minter{
		provider:      provider,
		contract:      contract,
		signer:        signer,
		logger:        zap.NewNop(),
		defaultAmount: 1,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// InFlight reports whether a Mint call has not returned yet.
func (m *Minter) InFlight() bool { return m.inFlight.Load() }

// Mint requests the wallet accounts and sends requestMintCrystals(amount)
// from the first one. It returns once the transaction is submitted; a call
// made while another is still running fails with ErrMintInFlight.
func (m *Minter) Mint(ctx context.Context, amount int64) (*types.Transaction, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, ErrMintInFlight
	}
	defer m.inFlight.Store(false)

	if amount <= 0 {
		amount = m.defaultAmount
	}
	tx, from, err := m.submit(ctx, amount)
	if err != nil {
		m.logger.Error("mint request failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}
	m.logger.Info("mint request sent",
		zap.String("from", from.Hex()),
		zap.Int64("amount", amount),
		zap.String("tx", tx.Hash().Hex()))
	return tx, nil
}

func (m *Minter) submit(ctx context.Context, amount int64) (*types.Transaction, common.Address, error) {
	if m.provider == nil {
		return nil, common.Address{}, ErrNoAccounts
	}
	accounts, err := wallet.RequestAccounts(ctx, m.provider)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, common.Address{}, ErrNoAccounts
	}
	from := accounts[0]

	opts, err := m.signer.Transactor(ctx, from)
	if err != nil {
		return nil, from, fmt.Errorf("transactor for %s: %w", from.Hex(), err)
	}
	tx, err := m.contract.RequestMintCrystals(opts, big.NewInt(amount))
	if err != nil {
		return nil, from, fmt.Errorf("requestMintCrystals: %w", err)
	}
	return tx, from, nil
}

// Request is the MintRequest the contract emitted for a mined transaction.
type Request struct {
	User        common.Address
	Nonce       *big.Int
	Crystals    *big.Int
	Amount      *big.Int
	BlockNumber uint64
}

// ErrNoMintRequest is returned when a mined receipt carries no MintRequest log.
var ErrNoMintRequest = errors.New("receipt has no MintRequest event")

// WaitMined blocks until tx is included and decodes the MintRequest it emitted.
func (m *Minter) WaitMined(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (*Request, error) {
	rcpt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait mined: %w", err)
	}
	if rcpt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("mint tx %s reverted", tx.Hash().Hex())
	}
	for _, lg := range rcpt.Logs {
		if lg == nil {
			continue
		}
		ev, err := m.contract.ParseMintRequest(*lg)
		if err != nil {
			continue
		}
		req := &Request{User: ev.User, Nonce: ev.Nonce, Crystals: ev.Crystals, Amount: ev.Amount, BlockNumber: rcpt.BlockNumber.Uint64()}
		m.logger.Info("mint request mined",
			zap.String("user", req.User.Hex()),
			zap.String("nonce", req.Nonce.String()),
			zap.Uint64("block", req.BlockNumber))
		return req, nil
	}
	return nil, ErrNoMintRequest
}
