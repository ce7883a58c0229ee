package wallet

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	_ bind.ContractBackend = (*ChainBackend)(nil)
	_ bind.DeployBackend   = (*ChainBackend)(nil)
)

// ChainBackend is a contract backend that always talks to the wallet's
// active network, so bindings survive a chain switch.
type ChainBackend struct {
	w *Wallet
}

func (w *Wallet) ContractBackend() *ChainBackend { return &ChainBackend{w: w} }

func (b *ChainBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.CodeAt(ctx, contract, blockNumber)
}

func (b *ChainBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.CallContract(ctx, call, blockNumber)
}

func (b *ChainBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.HeaderByNumber(ctx, number)
}

func (b *ChainBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.PendingCodeAt(ctx, account)
}

func (b *ChainBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return 0, err
	}
	return ec.PendingNonceAt(ctx, account)
}

func (b *ChainBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.SuggestGasPrice(ctx)
}

func (b *ChainBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.SuggestGasTipCap(ctx)
}

func (b *ChainBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return 0, err
	}
	return ec.EstimateGas(ctx, call)
}

func (b *ChainBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return err
	}
	return ec.SendTransaction(ctx, tx)
}

func (b *ChainBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.TransactionReceipt(ctx, txHash)
}

func (b *ChainBackend) BlockNumber(ctx context.Context) (uint64, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return 0, err
	}
	return ec.BlockNumber(ctx)
}

func (b *ChainBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.FilterLogs(ctx, q)
}

// SubscribeFilterLogs needs a websocket (or IPC) endpoint on the active network.
func (b *ChainBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	ec, err := b.w.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return ec.SubscribeFilterLogs(ctx, q, ch)
}
