package mint_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ligun0805/season-mint/internal/mint"
	"github.com/ligun0805/season-mint/internal/mocks"
	"github.com/ligun0805/season-mint/internal/seasonnft"
	"github.com/ligun0805/season-mint/internal/wallet"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000A11cE")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func accountsReply(addrs ...common.Address) json.RawMessage {
	hexes := make([]string, 0, len(addrs))
	for _, a := range addrs {
		hexes = append(hexes, a.Hex())
	}
	b, _ := json.Marshal(hexes)
	return b
}

func testTx() *types.Transaction {
	return types.NewTransaction(7, common.HexToAddress("0xc0ffee"), big.NewInt(0), 90_000, big.NewInt(1), nil)
}

func TestMintSendsFromFirstAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	contract := mocks.NewMockContract(ctrl)
	signer := mocks.NewMockTransactorSource(ctrl)
	tx := testTx()

	gomock.InOrder(
		provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accountsReply(alice, bob), nil),
		signer.EXPECT().Transactor(gomock.Any(), alice).Return(&bind.TransactOpts{From: alice}, nil),
		contract.EXPECT().RequestMintCrystals(gomock.Any(), gomock.Any()).
			DoAndReturn(func(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
				assert.Equal(t, alice, opts.From)
				assert.Equal(t, int64(1), amount.Int64())
				return tx, nil
			}),
	)

	core, logs := observer.New(zapcore.InfoLevel)
	m := mint.New(provider, contract, signer, mint.WithLogger(zap.New(core)))
	got, err := m.Mint(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), got.Hash())
	assert.False(t, m.InFlight())

	sent := logs.FilterMessage("mint request sent").All()
	require.Len(t, sent, 1)
	assert.Equal(t, alice.Hex(), sent[0].ContextMap()["from"])
}

func TestMintUsesConfiguredAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	contract := mocks.NewMockContract(ctrl)
	signer := mocks.NewMockTransactorSource(ctrl)

	provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accountsReply(alice), nil).Times(2)
	signer.EXPECT().Transactor(gomock.Any(), alice).Return(&bind.TransactOpts{From: alice}, nil).Times(2)
	gomock.InOrder(
		contract.EXPECT().RequestMintCrystals(gomock.Any(), big.NewInt(5)).Return(testTx(), nil),
		contract.EXPECT().RequestMintCrystals(gomock.Any(), big.NewInt(2)).Return(testTx(), nil),
	)

	m := mint.New(provider, contract, signer, mint.WithDefaultAmount(5))
	_, err := m.Mint(context.Background(), 0)
	require.NoError(t, err)
	_, err = m.Mint(context.Background(), 2)
	require.NoError(t, err)
}

func TestMintInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	contract := mocks.NewMockContract(ctrl)
	signer := mocks.NewMockTransactorSource(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accountsReply(alice), nil)
	signer.EXPECT().Transactor(gomock.Any(), alice).Return(&bind.TransactOpts{From: alice}, nil)
	contract.EXPECT().RequestMintCrystals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(*bind.TransactOpts, *big.Int) (*types.Transaction, error) {
			close(entered)
			<-release
			return testTx(), nil
		})

	m := mint.New(provider, contract, signer)
	errc := make(chan error, 1)
	go func() {
		_, err := m.Mint(context.Background(), 1)
		errc <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first mint never reached the contract")
	}
	assert.True(t, m.InFlight())
	_, err := m.Mint(context.Background(), 1)
	assert.ErrorIs(t, err, mint.ErrMintInFlight)

	close(release)
	require.NoError(t, <-errc)
	assert.False(t, m.InFlight())
}

func TestMintErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accountsReply(), nil)

		_, err := mint.New(provider, mocks.NewMockContract(ctrl), mocks.NewMockTransactorSource(ctrl)).Mint(ctx, 1)
		assert.ErrorIs(t, err, mint.ErrNoAccounts)
	})

	t.Run("no wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := mint.New(nil, mocks.NewMockContract(ctrl), mocks.NewMockTransactorSource(ctrl)).Mint(ctx, 1)
		assert.ErrorIs(t, err, mint.ErrNoAccounts)
	})

	t.Run("user declines accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).
			Return(nil, &wallet.RPCError{Code: wallet.CodeUserRejected, Message: "User rejected the request."})
		core, logs := observer.New(zapcore.ErrorLevel)

		m := mint.New(provider, mocks.NewMockContract(ctrl), mocks.NewMockTransactorSource(ctrl), mint.WithLogger(zap.New(core)))
		_, err := m.Mint(ctx, 1)
		assert.True(t, wallet.IsUserRejected(err))
		assert.Equal(t, 1, logs.FilterMessage("mint request failed").Len())
		assert.False(t, m.InFlight())
	})

	t.Run("send fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		contract := mocks.NewMockContract(ctrl)
		signer := mocks.NewMockTransactorSource(ctrl)
		provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accountsReply(alice), nil)
		signer.EXPECT().Transactor(gomock.Any(), alice).Return(&bind.TransactOpts{From: alice}, nil)
		contract.EXPECT().RequestMintCrystals(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient funds for gas * price + value"))

		_, err := mint.New(provider, contract, signer).Mint(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
	})
}

type receiptBackend struct {
	receipt *types.Receipt
}

func (b receiptBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return b.receipt, nil
}

func (b receiptBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, nil
}

func TestWaitMinedDecodesMintRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	contract := mocks.NewMockContract(ctrl)

	transfer := &types.Log{Index: 0}
	request := &types.Log{Index: 1}
	rcpt := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(55), Logs: []*types.Log{transfer, request}}

	gomock.InOrder(
		contract.EXPECT().ParseMintRequest(*transfer).Return(nil, errors.New("event signature mismatch")),
		contract.EXPECT().ParseMintRequest(*request).Return(&seasonnft.SeasonNFTMintRequest{
			User: alice, Nonce: big.NewInt(42), Crystals: big.NewInt(100), Amount: big.NewInt(1),
		}, nil),
	)

	m := mint.New(nil, contract, nil)
	req, err := m.WaitMined(context.Background(), receiptBackend{receipt: rcpt}, testTx())
	require.NoError(t, err)
	assert.Equal(t, alice, req.User)
	assert.Equal(t, int64(42), req.Nonce.Int64())
	assert.Equal(t, uint64(55), req.BlockNumber)
}

func TestWaitMinedReverted(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mint.New(nil, mocks.NewMockContract(ctrl), nil)
	rcpt := &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(1)}

	_, err := m.WaitMined(context.Background(), receiptBackend{receipt: rcpt}, testTx())
	assert.ErrorContains(t, err, "reverted")
}
