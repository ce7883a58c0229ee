package dapp_test

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ligun0805/season-mint/internal/dapp"
	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/mint"
	"github.com/ligun0805/season-mint/internal/mocks"
	"github.com/ligun0805/season-mint/internal/seasonnft"
	"github.com/ligun0805/season-mint/internal/wallet"
)

var player = common.HexToAddress("0x00000000000000000000000000000000000000c4")

func idleSub() event.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	})
}

func TestNewValidatesDeps(t *testing.T) {
	_, err := dapp.New(dapp.MintOnly, dapp.Deps{})
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = dapp.New(dapp.Options{Listen: true}, dapp.Deps{Contract: mocks.NewMockContract(ctrl)})
	assert.Error(t, err)

	app, err := dapp.New(dapp.GuardOnly, dapp.Deps{})
	require.NoError(t, err)
	assert.NotNil(t, app.Guard())
	assert.Nil(t, app.Minter())
}

func TestVariantsDisableFlows(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	guardOnly, err := dapp.New(dapp.GuardOnly, dapp.Deps{})
	require.NoError(t, err)
	_, err = guardOnly.Mint(ctx, 1)
	assert.ErrorIs(t, err, dapp.ErrDisabled)
	assert.False(t, guardOnly.MintInFlight())

	mintOnly, err := dapp.New(dapp.MintOnly, dapp.Deps{
		Contract: mocks.NewMockContract(ctrl),
		Signer:   mocks.NewMockTransactorSource(ctrl),
		Events:   mocks.NewMockSource(ctrl),
	})
	require.NoError(t, err)
	_, err = mintOnly.Check(ctx)
	assert.ErrorIs(t, err, dapp.ErrDisabled)
	assert.False(t, mintOnly.Connect(ctx))
}

func TestNoWalletLeavesViewAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := mocks.NewMockView(ctrl) // no calls expected: the view keeps its blurred default

	app, err := dapp.New(dapp.GuardOnly, dapp.Deps{View: view})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NotPanics(t, func() { app.Start(ctx) })

	st, err := app.Check(ctx)
	require.NoError(t, err)
	assert.False(t, st.OnExpected)
	assert.False(t, app.Connect(ctx))
}

func TestFullPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	view := mocks.NewMockView(ctrl)
	contract := mocks.NewMockContract(ctrl)
	signer := mocks.NewMockTransactorSource(ctrl)
	src := mocks.NewMockSource(ctrl)

	polygon, _ := json.Marshal("0x89")
	accounts, _ := json.Marshal([]string{player.Hex()})

	checked := make(chan struct{})
	provider.EXPECT().SubscribeChainChanged(gomock.Any()).Return(idleSub())
	provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(polygon, nil)
	view.EXPECT().SetBlurred(false)
	view.EXPECT().SetConnectPromptVisible(false).Do(func(bool) { close(checked) })

	src.EXPECT().Past(gomock.Any(), uint64(64)).Return(nil, nil)
	src.EXPECT().Watch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
			go func() {
				sink <- &seasonnft.SeasonNFTMintProcessed{User: player, TokenIds: []*big.Int{big.NewInt(3)}, Nonce: big.NewInt(8)}
			}()
			return idleSub(), nil
		})

	provider.EXPECT().Request(gomock.Any(), wallet.MethodRequestAccounts).Return(accounts, nil)
	signer.EXPECT().Transactor(gomock.Any(), player).Return(&bind.TransactOpts{From: player}, nil)
	contract.EXPECT().RequestMintCrystals(gomock.Any(), big.NewInt(1)).
		Return(types.NewTransaction(0, common.Address{}, big.NewInt(0), 0, big.NewInt(0), nil), nil)

	core, logs := observer.New(zapcore.InfoLevel)
	ch := events.NewChannel(4)
	states := make(chan guard.State, 4)
	from := uint64(64)
	app, err := dapp.New(dapp.FullPage, dapp.Deps{
		Provider:       provider,
		View:           view,
		Contract:       contract,
		Signer:         signer,
		Events:         src,
		FromBlock:      &from,
		Observers:      []events.Observer{ch},
		StateObservers: []guard.StateObserver{stateFunc(func(st guard.State) { states <- st })},
		Logger:         zap.New(core),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Start(ctx)
		close(done)
	}()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("guard never checked the network")
	}
	assert.True(t, (<-states).OnExpected)

	select {
	case n := <-ch.C():
		require.NotNil(t, n.Event)
		assert.Equal(t, "8", n.Event.NonceString())
	case <-time.After(2 * time.Second):
		t.Fatal("listener delivered nothing")
	}

	_, err = app.Mint(ctx, 0)
	require.NoError(t, err)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
	assert.Equal(t, 1, logs.FilterMessage("mint processed").Len())
	assert.Equal(t, 1, logs.FilterMessage("mint request sent").Len())
}

type stateFunc func(guard.State)

func (f stateFunc) OnNetworkState(st guard.State) { f(st) }

var _ mint.Contract = (*seasonnft.SeasonNFT)(nil)
