package guard_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/mocks"
	"github.com/ligun0805/season-mint/internal/wallet"
)

func chainIDReply(hex string) json.RawMessage {
	b, _ := json.Marshal(hex)
	return b
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		chainID   string
		blurred   bool
		onPolygon bool
	}{
		{name: "polygon unblurs and hides prompt", chainID: "0x89", blurred: false, onPolygon: true},
		{name: "upper-case hex still matches", chainID: "0X89", blurred: false, onPolygon: true},
		{name: "mainnet blurs and shows prompt", chainID: "0x1", blurred: true},
		{name: "amoy blurs and shows prompt", chainID: "0x13882", blurred: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mocks.NewMockProvider(ctrl)
			view := mocks.NewMockView(ctrl)

			provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(chainIDReply(tt.chainID), nil)
			view.EXPECT().SetBlurred(tt.blurred)
			view.EXPECT().SetConnectPromptVisible(tt.blurred)

			g := guard.New(provider, view)
			st := g.Check(context.Background())
			assert.Equal(t, tt.onPolygon, st.OnExpected)
			assert.Equal(t, "0x89", st.Expected)
			assert.Equal(t, st, g.Last())
		})
	}
}

func TestCheckQueryErrorKeepsBlur(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	view := mocks.NewMockView(ctrl)
	core, logs := observer.New(zapcore.ErrorLevel)

	provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(nil, errors.New("wallet locked"))
	view.EXPECT().SetBlurred(true)
	view.EXPECT().SetConnectPromptVisible(true)

	st := guard.New(provider, view, guard.WithLogger(zap.New(core))).Check(context.Background())
	assert.False(t, st.OnExpected)
	assert.Equal(t, "wallet locked", st.Err)
	assert.Equal(t, 1, logs.FilterMessage("chain id query failed").Len())
}

func TestNoProviderIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := mocks.NewMockView(ctrl) // any call on it fails the test

	g := guard.New(nil, view)
	st := g.Check(context.Background())
	assert.False(t, st.OnExpected)
	assert.False(t, g.Connect(context.Background()))
	assert.NoError(t, g.Run(context.Background()))
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("requests switch to expected chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().
			Request(gomock.Any(), wallet.MethodSwitchChain, wallet.SwitchChainParams{ChainID: "0x89"}).
			Return(json.RawMessage("null"), nil)

		assert.True(t, guard.New(provider, nil).Connect(ctx))
	})

	t.Run("rejection does not escape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		core, logs := observer.New(zapcore.WarnLevel)
		provider.EXPECT().
			Request(gomock.Any(), wallet.MethodSwitchChain, gomock.Any()).
			Return(nil, &wallet.RPCError{Code: wallet.CodeUserRejected, Message: "User rejected the request."})

		var ok bool
		require.NotPanics(t, func() { ok = guard.New(provider, nil, guard.WithLogger(zap.New(core))).Connect(ctx) })
		assert.False(t, ok)
		assert.Equal(t, 1, logs.FilterMessage("network switch rejected").Len())
	})

	t.Run("unsupported network is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		core, logs := observer.New(zapcore.WarnLevel)
		provider.EXPECT().
			Request(gomock.Any(), wallet.MethodSwitchChain, wallet.SwitchChainParams{ChainID: "0x13882"}).
			Return(nil, &wallet.RPCError{Code: wallet.CodeUnrecognizedChain, Message: "unrecognized chain"})

		g := guard.New(provider, nil, guard.WithExpectedChain("0x13882"), guard.WithLogger(zap.New(core)))
		assert.False(t, g.Connect(ctx))
		assert.Equal(t, 1, logs.FilterMessage("network switch failed").Len())
	})
}

func TestRunRechecksOnChainChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	view := mocks.NewMockView(ctrl)
	states := mocks.NewMockStateObserver(ctrl)

	var notify chan<- string
	provider.EXPECT().SubscribeChainChanged(gomock.Any()).DoAndReturn(func(ch chan<- string) event.Subscription {
		notify = ch
		return event.NewSubscription(func(quit <-chan struct{}) error {
			<-quit
			return nil
		})
	})

	done := make(chan struct{})
	gomock.InOrder(
		provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(chainIDReply("0x1"), nil),
		provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(chainIDReply("0x89"), nil),
	)
	gomock.InOrder(
		view.EXPECT().SetBlurred(true),
		view.EXPECT().SetBlurred(false),
	)
	gomock.InOrder(
		view.EXPECT().SetConnectPromptVisible(true),
		view.EXPECT().SetConnectPromptVisible(false),
	)
	gomock.InOrder(
		states.EXPECT().OnNetworkState(gomock.Any()).Do(func(st guard.State) {
			assert.Equal(t, "0x1", st.ChainID)
			notify <- "0x89"
		}),
		states.EXPECT().OnNetworkState(gomock.Any()).Do(func(st guard.State) {
			assert.True(t, st.OnExpected)
			close(done)
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	g := guard.New(provider, view, guard.WithObserver(states))
	go func() { errc <- g.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("guard did not re-check after chain change")
	}
	cancel()
	assert.NoError(t, <-errc)
}

func TestRunStopsOnSubscriptionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)

	provider.EXPECT().SubscribeChainChanged(gomock.Any()).Return(event.NewSubscription(func(quit <-chan struct{}) error {
		return errors.New("provider disconnected")
	}))
	provider.EXPECT().Request(gomock.Any(), wallet.MethodChainID).Return(chainIDReply("0x89"), nil)

	err := guard.New(provider, nil).Run(context.Background())
	assert.EqualError(t, err, "provider disconnected")
}

func TestRunAgainstLocalWallet(t *testing.T) {
	w, err := wallet.New("", wallet.DefaultRegistry(), "ethereum")
	require.NoError(t, err)
	defer w.Close()

	view := &recordingView{changed: make(chan struct{}, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := guard.New(w, view)
	go func() { _ = g.Run(ctx) }()
	<-view.changed
	assert.True(t, view.snapshot())

	require.True(t, g.Connect(ctx))
	<-view.changed
	assert.False(t, view.snapshot())
}

type recordingView struct {
	mu      sync.Mutex
	blurred bool
	changed chan struct{}
}

func (v *recordingView) SetBlurred(b bool) {
	v.mu.Lock()
	v.blurred = b
	v.mu.Unlock()
}

func (v *recordingView) SetConnectPromptVisible(bool) { v.changed <- struct{}{} }

func (v *recordingView) snapshot() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.blurred
}
