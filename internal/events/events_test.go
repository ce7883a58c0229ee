package events_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/mocks"
	"github.com/ligun0805/season-mint/internal/seasonnft"
)

var (
	player   = common.HexToAddress("0x7e57000000000000000000000000000000000001")
	contract = common.HexToAddress("0x5ea50000000000000000000000000000000000aa")
)

func processed(block uint64, nonce int64, ids ...int64) *seasonnft.SeasonNFTMintProcessed {
	return processedAt(block, 0, nonce, ids...)
}

func processedAt(block uint64, index uint, nonce int64, ids ...int64) *seasonnft.SeasonNFTMintProcessed {
	tokenIDs := make([]*big.Int, 0, len(ids))
	for _, id := range ids {
		tokenIDs = append(tokenIDs, big.NewInt(id))
	}
	return &seasonnft.SeasonNFTMintProcessed{
		User:     player,
		TokenIds: tokenIDs,
		Nonce:    big.NewInt(nonce),
		Raw:      types.Log{BlockNumber: block, Index: index},
	}
}

// idleSub stays open until unsubscribed.
func idleSub() event.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	})
}

func TestLogObserverWritesOneLine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := events.NewLogObserver(zap.New(core))

	obs.OnMintProcessed(events.FromBinding(processed(10, 7, 1001, 1002)))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "mint processed", entry.Message)
	assert.Equal(t, player.Hex(), fields["user"])
	assert.Equal(t, "1001,1002", fields["tokenIds"])
	assert.Equal(t, "7", fields["nonce"])
}

func TestLogObserverErrorSkipsSuccessPath(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := events.NewLogObserver(zap.New(core))

	obs.OnError(errors.New("filter not found"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, 0, logs.FilterMessage("mint processed").Len())
	assert.Equal(t, "filter not found", logs.All()[0].ContextMap()["error"])
}

func TestChannelDropsWhenFull(t *testing.T) {
	ch := events.NewChannel(1)
	ch.OnMintProcessed(events.FromBinding(processed(1, 1, 1)))
	ch.OnError(errors.New("late"))

	n := <-ch.C()
	require.NotNil(t, n.Event)
	assert.Equal(t, "1", n.Event.NonceString())
	assert.Equal(t, uint64(1), ch.Dropped())
}

func TestListenerDeliversToObservers(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Watch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
			go func() { sink <- processed(12, 3, 77) }()
			return idleSub(), nil
		})

	ch := events.NewChannel(4)
	core, logs := observer.New(zapcore.InfoLevel)
	ln := events.NewListener(src,
		events.WithObserver(ch),
		events.WithObserver(events.NewLogObserver(zap.New(core))))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- ln.Run(ctx) }()

	n := recv(t, ch)
	require.NotNil(t, n.Event)
	assert.Equal(t, player, n.Event.User)
	assert.Equal(t, []string{"77"}, n.Event.TokenIDStrings())
	assert.Equal(t, uint64(12), n.Event.BlockNumber)

	cancel()
	assert.NoError(t, <-errc)
	assert.Equal(t, 1, logs.FilterMessage("mint processed").Len())
}

func TestListenerResubscribesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused")),
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(event.NewSubscription(func(quit <-chan struct{}) error {
			return errors.New("websocket: close 1006")
		}), nil),
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
				go func() { sink <- processed(20, 9, 5) }()
				return idleSub(), nil
			}),
	)

	ch := events.NewChannel(8)
	ln := events.NewListener(src, events.WithObserver(ch), events.WithRetry(time.Millisecond, 5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- ln.Run(ctx) }()

	first := recv(t, ch)
	assert.ErrorContains(t, first.Err, "connection refused")
	second := recv(t, ch)
	assert.ErrorContains(t, second.Err, "close 1006")
	third := recv(t, ch)
	require.NotNil(t, third.Event)
	assert.Equal(t, "9", third.Event.NonceString())

	cancel()
	assert.NoError(t, <-errc)
}

func TestListenerBackfillsBeforeWatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(event.NewSubscription(func(quit <-chan struct{}) error {
			return errors.New("subscription dropped")
		}), nil),
		src.EXPECT().Past(gomock.Any(), uint64(100)).Return([]*seasonnft.SeasonNFTMintProcessed{
			processed(101, 1, 10),
			processed(105, 2, 11, 12),
		}, nil),
		// the gap from the last replayed block is filled on resubscribe
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(idleSub(), nil),
		src.EXPECT().Past(gomock.Any(), uint64(105)).Return([]*seasonnft.SeasonNFTMintProcessed{
			processed(105, 2, 11, 12),
		}, nil),
	)

	ch := events.NewChannel(8)
	ln := events.NewListener(src,
		events.WithObserver(ch),
		events.WithFromBlock(100),
		events.WithRetry(time.Millisecond, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- ln.Run(ctx) }()

	assert.Equal(t, "1", recv(t, ch).Event.NonceString())
	assert.Equal(t, "2", recv(t, ch).Event.NonceString())
	assert.ErrorContains(t, recv(t, ch).Err, "subscription dropped")

	// give the second Past time to happen before the controller checks expectations
	require.Eventually(t, func() bool { return ctrl.Satisfied() }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-errc)
	select {
	case n := <-ch.C():
		t.Fatalf("replayed event delivered twice: %+v", n)
	default:
	}
}

func TestListenerResumesInsideLastBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	drop := make(chan struct{})
	gomock.InOrder(
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
				return event.NewSubscription(func(quit <-chan struct{}) error {
					sink <- processedAt(10, 0, 1, 100)
					select {
					case <-drop:
						return errors.New("websocket: close 1006")
					case <-quit:
						return nil
					}
				}), nil
			}),
		// live events overlap the replay: block 10 index 1 arrives both ways
		src.EXPECT().Watch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sink chan<- *seasonnft.SeasonNFTMintProcessed) (event.Subscription, error) {
				sink <- processedAt(10, 1, 2, 101)
				sink <- processedAt(11, 0, 3, 102)
				return idleSub(), nil
			}),
		src.EXPECT().Past(gomock.Any(), uint64(10)).Return([]*seasonnft.SeasonNFTMintProcessed{
			processedAt(10, 0, 1, 100),
			processedAt(10, 1, 2, 101),
		}, nil),
	)

	ch := events.NewChannel(8)
	ln := events.NewListener(src, events.WithObserver(ch), events.WithRetry(time.Millisecond, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- ln.Run(ctx) }()

	assert.Equal(t, "1", recv(t, ch).Event.NonceString())
	close(drop)
	assert.ErrorContains(t, recv(t, ch).Err, "close 1006")

	var nonces []string
	for len(nonces) < 2 {
		n := recv(t, ch)
		require.NotNil(t, n.Event)
		nonces = append(nonces, n.Event.NonceString())
	}
	assert.Equal(t, []string{"2", "3"}, nonces)

	cancel()
	assert.NoError(t, <-errc)
	select {
	case n := <-ch.C():
		t.Fatalf("unexpected delivery: %+v", n)
	default:
	}
}

func recv(t *testing.T, ch *events.Channel) events.Notification {
	t.Helper()
	select {
	case n := <-ch.C():
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no notification delivered")
		return events.Notification{}
	}
}

// logFilterer serves canned logs to the generated binding.
type logFilterer struct {
	logs  []types.Log
	query ethereum.FilterQuery
}

func (f *logFilterer) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.query = q
	return f.logs, nil
}

func (f *logFilterer) SubscribeFilterLogs(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	f.query = q
	logs := f.logs
	return event.NewSubscription(func(quit <-chan struct{}) error {
		for _, l := range logs {
			select {
			case ch <- l:
			case <-quit:
				return nil
			}
		}
		<-quit
		return nil
	}), nil
}

func mintProcessedLog(t *testing.T, block uint64, nonce int64, ids ...int64) types.Log {
	t.Helper()
	parsed, err := seasonnft.SeasonNFTMetaData.GetAbi()
	require.NoError(t, err)
	ev := parsed.Events["MintProcessed"]

	tokenIDs := make([]*big.Int, 0, len(ids))
	for _, id := range ids {
		tokenIDs = append(tokenIDs, big.NewInt(id))
	}
	data, err := ev.Inputs.NonIndexed().Pack(tokenIDs, big.NewInt(nonce))
	require.NoError(t, err)
	return types.Log{
		Address:     contract,
		Topics:      []common.Hash{ev.ID, common.BytesToHash(player.Bytes())},
		Data:        data,
		BlockNumber: block,
	}
}

func TestBindingSource(t *testing.T) {
	f := &logFilterer{logs: []types.Log{
		mintProcessedLog(t, 200, 4, 1, 2, 3),
		mintProcessedLog(t, 201, 5, 4),
	}}
	filterer, err := seasonnft.NewSeasonNFTFilterer(contract, f)
	require.NoError(t, err)
	src := events.NewBindingSource(filterer)
	ctx := context.Background()

	past, err := src.Past(ctx, 150)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, big.NewInt(150), f.query.FromBlock)
	assert.Equal(t, player, past[0].User)
	assert.Equal(t, "4", past[0].Nonce.String())
	assert.Len(t, past[0].TokenIds, 3)

	sink := make(chan *seasonnft.SeasonNFTMintProcessed, 2)
	sub, err := src.Watch(ctx, sink)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	assert.Equal(t, uint64(200), (<-sink).Raw.BlockNumber)
	got := <-sink
	assert.Equal(t, "5", got.Nonce.String())
	assert.Equal(t, []common.Address{contract}, f.query.Addresses)
}
