package txs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/tickledger/go-tickledger/common/types"
	"github.com/tickledger/go-tickledger/hash"
	"github.com/tickledger/go-tickledger/signing"
)

func newSignedTx(tb testing.TB, signer *signing.EdSigner, tick uint32, amount int64) []byte {
	tb.Helper()
	tx := &types.Transaction{
		TransactionHeader: types.TransactionHeader{
			Destination: types.Identifier{0xde},
			Amount:      amount,
			Tick:        tick,
			InputType:   1,
			InputSize:   3,
		},
		Payload: []byte{1, 2, 3},
	}
	require.NoError(tb, signer.SignTransaction(tx))
	buf, err := types.EncodeTransaction(tx)
	require.NoError(tb, err)
	return buf
}

type testHandler struct {
	*TxHandler
	pool     *MocktxPool
	verifier *Mockverifier
	signer   *signing.EdSigner
}

func createTestHandler(tb testing.TB, cfg Config) *testHandler {
	tb.Helper()
	ctrl := gomock.NewController(tb)
	pool := NewMocktxPool(ctrl)
	mverifier := NewMockverifier(ctrl)
	th, err := NewTxHandler(mverifier, pool,
		WithLogger(zaptest.NewLogger(tb)),
		WithConfig(cfg),
		WithClock(clockwork.NewFakeClock()),
	)
	require.NoError(tb, err)
	signer, err := signing.NewEdSigner()
	require.NoError(tb, err)
	return &testHandler{TxHandler: th, pool: pool, verifier: mverifier, signer: signer}
}

func TestHandleTransaction_Accepted(t *testing.T) {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	pool := NewMocktxPool(ctrl)
	th, err := NewTxHandler(signing.NewEdVerifier(), pool, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	msg := newSignedTx(t, signer, 10, 500)
	var added *types.Transaction
	pool.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *types.Transaction) error {
			added = tx
			return nil
		})

	before := testutil.ToFloat64(gossipTxCount.WithLabelValues(saved))
	tx, err := th.HandleTransaction(context.Background(), msg)
	require.NoError(t, err)
	require.Equal(t, added, tx)
	require.Equal(t, signer.PublicKey(), tx.Source)
	require.EqualValues(t, 500, tx.Amount)
	require.Equal(t, []byte{1, 2, 3}, tx.Payload)
	require.Equal(t, before+1, testutil.ToFloat64(gossipTxCount.WithLabelValues(saved)))
}

func TestHandleTransaction_Duplicate(t *testing.T) {
	th := createTestHandler(t, DefaultConfig())
	msg := newSignedTx(t, th.signer, 1, 1)
	th.verifier.EXPECT().Verify(th.signer.PublicKey(), msg[:len(msg)-types.SignatureSize], gomock.Any()).Return(true)
	th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := th.HandleTransaction(context.Background(), msg)
	require.NoError(t, err)
	_, err = th.HandleTransaction(context.Background(), msg)
	require.ErrorIs(t, err, errDuplicateTX)
}

func TestHandleTransaction_Rejected(t *testing.T) {
	th := createTestHandler(t, DefaultConfig())

	t.Run("garbage", func(t *testing.T) {
		_, err := th.HandleTransaction(context.Background(), []byte{1, 2, 3})
		require.ErrorIs(t, err, errParse)
		require.ErrorIs(t, err, types.ErrShortBuffer)
	})
	t.Run("truncated", func(t *testing.T) {
		msg := newSignedTx(t, th.signer, 1, 1)
		_, err := th.HandleTransaction(context.Background(), msg[:len(msg)-1])
		require.ErrorIs(t, err, errParse)
	})
	t.Run("invalid amount", func(t *testing.T) {
		tx := &types.Transaction{TransactionHeader: types.TransactionHeader{Amount: -5}}
		msg, err := types.EncodeTransaction(tx)
		require.NoError(t, err)
		_, err = th.HandleTransaction(context.Background(), msg)
		require.ErrorIs(t, err, errInvalid)
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	})
	t.Run("bad signature", func(t *testing.T) {
		msg := newSignedTx(t, th.signer, 1, 2)
		th.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
		_, err := th.HandleTransaction(context.Background(), msg)
		require.ErrorIs(t, err, errVerify)
	})
}

func TestHandleTransaction_TickWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickWindow = 5
	th := createTestHandler(t, cfg)
	th.SetTick(100)
	th.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for _, tc := range []struct {
		tick uint32
		err  error
	}{
		{99, errTick},
		{100, nil},
		{105, nil},
		{106, errTick},
	} {
		_, err := th.HandleTransaction(context.Background(), newSignedTx(t, th.signer, tc.tick, 1))
		if tc.err == nil {
			require.NoError(t, err, "tick %d", tc.tick)
		} else {
			require.ErrorIs(t, err, tc.err, "tick %d", tc.tick)
		}
	}
}

func TestHandleTransaction_PoolFailureAllowsRetry(t *testing.T) {
	th := createTestHandler(t, DefaultConfig())
	msg := newSignedTx(t, th.signer, 1, 1)
	th.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	poolErr := errors.New("pool full")
	gomock.InOrder(
		th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(poolErr),
		th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := th.HandleTransaction(context.Background(), msg)
	require.ErrorIs(t, err, poolErr)
	_, err = th.HandleTransaction(context.Background(), msg)
	require.NoError(t, err)
}

func TestHandleBatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	th := createTestHandler(t, cfg)
	th.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	const n = 32
	msgs := make([][]byte, n)
	for i := range msgs {
		if i%4 == 3 {
			msgs[i] = []byte{byte(i)}
			continue
		}
		msgs[i] = newSignedTx(t, th.signer, uint32(i), int64(i))
	}
	th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(n - n/4)

	result, errs := th.HandleBatch(context.Background(), msgs)
	require.Len(t, result, n)
	require.Len(t, errs, n)
	for i := range msgs {
		if i%4 == 3 {
			require.ErrorIs(t, errs[i], errParse)
			require.Nil(t, result[i])
			continue
		}
		require.NoError(t, errs[i])
		require.EqualValues(t, i, result[i].Tick)
	}
}

func TestHandleBatch_Canceled(t *testing.T) {
	th := createTestHandler(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs := [][]byte{newSignedTx(t, th.signer, 1, 1), newSignedTx(t, th.signer, 2, 1)}
	result, errs := th.HandleBatch(ctx, msgs)
	for i := range msgs {
		require.Nil(t, result[i])
		require.ErrorIs(t, errs[i], context.Canceled)
	}
}

func TestHandleTransaction_RateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	th := createTestHandler(t, cfg)
	th.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	th.pool.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := th.HandleTransaction(context.Background(), newSignedTx(t, th.signer, 1, 1))
	require.NoError(t, err)

	before := testutil.ToFloat64(gossipTxCount.WithLabelValues(throttled))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	msg := newSignedTx(t, th.signer, 2, 1)
	_, err = th.HandleTransaction(ctx, msg)
	require.ErrorIs(t, err, errThrottled)
	require.Equal(t, before+1, testutil.ToFloat64(gossipTxCount.WithLabelValues(throttled)))
	require.False(t, th.seen.Contains(types.TransactionID(hash.Sum(msg))))
}

func TestSetTickUpdatesGauge(t *testing.T) {
	th := createTestHandler(t, DefaultConfig())
	th.SetTick(4242)
	require.EqualValues(t, 4242, testutil.ToFloat64(currentTick))
}
