package txs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/tickledger/go-tickledger/common/types"
	"github.com/tickledger/go-tickledger/hash"
)

var (
	errDuplicateTX = errors.New("tx already exists")
	errParse       = errors.New("failed to parse tx")
	errInvalid     = errors.New("tx out of protocol limits")
	errVerify      = errors.New("failed to verify tx")
	errTick        = errors.New("tx tick outside of window")
	errThrottled   = errors.New("tx intake throttled")
)

// Opt for configuring TxHandler.
type Opt func(*TxHandler)

// WithLogger defines logger for the handler.
func WithLogger(logger *zap.Logger) Opt {
	return func(th *TxHandler) {
		th.logger = logger
	}
}

// WithClock defines the clock used to measure decoding latency.
func WithClock(clock clockwork.Clock) Opt {
	return func(th *TxHandler) {
		th.clock = clock
	}
}

// WithConfig defines the config used by the handler.
func WithConfig(cfg Config) Opt {
	return func(th *TxHandler) {
		th.cfg = cfg
	}
}

// TxHandler turns transactions received from peers into validated, signature
// checked records and hands them to the pool. Anything it rejects must not be
// relayed further.
type TxHandler struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	cfg      Config
	verifier verifier
	pool     txPool
	limiter  *rate.Limiter
	seen     *lru.Cache[types.TransactionID, struct{}]
	tick     atomic.Uint32
}

// NewTxHandler returns a new TxHandler.
func NewTxHandler(v verifier, pool txPool, opts ...Opt) (*TxHandler, error) {
	th := &TxHandler{
		logger:   zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		cfg:      DefaultConfig(),
		verifier: v,
		pool:     pool,
	}
	for _, opt := range opts {
		opt(th)
	}
	seen, err := lru.New[types.TransactionID, struct{}](th.cfg.SeenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create seen cache: %w", err)
	}
	th.seen = seen
	th.limiter = rate.NewLimiter(rate.Inf, 0)
	if th.cfg.RateLimit > 0 {
		th.limiter = rate.NewLimiter(rate.Limit(th.cfg.RateLimit), max(th.cfg.RateBurst, 1))
	}
	return th, nil
}

// SetTick updates the current tick used for the tick window check.
func (th *TxHandler) SetTick(tick uint32) {
	th.tick.Store(tick)
	currentTick.Set(float64(tick))
}

func updateMetrics(err error, counter *prometheus.CounterVec) {
	switch {
	case err == nil:
		counter.WithLabelValues(saved).Inc()
	case errors.Is(err, errDuplicateTX):
		counter.WithLabelValues(duplicate).Inc()
	case errors.Is(err, errParse):
		counter.WithLabelValues(cantParse).Inc()
	case errors.Is(err, errInvalid):
		counter.WithLabelValues(invalid).Inc()
	case errors.Is(err, errVerify):
		counter.WithLabelValues(cantVerify).Inc()
	case errors.Is(err, errTick):
		counter.WithLabelValues(badTick).Inc()
	case errors.Is(err, errThrottled):
		counter.WithLabelValues(throttled).Inc()
	default:
		counter.WithLabelValues(rejectedInternalErr).Inc()
	}
}

// HandleTransaction handles a transaction broadcast by a peer.
func (th *TxHandler) HandleTransaction(ctx context.Context, msg []byte) (*types.Transaction, error) {
	tx, err := th.handleTransaction(ctx, msg)
	updateMetrics(err, gossipTxCount)
	if err != nil {
		th.logger.Debug("rejected transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (th *TxHandler) handleTransaction(ctx context.Context, msg []byte) (*types.Transaction, error) {
	id := types.TransactionID(hash.Sum(msg))
	if th.seen.Contains(id) {
		return nil, fmt.Errorf("%w: %s", errDuplicateTX, id.ShortString())
	}

	start := th.clock.Now()
	tx, err := types.DecodeTransaction(msg)
	switch {
	case errors.Is(err, types.ErrInvalidAmount), errors.Is(err, types.ErrInputTooLarge):
		return nil, fmt.Errorf("%w: %s (err: %w)", errInvalid, id.ShortString(), err)
	case err != nil:
		return nil, fmt.Errorf("%w: %s (err: %w)", errParse, id.ShortString(), err)
	}
	// the message covered by the signature is everything in front of it
	if !th.verifier.Verify(tx.Source, msg[:len(msg)-types.SignatureSize], tx.Signature) {
		return nil, fmt.Errorf("%w: %s", errVerify, id.ShortString())
	}
	decodeLatency.Observe(th.clock.Since(start).Seconds())

	if current := th.tick.Load(); th.cfg.TickWindow > 0 && current > 0 {
		if tx.Tick < current || tx.Tick-current > th.cfg.TickWindow {
			return nil, fmt.Errorf("%w: tx tick %d, current %d", errTick, tx.Tick, current)
		}
	}

	// only transactions that passed every check are charged against the limit
	if err := th.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s (err: %w)", errThrottled, id.ShortString(), err)
	}
	if exists, _ := th.seen.ContainsOrAdd(id, struct{}{}); exists {
		return nil, fmt.Errorf("%w: %s", errDuplicateTX, id.ShortString())
	}
	if err := th.pool.Add(ctx, tx); err != nil {
		th.seen.Remove(id)
		th.logger.Warn("failed to add tx to pool",
			zap.Stringer("tx_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("add to pool: %w", err)
	}
	th.logger.Debug("accepted transaction",
		zap.Stringer("tx_id", id),
		zap.Object("tx", &tx.TransactionHeader),
	)
	return tx, nil
}

// HandleBatch handles transactions in parallel, at most Config.Workers at a time.
// Results and errors are returned in the order of msgs. A message that was not
// processed because ctx was canceled reports the context error.
func (th *TxHandler) HandleBatch(ctx context.Context, msgs [][]byte) ([]*types.Transaction, []error) {
	var (
		result = make([]*types.Transaction, len(msgs))
		errs   = make([]error, len(msgs))
		eg     errgroup.Group
	)
	if th.cfg.Workers > 0 {
		eg.SetLimit(th.cfg.Workers)
	}
	for i, msg := range msgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			result[i], errs[i] = th.HandleTransaction(ctx, msg)
			return nil
		})
	}
	_ = eg.Wait()
	return result, errs
}
