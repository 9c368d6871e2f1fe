package contract

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tickledger/go-tickledger/common/types"
)

// DefaultMaxActions is the action budget of a single procedure invocation.
const DefaultMaxActions = 1024

// ErrCapacityExceeded is returned when an invocation records more actions than its budget.
var ErrCapacityExceeded = errors.New("contract action capacity exceeded")

// ActionTracker records the ledger side effects of one contract procedure
// invocation without touching the ledger. The execution engine inspects the
// log after the call returns and either applies all of it or nothing.
//
// The capacity is fixed at construction and the backing storage never grows.
// A tracker belongs to exactly one invocation and is not safe for concurrent use.
type ActionTracker struct {
	logger  *zap.Logger
	actions []Action
	count   int
}

// Opt for configuring ActionTracker.
type Opt func(*ActionTracker)

// WithLogger defines logger for the tracker.
func WithLogger(logger *zap.Logger) Opt {
	return func(t *ActionTracker) {
		t.logger = logger
	}
}

// NewActionTracker returns an empty tracker able to hold maxActions actions.
func NewActionTracker(maxActions int, opts ...Opt) *ActionTracker {
	if maxActions < 0 {
		panic(fmt.Sprintf("contract: negative action capacity %d", maxActions))
	}
	t := &ActionTracker{
		logger:  zap.NewNop(),
		actions: make([]Action, maxActions),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewActionTrackerFromConfig returns a tracker sized by cfg.
func NewActionTrackerFromConfig(cfg Config, opts ...Opt) *ActionTracker {
	return NewActionTracker(cfg.MaxActions, opts...)
}

// Init empties the log. Called once before each invocation.
func (t *ActionTracker) Init() {
	clear(t.actions[:t.count])
	t.count = 0
}

// Len returns the number of recorded actions.
func (t *ActionTracker) Len() int { return t.count }

// Cap returns the action budget.
func (t *ActionTracker) Cap() int { return len(t.actions) }

// Record appends an action or returns ErrCapacityExceeded leaving the log unchanged.
// An invocation that hits the limit must have all of its effects discarded,
// a truncated log under-reports what the contract did.
func (t *ActionTracker) Record(action Action) error {
	if t.count == len(t.actions) {
		capacityExceeded.Inc()
		t.logger.Debug("action refused, tracker is full",
			zap.Object("action", action),
			zap.Int("max_actions", len(t.actions)),
		)
		return fmt.Errorf("%w: %d actions", ErrCapacityExceeded, len(t.actions))
	}
	t.actions[t.count] = action
	t.count++
	return nil
}

// AddQuTransfer records a transfer of amount from source to destination.
// It returns false, without recording, if the tracker is full.
func (t *ActionTracker) AddQuTransfer(source, destination types.Identifier, amount int64) bool {
	return t.Record(QuTransfer{Source: source, Destination: destination, Amount: amount}) == nil
}

// Actions returns the recorded actions in order. The slice aliases the
// tracker storage and is valid until the next Init.
func (t *ActionTracker) Actions() []Action {
	return t.actions[:t.count:t.count]
}

// OverallQuTransferBalance returns the net change the recorded transfers
// would apply to id: credits minus debits. A transfer from id to itself nets out.
func (t *ActionTracker) OverallQuTransferBalance(id types.Identifier) int64 {
	var amount int64
	for _, action := range t.actions[:t.count] {
		transfer, ok := action.(QuTransfer)
		if !ok {
			continue
		}
		if transfer.Source == id {
			amount -= transfer.Amount
		}
		if transfer.Destination == id {
			amount += transfer.Amount
		}
	}
	return amount
}

// Balances returns the net change for every account touched by a transfer.
// Every transfer is one debit and one matching credit, so the values sum to zero.
func (t *ActionTracker) Balances() map[types.Identifier]int64 {
	balances := map[types.Identifier]int64{}
	for _, action := range t.actions[:t.count] {
		transfer, ok := action.(QuTransfer)
		if !ok {
			continue
		}
		balances[transfer.Source] -= transfer.Amount
		balances[transfer.Destination] += transfer.Amount
	}
	return balances
}
