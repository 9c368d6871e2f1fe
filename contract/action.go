package contract

import (
	"go.uber.org/zap/zapcore"

	"github.com/tickledger/go-tickledger/common/types"
)

// ActionType identifies the kind of a recorded Action.
type ActionType uint8

const (
	// NoAction is never recorded, it is the zero value of ActionType.
	NoAction ActionType = iota
	// QuTransferAction moves native units between two accounts.
	QuTransferAction
)

// String implements fmt.Stringer.
func (t ActionType) String() string {
	switch t {
	case QuTransferAction:
		return "qu_transfer"
	default:
		return "none"
	}
}

// Action is a ledger side effect of a contract procedure. The set of actions
// is closed, new kinds are added in this package.
type Action interface {
	zapcore.ObjectMarshaler
	Type() ActionType
	action()
}

// QuTransfer is a movement of native units caused by contract logic rather
// than by a top-level transaction.
type QuTransfer struct {
	Source      types.Identifier
	Destination types.Identifier
	Amount      int64
}

// Type implements Action.
func (QuTransfer) Type() ActionType { return QuTransferAction }

func (QuTransfer) action() {}

// MarshalLogObject implements logging interface.
func (q QuTransfer) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("type", q.Type().String())
	encoder.AddString("source", q.Source.ShortString())
	encoder.AddString("destination", q.Destination.ShortString())
	encoder.AddInt64("amount", q.Amount)
	return nil
}
