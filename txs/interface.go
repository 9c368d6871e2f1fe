package txs

import (
	"context"

	"github.com/tickledger/go-tickledger/common/types"
)

//go:generate mockgen -typed -package=txs -destination=./mocks.go -source=./interface.go

type verifier interface {
	Verify(pub types.Identifier, msg []byte, sig types.Signature) bool
}

type txPool interface {
	Add(context.Context, *types.Transaction) error
}
