package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/tickledger/go-tickledger/common/types"
)

type edVerifierOption struct {
	prefix []byte
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption)

// WithVerifierPrefix sets the prefix expected in front of signed messages. This usually is the network id.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) {
		opts.prefix = prefix
	}
}

// EdVerifier checks ed25519 signatures made by account keys.
type EdVerifier struct {
	prefix []byte
}

// NewEdVerifier returns a verifier.
func NewEdVerifier(opts ...VerifierOptionFunc) *EdVerifier {
	cfg := &edVerifierOption{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &EdVerifier{prefix: cfg.prefix}
}

// Verify verifies that a signature matches public key and message.
func (ev *EdVerifier) Verify(pub types.Identifier, m []byte, sig types.Signature) bool {
	msg := make([]byte, 0, len(ev.prefix)+len(m))
	msg = append(msg, ev.prefix...)
	msg = append(msg, m...)
	return ed25519.Verify(pub[:], msg, sig[:])
}

// VerifyTransaction checks the transaction signature against its source account.
func (ev *EdVerifier) VerifyTransaction(tx *types.Transaction) bool {
	msg, err := tx.SigningBytes()
	if err != nil {
		return false
	}
	return ev.Verify(tx.Source, msg, tx.Signature)
}
