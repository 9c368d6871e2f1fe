package signing

import "github.com/tickledger/go-tickledger/common/types"

// Signer is a common interface for signature generation.
type Signer interface {
	Sign([]byte) types.Signature
	PublicKey() types.Identifier
}

// Verifier is a common interface for signature verification.
type Verifier interface {
	Verify(pub types.Identifier, msg []byte, sig types.Signature) bool
}

var (
	_ Signer   = (*EdSigner)(nil)
	_ Verifier = (*EdVerifier)(nil)
)
