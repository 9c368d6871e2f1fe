package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/tickledger/go-tickledger/common/types"
)

// PrivateKey is an alias to ed25519.PrivateKey.
type PrivateKey = ed25519.PrivateKey

// PrivateKeySize size of the private key in bytes.
const PrivateKeySize = ed25519.PrivateKeySize

// PublicKeyOf returns the account identifier of the private key.
func PublicKeyOf(priv PrivateKey) types.Identifier {
	return types.Identifier(priv.Public().(ed25519.PublicKey))
}
