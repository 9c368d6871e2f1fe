package types

import (
	"encoding/hex"

	"github.com/spacemeshos/go-scale"
)

// Signature is the fixed 64 byte trailer of a transaction. Opaque to the codec.
type Signature [SignatureSize]byte

// Bytes returns the raw signature bytes.
func (s Signature) Bytes() []byte { return s[:] }

// String implements fmt.Stringer.
func (s Signature) String() string { return "0x" + hex.EncodeToString(s[:]) }

// EncodeScale implements scale codec interface.
func (s *Signature) EncodeScale(encoder *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(encoder, s[:])
}

// DecodeScale implements scale codec interface.
func (s *Signature) DecodeScale(decoder *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(decoder, s[:])
}
