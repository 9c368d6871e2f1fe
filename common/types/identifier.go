package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spacemeshos/go-scale"
)

// ErrIdentifierLength is returned when a wire identifier doesn't carry exactly IdentifierSize elements.
var ErrIdentifierLength = errors.New("identifier length")

// Identifier is an opaque 256-bit value. The same type is used for account
// public keys, asset ids and digests in the spectrum and universe trees.
type Identifier [IdentifierSize]byte

// EmptyIdentifier is the zero value, used as padding in digest trees.
var EmptyIdentifier = Identifier{}

// IdentifierFromBytes copies b into an Identifier. b must be exactly IdentifierSize long.
func IdentifierFromBytes(b []byte) (Identifier, error) {
	var id Identifier
	if len(b) != IdentifierSize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrIdentifierLength, IdentifierSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// HexToIdentifier parses 0x-prefixed (or bare) hex into an Identifier.
func HexToIdentifier(s string) (Identifier, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Identifier{}, fmt.Errorf("decode hex identifier: %w", err)
	}
	return IdentifierFromBytes(b)
}

// Bytes returns the raw bytes of the identifier.
func (id Identifier) Bytes() []byte { return id[:] }

// IsEmpty returns true for the zero identifier.
func (id Identifier) IsEmpty() bool { return id == EmptyIdentifier }

// Hex returns 0x-prefixed hex.
func (id Identifier) Hex() string { return "0x" + hex.EncodeToString(id[:]) }

// String implements fmt.Stringer.
func (id Identifier) String() string { return id.Hex() }

// ShortString returns the first 10 hex characters, for logging purposes.
func (id Identifier) ShortString() string {
	return hex.EncodeToString(id[:5])
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := HexToIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// EncodeScale writes the identifier as a vector of IdentifierSize single-byte
// elements, prefixed with the compact element count.
func (id *Identifier) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteSliceWithLimit(e, id[:], IdentifierSize)
}

// DecodeScale implements scale codec interface.
func (id *Identifier) DecodeScale(d *scale.Decoder) (int, error) {
	field, n, err := scale.DecodeByteSliceWithLimit(d, IdentifierSize)
	if err != nil {
		return n, err
	}
	if len(field) != IdentifierSize {
		return n, fmt.Errorf("%w: decoded %d elements", ErrIdentifierLength, len(field))
	}
	copy(id[:], field)
	return n, nil
}
