package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/tickledger/go-tickledger/codec"
	"github.com/tickledger/go-tickledger/hash"
)

var (
	// ErrInvalidAmount is returned for amounts outside of [0, MaxAmount].
	ErrInvalidAmount = errors.New("amount out of range")
	// ErrInputTooLarge is returned when InputSize exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input size exceeds maximum")
	// ErrPayloadSize is returned when InputSize disagrees with the payload length.
	ErrPayloadSize = errors.New("payload length mismatch")
	// ErrShortBuffer is returned when a buffer can't hold an encoded header.
	ErrShortBuffer = errors.New("buffer shorter than transaction header")
)

//go:generate scalegen -types TransactionHeader

// TransactionHeader is the fixed part of a transaction.
type TransactionHeader struct {
	Source      Identifier
	Destination Identifier
	Amount      int64
	Tick        uint32
	InputType   uint16
	InputSize   uint16
}

// CheckValidity returns true if amount and input size are within protocol limits.
// It checks neither the signature nor whether the source can afford the amount.
func (h *TransactionHeader) CheckValidity() bool {
	return h.Validate() == nil
}

// Validate is CheckValidity that reports which limit was violated.
func (h *TransactionHeader) Validate() error {
	if h.Amount < 0 || h.Amount > MaxAmount {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, h.Amount)
	}
	if h.InputSize > MaxInputSize {
		return fmt.Errorf("%w: %d > %d", ErrInputTooLarge, h.InputSize, MaxInputSize)
	}
	return nil
}

// TotalSize returns the size of the header, payload and signature.
func (h *TransactionHeader) TotalSize() uint32 {
	return TransactionHeaderSize + uint32(h.InputSize) + SignatureSize
}

// EncodedSize returns the size of the transaction on the wire.
func (h *TransactionHeader) EncodedSize() uint32 {
	return EncodedTransactionHeaderSize + uint32(h.InputSize) + SignatureSize
}

// EncodeScale implements scale codec interface.
func (h *TransactionHeader) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := h.Source.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.Destination.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint64(enc, uint64(h.Amount))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(enc, h.Tick)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint16(enc, h.InputType)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint16(enc, h.InputSize)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (h *TransactionHeader) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := h.Source.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.Destination.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		h.Amount = int64(field)
	}
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		h.Tick = field
	}
	{
		field, n, err := scale.DecodeUint16(dec)
		if err != nil {
			return total, err
		}
		total += n
		h.InputType = field
	}
	{
		field, n, err := scale.DecodeUint16(dec)
		if err != nil {
			return total, err
		}
		total += n
		h.InputSize = field
	}
	return total, nil
}

// MarshalLogObject implements logging interface.
func (h *TransactionHeader) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("source", h.Source.ShortString())
	encoder.AddString("destination", h.Destination.ShortString())
	encoder.AddInt64("amount", h.Amount)
	encoder.AddUint32("tick", h.Tick)
	encoder.AddUint16("input_type", h.InputType)
	encoder.AddUint16("input_size", h.InputSize)
	return nil
}

// TransactionID is a blake3 digest of the encoded transaction.
type TransactionID Identifier

// String implements fmt.Stringer.
func (id TransactionID) String() string { return Identifier(id).String() }

// ShortString returns the first 10 hex characters, for logging purposes.
func (id TransactionID) ShortString() string { return Identifier(id).ShortString() }

// Transaction is a header followed by InputSize bytes of payload and a signature.
// Payload and signature are owned by the transaction, unlike the peer protocol
// buffer where they trail the header.
type Transaction struct {
	TransactionHeader
	Payload   []byte
	Signature Signature
}

// EncodeScale writes the header followed by the payload and the signature verbatim.
func (t *Transaction) EncodeScale(enc *scale.Encoder) (total int, err error) {
	if t.InputSize > MaxInputSize {
		return 0, fmt.Errorf("%w: %d", ErrInputTooLarge, t.InputSize)
	}
	if int(t.InputSize) != len(t.Payload) {
		return 0, fmt.Errorf("%w: input size %d, payload %d", ErrPayloadSize, t.InputSize, len(t.Payload))
	}
	{
		n, err := t.TransactionHeader.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.Payload)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := t.Signature.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale decodes and validates the header, and only then reads InputSize
// payload bytes and the signature. On error t is left zeroed.
func (t *Transaction) DecodeScale(dec *scale.Decoder) (int, error) {
	var (
		decoded Transaction
		total   int
	)
	{
		n, err := decoded.TransactionHeader.DecodeScale(dec)
		total += n
		if err != nil {
			*t = Transaction{}
			return total, fmt.Errorf("decode header: %w", err)
		}
	}
	if err := decoded.Validate(); err != nil {
		*t = Transaction{}
		return total, err
	}
	{
		decoded.Payload = make([]byte, decoded.InputSize)
		n, err := scale.DecodeByteArray(dec, decoded.Payload)
		total += n
		if err != nil {
			*t = Transaction{}
			return total, fmt.Errorf("decode payload: %w", err)
		}
	}
	{
		n, err := decoded.Signature.DecodeScale(dec)
		total += n
		if err != nil {
			*t = Transaction{}
			return total, fmt.Errorf("decode signature: %w", err)
		}
	}
	*t = decoded
	return total, nil
}

// SigningBytes returns the encoded header and payload, the message covered by the signature.
func (t *Transaction) SigningBytes() ([]byte, error) {
	header, err := codec.Encode(&t.TransactionHeader)
	if err != nil {
		return nil, err
	}
	return append(header, t.Payload...), nil
}

// ID computes the id of the encoded transaction.
func (t *Transaction) ID() (TransactionID, error) {
	buf, err := codec.Encode(t)
	if err != nil {
		return TransactionID{}, err
	}
	return TransactionID(hash.Sum(buf)), nil
}

// MarshalLogObject implements logging interface.
func (t *Transaction) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	if err := t.TransactionHeader.MarshalLogObject(encoder); err != nil {
		return err
	}
	encoder.AddString("signature", hex.EncodeToString(t.Signature[:5]))
	return nil
}

// EncodeTransaction returns the wire form of tx.
func EncodeTransaction(tx *Transaction) ([]byte, error) {
	return codec.Encode(tx)
}

// DecodeTransaction decodes a transaction that must occupy the whole buffer.
// Buffers that can't hold a header are rejected before any read.
func DecodeTransaction(buf []byte) (*Transaction, error) {
	if len(buf) < EncodedTransactionHeaderSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(buf), EncodedTransactionHeaderSize)
	}
	var tx Transaction
	if err := codec.Decode(buf, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
