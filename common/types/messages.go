package types

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/tickledger/go-tickledger/codec"
)

// ErrInvalidBid is returned for IPO bids outside of protocol limits.
var ErrInvalidBid = errors.New("invalid ipo bid")

// ContractIPOBidSize is the size of an encoded ContractIPOBid, and the
// InputSize of a transaction carrying one.
const ContractIPOBidSize = 8 + 2

// MaxIPOBidPrice is the highest price a single IPO share may be bid at.
const MaxIPOBidPrice = MaxAmount / NumberOfComputors

// Message is a value exchanged with peers, tagged with its type.
type Message interface {
	codec.Encodable
	MessageType() MessageType
}

var (
	_ Message = (*Transaction)(nil)
	_ Message = (*RequestedTickTransactions)(nil)
	_ Message = (*RequestedTransactionInfo)(nil)
)

// MessageType implements Message.
func (*Transaction) MessageType() MessageType { return BroadcastTransactionType }

//go:generate scalegen -types ContractIPOBid,RequestedTickTransactions,RequestedTransactionInfo

// ContractIPOBid is the payload of a transaction bidding for shares of a contract in its IPO.
type ContractIPOBid struct {
	Price    int64
	Quantity uint16
}

// Validate checks price and quantity against protocol limits.
func (b *ContractIPOBid) Validate() error {
	if b.Price <= 0 || b.Price > MaxIPOBidPrice {
		return fmt.Errorf("%w: price %d", ErrInvalidBid, b.Price)
	}
	if b.Quantity == 0 || b.Quantity > NumberOfComputors {
		return fmt.Errorf("%w: quantity %d", ErrInvalidBid, b.Quantity)
	}
	return nil
}

// EncodeScale implements scale codec interface.
func (b *ContractIPOBid) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeUint64(enc, uint64(b.Price))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint16(enc, b.Quantity)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (b *ContractIPOBid) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		b.Price = int64(field)
	}
	{
		field, n, err := scale.DecodeUint16(dec)
		if err != nil {
			return total, err
		}
		total += n
		b.Quantity = field
	}
	return total, nil
}

// MarshalLogObject implements logging interface.
func (b *ContractIPOBid) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddInt64("price", b.Price)
	encoder.AddUint16("quantity", b.Quantity)
	return nil
}

// IPOBid decodes the payload of tx as a ContractIPOBid.
func (t *Transaction) IPOBid() (*ContractIPOBid, error) {
	if len(t.Payload) != ContractIPOBidSize {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrInvalidBid, len(t.Payload))
	}
	var bid ContractIPOBid
	if err := codec.Decode(t.Payload, &bid); err != nil {
		return nil, err
	}
	if err := bid.Validate(); err != nil {
		return nil, err
	}
	return &bid, nil
}

// TickTransactionFlagsSize is the size of the per transaction flag bitmap of a tick request.
const TickTransactionFlagsSize = TransactionsPerTick / 8

// RequestedTickTransactions asks a peer for the transactions of a tick. A set
// flag marks a transaction the requester already holds, the peer skips it.
type RequestedTickTransactions struct {
	Tick             uint32
	TransactionFlags [TickTransactionFlagsSize]byte
}

// MessageType implements Message.
func (*RequestedTickTransactions) MessageType() MessageType { return RequestTickTransactionsType }

func checkTickSlot(i int) {
	if i < 0 || i >= TransactionsPerTick {
		panic(fmt.Sprintf("types: transaction slot %d out of range [0, %d)", i, TransactionsPerTick))
	}
}

// Requested returns true if the transaction in slot i of the tick is asked for.
func (r *RequestedTickTransactions) Requested(i int) bool {
	checkTickSlot(i)
	return r.TransactionFlags[i>>3]&(1<<(i&7)) == 0
}

// SetRequested marks whether the transaction in slot i of the tick is asked for.
func (r *RequestedTickTransactions) SetRequested(i int, requested bool) {
	checkTickSlot(i)
	if requested {
		r.TransactionFlags[i>>3] &^= 1 << (i & 7)
	} else {
		r.TransactionFlags[i>>3] |= 1 << (i & 7)
	}
}

// RequestedCount returns the number of slots asked for.
func (r *RequestedTickTransactions) RequestedCount() int {
	count := 0
	for i := 0; i < TransactionsPerTick; i++ {
		if r.Requested(i) {
			count++
		}
	}
	return count
}

// EncodeScale implements scale codec interface.
func (r *RequestedTickTransactions) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeUint32(enc, r.Tick)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, r.TransactionFlags[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (r *RequestedTickTransactions) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.Tick = field
	}
	{
		n, err := scale.DecodeByteArray(dec, r.TransactionFlags[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// RequestedTransactionInfo asks a peer for a transaction by its digest.
type RequestedTransactionInfo struct {
	TxDigest Identifier
}

// NewRequestedTransactionInfo returns a request for the transaction with the given id.
func NewRequestedTransactionInfo(id TransactionID) *RequestedTransactionInfo {
	return &RequestedTransactionInfo{TxDigest: Identifier(id)}
}

// MessageType implements Message.
func (*RequestedTransactionInfo) MessageType() MessageType { return RequestTransactionInfoType }

// EncodeScale implements scale codec interface.
func (r *RequestedTransactionInfo) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := r.TxDigest.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (r *RequestedTransactionInfo) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := r.TxDigest.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
