package types

// Protocol-wide limits shared by every node. Changing any of these breaks wire
// compatibility.
const (
	// IdentifierSize is the size of public keys, asset ids and tree digests.
	IdentifierSize = 32
	// SignatureSize is the size of the signature trailing every transaction.
	SignatureSize = 64

	// TransactionHeaderSize is the size of the fixed transaction header:
	// source, destination, amount, tick, input type and input size.
	TransactionHeaderSize = IdentifierSize + IdentifierSize + 8 + 4 + 2 + 2
	// EncodedTransactionHeaderSize is the size of the header on the wire, where
	// each identifier carries a one byte compact length prefix.
	EncodedTransactionHeaderSize = 2*(1+IdentifierSize) + 8 + 4 + 2 + 2

	// MaxInputSize bounds the payload of a single transaction.
	MaxInputSize = 1024

	// IssuanceRate is the number of units issued per epoch.
	IssuanceRate int64 = 1_000_000_000_000
	// MaxAmount is the largest amount a single transaction may carry.
	MaxAmount = IssuanceRate * 1000
	// MaxSupply is the cap on circulating units.
	MaxSupply = IssuanceRate * 200

	// SpectrumDepth is the depth of the balance tree.
	SpectrumDepth = 24
	// SpectrumCapacity is the number of leaves in the balance tree.
	SpectrumCapacity = 1 << SpectrumDepth
	// AssetsDepth is the depth of the asset tree.
	AssetsDepth = 24
	// AssetsCapacity is the number of leaves in the asset tree.
	AssetsCapacity = 1 << AssetsDepth

	// TransactionsPerTick is the maximal number of transactions in one tick. Must be 2^N.
	TransactionsPerTick = 1024

	// NumberOfComputors is the size of the quorum set, and the number of
	// shares sold in a contract IPO.
	NumberOfComputors = 676
)

// MessageType identifies a peer message.
type MessageType uint8

// Peer message types that carry or reference transactions.
const (
	BroadcastTransactionType    MessageType = 24
	RequestTransactionInfoType  MessageType = 26
	RequestTickTransactionsType MessageType = 29
)
