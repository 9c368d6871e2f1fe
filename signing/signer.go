package signing

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/tickledger/go-tickledger/common/types"
)

type edSignerOption struct {
	priv   PrivateKey
	prefix []byte
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrefix sets the prefix prepended to every signed message. This usually is the network id.
func WithPrefix(prefix []byte) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.prefix = prefix
		return nil
	}
}

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}
		if len(priv) != ed25519.PrivateKeySize {
			return fmt.Errorf("could not create EdSigner: key length %d too small", len(priv))
		}
		keyPair := ed25519.NewKeyFromSeed(priv[:32])
		if !bytes.Equal(keyPair[32:], priv.Public().(ed25519.PublicKey)) {
			return errors.New("private and public do not match")
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand generates the private key from the given randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		_, priv, err := ed25519.GenerateKey(rand)
		if err != nil {
			return fmt.Errorf("could not generate key pair: %w", err)
		}
		opt.priv = priv
		return nil
	}
}

// EdSigner signs transactions on behalf of one account.
type EdSigner struct {
	priv   PrivateKey
	prefix []byte
}

// NewEdSigner returns a signer, generating a key unless one is supplied.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("could not generate key pair: %w", err)
		}
		cfg.priv = priv
	}
	return &EdSigner{priv: cfg.priv, prefix: cfg.prefix}, nil
}

// Sign signs the prefixed message.
func (es *EdSigner) Sign(m []byte) types.Signature {
	msg := make([]byte, 0, len(es.prefix)+len(m))
	msg = append(msg, es.prefix...)
	msg = append(msg, m...)
	var sig types.Signature
	copy(sig[:], ed25519.Sign(es.priv, msg))
	return sig
}

// SignTransaction sets the source of tx to the signer's account and signs it.
func (es *EdSigner) SignTransaction(tx *types.Transaction) error {
	tx.Source = es.PublicKey()
	msg, err := tx.SigningBytes()
	if err != nil {
		return fmt.Errorf("signing bytes: %w", err)
	}
	tx.Signature = es.Sign(msg)
	return nil
}

// PublicKey returns the account identifier of the signer.
func (es *EdSigner) PublicKey() types.Identifier {
	return PublicKeyOf(es.priv)
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

// Prefix returns the message prefix.
func (es *EdSigner) Prefix() []byte {
	return es.prefix
}
