package signing

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tickledger/go-tickledger/common/types"
)

func TestNewEdSignerFromBuffer(t *testing.T) {
	_, err := NewEdSigner(WithPrivateKey([]byte{1, 2, 3}))
	require.ErrorContains(t, err, "too small")

	_, err = NewEdSigner(WithPrivateKey(make([]byte, 64)))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_WithPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	ed2, err := NewEdSigner(WithPrivateKey(ed.PrivateKey()))
	require.NoError(t, err)
	require.Equal(t, ed.PublicKey(), ed2.PublicKey())
}

func TestEdSigner_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{3}, 64)
	ed1, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	ed2, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.Equal(t, ed1.PublicKey(), ed2.PublicKey())
}

func TestSignVerify(t *testing.T) {
	prefix := []byte("testnet")
	ed, err := NewEdSigner(WithPrefix(prefix))
	require.NoError(t, err)

	m := make([]byte, 16)
	_, err = rand.Read(m)
	require.NoError(t, err)
	sig := ed.Sign(m)

	require.True(t, NewEdVerifier(WithVerifierPrefix(prefix)).Verify(ed.PublicKey(), m, sig))
	require.False(t, NewEdVerifier().Verify(ed.PublicKey(), m, sig), "prefix is part of the message")
	require.False(t, NewEdVerifier(WithVerifierPrefix(prefix)).Verify(types.Identifier{1}, m, sig))

	sig[0] ^= 1
	require.False(t, NewEdVerifier(WithVerifierPrefix(prefix)).Verify(ed.PublicKey(), m, sig))
}

func TestSignTransaction(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)
	tx := &types.Transaction{
		TransactionHeader: types.TransactionHeader{
			Destination: types.Identifier{9},
			Amount:      1000,
			Tick:        77,
			InputSize:   2,
		},
		Payload: []byte{1, 2},
	}
	require.NoError(t, ed.SignTransaction(tx))
	require.Equal(t, ed.PublicKey(), tx.Source)

	verifier := NewEdVerifier()
	require.True(t, verifier.VerifyTransaction(tx))

	tx.Amount++
	require.False(t, verifier.VerifyTransaction(tx))
}
