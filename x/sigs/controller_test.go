package sigs

import (
	"testing"

	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/stretchr/testify/require"
)

// signedTx is a transaction signing an arbitrary payload.
type signedTx struct {
	vaulttest.Tx
	payload []byte
	sigs    []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func (tx *signedTx) GetSignBytes() ([]byte, error) { return tx.payload, nil }

func (tx *signedTx) GetSignatures() []*StdSignature { return tx.sigs }

func TestSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("foo"), "test-chain", 1)
	require.NoError(t, err)
	b, err := BuildSignBytes([]byte("foo"), "test-chain", 2)
	require.NoError(t, err)
	c, err := BuildSignBytes([]byte("foo"), "other-chain", 1)
	require.NoError(t, err)
	again, err := BuildSignBytes([]byte("foo"), "test-chain", 1)
	require.NoError(t, err)

	require.Len(t, a, 64)
	require.Equal(t, a, again)
	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)

	_, err = BuildSignBytes([]byte("foo"), "x", 1)
	require.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	const chainID = "test-chain"
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	other := crypto.GenPrivKeyEd25519()

	db := store.MemStore()
	tx := &signedTx{payload: []byte("hello")}

	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)
	forged, err := SignTx(other, tx, chainID, 0)
	require.NoError(t, err)
	forged.Pubkey = pub

	// a signature made for a future sequence is refused
	_, err = VerifySignature(db, sig1, tx.payload, chainID)
	require.True(t, ErrInvalidSequence.Is(err), "%+v", err)

	_, err = VerifySignature(db, forged, tx.payload, chainID)
	require.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)

	_, err = VerifySignature(db, sig0, tx.payload, "other-chain")
	require.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)

	cond, err := VerifySignature(db, sig0, tx.payload, chainID)
	require.NoError(t, err)
	require.Equal(t, pub.Condition(), cond)

	seq, err := NextSequence(db, pub)
	require.NoError(t, err)
	require.EqualValues(t, 1, seq)

	// replay of the same signature fails
	_, err = VerifySignature(db, sig0, tx.payload, chainID)
	require.True(t, ErrInvalidSequence.Is(err), "%+v", err)

	cond, err = VerifySignature(db, sig1, tx.payload, chainID)
	require.NoError(t, err)
	require.Equal(t, pub.Condition(), cond)
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "test-chain"
	a := crypto.GenPrivKeyEd25519()
	b := crypto.GenPrivKeyEd25519()

	db := store.MemStore()
	tx := &signedTx{payload: []byte("transfer")}

	signers, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	require.Empty(t, signers)

	sigA, err := SignTx(a, tx, chainID, 0)
	require.NoError(t, err)
	sigB, err := SignTx(b, tx, chainID, 0)
	require.NoError(t, err)
	tx.sigs = []*StdSignature{sigA, sigB}

	signers, err = VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	require.Len(t, signers, 2)
	require.Equal(t, a.PublicKey().Condition(), signers[0])
	require.Equal(t, b.PublicKey().Condition(), signers[1])

	tx.sigs = []*StdSignature{{Pubkey: a.PublicKey()}}
	_, err = VerifyTxSignatures(db, tx, chainID)
	require.True(t, errors.ErrSignature.Is(err), "%+v", err)
}

func TestCheckAndIncrementSequence(t *testing.T) {
	cases := map[string]struct {
		user     UserData
		expected uint64
		wantErr  *errors.Error
		wantSeq  uint64
	}{
		"first use": {
			user:     UserData{},
			expected: 0,
			wantSeq:  1,
		},
		"mismatch": {
			user:     UserData{Sequence: 5},
			expected: 4,
			wantErr:  ErrInvalidSequence,
			wantSeq:  5,
		},
		"overflow": {
			user:     UserData{Sequence: (1 << 53) - 1},
			expected: (1 << 53) - 1,
			wantErr:  errors.ErrOverflow,
			wantSeq:  (1 << 53) - 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.user.CheckAndIncrementSequence(tc.expected)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.True(t, tc.wantErr.Is(err), "%+v", err)
			}
			require.Equal(t, tc.wantSeq, tc.user.Sequence)
		})
	}
}
