package app

import (
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
	"github.com/stretchr/testify/require"
)

func TestTxMessage(t *testing.T) {
	cases := map[string]struct {
		tx      *Tx
		wantErr *errors.Error
		path    string
	}{
		"confirm": {
			tx:   &Tx{ConfirmMsg: &multisig.ConfirmMsg{ProposalID: 1}},
			path: "multisig/confirm",
		},
		"purge": {
			tx:   &Tx{PurgeExpiredMsg: &multisig.PurgeExpiredMsg{Limit: 1}},
			path: "multisig/purge",
		},
		"empty": {
			tx:      &Tx{},
			wantErr: errors.ErrEmpty,
		},
		"two messages": {
			tx: &Tx{
				ConfirmMsg: &multisig.ConfirmMsg{ProposalID: 1},
				RevokeMsg:  &multisig.RevokeMsg{ProposalID: 1},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %s, got %+v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.path, msg.Path())
		})
	}
}

func TestTxSetMsg(t *testing.T) {
	tx, err := NewTx(&multisig.ConfirmMsg{ProposalID: 4})
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{{Sequence: 2}}

	require.NoError(t, tx.SetMsg(&multisig.ExecuteMsg{ProposalID: 4}))
	require.Nil(t, tx.ConfirmMsg)
	require.Len(t, tx.Signatures, 1)

	err = tx.SetMsg(&vaulttest.Msg{RoutePath: "vault/op"})
	require.True(t, errors.ErrType.Is(err))
}

func TestTxSignBytes(t *testing.T) {
	key := vaulttest.NewKey()
	tx, err := NewTx(&multisig.RevokeMsg{ProposalID: 9})
	require.NoError(t, err)

	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, testChainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	// signatures are not part of the signed bytes
	signedBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.Equal(t, unsigned, signedBytes)

	raw, err := linera.Marshal(tx)
	require.NoError(t, err)
	decoded, err := DecodeTx(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	require.Equal(t, &multisig.RevokeMsg{ProposalID: 9}, msg)
	require.Len(t, decoded.(*Tx).Signatures, 1)
}

func TestTxWireFormat(t *testing.T) {
	tx := &Tx{
		Signatures: []*sigs.StdSignature{{
			Pubkey:   &crypto.PublicKey{Ed25519: []byte{1}},
			Sequence: 1,
		}},
		ConfirmMsg: &multisig.ConfirmMsg{ProposalID: 3},
	}
	want := []byte{
		0x0a, 0x07, 0x0a, 0x03, 0x0a, 0x01, 0x01, 0x18, 0x01,
		0x1a, 0x02, 0x08, 0x03,
	}

	raw, err := linera.Marshal(tx)
	require.NoError(t, err)
	require.Equal(t, want, raw)
	require.Equal(t, len(want), tx.Size())

	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.Equal(t, want[9:], signBytes)

	decoded, err := DecodeTx(raw)
	require.NoError(t, err)
	require.Equal(t, tx, decoded)
}
