package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
	"github.com/keyper-labs/linera.dev/store/iavl"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/cash"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

const testChainID = "test-vault"

var start = time.Date(2020, 9, 13, 12, 0, 0, 0, time.UTC)

func testGenesis(t testing.TB, keys []*crypto.PrivateKey, threshold int, funds uint64) *Genesis {
	t.Helper()
	var owners string
	for i, k := range keys {
		if i > 0 {
			owners += ", "
		}
		owners += fmt.Sprintf("%q", k.PublicKey().Address().String())
	}
	raw := fmt.Sprintf(`{
		"chain_id": %q,
		"cash": [{"address": %q, "amount": %d}],
		"multisig": {"owners": [%s], "threshold": %d},
		"conf": {"multisig": {"time_delay": 60}}
	}`, testChainID, multisig.VaultAddress.String(), funds, owners, threshold)
	gen, err := ParseGenesis([]byte(raw))
	assert.Nil(t, err)
	return gen
}

// signed returns the serialized transaction carrying msg, signed by key
// with given sequence.
func signed(t testing.TB, key *crypto.PrivateKey, seq uint64, msg linera.Msg) []byte {
	t.Helper()
	tx, err := NewTx(msg)
	assert.Nil(t, err)
	if key != nil {
		sig, err := sigs.SignTx(key, tx, testChainID, seq)
		assert.Nil(t, err)
		tx.Signatures = []*sigs.StdSignature{sig}
	}
	raw, err := linera.Marshal(tx)
	assert.Nil(t, err)
	return raw
}

func TestApplicationProposalFlow(t *testing.T) {
	keys := []*crypto.PrivateKey{vaulttest.NewKey(), vaulttest.NewKey(), vaulttest.NewKey()}
	db := iavl.NewMemCommitStore()
	a, err := NewApplication("vault", db, nil)
	assert.Nil(t, err)
	assert.Nil(t, a.InitChain(testGenesis(t, keys, 2, 1000)))
	assert.Equal(t, testChainID, a.ChainID())

	recipient := vaulttest.NewCondition().Address()
	kind, err := multisig.NewProposalKind(&multisig.Transfer{To: recipient, Value: 250})
	assert.Nil(t, err)

	submit := signed(t, keys[0], 0, &multisig.SubmitProposalMsg{Kind: kind})
	_, err = a.CheckTx(start, submit)
	assert.Nil(t, err)
	res, err := a.DeliverTx(start, submit)
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(0), res.Data)

	// a replayed transaction fails on the signer sequence
	_, err = a.DeliverTx(start, submit)
	assert.IsErr(t, sigs.ErrInvalidSequence, err)

	// a failed execution does not consume the sequence
	_, err = a.DeliverTx(start, signed(t, keys[0], 1, &multisig.ExecuteMsg{ProposalID: 0}))
	assert.IsErr(t, multisig.ErrInsufficientConfirmations, err)

	_, err = a.DeliverTx(start, signed(t, keys[1], 0, &multisig.ConfirmMsg{ProposalID: 0}))
	assert.Nil(t, err)

	_, err = a.DeliverTx(start.Add(30*time.Second), signed(t, keys[0], 1, &multisig.ExecuteMsg{ProposalID: 0}))
	assert.IsErr(t, multisig.ErrTimeDelayNotMet, err)

	code, data, _ := a.DeliverABCI(start.Add(time.Minute), signed(t, keys[0], 1, &multisig.ExecuteMsg{ProposalID: 0}))
	assert.Equal(t, uint32(0), code)
	var effect multisig.Effect
	assert.Nil(t, linera.Unmarshal(data, &effect))
	assert.Equal(t, uint64(250), effect.Value)

	_, err = a.Commit()
	assert.Nil(t, err)

	// state and chain ID survive a restart
	b, err := NewApplication("vault", db, nil)
	assert.Nil(t, err)
	assert.Equal(t, testChainID, b.ChainID())
	balance, err := cash.NewController().Balance(b.DeliverStore(), recipient)
	assert.Nil(t, err)
	assert.Equal(t, uint64(250), balance)

	err = b.InitChain(testGenesis(t, keys, 2, 1000))
	assert.IsErr(t, errors.ErrState, err)
}

func TestApplicationRejects(t *testing.T) {
	keys := []*crypto.PrivateKey{vaulttest.NewKey(), vaulttest.NewKey()}
	a, err := NewApplication("vault", iavl.NewMemCommitStore(), nil)
	assert.Nil(t, err)

	kind, err := multisig.NewProposalKind(&multisig.ChangeThreshold{Threshold: 1})
	assert.Nil(t, err)
	msg := &multisig.SubmitProposalMsg{Kind: kind}

	_, err = a.DeliverTx(start, signed(t, keys[0], 0, msg))
	assert.IsErr(t, errors.ErrState, err)

	assert.Nil(t, a.InitChain(testGenesis(t, keys, 2, 0)))

	cases := map[string]struct {
		raw     []byte
		wantErr *errors.Error
	}{
		"garbage": {
			raw:     []byte{0xff, 0x01, 0x02},
			wantErr: errors.ErrInput,
		},
		"no message": {
			raw:     linera.MustMarshal(&Tx{}),
			wantErr: errors.ErrEmpty,
		},
		"unsigned": {
			raw:     signed(t, nil, 0, msg),
			wantErr: errors.ErrUnauthorized,
		},
		"signed by a stranger": {
			raw:     signed(t, vaulttest.NewKey(), 0, msg),
			wantErr: errors.ErrUnauthorized,
		},
		"wrong sequence": {
			raw:     signed(t, keys[0], 5, msg),
			wantErr: sigs.ErrInvalidSequence,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := a.DeliverTx(start, tc.raw)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestApplicationInitChain(t *testing.T) {
	keys := []*crypto.PrivateKey{vaulttest.NewKey()}

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"invalid chain id": {
			genesis: `{"chain_id": "x"}`,
			wantErr: errors.ErrInput,
		},
		"missing owners": {
			genesis: fmt.Sprintf(`{"chain_id": %q}`, testChainID),
			wantErr: errors.ErrEmpty,
		},
		"valid": {
			genesis: fmt.Sprintf(`{"chain_id": %q, "multisig": {"owners": [%q], "threshold": 1}}`,
				testChainID, keys[0].PublicKey().Address().String()),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			a, err := NewApplication("vault", iavl.NewMemCommitStore(), nil)
			assert.Nil(t, err)
			gen, err := ParseGenesis([]byte(tc.genesis))
			assert.Nil(t, err)
			err = a.InitChain(gen)
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
			// nothing is stored on failure
			assert.Equal(t, "", a.ChainID())
			v, err := a.DeliverStore().Get(chainIDKey)
			assert.Nil(t, err)
			assert.Equal(t, 0, len(v))
		})
	}
}

func TestApplicationCheckBeforeFirstCommit(t *testing.T) {
	keys := []*crypto.PrivateKey{vaulttest.NewKey()}
	a, err := NewApplication("vault", iavl.NewMemCommitStore(), nil)
	assert.Nil(t, err)
	assert.Nil(t, a.InitChain(testGenesis(t, keys, 1, 100)))

	kind, err := multisig.NewProposalKind(&multisig.Transfer{To: vaulttest.NewCondition().Address(), Value: 10})
	assert.Nil(t, err)

	// genesis state is visible to checks before it is committed
	_, err = a.CheckTx(start, signed(t, keys[0], 0, &multisig.SubmitProposalMsg{Kind: kind}))
	assert.Nil(t, err)

	_, err = a.Commit()
	assert.Nil(t, err)
	_, err = a.CheckTx(start, signed(t, keys[0], 0, &multisig.SubmitProposalMsg{Kind: kind}))
	assert.Nil(t, err)
}
