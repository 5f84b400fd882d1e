package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

func newTestFlagSet() *flag.FlagSet {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	return fl
}

func TestCmdProposeHappyPath(t *testing.T) {
	to := vaulttest.NewCondition().Address()

	var output bytes.Buffer
	args := []string{"-op", "transfer", "-to", to.String(), "-value", "25"}
	if err := cmdPropose(nil, &output, args); err != nil {
		t.Fatalf("cannot create a proposal transaction: %s", err)
	}

	tx, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*multisig.SubmitProposalMsg)
	assert.Equal(t, to, msg.Kind.Transfer.To)
	assert.Equal(t, uint64(25), msg.Kind.Transfer.Value)
}

func TestCmdProposalIDMessages(t *testing.T) {
	cases := map[string]struct {
		cmd  func(*bytes.Buffer) error
		path string
	}{
		"confirm": {
			cmd:  func(out *bytes.Buffer) error { return cmdConfirm(nil, out, []string{"-id", "7"}) },
			path: "multisig/confirm",
		},
		"revoke": {
			cmd:  func(out *bytes.Buffer) error { return cmdRevoke(nil, out, []string{"-id", "7"}) },
			path: "multisig/revoke",
		},
		"execute": {
			cmd:  func(out *bytes.Buffer) error { return cmdExecute(nil, out, []string{"-id", "7"}) },
			path: "multisig/execute",
		},
		"purge": {
			cmd:  func(out *bytes.Buffer) error { return cmdPurge(nil, out, []string{"-limit", "7"}) },
			path: "multisig/purge",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			assert.Nil(t, tc.cmd(&out))
			tx, err := readTx(&out)
			assert.Nil(t, err)
			msg, err := tx.GetMsg()
			assert.Nil(t, err)
			assert.Equal(t, tc.path, msg.Path())
		})
	}
}

func TestCmdSignAndView(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "owner.key")
	assert.Nil(t, cmdKeygen(nil, nil, []string{"-key", keyPath}))
	key, err := decodePrivateKey(keyPath)
	assert.Nil(t, err)

	var unsigned bytes.Buffer
	assert.Nil(t, cmdConfirm(nil, &unsigned, []string{"-id", "2"}))

	var signed bytes.Buffer
	err = cmdSignTransaction(&unsigned, &signed, []string{"-key", keyPath, "-chain-id", "test-vault", "-seq", "4"})
	assert.Nil(t, err)

	raw := signed.Bytes()
	tx, err := readTx(bytes.NewReader(raw))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(tx.Signatures))
	assert.Equal(t, uint64(4), tx.Signatures[0].Sequence)
	assert.Equal(t, key.PublicKey(), tx.Signatures[0].Pubkey)

	signBytes, err := tx.GetSignBytes()
	assert.Nil(t, err)
	toVerify, err := sigs.BuildSignBytes(signBytes, "test-vault", 4)
	assert.Nil(t, err)
	if !key.PublicKey().Verify(toVerify, tx.Signatures[0].Signature) {
		t.Fatal("invalid transaction signature")
	}

	var view bytes.Buffer
	assert.Nil(t, cmdTransactionView(bytes.NewReader(raw), &view, nil))
	if !strings.Contains(view.String(), `"confirm_msg"`) {
		t.Fatalf("unexpected view: %s", view.String())
	}
}

func TestCmdProposeRejectsConfigChange(t *testing.T) {
	owner := vaulttest.NewCondition().Address().String()
	args := []string{"-op", "config_change", "-owners", owner, "-threshold", "1",
		"-aggregate-key", strings.Repeat("ab", 32)}

	var output bytes.Buffer
	if err := cmdPropose(nil, &output, args); err == nil {
		t.Fatal("configuration change proposal created")
	}
	assert.Equal(t, 0, output.Len())
}
