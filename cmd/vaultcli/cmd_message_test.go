package main

import (
	"bytes"
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/multisig"
)

func TestMessageSignVerify(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "aggregate.key")
	assert.Nil(t, cmdKeygen(nil, nil, []string{"-key", keyPath}))
	key, err := decodePrivateKey(keyPath)
	assert.Nil(t, err)
	aggKey := hex.EncodeToString(key.PublicKey().Ed25519)
	owner := vaulttest.NewCondition().Address()

	var out bytes.Buffer
	err = cmdMessage(nil, &out, []string{"-nonce", "3", "-op", "add_owner", "-owner", owner.String()})
	assert.Nil(t, err)
	message := strings.TrimSpace(out.String())

	want, err := multisig.CanonicalMessage(3, &multisig.AddOwner{Owner: owner})
	assert.Nil(t, err)
	assert.Equal(t, hex.EncodeToString(want), message)

	out.Reset()
	assert.Nil(t, cmdSignMessage(nil, &out, []string{"-key", keyPath, "-message", message}))
	signature := strings.TrimSpace(out.String())

	out.Reset()
	err = cmdVerifyMessage(nil, &out, []string{"-aggregate-key", aggKey, "-message", message, "-signature", signature})
	assert.Nil(t, err)
	assert.Equal(t, "valid\n", out.String())

	// a signature over one nonce does not verify another
	out.Reset()
	assert.Nil(t, cmdMessage(nil, &out, []string{"-nonce", "4", "-op", "add_owner", "-owner", owner.String()}))
	other := strings.TrimSpace(out.String())
	err = cmdVerifyMessage(nil, &out, []string{"-aggregate-key", aggKey, "-message", other, "-signature", signature})
	if err == nil {
		t.Fatal("signature verified for a different message")
	}

	// the signed transaction carries the same canonical message
	out.Reset()
	err = cmdExecuteSigned(nil, &out, []string{
		"-nonce", "3", "-signature", signature, "-op", "add_owner", "-owner", owner.String(),
	})
	assert.Nil(t, err)
	tx, err := readTx(&out)
	assert.Nil(t, err)
	assert.Equal(t, want, tx.ExecuteSignedMsg.Message)
	assert.Equal(t, uint64(3), tx.ExecuteSignedMsg.Nonce)
}

func TestActionFlags(t *testing.T) {
	owner := vaulttest.NewCondition().Address().String()
	other := vaulttest.NewCondition().Address().String()

	cases := map[string]struct {
		args    []string
		wantOp  string
		wantErr bool
	}{
		"transfer": {
			args:   []string{"-op", "transfer", "-to", owner, "-value", "10", "-payload", "cafe"},
			wantOp: multisig.OpTransfer,
		},
		"replace owner": {
			args:   []string{"-op", "replace_owner", "-old", owner, "-new", other},
			wantOp: multisig.OpReplaceOwner,
		},
		"config change": {
			args: []string{"-op", "config_change", "-owners", owner + "," + other, "-threshold", "2",
				"-aggregate-key", strings.Repeat("ab", 32)},
			wantOp: multisig.OpConfigChange,
		},
		"zero transfer": {
			args:    []string{"-op", "transfer", "-to", owner},
			wantErr: true,
		},
		"missing op": {
			args:    []string{"-threshold", "2"},
			wantErr: true,
		},
		"unknown op": {
			args:    []string{"-op", "burn"},
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fl := newTestFlagSet()
			action := actionFlags(fl)
			assert.Nil(t, fl.Parse(tc.args))
			a, err := action()
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantOp, a.OperationType())
		})
	}
}
