package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/app"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

func TestParseLine(t *testing.T) {
	cases := map[string]struct {
		line     string
		wantTime time.Time
		wantRaw  []byte
		wantErr  *errors.Error
	}{
		"valid": {
			line:     "1600000000000001 cafe",
			wantTime: time.Unix(1600000000, 1000).UTC(),
			wantRaw:  []byte{0xca, 0xfe},
		},
		"missing transaction": {
			line:    "1600000000000001",
			wantErr: errors.ErrInput,
		},
		"invalid time": {
			line:    "yesterday cafe",
			wantErr: errors.ErrInput,
		},
		"invalid hex": {
			line:    "1600000000000001 xyz",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			now, raw, err := parseLine(tc.line)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantTime, now)
			assert.Equal(t, tc.wantRaw, raw)
		})
	}
}

const testChainID = "vaultd-test"

func writeGenesis(t testing.TB, dir string, owners ...*crypto.PrivateKey) string {
	t.Helper()
	var list []string
	for _, k := range owners {
		list = append(list, fmt.Sprintf("%q", k.PublicKey().Address().String()))
	}
	raw := fmt.Sprintf(`{
		"chain_id": %q,
		"cash": [{"address": %q, "amount": 500}],
		"multisig": {"owners": [%s], "threshold": 1}
	}`, testChainID, multisig.VaultAddress.String(), strings.Join(list, ", "))
	path := filepath.Join(dir, "genesis.json")
	assert.Nil(t, os.WriteFile(path, []byte(raw), 0600))
	return path
}

func txLine(t testing.TB, now time.Time, key *crypto.PrivateKey, seq uint64, msg linera.Msg) string {
	t.Helper()
	tx, err := app.NewTx(msg)
	assert.Nil(t, err)
	sig, err := sigs.SignTx(key, tx, testChainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := linera.Marshal(tx)
	assert.Nil(t, err)
	return fmt.Sprintf("%d %x\n", now.UnixMicro(), raw)
}

func TestRunPersistsState(t *testing.T) {
	home := t.TempDir()
	key := vaulttest.NewKey()
	cfg := Config{Home: home, Genesis: writeGenesis(t, home, key), LogLevel: "error"}
	logger := log.NewNopLogger()
	recipient := vaulttest.NewCondition().Address()
	now := time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC)

	kind, err := multisig.NewProposalKind(&multisig.Transfer{To: recipient, Value: 120})
	assert.Nil(t, err)
	submit := txLine(t, now, key, 0, &multisig.SubmitProposalMsg{Kind: kind})
	execute := txLine(t, now.Add(time.Second), key, 1, &multisig.ExecuteMsg{ProposalID: 0})

	var out bytes.Buffer
	input := "# submit and execute\n" + submit + "\n" + execute
	assert.Nil(t, run(cfg, logger, strings.NewReader(input), &out))

	results := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 2, len(results))
	for _, r := range results {
		if !strings.HasPrefix(r, "0\t") {
			t.Fatalf("unexpected result %q", r)
		}
	}

	// the second run loads the committed state, the replayed
	// transaction fails on the signer sequence
	out.Reset()
	assert.Nil(t, run(cfg, logger, strings.NewReader(submit), &out))
	if strings.HasPrefix(out.String(), "0\t") {
		t.Fatalf("replayed transaction accepted: %q", out.String())
	}

	// the database cannot be reused for another chain
	cfg.ChainID = "another-chain"
	err = run(cfg, logger, strings.NewReader(""), &out)
	assert.IsErr(t, errors.ErrState, err)
}

func TestRunRejectsMalformedInput(t *testing.T) {
	home := t.TempDir()
	cfg := Config{Home: home, Genesis: writeGenesis(t, home, vaulttest.NewKey()), LogLevel: "error"}

	var out bytes.Buffer
	err := run(cfg, log.NewNopLogger(), strings.NewReader("not a transaction line\n"), &out)
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, "", out.String())
}

func TestRunMissingGenesis(t *testing.T) {
	home := t.TempDir()
	cfg := Config{Home: home, Genesis: filepath.Join(home, "missing.json")}

	err := run(cfg, log.NewNopLogger(), strings.NewReader(""), &bytes.Buffer{})
	assert.IsErr(t, errors.ErrInput, err)
}
