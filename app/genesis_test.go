package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestLoadGenesis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesis.json")
	raw := `{"chain_id": "test-vault", "cash": [], "multisig": {"threshold": 1}}`
	assert.Nil(t, os.WriteFile(path, []byte(raw), 0600))

	gen, err := LoadGenesis(path)
	assert.Nil(t, err)
	assert.Equal(t, "test-vault", gen.ChainID)
	_, ok := gen.AppState["chain_id"]
	assert.Equal(t, false, ok)
	_, ok = gen.AppState["multisig"]
	assert.Equal(t, true, ok)

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.IsErr(t, errors.ErrInput, err)

	_, err = ParseGenesis([]byte(`[1, 2]`))
	assert.IsErr(t, errors.ErrInput, err)
}
