package app

import (
	"encoding/json"
	"os"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// Genesis is the initial state of a vault. ChainID binds transaction
// signatures to this deployment, the remaining keys are read by the
// extension initializers.
type Genesis struct {
	ChainID  string
	AppState linera.Options
}

// ParseGenesis reads a genesis document. The "chain_id" key is taken out,
// all other keys are kept as extension options.
func ParseGenesis(raw []byte) (*Genesis, error) {
	var opts linera.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "genesis: %s", err)
	}
	var chainID string
	if err := opts.ReadOptions(chainIDOption, &chainID); err != nil {
		return nil, err
	}
	delete(opts, chainIDOption)
	return &Genesis{ChainID: chainID, AppState: opts}, nil
}

// LoadGenesis reads a genesis document from a file.
func LoadGenesis(path string) (*Genesis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	return ParseGenesis(raw)
}

const chainIDOption = "chain_id"

// chainIDKey is where the chain ID is persisted.
var chainIDKey = []byte("_i:chain_id")

// loadChainID returns the chain id stored if any
func loadChainID(db linera.ReadOnlyKVStore) (string, error) {
	v, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(db linera.KVStore, chainID string) error {
	if !linera.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "chain id")
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "chain id already set")
	}
	return db.Set(chainIDKey, []byte(chainID))
}
