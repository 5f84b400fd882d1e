package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ linera.Initializer = Initializer{}

// FromGenesis stores the owner registry found under the "multisig" key and
// the configuration found under "conf"/"multisig". A missing configuration
// means defaults are used.
func (Initializer) FromGenesis(opts linera.Options, db linera.KVStore) error {
	var reg Registry
	if err := opts.ReadOptions(packageName, &reg); err != nil {
		return err
	}
	if err := NewRegistryBucket().Save(db, &reg); err != nil {
		return errors.Wrap(err, "owner registry")
	}

	var conf Configuration
	err := gconf.InitConfig(db, opts, packageName, &conf)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
