package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

const (
	registryBucketName = "msig_reg"
	// MaxOwners bounds the size of the registry.
	MaxOwners = 64
)

var registryKey = []byte("owners")

// Validate checks the registry invariants: at least one owner, no
// duplicates and a threshold between one and the number of owners.
func (m *Registry) Validate() error {
	if err := validateOwners(m.Owners); err != nil {
		return errors.Field("Owners", err, "invalid owners")
	}
	if err := validateThreshold(m.Threshold, len(m.Owners)); err != nil {
		return errors.Field("Threshold", err, "invalid threshold")
	}
	return nil
}

func validateOwners(owners []linera.Address) error {
	switch n := len(owners); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "no owners")
	case n > MaxOwners:
		return errors.Wrapf(errors.ErrInput, "%d owners, at most %d allowed", n, MaxOwners)
	}
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner %d", i)
		}
		for _, other := range owners[:i] {
			if o.Equals(other) {
				return errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
			}
		}
	}
	return nil
}

func validateThreshold(threshold uint64, owners int) error {
	if threshold == 0 {
		return errors.Wrap(errors.ErrInput, "threshold cannot be zero")
	}
	if threshold > uint64(owners) {
		return errors.Wrapf(errors.ErrInput, "threshold %d exceeds %d owners", threshold, owners)
	}
	return nil
}

// Has returns true if given address is an owner.
func (m *Registry) Has(addr linera.Address) bool {
	return m.index(addr) >= 0
}

func (m *Registry) index(addr linera.Address) int {
	for i, o := range m.Owners {
		if o.Equals(addr) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the registry.
func (m *Registry) Clone() *Registry {
	owners := make([]linera.Address, len(m.Owners))
	for i, o := range m.Owners {
		owners[i] = o.Clone()
	}
	return &Registry{Owners: owners, Threshold: m.Threshold}
}

// add appends the owner unless it is already present.
func (m *Registry) add(owner linera.Address) {
	if !m.Has(owner) {
		m.Owners = append(m.Owners, owner.Clone())
	}
}

// remove deletes the owner keeping the order of the others.
func (m *Registry) remove(owner linera.Address) {
	i := m.index(owner)
	if i < 0 {
		return
	}
	owners := make([]linera.Address, 0, len(m.Owners)-1)
	owners = append(owners, m.Owners[:i]...)
	m.Owners = append(owners, m.Owners[i+1:]...)
}

// replace swaps old for new in place.
func (m *Registry) replace(old, new linera.Address) {
	if i := m.index(old); i >= 0 {
		m.Owners[i] = new.Clone()
	}
}

// RegistryBucket stores the registry singleton.
type RegistryBucket struct {
	orm.ModelBucket
}

// NewRegistryBucket returns a bucket for the owner registry.
func NewRegistryBucket() RegistryBucket {
	return RegistryBucket{
		ModelBucket: orm.NewModelBucket(registryBucketName, &Registry{}),
	}
}

// Load returns the registry. ErrNotFound is returned if the vault was never
// initialized.
func (b RegistryBucket) Load(db linera.ReadOnlyKVStore) (*Registry, error) {
	var reg Registry
	if err := b.One(db, registryKey, &reg); err != nil {
		return nil, errors.Wrap(err, "owner registry")
	}
	return &reg, nil
}

// Save validates and stores the registry.
func (b RegistryBucket) Save(db linera.KVStore, reg *Registry) error {
	return b.Put(db, registryKey, reg)
}
