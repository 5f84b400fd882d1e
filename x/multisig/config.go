package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/gconf"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

const (
	// packageName is used for the configuration singleton and genesis.
	packageName = "multisig"

	// DefaultProposalLifetime is one week, in seconds.
	DefaultProposalLifetime uint64 = 604800
	// DefaultTimeDelay disables the time delay.
	DefaultTimeDelay uint64 = 0
)

var _ gconf.Configuration = (*Configuration)(nil)

// Validate checks the aggregate key length and that a proposal lifetime
// can be represented.
func (m *Configuration) Validate() error {
	if n := len(m.AggregateKey); n != 0 && n != sigs.AggregateKeySize {
		return errors.Field("AggregateKey", errors.ErrInput, "must be %d bytes, got %d", sigs.AggregateKeySize, n)
	}
	if _, err := linera.Timestamp(0).AddSeconds(m.ProposalLifetime); err != nil {
		return errors.Field("ProposalLifetime", err, "too long")
	}
	if _, err := linera.Timestamp(0).AddSeconds(m.TimeDelay); err != nil {
		return errors.Field("TimeDelay", err, "too long")
	}
	return nil
}

// Lifetime returns the proposal lifetime in seconds, applying the default.
func (m *Configuration) Lifetime() uint64 {
	if m.ProposalLifetime == 0 {
		return DefaultProposalLifetime
	}
	return m.ProposalLifetime
}

// LoadConfig returns the stored configuration, or the default one if none
// was ever saved.
func LoadConfig(db linera.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{ProposalLifetime: DefaultProposalLifetime, TimeDelay: DefaultTimeDelay}, nil
	default:
		return nil, errors.Wrap(err, "configuration")
	}
}

// SaveConfig validates and stores the configuration.
func SaveConfig(db linera.KVStore, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}
