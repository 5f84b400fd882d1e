package cash

import (
	"math"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Validate always succeeds, any balance is valid.
func (m *Wallet) Validate() error {
	return nil
}

// Add increases the balance, failing on overflow.
func (m *Wallet) Add(amount uint64) error {
	if m.Balance > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "balance %d + %d", m.Balance, amount)
	}
	m.Balance += amount
	return nil
}

// Subtract decreases the balance, failing if the balance is not enough.
func (m *Wallet) Subtract(amount uint64) error {
	if m.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", m.Balance, amount)
	}
	m.Balance -= amount
	return nil
}

// NewBucket returns the bucket holding all wallets, keyed by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

// loadWallet returns the wallet of given address. A missing wallet is empty.
func loadWallet(db linera.ReadOnlyKVStore, b orm.ModelBucket, addr linera.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
