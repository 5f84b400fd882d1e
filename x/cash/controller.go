package cash

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

// Controller is the balance and transfer primitive other extensions depend
// on.
type Controller interface {
	// Balance returns the balance of given account. Unknown account has
	// a zero balance.
	Balance(db linera.ReadOnlyKVStore, addr linera.Address) (uint64, error)

	// MoveCoins moves the given amount from src to dest. It fails if src
	// does not have sufficient coins.
	MoveCoins(db linera.KVStore, src, dest linera.Address, amount uint64) error

	// IssueCoins adds the given amount of coins to the destination
	// address.
	IssueCoins(db linera.KVStore, dest linera.Address, amount uint64) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

func (c BaseController) Balance(db linera.ReadOnlyKVStore, addr linera.Address) (uint64, error) {
	w, err := loadWallet(db, c.bucket, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

func (c BaseController) MoveCoins(db linera.KVStore, src, dest linera.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive transfer")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := loadWallet(db, c.bucket, src)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, src, sender); err != nil {
		return err
	}

	// Load the recipient after the sender is saved, so that a transfer to
	// self is a no-op.
	recipient, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}

func (c BaseController) IssueCoins(db linera.KVStore, dest linera.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	recipient, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}
