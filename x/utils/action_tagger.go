package utils

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionTagger will inspect the message being executed and add a tag
// `path = msg.Path()` to a successful result, so that clients have a
// standard way to search for eg. proposal executions.
type ActionTagger struct{}

var _ linera.Decorator = ActionTagger{}

// ActionKey is used by ActionTagger as the Key in the Tag it appends
const ActionKey = "path"

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx, next linera.Checker) (*linera.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx, next linera.Deliverer) (*linera.DeliverResult, error) {
	// Report a broken transaction early, before dispatching.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
