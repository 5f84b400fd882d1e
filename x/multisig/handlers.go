package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
	"github.com/keyper-labs/linera.dev/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagProposalID = "proposal-id"
	tagAction     = "action"
	tagKind       = "kind"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r linera.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathSubmitProposalMsg, SubmitProposalHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathConfirmMsg, ConfirmHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathRevokeMsg, RevokeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathExecuteMsg, ExecuteHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathExecuteSignedMsg, ExecuteSignedHandler{ctrl: ctrl})
	r.Handle(pathPurgeExpiredMsg, PurgeExpiredHandler{auth: auth, ctrl: ctrl})
}

// caller returns the address of the main signer if it is an owner.
func caller(ctx linera.Context, db linera.ReadOnlyKVStore, auth x.Authenticator, ctrl *Controller) (linera.Address, error) {
	addr := x.MainSignerAddress(ctx, auth)
	if addr == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if _, err := ctrl.requireOwner(db, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func proposalTags(id uint64, action string) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagProposalID), Value: orm.EncodeSequence(id)},
		{Key: []byte(tagAction), Value: []byte(action)},
	}
}

// SubmitProposalHandler creates proposals.
type SubmitProposalHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ linera.Handler = SubmitProposalHandler{}

func (h SubmitProposalHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h SubmitProposalHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	msg, proposer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	p, err := h.ctrl.Submit(ctx, db, proposer, msg.Kind)
	if err != nil {
		return nil, err
	}
	action, _ := p.Kind.Action()
	res := &linera.DeliverResult{
		Data: orm.EncodeSequence(p.ID),
		Tags: append(proposalTags(p.ID, "submit"),
			common.KVPair{Key: []byte(tagKind), Value: []byte(action.OperationType())}),
	}
	return res, nil
}

func (h SubmitProposalHandler) validate(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*SubmitProposalMsg, linera.Address, error) {
	var msg SubmitProposalMsg
	if err := linera.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	addr, err := caller(ctx, db, h.auth, h.ctrl)
	if err != nil {
		return nil, nil, err
	}
	return &msg, addr, nil
}

// ConfirmHandler confirms proposals.
type ConfirmHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ linera.Handler = ConfirmHandler{}

func (h ConfirmHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	var msg ConfirmMsg
	if _, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	if _, err := h.ctrl.proposals.Lookup(db, msg.ProposalID); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h ConfirmHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	var msg ConfirmMsg
	owner, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl)
	if err != nil {
		return nil, err
	}
	count, err := h.ctrl.Confirm(ctx, db, owner, msg.ProposalID)
	if err != nil {
		return nil, err
	}
	res := &linera.DeliverResult{
		Data: orm.EncodeSequence(count),
		Tags: proposalTags(msg.ProposalID, "confirm"),
	}
	return res, nil
}

// RevokeHandler withdraws confirmations.
type RevokeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ linera.Handler = RevokeHandler{}

func (h RevokeHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	var msg RevokeMsg
	if _, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	if _, err := h.ctrl.proposals.Lookup(db, msg.ProposalID); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h RevokeHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	var msg RevokeMsg
	owner, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Revoke(ctx, db, owner, msg.ProposalID); err != nil {
		return nil, err
	}
	return &linera.DeliverResult{Tags: proposalTags(msg.ProposalID, "revoke")}, nil
}

// ExecuteHandler executes approved proposals.
type ExecuteHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ linera.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	var msg ExecuteMsg
	if _, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	p, err := h.ctrl.proposals.Lookup(db, msg.ProposalID)
	if err != nil {
		return nil, err
	}
	now, err := linera.CurrentTime(ctx)
	if err != nil {
		return nil, err
	}
	reg, err := h.ctrl.Registry(db)
	if err != nil {
		return nil, err
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return nil, err
	}
	if err := CheckExecutable(p, reg, conf, now); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h ExecuteHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	var msg ExecuteMsg
	owner, err := loadIDMsg(ctx, db, tx, &msg, h.auth, h.ctrl)
	if err != nil {
		return nil, err
	}
	effect, err := h.ctrl.Execute(ctx, db, owner, msg.ProposalID)
	if err != nil {
		return nil, err
	}
	return effectResult(effect, proposalTags(msg.ProposalID, "execute"))
}

// ExecuteSignedHandler executes actions authorized by an aggregated
// signature. No transaction signer is required, the aggregated signature is
// the authorization.
type ExecuteSignedHandler struct {
	ctrl *Controller
}

var _ linera.Handler = ExecuteSignedHandler{}

func (h ExecuteSignedHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	var msg ExecuteSignedMsg
	if err := linera.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.Registry(db); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h ExecuteSignedHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	var msg ExecuteSignedMsg
	if err := linera.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	effect, err := h.ctrl.ExecuteWithSignature(ctx, db, msg.Nonce, msg.Message, msg.Signature, msg.Kind)
	if err != nil {
		return nil, err
	}
	tags := []common.KVPair{
		{Key: []byte(tagAction), Value: []byte("execute_signed")},
		{Key: []byte(tagKind), Value: []byte(effect.OperationType)},
	}
	return effectResult(effect, tags)
}

// PurgeExpiredHandler deletes expired proposals.
type PurgeExpiredHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ linera.Handler = PurgeExpiredHandler{}

func (h PurgeExpiredHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &linera.CheckResult{}, nil
}

func (h PurgeExpiredHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ids, err := h.ctrl.PurgeExpired(ctx, db, owner, msg.Limit)
	if err != nil {
		return nil, err
	}
	res := &linera.DeliverResult{
		Data: orm.EncodeSequence(uint64(len(ids))),
		Tags: []common.KVPair{{Key: []byte(tagAction), Value: []byte("purge")}},
	}
	for _, id := range ids {
		res.Tags = append(res.Tags, common.KVPair{Key: []byte(tagProposalID), Value: orm.EncodeSequence(id)})
	}
	return res, nil
}

func (h PurgeExpiredHandler) validate(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*PurgeExpiredMsg, linera.Address, error) {
	var msg PurgeExpiredMsg
	if err := linera.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	addr, err := caller(ctx, db, h.auth, h.ctrl)
	if err != nil {
		return nil, nil, err
	}
	return &msg, addr, nil
}

// loadIDMsg loads a message referencing a proposal and returns the owner
// that signed it.
func loadIDMsg(ctx linera.Context, db linera.KVStore, tx linera.Tx, dest linera.Msg, auth x.Authenticator, ctrl *Controller) (linera.Address, error) {
	if err := linera.LoadMsg(tx, dest); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return caller(ctx, db, auth, ctrl)
}

func effectResult(effect *Effect, tags []common.KVPair) (*linera.DeliverResult, error) {
	raw, err := linera.Marshal(effect)
	if err != nil {
		return nil, err
	}
	return &linera.DeliverResult{Data: raw, Tags: tags}, nil
}
