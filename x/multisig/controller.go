package multisig

import (
	"bytes"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/x/cash"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

// VaultAddress holds the funds governed by the owners.
var VaultAddress = linera.NewCondition("multisig", "vault", []byte("vault")).Address()

// Controller runs the proposal lifecycle: submission, confirmation,
// revocation and execution, as well as the aggregated signature path.
//
// All methods expect the operation time to be set in the context and must
// run inside a single atomic store transaction. A method returning an error
// may have written partial changes that the caller must discard.
type Controller struct {
	cash      cash.Controller
	registry  RegistryBucket
	ledger    ConfirmationLedger
	proposals ProposalStore
}

// NewController returns a controller moving funds with given cash
// controller.
func NewController(cashCtrl cash.Controller) *Controller {
	return &Controller{
		cash:      cashCtrl,
		registry:  NewRegistryBucket(),
		ledger:    NewConfirmationLedger(),
		proposals: NewProposalStore(),
	}
}

// Submit creates a proposal for given kind and records the proposer
// confirmation.
func (c *Controller) Submit(ctx linera.Context, db linera.KVStore, caller linera.Address, kind *ProposalKind) (*Proposal, error) {
	reg, err := c.requireOwner(db, caller)
	if err != nil {
		return nil, err
	}
	action, err := kind.Action()
	if err != nil {
		return nil, err
	}
	if _, ok := action.(*ChangeConfig); ok {
		return nil, errors.Wrap(errors.ErrInput, "configuration change requires an aggregated signature")
	}
	if err := action.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid proposal")
	}
	if err := action.checkRegistry(reg); err != nil {
		return nil, errors.Wrap(err, "invalid proposal")
	}
	now, err := linera.CurrentTime(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return nil, err
	}
	expires, err := now.AddSeconds(conf.Lifetime())
	if err != nil {
		return nil, err
	}

	id, err := c.proposals.NextID(db)
	if err != nil {
		return nil, errors.Wrap(err, "proposal id")
	}
	p := &Proposal{
		ID:        id,
		Kind:      kind,
		Proposer:  caller,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	if err := c.confirm(ctx, db, reg, conf, p, caller, now); err != nil {
		return nil, err
	}

	linera.GetLogger(ctx).Info("proposal submitted",
		"id", id, "kind", action.OperationType(), "proposer", caller, "expires_at", expires)
	return p, nil
}

// Confirm adds the caller confirmation and returns the confirmation count.
// Confirming twice is not an error and leaves the count unchanged.
func (c *Controller) Confirm(ctx linera.Context, db linera.KVStore, caller linera.Address, id uint64) (uint64, error) {
	reg, err := c.requireOwner(db, caller)
	if err != nil {
		return 0, err
	}
	p, err := c.proposals.Lookup(db, id)
	if err != nil {
		return 0, err
	}
	now, err := linera.CurrentTime(ctx)
	if err != nil {
		return 0, err
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return 0, err
	}
	if err := c.confirm(ctx, db, reg, conf, p, caller, now); err != nil {
		return 0, err
	}
	return p.ConfirmationCount, nil
}

// confirm records the confirmation of a pending proposal, arms the time
// delay once the threshold is reached and saves the proposal.
func (c *Controller) confirm(ctx linera.Context, db linera.KVStore, reg *Registry, conf *Configuration, p *Proposal, caller linera.Address, now linera.Timestamp) error {
	log := linera.GetLogger(ctx)

	added, err := c.ledger.Confirm(db, caller, p.ID)
	if err != nil {
		return err
	}
	if added {
		p.ConfirmationCount++
		log.Info("proposal confirmed", "id", p.ID, "owner", caller, "total", p.ConfirmationCount)
	} else {
		log.Info("proposal already confirmed", "id", p.ID, "owner", caller, "duplicate", true)
	}

	if conf.TimeDelay > 0 && p.ExecutableAfter == 0 && p.ConfirmationCount >= reg.Threshold {
		after, err := now.AddSeconds(conf.TimeDelay)
		if err != nil {
			return err
		}
		p.ExecutableAfter = after
		log.Info("proposal reached threshold",
			"id", p.ID, "delay", conf.TimeDelay, "executable_after", after)
	}
	return c.proposals.SavePending(db, p)
}

// Revoke withdraws the caller confirmation. Revoking a proposal the caller
// never confirmed is not an error. An armed time delay is kept.
func (c *Controller) Revoke(ctx linera.Context, db linera.KVStore, caller linera.Address, id uint64) error {
	if _, err := c.requireOwner(db, caller); err != nil {
		return err
	}
	p, err := c.proposals.Lookup(db, id)
	if err != nil {
		return err
	}
	log := linera.GetLogger(ctx)

	removed, err := c.ledger.Revoke(db, caller, id)
	if err != nil {
		return err
	}
	if !removed {
		log.Info("nothing to revoke", "id", id, "owner", caller, "duplicate", true)
		return nil
	}
	if p.ConfirmationCount > 0 {
		p.ConfirmationCount--
	}
	if err := c.proposals.SavePending(db, p); err != nil {
		return err
	}
	log.Info("confirmation revoked", "id", id, "owner", caller, "total", p.ConfirmationCount)
	return nil
}

// Execute runs the effect of an approved proposal and archives it.
func (c *Controller) Execute(ctx linera.Context, db linera.KVStore, caller linera.Address, id uint64) (*Effect, error) {
	reg, err := c.requireOwner(db, caller)
	if err != nil {
		return nil, err
	}
	p, err := c.proposals.Lookup(db, id)
	if err != nil {
		return nil, err
	}
	now, err := linera.CurrentTime(ctx)
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

	action, err := p.Kind.Action()
	if err != nil {
		return nil, err
	}
	// The registry may have changed since the submission.
	if err := action.checkRegistry(reg); err != nil {
		return nil, errors.Wrapf(err, "proposal %d", id)
	}
	effect, err := c.apply(ctx, db, reg, conf, action)
	if err != nil {
		return nil, err
	}
	if err := c.proposals.Archive(db, p); err != nil {
		return nil, err
	}

	linera.GetLogger(ctx).Info("proposal executed", "id", id, "owner", caller, "kind", action.OperationType())
	return effect, nil
}

// CheckExecutable returns an error unless the proposal can be executed at
// given time.
func CheckExecutable(p *Proposal, reg *Registry, conf *Configuration, now linera.Timestamp) error {
	if p.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "proposal %d", p.ID)
	}
	if now > p.ExpiresAt {
		return errors.Wrapf(ErrExpired, "current time %d > expiration %d", now, p.ExpiresAt)
	}
	if p.ConfirmationCount < reg.Threshold {
		return errors.Wrapf(&ConfirmationsError{Required: reg.Threshold, Actual: p.ConfirmationCount}, "proposal %d", p.ID)
	}
	if conf.TimeDelay > 0 {
		// A proposal that met the threshold only after a threshold
		// change was never armed and waits the full delay.
		if p.ExecutableAfter == 0 {
			return errors.Wrapf(&DelayError{Remaining: conf.TimeDelay, Now: now}, "proposal %d", p.ID)
		}
		if now < p.ExecutableAfter {
			return errors.Wrapf(&DelayError{
				Remaining:       now.SecondsUntil(p.ExecutableAfter),
				ExecutableAfter: p.ExecutableAfter,
				Now:             now,
			}, "proposal %d", p.ID)
		}
	}
	return nil
}

// ExecuteWithSignature runs an action authorized by an aggregated signature
// made with the vault aggregate key over the canonical message of the
// action and the current nonce. The nonce advances only on success.
func (c *Controller) ExecuteWithSignature(ctx linera.Context, db linera.KVStore, nonce uint64, message, signature []byte, kind *ProposalKind) (*Effect, error) {
	if err := sigs.CheckNonce(db, nonce); err != nil {
		return nil, err
	}
	action, err := kind.Action()
	if err != nil {
		return nil, err
	}
	if err := action.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid operation")
	}
	want, err := CanonicalMessage(nonce, action)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(message, want) {
		return nil, errors.Wrap(errors.ErrSignature, "message does not describe the operation")
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return nil, err
	}
	if !sigs.Verify(conf.AggregateKey, message, signature) {
		return nil, errors.Wrap(errors.ErrSignature, "invalid aggregated signature")
	}

	reg, err := c.registry.Load(db)
	if err != nil {
		return nil, err
	}
	if err := action.checkRegistry(reg); err != nil {
		return nil, errors.Wrap(err, "invalid operation")
	}
	effect, err := c.apply(ctx, db, reg, conf, action)
	if err != nil {
		return nil, err
	}
	next, err := sigs.IncrementNonce(db)
	if err != nil {
		return nil, err
	}

	linera.GetLogger(ctx).Info("signed operation executed",
		"nonce", nonce, "next_nonce", next, "kind", action.OperationType())
	return effect, nil
}

// PurgeExpired deletes at most limit pending proposals that expired before
// now. Proposals that can still be executed are never touched. It returns
// the IDs of the deleted proposals.
func (c *Controller) PurgeExpired(ctx linera.Context, db linera.KVStore, caller linera.Address, limit uint64) ([]uint64, error) {
	if _, err := c.requireOwner(db, caller); err != nil {
		return nil, err
	}
	now, err := linera.CurrentTime(ctx)
	if err != nil {
		return nil, err
	}

	var expired []uint64
	err = c.proposals.VisitPending(db, func(p *Proposal) error {
		if uint64(len(expired)) < limit && p.ExpiresAt < now {
			expired = append(expired, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, id := range expired {
		if err := c.proposals.DeletePending(db, id); err != nil {
			return nil, err
		}
	}

	linera.GetLogger(ctx).Info("expired proposals purged", "owner", caller, "count", len(expired))
	return expired, nil
}

// effectEnv is what an action effect can change.
type effectEnv struct {
	ctx  linera.Context
	db   linera.KVStore
	cash cash.Controller

	registry        *Registry
	registryChanged bool
	conf            *Configuration
	confChanged     bool
}

// transfer moves funds out of the vault, ensuring the vault balance
// strictly decreased.
func (e *effectEnv) transfer(to linera.Address, value uint64) error {
	before, err := e.cash.Balance(e.db, VaultAddress)
	if err != nil {
		return err
	}
	if before < value {
		return errors.Wrapf(errors.ErrInsufficientAmount, "required=%d, available=%d", value, before)
	}
	if err := e.cash.MoveCoins(e.db, VaultAddress, to, value); err != nil {
		return err
	}
	after, err := e.cash.Balance(e.db, VaultAddress)
	if err != nil {
		return err
	}
	if after >= before {
		return errors.Wrapf(errors.ErrHuman, "vault balance did not decrease: %d -> %d", before, after)
	}
	linera.GetLogger(e.ctx).Info("funds transferred", "to", to, "value", value)
	return nil
}

func (c *Controller) apply(ctx linera.Context, db linera.KVStore, reg *Registry, conf *Configuration, a Action) (*Effect, error) {
	env := &effectEnv{
		ctx:      ctx,
		db:       db,
		cash:     c.cash,
		registry: reg.Clone(),
		conf:     conf,
	}
	effect, err := a.apply(env)
	if err != nil {
		return nil, err
	}
	if env.registryChanged {
		for _, owner := range reg.Owners {
			if env.registry.Has(owner) {
				continue
			}
			if err := c.dropConfirmations(ctx, db, owner); err != nil {
				return nil, err
			}
		}
		if err := c.registry.Save(db, env.registry); err != nil {
			return nil, errors.Wrap(err, "owner registry")
		}
		effect.Registry = env.registry
		linera.GetLogger(ctx).Info("owner registry changed",
			"owners", len(env.registry.Owners), "threshold", env.registry.Threshold)
	}
	if env.confChanged {
		if err := SaveConfig(db, env.conf); err != nil {
			return nil, err
		}
	}
	return effect, nil
}

// dropConfirmations withdraws every confirmation of a removed owner so that
// no pending proposal counts more confirmations than there are owners.
// Executed proposals keep the count they were executed with.
func (c *Controller) dropConfirmations(ctx linera.Context, db linera.KVStore, owner linera.Address) error {
	ids, err := c.ledger.Forget(db, owner)
	if err != nil {
		return err
	}
	log := linera.GetLogger(ctx)
	for _, id := range ids {
		p, err := c.proposals.Pending(db, id)
		switch {
		case errors.ErrNotFound.Is(err):
			continue
		case err != nil:
			return err
		}
		if p.ConfirmationCount > 0 {
			p.ConfirmationCount--
		}
		if err := c.proposals.SavePending(db, p); err != nil {
			return err
		}
		log.Info("confirmation dropped", "id", id, "owner", owner, "total", p.ConfirmationCount)
	}
	return nil
}

// requireOwner loads the registry and ensures the caller is an owner.
func (c *Controller) requireOwner(db linera.ReadOnlyKVStore, caller linera.Address) (*Registry, error) {
	if len(caller) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller not authenticated")
	}
	reg, err := c.registry.Load(db)
	if err != nil {
		return nil, err
	}
	if !reg.Has(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	return reg, nil
}

// Registry returns the current owner registry.
func (c *Controller) Registry(db linera.ReadOnlyKVStore) (*Registry, error) {
	return c.registry.Load(db)
}

// Pending returns a pending proposal.
func (c *Controller) Pending(db linera.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	return c.proposals.Pending(db, id)
}

// Archived returns an executed proposal.
func (c *Controller) Archived(db linera.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	return c.proposals.Archived(db, id)
}

// Confirmations returns the IDs of the proposals given owner confirmed.
func (c *Controller) Confirmations(db linera.ReadOnlyKVStore, owner linera.Address) ([]uint64, error) {
	return c.ledger.IDs(db, owner)
}
