package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

// Operation types name each action in the canonical message signed on the
// aggregated signature path.
const (
	OpTransfer        = "transfer"
	OpAddOwner        = "add_owner"
	OpRemoveOwner     = "remove_owner"
	OpReplaceOwner    = "replace_owner"
	OpChangeThreshold = "change_threshold"
	OpConfigChange    = "config_change"
)

// Action is an operation the vault owners authorize. The set of actions is
// closed: each one declares a static validation against the owner registry
// and an effect.
type Action interface {
	linera.Persistent

	// OperationType is the name of the action in the canonical message.
	OperationType() string

	// Validate checks the action without looking at the vault state.
	Validate() error

	// checkRegistry validates the action against the current owners.
	checkRegistry(reg *Registry) error

	// apply runs the effect of an authorized action.
	apply(env *effectEnv) (*Effect, error)
}

// Action returns the single action this kind holds.
func (m *ProposalKind) Action() (Action, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "proposal kind")
	}
	var found []Action
	if m.Transfer != nil {
		found = append(found, m.Transfer)
	}
	if m.AddOwner != nil {
		found = append(found, m.AddOwner)
	}
	if m.RemoveOwner != nil {
		found = append(found, m.RemoveOwner)
	}
	if m.ReplaceOwner != nil {
		found = append(found, m.ReplaceOwner)
	}
	if m.ChangeThreshold != nil {
		found = append(found, m.ChangeThreshold)
	}
	if m.ChangeConfig != nil {
		found = append(found, m.ChangeConfig)
	}
	switch len(found) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "proposal kind")
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "proposal kind holds %d actions", len(found))
	}
}

// Validate ensures the kind holds exactly one valid action.
func (m *ProposalKind) Validate() error {
	a, err := m.Action()
	if err != nil {
		return err
	}
	return a.Validate()
}

// NewProposalKind wraps given action.
func NewProposalKind(a Action) (*ProposalKind, error) {
	switch a := a.(type) {
	case *Transfer:
		return &ProposalKind{Transfer: a}, nil
	case *AddOwner:
		return &ProposalKind{AddOwner: a}, nil
	case *RemoveOwner:
		return &ProposalKind{RemoveOwner: a}, nil
	case *ReplaceOwner:
		return &ProposalKind{ReplaceOwner: a}, nil
	case *ChangeThreshold:
		return &ProposalKind{ChangeThreshold: a}, nil
	case *ChangeConfig:
		return &ProposalKind{ChangeConfig: a}, nil
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown action %T", a)
	}
}

// CanonicalMessage returns the message the aggregate key holders must sign
// to authorize given action with given nonce.
func CanonicalMessage(nonce uint64, a Action) ([]byte, error) {
	data, err := linera.Marshal(a)
	if err != nil {
		return nil, err
	}
	return sigs.CanonicalMessage(nonce, a.OperationType(), data), nil
}

var (
	_ Action = (*Transfer)(nil)
	_ Action = (*AddOwner)(nil)
	_ Action = (*RemoveOwner)(nil)
	_ Action = (*ReplaceOwner)(nil)
	_ Action = (*ChangeThreshold)(nil)
	_ Action = (*ChangeConfig)(nil)
)

func (*Transfer) OperationType() string { return OpTransfer }

func (m *Transfer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "To", m.To.Validate())
	if m.To.Equals(VaultAddress) {
		errs = errors.AppendField(errs, "To", errors.Wrap(errors.ErrInput, "transfer to the vault itself"))
	}
	if m.Value == 0 {
		errs = errors.AppendField(errs, "Value", errors.Wrap(errors.ErrAmount, "transfer amount must be greater than 0"))
	}
	return errs
}

func (m *Transfer) checkRegistry(*Registry) error {
	return nil
}

func (m *Transfer) apply(env *effectEnv) (*Effect, error) {
	if err := env.transfer(m.To, m.Value); err != nil {
		return nil, err
	}
	return &Effect{
		OperationType: OpTransfer,
		To:            m.To,
		Value:         m.Value,
		Payload:       m.Payload,
	}, nil
}

func (*AddOwner) OperationType() string { return OpAddOwner }

func (m *AddOwner) Validate() error {
	return errors.AppendField(nil, "Owner", m.Owner.Validate())
}

func (m *AddOwner) checkRegistry(reg *Registry) error {
	if reg.Has(m.Owner) {
		return errors.Wrapf(errors.ErrDuplicate, "owner %s already exists", m.Owner)
	}
	if len(reg.Owners) >= MaxOwners {
		return errors.Wrapf(errors.ErrInput, "at most %d owners allowed", MaxOwners)
	}
	return nil
}

func (m *AddOwner) apply(env *effectEnv) (*Effect, error) {
	env.registry.add(m.Owner)
	env.registryChanged = true
	return &Effect{OperationType: OpAddOwner}, nil
}

func (*RemoveOwner) OperationType() string { return OpRemoveOwner }

func (m *RemoveOwner) Validate() error {
	return errors.AppendField(nil, "Owner", m.Owner.Validate())
}

func (m *RemoveOwner) checkRegistry(reg *Registry) error {
	if !reg.Has(m.Owner) {
		return errors.Wrapf(errors.ErrNotFound, "owner %s does not exist", m.Owner)
	}
	if uint64(len(reg.Owners)-1) < reg.Threshold {
		return errors.Wrapf(errors.ErrInput,
			"cannot remove owner: %d owners would remain with threshold %d",
			len(reg.Owners)-1, reg.Threshold)
	}
	return nil
}

func (m *RemoveOwner) apply(env *effectEnv) (*Effect, error) {
	env.registry.remove(m.Owner)
	env.registryChanged = true
	return &Effect{OperationType: OpRemoveOwner}, nil
}

func (*ReplaceOwner) OperationType() string { return OpReplaceOwner }

func (m *ReplaceOwner) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Old", m.Old.Validate())
	errs = errors.AppendField(errs, "New", m.New.Validate())
	if m.Old.Equals(m.New) {
		errs = errors.AppendField(errs, "New", errors.Wrap(errors.ErrInput, "same as the replaced owner"))
	}
	return errs
}

func (m *ReplaceOwner) checkRegistry(reg *Registry) error {
	if !reg.Has(m.Old) {
		return errors.Wrapf(errors.ErrNotFound, "owner %s does not exist", m.Old)
	}
	if reg.Has(m.New) {
		return errors.Wrapf(errors.ErrDuplicate, "owner %s already exists", m.New)
	}
	return nil
}

func (m *ReplaceOwner) apply(env *effectEnv) (*Effect, error) {
	env.registry.replace(m.Old, m.New)
	env.registryChanged = true
	return &Effect{OperationType: OpReplaceOwner}, nil
}

func (*ChangeThreshold) OperationType() string { return OpChangeThreshold }

func (m *ChangeThreshold) Validate() error {
	if m.Threshold == 0 {
		return errors.Field("Threshold", errors.ErrInput, "threshold cannot be zero")
	}
	return nil
}

func (m *ChangeThreshold) checkRegistry(reg *Registry) error {
	return validateThreshold(m.Threshold, len(reg.Owners))
}

func (m *ChangeThreshold) apply(env *effectEnv) (*Effect, error) {
	env.registry.Threshold = m.Threshold
	env.registryChanged = true
	return &Effect{OperationType: OpChangeThreshold}, nil
}

func (*ChangeConfig) OperationType() string { return OpConfigChange }

func (m *ChangeConfig) Validate() error {
	reg := Registry{Owners: m.Owners, Threshold: m.Threshold}
	if err := reg.Validate(); err != nil {
		return err
	}
	if len(m.AggregateKey) != sigs.AggregateKeySize {
		return errors.Field("AggregateKey", errors.ErrInput, "must be %d bytes", sigs.AggregateKeySize)
	}
	return nil
}

// checkRegistry accepts any registry, the action replaces it as a whole.
func (m *ChangeConfig) checkRegistry(*Registry) error {
	return nil
}

func (m *ChangeConfig) apply(env *effectEnv) (*Effect, error) {
	env.registry = (&Registry{Owners: m.Owners, Threshold: m.Threshold}).Clone()
	env.registryChanged = true
	env.conf.AggregateKey = append([]byte(nil), m.AggregateKey...)
	env.confChanged = true
	return &Effect{OperationType: OpConfigChange}, nil
}
