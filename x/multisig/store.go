package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

const (
	pendingBucketName  = "msig_pend"
	archivedBucketName = "msig_arch"
)

// Validate checks the proposal record consistency.
func (m *Proposal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Kind", m.Kind.Validate())
	errs = errors.AppendField(errs, "Proposer", m.Proposer.Validate())
	errs = errors.AppendField(errs, "CreatedAt", m.CreatedAt.Validate())
	if m.ExpiresAt < m.CreatedAt {
		errs = errors.AppendField(errs, "ExpiresAt", errors.Wrap(errors.ErrModel, "before creation"))
	}
	if m.ExecutableAfter != 0 && m.ExecutableAfter < m.CreatedAt {
		errs = errors.AppendField(errs, "ExecutableAfter", errors.Wrap(errors.ErrModel, "before creation"))
	}
	return errs
}

// ProposalStore keeps pending proposals apart from the archive of executed
// ones. Records are keyed by their ID, encoded so that the key order is
// the ID order.
type ProposalStore struct {
	pending  orm.ModelBucket
	archived orm.ModelBucket
	ids      orm.Sequence
}

// NewProposalStore returns a store using the default buckets.
func NewProposalStore() ProposalStore {
	return ProposalStore{
		pending:  orm.NewModelBucket(pendingBucketName, &Proposal{}),
		archived: orm.NewModelBucket(archivedBucketName, &Proposal{}),
		ids:      orm.NewSequence(pendingBucketName, "id"),
	}
}

// NextID allocates a proposal ID. IDs start at zero and never repeat.
func (s ProposalStore) NextID(db linera.KVStore) (uint64, error) {
	return s.ids.NextInt(db)
}

// PeekID returns the ID the next proposal gets.
func (s ProposalStore) PeekID(db linera.ReadOnlyKVStore) (uint64, error) {
	return s.ids.Current(db)
}

// Pending returns the pending proposal with given ID.
func (s ProposalStore) Pending(db linera.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	var p Proposal
	if err := s.pending.One(db, orm.EncodeSequence(id), &p); err != nil {
		return nil, errors.Wrapf(err, "proposal %d", id)
	}
	return &p, nil
}

// Archived returns the executed proposal with given ID.
func (s ProposalStore) Archived(db linera.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	var p Proposal
	if err := s.archived.One(db, orm.EncodeSequence(id), &p); err != nil {
		return nil, errors.Wrapf(err, "executed proposal %d", id)
	}
	return &p, nil
}

// Lookup returns the pending proposal with given ID. ErrAlreadyExecuted is
// returned if the proposal was executed and ErrNotFound if it never existed
// or was purged.
func (s ProposalStore) Lookup(db linera.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	p, err := s.Pending(db, id)
	if err == nil {
		return p, nil
	}
	if !errors.ErrNotFound.Is(err) {
		return nil, err
	}
	switch ok, herr := s.archived.Has(db, orm.EncodeSequence(id)); {
	case herr != nil:
		return nil, herr
	case ok:
		return nil, errors.Wrapf(ErrAlreadyExecuted, "proposal %d", id)
	default:
		return nil, err
	}
}

// SavePending stores the proposal among the pending ones.
func (s ProposalStore) SavePending(db linera.KVStore, p *Proposal) error {
	if p.Executed {
		return errors.Wrapf(errors.ErrHuman, "proposal %d is executed", p.ID)
	}
	return s.pending.Put(db, orm.EncodeSequence(p.ID), p)
}

// Archive marks the proposal executed and moves it out of the pending set.
// Archived records are never modified again.
func (s ProposalStore) Archive(db linera.KVStore, p *Proposal) error {
	key := orm.EncodeSequence(p.ID)
	if ok, err := s.archived.Has(db, key); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(ErrAlreadyExecuted, "proposal %d", p.ID)
	}
	if err := s.pending.Delete(db, key); err != nil {
		return errors.Wrapf(err, "proposal %d", p.ID)
	}
	p.Executed = true
	return s.archived.Put(db, key, p)
}

// DeletePending removes a pending proposal.
func (s ProposalStore) DeletePending(db linera.KVStore, id uint64) error {
	return s.pending.Delete(db, orm.EncodeSequence(id))
}

// VisitPending calls fn for all pending proposals in ID order.
func (s ProposalStore) VisitPending(db linera.ReadOnlyKVStore, fn func(*Proposal) error) error {
	return s.pending.Visit(db, func(key []byte, m orm.Model) error {
		p, ok := m.(*Proposal)
		if !ok {
			return errors.Wrapf(errors.ErrModel, "unexpected %T", m)
		}
		return fn(p)
	})
}
