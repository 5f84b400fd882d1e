package multisig

import (
	"bytes"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

func TestTransferTwoOfThree(t *testing.T) {
	f := newFixture(t, 3, 2, nil, 1000)
	a, b, c := f.owners[0], f.owners[1], f.owners[2]
	recipient := vaulttest.NewCondition().Address()

	p, err := f.submit(t0, a, &Transfer{To: recipient, Value: 100, Payload: []byte("rent")})
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), p.ID)
	assert.Equal(t, uint64(1), p.ConfirmationCount)
	assert.Equal(t, t0+seconds(int64(DefaultProposalLifetime)), p.ExpiresAt)

	_, err = f.execute(t0+seconds(1), a, p.ID)
	assert.IsErr(t, ErrInsufficientConfirmations, err)
	cerr, ok := AsConfirmationsError(err)
	if !ok {
		t.Fatalf("no confirmations details in %+v", err)
	}
	assert.Equal(t, uint64(2), cerr.Required)
	assert.Equal(t, uint64(1), cerr.Actual)

	count, err := f.confirm(t0+seconds(2), b, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), count)

	effect, err := f.execute(t0+seconds(3), c, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, OpTransfer, effect.OperationType)
	assert.Equal(t, uint64(100), effect.Value)
	assert.Equal(t, []byte("rent"), effect.Payload)

	assert.Equal(t, uint64(900), f.balance(t, VaultAddress))
	assert.Equal(t, uint64(100), f.balance(t, recipient))

	archived, err := f.ctrl.Archived(f.db, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, true, archived.Executed)
	_, err = f.ctrl.Pending(f.db, p.ID)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = f.execute(t0+seconds(4), a, p.ID)
	assert.IsErr(t, ErrAlreadyExecuted, err)
	_, err = f.confirm(t0+seconds(4), c, p.ID)
	assert.IsErr(t, ErrAlreadyExecuted, err)
	assert.IsErr(t, ErrAlreadyExecuted, f.revoke(t0+seconds(4), a, p.ID))
	assert.Equal(t, uint64(900), f.balance(t, VaultAddress))
}

func TestAddOwnerWithTimeDelay(t *testing.T) {
	f := newFixture(t, 3, 2, &Configuration{TimeDelay: 3600}, 0)
	a, b := f.owners[0], f.owners[1]
	newOwner := vaulttest.NewCondition().Address()

	p, err := f.submit(t0, a, &AddOwner{Owner: newOwner})
	assert.Nil(t, err)
	assert.Equal(t, linera.Timestamp(0), p.ExecutableAfter)

	_, err = f.confirm(t0+seconds(10), b, p.ID)
	assert.Nil(t, err)
	armed := f.pending(t, p.ID).ExecutableAfter
	assert.Equal(t, t0+seconds(3610), armed)

	_, err = f.execute(t0+seconds(20), a, p.ID)
	assert.IsErr(t, ErrTimeDelayNotMet, err)
	derr, ok := AsDelayError(err)
	if !ok {
		t.Fatalf("no delay details in %+v", err)
	}
	assert.Equal(t, uint64(3590), derr.Remaining)
	assert.Equal(t, armed, derr.ExecutableAfter)

	// revoking below the threshold never disarms the delay
	assert.Nil(t, f.revoke(t0+seconds(30), b, p.ID))
	assert.Equal(t, armed, f.pending(t, p.ID).ExecutableAfter)
	_, err = f.confirm(t0+seconds(40), b, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, armed, f.pending(t, p.ID).ExecutableAfter)

	effect, err := f.execute(t0+seconds(3610), a, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, OpAddOwner, effect.OperationType)

	reg := f.registry(t)
	assert.Equal(t, 4, len(reg.Owners))
	assert.Equal(t, newOwner, reg.Owners[3])
	assert.Equal(t, reg, effect.Registry)
}

func TestSignatureBitFlip(t *testing.T) {
	priv := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{42}, 32))
	f := newFixture(t, 3, 2, &Configuration{AggregateKey: priv.PublicKey().Ed25519}, 500)
	recipient := vaulttest.NewCondition().Address()
	action := &Transfer{To: recipient, Value: 50}

	msg, err := CanonicalMessage(0, action)
	assert.Nil(t, err)
	sig, err := priv.Sign(msg)
	assert.Nil(t, err)

	flipped := append([]byte(nil), sig.Ed25519...)
	flipped[10] ^= 0x04
	_, err = f.executeSigned(t0, 0, msg, flipped, action)
	assert.IsErr(t, errors.ErrSignature, err)
	nonce, err := sigs.CurrentNonce(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), nonce)
	assert.Equal(t, uint64(500), f.balance(t, VaultAddress))

	// a valid signature over another operation does not authorize this one
	other := &Transfer{To: recipient, Value: 500}
	_, err = f.executeSigned(t0, 0, msg, sig.Ed25519, other)
	assert.IsErr(t, errors.ErrSignature, err)

	effect, err := f.executeSigned(t0, 0, msg, sig.Ed25519, action)
	assert.Nil(t, err)
	assert.Equal(t, uint64(50), effect.Value)
	assert.Equal(t, uint64(50), f.balance(t, recipient))

	nonce, err = sigs.CurrentNonce(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), nonce)

	// replay is refused before any signature check
	_, err = f.executeSigned(t0, 0, msg, sig.Ed25519, action)
	assert.IsErr(t, sigs.ErrInvalidNonce, err)
	assert.Equal(t, true, IsStateErr(err))
	assert.Equal(t, uint64(50), f.balance(t, recipient))
}

func TestChangeConfigWithSignature(t *testing.T) {
	oldKey := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{1}, 32))
	newKey := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{2}, 32))
	f := newFixture(t, 2, 2, &Configuration{AggregateKey: oldKey.PublicKey().Ed25519, TimeDelay: 60}, 0)

	owners := []linera.Address{vaulttest.NewCondition().Address(), vaulttest.NewCondition().Address()}
	action := &ChangeConfig{Owners: owners, Threshold: 1, AggregateKey: newKey.PublicKey().Ed25519}

	// not available on the proposal path
	_, err := f.submit(t0, f.owners[0], action)
	assert.IsErr(t, errors.ErrInput, err)

	msg, err := CanonicalMessage(0, action)
	assert.Nil(t, err)
	sig, err := oldKey.Sign(msg)
	assert.Nil(t, err)
	effect, err := f.executeSigned(t0, 0, msg, sig.Ed25519, action)
	assert.Nil(t, err)
	assert.Equal(t, OpConfigChange, effect.OperationType)

	reg := f.registry(t)
	assert.Equal(t, owners, reg.Owners)
	assert.Equal(t, uint64(1), reg.Threshold)

	conf, err := LoadConfig(f.db)
	assert.Nil(t, err)
	assert.Equal(t, newKey.PublicKey().Ed25519, conf.AggregateKey)
	assert.Equal(t, uint64(60), conf.TimeDelay)

	// the old key is no longer accepted
	next := &ChangeThreshold{Threshold: 2}
	msg, err = CanonicalMessage(1, next)
	assert.Nil(t, err)
	sig, err = oldKey.Sign(msg)
	assert.Nil(t, err)
	_, err = f.executeSigned(t0, 1, msg, sig.Ed25519, next)
	assert.IsErr(t, errors.ErrSignature, err)

	sig, err = newKey.Sign(msg)
	assert.Nil(t, err)
	_, err = f.executeSigned(t0, 1, msg, sig.Ed25519, next)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), f.registry(t).Threshold)
}

func TestSignaturePathWithoutAggregateKey(t *testing.T) {
	f := newFixture(t, 1, 1, nil, 10)
	priv := crypto.GenPrivKeyEd25519()
	action := &Transfer{To: vaulttest.NewCondition().Address(), Value: 1}
	msg, err := CanonicalMessage(0, action)
	assert.Nil(t, err)
	sig, err := priv.Sign(msg)
	assert.Nil(t, err)

	_, err = f.executeSigned(t0, 0, msg, sig.Ed25519, action)
	assert.IsErr(t, errors.ErrSignature, err)
}

func TestSubmitValidation(t *testing.T) {
	stranger := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		owners    int
		threshold uint64
		caller    func(owners []linera.Address) linera.Address
		action    func(owners []linera.Address) Action
		wantErr   *errors.Error
	}{
		"transfer": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &Transfer{To: stranger, Value: 1}
			},
		},
		"not an owner": {
			owners:    2,
			threshold: 1,
			caller:    func([]linera.Address) linera.Address { return stranger },
			action: func([]linera.Address) Action {
				return &Transfer{To: stranger, Value: 1}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"anonymous": {
			owners:    2,
			threshold: 1,
			caller:    func([]linera.Address) linera.Address { return nil },
			action: func([]linera.Address) Action {
				return &Transfer{To: stranger, Value: 1}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"zero transfer": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &Transfer{To: stranger, Value: 0}
			},
			wantErr: errors.ErrAmount,
		},
		"transfer to the vault": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &Transfer{To: VaultAddress, Value: 5}
			},
			wantErr: errors.ErrInput,
		},
		"add existing owner": {
			owners:    2,
			threshold: 1,
			action: func(o []linera.Address) Action {
				return &AddOwner{Owner: o[1]}
			},
			wantErr: errors.ErrDuplicate,
		},
		"add owner": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &AddOwner{Owner: stranger}
			},
		},
		"remove unknown owner": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &RemoveOwner{Owner: stranger}
			},
			wantErr: errors.ErrNotFound,
		},
		"remove owner would break the threshold": {
			owners:    3,
			threshold: 3,
			action: func(o []linera.Address) Action {
				return &RemoveOwner{Owner: o[2]}
			},
			wantErr: errors.ErrInput,
		},
		"remove owner keeping the threshold": {
			owners:    3,
			threshold: 2,
			action: func(o []linera.Address) Action {
				return &RemoveOwner{Owner: o[2]}
			},
		},
		"replace unknown owner": {
			owners:    2,
			threshold: 1,
			action: func(o []linera.Address) Action {
				return &ReplaceOwner{Old: stranger, New: vaulttest.NewCondition().Address()}
			},
			wantErr: errors.ErrNotFound,
		},
		"replace with an existing owner": {
			owners:    2,
			threshold: 1,
			action: func(o []linera.Address) Action {
				return &ReplaceOwner{Old: o[0], New: o[1]}
			},
			wantErr: errors.ErrDuplicate,
		},
		"replace owner": {
			owners:    2,
			threshold: 1,
			action: func(o []linera.Address) Action {
				return &ReplaceOwner{Old: o[1], New: stranger}
			},
		},
		"zero threshold": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &ChangeThreshold{Threshold: 0}
			},
			wantErr: errors.ErrInput,
		},
		"threshold above owner count": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &ChangeThreshold{Threshold: 3}
			},
			wantErr: errors.ErrInput,
		},
		"threshold equal to owner count": {
			owners:    2,
			threshold: 1,
			action: func([]linera.Address) Action {
				return &ChangeThreshold{Threshold: 2}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, tc.owners, tc.threshold, nil, 0)
			caller := f.owners[0]
			if tc.caller != nil {
				caller = tc.caller(f.owners)
			}
			_, err := f.submit(t0, caller, tc.action(f.owners))
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)

			// nothing was written, the ID was not consumed
			id, err := f.ctrl.proposals.PeekID(f.db)
			assert.Nil(t, err)
			assert.Equal(t, uint64(0), id)
		})
	}
}

func TestConfirmAndRevoke(t *testing.T) {
	f := newFixture(t, 3, 3, nil, 0)
	a, b, c := f.owners[0], f.owners[1], f.owners[2]

	p, err := f.submit(t0, a, &ChangeThreshold{Threshold: 2})
	assert.Nil(t, err)

	// duplicate confirmation of the proposer
	count, err := f.confirm(t0, a, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), count)

	count, err = f.confirm(t0, b, p.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), count)

	// revoke of a never given confirmation is a no-op
	assert.Nil(t, f.revoke(t0, c, p.ID))
	assert.Equal(t, uint64(2), f.pending(t, p.ID).ConfirmationCount)

	assert.Nil(t, f.revoke(t0, b, p.ID))
	assert.Equal(t, uint64(1), f.pending(t, p.ID).ConfirmationCount)
	assert.Nil(t, f.revoke(t0, b, p.ID))
	assert.Equal(t, uint64(1), f.pending(t, p.ID).ConfirmationCount)

	ids, err := f.ctrl.Confirmations(f.db, a)
	assert.Nil(t, err)
	assert.Equal(t, []uint64{p.ID}, ids)
	ids, err = f.ctrl.Confirmations(f.db, b)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(ids))

	_, err = f.confirm(t0, vaulttest.NewCondition().Address(), p.ID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = f.confirm(t0, b, 99)
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.IsErr(t, errors.ErrNotFound, f.revoke(t0, b, 99))
}

func TestExecuteExpired(t *testing.T) {
	f := newFixture(t, 1, 1, &Configuration{ProposalLifetime: 100}, 0)
	a := f.owners[0]

	p, err := f.submit(t0, a, &ChangeThreshold{Threshold: 1})
	assert.Nil(t, err)
	assert.Equal(t, t0+seconds(100), p.ExpiresAt)

	// expiration is inclusive
	_, err = f.execute(t0+seconds(100)+1, a, p.ID)
	assert.IsErr(t, ErrExpired, err)
	assert.Equal(t, true, IsStateErr(err))
	_, err = f.execute(t0+seconds(1000), a, p.ID)
	assert.IsErr(t, ErrExpired, err)

	p2, err := f.submit(t0, a, &ChangeThreshold{Threshold: 1})
	assert.Nil(t, err)
	_, err = f.execute(t0+seconds(100), a, p2.ID)
	assert.Nil(t, err)
}

func TestExecuteRevalidatesAgainstRegistry(t *testing.T) {
	f := newFixture(t, 3, 1, nil, 0)
	a := f.owners[0]
	candidate := vaulttest.NewCondition().Address()

	first, err := f.submit(t0, a, &AddOwner{Owner: candidate})
	assert.Nil(t, err)
	second, err := f.submit(t0, a, &AddOwner{Owner: candidate})
	assert.Nil(t, err)

	_, err = f.execute(t0, a, first.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0, a, second.ID)
	assert.IsErr(t, errors.ErrDuplicate, err)
	assert.Equal(t, 4, len(f.registry(t).Owners))

	// failed execution leaves the proposal pending
	assert.Equal(t, false, f.pending(t, second.ID).Executed)
}

func TestRemovedOwnerLosesAccess(t *testing.T) {
	f := newFixture(t, 3, 1, nil, 0)
	a, b := f.owners[0], f.owners[1]

	p, err := f.submit(t0, a, &RemoveOwner{Owner: b})
	assert.Nil(t, err)
	_, err = f.execute(t0, a, p.ID)
	assert.Nil(t, err)

	reg := f.registry(t)
	assert.Equal(t, []linera.Address{f.owners[0], f.owners[2]}, reg.Owners)

	_, err = f.submit(t0, b, &ChangeThreshold{Threshold: 1})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestReplaceOwnerKeepsPosition(t *testing.T) {
	f := newFixture(t, 3, 2, nil, 0)
	a, b := f.owners[0], f.owners[1]
	fresh := vaulttest.NewCondition().Address()

	p, err := f.submit(t0, a, &ReplaceOwner{Old: b, New: fresh})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, p.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0, b, p.ID)
	assert.Nil(t, err)

	assert.Equal(t, []linera.Address{f.owners[0], fresh, f.owners[2]}, f.registry(t).Owners)
}

func TestTransferInsufficientFunds(t *testing.T) {
	f := newFixture(t, 1, 1, nil, 10)
	a := f.owners[0]
	recipient := vaulttest.NewCondition().Address()

	p, err := f.submit(t0, a, &Transfer{To: recipient, Value: 11})
	assert.Nil(t, err)
	_, err = f.execute(t0, a, p.ID)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	assert.Equal(t, uint64(10), f.balance(t, VaultAddress))
	assert.Equal(t, false, f.pending(t, p.ID).Executed)
}

func TestDelayArmedAfterThresholdChange(t *testing.T) {
	f := newFixture(t, 3, 3, &Configuration{TimeDelay: 10}, 0)
	a, b := f.owners[0], f.owners[1]

	pending, err := f.submit(t0, a, &AddOwner{Owner: vaulttest.NewCondition().Address()})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, pending.ID)
	assert.Nil(t, err)

	lower, err := f.submit(t0, a, &ChangeThreshold{Threshold: 2})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, lower.ID)
	assert.Nil(t, err)
	_, err = f.confirm(t0, f.owners[2], lower.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0+seconds(10), a, lower.ID)
	assert.Nil(t, err)

	// the threshold is met but the delay never started
	_, err = f.execute(t0+seconds(20), a, pending.ID)
	derr, ok := AsDelayError(err)
	if !ok {
		t.Fatalf("want delay error, got %+v", err)
	}
	assert.Equal(t, uint64(10), derr.Remaining)

	// any confirmation, even a duplicate, arms it
	_, err = f.confirm(t0+seconds(20), a, pending.ID)
	assert.Nil(t, err)
	assert.Equal(t, t0+seconds(30), f.pending(t, pending.ID).ExecutableAfter)
	_, err = f.execute(t0+seconds(30), a, pending.ID)
	assert.Nil(t, err)
}

func TestPurgeExpired(t *testing.T) {
	f := newFixture(t, 2, 2, &Configuration{ProposalLifetime: 50}, 0)
	a := f.owners[0]

	var ids []uint64
	for i := int64(0); i < 4; i++ {
		p, err := f.submit(t0+seconds(i*100), a, &ChangeThreshold{Threshold: 1})
		assert.Nil(t, err)
		ids = append(ids, p.ID)
	}

	var purged []uint64
	err := f.run(func(db linera.KVStore) error {
		var err error
		purged, err = f.ctrl.PurgeExpired(at(t0+seconds(251)), db, a, 2)
		return err
	})
	assert.Nil(t, err)
	assert.Equal(t, []uint64{ids[0], ids[1]}, purged)

	err = f.run(func(db linera.KVStore) error {
		var err error
		purged, err = f.ctrl.PurgeExpired(at(t0+seconds(251)), db, a, 10)
		return err
	})
	assert.Nil(t, err)
	assert.Equal(t, []uint64{ids[2]}, purged)

	// the last proposal is still executable
	f.pending(t, ids[3])
	_, err = f.ctrl.Pending(f.db, ids[0])
	assert.IsErr(t, errors.ErrNotFound, err)

	err = f.run(func(db linera.KVStore) error {
		_, err := f.ctrl.PurgeExpired(at(t0), db, vaulttest.NewCondition().Address(), 10)
		return err
	})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestRemovedOwnerConfirmationsDropped(t *testing.T) {
	f := newFixture(t, 3, 2, nil, 1000)
	a, b, c := f.owners[0], f.owners[1], f.owners[2]
	recipient := vaulttest.NewCondition().Address()

	p1, err := f.submit(t0, a, &Transfer{To: recipient, Value: 10})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, p1.ID)
	assert.Nil(t, err)
	_, err = f.confirm(t0, c, p1.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), f.pending(t, p1.ID).ConfirmationCount)

	remove, err := f.submit(t0, a, &RemoveOwner{Owner: c})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, remove.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0, a, remove.ID)
	assert.Nil(t, err)

	assert.Equal(t, uint64(2), f.pending(t, p1.ID).ConfirmationCount)
	ids, err := f.ctrl.Confirmations(f.db, c)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(ids))

	_, err = f.execute(t0, b, p1.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), f.balance(t, recipient))
}

func TestRemovedProposerConfirmationDropped(t *testing.T) {
	f := newFixture(t, 3, 2, nil, 1000)
	a, b, c := f.owners[0], f.owners[1], f.owners[2]
	recipient := vaulttest.NewCondition().Address()

	p1, err := f.submit(t0, c, &Transfer{To: recipient, Value: 10})
	assert.Nil(t, err)

	remove, err := f.submit(t0, a, &RemoveOwner{Owner: c})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, remove.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0, a, remove.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), f.pending(t, p1.ID).ConfirmationCount)

	count, err := f.confirm(t0, a, p1.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), count)

	_, err = f.execute(t0, a, p1.ID)
	assert.IsErr(t, ErrInsufficientConfirmations, err)
	cerr, ok := AsConfirmationsError(err)
	if !ok {
		t.Fatalf("no confirmations details in %+v", err)
	}
	assert.Equal(t, uint64(1), cerr.Actual)
	assert.Equal(t, uint64(0), f.balance(t, recipient))
}

func TestReplacedOwnerConfirmationsDropped(t *testing.T) {
	f := newFixture(t, 2, 2, nil, 0)
	a, b := f.owners[0], f.owners[1]
	fresh := vaulttest.NewCondition().Address()

	other, err := f.submit(t0, b, &ChangeThreshold{Threshold: 1})
	assert.Nil(t, err)

	replace, err := f.submit(t0, a, &ReplaceOwner{Old: b, New: fresh})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, replace.ID)
	assert.Nil(t, err)
	_, err = f.execute(t0, a, replace.ID)
	assert.Nil(t, err)

	// the executed proposal keeps the count it was executed with
	archived, err := f.ctrl.Archived(f.db, replace.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), archived.ConfirmationCount)
	assert.Equal(t, uint64(0), f.pending(t, other.ID).ConfirmationCount)

	// the new owner confirms on its own behalf
	count, err := f.confirm(t0, fresh, other.ID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestChangeConfigDropsConfirmations(t *testing.T) {
	key := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{3}, 32))
	f := newFixture(t, 3, 2, &Configuration{AggregateKey: key.PublicKey().Ed25519}, 0)
	a, b, c := f.owners[0], f.owners[1], f.owners[2]

	p, err := f.submit(t0, a, &ChangeThreshold{Threshold: 3})
	assert.Nil(t, err)
	_, err = f.confirm(t0, b, p.ID)
	assert.Nil(t, err)
	_, err = f.confirm(t0, c, p.ID)
	assert.Nil(t, err)

	action := &ChangeConfig{Owners: []linera.Address{b}, Threshold: 1, AggregateKey: key.PublicKey().Ed25519}
	msg, err := CanonicalMessage(0, action)
	assert.Nil(t, err)
	sig, err := key.Sign(msg)
	assert.Nil(t, err)
	_, err = f.executeSigned(t0, 0, msg, sig.Ed25519, action)
	assert.Nil(t, err)

	assert.Equal(t, uint64(1), f.pending(t, p.ID).ConfirmationCount)
	ids, err := f.ctrl.Confirmations(f.db, b)
	assert.Nil(t, err)
	assert.Equal(t, []uint64{p.ID}, ids)
}
