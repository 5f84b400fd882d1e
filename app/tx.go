package app

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction carrying given message.
func NewTx(msg linera.Msg) (*Tx, error) {
	var tx Tx
	if err := tx.SetMsg(msg); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (m *Tx) GetMsg() (linera.Msg, error) {
	var found []linera.Msg
	if m.SubmitProposalMsg != nil {
		found = append(found, m.SubmitProposalMsg)
	}
	if m.ConfirmMsg != nil {
		found = append(found, m.ConfirmMsg)
	}
	if m.RevokeMsg != nil {
		found = append(found, m.RevokeMsg)
	}
	if m.ExecuteMsg != nil {
		found = append(found, m.ExecuteMsg)
	}
	if m.ExecuteSignedMsg != nil {
		found = append(found, m.ExecuteSignedMsg)
	}
	if m.PurgeExpiredMsg != nil {
		found = append(found, m.PurgeExpiredMsg)
	}
	switch len(found) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "transaction message")
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages in one transaction", len(found))
	}
}

// SetMsg replaces the transaction message with given one.
func (m *Tx) SetMsg(msg linera.Msg) error {
	signatures := m.Signatures
	m.Reset()
	m.Signatures = signatures
	switch msg := msg.(type) {
	case *multisig.SubmitProposalMsg:
		m.SubmitProposalMsg = msg
	case *multisig.ConfirmMsg:
		m.ConfirmMsg = msg
	case *multisig.RevokeMsg:
		m.RevokeMsg = msg
	case *multisig.ExecuteMsg:
		m.ExecuteMsg = msg
	case *multisig.ExecuteSignedMsg:
		m.ExecuteSignedMsg = msg
	case *multisig.PurgeExpiredMsg:
		m.PurgeExpiredMsg = msg
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}

// GetSignBytes returns the bytes that are signed: the transaction encoded
// without any signature.
func (m *Tx) GetSignBytes() ([]byte, error) {
	cpy := *m
	cpy.Signatures = nil
	return linera.Marshal(&cpy)
}

// DecodeTx parses a transaction. It is a linera.TxDecoder.
func DecodeTx(raw []byte) (linera.Tx, error) {
	var tx Tx
	if err := linera.Unmarshal(raw, &tx); err != nil {
		return nil, errors.Wrap(err, "decode transaction")
	}
	return &tx, nil
}

var _ linera.TxDecoder = DecodeTx
