package multisig

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

const (
	pathSubmitProposalMsg = "multisig/submit"
	pathConfirmMsg        = "multisig/confirm"
	pathRevokeMsg         = "multisig/revoke"
	pathExecuteMsg        = "multisig/execute"
	pathExecuteSignedMsg  = "multisig/execute_signed"
	pathPurgeExpiredMsg   = "multisig/purge"

	// MaxPurgeLimit bounds the work of a single purge.
	MaxPurgeLimit = 1000
)

var (
	_ linera.Msg = (*SubmitProposalMsg)(nil)
	_ linera.Msg = (*ConfirmMsg)(nil)
	_ linera.Msg = (*RevokeMsg)(nil)
	_ linera.Msg = (*ExecuteMsg)(nil)
	_ linera.Msg = (*ExecuteSignedMsg)(nil)
	_ linera.Msg = (*PurgeExpiredMsg)(nil)
)

func (SubmitProposalMsg) Path() string {
	return pathSubmitProposalMsg
}

func (m *SubmitProposalMsg) Validate() error {
	return errors.AppendField(nil, "Kind", m.Kind.Validate())
}

func (ConfirmMsg) Path() string {
	return pathConfirmMsg
}

// Validate always succeeds, any ID can be referenced.
func (m *ConfirmMsg) Validate() error {
	return nil
}

func (RevokeMsg) Path() string {
	return pathRevokeMsg
}

func (m *RevokeMsg) Validate() error {
	return nil
}

func (ExecuteMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteMsg) Validate() error {
	return nil
}

func (ExecuteSignedMsg) Path() string {
	return pathExecuteSignedMsg
}

// Validate only checks the operation. Signature problems are reported when
// verifying, so that they all look the same.
func (m *ExecuteSignedMsg) Validate() error {
	return errors.AppendField(nil, "Kind", m.Kind.Validate())
}

func (PurgeExpiredMsg) Path() string {
	return pathPurgeExpiredMsg
}

func (m *PurgeExpiredMsg) Validate() error {
	if m.Limit == 0 || m.Limit > MaxPurgeLimit {
		return errors.Field("Limit", errors.ErrInput, "must be between 1 and %d", MaxPurgeLimit)
	}
	return nil
}
