package vaulttest

import (
	"github.com/keyper-labs/linera.dev"
)

// Tx represents a single message transaction. It cannot be serialized.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg linera.Msg
	// Err if set is returned by GetMsg.
	Err error
}

var _ linera.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (linera.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "vaulttest.Tx" }
func (*Tx) ProtoMessage()     {}

// Msg is a message carrying only its route.
type Msg struct {
	// RoutePath returned by the Path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ linera.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "vaulttest.Msg " + m.RoutePath }
func (*Msg) ProtoMessage()    {}
