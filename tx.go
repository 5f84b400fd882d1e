package linera

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/keyper-labs/linera.dev/errors"
)

// Persistent is anything that can be stored or sent over the wire using the
// protobuf encoding.
//
// Models and messages are generated from the codec.proto file of their
// package and are serialized with Marshal and Unmarshal.
type Persistent interface {
	proto.Message
}

// Msg is message for the vault to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one test does not pass and message is considered
	// invalid.
	Validate() error
}

// Tx represent the data sent from the user to the vault.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures).
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrEmpty, "transaction message")
	}
	if err := assignMsg(msg, destination); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// Marshal serializes given entity using the protobuf encoding. Fields are
// written in tag order, so the output is deterministic for a given value.
func Marshal(p Persistent) ([]byte, error) {
	if p == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "nothing to marshal")
	}
	raw, err := proto.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal %T: %s", p, err)
	}
	return raw, nil
}

// MustMarshal is like Marshal, but panics instead of returning errors.
// Only use when you control the entity being passed in.
func MustMarshal(p Persistent) []byte {
	raw, err := Marshal(p)
	if err != nil {
		panic(err)
	}
	return raw
}

// Unmarshal decodes protobuf encoded data into given entity.
func Unmarshal(raw []byte, p Persistent) error {
	if err := proto.Unmarshal(raw, p); err != nil {
		return errors.Wrapf(errors.ErrInput, "unmarshal %T: %s", p, err)
	}
	return nil
}

// assignMsg sets msg as the value pointed by destination. Destination must be
// a non nil pointer either to a variable of the message type or to the
// message structure.
func assignMsg(msg Msg, destination interface{}) error {
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	src := reflect.ValueOf(msg)
	target := dest.Elem()
	switch {
	case src.Type().AssignableTo(target.Type()):
		target.Set(src)
	case src.Kind() == reflect.Ptr && !src.IsNil() && src.Elem().Type().AssignableTo(target.Type()):
		// Destination is the message structure itself.
		target.Set(src.Elem())
	default:
		return errors.Wrapf(errors.ErrType, "want %s message, got %T", target.Type(), msg)
	}
	return nil
}
