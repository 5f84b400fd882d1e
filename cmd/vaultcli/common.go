package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/app"
	"github.com/keyper-labs/linera.dev/crypto"
	"golang.org/x/crypto/ed25519"
)

// writeTx serialize the transaction using a protocol buffer.
func writeTx(w io.Writer, tx *app.Tx) error {
	raw, err := linera.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot serialize transaction: %s", err)
	}
	_, err = w.Write(raw)
	return err
}

// readTx reads the whole input and deserialize it into a transaction.
func readTx(r io.Reader) (*app.Tx, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction: %s", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("no input data")
	}
	var tx app.Tx
	if err := linera.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("cannot deserialize transaction: %s", err)
	}
	return &tx, nil
}

// writeMsgTx writes an unsigned transaction carrying given message.
func writeMsgTx(w io.Writer, msg linera.Msg) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}
	tx, err := app.NewTx(msg)
	if err != nil {
		return err
	}
	return writeTx(w, tx)
}

func decodePrivateKey(filepath string) (*crypto.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", filepath, err)
	}
	if len(data) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(data))
	}
	return &crypto.PrivateKey{Ed25519: data}, nil
}

// defaultKeyPath is where keys are stored unless VAULTCLI_PRIV_KEY is set.
func defaultKeyPath() string {
	return env("VAULTCLI_PRIV_KEY", env("HOME", ".")+"/.vault.priv.key")
}

const keyFlagUsage = "Path to the private key file. You can use VAULTCLI_PRIV_KEY environment variable to set it."
