package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The signature is bound to the chain ID and to the signer sequence, which is
the number of transactions the signer successfully delivered so far.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(), keyFlagUsage)
		chainFl   = fl.String("chain-id", env("VAULT_CHAIN_ID", ""),
			"Chain ID of the vault. You can use VAULT_CHAIN_ID environment variable to set it.")
		seqFl = fl.Uint64("seq", 0, "Sequence of the signer.")
	)
	fl.Parse(args)

	if !linera.IsValidChainID(*chainFl) {
		return errors.New("valid chain ID is required")
	}
	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, err := readTx(input)
	if err != nil {
		return err
	}
	sig, err := sigs.SignTx(key, tx, *chainFl, *seqFl)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)
	return writeTx(output, tx)
}
