package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

// actionFlags declares the flags describing a vault operation. The returned
// function builds the action once the flags are parsed.
func actionFlags(fl *flag.FlagSet) func() (multisig.Action, error) {
	var (
		opFl = fl.String("op", "",
			"Operation type: transfer, add_owner, remove_owner, replace_owner, change_threshold or config_change.")
		toFl        = flAddress(fl, "to", "", "Transfer recipient address.")
		valueFl     = fl.Uint64("value", 0, "Transfer amount.")
		payloadFl   = flHex(fl, "payload", "", "Optional hex encoded transfer payload.")
		ownerFl     = flAddress(fl, "owner", "", "Owner to add or remove.")
		oldFl       = flAddress(fl, "old", "", "Owner to be replaced.")
		newFl       = flAddress(fl, "new", "", "Replacement owner.")
		thresholdFl = fl.Uint64("threshold", 0, "New threshold.")
		ownersFl    = flAddressList(fl, "owners", "Comma separated list of owners of the new configuration.")
		aggKeyFl    = flHex(fl, "aggregate-key", "", "Hex encoded aggregate key of the new configuration.")
	)
	return func() (multisig.Action, error) {
		var a multisig.Action
		switch *opFl {
		case multisig.OpTransfer:
			a = &multisig.Transfer{To: *toFl, Value: *valueFl, Payload: *payloadFl}
		case multisig.OpAddOwner:
			a = &multisig.AddOwner{Owner: *ownerFl}
		case multisig.OpRemoveOwner:
			a = &multisig.RemoveOwner{Owner: *ownerFl}
		case multisig.OpReplaceOwner:
			a = &multisig.ReplaceOwner{Old: *oldFl, New: *newFl}
		case multisig.OpChangeThreshold:
			a = &multisig.ChangeThreshold{Threshold: *thresholdFl}
		case multisig.OpConfigChange:
			a = &multisig.ChangeConfig{Owners: *ownersFl, Threshold: *thresholdFl, AggregateKey: *aggKeyFl}
		case "":
			return nil, errors.New("operation type is required")
		default:
			return nil, fmt.Errorf("unknown operation type %q", *opFl)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s operation: %s", *opFl, err)
		}
		return a, nil
	}
}

func cmdMessage(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the hex encoded canonical message of an operation. This is the message
the aggregate key holders must sign to authorize the operation without a
proposal. The nonce must be the current signature nonce of the vault.
`)
		fl.PrintDefaults()
	}
	var (
		nonceFl = fl.Uint64("nonce", 0, "Signature nonce the message is bound to.")
		action  = actionFlags(fl)
	)
	fl.Parse(args)

	a, err := action()
	if err != nil {
		return err
	}
	msg, err := multisig.CanonicalMessage(*nonceFl, a)
	if err != nil {
		return fmt.Errorf("cannot build message: %s", err)
	}
	_, err = fmt.Fprintf(output, "%x\n", msg)
	return err
}

func cmdSignMessage(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign a canonical message with the aggregate private key and print the hex
encoded signature.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(), keyFlagUsage)
		messageFl = flHex(fl, "message", "", "Hex encoded message, as printed by the message command.")
	)
	fl.Parse(args)

	if len(*messageFl) == 0 {
		flagDie("message is required")
	}
	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	sig, err := key.Sign(*messageFl)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	_, err = fmt.Fprintf(output, "%x\n", sig.Ed25519)
	return err
}

func cmdVerifyMessage(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Verify a signature of a canonical message against an aggregate key. The
command fails if the signature is not valid.
`)
		fl.PrintDefaults()
	}
	var (
		aggKeyFl  = flHex(fl, "aggregate-key", "", "Hex encoded aggregate public key.")
		messageFl = flHex(fl, "message", "", "Hex encoded message.")
		sigFl     = flHex(fl, "signature", "", "Hex encoded signature.")
	)
	fl.Parse(args)

	if !sigs.Verify(*aggKeyFl, *messageFl, *sigFl) {
		return errors.New("invalid signature")
	}
	_, err := fmt.Fprintln(output, "valid")
	return err
}

// proposalKind wraps the action built from the flags.
func proposalKind(action func() (multisig.Action, error)) (*multisig.ProposalKind, multisig.Action, error) {
	a, err := action()
	if err != nil {
		return nil, nil, err
	}
	kind, err := multisig.NewProposalKind(a)
	if err != nil {
		return nil, nil, err
	}
	return kind, a, nil
}
