package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/keyper-labs/linera.dev/x/multisig"
)

func cmdPropose(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction submitting a new proposal. The signer of the transaction
becomes the proposer and its confirmation is counted.
`)
		fl.PrintDefaults()
	}
	action := actionFlags(fl)
	fl.Parse(args)

	kind, a, err := proposalKind(action)
	if err != nil {
		return err
	}
	if a.OperationType() == multisig.OpConfigChange {
		return fmt.Errorf("%s can only be executed with an aggregate signature, use execute-signed", multisig.OpConfigChange)
	}
	return writeMsgTx(output, &multisig.SubmitProposalMsg{Kind: kind})
}

func cmdConfirm(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction confirming a pending proposal.
`)
		fl.PrintDefaults()
	}
	idFl := fl.Uint64("id", 0, "Proposal ID.")
	fl.Parse(args)

	return writeMsgTx(output, &multisig.ConfirmMsg{ProposalID: *idFl})
}

func cmdRevoke(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction withdrawing a confirmation of a pending proposal.
`)
		fl.PrintDefaults()
	}
	idFl := fl.Uint64("id", 0, "Proposal ID.")
	fl.Parse(args)

	return writeMsgTx(output, &multisig.RevokeMsg{ProposalID: *idFl})
}

func cmdExecute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction executing a proposal that reached the threshold.
`)
		fl.PrintDefaults()
	}
	idFl := fl.Uint64("id", 0, "Proposal ID.")
	fl.Parse(args)

	return writeMsgTx(output, &multisig.ExecuteMsg{ProposalID: *idFl})
}

func cmdExecuteSigned(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction executing an operation authorized by a signature of the
aggregate key. The canonical message is rebuilt from the operation flags and
the nonce. This transaction does not need to be signed.
`)
		fl.PrintDefaults()
	}
	var (
		nonceFl = fl.Uint64("nonce", 0, "Signature nonce the message is bound to.")
		sigFl   = flHex(fl, "signature", "", "Hex encoded signature of the canonical message.")
		action  = actionFlags(fl)
	)
	fl.Parse(args)

	if len(*sigFl) == 0 {
		flagDie("signature is required")
	}
	kind, a, err := proposalKind(action)
	if err != nil {
		return err
	}
	message, err := multisig.CanonicalMessage(*nonceFl, a)
	if err != nil {
		return fmt.Errorf("cannot build message: %s", err)
	}
	return writeMsgTx(output, &multisig.ExecuteSignedMsg{
		Nonce:     *nonceFl,
		Message:   message,
		Signature: *sigFl,
		Kind:      kind,
	})
}

func cmdPurge(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction deleting expired proposals.
`)
		fl.PrintDefaults()
	}
	limitFl := fl.Uint64("limit", 100, fmt.Sprintf("Maximum number of proposals to delete, at most %d.", multisig.MaxPurgeLimit))
	fl.Parse(args)

	return writeMsgTx(output, &multisig.PurgeExpiredMsg{Limit: *limitFl})
}
