/*
Vaultd replays a stream of time-stamped transactions against a durable vault
database and prints the result of each one.

	vaultd [-config vaultd.toml] [transactions file]

Transactions are read from the standard input when no file is given. On the
first run the database is initialized from the genesis document.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/keyper-labs/linera.dev/app"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store/iavl"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	configFl := flag.String("config", "", "Path to the TOML configuration file.")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: vaultd [flags] [transactions file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configFl, environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		fd, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		defer fd.Close()
		in = fd
	}

	if err := run(cfg, logger, in, os.Stdout); err != nil {
		logger.Error("replay failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, allow).With("module", "vaultd"), nil
}

// run opens the database, initializes it if needed, replays all
// transactions and commits the result.
func run(cfg Config, logger log.Logger, in io.Reader, out io.Writer) error {
	if err := os.MkdirAll(cfg.Home, 0700); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	db, err := iavl.NewCommitStore(cfg.Home, "vault")
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := app.NewApplication("vault", db, logger)
	if err != nil {
		return err
	}
	if err := initChain(a, cfg); err != nil {
		return err
	}

	n, err := replay(a, in, out)
	if err != nil {
		return err
	}
	id, err := a.Commit()
	if err != nil {
		return err
	}
	logger.Info("Replay done", "delivered", n, "version", id.Version)
	return nil
}

// initChain loads the genesis document into a fresh database. A database
// that is already initialized must belong to the configured chain.
func initChain(a *app.Application, cfg Config) error {
	if current := a.ChainID(); current != "" {
		if cfg.ChainID != "" && cfg.ChainID != current {
			return errors.Wrapf(errors.ErrState, "database belongs to chain %s, not %s", current, cfg.ChainID)
		}
		return nil
	}
	gen, err := app.LoadGenesis(cfg.Genesis)
	if err != nil {
		return err
	}
	if cfg.ChainID != "" {
		gen.ChainID = cfg.ChainID
	}
	if err := a.InitChain(gen); err != nil {
		return err
	}
	_, err = a.Commit()
	return err
}
