package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// run parses the global options and hands the rest of the command line to
// the named subcommand. A usage error from the subcommand prints its usage
// and exits with its code.
func (cfg *MainConfig) run(cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkOutFormat(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	name, rest := args[0], args[1:]
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	err = sub.Run(cc, rest)
	if !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	os.Exit(sub.Exit(cc, err))
	return nil
}

// checkOutFormat rejects -y together with a -O naming another format.
func (cfg *MainConfig) checkOutFormat() error {
	if cfg.Y && cfg.OutFormat != nil && !cfg.OutFormat.IsYAML() {
		return fmt.Errorf("%w: -y conflicts with -O %s", cli.ErrUsage, cfg.OutFormat)
	}
	return nil
}

// outOpt sends output to the file at path; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: -o: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		fmt.Fprintf(os.Stderr, "jlens: closing %s: %v\n", cfg.Out, err)
	}
}
