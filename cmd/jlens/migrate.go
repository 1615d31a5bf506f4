package main

import (
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens/encode"
	"github.com/signadot/jsonlens/rules"
)

func migrate(cfg *MigrateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Migrate.Parse(cc, args)
	if err != nil {
		cfg.Migrate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinArg(args, 2)
	if len(args) != 2 {
		return fmt.Errorf("%w: migrate requires a versions file and a document", cli.ErrUsage)
	}
	from, err := semver.Parse(cfg.From)
	if err != nil {
		return fmt.Errorf("%w: -from: %w", cli.ErrUsage, err)
	}
	to, err := semver.Parse(cfg.To)
	if err != nil {
		return fmt.Errorf("%w: -to: %w", cli.ErrUsage, err)
	}
	d, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	versions, err := rules.ParseVersions(d, cfg.inFormat(args[0]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	in, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	res, err := rules.Migrate(versions, from, to, in)
	if err != nil {
		return fmt.Errorf("error migrating %s: %w", args[1], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
