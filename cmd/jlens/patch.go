package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens"
	"github.com/signadot/jsonlens/encode"
	"github.com/signadot/jsonlens/lensop"
	"github.com/signadot/jsonlens/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinArg(args, 2)
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a lens and a patch", cli.ErrUsage)
	}
	lens, err := getLens(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		lens = lensop.Reverse(lens)
	}
	p, err := getPatch(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	res, err := jsonlens.ApplyToPatch(lens, p)
	if err != nil {
		return fmt.Errorf("error applying lens to %s: %w", args[1], err)
	}
	if err := encode.EncodePatch(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinArg(args, 1)
	if len(args) != 1 {
		return fmt.Errorf("%w: expand takes at most one patch", cli.ErrUsage)
	}
	p, err := getPatch(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	if err := encode.EncodePatch(patch.ExpandAll(p), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
