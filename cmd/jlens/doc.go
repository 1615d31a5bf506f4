package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens"
	"github.com/signadot/jsonlens/encode"
	"github.com/signadot/jsonlens/lensop"
)

func doc(cfg *DocConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Doc.Parse(cc, args)
	if err != nil {
		cfg.Doc.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinArg(args, 2)
	if len(args) != 2 {
		return fmt.Errorf("%w: doc requires a lens and a document", cli.ErrUsage)
	}
	lens, err := getLens(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		lens = lensop.Reverse(lens)
	}
	in, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	var target any
	if cfg.Target != "" {
		if target, err = getDoc(cfg.MainConfig, cc, cfg.Target); err != nil {
			return err
		}
	}
	res, err := jsonlens.ApplyToDoc(lens, in, target)
	if err != nil {
		return fmt.Errorf("error applying lens to %s: %w", args[1], err)
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Diff {
		return encode.EncodeDiff(in, res, cc.Out, opts...)
	}
	if err := encode.Encode(res, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
