package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens/encode"
	"github.com/signadot/jsonlens/lensop"
)

func reverse(cfg *ReverseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reverse.Parse(cc, args)
	if err != nil {
		cfg.Reverse.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: reverse requires 1 argument, a lens", cli.ErrUsage)
	}
	lens, err := getLens(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	if err := encode.Encode(lensop.Reverse(lens), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
