package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens/lensop"
	"github.com/signadot/jsonlens/rules"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		cfg.Ops.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: ops takes no arguments", cli.ErrUsage)
	}
	fmt.Fprintf(cc.Out, "lens operators:\n")
	for _, k := range lensop.Kinds() {
		fmt.Fprintf(cc.Out, "\t- %s\n", k)
	}
	fmt.Fprintf(cc.Out, "rule executors:\n")
	for _, t := range rules.Types() {
		fmt.Fprintf(cc.Out, "\t- %s\n", t)
	}
	return nil
}
