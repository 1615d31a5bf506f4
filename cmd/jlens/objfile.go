package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens/lensop"
	"github.com/signadot/jsonlens/patch"
)

// readFile reads path, or the command input when path is "-".
func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// stdinArg appends "-" when args is one short of n, so the last input
// defaults to stdin.
func stdinArg(args []string, n int) []string {
	if len(args) == n-1 {
		return append(args, "-")
	}
	return args
}

func getLens(cfg *MainConfig, cc *cli.Context, path string) (lensop.Lens, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	lens, err := lensop.ParseLens(d, cfg.inFormat(path))
	if err != nil {
		return nil, fmt.Errorf("error decoding lens %s: %w", path, err)
	}
	return lens, nil
}

func getDoc(cfg *MainConfig, cc *cli.Context, path string) (any, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	if d, err = cfg.inFormat(path).ToJSON(d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	v, err := patch.DecodeValue(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return v, nil
}

func getPatch(cfg *MainConfig, cc *cli.Context, path string) (patch.Patch, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	if d, err = cfg.inFormat(path).ToJSON(d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	p, err := patch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return p, nil
}
