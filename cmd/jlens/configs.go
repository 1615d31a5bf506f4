package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonlens/encode"
	"github.com/signadot/jsonlens/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Y       bool `cli:"name=y aliases=yaml desc='output yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// inFormat gives the format of an input file: -I if set, otherwise by
// file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := format.JSONFormat
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		color.NoColor = false
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f2, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f2.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DocConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='apply the lens reversed'"`
	Target  string `cli:"name=t aliases=target desc='target document to merge over defaults'"`
	Diff    bool   `cli:"name=diff desc='show a line diff of input and output'"`

	Doc *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='apply the lens reversed'"`

	Patch *cli.Command
}

type ExpandConfig struct {
	*MainConfig

	Expand *cli.Command
}

type ReverseConfig struct {
	*MainConfig

	Reverse *cli.Command
}

type MigrateConfig struct {
	*MainConfig
	From string `cli:"name=from desc='version of the input document'"`
	To   string `cli:"name=to desc='version to migrate to'"`

	Migrate *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}
