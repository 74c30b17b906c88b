package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/openbib/marcjson/encode"
	"github.com/openbib/marcjson/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

func (cfg *MainConfig) inFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if useColor(cfg, w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func useColor(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) outWriter(cc *cli.Context) (io.Writer, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return cc.Out, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", cfg.Out, err)
	}
	cfg.CloseOut = f.Close
	return f, nil
}

type ConvertConfig struct {
	*MainConfig
	FilterExpr string
	Convert    *cli.Command
}

type ReverseConfig struct {
	*MainConfig
	Reverse *cli.Command
}

type RoundtripConfig struct {
	*MainConfig
	Roundtrip *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string
	Patch     *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}
