package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrencode"
	"github.com/qrforge/qrencode/version"
)

type encodeFlags struct {
	level      string
	version    int
	mode       string
	mask       int
	encoding   string
	eci        int
	micro      bool
	boostError bool
	config     string
	png        string
	svg        string
	scale      int
}

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "qrencode",
		Short: "Encode text into a QR Code or Micro QR symbol",
	}
	root.AddCommand(newEncodeCommand(logger))
	return root
}

func newEncodeCommand(logger *zerolog.Logger) *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text and print or render the resulting symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args[0], flags, logger)
		},
	}

	cmd.Flags().StringVar(&flags.level, "level", "M", "error correction level: L, M, Q, H")
	cmd.Flags().IntVar(&flags.version, "version", 0, "force a symbol version (1-40, or 1-4 with --micro); 0 auto-selects")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "force a segment mode: numeric, alphanumeric, byte, kanji, hanzi")
	cmd.Flags().IntVar(&flags.mask, "mask", -1, "force a mask pattern; -1 auto-selects")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "requested byte/hanzi text encoding")
	cmd.Flags().IntVar(&flags.eci, "eci", 0, "ECI assignment number for an explicit ECI header segment")
	cmd.Flags().BoolVar(&flags.micro, "micro", false, "encode as a Micro QR symbol (M1-M4)")
	cmd.Flags().BoolVar(&flags.boostError, "boost-error", false, "raise the error level if it fits without growing the version")
	cmd.Flags().StringVar(&flags.config, "config", "", "YAML file of defaults, overridden by explicit flags")
	cmd.Flags().StringVar(&flags.png, "png", "", "write a PNG rendering to this path instead of printing ASCII")
	cmd.Flags().StringVar(&flags.svg, "svg", "", "write an SVG rendering to this path instead of printing ASCII")
	cmd.Flags().IntVar(&flags.scale, "scale", 8, "pixels per module for --png output")

	return cmd
}

func runEncode(cmd *cobra.Command, text string, flags *encodeFlags, logger *zerolog.Logger) error {
	if flags.config != "" {
		defaults, err := loadFileDefaults(flags.config)
		if err != nil {
			return fmt.Errorf("loading --config: %w", err)
		}
		applyFileDefaults(cmd, flags, defaults)
	}

	level, ok := qrencode.ParseLevelFlag(flags.level)
	if !ok {
		return fmt.Errorf("unknown --level %q", flags.level)
	}

	opts := qrencode.Options{
		Level:      level,
		Micro:      flags.micro,
		Encoding:   flags.encoding,
		BoostError: flags.boostError,
		Logger:     logger,
	}
	if flags.eci > 0 {
		opts.ECI = uint32(flags.eci)
	}

	if flags.mode != "" {
		mode, ok := qrencode.ParseModeFlag(flags.mode)
		if !ok {
			return fmt.Errorf("unknown --mode %q", flags.mode)
		}
		opts.ForceMode = true
		opts.Mode = mode
	}

	if flags.version > 0 {
		var v qrencode.Version
		if flags.micro {
			v = version.NewMicro(flags.version)
		} else {
			v = version.New(flags.version)
		}
		opts.Version = &v
	}

	if flags.mask >= 0 {
		m := qrencode.Mask(flags.mask)
		opts.Mask = &m
	}

	sym, err := qrencode.Encode(text, opts)
	if err != nil {
		return err
	}

	switch {
	case flags.png != "":
		return writePNG(flags.png, sym, flags.scale)
	case flags.svg != "":
		return writeSVG(flags.svg, sym, 4)
	default:
		writeASCII(os.Stdout, sym)
		return nil
	}
}

// applyFileDefaults fills unset flags from a loaded config file; flags the
// user actually passed on the command line always win.
func applyFileDefaults(cmd *cobra.Command, flags *encodeFlags, defaults fileDefaults) {
	if !cmd.Flags().Changed("level") && defaults.Level != "" {
		flags.level = defaults.Level
	}
	if !cmd.Flags().Changed("version") && defaults.Version != 0 {
		flags.version = defaults.Version
	}
	if !cmd.Flags().Changed("mode") && defaults.Mode != "" {
		flags.mode = defaults.Mode
	}
	if !cmd.Flags().Changed("mask") && defaults.Mask != nil {
		flags.mask = *defaults.Mask
	}
	if !cmd.Flags().Changed("encoding") && defaults.Encoding != "" {
		flags.encoding = defaults.Encoding
	}
	if !cmd.Flags().Changed("eci") && defaults.ECI != 0 {
		flags.eci = defaults.ECI
	}
	if !cmd.Flags().Changed("micro") && defaults.Micro {
		flags.micro = defaults.Micro
	}
	if !cmd.Flags().Changed("boost-error") && defaults.BoostError {
		flags.boostError = defaults.BoostError
	}
}
