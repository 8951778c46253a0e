// Command el2md converts the documentation comment block of Emacs Lisp
// source files into Markdown.
//
// # Usage
//
//	el2md [flags] <file.el ...>
//
// By default the Markdown is written to stdout. Use -o FILE to write to a
// named file, or --readme to write a README.md next to each input file.
// Pass - as the input to read from stdin.
//
// # Examples
//
// Print the conversion of a single file:
//
//	el2md foo.el
//
// Generate a README.md for a package:
//
//	el2md --readme foo.el
//
// Convert with YAML front matter for a static-site pipeline:
//
//	el2md --front-matter -o docs/foo.md foo.el
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thornjad/el2md"
	"github.com/thornjad/el2md/log"
	"github.com/thornjad/el2md/version"
)

var errUsage = errors.New("usage")

func main() {
	cfg := el2md.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "el2md [flags] <file.el ...>",
		Short: "Convert Emacs Lisp comment headers to Markdown",
		Long: `el2md converts the structured comment block of an Emacs Lisp source file
(the ";;; foo.el --- title" line, header fields, and the Commentary section)
into a Markdown document, typically a README. Conversion is best-effort:
missing or malformed pieces are omitted rather than reported as errors.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, err := range []error{
		cfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *el2md.Config, args []string) error {
	if cfg.Readme && cfg.Output != "-" {
		return fmt.Errorf("%w: --readme and --output are mutually exclusive", errUsage)
	}

	if !cfg.Readme && cfg.Output != "-" && len(args) > 1 {
		return fmt.Errorf("%w: --output with multiple inputs; use --readme instead", errUsage)
	}

	conv, err := cfg.NewConverter()
	if err != nil {
		return err
	}

	for _, arg := range args {
		err := convertFile(conv, cfg, arg)
		if err != nil {
			return err
		}
	}

	return nil
}

func convertFile(conv *el2md.Converter, cfg *el2md.Config, input string) error {
	var (
		src  []byte
		name string
		err  error
	)

	if input == "-" {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("%w: stdin: %w", el2md.ErrReadInput, err)
		}
	} else {
		src, err = os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("%w: %w", el2md.ErrReadInput, err)
		}

		name = filepath.Base(input)
	}

	md, err := conv.ConvertString(name, src)
	if err != nil {
		return err
	}

	out := outputPath(cfg.Readme, cfg.Output, input)
	if out == "-" {
		_, err = io.WriteString(os.Stdout, md)
		if err != nil {
			return fmt.Errorf("%w: stdout: %w", el2md.ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(out, []byte(md), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", el2md.ErrWriteOutput, err)
	}

	slog.Info("wrote markdown", slog.String("input", input), slog.String("output", out))

	return nil
}

// outputPath resolves the sink path for one input: "-" for stdout, the
// --output value, or README.md next to the input in readme mode.
func outputPath(readme bool, output, input string) string {
	if !readme {
		return output
	}

	if input == "-" {
		return "README.md"
	}

	return filepath.Join(filepath.Dir(input), "README.md")
}
