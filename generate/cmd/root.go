package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/gtlgen/generate"
)

// usageError marks a command-line error that should be
// answered with the usage text.
type usageError struct {
	err error
}

func (ue *usageError) Error() string {
	return ue.err.Error()
}

func (ue *usageError) Unwrap() error {
	return ue.err
}

// newRootCmd builds the gtlgen command. argv is the full
// invocation recorded in the banner.
func newRootCmd(argv []string) *cobra.Command {
	var cfg generate.Config

	cmd := &cobra.Command{
		Use:   "gtlgen [flags] TEMPLATE",
		Short: "Generate Go source from a *.go.tpl template",
		Long: `gtlgen reads a template and writes it out with literal substitutions:

  ZZ       is replaced with --prefix
  PACKAGE  is replaced with --package
  FROM     is replaced with TO for every -D FROM=TO, in flag order

Example:

  gtlgen --prefix= -DELEM=int32 --package=tests --output=unsafe.go ../unsafe.go.tpl`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Template = args[0]

			ge := generate.Generator{Config: cfg}

			return ge.Generate(argv, cmd.OutOrStdout())
		},
	}

	cmd.SetFlagErrorFunc(
		func(_ *cobra.Command, err error) error {
			return &usageError{err: err}
		},
	)

	fl := cmd.Flags()

	fl.StringVar(
		&cfg.Package, "package", generate.DefaultPackage,
		"occurrences of 'PACKAGE' in the template are replaced with this string",
	)

	fl.StringVar(
		&cfg.Prefix, "prefix", generate.DefaultPrefix,
		"occurrences of 'ZZ' in the template are replaced with this string",
	)

	fl.StringVarP(
		&cfg.Output, "output", "o", "",
		"output destination (default: stdout)",
	)

	fl.StringArrayVarP(
		&cfg.Defines, "define", "D", nil,
		"FROM=TO replacement (repeatable)",
	)

	return cmd
}
