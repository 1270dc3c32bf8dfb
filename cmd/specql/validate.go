package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/specql"
	"github.com/zoobzio/specql/internal/cli"
)

func newValidateCmd(a *app) *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a spec without rendering it",
		Long: `Run the structural and dialect checks on a query spec.

Prints "valid" on success unless --quiet is set. Exits non-zero with the
first violated rule otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.loadSpec(cmd, args, dialect)
			if err != nil {
				return err
			}

			if err := specql.Validate(spec); err != nil {
				return cli.SpecError("validating spec", err)
			}

			if !a.quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			}
			return nil
		},
	}

	addDialectFlag(cmd, &dialect)
	return cmd
}
