package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/specql"
	"github.com/zoobzio/specql/internal/cli"
)

func newRenderCmd(a *app) *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a spec to SQL",
		Long: `Validate a query spec and print the rendered SELECT statement.

The spec is read from file, or from stdin when file is omitted or "-".`,
		Example: `  # Render a spec file
  specql render query.yaml

  # Render for another dialect
  specql render query.yaml --dialect mssql

  # Render from stdin
  cat query.json | specql render -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.loadSpec(cmd, args, dialect)
			if err != nil {
				return err
			}

			sql, err := specql.Render(spec)
			if err != nil {
				a.logger.Warn("render rejected", "dialect", spec.Client, "error", err)
				return cli.SpecError("rendering spec", err)
			}

			a.logger.Info("rendered", "dialect", spec.Client, "length", len(sql))
			fmt.Fprintln(cmd.OutOrStdout(), sql)
			return nil
		},
	}

	addDialectFlag(cmd, &dialect)
	return cmd
}
