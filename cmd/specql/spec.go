package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoobzio/specql"
	"github.com/zoobzio/specql/internal/cli"
)

// readInput reads the spec document from the named file, or from stdin
// when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

// loadSpec reads and decodes a spec, then resolves its dialect with
// precedence --dialect > spec client > config dialect.
func (a *app) loadSpec(cmd *cobra.Command, args []string, dialect string) (*specql.QuerySpec, error) {
	data, source, err := readInput(cmd, args)
	if err != nil {
		return nil, cli.GeneralError("reading spec", err)
	}

	if a.cfg.Input.Format == cli.FormatJSON && !json.Valid(data) {
		return nil, cli.SpecParseError("parsing spec", errors.New("input is not valid JSON"))
	}

	spec, err := specql.Parse(data)
	if err != nil {
		return nil, cli.SpecParseError("parsing spec", err)
	}

	spec.Client = specql.Dialect(resolveString(dialect, string(spec.Client), a.cfg.Dialect))
	a.logger.Debug("spec loaded",
		"source", source,
		"dialect", spec.Client,
		"tables", len(spec.Tables),
		"joins", len(spec.Joins),
	)
	return spec, nil
}

func addDialectFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "dialect", "d", "", fmt.Sprintf("target dialect, overriding the spec's client %v", specql.Dialects()))
}
