package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newConfigCmd(a *app) *cobra.Command {
	var showSource bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
		Example: `  # Show effective configuration
  specql config show

  # Show configuration with source file path
  specql config show --source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showSource {
				if a.configPath != "" {
					fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
				} else {
					fmt.Fprintln(out, "Config file: (none, using defaults)")
					fmt.Fprintln(out)
				}
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	showCmd.Flags().BoolVar(&showSource, "source", false, "show config file source")
	configCmd.AddCommand(showCmd)
	return configCmd
}
