package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newConfigCmd creates the config command tree.
func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  `Show the configuration after merging flags, environment and config file. Secrets are masked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}

			if outputFormat == jsonOutputFormat {
				rows := map[string]string{}
				for _, r := range d.cfg.Rows() {
					rows[r[0]] = r[1]
				}
				return outputJSON(cmd.OutOrStdout(), rows)
			}

			if file := viper.ConfigFileUsed(); file != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", file)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.cfg.Table())
			return nil
		},
	}
	addOutputFlag(showCmd)

	cmd.AddCommand(showCmd)
	return cmd
}
