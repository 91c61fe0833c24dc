package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	output string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sitectl",
		Short:         "Inspect business types and site settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			if opts.output != "json" && opts.output != "yaml" {
				return fmt.Errorf("unsupported output %q (want json or yaml)", opts.output)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")

	cmd.AddCommand(
		newTypesCmd(opts),
		newDefaultsCmd(opts),
		newPresetCmd(opts),
		newResolveCmd(opts),
		newRemoteCmd(opts),
	)
	return cmd
}

func (o *rootOptions) render(w io.Writer, v any) error {
	switch o.output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
