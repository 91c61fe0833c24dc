package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fekuna/omnipos-site-service/config"
	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var businessType string

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Resolve a stored settings document against the SITE_* defaults",
		Long: `Reads a persisted settings document (JSON) from file, or stdin when the
file is "-" or omitted, and prints the fully resolved settings. Legacy
documents are migrated on the way.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 0 || args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			base := config.LoadEnv().Site.Partial()
			if businessType != "" {
				base.BusinessType = &businessType
			}

			doc, err := settings.Resolve(base, raw).ToDocument()
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&businessType, "type", "", "override SITE_BUSINESS_TYPE")
	return cmd
}
