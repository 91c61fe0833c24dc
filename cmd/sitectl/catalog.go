package main

import (
	"fmt"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newTypesCmd(opts *rootOptions) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List business types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := businesstype.SearchTypes(search)
			if category != "" {
				if _, ok := businesstype.LookupCategory(category); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				infos = lo.Filter(infos, func(info businesstype.TypeInfo, _ int) bool {
					return info.Category.String() == category
				})
			}
			return opts.render(cmd.OutOrStdout(), infos)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list types in this category")
	cmd.Flags().StringVar(&search, "search", "", "filter by id, label or description")
	return cmd
}

func newDefaultsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <business-type>",
		Short: "Show the default feature flags of a business type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), businesstype.GetFeatureDefaults(t))
		},
	}
}

func newPresetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preset <business-type>",
		Short: "Show the content preset of a business type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), businesstype.GetContentPreset(t))
		},
	}
}

// parseType accepts current and legacy ids.
func parseType(id string) (businesstype.BusinessType, error) {
	if businesstype.IsValid(businesstype.BusinessType(id)) || businesstype.IsLegacyBusinessType(id) {
		return businesstype.MigrateBusinessType(id), nil
	}
	return "", fmt.Errorf("unknown business type %q", id)
}
