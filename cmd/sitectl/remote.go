package main

import (
	"context"
	"time"

	sitev1 "github.com/fekuna/omnipos-site-service/api/site/v1"
	"github.com/fekuna/omnipos-site-service/internal/auth"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

func newRemoteCmd(opts *rootOptions) *cobra.Command {
	var addr, tenant string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a tenant's resolved settings from a running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			ctx = metadata.AppendToOutgoingContext(ctx, auth.TenantHeader, tenant)

			out, err := sitev1.NewSettingsServiceClient(conn).GetSettings(ctx, nil)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), out.AsMap())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8086", "site service gRPC address")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant id")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}
