package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestGetTenantID(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"empty", context.Background(), ""},
		{"context value", WithTenantID(context.Background(), "t1"), "t1"},
		{"metadata", metadata.NewIncomingContext(context.Background(), metadata.Pairs(TenantHeader, "t2")), "t2"},
		{
			"context value wins",
			WithTenantID(metadata.NewIncomingContext(context.Background(), metadata.Pairs(TenantHeader, "t2")), "t1"),
			"t1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetTenantID(tt.ctx))
		})
	}
}

func TestTenantInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(TenantHeader, "acme"))

	var seen string
	_, err := TenantInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		seen, _ = ctx.Value(tenantKey{}).(string)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", seen)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(TenantHeader, "acme", PlanHeader, "Pro"))
	var pro bool
	_, err = TenantInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		pro = IsPro(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, pro)
}

func TestIsPro(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{"empty", context.Background(), false},
		{"context value", WithPlan(context.Background(), PlanPro), true},
		{"metadata", metadata.NewIncomingContext(context.Background(), metadata.Pairs(PlanHeader, "pro")), true},
		{"free plan", metadata.NewIncomingContext(context.Background(), metadata.Pairs(PlanHeader, "free")), false},
		{
			"context value wins",
			WithPlan(metadata.NewIncomingContext(context.Background(), metadata.Pairs(PlanHeader, "pro")), "free"),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPro(tt.ctx))
		})
	}
}
