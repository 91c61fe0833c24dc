package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	TenantHeader = "x-tenant-id"
	// PlanHeader is set by the gateway alongside the tenant id.
	PlanHeader = "x-tenant-plan"

	PlanPro = "pro"
)

type (
	tenantKey struct{}
	planKey   struct{}
)

func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// GetTenantID returns the tenant placed on the context by TenantInterceptor,
// falling back to the incoming metadata.
func GetTenantID(ctx context.Context) string {
	if val, ok := ctx.Value(tenantKey{}).(string); ok && val != "" {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(TenantHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

func WithPlan(ctx context.Context, plan string) context.Context {
	return context.WithValue(ctx, planKey{}, plan)
}

// IsPro reports whether the caller's tenant is on the pro plan. Request
// bodies are never consulted.
func IsPro(ctx context.Context) bool {
	if val, ok := ctx.Value(planKey{}).(string); ok && val != "" {
		return strings.EqualFold(val, PlanPro)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(PlanHeader); len(val) > 0 {
			return strings.EqualFold(val[0], PlanPro)
		}
	}
	return false
}

// TenantInterceptor copies the x-tenant-id and x-tenant-plan headers onto
// the request context.
func TenantInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if val := md.Get(TenantHeader); len(val) > 0 && val[0] != "" {
				ctx = WithTenantID(ctx, val[0])
			}
			if val := md.Get(PlanHeader); len(val) > 0 && val[0] != "" {
				ctx = WithPlan(ctx, val[0])
			}
		}
		return handler(ctx, req)
	}
}
