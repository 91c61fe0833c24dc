package settings

import (
	"context"

	"github.com/fekuna/omnipos-site-service/internal/model"
)

type Repository interface {
	// FindByTenant returns nil, nil when the tenant has no stored document.
	FindByTenant(ctx context.Context, tenantID string) (*model.SettingsRecord, error)
	Upsert(ctx context.Context, record *model.SettingsRecord) error
}

// Cache holds raw persisted documents keyed by tenant. Resolved documents
// are never cached.
type Cache interface {
	Get(ctx context.Context, tenantID string) ([]byte, bool, error)
	Set(ctx context.Context, tenantID string, document []byte) error
	Delete(ctx context.Context, tenantID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
