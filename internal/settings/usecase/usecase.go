package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/fekuna/omnipos-site-service/internal/settings/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type settingsUseCase struct {
	repo      settings.Repository
	cache     settings.Cache
	publisher settings.EventPublisher
	base      model.PartialSettings
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewSettingsUseCase wires the settings core to storage. cache and publisher
// may be nil, in which case reads go straight to the repository and no
// events are emitted.
func NewSettingsUseCase(
	repo settings.Repository,
	cache settings.Cache,
	publisher settings.EventPublisher,
	base model.PartialSettings,
	log logger.ZapLogger,
) settings.UseCase {
	return &settingsUseCase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		base:      base,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context, tenantID string) (*model.RuntimeSettings, error) {
	if tenantID == "" {
		return nil, settings.ErrTenantRequired
	}

	raw, err := uc.loadDocument(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resolved := settings.Resolve(uc.base, raw)
	return &resolved, nil
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.RuntimeSettings, error) {
	if input.TenantID == "" {
		return nil, settings.ErrTenantRequired
	}
	if input.Patch == nil {
		return nil, settings.ErrInvalidDocument
	}

	record, err := uc.loadRecord(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	raw := documentOf(record)

	merged := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &merged); err != nil || merged == nil {
			uc.logger.Warn("stored settings document unreadable, starting from defaults",
				zap.String("tenant_id", input.TenantID), zap.Error(err))
			merged = map[string]any{}
		}
	}
	for k, v := range input.Patch {
		merged[k] = v
	}
	// The stored flag describes the old features; let Resolve derive it again
	// unless the caller sets it explicitly.
	if _, ok := input.Patch["featuresModified"]; !ok {
		delete(merged, "featuresModified")
	}

	resolved := settings.Resolve(uc.base, merged)
	if err := uc.save(ctx, input.TenantID, record, resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (uc *settingsUseCase) SetFeature(ctx context.Context, input *dto.SetFeatureInput) (*model.RuntimeSettings, error) {
	if !businesstype.IsFeatureKey(input.Key) {
		return nil, fmt.Errorf("%w: %q", settings.ErrUnknownFeature, input.Key)
	}
	return uc.transform(ctx, input.TenantID, func(s model.RuntimeSettings) model.RuntimeSettings {
		return settings.SetFeature(s, businesstype.FeatureKey(input.Key), input.Enabled)
	})
}

func (uc *settingsUseCase) ResetFeatures(ctx context.Context, tenantID string) (*model.RuntimeSettings, error) {
	return uc.transform(ctx, tenantID, settings.ResetFeatures)
}

func (uc *settingsUseCase) ChangeBusinessType(ctx context.Context, input *dto.ChangeBusinessTypeInput) (*model.RuntimeSettings, error) {
	bt := businesstype.MigrateBusinessType(input.BusinessType)
	if string(bt) != input.BusinessType {
		uc.logger.Info("business type normalized",
			zap.String("tenant_id", input.TenantID),
			zap.String("requested", input.BusinessType),
			zap.String("resolved", bt.String()),
		)
	}
	return uc.transform(ctx, input.TenantID, func(s model.RuntimeSettings) model.RuntimeSettings {
		return settings.ChangeBusinessType(s, bt, input.ApplyContent)
	})
}

func (uc *settingsUseCase) InvalidateCache(ctx context.Context, tenantID string) error {
	if uc.cache == nil {
		return nil
	}
	if err := uc.cache.Delete(ctx, tenantID); err != nil {
		return fmt.Errorf("invalidate settings cache for %s: %w", tenantID, err)
	}
	return nil
}

// transform resolves the stored document, applies fn and saves the result.
func (uc *settingsUseCase) transform(ctx context.Context, tenantID string, fn func(model.RuntimeSettings) model.RuntimeSettings) (*model.RuntimeSettings, error) {
	if tenantID == "" {
		return nil, settings.ErrTenantRequired
	}

	record, err := uc.loadRecord(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	updated := fn(settings.Resolve(uc.base, documentOf(record)))
	if err := uc.save(ctx, tenantID, record, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// loadDocument returns the raw stored document, read through the cache.
func (uc *settingsUseCase) loadDocument(ctx context.Context, tenantID string) ([]byte, error) {
	if uc.cache != nil {
		doc, ok, err := uc.cache.Get(ctx, tenantID)
		if err != nil {
			uc.logger.Warn("settings cache read failed, falling back to DB", zap.String("tenant_id", tenantID), zap.Error(err))
		} else if ok {
			return doc, nil
		}
	}

	record, err := uc.loadRecord(ctx, tenantID)
	if err != nil || record == nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, tenantID, record.Document); err != nil {
			uc.logger.Warn("settings cache write failed", zap.String("tenant_id", tenantID), zap.Error(err))
		}
	}
	return record.Document, nil
}

// loadRecord always reads the database. Writes go through here so they never
// build on a stale cached copy.
func (uc *settingsUseCase) loadRecord(ctx context.Context, tenantID string) (*model.SettingsRecord, error) {
	record, err := uc.repo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("find settings for %s: %w", tenantID, err)
	}
	return record, nil
}

func documentOf(record *model.SettingsRecord) []byte {
	if record == nil {
		return nil
	}
	return record.Document
}

func (uc *settingsUseCase) save(ctx context.Context, tenantID string, record *model.SettingsRecord, s model.RuntimeSettings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings for %s: %w", tenantID, err)
	}

	now := uc.now()
	if record == nil {
		record = &model.SettingsRecord{
			BaseModel: model.BaseModel{
				ID:        uuid.New().String(),
				CreatedAt: now,
			},
			TenantID: tenantID,
		}
	}
	record.BusinessType = s.BusinessType.String()
	record.Document = doc
	record.UpdatedAt = now

	if err := uc.repo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("save settings for %s: %w", tenantID, err)
	}

	if err := uc.InvalidateCache(ctx, tenantID); err != nil {
		uc.logger.Warn("failed to invalidate settings cache", zap.Error(err))
	}
	uc.publishUpdated(ctx, tenantID, s)

	uc.logger.Info("settings saved",
		zap.String("tenant_id", tenantID),
		zap.String("business_type", s.BusinessType.String()),
		zap.Bool("features_modified", s.FeaturesModified),
	)
	return nil
}

func (uc *settingsUseCase) publishUpdated(ctx context.Context, tenantID string, s model.RuntimeSettings) {
	if uc.publisher == nil {
		return
	}

	event := dto.SettingsEvent{
		EventID:   uuid.New().String(),
		EventType: dto.EventSettingsUpdated,
		Payload: dto.SettingsEventPayload{
			TenantID:         tenantID,
			BusinessType:     s.BusinessType.String(),
			FeaturesModified: s.FeaturesModified,
		},
		Timestamp: uc.now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to encode settings event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, tenantID, data); err != nil {
		// Other replicas keep serving their cached copy until its TTL runs out.
		uc.logger.Error("failed to publish settings event", zap.String("tenant_id", tenantID), zap.Error(err))
	}
}
