package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/fekuna/omnipos-site-service/internal/settings/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*model.SettingsRecord
	finds   int
	findErr error
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]*model.SettingsRecord{}}
}

func (r *fakeRepo) FindByTenant(_ context.Context, tenantID string) (*model.SettingsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	rec, ok := r.records[tenantID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRepo) Upsert(_ context.Context, record *model.SettingsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *record
	r.records[record.TenantID] = &cp
	return nil
}

func (r *fakeRepo) document(t *testing.T, tenantID string) map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[tenantID]
	require.True(t, ok, "no record for %s", tenantID)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Document, &doc))
	return doc
}

type fakeCache struct {
	docs    map[string][]byte
	getErr  error
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{docs: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, tenantID string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	doc, ok := c.docs[tenantID]
	return doc, ok, nil
}

func (c *fakeCache) Set(_ context.Context, tenantID string, document []byte) error {
	c.docs[tenantID] = document
	return nil
}

func (c *fakeCache) Delete(_ context.Context, tenantID string) error {
	delete(c.docs, tenantID)
	c.deletes = append(c.deletes, tenantID)
	return nil
}

type fakePublisher struct {
	keys   []string
	events []dto.SettingsEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, key string, value []byte) error {
	if p.err != nil {
		return p.err
	}
	var ev dto.SettingsEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	p.keys = append(p.keys, key)
	p.events = append(p.events, ev)
	return nil
}

type fixture struct {
	repo  *fakeRepo
	cache *fakeCache
	pub   *fakePublisher
	uc    settings.UseCase
}

func newFixture(base model.PartialSettings) *fixture {
	f := &fixture{repo: newFakeRepo(), cache: newFakeCache(), pub: &fakePublisher{}}
	uc := NewSettingsUseCase(f.repo, f.cache, f.pub, base, logger.NewNop()).(*settingsUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	f.uc = uc
	return f
}

func (f *fixture) seed(t *testing.T, tenantID string, doc map[string]any) {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	f.repo.records[tenantID] = &model.SettingsRecord{
		BaseModel: model.BaseModel{ID: "rec-" + tenantID},
		TenantID:  tenantID,
		Document:  raw,
	}
}

func TestGetSettings_RequiresTenant(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	_, err := f.uc.GetSettings(context.Background(), "")
	assert.ErrorIs(t, err, settings.ErrTenantRequired)
}

func TestGetSettings_NoRecordUsesBase(t *testing.T) {
	bt := "hvac"
	f := newFixture(model.PartialSettings{BusinessType: &bt})

	got, err := f.uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, businesstype.HVAC, got.BusinessType)
	assert.Equal(t, businesstype.GetFeatureDefaults(businesstype.HVAC), got.EnabledFeatures)
	assert.False(t, got.FeaturesModified)
	assert.Empty(t, f.repo.records, "reads never write")
}

func TestGetSettings_ReadsThroughCache(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{"businessName": "Acme", "businessType": "plumber"})

	first, err := f.uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)
	second, err := f.uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.repo.finds)
	assert.Contains(t, f.cache.docs, "t1")
	assert.Equal(t, "Acme", first.BusinessName)
	assert.Equal(t, first, second)
}

func TestGetSettings_CacheErrorFallsBackToRepo(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.cache.getErr = errors.New("connection refused")
	f.seed(t, "t1", map[string]any{"businessName": "Acme"})

	got, err := f.uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.BusinessName)
}

func TestGetSettings_RepoErrorIsReturned(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.repo.findErr = errors.New("db down")

	_, err := f.uc.GetSettings(context.Background(), "t1")
	assert.ErrorContains(t, err, "db down")
}

func TestUpdateSettings_PatchesTopLevelSections(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{
		"businessName": "Old",
		"businessType": "electrician",
		"hero":         map[string]any{"heading": "Keep me"},
		"customBlock":  "stays",
	})

	got, err := f.uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{
		TenantID: "t1",
		Patch:    map[string]any{"businessName": "New"},
	})
	require.NoError(t, err)

	assert.Equal(t, "New", got.BusinessName)
	assert.Equal(t, "Keep me", got.Hero.Heading)
	assert.Equal(t, businesstype.Electrician, got.BusinessType)

	stored := f.repo.document(t, "t1")
	assert.Equal(t, "New", stored["businessName"])
	assert.Equal(t, "stays", stored["customBlock"])
	assert.Equal(t, "rec-t1", f.repo.records["t1"].ID)
	assert.Equal(t, "electrician", f.repo.records["t1"].BusinessType)
}

func TestUpdateSettings_RederivesFeaturesModified(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	defaults := businesstype.GetFeatureDefaults(businesstype.Plumber)
	f.seed(t, "t1", map[string]any{
		"businessType":     "plumber",
		"enabledFeatures":  defaults.ToMap(),
		"featuresModified": true,
	})

	got, err := f.uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{
		TenantID: "t1",
		Patch:    map[string]any{"tagline": "Fast fixes"},
	})
	require.NoError(t, err)
	assert.False(t, got.FeaturesModified)

	got, err = f.uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{
		TenantID: "t1",
		Patch:    map[string]any{"featuresModified": true},
	})
	require.NoError(t, err)
	assert.True(t, got.FeaturesModified)
}

func TestUpdateSettings_RejectsNilPatch(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	_, err := f.uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{TenantID: "t1"})
	assert.ErrorIs(t, err, settings.ErrInvalidDocument)
}

func TestUpdateSettings_NewTenantGetsRecord(t *testing.T) {
	f := newFixture(model.PartialSettings{})

	_, err := f.uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{
		TenantID: "fresh",
		Patch:    map[string]any{"businessType": "salon"},
	})
	require.NoError(t, err)

	rec := f.repo.records["fresh"]
	require.NotNil(t, rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "salon", rec.BusinessType)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSetFeature(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{"businessType": "plumber"})

	got, err := f.uc.SetFeature(context.Background(), &dto.SetFeatureInput{
		TenantID: "t1",
		Key:      string(businesstype.FeatureEmergencyServices),
		Enabled:  false,
	})
	require.NoError(t, err)

	assert.False(t, got.EnabledFeatures.EmergencyServices)
	assert.True(t, got.FeaturesModified)

	stored := f.repo.document(t, "t1")
	assert.Equal(t, true, stored["featuresModified"])
}

func TestSetFeature_UnknownKey(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	_, err := f.uc.SetFeature(context.Background(), &dto.SetFeatureInput{TenantID: "t1", Key: "chatbot", Enabled: true})
	assert.ErrorIs(t, err, settings.ErrUnknownFeature)
	assert.Empty(t, f.repo.records)
}

func TestResetFeatures(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{"businessType": "restaurant"})

	_, err := f.uc.SetFeature(context.Background(), &dto.SetFeatureInput{
		TenantID: "t1",
		Key:      string(businesstype.FeatureMenuSystem),
		Enabled:  false,
	})
	require.NoError(t, err)

	got, err := f.uc.ResetFeatures(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, businesstype.GetFeatureDefaults(businesstype.Restaurant), got.EnabledFeatures)
	assert.False(t, got.FeaturesModified)
}

func TestChangeBusinessType_MigratesLegacyID(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{"businessType": "restaurant"})

	got, err := f.uc.ChangeBusinessType(context.Background(), &dto.ChangeBusinessTypeInput{
		TenantID:     "t1",
		BusinessType: "contractor",
		ApplyContent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, businesstype.Plumber, got.BusinessType)
	assert.Equal(t, businesstype.GetFeatureDefaults(businesstype.Plumber), got.EnabledFeatures)
	assert.Equal(t, "plumber", f.repo.records["t1"].BusinessType)
}

func TestWrites_InvalidateCacheAndPublish(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.seed(t, "t1", map[string]any{"businessType": "plumber"})

	_, err := f.uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)
	require.Contains(t, f.cache.docs, "t1")

	_, err = f.uc.ResetFeatures(context.Background(), "t1")
	require.NoError(t, err)

	assert.NotContains(t, f.cache.docs, "t1")
	assert.Equal(t, []string{"t1"}, f.cache.deletes)
	assert.Equal(t, "rec-t1", f.repo.records["t1"].ID, "writes read the row, not the cached document")
	require.Len(t, f.pub.events, 1)
	assert.Equal(t, []string{"t1"}, f.pub.keys)

	ev := f.pub.events[0]
	assert.Equal(t, dto.EventSettingsUpdated, ev.EventType)
	assert.Equal(t, "t1", ev.Payload.TenantID)
	assert.Equal(t, "plumber", ev.Payload.BusinessType)
	assert.NotEmpty(t, ev.EventID)
}

func TestWrites_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.pub.err = errors.New("broker unavailable")

	_, err := f.uc.ResetFeatures(context.Background(), "t1")
	require.NoError(t, err)
	assert.Contains(t, f.repo.records, "t1")
}

func TestWrites_SaveFailureIsReturned(t *testing.T) {
	f := newFixture(model.PartialSettings{})
	f.repo.saveErr = errors.New("constraint violation")

	_, err := f.uc.ResetFeatures(context.Background(), "t1")
	assert.ErrorContains(t, err, "constraint violation")
	assert.Empty(t, f.pub.events)
}

func TestNilCacheAndPublisher(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSettingsUseCase(repo, nil, nil, model.PartialSettings{}, logger.NewNop())

	_, err := uc.SetFeature(context.Background(), &dto.SetFeatureInput{
		TenantID: "t1",
		Key:      string(businesstype.FeatureFAQSection),
		Enabled:  false,
	})
	require.NoError(t, err)
	require.NoError(t, uc.InvalidateCache(context.Background(), "t1"))

	got, err := uc.GetSettings(context.Background(), "t1")
	require.NoError(t, err)
	assert.False(t, got.EnabledFeatures.FAQSection)
}
