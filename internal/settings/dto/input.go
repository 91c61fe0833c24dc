package dto

type UpdateSettingsInput struct {
	TenantID string
	// Patch replaces whole top-level sections of the stored document.
	Patch map[string]any
}

type SetFeatureInput struct {
	TenantID string
	Key      string
	Enabled  bool
}

type ChangeBusinessTypeInput struct {
	TenantID     string
	BusinessType string
	ApplyContent bool
}
