package dto

import "time"

const EventSettingsUpdated = "SettingsUpdated"

type SettingsEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Payload   SettingsEventPayload `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
}

type SettingsEventPayload struct {
	TenantID         string `json:"tenant_id"`
	BusinessType     string `json:"business_type"`
	FeaturesModified bool   `json:"features_modified"`
}
