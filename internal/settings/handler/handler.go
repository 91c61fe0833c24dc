package handler

import (
	"context"
	"errors"

	sitev1 "github.com/fekuna/omnipos-site-service/api/site/v1"
	"github.com/fekuna/omnipos-site-service/internal/auth"
	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/fekuna/omnipos-site-service/internal/settings/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ sitev1.SettingsServiceServer = (*SettingsHandler)(nil)

type SettingsHandler struct {
	sitev1.UnimplementedSettingsServiceServer
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

type setFeatureRequest struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}

type changeBusinessTypeRequest struct {
	BusinessType string `json:"businessType"`
	ApplyContent bool   `json:"applyContent"`
}

type adminNavResponse struct {
	Items []businesstype.NavItem `json:"items"`
}

func (h *SettingsHandler) GetSettings(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.uc.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, h.toStatus("failed to get settings", tenantID, err)
	}
	return h.settingsResponse(s)
}

func (h *SettingsHandler) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.uc.UpdateSettings(ctx, &dto.UpdateSettingsInput{
		TenantID: tenantID,
		Patch:    req.AsMap(),
	})
	if err != nil {
		return nil, h.toStatus("failed to update settings", tenantID, err)
	}
	return h.settingsResponse(s)
}

func (h *SettingsHandler) SetFeature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	var in setFeatureRequest
	if err := sitev1.DecodeStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if in.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	s, err := h.uc.SetFeature(ctx, &dto.SetFeatureInput{
		TenantID: tenantID,
		Key:      in.Key,
		Enabled:  in.Enabled,
	})
	if err != nil {
		return nil, h.toStatus("failed to set feature", tenantID, err)
	}
	return h.settingsResponse(s)
}

func (h *SettingsHandler) ResetFeatures(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.uc.ResetFeatures(ctx, tenantID)
	if err != nil {
		return nil, h.toStatus("failed to reset features", tenantID, err)
	}
	return h.settingsResponse(s)
}

func (h *SettingsHandler) ChangeBusinessType(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	var in changeBusinessTypeRequest
	if err := sitev1.DecodeStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if in.BusinessType == "" {
		return nil, status.Error(codes.InvalidArgument, "businessType is required")
	}

	s, err := h.uc.ChangeBusinessType(ctx, &dto.ChangeBusinessTypeInput{
		TenantID:     tenantID,
		BusinessType: in.BusinessType,
		ApplyContent: in.ApplyContent,
	})
	if err != nil {
		return nil, h.toStatus("failed to change business type", tenantID, err)
	}
	return h.settingsResponse(s)
}

func (h *SettingsHandler) GetAdminNav(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.uc.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, h.toStatus("failed to get settings", tenantID, err)
	}

	// The plan comes from gateway metadata, never from the request body.
	out, err := sitev1.EncodeStruct(adminNavResponse{Items: businesstype.AdminNav(s.EnabledFeatures, auth.IsPro(ctx))})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func tenantFrom(ctx context.Context) (string, error) {
	tenantID := auth.GetTenantID(ctx)
	if tenantID == "" {
		return "", status.Error(codes.Unauthenticated, "missing tenant context")
	}
	return tenantID, nil
}

func (h *SettingsHandler) settingsResponse(s *model.RuntimeSettings) (*structpb.Struct, error) {
	out, err := sitev1.EncodeStruct(s)
	if err != nil {
		h.logger.Error("failed to encode settings", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to encode settings")
	}
	return out, nil
}

func (h *SettingsHandler) toStatus(msg, tenantID string, err error) error {
	switch {
	case errors.Is(err, settings.ErrUnknownFeature),
		errors.Is(err, settings.ErrInvalidDocument),
		errors.Is(err, settings.ErrTenantRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	h.logger.Error(msg, zap.String("tenant_id", tenantID), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}
