package handler

import (
	"context"
	"errors"

	sitev1 "github.com/fekuna/omnipos-site-service/api/site/v1"
	"github.com/fekuna/omnipos-site-service/internal/catalog"
	"github.com/fekuna/omnipos-site-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ sitev1.CatalogServiceServer = (*CatalogHandler)(nil)

// CatalogHandler serves the registry. It needs no tenant context.
type CatalogHandler struct {
	sitev1.UnimplementedCatalogServiceServer
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: log,
	}
}

type getBusinessTypeRequest struct {
	ID string `json:"id"`
}

type searchTypesRequest struct {
	Query string `json:"query"`
}

type listCategoriesResponse struct {
	Categories []dto.CategoryView `json:"categories"`
}

type searchTypesResponse struct {
	Types []dto.TypeView `json:"types"`
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return h.encode(listCategoriesResponse{Categories: cats})
}

func (h *CatalogHandler) GetBusinessType(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in getBusinessTypeRequest
	if err := sitev1.DecodeStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if in.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	detail, err := h.uc.GetBusinessType(ctx, in.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrTypeNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return h.encode(detail)
}

func (h *CatalogHandler) SearchTypes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in searchTypesRequest
	if err := sitev1.DecodeStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	types, err := h.uc.SearchTypes(ctx, in.Query)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if types == nil {
		types = []dto.TypeView{}
	}
	return h.encode(searchTypesResponse{Types: types})
}

func (h *CatalogHandler) ListFeatures(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	features, err := h.uc.ListFeatures(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return h.encode(features)
}

func (h *CatalogHandler) encode(v any) (*structpb.Struct, error) {
	out, err := sitev1.EncodeStruct(v)
	if err != nil {
		h.logger.Error("failed to encode catalog response", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return out, nil
}
