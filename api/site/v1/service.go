package sitev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type unaryMethod func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a Struct-in/Struct-out method to grpc.MethodHandler,
// running it through the server interceptor chain when one is installed.
func unaryHandler(fullMethod string, call unaryMethod) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke(ctx context.Context, cc grpc.ClientConnInterface, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// site.v1.SettingsService

const (
	SettingsService_GetSettings_FullMethodName        = "/site.v1.SettingsService/GetSettings"
	SettingsService_UpdateSettings_FullMethodName     = "/site.v1.SettingsService/UpdateSettings"
	SettingsService_SetFeature_FullMethodName         = "/site.v1.SettingsService/SetFeature"
	SettingsService_ResetFeatures_FullMethodName      = "/site.v1.SettingsService/ResetFeatures"
	SettingsService_ChangeBusinessType_FullMethodName = "/site.v1.SettingsService/ChangeBusinessType"
	SettingsService_GetAdminNav_FullMethodName        = "/site.v1.SettingsService/GetAdminNav"
)

type SettingsServiceServer interface {
	// GetSettings returns the resolved settings document of the caller's tenant.
	GetSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// UpdateSettings replaces the top-level sections present in the request.
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// SetFeature takes {"key": string, "enabled": bool}.
	SetFeature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetFeatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// ChangeBusinessType takes {"businessType": string, "applyContent": bool}.
	ChangeBusinessType(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetAdminNav returns {"items": [...]}. The plan comes from the x-tenant-plan header.
	GetAdminNav(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedSettingsServiceServer must be embedded to have forward
// compatible implementations.
type UnimplementedSettingsServiceServer struct{}

func (UnimplementedSettingsServiceServer) GetSettings(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSettings not implemented")
}
func (UnimplementedSettingsServiceServer) UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSettings not implemented")
}
func (UnimplementedSettingsServiceServer) SetFeature(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetFeature not implemented")
}
func (UnimplementedSettingsServiceServer) ResetFeatures(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetFeatures not implemented")
}
func (UnimplementedSettingsServiceServer) ChangeBusinessType(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeBusinessType not implemented")
}
func (UnimplementedSettingsServiceServer) GetAdminNav(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAdminNav not implemented")
}

func settingsServer(srv any) SettingsServiceServer { return srv.(SettingsServiceServer) }

var SettingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "site.v1.SettingsService",
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSettings",
			Handler: unaryHandler(SettingsService_GetSettings_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).GetSettings(ctx, in)
			}),
		},
		{
			MethodName: "UpdateSettings",
			Handler: unaryHandler(SettingsService_UpdateSettings_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).UpdateSettings(ctx, in)
			}),
		},
		{
			MethodName: "SetFeature",
			Handler: unaryHandler(SettingsService_SetFeature_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).SetFeature(ctx, in)
			}),
		},
		{
			MethodName: "ResetFeatures",
			Handler: unaryHandler(SettingsService_ResetFeatures_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).ResetFeatures(ctx, in)
			}),
		},
		{
			MethodName: "ChangeBusinessType",
			Handler: unaryHandler(SettingsService_ChangeBusinessType_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).ChangeBusinessType(ctx, in)
			}),
		},
		{
			MethodName: "GetAdminNav",
			Handler: unaryHandler(SettingsService_GetAdminNav_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return settingsServer(srv).GetAdminNav(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "site/v1/settings.proto",
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	s.RegisterService(&SettingsService_ServiceDesc, srv)
}

type SettingsServiceClient interface {
	GetSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetFeature(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ResetFeatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ChangeBusinessType(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetAdminNav(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type settingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsServiceClient(cc grpc.ClientConnInterface) SettingsServiceClient {
	return &settingsServiceClient{cc}
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_GetSettings_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) UpdateSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_UpdateSettings_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) SetFeature(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_SetFeature_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) ResetFeatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_ResetFeatures_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) ChangeBusinessType(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_ChangeBusinessType_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) GetAdminNav(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, SettingsService_GetAdminNav_FullMethodName, in, opts...)
}

// ---------------------------------------------------------------------------
// site.v1.CatalogService

const (
	CatalogService_ListCategories_FullMethodName  = "/site.v1.CatalogService/ListCategories"
	CatalogService_GetBusinessType_FullMethodName = "/site.v1.CatalogService/GetBusinessType"
	CatalogService_SearchTypes_FullMethodName     = "/site.v1.CatalogService/SearchTypes"
	CatalogService_ListFeatures_FullMethodName    = "/site.v1.CatalogService/ListFeatures"
)

type CatalogServiceServer interface {
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetBusinessType takes {"id": string}.
	GetBusinessType(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// SearchTypes takes {"query": string}.
	SearchTypes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListFeatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedCatalogServiceServer) GetBusinessType(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBusinessType not implemented")
}
func (UnimplementedCatalogServiceServer) SearchTypes(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchTypes not implemented")
}
func (UnimplementedCatalogServiceServer) ListFeatures(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFeatures not implemented")
}

func catalogServer(srv any) CatalogServiceServer { return srv.(CatalogServiceServer) }

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "site.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCategories",
			Handler: unaryHandler(CatalogService_ListCategories_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return catalogServer(srv).ListCategories(ctx, in)
			}),
		},
		{
			MethodName: "GetBusinessType",
			Handler: unaryHandler(CatalogService_GetBusinessType_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return catalogServer(srv).GetBusinessType(ctx, in)
			}),
		},
		{
			MethodName: "SearchTypes",
			Handler: unaryHandler(CatalogService_SearchTypes_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return catalogServer(srv).SearchTypes(ctx, in)
			}),
		},
		{
			MethodName: "ListFeatures",
			Handler: unaryHandler(CatalogService_ListFeatures_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return catalogServer(srv).ListFeatures(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "site/v1/catalog.proto",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient interface {
	ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBusinessType(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SearchTypes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListFeatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, CatalogService_ListCategories_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) GetBusinessType(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, CatalogService_GetBusinessType_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) SearchTypes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, CatalogService_SearchTypes_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) ListFeatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, CatalogService_ListFeatures_FullMethodName, in, opts...)
}
