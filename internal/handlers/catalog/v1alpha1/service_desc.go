package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "trainer.catalog.v1alpha1.CatalogService"

// Method names
const (
	MethodNormalizeStats  = "NormalizeStats"
	MethodGetCreature     = "GetCreature"
	MethodListCreatures   = "ListCreatures"
	MethodResolveCard     = "ResolveCard"
	MethodAddOwnedCard    = "AddOwnedCard"
	MethodSetLimitBreak   = "SetLimitBreak"
	MethodGetRoster       = "GetRoster"
	MethodRemoveOwnedCard = "RemoveOwnedCard"
)

// FullMethod returns the /service/method path used on the wire
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CatalogServiceServer is the server API for CatalogService. Every request
// and response is a google.protobuf.Struct.
type CatalogServiceServer interface {
	NormalizeStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCreature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCreatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveCard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddOwnedCard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimitBreak(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRoster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveOwnedCard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CatalogServiceDesc describes CatalogService for grpc.Server registration
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodNormalizeStats, CatalogServiceServer.NormalizeStats),
		unaryHandler(MethodGetCreature, CatalogServiceServer.GetCreature),
		unaryHandler(MethodListCreatures, CatalogServiceServer.ListCreatures),
		unaryHandler(MethodResolveCard, CatalogServiceServer.ResolveCard),
		unaryHandler(MethodAddOwnedCard, CatalogServiceServer.AddOwnedCard),
		unaryHandler(MethodSetLimitBreak, CatalogServiceServer.SetLimitBreak),
		unaryHandler(MethodGetRoster, CatalogServiceServer.GetRoster),
		unaryHandler(MethodRemoveOwnedCard, CatalogServiceServer.RemoveOwnedCard),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "trainer/catalog/v1alpha1/catalog.proto",
}

// RegisterCatalogServiceServer registers srv with s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// CatalogClient calls CatalogService over a client connection
type CatalogClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogClient creates a client over cc
func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

// Call invokes method with a request built from fields
func (c *CatalogClient) Call(
	ctx context.Context,
	method string,
	fields map[string]interface{},
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeStats calls CatalogService.NormalizeStats
func (c *CatalogClient) NormalizeStats(ctx context.Context, rawStats map[string]interface{}, potential int) (*structpb.Struct, error) {
	return c.Call(ctx, MethodNormalizeStats, map[string]interface{}{
		"raw_stats":           rawStats,
		"evolution_potential": potential,
	})
}

// GetCreature calls CatalogService.GetCreature
func (c *CatalogClient) GetCreature(ctx context.Context, id string) (*structpb.Struct, error) {
	return c.Call(ctx, MethodGetCreature, map[string]interface{}{"id": id})
}

// ListCreatures calls CatalogService.ListCreatures
func (c *CatalogClient) ListCreatures(ctx context.Context) (*structpb.Struct, error) {
	return c.Call(ctx, MethodListCreatures, map[string]interface{}{})
}

// ResolveCard calls CatalogService.ResolveCard
func (c *CatalogClient) ResolveCard(ctx context.Context, cardName string, level int) (*structpb.Struct, error) {
	return c.Call(ctx, MethodResolveCard, map[string]interface{}{
		"card_name": cardName,
		"level":     level,
	})
}

// AddOwnedCard calls CatalogService.AddOwnedCard
func (c *CatalogClient) AddOwnedCard(ctx context.Context, playerID, cardName string, level int) (*structpb.Struct, error) {
	return c.Call(ctx, MethodAddOwnedCard, map[string]interface{}{
		"player_id": playerID,
		"card_name": cardName,
		"level":     level,
	})
}

// SetLimitBreak calls CatalogService.SetLimitBreak
func (c *CatalogClient) SetLimitBreak(ctx context.Context, ownedCardID string, level int) (*structpb.Struct, error) {
	return c.Call(ctx, MethodSetLimitBreak, map[string]interface{}{
		"owned_card_id": ownedCardID,
		"level":         level,
	})
}

// GetRoster calls CatalogService.GetRoster
func (c *CatalogClient) GetRoster(ctx context.Context, playerID string) (*structpb.Struct, error) {
	return c.Call(ctx, MethodGetRoster, map[string]interface{}{"player_id": playerID})
}

// RemoveOwnedCard calls CatalogService.RemoveOwnedCard
func (c *CatalogClient) RemoveOwnedCard(ctx context.Context, ownedCardID string) (*structpb.Struct, error) {
	return c.Call(ctx, MethodRemoveOwnedCard, map[string]interface{}{"owned_card_id": ownedCardID})
}
