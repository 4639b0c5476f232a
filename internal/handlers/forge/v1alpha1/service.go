// Package v1alpha1 serves the forge and player gRPC services. Messages are
// plain Go structs carried by the JSON codec in internal/pkg/jsoncodec.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/forge-api/internal/pkg/jsoncodec"
)

// Fully qualified service names
const (
	ForgeServiceName  = "forge.api.v1alpha1.ForgeService"
	PlayerServiceName = "forge.api.v1alpha1.PlayerService"
)

// ForgeServiceServer is the server API for ForgeService
type ForgeServiceServer interface {
	StartForge(context.Context, *StartForgeRequest) (*StartForgeResponse, error)
	GetForge(context.Context, *GetForgeRequest) (*GetForgeResponse, error)
	ExecuteAction(context.Context, *ExecuteActionRequest) (*ExecuteActionResponse, error)
	ApplyDebuff(context.Context, *ApplyDebuffRequest) (*ApplyDebuffResponse, error)
	CompleteForge(context.Context, *CompleteForgeRequest) (*CompleteForgeResponse, error)
	AbandonForge(context.Context, *AbandonForgeRequest) (*AbandonForgeResponse, error)
}

// PlayerServiceServer is the server API for PlayerService
type PlayerServiceServer interface {
	CreatePlayer(context.Context, *CreatePlayerRequest) (*CreatePlayerResponse, error)
	GetPlayer(context.Context, *GetPlayerRequest) (*GetPlayerResponse, error)
	BuyMaterial(context.Context, *BuyMaterialRequest) (*BuyMaterialResponse, error)
	UnlockTalent(context.Context, *UnlockTalentRequest) (*UnlockTalentResponse, error)
	SellEquipment(context.Context, *SellEquipmentRequest) (*SellEquipmentResponse, error)
	ClaimLoot(context.Context, *ClaimLootRequest) (*ClaimLootResponse, error)
}

var forgeServiceDesc = grpc.ServiceDesc{
	ServiceName: ForgeServiceName,
	HandlerType: (*ForgeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ForgeServiceName, "StartForge", ForgeServiceServer.StartForge),
		unary(ForgeServiceName, "GetForge", ForgeServiceServer.GetForge),
		unary(ForgeServiceName, "ExecuteAction", ForgeServiceServer.ExecuteAction),
		unary(ForgeServiceName, "ApplyDebuff", ForgeServiceServer.ApplyDebuff),
		unary(ForgeServiceName, "CompleteForge", ForgeServiceServer.CompleteForge),
		unary(ForgeServiceName, "AbandonForge", ForgeServiceServer.AbandonForge),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forge/api/v1alpha1",
}

var playerServiceDesc = grpc.ServiceDesc{
	ServiceName: PlayerServiceName,
	HandlerType: (*PlayerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(PlayerServiceName, "CreatePlayer", PlayerServiceServer.CreatePlayer),
		unary(PlayerServiceName, "GetPlayer", PlayerServiceServer.GetPlayer),
		unary(PlayerServiceName, "BuyMaterial", PlayerServiceServer.BuyMaterial),
		unary(PlayerServiceName, "UnlockTalent", PlayerServiceServer.UnlockTalent),
		unary(PlayerServiceName, "SellEquipment", PlayerServiceServer.SellEquipment),
		unary(PlayerServiceName, "ClaimLoot", PlayerServiceServer.ClaimLoot),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forge/api/v1alpha1",
}

// RegisterForgeServiceServer registers the forge service on s
func RegisterForgeServiceServer(s grpc.ServiceRegistrar, srv ForgeServiceServer) {
	s.RegisterService(&forgeServiceDesc, srv)
}

// RegisterPlayerServiceServer registers the player service on s
func RegisterPlayerServiceServer(s grpc.ServiceRegistrar, srv PlayerServiceServer) {
	s.RegisterService(&playerServiceDesc, srv)
}

// unary builds the method descriptor of one unary RPC, running the server
// interceptor chain the way generated code does
func unary[S, Req, Resp any](
	service, method string,
	call func(S, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ForgeServiceClient is the client API for ForgeService
type ForgeServiceClient interface {
	StartForge(ctx context.Context, in *StartForgeRequest, opts ...grpc.CallOption) (*StartForgeResponse, error)
	GetForge(ctx context.Context, in *GetForgeRequest, opts ...grpc.CallOption) (*GetForgeResponse, error)
	ExecuteAction(ctx context.Context, in *ExecuteActionRequest, opts ...grpc.CallOption) (*ExecuteActionResponse, error)
	ApplyDebuff(ctx context.Context, in *ApplyDebuffRequest, opts ...grpc.CallOption) (*ApplyDebuffResponse, error)
	CompleteForge(ctx context.Context, in *CompleteForgeRequest, opts ...grpc.CallOption) (*CompleteForgeResponse, error)
	AbandonForge(ctx context.Context, in *AbandonForgeRequest, opts ...grpc.CallOption) (*AbandonForgeResponse, error)
}

// PlayerServiceClient is the client API for PlayerService
type PlayerServiceClient interface {
	CreatePlayer(ctx context.Context, in *CreatePlayerRequest, opts ...grpc.CallOption) (*CreatePlayerResponse, error)
	GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*GetPlayerResponse, error)
	BuyMaterial(ctx context.Context, in *BuyMaterialRequest, opts ...grpc.CallOption) (*BuyMaterialResponse, error)
	UnlockTalent(ctx context.Context, in *UnlockTalentRequest, opts ...grpc.CallOption) (*UnlockTalentResponse, error)
	SellEquipment(ctx context.Context, in *SellEquipmentRequest, opts ...grpc.CallOption) (*SellEquipmentResponse, error)
	ClaimLoot(ctx context.Context, in *ClaimLootRequest, opts ...grpc.CallOption) (*ClaimLootResponse, error)
}

type forgeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewForgeServiceClient creates a ForgeService client that speaks JSON
func NewForgeServiceClient(cc grpc.ClientConnInterface) ForgeServiceClient {
	return &forgeServiceClient{cc: cc}
}

type playerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayerServiceClient creates a PlayerService client that speaks JSON
func NewPlayerServiceClient(cc grpc.ClientConnInterface) PlayerServiceClient {
	return &playerServiceClient{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	service, method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *forgeServiceClient) StartForge(ctx context.Context, in *StartForgeRequest, opts ...grpc.CallOption) (*StartForgeResponse, error) {
	return invoke[StartForgeResponse](ctx, c.cc, ForgeServiceName, "StartForge", in, opts)
}

func (c *forgeServiceClient) GetForge(ctx context.Context, in *GetForgeRequest, opts ...grpc.CallOption) (*GetForgeResponse, error) {
	return invoke[GetForgeResponse](ctx, c.cc, ForgeServiceName, "GetForge", in, opts)
}

func (c *forgeServiceClient) ExecuteAction(ctx context.Context, in *ExecuteActionRequest, opts ...grpc.CallOption) (*ExecuteActionResponse, error) {
	return invoke[ExecuteActionResponse](ctx, c.cc, ForgeServiceName, "ExecuteAction", in, opts)
}

func (c *forgeServiceClient) ApplyDebuff(ctx context.Context, in *ApplyDebuffRequest, opts ...grpc.CallOption) (*ApplyDebuffResponse, error) {
	return invoke[ApplyDebuffResponse](ctx, c.cc, ForgeServiceName, "ApplyDebuff", in, opts)
}

func (c *forgeServiceClient) CompleteForge(ctx context.Context, in *CompleteForgeRequest, opts ...grpc.CallOption) (*CompleteForgeResponse, error) {
	return invoke[CompleteForgeResponse](ctx, c.cc, ForgeServiceName, "CompleteForge", in, opts)
}

func (c *forgeServiceClient) AbandonForge(ctx context.Context, in *AbandonForgeRequest, opts ...grpc.CallOption) (*AbandonForgeResponse, error) {
	return invoke[AbandonForgeResponse](ctx, c.cc, ForgeServiceName, "AbandonForge", in, opts)
}

func (c *playerServiceClient) CreatePlayer(ctx context.Context, in *CreatePlayerRequest, opts ...grpc.CallOption) (*CreatePlayerResponse, error) {
	return invoke[CreatePlayerResponse](ctx, c.cc, PlayerServiceName, "CreatePlayer", in, opts)
}

func (c *playerServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*GetPlayerResponse, error) {
	return invoke[GetPlayerResponse](ctx, c.cc, PlayerServiceName, "GetPlayer", in, opts)
}

func (c *playerServiceClient) BuyMaterial(ctx context.Context, in *BuyMaterialRequest, opts ...grpc.CallOption) (*BuyMaterialResponse, error) {
	return invoke[BuyMaterialResponse](ctx, c.cc, PlayerServiceName, "BuyMaterial", in, opts)
}

func (c *playerServiceClient) UnlockTalent(ctx context.Context, in *UnlockTalentRequest, opts ...grpc.CallOption) (*UnlockTalentResponse, error) {
	return invoke[UnlockTalentResponse](ctx, c.cc, PlayerServiceName, "UnlockTalent", in, opts)
}

func (c *playerServiceClient) SellEquipment(ctx context.Context, in *SellEquipmentRequest, opts ...grpc.CallOption) (*SellEquipmentResponse, error) {
	return invoke[SellEquipmentResponse](ctx, c.cc, PlayerServiceName, "SellEquipment", in, opts)
}

func (c *playerServiceClient) ClaimLoot(ctx context.Context, in *ClaimLootRequest, opts ...grpc.CallOption) (*ClaimLootResponse, error) {
	return invoke[ClaimLootResponse](ctx, c.cc, PlayerServiceName, "ClaimLoot", in, opts)
}
