package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpg.v1alpha1.GameService"

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	// GetProfile returns the player sheet, creating the player on first contact
	GetProfile(context.Context, *PlayerRequest) (*ProfileResponse, error)
	// GetMap lists the world's locations
	GetMap(context.Context, *PlayerRequest) (*MapResponse, error)
	// Travel moves the player to another location
	Travel(context.Context, *TravelRequest) (*TravelResponse, error)
	// Rest buys a full recovery at the inn
	Rest(context.Context, *PlayerRequest) (*RestResponse, error)
	// GetShop lists the items for sale
	GetShop(context.Context, *GetShopRequest) (*ShopResponse, error)
	// Purchase buys an item
	Purchase(context.Context, *PurchaseRequest) (*PurchaseResponse, error)
	// Equip wears an owned weapon or armor
	Equip(context.Context, *EquipRequest) (*EquipResponse, error)
	// GetQuests returns the daily quest and achievements
	GetQuests(context.Context, *PlayerRequest) (*QuestsResponse, error)
	// ClaimDailyReward pays the finished daily quest
	ClaimDailyReward(context.Context, *PlayerRequest) (*ClaimRewardResponse, error)
	// GetStory returns the campaign overview
	GetStory(context.Context, *PlayerRequest) (*StoryResponse, error)
	// StartChapterBossFight challenges the current chapter's boss
	StartChapterBossFight(context.Context, *StartChapterBossFightRequest) (*BossFightResponse, error)
	// GetLeaderboard ranks the top players
	GetLeaderboard(context.Context, *GetLeaderboardRequest) (*LeaderboardResponse, error)
	// StartBattle opens a battle at the player's location
	StartBattle(context.Context, *PlayerRequest) (*StartBattleResponse, error)
	// Attack resolves a physical attack round
	Attack(context.Context, *PlayerRequest) (*TurnResponse, error)
	// Defend resolves a guarded round
	Defend(context.Context, *PlayerRequest) (*TurnResponse, error)
	// CastSpell resolves a spell round
	CastSpell(context.Context, *CastSpellRequest) (*TurnResponse, error)
	// UsePotion resolves a potion round
	UsePotion(context.Context, *UsePotionRequest) (*TurnResponse, error)
	// Flee tries to escape the battle
	Flee(context.Context, *PlayerRequest) (*TurnResponse, error)
	// SimulateBattle resolves a whole fight at once
	SimulateBattle(context.Context, *SimulateBattleRequest) (*SimulateBattleResponse, error)
}

// RegisterGameServiceServer registers the game service on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceDesc describes the game service. Messages are JSON encoded with
// Codec.
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetProfile", Handler: unary("GetProfile", GameServiceServer.GetProfile)},
		{MethodName: "GetMap", Handler: unary("GetMap", GameServiceServer.GetMap)},
		{MethodName: "Travel", Handler: unary("Travel", GameServiceServer.Travel)},
		{MethodName: "Rest", Handler: unary("Rest", GameServiceServer.Rest)},
		{MethodName: "GetShop", Handler: unary("GetShop", GameServiceServer.GetShop)},
		{MethodName: "Purchase", Handler: unary("Purchase", GameServiceServer.Purchase)},
		{MethodName: "Equip", Handler: unary("Equip", GameServiceServer.Equip)},
		{MethodName: "GetQuests", Handler: unary("GetQuests", GameServiceServer.GetQuests)},
		{MethodName: "ClaimDailyReward", Handler: unary("ClaimDailyReward", GameServiceServer.ClaimDailyReward)},
		{MethodName: "GetStory", Handler: unary("GetStory", GameServiceServer.GetStory)},
		{MethodName: "StartChapterBossFight", Handler: unary("StartChapterBossFight", GameServiceServer.StartChapterBossFight)},
		{MethodName: "GetLeaderboard", Handler: unary("GetLeaderboard", GameServiceServer.GetLeaderboard)},
		{MethodName: "StartBattle", Handler: unary("StartBattle", GameServiceServer.StartBattle)},
		{MethodName: "Attack", Handler: unary("Attack", GameServiceServer.Attack)},
		{MethodName: "Defend", Handler: unary("Defend", GameServiceServer.Defend)},
		{MethodName: "CastSpell", Handler: unary("CastSpell", GameServiceServer.CastSpell)},
		{MethodName: "UsePotion", Handler: unary("UsePotion", GameServiceServer.UsePotion)},
		{MethodName: "Flee", Handler: unary("Flee", GameServiceServer.Flee)},
		{MethodName: "SimulateBattle", Handler: unary("SimulateBattle", GameServiceServer.SimulateBattle)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpg/v1alpha1/game",
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
