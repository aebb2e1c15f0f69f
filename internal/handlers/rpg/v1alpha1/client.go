package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// GameServiceClient is the client API for the game service. Returned errors
// are *errors.Error restored from the gRPC status.
type GameServiceClient interface {
	GetProfile(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	GetMap(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*MapResponse, error)
	Travel(ctx context.Context, in *TravelRequest, opts ...grpc.CallOption) (*TravelResponse, error)
	Rest(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*RestResponse, error)
	GetShop(ctx context.Context, in *GetShopRequest, opts ...grpc.CallOption) (*ShopResponse, error)
	Purchase(ctx context.Context, in *PurchaseRequest, opts ...grpc.CallOption) (*PurchaseResponse, error)
	Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error)
	GetQuests(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*QuestsResponse, error)
	ClaimDailyReward(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error)
	GetStory(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*StoryResponse, error)
	StartChapterBossFight(ctx context.Context, in *StartChapterBossFightRequest, opts ...grpc.CallOption) (*BossFightResponse, error)
	GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardResponse, error)
	StartBattle(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*StartBattleResponse, error)
	Attack(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	Defend(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	CastSpell(ctx context.Context, in *CastSpellRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	UsePotion(ctx context.Context, in *UsePotionRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	Flee(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	SimulateBattle(ctx context.Context, in *SimulateBattleRequest, opts ...grpc.CallOption) (*SimulateBattleResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client over cc
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func (c *gameServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}
	return nil
}

func (c *gameServiceClient) GetProfile(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	out := new(ProfileResponse)
	if err := c.invoke(ctx, "GetProfile", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetMap(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*MapResponse, error) {
	out := new(MapResponse)
	if err := c.invoke(ctx, "GetMap", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Travel(ctx context.Context, in *TravelRequest, opts ...grpc.CallOption) (*TravelResponse, error) {
	out := new(TravelResponse)
	if err := c.invoke(ctx, "Travel", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Rest(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*RestResponse, error) {
	out := new(RestResponse)
	if err := c.invoke(ctx, "Rest", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetShop(ctx context.Context, in *GetShopRequest, opts ...grpc.CallOption) (*ShopResponse, error) {
	out := new(ShopResponse)
	if err := c.invoke(ctx, "GetShop", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Purchase(ctx context.Context, in *PurchaseRequest, opts ...grpc.CallOption) (*PurchaseResponse, error) {
	out := new(PurchaseResponse)
	if err := c.invoke(ctx, "Purchase", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error) {
	out := new(EquipResponse)
	if err := c.invoke(ctx, "Equip", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetQuests(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*QuestsResponse, error) {
	out := new(QuestsResponse)
	if err := c.invoke(ctx, "GetQuests", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ClaimDailyReward(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*ClaimRewardResponse, error) {
	out := new(ClaimRewardResponse)
	if err := c.invoke(ctx, "ClaimDailyReward", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetStory(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*StoryResponse, error) {
	out := new(StoryResponse)
	if err := c.invoke(ctx, "GetStory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StartChapterBossFight(ctx context.Context, in *StartChapterBossFightRequest, opts ...grpc.CallOption) (*BossFightResponse, error) {
	out := new(BossFightResponse)
	if err := c.invoke(ctx, "StartChapterBossFight", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardResponse, error) {
	out := new(LeaderboardResponse)
	if err := c.invoke(ctx, "GetLeaderboard", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StartBattle(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*StartBattleResponse, error) {
	out := new(StartBattleResponse)
	if err := c.invoke(ctx, "StartBattle", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Attack(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	out := new(TurnResponse)
	if err := c.invoke(ctx, "Attack", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Defend(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	out := new(TurnResponse)
	if err := c.invoke(ctx, "Defend", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) CastSpell(ctx context.Context, in *CastSpellRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	out := new(TurnResponse)
	if err := c.invoke(ctx, "CastSpell", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) UsePotion(ctx context.Context, in *UsePotionRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	out := new(TurnResponse)
	if err := c.invoke(ctx, "UsePotion", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Flee(ctx context.Context, in *PlayerRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	out := new(TurnResponse)
	if err := c.invoke(ctx, "Flee", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SimulateBattle(ctx context.Context, in *SimulateBattleRequest, opts ...grpc.CallOption) (*SimulateBattleResponse, error) {
	out := new(SimulateBattleResponse)
	if err := c.invoke(ctx, "SimulateBattle", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
