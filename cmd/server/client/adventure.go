package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/render"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your character",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ProfileResponse, error) {
				return c.GetProfile(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.ProfileResponse) string {
				out := render.Profile(r.Player, r.Location, r.NextLevelExp)
				if r.Created {
					out = render.Message("Welcome, adventurer!") + "\n" + out
				}
				return out
			})
	},
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the world map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.MapResponse, error) {
				return c.GetMap(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.MapResponse) string {
				return render.Map(r.Locations, r.Current)
			})
	},
}

var travelCmd = &cobra.Command{
	Use:   "travel [location]",
	Short: "Travel to a location",
	Long: `Travel to another location. Examples:

  travel forest
  travel village`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.TravelResponse, error) {
				return c.Travel(ctx, &v1alpha1.TravelRequest{PlayerID: playerID, LocationKey: args[0]})
			},
			func(r *v1alpha1.TravelResponse) string {
				return render.Location(r.Location) + degradedNote(r.Degraded)
			})
	},
}

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Rest at the inn",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.RestResponse, error) {
				return c.Rest(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.RestResponse) string {
				return render.Rest(r.Result) + degradedNote(r.Degraded)
			})
	},
}

var shopKinds []string

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List items for sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ShopResponse, error) {
				return c.GetShop(ctx, &v1alpha1.GetShopRequest{Kinds: shopKinds})
			},
			func(r *v1alpha1.ShopResponse) string {
				return render.Shop(r.Items)
			})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy [item-key]",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.PurchaseResponse, error) {
				return c.Purchase(ctx, &v1alpha1.PurchaseRequest{PlayerID: playerID, ItemKey: args[0]})
			},
			func(r *v1alpha1.PurchaseResponse) string {
				return render.Purchase(r.Result) + degradedNote(r.Degraded)
			})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [item-name]",
	Short: "Equip a weapon or armor you own",
	Long: `Equip an item from your inventory by its display name. Example:

  equip "Steel Sword"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.EquipResponse, error) {
				return c.Equip(ctx, &v1alpha1.EquipRequest{PlayerID: playerID, ItemName: args[0]})
			},
			func(r *v1alpha1.EquipResponse) string {
				return render.Equip(r.Result) + degradedNote(r.Degraded)
			})
	},
}

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "Show the daily quest and achievements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.QuestsResponse, error) {
				return c.GetQuests(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.QuestsResponse) string {
				return render.Quests(r.Quest, r.CanClaim, r.Achievements)
			})
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim the daily quest reward",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ClaimRewardResponse, error) {
				return c.ClaimDailyReward(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.ClaimRewardResponse) string {
				return render.Reward(r.Reward) + degradedNote(r.Degraded)
			})
	},
}

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Show the story chapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.StoryResponse, error) {
				return c.GetStory(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.StoryResponse) string {
				return render.Story(r.Chapters, r.GameCompleted)
			})
	},
}

var bossCmd = &cobra.Command{
	Use:   "boss [chapter]",
	Short: "Challenge a chapter boss",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapter, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid chapter %q: %w", args[0], err)
		}
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.BossFightResponse, error) {
				return c.StartChapterBossFight(ctx, &v1alpha1.StartChapterBossFightRequest{PlayerID: playerID, ChapterID: chapter})
			},
			func(r *v1alpha1.BossFightResponse) string {
				return render.BossFight(r.Player, r.Fight, r.Battle) + degradedNote(r.Degraded)
			})
	},
}

var leaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.LeaderboardResponse, error) {
				return c.GetLeaderboard(ctx, &v1alpha1.GetLeaderboardRequest{Limit: leaderboardLimit})
			},
			func(r *v1alpha1.LeaderboardResponse) string {
				return render.Leaderboard(r.Entries)
			})
	},
}

func init() {
	shopCmd.Flags().StringSliceVar(&shopKinds, "kind", nil, "filter by kind: weapon, armor, consumable, spell")
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 0, "number of players (default 10)")
}
