package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/render"
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Look for a fight at your location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.StartBattleResponse, error) {
				return c.StartBattle(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
			},
			func(r *v1alpha1.StartBattleResponse) string {
				return render.BattleStart(r.Message, r.Player, r.Battle) + degradedNote(r.Degraded)
			})
	},
}

func showTurn(r *v1alpha1.TurnResponse) string {
	return render.Turn(r.Player, r.Turn) + degradedNote(r.Degraded)
}

// actionCmd builds a command for a battle action that takes no argument
func actionCmd(
	use, short string,
	act func(v1alpha1.GameServiceClient, context.Context, *v1alpha1.PlayerRequest, ...grpc.CallOption) (*v1alpha1.TurnResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd,
				func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.TurnResponse, error) {
					return act(c, ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
				},
				showTurn)
		},
	}
}

var (
	attackCmd = actionCmd("attack", "Attack the monster", v1alpha1.GameServiceClient.Attack)
	defendCmd = actionCmd("defend", "Raise your guard for a round", v1alpha1.GameServiceClient.Defend)
	fleeCmd   = actionCmd("flee", "Try to escape", v1alpha1.GameServiceClient.Flee)
)

var castCmd = &cobra.Command{
	Use:   "cast [spell-key]",
	Short: "Cast a learned spell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.TurnResponse, error) {
				return c.CastSpell(ctx, &v1alpha1.CastSpellRequest{PlayerID: playerID, SpellKey: args[0]})
			},
			showTurn)
	},
}

var potionCmd = &cobra.Command{
	Use:   "potion [potion-key]",
	Short: "Drink a potion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.TurnResponse, error) {
				return c.UsePotion(ctx, &v1alpha1.UsePotionRequest{PlayerID: playerID, PotionKey: args[0]})
			},
			showTurn)
	},
}

var simulateMonster string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve a whole fight at once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd,
			func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.SimulateBattleResponse, error) {
				return c.SimulateBattle(ctx, &v1alpha1.SimulateBattleRequest{PlayerID: playerID, MonsterKey: simulateMonster})
			},
			func(r *v1alpha1.SimulateBattleResponse) string {
				return render.Simulation(r.Result) + degradedNote(r.Degraded)
			})
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateMonster, "monster", "", "monster key (default: random for your location)")
}
