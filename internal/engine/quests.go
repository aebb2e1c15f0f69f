package engine

import (
	"fmt"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
)

// Daily quest payout
const (
	DailyRewardGold = 50
	DailyRewardExp  = 25
)

// QuestReward is what claiming the daily quest paid
type QuestReward struct {
	Gold         int            `json:"gold"`
	Exp          int            `json:"exp"`
	LevelUp      *LevelUpResult `json:"level_up,omitempty"`
	Achievements []Achievement  `json:"achievements,omitempty"`
}

// UpdateDailyQuest resets the quest when the calendar day has changed and
// returns it. Every read or write of the quest goes through here first.
func (r *Rules) UpdateDailyQuest(p *entities.Player) *entities.DailyQuest {
	q := p.DailyQuest()
	if today := clock.Today(r.clock); q.Date != today {
		q.Date = today
		q.Kills = 0
		q.RewardClaimed = false
	}
	if q.Target <= 0 {
		q.Target = entities.DefaultDailyTarget
	}
	return q
}

// IncrementKills credits kills to the daily quest. It returns true only on
// the increment that reaches the target.
func (r *Rules) IncrementKills(p *entities.Player, amount int) bool {
	q := r.UpdateDailyQuest(p)
	before := q.Kills
	q.Kills += amount
	return !q.RewardClaimed && before < q.Target && q.Kills >= q.Target
}

// CanClaimReward checks whether the daily reward is ready
func (r *Rules) CanClaimReward(p *entities.Player) error {
	q := r.UpdateDailyQuest(p)
	if q.RewardClaimed {
		return errors.Duplicatef(ReasonRewardClaimed, "you already claimed today's reward")
	}
	if q.Kills < q.Target {
		return errors.Declinef(ReasonQuestIncomplete, "quest not finished yet: %d/%d kills", q.Kills, q.Target)
	}
	return nil
}

// ClaimDailyReward pays out the daily quest once per day
func (r *Rules) ClaimDailyReward(p *entities.Player) (*QuestReward, error) {
	if err := r.CanClaimReward(p); err != nil {
		return nil, err
	}

	p.Gold += DailyRewardGold
	p.DailyQuest().RewardClaimed = true
	levelUp := r.AddExperience(p, DailyRewardExp)

	return &QuestReward{
		Gold:         DailyRewardGold,
		Exp:          DailyRewardExp,
		LevelUp:      levelUp,
		Achievements: CheckAndAward(p),
	}, nil
}

// QuestCompletedMessage is the banner shown when the target is reached
func QuestCompletedMessage(q *entities.DailyQuest) string {
	return fmt.Sprintf("Daily quest complete! (%d/%d) Claim your reward.", q.Kills, q.Target)
}
