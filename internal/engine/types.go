package engine

import (
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// Declined-action reasons carried in errors.MetaReason
const (
	ReasonLowHealth         = "low_health"
	ReasonAlreadyInBattle   = "already_in_battle"
	ReasonNotInBattle       = "not_in_battle"
	ReasonPeacefulLocation  = "peaceful_location"
	ReasonNoEligibleMonster = "no_eligible_monster"
	ReasonSpellNotLearned   = "spell_not_learned"
	ReasonInsufficientMana  = "insufficient_mana"
	ReasonNoPotion          = "no_potion"
	ReasonFleeFromBoss      = "flee_from_boss"
	ReasonInsufficientGold  = "insufficient_gold"
	ReasonLevelTooLow       = "level_too_low"
	ReasonAlreadyOwned      = "already_owned"
	ReasonAlreadyLearned    = "already_learned"
	ReasonNotForSale        = "not_for_sale"
	ReasonItemNotOwned      = "item_not_owned"
	ReasonNotEquippable     = "not_equippable"
	ReasonWrongLocation     = "wrong_location"
	ReasonNotCurrentChapter = "not_current_chapter"
	ReasonChapterCompleted  = "chapter_completed"
	ReasonBossDefeated      = "boss_defeated"
	ReasonRewardClaimed     = "reward_claimed"
	ReasonQuestIncomplete   = "quest_incomplete"
)

// MetaReasons lists every failed requirement when more than one applies
const MetaReasons = "reasons"

// Outcome is the state a battle is in after an action
type Outcome int

// Battle outcomes
const (
	OutcomeContinue Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

var outcomeNames = []string{"continue", "victory", "defeat", "fled"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) && o >= 0 {
		return outcomeNames[o]
	}
	return "unknown"
}

// MarshalText encodes the outcome name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if name == string(b) {
			*o = Outcome(i)
			return nil
		}
	}
	return errors.InvalidArgumentf("unknown outcome %q", string(b))
}

// Terminal reports whether the battle is over
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// Encounter describes the result of monster selection
type Encounter int

// Encounter kinds
const (
	EncounterFound Encounter = iota
	EncounterPeaceful
	EncounterNoEligible
	EncounterUnknownLocation
)

// ProgressInput announces level-ups, a finished chapter and achievements
// earned by a town or quest action
type ProgressInput struct {
	Player       *entities.Player
	LevelUp      *LevelUpResult
	Chapter      *ChapterCompletion
	Achievements []Achievement
}

// Empty reports whether there is nothing to announce
func (in *ProgressInput) Empty() bool {
	return in.LevelUp == nil && in.Chapter == nil && len(in.Achievements) == 0
}

// StartBattleInput starts a fight for the player
type StartBattleInput struct {
	Player *entities.Player
}

// StartBattleOutput describes the new fight
type StartBattleOutput struct {
	Battle  *entities.BattleState `json:"battle"`
	Chapter *content.Chapter      `json:"chapter,omitempty"`
	Message string                `json:"message"`
}

// ActionInput is a battle action without arguments
type ActionInput struct {
	Player *entities.Player
}

// CastSpellInput casts a learned spell by key
type CastSpellInput struct {
	Player   *entities.Player
	SpellKey string
}

// UsePotionInput drinks a potion by key
type UsePotionInput struct {
	Player    *entities.Player
	PotionKey string
}

// TurnOutput reports one resolved round
type TurnOutput struct {
	Outcome       Outcome               `json:"outcome"`
	Log           []string              `json:"log"`
	Battle        *entities.BattleState `json:"battle,omitempty"`
	PlayerDamage  int                   `json:"player_damage"`
	Critical      bool                  `json:"critical"`
	MonsterDamage int                   `json:"monster_damage"`
	Dodged        bool                  `json:"dodged"`
	Victory       *VictoryResult        `json:"victory,omitempty"`
	Defeat        *DefeatResult         `json:"defeat,omitempty"`
}

// VictoryResult lists everything a win paid out
type VictoryResult struct {
	MonsterName    string             `json:"monster_name"`
	Elite          bool               `json:"elite"`
	Boss           bool               `json:"boss"`
	GoldEarned     int                `json:"gold_earned"`
	ExpEarned      int                `json:"exp_earned"`
	QuestCompleted bool               `json:"quest_completed"`
	LevelUp        *LevelUpResult     `json:"level_up,omitempty"`
	Chapter        *ChapterCompletion `json:"chapter,omitempty"`
	Achievements   []Achievement      `json:"achievements,omitempty"`
}

// DefeatResult lists the penalty of a loss
type DefeatResult struct {
	MonsterName string `json:"monster_name"`
	GoldLost    int    `json:"gold_lost"`
}

// SimulateBattleInput resolves a whole fight at once. A nil Monster picks an
// opponent the same way StartBattle does.
type SimulateBattleInput struct {
	Player  *entities.Player
	Monster *content.Monster
}

// BattleResult is the outcome of an instant fight
type BattleResult struct {
	MonsterName string   `json:"monster_name"`
	Victory     bool     `json:"victory"`
	Rounds      int      `json:"rounds"`
	PlayerHP    int      `json:"player_hp"`
	GoldEarned  int      `json:"gold_earned"`
	ExpEarned   int      `json:"exp_earned"`
	GoldLost    int      `json:"gold_lost"`
	Log         []string `json:"log"`
}

// SimulateBattleOutput is the applied instant fight
type SimulateBattleOutput struct {
	Result  *BattleResult  `json:"result"`
	Victory *VictoryResult `json:"victory,omitempty"`
	Defeat  *DefeatResult  `json:"defeat,omitempty"`
}
