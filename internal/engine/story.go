package engine

import (
	"fmt"
	"strings"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/content"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

// BossFightMinHP is the health a player needs to challenge a chapter boss
const BossFightMinHP = 20

// ChapterState is how a chapter looks from the player's side
type ChapterState int

// Chapter states
const (
	ChapterLocked ChapterState = iota
	ChapterAvailable
	ChapterCurrent
	ChapterCompleted
)

func (s ChapterState) String() string {
	switch s {
	case ChapterAvailable:
		return "available"
	case ChapterCurrent:
		return "current"
	case ChapterCompleted:
		return "completed"
	default:
		return "locked"
	}
}

// BossFight confirms that a chapter boss may be challenged. A chapter without
// a boss is completed on the spot: Boss is nil and Completion is set.
type BossFight struct {
	Chapter      *content.Chapter   `json:"chapter"`
	Boss         *content.Monster   `json:"boss,omitempty"`
	Completion   *ChapterCompletion `json:"completion,omitempty"`
	Achievements []Achievement      `json:"achievements,omitempty"`
	Message      string             `json:"message"`
}

// ChapterCompletion lists the rewards of a finished chapter
type ChapterCompletion struct {
	Chapter       *content.Chapter `json:"chapter"`
	RewardGold    int              `json:"reward_gold"`
	RewardExp     int              `json:"reward_exp"`
	RewardItem    string           `json:"reward_item,omitempty"`
	LevelUp       *LevelUpResult   `json:"level_up,omitempty"`
	NextChapter   *content.Chapter `json:"next_chapter,omitempty"`
	GameCompleted bool             `json:"game_completed"`
	Message       string           `json:"message"`
}

// CurrentChapter returns the chapter the player is on, or false once the
// campaign is finished
func (r *Rules) CurrentChapter(p *entities.Player) (*content.Chapter, bool) {
	return r.catalog.Chapter(p.Story.CurrentChapter)
}

// ChapterState classifies a chapter for the player
func (r *Rules) ChapterState(p *entities.Player, ch *content.Chapter) ChapterState {
	switch {
	case p.Story.IsCompleted(ch.ID):
		return ChapterCompleted
	case p.Story.CurrentChapter == ch.ID:
		return ChapterCurrent
	case p.Level >= ch.UnlockLevel:
		return ChapterAvailable
	default:
		return ChapterLocked
	}
}

// GameCompleted reports whether the final chapter is done
func (r *Rules) GameCompleted(p *entities.Player) bool {
	return p.Story.IsCompleted(r.catalog.FinalChapter())
}

// CheckChapterRequirements verifies level and location. Both are checked
// and every failure is listed under MetaReasons.
func (r *Rules) CheckChapterRequirements(p *entities.Player, ch *content.Chapter) error {
	var msgs, reasons []string
	if p.Level < ch.UnlockLevel {
		msgs = append(msgs, fmt.Sprintf("requires level %d, you are level %d", ch.UnlockLevel, p.Level))
		reasons = append(reasons, ReasonLevelTooLow)
	}
	if ch.Location != "" && p.Location != ch.Location {
		name := ch.Location
		if loc, ok := r.catalog.Location(ch.Location); ok {
			name = loc.Name
		}
		msgs = append(msgs, fmt.Sprintf("you must be in %s", name))
		reasons = append(reasons, ReasonWrongLocation)
	}
	if len(reasons) == 0 {
		return nil
	}
	return errors.Declinef(reasons[0], "%s", strings.Join(msgs, "; ")).WithMeta(MetaReasons, reasons)
}

// StartChapterBossFight checks that the chapter's boss can be challenged now.
// The fight itself begins with the next StartBattle. A chapter with no boss is
// completed and paid out here.
func (r *Rules) StartChapterBossFight(p *entities.Player, chapterID int) (*BossFight, error) {
	ch, ok := r.catalog.Chapter(chapterID)
	if !ok {
		return nil, errors.NotFoundf("chapter %d not found", chapterID)
	}
	if p.Story.CurrentChapter != chapterID {
		return nil, errors.Declinef(ReasonNotCurrentChapter, "chapter %d is not your current chapter", chapterID)
	}
	if p.Story.IsCompleted(chapterID) {
		return nil, errors.Duplicatef(ReasonChapterCompleted, "you already completed chapter %d", chapterID)
	}
	if err := r.CheckChapterRequirements(p, ch); err != nil {
		return nil, err
	}
	if p.InBattle() {
		return nil, errors.Declinef(ReasonAlreadyInBattle, "finish your current battle first")
	}

	if ch.Boss == "" {
		completion, err := r.CompleteChapter(p, chapterID)
		if err != nil {
			return nil, err
		}
		return &BossFight{
			Chapter:      ch,
			Completion:   completion,
			Achievements: CheckAndAward(p),
			Message:      completion.Message,
		}, nil
	}

	if p.Story.IsBossDefeated(ch.Boss) {
		return nil, errors.Duplicatef(ReasonBossDefeated, "you already defeated %s", ch.Boss)
	}
	if p.HP <= BossFightMinHP {
		return nil, errors.Declinef(ReasonLowHealth, "you need more than %d hp to face a boss", BossFightMinHP)
	}
	boss, ok := r.catalog.Boss(ch.Boss)
	if !ok {
		return nil, errors.NotFoundf("boss %s not found", ch.Boss)
	}

	return &BossFight{
		Chapter: ch,
		Boss:    boss,
		Message: fmt.Sprintf("The battle with %s begins!", boss.Name),
	}, nil
}

// PendingBoss returns the current chapter's boss when it is undefeated and
// the chapter requirements hold. StartBattle fights it instead of a random
// monster.
func (r *Rules) PendingBoss(p *entities.Player) (*content.Chapter, *content.Monster, bool) {
	ch, ok := r.CurrentChapter(p)
	if !ok || ch.Boss == "" || p.Story.IsCompleted(ch.ID) || p.Story.IsBossDefeated(ch.Boss) {
		return nil, nil, false
	}
	if r.CheckChapterRequirements(p, ch) != nil {
		return nil, nil, false
	}
	boss, ok := r.catalog.Boss(ch.Boss)
	if !ok {
		return nil, nil, false
	}
	return ch, boss, true
}

// CompleteChapter marks a chapter done and pays its rewards
func (r *Rules) CompleteChapter(p *entities.Player, chapterID int) (*ChapterCompletion, error) {
	ch, ok := r.catalog.Chapter(chapterID)
	if !ok {
		return nil, errors.NotFoundf("chapter %d not found", chapterID)
	}
	if p.Story.IsCompleted(chapterID) {
		return nil, errors.Duplicatef(ReasonChapterCompleted, "you already completed chapter %d", chapterID)
	}

	if ch.Boss != "" {
		p.Story.MarkBossDefeated(ch.Boss)
	}
	p.Story.MarkCompleted(chapterID)

	res := &ChapterCompletion{
		Chapter:    ch,
		RewardGold: ch.RewardGold,
		RewardExp:  ch.RewardExp,
		RewardItem: ch.RewardItem,
	}
	p.Gold += ch.RewardGold
	if ch.RewardItem != "" {
		p.Inventory = append(p.Inventory, ch.RewardItem)
	}

	rewards := []string{fmt.Sprintf("%d gold", ch.RewardGold), fmt.Sprintf("%d exp", ch.RewardExp)}
	if ch.RewardItem != "" {
		rewards = append(rewards, ch.RewardItem)
	}
	rewardText := strings.Join(rewards, ", ")

	if chapterID == r.catalog.FinalChapter() {
		res.GameCompleted = true
		res.Message = fmt.Sprintf("Chapter \"%s\" complete! You have finished the game and the world is saved. Rewards: %s.",
			ch.Title, rewardText)
	} else {
		res.Message = fmt.Sprintf("Chapter \"%s\" complete! Rewards: %s.", ch.Title, rewardText)
		if next, ok := r.catalog.Chapter(chapterID + 1); ok {
			res.NextChapter = next
			res.Message += fmt.Sprintf(" Next chapter: \"%s\" (requires level %d).", next.Title, next.UnlockLevel)
		}
	}

	res.LevelUp = r.AddExperience(p, ch.RewardExp)
	return res, nil
}
