package render

import (
	"fmt"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/entities"
	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
)

func achievementLine(name, desc string, unlocked bool) string {
	if unlocked {
		return goldStyle.Render("★ "+name) + " " + mutedStyle.Render(desc)
	}
	return mutedStyle.Render("☆ " + name + " " + desc)
}

// Quests renders the daily quest and achievement list
func Quests(q *entities.DailyQuest, canClaim bool, achievements []v1alpha1.AchievementStatus) string {
	lines := []string{headStyle.Render("Daily hunt")}
	if q != nil {
		lines = append(lines, fmt.Sprintf("Defeat %d monsters: %s %d/%d", q.Target, bar(q.Kills, q.Target, goodStyle), min(q.Kills, q.Target), q.Target))
		switch {
		case q.RewardClaimed:
			lines = append(lines, mutedStyle.Render("Reward claimed. Come back tomorrow."))
		case canClaim:
			lines = append(lines, goodStyle.Render(fmt.Sprintf("Reward ready: %d gold, %d exp", engine.DailyRewardGold, engine.DailyRewardExp)))
		}
	}

	lines = append(lines, "", headStyle.Render("Achievements"))
	for _, a := range achievements {
		lines = append(lines, achievementLine(a.Name, a.Description, a.Unlocked))
	}
	return panel("Quests", lines...)
}

// Reward renders a claimed daily reward
func Reward(r *engine.QuestReward) string {
	if r == nil {
		return ""
	}

	lines := []string{goldStyle.Render(fmt.Sprintf("+%d gold", r.Gold)) + "  " + goodStyle.Render(fmt.Sprintf("+%d exp", r.Exp))}
	if r.LevelUp != nil {
		lines = append(lines, goldStyle.Render(r.LevelUp.Message))
	}
	for _, a := range r.Achievements {
		lines = append(lines, achievementLine(a.Name, a.Description, true))
	}
	return panel("Daily reward", lines...)
}

// Story renders the chapter list
func Story(chapters []v1alpha1.ChapterStatus, gameCompleted bool) string {
	lines := make([]string, 0, len(chapters)+1)
	for _, c := range chapters {
		if c.Chapter == nil {
			continue
		}
		title := fmt.Sprintf("%d. %s", c.Chapter.ID, c.Chapter.Title)
		switch c.State {
		case engine.ChapterCompleted.String():
			lines = append(lines, goodStyle.Render("✔ "+title))
		case engine.ChapterCurrent.String():
			lines = append(lines, goldStyle.Render("▶ "+title), "   "+c.Chapter.Description)
			if c.Chapter.Boss != "" {
				lines = append(lines, mutedStyle.Render(fmt.Sprintf("   Boss: %s in %s", c.Chapter.Boss, c.Chapter.Location)))
			}
		case engine.ChapterAvailable.String():
			lines = append(lines, "  "+title)
		default:
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("🔒 %s (level %d)", title, c.Chapter.UnlockLevel)))
		}
	}
	if gameCompleted {
		lines = append(lines, "", titleStyle.Render("The darkness is gone. You have finished the story."))
	}
	return panel("Story", lines...)
}

// BossFight renders an opened chapter boss battle
func BossFight(p *entities.Player, f *engine.BossFight, b *entities.BattleState) string {
	if f == nil {
		return ""
	}
	if f.Completion != nil {
		return ChapterComplete(f.Completion, f.Achievements)
	}
	return BattleStart(f.Message, p, b)
}

// ChapterComplete renders the rewards of a finished chapter
func ChapterComplete(c *engine.ChapterCompletion, unlocked []engine.Achievement) string {
	if c == nil {
		return ""
	}
	lines := []string{titleStyle.Render(c.Message)}
	if c.LevelUp != nil {
		lines = append(lines, goldStyle.Render(c.LevelUp.Message))
	}
	for _, a := range unlocked {
		lines = append(lines, achievementLine(a.Name, a.Description, true))
	}
	return panel("Chapter complete", lines...)
}

// Leaderboard renders the ranking
func Leaderboard(entries []v1alpha1.LeaderboardEntry) string {
	if len(entries) == 0 {
		return panel("Leaderboard", mutedStyle.Render("No adventurers yet."))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		rank := fmt.Sprintf("%2d.", e.Rank)
		if e.Rank <= 3 {
			rank = goldStyle.Render(rank)
		}
		lines = append(lines, fmt.Sprintf("%s #%d  level %d  %s  %d kills",
			rank, e.PlayerID, e.Level, goldStyle.Render(fmt.Sprintf("%dg", e.Gold)), e.TotalKills))
	}
	return panel("Leaderboard", lines...)
}
