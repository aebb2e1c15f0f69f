package entities

import "slices"

// StoryProgress tracks the campaign
type StoryProgress struct {
	CurrentChapter    int             `json:"current_chapter"`
	CompletedChapters []int           `json:"completed_chapters"`
	BossDefeated      map[string]bool `json:"boss_defeated"`
}

// NewStoryProgress starts the campaign at chapter 1
func NewStoryProgress() StoryProgress {
	return StoryProgress{
		CurrentChapter:    1,
		CompletedChapters: []int{},
		BossDefeated:      map[string]bool{},
	}
}

// IsCompleted reports whether the chapter has been completed
func (s *StoryProgress) IsCompleted(chapterID int) bool {
	return slices.Contains(s.CompletedChapters, chapterID)
}

// IsBossDefeated reports whether the named boss has been beaten
func (s *StoryProgress) IsBossDefeated(name string) bool {
	return s.BossDefeated[name]
}

// MarkBossDefeated records a boss kill
func (s *StoryProgress) MarkBossDefeated(name string) {
	if s.BossDefeated == nil {
		s.BossDefeated = map[string]bool{}
	}
	s.BossDefeated[name] = true
}

// MarkCompleted appends the chapter once and moves to the next one
func (s *StoryProgress) MarkCompleted(chapterID int) {
	if !s.IsCompleted(chapterID) {
		s.CompletedChapters = append(s.CompletedChapters, chapterID)
	}
	s.CurrentChapter = chapterID + 1
}

func (s *StoryProgress) normalize() {
	if s.CurrentChapter < 1 {
		s.CurrentChapter = 1
	}
	if s.CompletedChapters == nil {
		s.CompletedChapters = []int{}
	}
	if s.BossDefeated == nil {
		s.BossDefeated = map[string]bool{}
	}
}

func (s StoryProgress) clone() StoryProgress {
	c := StoryProgress{
		CurrentChapter:    s.CurrentChapter,
		CompletedChapters: slices.Clone(s.CompletedChapters),
	}
	if s.BossDefeated != nil {
		c.BossDefeated = make(map[string]bool, len(s.BossDefeated))
		for k, v := range s.BossDefeated {
			c.BossDefeated[k] = v
		}
	}
	return c
}
