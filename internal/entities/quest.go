package entities

// DailyQuestID is the key of the recurring kill quest
const DailyQuestID = "daily"

// DefaultDailyTarget is the number of kills the daily quest asks for
const DefaultDailyTarget = 5

// DailyQuest tracks kills for one calendar day
type DailyQuest struct {
	Date          string `json:"date"`
	Kills         int    `json:"kills"`
	Target        int    `json:"target"`
	RewardClaimed bool   `json:"reward_claimed"`
}

// NewDailyQuest returns an empty quest for date
func NewDailyQuest(date string) *DailyQuest {
	return &DailyQuest{Date: date, Target: DefaultDailyTarget}
}

// Completed reports whether today's target has been met
func (q *DailyQuest) Completed() bool {
	return q.Kills >= q.Target
}
