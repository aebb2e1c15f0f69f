package entities

// BattleState is the transient record of an ongoing fight
type BattleState struct {
	ID           string `json:"id"`
	MonsterKey   string `json:"monster_key"`
	MonsterName  string `json:"monster_name"`
	MonsterHP    int    `json:"monster_hp"`
	MonsterMaxHP int    `json:"monster_max_hp"`
	MonsterPower int    `json:"monster_power"`
	MonsterExp   int    `json:"monster_exp"`
	GoldMin      int    `json:"gold_min"`
	GoldMax      int    `json:"gold_max"`
	IsBoss       bool   `json:"is_boss"`
	IsElite      bool   `json:"is_elite"`
	Defending    bool   `json:"defending"`
	Turn         int    `json:"turn"`

	// DamageBonusPct boosts physical attacks while BuffTurns > 0.
	DamageBonusPct int `json:"damage_bonus_pct,omitempty"`
	BuffTurns      int `json:"buff_turns,omitempty"`

	StartedAt int64 `json:"started_at"`
}

// Buffed reports whether a power buff is active
func (b *BattleState) Buffed() bool {
	return b.BuffTurns > 0 && b.DamageBonusPct > 0
}
