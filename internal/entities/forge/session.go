package forge

// Session holds the full mutable state of one crafting attempt.
//
// The engine never mutates a Session in place; every transition returns a
// fresh copy (see Clone).
type Session struct {
	PlayerLevel int `json:"player_level"`

	MaxDurability     int `json:"max_durability"`
	CurrentDurability int `json:"current_durability"`

	// Progress is within [0,100]; reaching 100 enters the tempering phase
	Progress     int `json:"progress"`
	QualityScore int `json:"quality_score"`

	// Temperature is within [0,100]
	Temperature int `json:"temperature"`
	Focus       int `json:"focus"`
	MaxFocus    int `json:"max_focus"`

	// CostModifier is the material cost reduction, capped at 0.80
	CostModifier float64 `json:"cost_modifier"`

	// ScoreMultiplier is derived from state after every action; it is stored
	// so callers can display it without the engine
	ScoreMultiplier float64 `json:"score_multiplier"`

	ActiveDebuff  Debuff `json:"active_debuff,omitempty"`
	ComboActive   bool   `json:"combo_active"`
	PolishCount   int    `json:"polish_count"`
	DeathSaveUsed bool   `json:"death_save_used"`
	TurnCount     int    `json:"turn_count"`
	Status        Status `json:"status"`

	// Logs are newest first
	Logs []string `json:"logs"`

	Materials       []Material `json:"materials"`
	UnlockedTalents []string   `json:"unlocked_talents"`
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	c.Logs = append([]string(nil), s.Logs...)
	c.Materials = append([]Material(nil), s.Materials...)
	c.UnlockedTalents = append([]string(nil), s.UnlockedTalents...)
	return &c
}

// IsTempering reports whether the session reached full progress
func (s *Session) IsTempering() bool {
	return s.Progress >= 100
}

// HasTalent reports whether the talent id was unlocked when the session began
func (s *Session) HasTalent(id string) bool {
	for _, t := range s.UnlockedTalents {
		if t == id {
			return true
		}
	}
	return false
}

// PrependLog adds a newest-first log line
func (s *Session) PrependLog(line string) {
	s.Logs = append([]string{line}, s.Logs...)
}
