package forge

// Stat is a single rolled equipment stat
type Stat struct {
	Type   StatType `json:"type"`
	Label  string   `json:"label"`
	Value  int      `json:"value"`
	Suffix string   `json:"suffix"`
}

// Equipment is the item a completed forge session produces
type Equipment struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    EquipmentType `json:"type"`
	Quality Quality       `json:"quality"`
	Stats   []Stat        `json:"stats"`

	// Value is the sale price in gold
	Value int `json:"value"`

	MaterialsUsed []Quality `json:"materials_used"`

	// Score is the quality score the item was forged with
	Score int `json:"score"`

	// Combat durability, separate from the forge's crafting durability
	MaxDurability     int `json:"max_durability"`
	CurrentDurability int `json:"current_durability"`
}

// StatValue returns the value of the given stat, or 0 if it was not rolled
func (e *Equipment) StatValue(t StatType) int {
	for _, s := range e.Stats {
		if s.Type == t {
			return s.Value
		}
	}
	return 0
}
