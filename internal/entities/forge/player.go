package forge

import "time"

// BaseStats are the player's unequipped combat stats
type BaseStats struct {
	HP        int `json:"hp"`
	ATK       int `json:"atk"`
	DEF       int `json:"def"`
	Crit      int `json:"crit"`
	Lifesteal int `json:"lifesteal"`
}

// Player is the flat player-state document the forge reads at session
// creation and writes at the end of a session
type Player struct {
	ID     string `json:"id"`
	Level  int    `json:"level"`
	Exp    int    `json:"exp"`
	MaxExp int    `json:"max_exp"`
	Gold   int    `json:"gold"`

	Materials       []Material  `json:"materials"`
	Inventory       []Equipment `json:"inventory"`
	UnlockedTalents []string    `json:"unlocked_talents"`

	// MaxScore is the best quality score the player ever finalized
	MaxScore  int       `json:"max_score"`
	BaseStats BaseStats `json:"base_stats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindMaterial returns the owned material instance with the given id
func (p *Player) FindMaterial(id string) (Material, bool) {
	for _, m := range p.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// RemoveMaterials drops the given material instances from the player.
// Ids the player does not own are ignored.
func (p *Player) RemoveMaterials(ids ...string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := p.Materials[:0:0]
	for _, m := range p.Materials {
		if _, ok := drop[m.ID]; !ok {
			kept = append(kept, m)
		}
	}
	p.Materials = kept
}

// HasTalent reports whether the talent is unlocked
func (p *Player) HasTalent(id string) bool {
	for _, t := range p.UnlockedTalents {
		if t == id {
			return true
		}
	}
	return false
}

// RemoveEquipment drops an equipment item from the inventory and returns it
func (p *Player) RemoveEquipment(id string) (Equipment, bool) {
	for i, e := range p.Inventory {
		if e.ID == id {
			p.Inventory = append(p.Inventory[:i:i], p.Inventory[i+1:]...)
			return e, true
		}
	}
	return Equipment{}, false
}
