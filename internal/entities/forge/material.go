package forge

// Material is an item consumed by the forge to seed starting bonuses and
// ongoing modifiers. Materials are immutable once created.
type Material struct {
	// ID is the instance id; two copies of the same catalog entry differ here
	ID string `json:"id"`

	// CatalogID is the catalog entry this instance was created from (e.g. "m_iron_1")
	CatalogID string `json:"catalog_id"`

	Quality     Quality    `json:"quality"`
	Name        string     `json:"name"`
	Price       int        `json:"price"`
	EffectType  EffectType `json:"effect_type"`
	EffectValue float64    `json:"effect_value"`
	Description string     `json:"description"`

	// DungeonOnly materials never appear in the shop
	DungeonOnly bool `json:"dungeon_only,omitempty"`
}

// NewInstance copies a catalog material under a new instance id
func (m Material) NewInstance(id string) Material {
	m.CatalogID = m.catalogID()
	m.ID = id
	return m
}

func (m Material) catalogID() string {
	if m.CatalogID != "" {
		return m.CatalogID
	}
	return m.ID
}

// TotalQuality sums the quality ordinals of the given materials
func TotalQuality(materials []Material) int {
	total := 0
	for _, m := range materials {
		total += int(m.Quality)
	}
	return total
}

// Qualities returns the quality of each material, in order
func Qualities(materials []Material) []Quality {
	qualities := make([]Quality, len(materials))
	for i, m := range materials {
		qualities[i] = m.Quality
	}
	return qualities
}
