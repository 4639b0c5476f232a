// Package catalog serves the material and talent catalogs. Both ship as
// YAML embedded in the binary.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/forge-api/internal/clients/catalog Client

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
)

//go:embed data/materials.yaml
var defaultMaterials []byte

//go:embed data/talents.yaml
var defaultTalents []byte

// Client defines the interface for catalog lookups
type Client interface {
	// GetMaterial returns the catalog entry for a material id
	GetMaterial(ctx context.Context, materialID string) (*forge.Material, error)

	// ListMaterials returns catalog entries in catalog order
	ListMaterials(ctx context.Context, input *ListMaterialsInput) ([]*forge.Material, error)

	// GetTalent returns a talent node
	GetTalent(ctx context.Context, talentID string) (*forge.Talent, error)

	// ListTalents returns the whole tree, branch by branch in tier order
	ListTalents(ctx context.Context) ([]*forge.Talent, error)
}

// ListMaterialsInput filters ListMaterials
type ListMaterialsInput struct {
	// ShopOnly drops dungeon-only materials
	ShopOnly bool
	// Quality keeps a single tier when set
	Quality forge.Quality
}

// Config contains configuration options for the catalog client
type Config struct {
	// MaterialsYAML replaces the embedded material catalog (optional)
	MaterialsYAML []byte
	// TalentsYAML replaces the embedded talent tree (optional)
	TalentsYAML []byte
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if len(cfg.MaterialsYAML) == 0 {
		cfg.MaterialsYAML = defaultMaterials
	}
	if len(cfg.TalentsYAML) == 0 {
		cfg.TalentsYAML = defaultTalents
	}
	return nil
}

type client struct {
	materials     []forge.Material
	materialIndex map[string]int
	talents       []forge.Talent
	talentIndex   map[string]int
}

// New creates a catalog client. A nil config uses the embedded catalogs.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	materials, err := parseMaterials(cfg.MaterialsYAML)
	if err != nil {
		return nil, err
	}
	talents, err := parseTalents(cfg.TalentsYAML)
	if err != nil {
		return nil, err
	}

	c := &client{
		materials:     materials,
		materialIndex: make(map[string]int, len(materials)),
		talents:       talents,
		talentIndex:   make(map[string]int, len(talents)),
	}
	for i, m := range materials {
		c.materialIndex[m.ID] = i
	}
	for i, t := range talents {
		c.talentIndex[t.ID] = i
	}

	slog.Debug("catalog loaded", "materials", len(materials), "talents", len(talents))
	return c, nil
}

func (c *client) GetMaterial(_ context.Context, materialID string) (*forge.Material, error) {
	i, ok := c.materialIndex[materialID]
	if !ok {
		return nil, errors.NotFoundf("material %s not found", materialID).
			WithMeta("material_id", materialID)
	}
	m := c.materials[i]
	return &m, nil
}

func (c *client) ListMaterials(_ context.Context, input *ListMaterialsInput) ([]*forge.Material, error) {
	if input == nil {
		input = &ListMaterialsInput{}
	}
	if input.Quality != 0 && !input.Quality.IsValid() {
		return nil, errors.InvalidArgumentf("invalid quality %d", input.Quality)
	}

	result := make([]*forge.Material, 0, len(c.materials))
	for _, m := range c.materials {
		if input.ShopOnly && m.DungeonOnly {
			continue
		}
		if input.Quality != 0 && m.Quality != input.Quality {
			continue
		}
		result = append(result, &m)
	}
	return result, nil
}

func (c *client) GetTalent(_ context.Context, talentID string) (*forge.Talent, error) {
	i, ok := c.talentIndex[talentID]
	if !ok {
		return nil, errors.NotFoundf("talent %s not found", talentID).
			WithMeta("talent_id", talentID)
	}
	t := c.talents[i]
	return &t, nil
}

func (c *client) ListTalents(_ context.Context) ([]*forge.Talent, error) {
	result := make([]*forge.Talent, len(c.talents))
	for i := range c.talents {
		t := c.talents[i]
		result[i] = &t
	}
	return result, nil
}
