package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
)

// materialDefinition is one entry of materials.yaml
type materialDefinition struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Quality     int     `yaml:"quality"`
	Price       int     `yaml:"price"`
	Effect      string  `yaml:"effect"`
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description"`
	DungeonOnly bool    `yaml:"dungeon_only,omitempty"`
}

type materialsFile struct {
	Materials []materialDefinition `yaml:"materials"`
}

// talentDefinition is one entry of talents.yaml
type talentDefinition struct {
	ID            string `yaml:"id"`
	Branch        string `yaml:"branch"`
	Tier          int    `yaml:"tier"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Cost          int    `yaml:"cost"`
	RequiredLevel int    `yaml:"required_level"`
	Parent        string `yaml:"parent,omitempty"`
}

type talentsFile struct {
	Talents []talentDefinition `yaml:"talents"`
}

func parseMaterials(data []byte) ([]forge.Material, error) {
	var file materialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to parse materials YAML")
	}

	seen := make(map[string]bool, len(file.Materials))
	materials := make([]forge.Material, 0, len(file.Materials))
	for _, def := range file.Materials {
		m := forge.Material{
			ID:          def.ID,
			CatalogID:   def.ID,
			Quality:     forge.Quality(def.Quality),
			Name:        def.Name,
			Price:       def.Price,
			EffectType:  forge.EffectType(def.Effect),
			EffectValue: def.Value,
			Description: def.Description,
			DungeonOnly: def.DungeonOnly,
		}

		switch {
		case m.ID == "":
			return nil, errors.Internal("material without id")
		case seen[m.ID]:
			return nil, errors.Internalf("duplicate material %s", m.ID)
		case !m.Quality.IsValid():
			return nil, errors.Internalf("material %s has invalid quality %d", m.ID, def.Quality)
		case !m.EffectType.IsValid():
			return nil, errors.Internalf("material %s has unknown effect %s", m.ID, def.Effect)
		case m.Price < 0:
			return nil, errors.Internalf("material %s has negative price", m.ID)
		}

		seen[m.ID] = true
		materials = append(materials, m)
	}
	return materials, nil
}

func parseTalents(data []byte) ([]forge.Talent, error) {
	var file talentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to parse talents YAML")
	}

	seen := make(map[string]bool, len(file.Talents))
	talents := make([]forge.Talent, 0, len(file.Talents))
	for _, def := range file.Talents {
		t := forge.Talent{
			ID:            def.ID,
			Branch:        forge.TalentBranch(def.Branch),
			Tier:          def.Tier,
			Name:          def.Name,
			Description:   def.Description,
			Cost:          def.Cost,
			RequiredLevel: def.RequiredLevel,
			ParentID:      def.Parent,
		}

		switch {
		case t.ID == "":
			return nil, errors.Internal("talent without id")
		case seen[t.ID]:
			return nil, errors.Internalf("duplicate talent %s", t.ID)
		case t.Branch != forge.BranchDurability && t.Branch != forge.BranchQuality && t.Branch != forge.BranchExploration:
			return nil, errors.Internalf("talent %s has unknown branch %s", t.ID, def.Branch)
		case t.ParentID != "" && !seen[t.ParentID]:
			// parents are listed before their children
			return nil, errors.Internalf("talent %s lists unknown parent %s", t.ID, t.ParentID)
		}

		seen[t.ID] = true
		talents = append(talents, t)
	}
	return talents, nil
}
