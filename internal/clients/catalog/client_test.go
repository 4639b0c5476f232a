package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/clients/catalog"
	"github.com/KirkDiggler/forge-api/internal/engine/forging"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite

	ctx    context.Context
	client catalog.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, err := catalog.New(nil)
	s.Require().NoError(err)
	s.client = client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestGetMaterial() {
	m, err := s.client.GetMaterial(s.ctx, "m_iron_1")
	s.Require().NoError(err)

	s.Equal(testutils.IronCommon(), *m)
}

func (s *ClientTestSuite) TestGetMaterialMatchesFixtures() {
	for _, want := range []forge.Material{testutils.CopperCommon(), testutils.GoldCommon()} {
		m, err := s.client.GetMaterial(s.ctx, want.ID)
		s.Require().NoError(err)
		s.Equal(want, *m)
	}

	amber, err := s.client.GetMaterial(s.ctx, "s_amber_3")
	s.Require().NoError(err)
	s.Equal(forge.EffectDeathSave, amber.EffectType)
	s.Equal(100.0, amber.EffectValue)
	s.True(amber.DungeonOnly)
}

func (s *ClientTestSuite) TestGetMaterialNotFound() {
	_, err := s.client.GetMaterial(s.ctx, "m_unobtainium")

	s.True(errors.IsNotFound(err))
	s.Equal("m_unobtainium", errors.GetMeta(err)["material_id"])
}

func (s *ClientTestSuite) TestGetMaterialReturnsCopy() {
	m, err := s.client.GetMaterial(s.ctx, "m_iron_1")
	s.Require().NoError(err)
	m.EffectValue = 1000

	again, err := s.client.GetMaterial(s.ctx, "m_iron_1")
	s.Require().NoError(err)
	s.Equal(15.0, again.EffectValue)
}

func (s *ClientTestSuite) TestListMaterials() {
	all, err := s.client.ListMaterials(s.ctx, nil)
	s.Require().NoError(err)

	shop, err := s.client.ListMaterials(s.ctx, &catalog.ListMaterialsInput{ShopOnly: true})
	s.Require().NoError(err)
	s.Len(shop, 9)
	for _, m := range shop {
		s.False(m.DungeonOnly, m.ID)
	}
	s.Greater(len(all), len(shop))

	rare, err := s.client.ListMaterials(s.ctx, &catalog.ListMaterialsInput{Quality: forge.QualityRare})
	s.Require().NoError(err)
	for _, m := range rare {
		s.Equal(forge.QualityRare, m.Quality)
	}

	_, err = s.client.ListMaterials(s.ctx, &catalog.ListMaterialsInput{Quality: forge.Quality(9)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestEveryEffectHasMaterial() {
	all, err := s.client.ListMaterials(s.ctx, nil)
	s.Require().NoError(err)

	effects := map[forge.EffectType]bool{}
	for _, m := range all {
		effects[m.EffectType] = true
	}
	for _, e := range forge.AllEffectTypes {
		s.True(effects[e], "no material for %s", e)
	}
}

func (s *ClientTestSuite) TestTalents() {
	talents, err := s.client.ListTalents(s.ctx)
	s.Require().NoError(err)
	s.Len(talents, 15)

	ids := map[string]bool{}
	for _, t := range talents {
		ids[t.ID] = true
	}
	for _, id := range []string{
		forging.TalentDurabilityBonus, forging.TalentQuenchRestore, forging.TalentOverheatCap,
		forging.TalentDurabilityBonusII, forging.TalentCostReduction, forging.TalentLightScore,
		forging.TalentOptimalZone, forging.TalentScoreMult, forging.TalentAftershock,
		forging.TalentScoreMultII, forging.TalentQuickQuench,
	} {
		s.True(ids[id], "missing talent %s", id)
	}

	t, err := s.client.GetTalent(s.ctx, "t_qual_2")
	s.Require().NoError(err)
	s.Equal(forge.BranchQuality, t.Branch)
	s.Equal("t_qual_1", t.ParentID)

	_, err = s.client.GetTalent(s.ctx, "t_nope")
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestNewRejectsBadCatalog() {
	testCases := []struct {
		name      string
		materials string
		talents   string
	}{
		{
			name:      "unknown effect",
			materials: "materials:\n  - {id: x, quality: 1, effect: SPECIAL_FLIGHT, value: 1}\n",
		},
		{
			name:      "bad quality",
			materials: "materials:\n  - {id: x, quality: 4, effect: DURABILITY, value: 1}\n",
		},
		{
			name:      "duplicate",
			materials: "materials:\n  - {id: x, quality: 1, effect: DURABILITY, value: 1}\n  - {id: x, quality: 1, effect: DURABILITY, value: 1}\n",
		},
		{
			name:    "unknown parent",
			talents: "talents:\n  - {id: t_a, branch: QUALITY, tier: 2, parent: t_b}\n",
		},
		{
			name:    "unknown branch",
			talents: "talents:\n  - {id: t_a, branch: MAGIC, tier: 1}\n",
		},
		{
			name:      "not yaml",
			materials: "materials: [\n",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.New(&catalog.Config{
				MaterialsYAML: []byte(tc.materials),
				TalentsYAML:   []byte(tc.talents),
			})
			s.True(errors.IsInternal(err))
		})
	}
}
