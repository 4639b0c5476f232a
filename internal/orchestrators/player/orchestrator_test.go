package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/forge-api/internal/clients/catalog"
	catalogmock "github.com/KirkDiggler/forge-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/forge-api/internal/engine"
	enginemock "github.com/KirkDiggler/forge-api/internal/engine/mock"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/player"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/forge-api/internal/pkg/idgen/mock"
	playerrepomock "github.com/KirkDiggler/forge-api/internal/repositories/player/mock"
	"github.com/KirkDiggler/forge-api/internal/testutils"
	"github.com/KirkDiggler/forge-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPlayerRepo *playerrepomock.MockRepository
	mockEngine     *enginemock.MockEngine
	orchestrator   player.Service
	ctx            context.Context

	player *forge.Player
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerrepomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	cat, err := catalog.New(nil)
	s.Require().NoError(err)

	o, err := player.NewOrchestrator(&player.Config{
		PlayerRepo:           s.mockPlayerRepo,
		Catalog:              cat,
		Engine:               s.mockEngine,
		MaterialIDGenerator:  idgen.NewSequential("mat"),
		EquipmentIDGenerator: idgen.NewSequential("loot"),
	})
	s.Require().NoError(err)
	s.orchestrator = o

	s.player = testutils.CreateTestPlayer(testutils.TestPlayerID)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := player.NewOrchestrator(&player.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Engine: is required")
	s.Contains(err.Error(), "EquipmentIDGenerator: is required")
}

func (s *OrchestratorTestSuite) TestCreatePlayer() {
	var saved *forge.Player
	gomock.InOrder(
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, "p-new", nil, errors.NotFound("player not found")),
		mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved),
	)

	out, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: "p-new"})
	s.Require().NoError(err)
	s.Same(saved, out.Player)

	p := out.Player
	s.Equal(1, p.Level)
	s.Equal(150, p.MaxExp)
	s.Equal(500, p.Gold)
	s.Equal(player.StartingStats, p.BaseStats)
	s.Empty(p.Inventory)
	s.Empty(p.UnlockedTalents)

	s.Require().Len(p.Materials, 3)
	expected := []forge.Material{
		testutils.IronCommon().NewInstance("mat_1"),
		testutils.CopperCommon().NewInstance("mat_2"),
		testutils.GoldCommon().NewInstance("mat_3"),
	}
	s.Equal(expected, p.Materials)
}

func (s *OrchestratorTestSuite) TestCreatePlayerNamesEveryInstance() {
	cat, err := catalog.New(nil)
	s.Require().NoError(err)
	mockIDs := idgenmock.NewMockGenerator(s.ctrl)
	o, err := player.NewOrchestrator(&player.Config{
		PlayerRepo:           s.mockPlayerRepo,
		Catalog:              cat,
		Engine:               s.mockEngine,
		MaterialIDGenerator:  mockIDs,
		EquipmentIDGenerator: idgen.NewSequential("loot"),
	})
	s.Require().NoError(err)

	var saved *forge.Player
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, "p-new", nil, errors.NotFound("player not found"))
	gomock.InOrder(
		mockIDs.EXPECT().Generate().Return("mat_a"),
		mockIDs.EXPECT().Generate().Return("mat_b"),
		mockIDs.EXPECT().Generate().Return("mat_c"),
	)
	mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved)

	out, err := o.CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: "p-new"})
	s.Require().NoError(err)
	s.Equal("mat_a", out.Player.Materials[0].ID)
	s.Equal("mat_b", out.Player.Materials[1].ID)
	s.Equal("mat_c", out.Player.Materials[2].ID)
	s.Equal("m_copper_1", out.Player.Materials[1].CatalogID)
}

func (s *OrchestratorTestSuite) TestCreatePlayerAlreadyExists() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)

	_, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestCreatePlayerStorageError() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, "p-new", nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: "p-new"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestCreatePlayerMissingStarterMaterial() {
	mockCatalog := catalogmock.NewMockClient(s.ctrl)
	o, err := player.NewOrchestrator(&player.Config{
		PlayerRepo:           s.mockPlayerRepo,
		Catalog:              mockCatalog,
		Engine:               s.mockEngine,
		MaterialIDGenerator:  idgen.NewSequential("mat"),
		EquipmentIDGenerator: idgen.NewSequential("loot"),
	})
	s.Require().NoError(err)

	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, "p-new", nil, errors.NotFound("player not found"))
	mockCatalog.EXPECT().
		GetMaterial(s.ctx, "m_iron_1").
		Return(nil, errors.NotFound("material m_iron_1 not found"))

	_, err = o.CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: "p-new"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetPlayer() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)

	out, err := s.orchestrator.GetPlayer(s.ctx, &player.GetPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Same(s.player, out.Player)

	_, err = s.orchestrator.GetPlayer(s.ctx, &player.GetPlayerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestBuyMaterial() {
	var saved *forge.Player
	gomock.InOrder(
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil),
		mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved),
	)

	out, err := s.orchestrator.BuyMaterial(s.ctx, &player.BuyMaterialInput{
		PlayerID:   testutils.TestPlayerID,
		MaterialID: "m_iron_2",
	})
	s.Require().NoError(err)
	s.Equal("mat_1", out.Material.ID)
	s.Equal("m_iron_2", out.Material.CatalogID)
	s.Equal(400, saved.Gold)
	s.Len(saved.Materials, 4)
}

func (s *OrchestratorTestSuite) TestBuyMaterialRejections() {
	s.Run("dungeon only", func() {
		_, err := s.orchestrator.BuyMaterial(s.ctx, &player.BuyMaterialInput{
			PlayerID:   testutils.TestPlayerID,
			MaterialID: "s_amber_3",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown material", func() {
		_, err := s.orchestrator.BuyMaterial(s.ctx, &player.BuyMaterialInput{
			PlayerID:   testutils.TestPlayerID,
			MaterialID: "m_mithril_9",
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("not enough gold", func() {
		s.player.Gold = 99
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)

		_, err := s.orchestrator.BuyMaterial(s.ctx, &player.BuyMaterialInput{
			PlayerID:   testutils.TestPlayerID,
			MaterialID: "m_iron_2",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(99, s.player.Gold)
		s.Len(s.player.Materials, 3)
	})

	s.Run("missing fields", func() {
		_, err := s.orchestrator.BuyMaterial(s.ctx, &player.BuyMaterialInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUnlockTalent() {
	var saved *forge.Player
	gomock.InOrder(
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil),
		mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved),
	)

	out, err := s.orchestrator.UnlockTalent(s.ctx, &player.UnlockTalentInput{
		PlayerID: testutils.TestPlayerID,
		TalentID: "t_dur_1",
	})
	s.Require().NoError(err)
	s.Equal("t_dur_1", out.Talent.ID)
	s.Equal([]string{"t_dur_1"}, saved.UnlockedTalents)
	s.Equal(300, saved.Gold)
}

func (s *OrchestratorTestSuite) TestUnlockTalentRejections() {
	testCases := []struct {
		name     string
		talentID string
		setup    func(p *forge.Player)
		check    func(error) bool
	}{
		{
			name:     "already unlocked",
			talentID: "t_dur_1",
			setup:    func(p *forge.Player) { p.UnlockedTalents = []string{"t_dur_1"} },
			check:    errors.IsAlreadyExists,
		},
		{
			name:     "parent locked",
			talentID: "t_dur_2",
			setup:    func(p *forge.Player) { p.Level = 10 },
			check:    errors.IsFailedPrecondition,
		},
		{
			name:     "level too low",
			talentID: "t_dur_2",
			setup:    func(p *forge.Player) { p.UnlockedTalents = []string{"t_dur_1"} },
			check:    errors.IsFailedPrecondition,
		},
		{
			name:     "not enough gold",
			talentID: "t_qual_1",
			setup:    func(p *forge.Player) { p.Gold = 50 },
			check:    errors.IsFailedPrecondition,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := testutils.CreateTestPlayer(testutils.TestPlayerID)
			tc.setup(p)
			mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, p, nil)

			_, err := s.orchestrator.UnlockTalent(s.ctx, &player.UnlockTalentInput{
				PlayerID: testutils.TestPlayerID,
				TalentID: tc.talentID,
			})
			s.Require().Error(err)
			s.True(tc.check(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestSellEquipment() {
	s.player.Inventory = []forge.Equipment{
		{ID: "eq_1", Name: "Common Weapon", Value: 170},
		{ID: "eq_2", Name: "Rare Armor", Value: 1350},
	}

	var saved *forge.Player
	gomock.InOrder(
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil),
		mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved),
	)

	out, err := s.orchestrator.SellEquipment(s.ctx, &player.SellEquipmentInput{
		PlayerID:    testutils.TestPlayerID,
		EquipmentID: "eq_2",
	})
	s.Require().NoError(err)
	s.Equal(1350, out.GoldEarned)
	s.Equal(1850, saved.Gold)
	s.Require().Len(saved.Inventory, 1)
	s.Equal("eq_1", saved.Inventory[0].ID)
}

func (s *OrchestratorTestSuite) TestSellEquipmentNotOwned() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)

	_, err := s.orchestrator.SellEquipment(s.ctx, &player.SellEquipmentInput{
		PlayerID:    testutils.TestPlayerID,
		EquipmentID: "eq_404",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("eq_404", errors.GetMeta(err)["equipment_id"])
}

func (s *OrchestratorTestSuite) TestClaimLoot() {
	s.player.Level = 4
	s.player.Inventory = []forge.Equipment{{ID: "eq_1", Name: "Common Weapon"}}

	s.mockEngine.EXPECT().
		GenerateLoot(s.ctx, &engine.GenerateLootInput{
			EquipmentType: forge.EquipmentArmor,
			Qualities:     []forge.Quality{forge.QualityRare, forge.QualityRefined},
			PlayerLevel:   4,
			BossDrop:      true,
		}).
		Return(&engine.GenerateLootOutput{Equipment: &forge.Equipment{
			Name:    "Rare Armor",
			Type:    forge.EquipmentArmor,
			Quality: forge.QualityRare,
			Score:   900,
		}}, nil)

	var saved *forge.Player
	gomock.InOrder(
		mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil),
		mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, &saved),
	)

	out, err := s.orchestrator.ClaimLoot(s.ctx, &player.ClaimLootInput{
		PlayerID:      testutils.TestPlayerID,
		EquipmentType: forge.EquipmentArmor,
		Qualities:     []forge.Quality{forge.QualityRare, forge.QualityRefined},
		BossDrop:      true,
	})
	s.Require().NoError(err)
	s.Equal("loot_1", out.Equipment.ID)
	s.Require().Len(saved.Inventory, 2)
	s.Equal("loot_1", saved.Inventory[1].ID)
	s.Equal(forge.QualityRare, saved.Inventory[1].Quality)
	// loot does not count toward the best forge score
	s.Zero(saved.MaxScore)
}

func (s *OrchestratorTestSuite) TestClaimLootBlacksmithReward() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)
	s.mockEngine.EXPECT().
		GenerateLoot(s.ctx, &engine.GenerateLootInput{
			EquipmentType: forge.EquipmentWeapon,
			PlayerLevel:   1,
			TargetScore:   500,
		}).
		Return(&engine.GenerateLootOutput{Equipment: &forge.Equipment{Quality: forge.QualityRefined, Score: 480}}, nil)
	mocks.ExpectPlayerSave(s.ctx, s.mockPlayerRepo, nil)

	out, err := s.orchestrator.ClaimLoot(s.ctx, &player.ClaimLootInput{
		PlayerID:      testutils.TestPlayerID,
		EquipmentType: forge.EquipmentWeapon,
		TargetScore:   500,
	})
	s.Require().NoError(err)
	s.Equal(480, out.Equipment.Score)
	s.Require().Len(out.Player.Inventory, 1)
}

func (s *OrchestratorTestSuite) TestClaimLootRejections() {
	testCases := []struct {
		name  string
		input *player.ClaimLootInput
		field string
	}{
		{
			name:  "missing player",
			input: &player.ClaimLootInput{EquipmentType: forge.EquipmentWeapon, Qualities: []forge.Quality{forge.QualityCommon}},
			field: "player_id",
		},
		{
			name:  "unknown equipment type",
			input: &player.ClaimLootInput{PlayerID: "p1", EquipmentType: "SHIELD", Qualities: []forge.Quality{forge.QualityCommon}},
			field: "equipment_type",
		},
		{
			name:  "no qualities and no target",
			input: &player.ClaimLootInput{PlayerID: "p1", EquipmentType: forge.EquipmentWeapon},
			field: "qualities",
		},
		{
			name:  "negative target",
			input: &player.ClaimLootInput{PlayerID: "p1", EquipmentType: forge.EquipmentWeapon, TargetScore: -5},
			field: "target_score",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.ClaimLoot(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.GetMeta(err)["validation_errors"], tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestClaimLootEngineRejects() {
	mocks.ExpectPlayerGet(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID, s.player, nil)
	s.mockEngine.EXPECT().
		GenerateLoot(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgumentf("invalid material quality %d", 7))

	_, err := s.orchestrator.ClaimLoot(s.ctx, &player.ClaimLootInput{
		PlayerID:      testutils.TestPlayerID,
		EquipmentType: forge.EquipmentWeapon,
		Qualities:     []forge.Quality{7},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
