package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/forge-api/internal/orchestrators/player/mock"
)

type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockPlayer *playermock.MockService
	handler    *v1alpha1.PlayerHandler
	ctx        context.Context
}

func TestPlayerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}

func (s *PlayerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayer = playermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewPlayerHandler(&v1alpha1.PlayerHandlerConfig{PlayerService: s.mockPlayer})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *PlayerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlayerHandlerTestSuite) TestNewPlayerHandlerRequiresService() {
	_, err := v1alpha1.NewPlayerHandler(&v1alpha1.PlayerHandlerConfig{})
	s.Require().Error(err)
}

func (s *PlayerHandlerTestSuite) TestCreatePlayer() {
	p := &entity.Player{ID: "p1", Level: 1, Gold: 500}
	s.mockPlayer.EXPECT().
		CreatePlayer(s.ctx, &player.CreatePlayerInput{PlayerID: "p1"}).
		Return(&player.CreatePlayerOutput{Player: p}, nil)

	resp, err := s.handler.CreatePlayer(s.ctx, &v1alpha1.CreatePlayerRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Same(p, resp.Player)
}

func (s *PlayerHandlerTestSuite) TestCreatePlayerAlreadyExists() {
	s.mockPlayer.EXPECT().
		CreatePlayer(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("player already exists"))

	_, err := s.handler.CreatePlayer(s.ctx, &v1alpha1.CreatePlayerRequest{PlayerID: "p1"})
	s.Equal(codes.AlreadyExists, status.Code(err))
}

func (s *PlayerHandlerTestSuite) TestRequiredPlayerID() {
	_, err := s.handler.CreatePlayer(s.ctx, &v1alpha1.CreatePlayerRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetPlayer(s.ctx, &v1alpha1.GetPlayerRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *PlayerHandlerTestSuite) TestGetPlayerNotFound() {
	s.mockPlayer.EXPECT().
		GetPlayer(s.ctx, &player.GetPlayerInput{PlayerID: "ghost"}).
		Return(nil, errors.NotFound("player not found"))

	_, err := s.handler.GetPlayer(s.ctx, &v1alpha1.GetPlayerRequest{PlayerID: "ghost"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *PlayerHandlerTestSuite) TestBuyMaterial() {
	mat := &entity.Material{ID: "mat_1", CatalogID: "m_iron_2"}
	s.mockPlayer.EXPECT().
		BuyMaterial(s.ctx, &player.BuyMaterialInput{PlayerID: "p1", MaterialID: "m_iron_2"}).
		Return(&player.BuyMaterialOutput{Material: mat, Player: &entity.Player{ID: "p1", Gold: 400}}, nil)

	resp, err := s.handler.BuyMaterial(s.ctx, &v1alpha1.BuyMaterialRequest{PlayerID: "p1", MaterialID: "m_iron_2"})
	s.Require().NoError(err)
	s.Equal("mat_1", resp.Material.ID)
	s.Equal(400, resp.Player.Gold)
}

func (s *PlayerHandlerTestSuite) TestUnlockTalentPrecondition() {
	s.mockPlayer.EXPECT().
		UnlockTalent(s.ctx, &player.UnlockTalentInput{PlayerID: "p1", TalentID: "t_dur_2"}).
		Return(nil, errors.FailedPrecondition("parent talent is locked"))

	_, err := s.handler.UnlockTalent(s.ctx, &v1alpha1.UnlockTalentRequest{PlayerID: "p1", TalentID: "t_dur_2"})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *PlayerHandlerTestSuite) TestSellEquipment() {
	s.mockPlayer.EXPECT().
		SellEquipment(s.ctx, &player.SellEquipmentInput{PlayerID: "p1", EquipmentID: "eq_2"}).
		Return(&player.SellEquipmentOutput{GoldEarned: 1350, Player: &entity.Player{ID: "p1", Gold: 1850}}, nil)

	resp, err := s.handler.SellEquipment(s.ctx, &v1alpha1.SellEquipmentRequest{PlayerID: "p1", EquipmentID: "eq_2"})
	s.Require().NoError(err)
	s.Equal(1350, resp.GoldEarned)
	s.Equal(1850, resp.Player.Gold)
}

func (s *PlayerHandlerTestSuite) TestClaimLoot() {
	eq := &entity.Equipment{ID: "eq_9", Quality: entity.QualityRare}
	s.mockPlayer.EXPECT().
		ClaimLoot(s.ctx, &player.ClaimLootInput{
			PlayerID:      "p1",
			EquipmentType: entity.EquipmentArmor,
			Qualities:     []entity.Quality{entity.QualityRare, entity.QualityCommon},
			BossDrop:      true,
		}).
		Return(&player.ClaimLootOutput{Equipment: eq, Player: &entity.Player{ID: "p1"}}, nil)

	resp, err := s.handler.ClaimLoot(s.ctx, &v1alpha1.ClaimLootRequest{
		PlayerID:      "p1",
		EquipmentType: "ARMOR",
		Qualities:     []int{3, 1},
		BossDrop:      true,
	})
	s.Require().NoError(err)
	s.Same(eq, resp.Equipment)
}

func (s *PlayerHandlerTestSuite) TestClaimLootRequiresPlayer() {
	_, err := s.handler.ClaimLoot(s.ctx, &v1alpha1.ClaimLootRequest{EquipmentType: "WEAPON"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
