package rpgtoolkit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/testutils"
)

type AdapterTestSuite struct {
	suite.Suite

	ctx     context.Context
	rng     *testutils.ScriptedRandomizer
	adapter *rpgtoolkit.Adapter
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.rng = testutils.NewScriptedRandomizer()

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{Randomizer: s.rng})
	s.Require().NoError(err)
	s.adapter = adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) TestNewAdapter() {
	_, err := rpgtoolkit.NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	s.True(errors.IsInvalidArgument(err))

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: dice.DefaultRoller})
	s.NoError(err)
	s.NotNil(adapter)
}

func (s *AdapterTestSuite) startSession() *forge.Session {
	out, err := s.adapter.StartSession(s.ctx, &engine.StartSessionInput{
		Materials:   []forge.Material{testutils.IronCommon()},
		PlayerLevel: 1,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *AdapterTestSuite) TestStartSession() {
	session := s.startSession()

	s.Equal(75, session.MaxDurability)
	s.Equal(forge.StatusActive, session.Status)
}

func (s *AdapterTestSuite) TestStartSessionValidatesMaterials() {
	iron := testutils.IronCommon()
	testCases := []struct {
		name      string
		materials []forge.Material
	}{
		{name: "none", materials: nil},
		{name: "too many", materials: []forge.Material{iron, iron, iron, iron}},
		{name: "missing quality", materials: []forge.Material{{ID: "broken"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.adapter.StartSession(s.ctx, &engine.StartSessionInput{Materials: tc.materials})
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.adapter.StartSession(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestExecuteAction() {
	session := s.startSession()
	s.rng.QueueInts(10, 20)

	out, err := s.adapter.ExecuteAction(s.ctx, &engine.ExecuteActionInput{
		Session: session,
		Action:  forge.ActionLight,
	})

	s.Require().NoError(err)
	s.Equal(10, out.Session.Progress)
	s.Equal(16, out.Session.QualityScore)
	s.Equal(0, session.Progress)
}

func (s *AdapterTestSuite) TestExecuteActionRejected() {
	session := s.startSession()

	_, err := s.adapter.ExecuteAction(s.ctx, &engine.ExecuteActionInput{
		Session: session,
		Action:  forge.ActionPolish,
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.adapter.ExecuteAction(s.ctx, &engine.ExecuteActionInput{
		Session: session,
		Action:  forge.Action("SMELT"),
	})
	s.True(errors.IsInvalidArgument(err))

	session.Status = forge.StatusFailure
	_, err = s.adapter.ExecuteAction(s.ctx, &engine.ExecuteActionInput{
		Session: session,
		Action:  forge.ActionLight,
	})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("FAILURE", errors.GetMeta(err)["status"])
}

func (s *AdapterTestSuite) TestCompleteSession() {
	session := s.startSession()

	_, err := s.adapter.CompleteSession(s.ctx, &engine.CompleteSessionInput{Session: session})
	s.True(errors.IsFailedPrecondition(err))

	session.Progress = 100
	out, err := s.adapter.CompleteSession(s.ctx, &engine.CompleteSessionInput{Session: session})
	s.Require().NoError(err)
	s.Equal(forge.StatusSuccess, out.Session.Status)
}

func (s *AdapterTestSuite) TestApplyDebuff() {
	session := s.startSession()

	out, err := s.adapter.ApplyDebuff(s.ctx, &engine.ApplyDebuffInput{Session: session, Debuff: forge.DebuffHardened})
	s.Require().NoError(err)
	s.Equal(forge.DebuffHardened, out.Session.ActiveDebuff)
	s.Equal(forge.DebuffNone, session.ActiveDebuff)

	_, err = s.adapter.ApplyDebuff(s.ctx, &engine.ApplyDebuffInput{Session: session, Debuff: forge.Debuff("CURSED")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.ApplyDebuff(s.ctx, &engine.ApplyDebuffInput{Debuff: forge.DebuffDulled})
	s.True(errors.IsInvalidArgument(err))

	session.Status = forge.StatusSuccess
	_, err = s.adapter.ApplyDebuff(s.ctx, &engine.ApplyDebuffInput{Session: session, Debuff: forge.DebuffDulled})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("SUCCESS", errors.GetMeta(err)["status"])
}

func (s *AdapterTestSuite) TestFinalizeSession() {
	session := s.startSession()
	session.Progress = 100
	session.QualityScore = 100

	_, err := s.adapter.FinalizeSession(s.ctx, &engine.FinalizeSessionInput{
		Session:       session,
		EquipmentType: forge.EquipmentWeapon,
	})
	s.True(errors.IsFailedPrecondition(err))

	session.Status = forge.StatusSuccess
	_, err = s.adapter.FinalizeSession(s.ctx, &engine.FinalizeSessionInput{
		Session:       session,
		EquipmentType: forge.EquipmentType("SHIELD"),
	})
	s.True(errors.IsInvalidArgument(err))

	out, err := s.adapter.FinalizeSession(s.ctx, &engine.FinalizeSessionInput{
		Session:       session,
		EquipmentType: forge.EquipmentArmor,
		PlayerLevel:   1,
	})
	s.Require().NoError(err)
	s.Equal(forge.EquipmentArmor, out.Equipment.Type)
	s.Equal(100, out.Equipment.Score)
	s.Empty(out.Equipment.ID)
}

func (s *AdapterTestSuite) TestGenerateLoot() {
	s.rng.QueueFloats(0.5)
	out, err := s.adapter.GenerateLoot(s.ctx, &engine.GenerateLootInput{
		EquipmentType: forge.EquipmentWeapon,
		PlayerLevel:   3,
		TargetScore:   1000,
	})
	s.Require().NoError(err)
	s.Equal(1000, out.Equipment.Score)

	s.rng.QueueFloats(0.5)
	out, err = s.adapter.GenerateLoot(s.ctx, &engine.GenerateLootInput{
		EquipmentType: forge.EquipmentArmor,
		Qualities:     []forge.Quality{forge.QualityCommon, forge.QualityCommon},
		PlayerLevel:   1,
	})
	s.Require().NoError(err)
	s.Equal(160, out.Equipment.Score)

	_, err = s.adapter.GenerateLoot(s.ctx, &engine.GenerateLootInput{EquipmentType: forge.EquipmentArmor})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.GenerateLoot(s.ctx, &engine.GenerateLootInput{
		EquipmentType: forge.EquipmentArmor,
		Qualities:     []forge.Quality{forge.Quality(7)},
	})
	s.True(errors.IsInvalidArgument(err))
}

// stubDiceRoller replays fixed rolls, or fails every roll when err is set
type stubDiceRoller struct {
	rolls []int
	sizes []int
	err   error
}

func (r *stubDiceRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return 0, r.err
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v, nil
}

func (r *stubDiceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func TestDiceRandomizer(t *testing.T) {
	suite.Run(t, new(DiceRandomizerTestSuite))
}

type DiceRandomizerTestSuite struct {
	suite.Suite
}

func (s *DiceRandomizerTestSuite) TestIntRangeMapsDie() {
	roller := &stubDiceRoller{rolls: []int{1, 5, 3}}
	rng := rpgtoolkit.NewDiceRandomizer(roller)

	s.Equal(8, rng.IntRange(8, 12))
	s.Equal(12, rng.IntRange(8, 12))
	s.Equal(2, rng.IntRange(0, 10))
	s.Equal([]int{5, 5, 11}, roller.sizes)

	s.Equal(4, rng.IntRange(4, 4))
	s.Len(roller.sizes, 3, "a single value range does not roll")
}

func (s *DiceRandomizerTestSuite) TestFloat64MapsDie() {
	roller := &stubDiceRoller{rolls: []int{1, 1 << 29, 1 << 30}}
	rng := rpgtoolkit.NewDiceRandomizer(roller)

	s.Equal(0.0, rng.Float64())
	s.InDelta(0.5, rng.Float64(), 1e-6)
	s.Less(rng.Float64(), 1.0)
}

func (s *DiceRandomizerTestSuite) TestFallbackOnError() {
	roller := &stubDiceRoller{err: fmt.Errorf("entropy unavailable")}
	rng := rpgtoolkit.NewDiceRandomizer(roller)

	for i := 0; i < 50; i++ {
		n := rng.IntRange(15, 25)
		s.GreaterOrEqual(n, 15)
		s.LessOrEqual(n, 25)

		f := rng.Float64()
		s.GreaterOrEqual(f, 0.0)
		s.Less(f, 1.0)
	}
}

func (s *DiceRandomizerTestSuite) TestDefaultRollerStaysInRange() {
	rng := rpgtoolkit.NewDiceRandomizer(dice.DefaultRoller)

	for i := 0; i < 200; i++ {
		n := rng.IntRange(0, 10)
		s.GreaterOrEqual(n, 0)
		s.LessOrEqual(n, 10)
	}
}
