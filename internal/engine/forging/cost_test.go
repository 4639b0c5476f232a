package forging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/testutils"
)

func TestComputeCost(t *testing.T) {
	testCases := []struct {
		name        string
		materials   []forge.Material
		talents     []string
		action      forge.Action
		temperature int
		debuff      forge.Debuff
		combo       bool
		want        int
	}{
		{name: "light base", action: forge.ActionLight, want: 5},
		{name: "heavy base", action: forge.ActionHeavy, want: 15},
		{name: "quench is free", action: forge.ActionQuench, temperature: 90, want: 0},
		{name: "polish rolls its own cost", action: forge.ActionPolish, want: 0},
		{
			name:        "combo light is free regardless of zone and debuff",
			action:      forge.ActionLight,
			combo:       true,
			temperature: 95,
			debuff:      forge.DebuffHardened,
			want:        0,
		},
		{name: "combo does not discount heavy", action: forge.ActionHeavy, combo: true, want: 15},
		{
			name:      "weak no-heat adds one",
			materials: []forge.Material{material(forge.EffectNoHeat, 0.5)},
			action:    forge.ActionLight,
			want:      6,
		},
		{
			name:      "full no-heat has no penalty",
			materials: []forge.Material{material(forge.EffectNoHeat, 1.0)},
			action:    forge.ActionLight,
			want:      5,
		},
		{name: "hardened doubles", action: forge.ActionLight, debuff: forge.DebuffHardened, want: 10},
		{name: "talent reduction", action: forge.ActionHeavy, talents: []string{TalentCostReduction}, want: 12},
		{
			name:      "material reduction floors",
			materials: []forge.Material{testutils.CopperCommon()},
			action:    forge.ActionHeavy,
			want:      13,
		},
		{
			name: "capped reduction keeps minimum of one",
			materials: []forge.Material{
				material(forge.EffectCostReduction, 0.35),
				material(forge.EffectCostReduction, 0.35),
				material(forge.EffectCostReduction, 0.35),
			},
			action: forge.ActionLight,
			want:   1,
		},
		{name: "overheat doubles", action: forge.ActionLight, temperature: 80, want: 10},
		{name: "optimal is untaxed", action: forge.ActionHeavy, temperature: 79, want: 15},
		{
			name:        "overheat with heat resist",
			materials:   []forge.Material{material(forge.EffectHeatResist, 0.6)},
			action:      forge.ActionLight,
			temperature: 90,
			want:        7,
		},
		{
			name:        "overheat talent cap floors after multiplying",
			talents:     []string{TalentOverheatCap},
			action:      forge.ActionLight,
			temperature: 90,
			want:        7,
		},
		{
			name:        "full order",
			materials:   []forge.Material{testutils.CopperCommon()},
			talents:     []string{TalentCostReduction},
			action:      forge.ActionLight,
			temperature: 85,
			debuff:      forge.DebuffHardened,
			// 5 x2 = 10, x0.85 = 8.5, x0.9 = 7.65, floor 7, x2 = 14
			want: 14,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := CreateSession(tc.materials, 1, tc.talents)
			s.Temperature = tc.temperature
			s.ActiveDebuff = tc.debuff
			s.ComboActive = tc.combo

			assert.Equal(t, tc.want, ComputeCost(s, tc.action))
		})
	}
}
