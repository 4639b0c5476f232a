package forging

// Talent ids that change forge behaviour. Exploration talents t_exp_1..4 only
// affect the dungeon and are carried through sessions untouched.
const (
	TalentDurabilityBonus   = "t_dur_1"
	TalentQuenchRestore     = "t_dur_2"
	TalentOverheatCap       = "t_dur_3"
	TalentDurabilityBonusII = "t_dur_4"
	TalentCostReduction     = "t_dur_5"

	TalentLightScore  = "t_qual_1"
	TalentOptimalZone = "t_qual_2"
	TalentScoreMult   = "t_qual_3"
	TalentAftershock  = "t_qual_4"
	TalentScoreMultII = "t_qual_5"

	TalentQuickQuench = "t_exp_5"
)

// Session tuning
const (
	BaseDurability          = 58
	DurabilityPerLevel      = 2
	TalentDurabilityAmount  = 10
	TalentDurabilityIIBonus = 25

	MaxMaterials    = 3
	MaxFocus        = 5
	MaxProgress     = 100
	MaxCostModifier = 0.80

	LevelScalePerLevel = 0.03
)

// Action tuning
const (
	LightCost        = 5
	LightHeat        = 10
	LightProgressMin = 8
	LightProgressMax = 12
	LightScoreMin    = 15
	LightScoreMax    = 25
	LightTalentScore = 2

	HeavyCost        = 15
	HeavyHeat        = 25
	HeavyProgressMin = 12
	HeavyProgressMax = 18
	HeavyScoreMin    = 50
	HeavyScoreMax    = 80

	FocusScoreStep    = 0.5
	FocusProgressStep = 0.2

	QuenchCooling       = 35
	QuenchRestore       = 20
	QuenchTalentRestore = 10
	QuickQuenchChance   = 0.20

	PolishCostMax     = 10
	PolishCostGrowth  = 5
	PolishBaseScore   = 150
	PolishScoreGrowth = 50

	AftershockChance       = 0.30
	TalentCostReductionPct = 0.15
)

// talentMultipliers are summed in this order
var talentMultipliers = []struct {
	id    string
	bonus float64
}{
	{TalentScoreMult, 0.10},
	{TalentScoreMultII, 0.25},
}

// LevelScale is the flat score scaling every action gets from player level
func LevelScale(level int) float64 {
	return 1 + float64(level)*LevelScalePerLevel
}

// PolishMaxCost is the upper bound of the next Polish cost roll
func PolishMaxCost(polishCount int) int {
	return PolishCostMax + polishCount*PolishCostGrowth
}

// PolishScore is the pre-multiplier score of the next Polish
func PolishScore(polishCount int) int {
	return PolishBaseScore + polishCount*PolishScoreGrowth
}
