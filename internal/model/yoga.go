package model

// YogaCategory groups yoga rules by classical family.
type YogaCategory string

const (
	CategorySolar            YogaCategory = "Solar"
	CategoryLunar            YogaCategory = "Lunar"
	CategoryMahapurusha      YogaCategory = "Mahapurusha"
	CategoryConjunction      YogaCategory = "Conjunction"
	CategorySignDistribution YogaCategory = "SignDistribution"
	CategorySankhya          YogaCategory = "Sankhya"
	CategoryWealth           YogaCategory = "Wealth"
	CategoryReversal         YogaCategory = "Reversal"
)

// Strength is the coarse tier attached to each rule.
type Strength string

const (
	StrengthStrong   Strength = "Strong"
	StrengthModerate Strength = "Moderate"
	StrengthWeak     Strength = "Weak"
)

// YogaFinding is the output of one yoga rule evaluated against a chart.
type YogaFinding struct {
	Name       string       `json:"name"`
	Category   YogaCategory `json:"category"`
	Definition string       `json:"definition"`
	Result     string       `json:"result"`
	Applicable bool         `json:"applicable"`
	Strength   Strength     `json:"strength"`
	Planets    []Planet     `json:"planets,omitempty"`
	Houses     []int        `json:"houses,omitempty"`
}
