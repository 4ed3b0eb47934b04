package rules

// DexBonus is how much of the dexterity modifier a suit of armor allows
type DexBonus string

// Dex bonus rules
const (
	DexBonusFull DexBonus = "full"
	DexBonusMax2 DexBonus = "max2"
	DexBonusNone DexBonus = "none"
)

// ShieldBonus is added whenever a shield is equipped
const ShieldBonus = 2

// UnarmoredDefense names the ability a class adds to AC while wearing no armor
type UnarmoredDefense string

// Unarmored defense variants
const (
	UnarmoredDefenseNone      UnarmoredDefense = ""
	UnarmoredDefenseBarbarian UnarmoredDefense = "constitution"
	UnarmoredDefenseMonk      UnarmoredDefense = "wisdom"
)

// ArmorSpec is the part of an armor table entry the AC formula needs
type ArmorSpec struct {
	BaseAC   int
	DexBonus DexBonus
}

// ACInput collects everything armor class depends on
type ACInput struct {
	DexterityModifier    int
	ConstitutionModifier int
	WisdomModifier       int
	// Armor is nil when no body armor is worn
	Armor            *ArmorSpec
	Shield           bool
	UnarmoredDefense UnarmoredDefense
	Override         *int
}

// ACResult keeps the calculated value next to the manual override
type ACResult struct {
	Calculated int  `json:"calculated"`
	Override   *int `json:"override,omitempty"`
}

// Effective is the override when one is set, otherwise the calculated value
func (r ACResult) Effective() int {
	if r.Override != nil {
		return *r.Override
	}
	return r.Calculated
}

// ArmorClass computes AC from armor, shield and unarmored defense
func ArmorClass(in ACInput) ACResult {
	var ac int
	if in.Armor != nil {
		ac = in.Armor.BaseAC + dexContribution(in.DexterityModifier, in.Armor.DexBonus)
	} else {
		ac = 10 + in.DexterityModifier
		switch in.UnarmoredDefense {
		case UnarmoredDefenseBarbarian:
			ac += in.ConstitutionModifier
		case UnarmoredDefenseMonk:
			ac += in.WisdomModifier
		}
	}

	if in.Shield {
		ac += ShieldBonus
	}

	result := ACResult{Calculated: ac}
	if in.Override != nil {
		override := *in.Override
		result.Override = &override
	}
	return result
}

func dexContribution(dexMod int, rule DexBonus) int {
	switch rule {
	case DexBonusFull:
		return dexMod
	case DexBonusMax2:
		return min(dexMod, 2)
	default:
		return 0
	}
}
