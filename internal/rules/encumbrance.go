package rules

// EncumbranceStatus is the tier a carried weight falls into
type EncumbranceStatus string

// Encumbrance tiers
const (
	Unencumbered      EncumbranceStatus = "normal"
	Encumbered        EncumbranceStatus = "encumbered"
	HeavilyEncumbered EncumbranceStatus = "heavily_encumbered"
)

// Penalties per tier, in feet of speed
const (
	EncumberedSpeedPenalty        = 10
	HeavilyEncumberedSpeedPenalty = 20
)

// Encumbrance describes the effect of carried weight
type Encumbrance struct {
	Weight              float64           `json:"weight"`
	Capacity            int               `json:"capacity"`
	EncumberedAt        int               `json:"encumbered_at"`
	HeavilyEncumberedAt int               `json:"heavily_encumbered_at"`
	Status              EncumbranceStatus `json:"status"`
	SpeedPenalty        int               `json:"speed_penalty"`
	// Disadvantage applies to strength, dexterity and constitution checks, attacks and saves
	Disadvantage bool `json:"disadvantage"`
	OverCapacity bool `json:"over_capacity"`
}

// CarryingCapacity is strength × 15 pounds
func CarryingCapacity(strength int) int {
	return strength * 15
}

// CalculateEncumbrance places weight into a tier. The penalty is a step, not a slope: anything over
// strength×5 costs 10ft, anything over strength×10 costs 20ft and imposes disadvantage.
func CalculateEncumbrance(strength int, weight float64) Encumbrance {
	e := Encumbrance{
		Weight:              weight,
		Capacity:            CarryingCapacity(strength),
		EncumberedAt:        strength * 5,
		HeavilyEncumberedAt: strength * 10,
		Status:              Unencumbered,
	}

	switch {
	case weight > float64(e.HeavilyEncumberedAt):
		e.Status = HeavilyEncumbered
		e.SpeedPenalty = HeavilyEncumberedSpeedPenalty
		e.Disadvantage = true
	case weight > float64(e.EncumberedAt):
		e.Status = Encumbered
		e.SpeedPenalty = EncumberedSpeedPenalty
	}
	e.OverCapacity = weight > float64(e.Capacity)

	return e
}
