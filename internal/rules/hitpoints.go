package rules

// HitPoints is the hit point state of a character
type HitPoints struct {
	Max     int `json:"max"`
	Current int `json:"current"`
	Temp    int `json:"temp"`
}

// AverageHitPointGain is floor(hitDie/2) + 1 + conMod, at least 1
func AverageHitPointGain(hitDie, conMod int) int {
	return max(1, hitDie/2+1+conMod)
}

// RolledHitPointGain is roll + conMod, at least 1
func RolledHitPointGain(roll, conMod int) int {
	return max(1, roll+conMod)
}

// MaxHitPointsAtFirstLevel is the full hit die plus conMod, at least 1
func MaxHitPointsAtFirstLevel(hitDie, conMod int) int {
	return max(1, hitDie+conMod)
}

// ApplyDamage removes temporary hit points first, then current hit points down to 0
func ApplyDamage(hp HitPoints, amount int) HitPoints {
	if amount <= 0 {
		return hp
	}
	absorbed := min(hp.Temp, amount)
	hp.Temp -= absorbed
	hp.Current = max(0, hp.Current-(amount-absorbed))
	return hp
}

// ApplyHealing restores current hit points up to the maximum
func ApplyHealing(hp HitPoints, amount int) HitPoints {
	if amount <= 0 {
		return hp
	}
	hp.Current = min(hp.Max, hp.Current+amount)
	return hp
}
