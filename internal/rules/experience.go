package rules

// MaxLevel is the highest character level
const MaxLevel = 20

// experienceTable holds the cumulative XP needed to reach each level, index 0 being level 1
var experienceTable = [MaxLevel]int{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}

// LevelFromXP returns the highest level whose threshold is at or below xp
func LevelFromXP(xp int) int {
	level := 1
	for i, threshold := range experienceTable {
		if xp < threshold {
			break
		}
		level = i + 1
	}
	return level
}

// ExperienceForLevel is the cumulative XP required for level. Levels outside [1,20] are clamped.
func ExperienceForLevel(level int) int {
	level = max(1, min(MaxLevel, level))
	return experienceTable[level-1]
}

// ExperienceToNextLevel is how much more XP a character at level with xp needs. It is 0 at max level
// and when xp already reaches the next threshold.
func ExperienceToNextLevel(level, xp int) int {
	if level >= MaxLevel {
		return 0
	}
	return max(0, ExperienceForLevel(level+1)-xp)
}
