package reference

import "strings"

// eldritchBlastPrerequisite is the only free-text prerequisite that is checked
const eldritchBlastPrerequisite = "Eldritch Blast cantrip"

// DieSize is a die face count
type DieSize int

// SuperiorityDice is the battle master's dice pool
type SuperiorityDice struct {
	Count int     `json:"count"`
	Size  DieSize `json:"size"`
}

// step is a level breakpoint: from level at onwards the value is value
type step struct {
	at, value int
}

func stepValue(steps []step, level int) int {
	v := 0
	for _, s := range steps {
		if level < s.at {
			break
		}
		v = s.value
	}
	return v
}

var invocationsKnown = []step{{2, 2}, {5, 3}, {7, 4}, {9, 5}, {12, 6}, {15, 7}, {18, 8}}

// InvocationsKnown is how many invocations a warlock of level knows
func InvocationsKnown(warlockLevel int) int {
	return stepValue(invocationsKnown, warlockLevel)
}

var maneuversKnown = []step{{3, 3}, {7, 5}, {10, 7}, {15, 9}}

// ManeuversKnown is how many maneuvers a battle master of fighter level knows
func ManeuversKnown(fighterLevel int) int {
	return stepValue(maneuversKnown, fighterLevel)
}

var (
	superiorityDiceCount = []step{{3, 4}, {7, 5}, {15, 6}}
	superiorityDiceSize  = []step{{3, 8}, {10, 10}, {18, 12}}
)

// SuperiorityDiceAt is the battle master's dice pool at fighter level. Below 3rd level it is empty.
func SuperiorityDiceAt(fighterLevel int) SuperiorityDice {
	return SuperiorityDice{
		Count: stepValue(superiorityDiceCount, fighterLevel),
		Size:  DieSize(stepValue(superiorityDiceSize, fighterLevel)),
	}
}

var metamagicKnown = []step{{3, 2}, {10, 3}, {17, 4}}

// MetamagicKnown is how many metamagic options a sorcerer of level knows
func MetamagicKnown(sorcererLevel int) int {
	return stepValue(metamagicKnown, sorcererLevel)
}

// MeetsInvocationPrerequisites checks the level, pact boon and Eldritch Blast requirements of inv.
// Other free-text prerequisites are advisory and never checked.
func MeetsInvocationPrerequisites(inv Invocation, level int, pactBoon string, hasEldritchBlast bool) bool {
	if inv.MinLevel > 0 && level < inv.MinLevel {
		return false
	}
	if inv.PactBoon != "" && inv.PactBoon != pactBoon {
		return false
	}
	if strings.Contains(inv.Prerequisite, eldritchBlastPrerequisite) && !hasEldritchBlast {
		return false
	}
	return true
}

// PactBoon returns the pact boon implied by the first pact invocation, in table order, found among
// invocationIDs. More than one pact in the list is not expected; the earliest table entry wins.
func (t *Tables) PactBoon(invocationIDs []string) (string, bool) {
	held := make(map[string]bool, len(invocationIDs))
	for _, id := range invocationIDs {
		held[id] = true
	}
	for _, inv := range t.Invocations.entries {
		if inv.GrantsPactBoon != "" && held[inv.ID] {
			return inv.GrantsPactBoon, true
		}
	}
	return "", false
}
