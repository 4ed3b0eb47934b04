package reference

// MaxSpellLevel is the highest spell slot level
const MaxSpellLevel = 9

// SlotTable is the number of slots per spell level, index 0 being 1st level
type SlotTable [MaxSpellLevel]int

// Highest is the highest spell level with at least one slot, 0 when there are none
func (s SlotTable) Highest() int {
	for i := MaxSpellLevel - 1; i >= 0; i-- {
		if s[i] > 0 {
			return i + 1
		}
	}
	return 0
}

var fullCasterSlots = [20]SlotTable{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

var halfCasterSlots = [20]SlotTable{
	{},
	{2},
	{3},
	{3},
	{4, 2},
	{4, 2},
	{4, 3},
	{4, 3},
	{4, 3, 2},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2},
}

// PactSlots is the warlock's pact magic pool at a level
type PactSlots struct {
	Count     int `json:"count"`
	SlotLevel int `json:"slot_level"`
}

var pactSlots = [20]PactSlots{
	{1, 1}, {2, 1}, {2, 2}, {2, 2}, {2, 3},
	{2, 3}, {2, 4}, {2, 4}, {2, 5}, {2, 5},
	{3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{3, 5}, {4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// SpellSlotsFor returns the regular slot table for a progression at level. Pact and non-casters have
// no regular slots.
func SpellSlotsFor(p Progression, level int) SlotTable {
	if level < 1 || level > 20 {
		return SlotTable{}
	}
	switch p {
	case ProgressionFull:
		return fullCasterSlots[level-1]
	case ProgressionHalf:
		return halfCasterSlots[level-1]
	default:
		return SlotTable{}
	}
}

// PactSlotsFor returns the pact magic pool for a warlock level, ok=false outside [1,20]
func PactSlotsFor(level int) (PactSlots, bool) {
	if level < 1 || level > 20 {
		return PactSlots{}, false
	}
	return pactSlots[level-1], true
}

// MaxSpellLevelFor is the highest spell level a class of progression p can cast at level
func MaxSpellLevelFor(p Progression, level int) int {
	if p == ProgressionPact {
		slots, ok := PactSlotsFor(level)
		if !ok {
			return 0
		}
		return slots.SlotLevel
	}
	return SpellSlotsFor(p, level).Highest()
}
