package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
)

// EldritchBlastSpellID is the cantrip some invocations require
const EldritchBlastSpellID = "eldritch-blast"

// classPickRules are the counts a ClassChoices submission must match
type classPickRules struct {
	subclass    *reference.Subclass
	pactBoon    bool
	invocations int
	maneuvers   int
	metamagic   int
}

// resolveClassPicks works out the required counts, folding in a subclass chosen at this level
func (e *engine) resolveClassPicks(w *Wizard, picks ClassChoices, vb *errors.ValidationBuilder) (classPickRules, bool) {
	char := w.Result.Character
	class, ok := e.tables.Classes.Get(char.ClassID)
	if !ok {
		vb.Fieldf("class_id", "unknown class %q", char.ClassID)
		return classPickRules{}, false
	}

	r := classPickRules{
		pactBoon:    w.Result.Choices.NeedsPactBoon,
		invocations: w.Result.Choices.NewInvocations,
		metamagic:   w.Result.Choices.NewMetamagic,
		maneuvers:   w.Result.Choices.NewManeuvers,
	}

	switch {
	case w.Result.Choices.NeedsSubclass:
		sub, ok := class.Subclass(picks.SubclassID)
		if picks.SubclassID == "" {
			vb.RequiredField("subclass_id")
			return r, false
		}
		if !ok {
			vb.Fieldf("subclass_id", "%q is not a %s subclass", picks.SubclassID, class.Name)
			return r, false
		}
		r.subclass = &sub
		if sub.HasGrant(reference.GrantManeuvers) {
			r.maneuvers = newManeuvers(char.Level)
		}
	case picks.SubclassID != "":
		vb.Field("subclass_id", "no subclass choice at this level")
	}

	return r, true
}

func (e *engine) validateClassPicks(w *Wizard, picks ClassChoices) (classPickRules, error) {
	vb := errors.NewValidationBuilder()
	r, ok := e.resolveClassPicks(w, picks, vb)
	if !ok {
		return r, vb.Build()
	}
	char := w.Result.Character

	e.checkPactBoonPick(vb, r.pactBoon, picks.PactBoon)
	checkPicks(vb, "invocations", picks.Invocations, r.invocations, char.EldritchInvocations, e.tables.Invocations.Has)
	checkPicks(vb, "maneuvers", picks.Maneuvers, r.maneuvers, char.BattleMasterManeuvers, e.tables.Maneuvers.Has)
	checkPicks(vb, "metamagic", picks.Metamagic, r.metamagic, char.MetamagicOptions, e.tables.Metamagic.Has)

	for _, inv := range e.tables.Invocations.Resolve(picks.Invocations).Found {
		if inv.GrantsPactBoon != "" {
			vb.Fieldf("invocations", "%q is a pact boon, not an invocation", inv.ID)
		}
	}

	if len(picks.Invocations) > 0 && !vb.HasErrors() {
		e.checkInvocationPrerequisites(vb, char, picks)
	}

	return r, vb.Build()
}

// checkPicks enforces an exact count of known, new, distinct ids
func checkPicks(vb *errors.ValidationBuilder, field string, picks []string, want int, held []string, known func(string) bool) {
	if len(picks) != want {
		vb.Fieldf(field, "expected %d picks, got %d", want, len(picks))
	}
	seen := make(map[string]bool, len(picks))
	for _, id := range picks {
		switch {
		case seen[id]:
			vb.Fieldf(field, "%q picked twice", id)
		case !known(id):
			vb.Fieldf(field, "unknown %q", id)
		case slices.Contains(held, id):
			vb.Fieldf(field, "%q already known", id)
		}
		seen[id] = true
	}
}

// checkPactBoonPick requires exactly one pact boon when one is due and none otherwise
func (e *engine) checkPactBoonPick(vb *errors.ValidationBuilder, due bool, id string) {
	switch {
	case !due:
		if id != "" {
			vb.Field("pact_boon", "no pact boon choice at this level")
		}
	case id == "":
		vb.RequiredField("pact_boon")
	default:
		if inv, ok := e.tables.Invocations.Get(id); !ok || inv.GrantsPactBoon == "" {
			vb.Fieldf("pact_boon", "%q is not a pact boon", id)
		}
	}
}

// checkInvocationPrerequisites checks new invocations against the character plus any pact boon picked alongside them
func (e *engine) checkInvocationPrerequisites(vb *errors.ValidationBuilder, char *dnd5e.Character, picks ClassChoices) {
	all := append(slices.Clone(char.EldritchInvocations), picks.Invocations...)
	if picks.PactBoon != "" {
		all = append(all, picks.PactBoon)
	}

	boons := 0
	for _, inv := range e.tables.Invocations.Resolve(all).Found {
		if inv.GrantsPactBoon != "" {
			boons++
		}
	}
	if boons > 1 {
		vb.Field("invocations", "only one pact boon may be held")
		return
	}

	pactBoon, _ := e.tables.PactBoon(all)
	hasEldritchBlast := char.KnowsSpell(EldritchBlastSpellID)
	for _, inv := range e.tables.Invocations.Resolve(picks.Invocations).Found {
		if !reference.MeetsInvocationPrerequisites(inv, char.Level, pactBoon, hasEldritchBlast) {
			vb.Fieldf("invocations", "prerequisites for %q are not met", inv.ID)
		}
	}
}

// validateSpellPicks checks a list of new spells for class at the given limits
func (e *engine) validateSpellPicks(char *dnd5e.Character, spellIDs []string, want, maxLevel int) error {
	vb := errors.NewValidationBuilder()
	if len(spellIDs) != want {
		vb.Fieldf("spells", "expected %d spells, got %d", want, len(spellIDs))
	}

	seen := make(map[string]bool, len(spellIDs))
	for _, id := range spellIDs {
		spell, ok := e.tables.Spells.Get(id)
		switch {
		case seen[id]:
			vb.Fieldf("spells", "%q picked twice", id)
		case !ok:
			vb.Fieldf("spells", "unknown spell %q", id)
		case !spell.AvailableTo(char.ClassID):
			vb.Fieldf("spells", "%q is not on the %s spell list", id, char.ClassID)
		case spell.Level < 1:
			vb.Fieldf("spells", "%q is a cantrip", id)
		case spell.Level > maxLevel:
			vb.Fieldf("spells", "%q is level %d, above %d", id, spell.Level, maxLevel)
		case char.KnowsSpell(id):
			vb.Fieldf("spells", "%q already known", id)
		}
		seen[id] = true
	}
	return vb.Build()
}
