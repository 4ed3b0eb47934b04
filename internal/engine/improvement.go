package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// validateImprovement checks the shape of imp against char. Defer is allowed only when allowDefer.
func (e *engine) validateImprovement(char *dnd5e.Character, imp AbilityImprovement, allowDefer bool) error {
	vb := errors.NewValidationBuilder()

	switch imp.Kind {
	case ImprovementTwoPoints:
		if len(imp.Abilities) != 1 {
			vb.Field("abilities", "exactly one ability is raised by two points")
		}
	case ImprovementSplit:
		if len(imp.Abilities) != 2 {
			vb.Field("abilities", "exactly two abilities are raised by one point")
		} else if imp.Abilities[0] == imp.Abilities[1] {
			vb.Field("abilities", "must be two different abilities")
		}
	case ImprovementFeat:
		if imp.FeatID == "" {
			vb.RequiredField("feat_id")
		} else if !e.tables.Feats.Has(imp.FeatID) {
			vb.Fieldf("feat_id", "unknown feat %q", imp.FeatID)
		} else if slices.Contains(char.Feats, imp.FeatID) {
			vb.Fieldf("feat_id", "feat %q already taken", imp.FeatID)
		}
		if len(imp.Abilities) > 0 {
			vb.Field("abilities", "must be empty when taking a feat")
		}
	case ImprovementDefer:
		if !allowDefer {
			vb.Field("kind", "a pending improvement cannot be deferred again")
		}
	default:
		vb.Fieldf("kind", "unknown improvement kind %q", imp.Kind)
	}

	for _, a := range imp.Abilities {
		if !a.Valid() {
			vb.Fieldf("abilities", "unknown ability %q", a)
		}
	}

	return vb.Build()
}

// applyImprovement raises scores or adds a feat on c, which is modified in place. A change in the
// constitution modifier adjusts hit points for every level.
func (e *engine) applyImprovement(c *dnd5e.Character, imp AbilityImprovement) {
	oldCon := c.AbilityScores.Modifier(rules.Constitution)

	switch imp.Kind {
	case ImprovementTwoPoints:
		raise(c, imp.Abilities[0], 2)
	case ImprovementSplit:
		raise(c, imp.Abilities[0], 1)
		raise(c, imp.Abilities[1], 1)
	case ImprovementFeat:
		feat, _ := e.tables.Feats.Get(imp.FeatID)
		for _, a := range rules.AllAbilities() {
			if bonus := feat.AbilityBonuses[a]; bonus > 0 {
				raise(c, a, bonus)
			}
		}
		c.Feats = append(c.Feats, feat.ID)
	case ImprovementDefer:
		c.PendingASI++
	}

	if delta := c.AbilityScores.Modifier(rules.Constitution) - oldCon; delta != 0 {
		c.MaxHP = max(1, c.MaxHP+delta*c.Level)
		c.CurrentHP = max(0, min(c.MaxHP, c.CurrentHP+delta*c.Level))
	}
}

func raise(c *dnd5e.Character, a rules.Ability, amount int) {
	c.AbilityScores.Set(a, rules.IncreaseAbility(c.AbilityScores.Get(a), amount))
}

// ClaimPendingASI spends one deferred improvement on char
func (e *engine) ClaimPendingASI(char *dnd5e.Character, imp AbilityImprovement) (*dnd5e.Character, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if char.PendingASI <= 0 {
		return nil, errors.FailedPrecondition("character has no pending ability score improvement")
	}
	if err := e.validateImprovement(char, imp, false); err != nil {
		return nil, err
	}

	next := char.Clone()
	e.applyImprovement(next, imp)
	next.PendingASI--
	return next, nil
}
