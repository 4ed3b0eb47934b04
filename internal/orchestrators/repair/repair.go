// Package repair scans stored characters for records that break sheet
// invariants and optionally clamps the numeric ones back into range
package repair

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

// Kind names a class of problem
type Kind string

const (
	KindSlotOverspent     Kind = "slot_overspent"
	KindPactOverspent     Kind = "pact_slot_overspent"
	KindHitPointsRange    Kind = "hit_points_out_of_range"
	KindTempHitPoints     Kind = "temp_hit_points_negative"
	KindHitDiceOverspent  Kind = "hit_dice_overspent"
	KindExpertise         Kind = "expertise_without_proficiency"
	KindUnresolvedEntries Kind = "unresolved_reference"
)

// Issue is one problem on one character
type Issue struct {
	CharacterID string `json:"character_id" yaml:"character_id"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Detail      string `json:"detail" yaml:"detail"`
	// Fixable issues are clamped when the scan runs with Fix set
	Fixable bool `json:"fixable" yaml:"fixable"`
}

type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if cfg.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

type Repairer struct {
	repo   characterrepo.Repository
	engine engine.Engine
}

func New(cfg *Config) (*Repairer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Repairer{repo: cfg.CharacterRepo, engine: cfg.Engine}, nil
}

type ScanInput struct {
	// Fix writes clamped records back
	Fix bool
}

type ScanOutput struct {
	Scanned int     `json:"scanned" yaml:"scanned"`
	Issues  []Issue `json:"issues" yaml:"issues"`
	// Fixed is the number of characters written back
	Fixed int `json:"fixed" yaml:"fixed"`
}

// Scan checks every stored character
func (r *Repairer) Scan(ctx context.Context, input *ScanInput) (*ScanOutput, error) {
	if input == nil {
		input = &ScanInput{}
	}

	all, err := r.repo.ListAll(ctx, characterrepo.ListAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	out := &ScanOutput{Scanned: len(all.Characters)}
	for _, char := range all.Characters {
		issues := r.Check(char)
		out.Issues = append(out.Issues, issues...)

		if !input.Fix || !anyFixable(issues) {
			continue
		}

		if _, err := r.repo.Update(ctx, characterrepo.UpdateInput{Character: Clamp(char)}); err != nil {
			return nil, errors.Wrapf(err, "failed to repair character %s", char.ID)
		}
		out.Fixed++

		slog.InfoContext(ctx, "repaired character", "character_id", char.ID)
	}

	return out, nil
}

// Check lists the problems on one character
func (r *Repairer) Check(char *dnd5e.Character) []Issue {
	var issues []Issue
	add := func(kind Kind, fixable bool, format string, args ...any) {
		issues = append(issues, Issue{
			CharacterID: char.ID,
			Kind:        kind,
			Detail:      fmt.Sprintf(format, args...),
			Fixable:     fixable,
		})
	}

	for i, slot := range char.SpellSlots {
		if slot.Expended > slot.Total {
			add(KindSlotOverspent, true, "level %d slots: %d expended of %d", i+1, slot.Expended, slot.Total)
		}
	}
	if pm := char.PactMagic; pm != nil && pm.Expended > pm.SlotCount {
		add(KindPactOverspent, true, "pact slots: %d expended of %d", pm.Expended, pm.SlotCount)
	}
	if char.CurrentHP < 0 || char.CurrentHP > char.MaxHP {
		add(KindHitPointsRange, true, "current hp %d outside [0, %d]", char.CurrentHP, char.MaxHP)
	}
	if char.TempHP < 0 {
		add(KindTempHitPoints, true, "temp hp %d", char.TempHP)
	}
	if char.HitDice.Spent > char.HitDice.Total {
		add(KindHitDiceOverspent, true, "%d hit dice spent of %d", char.HitDice.Spent, char.HitDice.Total)
	}

	skills := make([]string, 0)
	for skill, p := range char.Skills {
		if p.Expertise && !p.Proficient {
			skills = append(skills, string(skill))
		}
	}
	sort.Strings(skills)
	for _, skill := range skills {
		add(KindExpertise, false, "skill %s", skill)
	}

	sheet := r.engine.CalculateSheet(char)
	tables := make([]string, 0, len(sheet.Unresolved))
	for table := range sheet.Unresolved {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		add(KindUnresolvedEntries, false, "%s: %v", table, sheet.Unresolved[table])
	}

	return issues
}

// Clamp returns a copy with the numeric invariants restored
func Clamp(char *dnd5e.Character) *dnd5e.Character {
	out := char.Clone()
	for i := range out.SpellSlots {
		out.SpellSlots[i].Expended = min(max(out.SpellSlots[i].Expended, 0), out.SpellSlots[i].Total)
	}
	if out.PactMagic != nil {
		out.PactMagic.Expended = min(max(out.PactMagic.Expended, 0), out.PactMagic.SlotCount)
	}
	out.CurrentHP = min(max(out.CurrentHP, 0), out.MaxHP)
	out.TempHP = max(out.TempHP, 0)
	out.HitDice.Spent = min(max(out.HitDice.Spent, 0), out.HitDice.Total)
	return out
}

func anyFixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Fixable {
			return true
		}
	}
	return false
}
