// Package engine applies the D&D 5e rules to a character: level ups, the derived sheet, creation,
// rests and spell slot bookkeeping.
//
// The engine holds no state between calls. Every method reads its inputs and returns new values; the
// character passed in is never modified. A level up in progress is a Wizard value the caller threads
// through the choice steps and either commits or drops.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// Engine provides the rules calculations
type Engine interface {
	// LevelUp proposes the next level. ok is false at level 20, below level 1 and for unknown classes.
	LevelUp(char *dnd5e.Character) (*LevelUpResult, bool)

	// CalculateSheet derives every displayed number. Unknown references are listed, never fatal.
	CalculateSheet(char *dnd5e.Character) *Sheet

	// NewCharacter builds a level 1 character
	NewCharacter(input *NewCharacterInput) (*dnd5e.Character, error)

	// Rests and slots
	ShortRest(char *dnd5e.Character, hitDiceRolls []int) (*dnd5e.Character, error)
	LongRest(char *dnd5e.Character) *dnd5e.Character
	ExpendSpellSlot(char *dnd5e.Character, slot SlotRef) (*dnd5e.Character, error)
	RecoverSpellSlot(char *dnd5e.Character, slot SlotRef) (*dnd5e.Character, error)

	// Level up wizard
	StartLevelUp(char *dnd5e.Character) (*Wizard, bool)
	SubmitHitPoints(w *Wizard, gain int) (*Wizard, error)
	SubmitAbilityImprovement(w *Wizard, imp AbilityImprovement) (*Wizard, error)
	SubmitClassChoices(w *Wizard, picks ClassChoices) (*Wizard, error)
	SubmitSpells(w *Wizard, spellIDs []string) (*Wizard, error)
	Commit(w *Wizard) (*dnd5e.Character, error)

	// ClaimPendingASI spends one deferred improvement
	ClaimPendingASI(char *dnd5e.Character, imp AbilityImprovement) (*dnd5e.Character, error)
}
