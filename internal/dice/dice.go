// Package dice rolls hit dice on top of the rpg-toolkit roller
package dice

import (
	"fmt"

	tkdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/dice Roller

// Roller rolls the dice a character sheet needs
type Roller interface {
	// RollHitPoints rolls one hit die for a level up and applies the constitution modifier
	RollHitPoints(hitDie, conMod int) (*HitPointRoll, error)
	// RollHitDice rolls count hit dice of size for a short rest
	RollHitDice(count, size int) ([]int, error)
}

// HitPointRoll is a rolled level up hit point gain
type HitPointRoll struct {
	Roll        int    `json:"roll"`
	Gain        int    `json:"gain"`
	Description string `json:"description"`
}

type roller struct {
	dice tkdice.Roller
}

// New wraps a toolkit roller. A nil roller uses the toolkit default.
func New(r tkdice.Roller) Roller {
	if r == nil {
		r = tkdice.DefaultRoller
	}
	return &roller{dice: r}
}

func (r *roller) RollHitPoints(hitDie, conMod int) (*HitPointRoll, error) {
	if hitDie < 1 {
		return nil, errors.InvalidArgumentf("hit die size must be positive, got %d", hitDie)
	}

	roll, err := r.dice.Roll(hitDie)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", hitDie)
	}
	if roll < 1 || roll > hitDie {
		return nil, errors.Internalf("roller returned %d for a d%d", roll, hitDie)
	}

	return &HitPointRoll{
		Roll:        roll,
		Gain:        rules.RolledHitPointGain(roll, conMod),
		Description: fmt.Sprintf("1d%d[%d]%+d", hitDie, roll, conMod),
	}, nil
}

func (r *roller) RollHitDice(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("hit dice count must not be negative, got %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("hit die size must be positive, got %d", size)
	}
	if count == 0 {
		return nil, nil
	}

	rolls, err := r.dice.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}
	return rolls, nil
}
