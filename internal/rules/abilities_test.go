package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{15, 2},
		{20, 5},
		{30, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestAbilityModifier_Floors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		score := rapid.IntRange(1, 30).Draw(t, "score")
		want := int(math.Floor(float64(score-10) / 2))
		if got := AbilityModifier(score); got != want {
			t.Fatalf("AbilityModifier(%d) = %d, want %d", score, got, want)
		}
	})
}

func TestProficiencyBonus(t *testing.T) {
	assert.Equal(t, 2, ProficiencyBonus(1))
	assert.Equal(t, 2, ProficiencyBonus(4))
	assert.Equal(t, 3, ProficiencyBonus(5))
	assert.Equal(t, 4, ProficiencyBonus(9))
	assert.Equal(t, 5, ProficiencyBonus(13))
	assert.Equal(t, 6, ProficiencyBonus(17))
	assert.Equal(t, 6, ProficiencyBonus(20))

	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 20).Draw(t, "level")
		got := ProficiencyBonus(level)
		if got != (level-1)/4+2 {
			t.Fatalf("ProficiencyBonus(%d) = %d", level, got)
		}
		if got < 2 || got > 6 {
			t.Fatalf("ProficiencyBonus(%d) = %d out of range", level, got)
		}
	})
}

func TestSavingThrowBonus(t *testing.T) {
	assert.Equal(t, 5, SavingThrowBonus(3, 2, true))
	assert.Equal(t, 3, SavingThrowBonus(3, 2, false))
	assert.Equal(t, -1, SavingThrowBonus(-1, 3, false))
}

func TestIncreaseAbility(t *testing.T) {
	assert.Equal(t, 16, IncreaseAbility(14, 2))
	assert.Equal(t, 20, IncreaseAbility(19, 2))
	assert.Equal(t, 20, IncreaseAbility(20, 1))
	assert.Equal(t, 22, IncreaseAbility(22, 1), "scores above the cap are left alone")

	rapid.Check(t, func(t *rapid.T) {
		score := rapid.IntRange(1, 20).Draw(t, "score")
		amount := rapid.IntRange(0, 4).Draw(t, "amount")
		got := IncreaseAbility(score, amount)
		if got > MaxAbilityScore || got < score {
			t.Fatalf("IncreaseAbility(%d, %d) = %d", score, amount, got)
		}
	})
}

func TestAbilityValid(t *testing.T) {
	for _, a := range AllAbilities() {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, Ability("luck").Valid())
}
