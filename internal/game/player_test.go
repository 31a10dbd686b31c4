package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfunc/chain-hunter/internal/errors"
)

func TestNewCharacter(t *testing.T) {
	tests := []struct {
		class ClassID
		str   int
		intel int
		def   int
		hp    int
		mana  int
	}{
		{ClassWarrior, 15, 4, 20, 30, 50},
		{ClassWizard, 2, 20, 5, 25, 100},
		{ClassTanker, 7, 2, 40, 70, 70},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			c, err := NewCharacter(tt.class)
			require.NoError(t, err)
			assert.Equal(t, 1, c.Level)
			assert.Equal(t, 10, c.ExpToNext)
			assert.Equal(t, tt.str, c.Str)
			assert.Equal(t, tt.intel, c.Int)
			assert.Equal(t, tt.def, c.Def)
			assert.Equal(t, tt.hp, c.HP)
			assert.Equal(t, tt.hp, c.MaxHP)
			assert.Equal(t, tt.mana, c.Mana)
			assert.Equal(t, tt.mana, c.MaxMana)
			assert.Equal(t, 0, c.Gold)
		})
	}
}

func TestNewCharacterUnknownClass(t *testing.T) {
	_, err := NewCharacter("paladin")
	assert.True(t, errors.Is(err, errors.ErrInvalidParam))
}

func TestAttackPower(t *testing.T) {
	c := &Character{Str: 15}
	assert.Equal(t, 22, c.AttackPower()) // floor(15 * 1.5)

	c.Str = 2
	assert.Equal(t, 3, c.AttackPower())
}

func TestSkillDamage(t *testing.T) {
	c := &Character{Str: 15, Int: 4}
	// floor((22 + 3.2) * 1.4) = floor(35.28)
	assert.Equal(t, 35, c.SkillDamage(1.4))
}

func TestNormalStrike(t *testing.T) {
	c := &Character{Str: 15}
	assert.Equal(t, 4, c.NormalStrike()) // floor(22 * 0.2)
}

func TestRegenAmounts(t *testing.T) {
	c := &Character{Int: 20, Level: 4}
	assert.Equal(t, 4, c.ManaRegenAmount()) // floor(2 + 2.0)
	assert.Equal(t, 20, c.HPRegenAmount())  // floor(10 * sqrt(4))
}

func TestGainExperienceNoLevel(t *testing.T) {
	c := &Character{Level: 1, ExpToNext: 10}
	leveled := c.GainExperience(4, 10)
	assert.False(t, leveled)
	assert.Equal(t, 4, c.Exp)
	assert.Equal(t, 10, c.Gold)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 10, c.ExpToNext)
}

func TestGainExperienceLevelUp(t *testing.T) {
	c := &Character{Level: 1, Exp: 8, ExpToNext: 10}
	leveled := c.GainExperience(5, 3)
	assert.True(t, leveled)
	// 升级后保留溢出经验，下级门槛按 1.2 倍向下取整
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 3, c.Exp)
	assert.Equal(t, 12, c.ExpToNext) // floor(10 * 1.2)
	assert.Equal(t, 3, c.Gold)
}

func TestGainExperienceSingleLevelPerCall(t *testing.T) {
	c := &Character{Level: 1, ExpToNext: 10}
	leveled := c.GainExperience(50, 0)
	assert.True(t, leveled)
	// 单次结算最多升一级，剩余经验保留
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 40, c.Exp)
	assert.Equal(t, 12, c.ExpToNext)
}

func TestAllocateStat(t *testing.T) {
	c := &Character{Str: 10, Mana: 20, MaxMana: 50}
	alloc := &Allocation{Points: 2}

	require.NoError(t, c.AllocateStat(alloc, StatStr))
	assert.Equal(t, 11, c.Str)
	assert.Equal(t, 1, alloc.SpentStr)
	assert.Equal(t, 1, alloc.Points)

	// 法力加点同时加上限与当前值
	require.NoError(t, c.AllocateStat(alloc, StatMana))
	assert.Equal(t, 58, c.MaxMana)
	assert.Equal(t, 28, c.Mana)
	assert.Equal(t, 1, alloc.SpentMana)
	assert.Equal(t, 0, alloc.Points)

	err := c.AllocateStat(alloc, StatStr)
	assert.True(t, errors.Is(err, errors.ErrNoStatPoints))
}

func TestApplyDeltaClamps(t *testing.T) {
	c := &Character{HP: 40, MaxHP: 100, Mana: 30, MaxMana: 50}

	// 穿上装备只提升上限，不回复当前值
	c.ApplyDelta(StatDelta{HP: 200, Mana: 100})
	assert.Equal(t, 300, c.MaxHP)
	assert.Equal(t, 40, c.HP)
	assert.Equal(t, 150, c.MaxMana)
	assert.Equal(t, 30, c.Mana)

	// 卸下装备后当前值夹回新上限
	c.HP = 300
	c.Mana = 150
	c.ApplyDelta(StatDelta{HP: -200, Mana: -100})
	assert.Equal(t, 100, c.MaxHP)
	assert.Equal(t, 100, c.HP)
	assert.Equal(t, 50, c.MaxMana)
	assert.Equal(t, 50, c.Mana)
}

func TestHealAndRestoreMana(t *testing.T) {
	c := &Character{HP: 10, MaxHP: 100, Mana: 5, MaxMana: 40}
	c.Heal(400)
	assert.Equal(t, 100, c.HP)
	c.RestoreMana(10)
	assert.Equal(t, 15, c.Mana)
}
