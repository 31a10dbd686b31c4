package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEnemyRegular(t *testing.T) {
	e := GenerateEnemy(3)
	assert.Equal(t, "Monster Lv.3", e.Name)
	assert.False(t, e.IsBoss)
	assert.Equal(t, 80, e.HP)
	assert.Equal(t, 80, e.MaxHP)
	assert.Equal(t, 7, e.Atk)
	assert.Equal(t, 12, e.RewardExp) // int(5 + 7.5)
	assert.Equal(t, 14, e.RewardGold)
}

func TestGenerateEnemyBossCadence(t *testing.T) {
	for _, lvl := range []int{10, 20, 30, 100} {
		e := GenerateEnemy(lvl)
		assert.True(t, e.IsBoss, "level %d", lvl)
	}
	for _, lvl := range []int{1, 9, 11, 99} {
		e := GenerateEnemy(lvl)
		assert.False(t, e.IsBoss, "level %d", lvl)
	}
}

func TestGenerateEnemyBossStats(t *testing.T) {
	e := GenerateEnemy(10)
	assert.Equal(t, "Boss Lv.10", e.Name)
	assert.Equal(t, 700, e.HP)
	assert.Equal(t, 40, e.Atk)
	assert.Equal(t, 200, e.RewardExp)
	assert.Equal(t, 100, e.RewardGold)
}

func TestGenerateEnemyMinLevel(t *testing.T) {
	e := GenerateEnemy(0)
	assert.Equal(t, 1, e.Level)
}

func TestEnemyTakeDamageDefeatedOnce(t *testing.T) {
	e := GenerateEnemy(1) // 40 HP
	assert.False(t, e.TakeDamage(39))
	assert.True(t, e.Alive())

	// 致死一击只返回一次 true
	assert.True(t, e.TakeDamage(10))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Alive())
	assert.False(t, e.TakeDamage(10))
}

func TestEnemyAliveNil(t *testing.T) {
	var e *Enemy
	assert.False(t, e.Alive())
	assert.Nil(t, e.Clone())
}
