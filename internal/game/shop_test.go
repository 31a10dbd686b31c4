package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldShopEquipmentStable(t *testing.T) {
	first := GoldShopEquipment()
	second := GoldShopEquipment()

	// 固定货架 16 件加程序化生成 120 件
	assert.Len(t, first, 136)
	// 种子固定，两次调用返回同一货架
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Price, second[i].Price)
	}
}

func TestGoldShopEquipmentUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range GoldShopEquipment() {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestGoldShopProceduralShape(t *testing.T) {
	for _, it := range GoldShopEquipment() {
		if !strings.HasPrefix(it.ID, "g_eq_") {
			continue
		}
		assert.NotEmpty(t, it.Name)
		assert.Positive(t, it.Price)
		assert.Positive(t, it.HP)

		switch it.Type {
		case TypeSubWeapon, TypeArmor, TypeHelmet, TypeLegging, TypeBoots:
			assert.Positive(t, it.Def, "armor slot item %s should carry defense", it.ID)
		}
		if it.Type == TypeWeapon {
			assert.Positive(t, it.Str, "weapon %s should carry strength", it.ID)
		}
	}
}

func TestGetShopItem(t *testing.T) {
	it, ok := GetShopItem("g_weap_1")
	require.True(t, ok)
	assert.Equal(t, "Iron Sword", it.Name)
	assert.Equal(t, 100, it.Price)

	_, ok = GetShopItem("missing")
	assert.False(t, ok)
}

func TestGetPotion(t *testing.T) {
	p, ok := GetPotion("pot_mana_large")
	require.True(t, ok)
	assert.Equal(t, 140, p.Price)
	assert.Equal(t, 300, p.HealMana)

	_, ok = GetPotion("missing")
	assert.False(t, ok)
}

func TestShopRarityMult(t *testing.T) {
	assert.Equal(t, 4.0, shopRarityMult(RarityLegendary))
	assert.Equal(t, 3.0, shopRarityMult(RarityEpic))
	assert.Equal(t, 2.0, shopRarityMult(RarityRare))
	assert.Equal(t, 1.5, shopRarityMult(RarityUncommon))
	assert.Equal(t, 1.0, shopRarityMult(RarityCommon))
}
