package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfunc/chain-hunter/internal/errors"
)

func newTestInventory(t *testing.T, class ClassID) (*Inventory, *Character, *CombatLog) {
	t.Helper()
	char, err := NewCharacter(class)
	require.NoError(t, err)
	log := NewCombatLog(10)
	return NewInventory(char, log), char, log
}

func TestToggleEquipAppliesDelta(t *testing.T) {
	inv, char, _ := newTestInventory(t, ClassWarrior)
	baseStr := char.Str
	baseHP := char.MaxHP

	inv.Add(&Item{ID: "i1", Name: "Iron Sword", Type: TypeWeapon, Str: 5})
	inv.Add(&Item{ID: "i2", Name: "Chain Mail", Type: TypeArmor, Def: 15, HP: 100})

	require.NoError(t, inv.ToggleEquip("i1"))
	assert.Equal(t, baseStr+5, char.Str)

	require.NoError(t, inv.ToggleEquip("i2"))
	assert.Equal(t, baseHP+100, char.MaxHP)

	// 脱下后增量完整回退
	require.NoError(t, inv.ToggleEquip("i1"))
	assert.Equal(t, baseStr, char.Str)
}

func TestToggleEquipSlotExclusive(t *testing.T) {
	inv, char, _ := newTestInventory(t, ClassWarrior)
	baseStr := char.Str

	inv.Add(&Item{ID: "w1", Name: "Iron Sword", Type: TypeWeapon, Str: 5})
	inv.Add(&Item{ID: "w2", Name: "Steel Blade", Type: TypeWeapon, Str: 12})

	require.NoError(t, inv.ToggleEquip("w1"))
	require.NoError(t, inv.ToggleEquip("w2"))

	// 同槽位只保留一件，属性一次性结算
	equipped := inv.EquippedBySlot()
	assert.Equal(t, "w2", equipped[TypeWeapon].ID)
	assert.Equal(t, baseStr+12, char.Str)

	w1, _ := inv.Find("w1")
	assert.False(t, w1.Equipped)
}

func TestToggleEquipWizardSubWeapon(t *testing.T) {
	inv, _, log := newTestInventory(t, ClassWizard)
	inv.Add(&Item{ID: "s1", Name: "Wooden Shield", Type: TypeSubWeapon, Def: 10})

	err := inv.ToggleEquip("s1")
	assert.True(t, errors.Is(err, errors.ErrClassRestriction))

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Wizards cannot equip Sub Weapons!", entries[0].Message)
}

func TestToggleEquipNotFound(t *testing.T) {
	inv, _, _ := newTestInventory(t, ClassWarrior)
	err := inv.ToggleEquip("missing")
	assert.True(t, errors.Is(err, errors.ErrItemNotFound))
}

func TestMarketRoundtrip(t *testing.T) {
	inv, char, log := newTestInventory(t, ClassWarrior)
	char.Gold = 1000

	item := &Item{ID: "m1", Name: "Life Ring", Type: TypeRing, HP: 300, Price: 900}
	inv.Add(item)
	require.NoError(t, inv.ToggleEquip("m1"))

	// 挂单会先卸下装备
	require.NoError(t, inv.SellToMarket("m1"))
	assert.Empty(t, inv.Items())
	require.Len(t, inv.Marketplace(), 1)
	listed := inv.Marketplace()[0]
	assert.Equal(t, "You", listed.Seller)
	assert.False(t, listed.Equipped)
	assert.Equal(t, LogTrade, log.Entries()[0].Type)
	assert.Equal(t, "Listed Life Ring", log.Entries()[0].Message)

	require.NoError(t, inv.BuyFromMarket("m1"))
	assert.Equal(t, 100, char.Gold)
	assert.Empty(t, inv.Marketplace())
	require.Len(t, inv.Items(), 1)
	assert.Equal(t, "", inv.Items()[0].Seller)
	assert.Equal(t, LogTrade, log.Entries()[0].Type)
	assert.Equal(t, "Bought Life Ring", log.Entries()[0].Message)
}

func TestBuyFromMarketInsufficientGold(t *testing.T) {
	inv, char, log := newTestInventory(t, ClassWarrior)
	char.Gold = 10
	inv.Restore(nil, []*Item{{ID: "m1", Name: "Life Ring", Type: TypeRing, Price: 900, Seller: "Hunter_7"}})

	err := inv.BuyFromMarket("m1")
	assert.True(t, errors.Is(err, errors.ErrInsufficientGold))
	assert.Equal(t, 10, char.Gold)
	assert.Len(t, inv.Marketplace(), 1)
	assert.Equal(t, "Need 900 gold!", log.Entries()[0].Message)
}

func TestBuyShopItem(t *testing.T) {
	inv, char, _ := newTestInventory(t, ClassWarrior)
	char.Gold = 150

	require.NoError(t, inv.BuyShopItem("g_weap_1"))
	assert.Equal(t, 50, char.Gold)
	require.Len(t, inv.Items(), 1)
	assert.Equal(t, "Iron Sword", inv.Items()[0].Name)

	err := inv.BuyShopItem("g_weap_4")
	assert.True(t, errors.Is(err, errors.ErrInsufficientGold))

	err = inv.BuyShopItem("nope")
	assert.True(t, errors.Is(err, errors.ErrItemNotFound))
}

func TestBuyPotionHealsAndClamps(t *testing.T) {
	inv, char, _ := newTestInventory(t, ClassWarrior)
	char.Gold = 100
	char.HP = 5

	require.NoError(t, inv.BuyPotion("pot_hp_small"))
	assert.Equal(t, 80, char.Gold)
	// +50 夹紧到上限 30
	assert.Equal(t, char.MaxHP, char.HP)

	char.Mana = 0
	require.NoError(t, inv.BuyPotion("pot_mana_small"))
	assert.Equal(t, 40, char.Mana)
}

func TestRestoreReappliesEquippedDeltas(t *testing.T) {
	inv, char, _ := newTestInventory(t, ClassWarrior)
	baseStr := char.Str

	inv.Restore([]*Item{
		{ID: "w1", Name: "Steel Blade", Type: TypeWeapon, Str: 12, Equipped: true},
		{ID: "r1", Name: "Ring of Power", Type: TypeRing, Str: 15, Int: 10},
	}, nil)

	assert.Equal(t, baseStr+12, char.Str)
}
