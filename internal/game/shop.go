package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
)

// Potion 金币商店药水
type Potion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	HealHP      int    `json:"healHp"`
	HealMana    int    `json:"healMana"`
	Description string `json:"description"`
}

// GoldShopPotions 药水货架
var GoldShopPotions = []*Potion{
	{ID: "pot_hp_small", Name: "Minor HP Potion", Price: 20, HealHP: 50, Description: "+50 HP"},
	{ID: "pot_hp_medium", Name: "HP Potion", Price: 50, HealHP: 150, Description: "+150 HP"},
	{ID: "pot_hp_large", Name: "Greater HP Potion", Price: 120, HealHP: 400, Description: "+400 HP"},
	{ID: "pot_mana_small", Name: "Minor Mana Potion", Price: 25, HealMana: 40, Description: "+40 Mana"},
	{ID: "pot_mana_medium", Name: "Mana Potion", Price: 60, HealMana: 120, Description: "+120 Mana"},
	{ID: "pot_mana_large", Name: "Greater Mana Potion", Price: 140, HealMana: 300, Description: "+300 Mana"},
}

// GetPotion 按 ID 查找药水
func GetPotion(id string) (*Potion, bool) {
	for _, p := range GoldShopPotions {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

var goldShopFixed = []*Item{
	{ID: "g_weap_1", Name: "Iron Sword", Type: TypeWeapon, Price: 100, Str: 5, Rarity: RarityCommon},
	{ID: "g_weap_2", Name: "Steel Blade", Type: TypeWeapon, Price: 250, Str: 12, Rarity: RarityUncommon},
	{ID: "g_weap_3", Name: "Flame Sword", Type: TypeWeapon, Price: 600, Str: 25, Int: 8, Rarity: RarityRare},
	{ID: "g_weap_4", Name: "Dragon Slayer", Type: TypeWeapon, Price: 1500, Str: 50, Rarity: RarityEpic},
	{ID: "g_helm_1", Name: "Leather Cap", Type: TypeHelmet, Price: 80, Def: 3, HP: 20, Rarity: RarityCommon},
	{ID: "g_helm_2", Name: "Iron Helm", Type: TypeHelmet, Price: 200, Def: 8, HP: 50, Rarity: RarityUncommon},
	{ID: "g_helm_3", Name: "Mystic Hood", Type: TypeHelmet, Price: 500, Def: 12, Mana: 80, Int: 10, Rarity: RarityRare},
	{ID: "g_armor_1", Name: "Chain Mail", Type: TypeArmor, Price: 300, Def: 15, HP: 100, Rarity: RarityUncommon},
	{ID: "g_armor_2", Name: "Plate Armor", Type: TypeArmor, Price: 800, Def: 30, HP: 200, Rarity: RarityRare},
	{ID: "g_leg_1", Name: "Swift Greaves", Type: TypeLegging, Price: 400, Def: 10, Str: 8, Rarity: RarityRare},
	{ID: "g_boot_1", Name: "Winged Boots", Type: TypeBoots, Price: 350, Def: 8, Mana: 50, Rarity: RarityUncommon},
	{ID: "g_ring_1", Name: "Ring of Power", Type: TypeRing, Price: 700, Str: 15, Int: 10, Rarity: RarityRare},
	{ID: "g_ring_2", Name: "Life Ring", Type: TypeRing, Price: 900, HP: 300, Rarity: RarityEpic},
	{ID: "g_amu_1", Name: "Amulet of Wisdom", Type: TypeAmulet, Price: 800, Int: 20, Mana: 150, Rarity: RarityRare},
	{ID: "g_shield_1", Name: "Wooden Shield", Type: TypeSubWeapon, Price: 150, Def: 10, HP: 80, Rarity: RarityCommon},
	{ID: "g_shield_2", Name: "Tower Shield", Type: TypeSubWeapon, Price: 600, Def: 25, HP: 200, Rarity: RarityRare},
}

var equipmentNameBases = map[ItemType][]string{
	TypeWeapon:    {"Blade", "Axe", "Mace", "Dagger", "Staff", "Wand", "Bow"},
	TypeHelmet:    {"Helm", "Crown", "Visor", "Mask", "Circlet"},
	TypeArmor:     {"Plate", "Robes", "Mail", "Scale", "Vest"},
	TypeLegging:   {"Greaves", "Pants", "Legguards"},
	TypeBoots:     {"Boots", "Sabatons", "Sandals"},
	TypeRing:      {"Ring", "Band"},
	TypeAmulet:    {"Pendant", "Necklace", "Charm"},
	TypeSubWeapon: {"Shield", "Buckler", "Orb"},
}

var shopTypeOrder = []ItemType{
	TypeWeapon, TypeHelmet, TypeArmor, TypeLegging,
	TypeBoots, TypeRing, TypeAmulet, TypeSubWeapon,
}

var (
	goldShopOnce sync.Once
	goldShopAll  []*Item
)

// GoldShopEquipment 金币商店货架：固定条目加 120 件程序化生成的装备。
// 生成使用固定种子，商品 ID 与属性在进程间保持稳定。
func GoldShopEquipment() []*Item {
	goldShopOnce.Do(func() {
		rng := rand.New(rand.NewSource(20240601))
		goldShopAll = append(goldShopAll, goldShopFixed...)

		counter := 5
		for i := 0; i < 120; i++ {
			typ := shopTypeOrder[rng.Intn(len(shopTypeOrder))]
			bases := equipmentNameBases[typ]
			nameBase := bases[rng.Intn(len(bases))]
			rarity := []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}[rng.Intn(5)]
			mult := shopRarityMult(rarity)
			basePrice := float64(100 + i*20)

			item := &Item{
				ID:     fmt.Sprintf("g_eq_%d", counter),
				Name:   fmt.Sprintf("%s %s", rarity, nameBase),
				Type:   typ,
				Rarity: rarity,
				Price:  int(math.Floor(basePrice * mult)),
				HP:     int(math.Floor(20*mult + float64(i)*2)),
			}
			counter++

			if typ == TypeWeapon {
				item.Str = int(math.Floor(5*mult + float64(i)*0.5))
			}
			if containsAny(nameBase, "Staff", "Wand", "Orb") {
				item.Int = int(math.Floor(8*mult + float64(i)*0.3))
			}
			switch typ {
			case TypeSubWeapon, TypeArmor, TypeHelmet, TypeLegging, TypeBoots:
				item.Def = int(math.Floor(5*mult + float64(i)*0.4))
			}
			if containsAny(nameBase, "Robes", "Wand", "Orb", "Circlet") {
				item.Mana = int(math.Floor(30*mult + float64(i)*1.5))
			}

			goldShopAll = append(goldShopAll, item)
		}
	})
	return goldShopAll
}

// shopRarityMult 商店货架的倍率表（与掉落倍率不同）
func shopRarityMult(r Rarity) float64 {
	switch r {
	case RarityLegendary:
		return 4
	case RarityEpic:
		return 3
	case RarityRare:
		return 2
	case RarityUncommon:
		return 1.5
	default:
		return 1
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// GetShopItem 按 ID 查找商店装备
func GetShopItem(id string) (*Item, bool) {
	for _, it := range GoldShopEquipment() {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}
