package game

// ItemType 装备槽位类型
type ItemType string

const (
	TypeHelmet    ItemType = "Helmet"
	TypeArmor     ItemType = "Armor"
	TypeLegging   ItemType = "Legging"
	TypeBoots     ItemType = "Boots"
	TypeAmulet    ItemType = "Amulet"
	TypeRing      ItemType = "Ring"
	TypeWeapon    ItemType = "Weapon"
	TypeSubWeapon ItemType = "Sub Weapon"
)

// EquipSlots 全部装备槽位（固定顺序）
var EquipSlots = []ItemType{
	TypeHelmet, TypeArmor, TypeLegging, TypeBoots,
	TypeAmulet, TypeRing, TypeWeapon, TypeSubWeapon,
}

// Rarity 稀有度
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMystical  Rarity = "Mystical"
)

// RarityMultiplier 稀有度对应的属性与价格倍率
func RarityMultiplier(r Rarity) float64 {
	switch r {
	case RarityUncommon:
		return 1.2
	case RarityRare:
		return 1.5
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	case RarityMystical:
		return 6
	default:
		return 1
	}
}

// Item 装备记录。所有属性字段固定存在，未使用的槽位显式为零，
// 保证序列化后的结构稳定，旧档案可以直接反序列化。
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Rarity      Rarity   `json:"rarity"`
	PrimaryStat string   `json:"primaryStat,omitempty"`
	Str     int      `json:"str"`
	Int     int      `json:"int"`
	Def     int      `json:"def"`
	HP      int      `json:"hp"`
	Mana    int      `json:"mana"`
	Price   int      `json:"price"`
	Equipped bool    `json:"equipped"`
	Source  string   `json:"source,omitempty"`
	Seller  string   `json:"seller,omitempty"`
}

// Delta 该装备提供的属性增量
func (i *Item) Delta() StatDelta {
	return StatDelta{
		Str:  i.Str,
		Int:  i.Int,
		Def:  i.Def,
		HP:   i.HP,
		Mana: i.Mana,
	}
}

// Negate 取反增量（卸下装备时使用）
func (d StatDelta) Negate() StatDelta {
	return StatDelta{
		Str:  -d.Str,
		Int:  -d.Int,
		Def:  -d.Def,
		HP:   -d.HP,
		Mana: -d.Mana,
	}
}

// StatDelta 装备增减量
type StatDelta struct {
	Str  int `json:"str"`
	Int  int `json:"int"`
	Def  int `json:"def"`
	HP   int `json:"hp"`
	Mana int `json:"mana"`
}

// Clone 深拷贝（对外快照用）
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// CloneItems 深拷贝物品列表
func CloneItems(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}
