package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// LootGenerator 掉落生成器。随机源显式注入，测试可用固定种子。
type LootGenerator struct {
	rng *rand.Rand
}

// NewLootGenerator 创建掉落生成器
func NewLootGenerator(rng *rand.Rand) *LootGenerator {
	return &LootGenerator{rng: rng}
}

var lootStats = []string{"str", "hp", "mana", "int"}

// Generate 按敌人类型与玩家等级掷骰。未掉落返回 nil。
// Boss 必掉；普通怪掉率为 min(5+0.5*level, 30)%。
func (g *LootGenerator) Generate(isBoss bool, level int, source string) *Item {
	baseChance := 100.0
	if !isBoss {
		baseChance = math.Min(5+float64(level)*0.5, 30)
	}
	if g.rng.Float64()*100 > baseChance {
		return nil
	}

	rarity, mult := g.rollRarity(isBoss, level)
	typ := EquipSlots[g.rng.Intn(len(EquipSlots))]
	stat := lootStats[g.rng.Intn(len(lootStats))]

	item := &Item{
		ID:          fmt.Sprintf("nft_%s", uuid.New().String()),
		Name:        fmt.Sprintf("%s %s", rarity, typ),
		Type:        typ,
		Rarity:      rarity,
		PrimaryStat: stat,
		Source:      source,
		Price:       int(math.Floor((100 + float64(level)*50) * mult)),
	}

	switch stat {
	case "str":
		item.Str = int(math.Floor((5 + float64(level)*2) * mult))
	case "hp":
		item.HP = int(math.Floor((20 + float64(level)*5) * mult))
	case "mana":
		item.Mana = int(math.Floor((10 + float64(level)*3) * mult))
	default:
		item.Int = int(math.Floor((5 + float64(level)*2) * mult))
	}

	// 护甲槽位附带防御
	switch typ {
	case TypeArmor, TypeHelmet, TypeLegging, TypeBoots:
		item.Def = int(math.Floor((3 + float64(level)*1.5) * mult))
	}

	return item
}

// rollRarity 掷稀有度。先判定 Mystical，再按 Boss/普通两套表走。
func (g *LootGenerator) rollRarity(isBoss bool, level int) (Rarity, float64) {
	mysticalChance := 8.0
	if !isBoss {
		mysticalChance = math.Min(0.5+float64(level)*0.03, 4)
	}

	roll := g.rng.Float64() * 100
	if roll < mysticalChance {
		return RarityMystical, 6
	}

	if isBoss {
		switch {
		case roll < 10:
			return RarityLegendary, 3
		case roll < 30:
			return RarityEpic, 2
		case roll < 60:
			return RarityRare, 1.5
		default:
			return RarityCommon, 1
		}
	}

	bonus := math.Min(float64(level)*0.3, 15)
	switch {
	case roll < 2+bonus*0.2:
		return RarityEpic, 2
	case roll < 8+bonus*0.5:
		return RarityRare, 1.5
	case roll < 25+bonus:
		return RarityUncommon, 1.2
	default:
		return RarityCommon, 1
	}
}
