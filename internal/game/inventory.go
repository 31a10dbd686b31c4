package game

import (
	"fmt"

	"github.com/wfunc/chain-hunter/internal/errors"
)

// Inventory 背包与集市管理。方法不做并发保护，
// 全部调用都必须经由战斗引擎的命令队列串行执行。
type Inventory struct {
	char   *Character
	log    *CombatLog
	items  []*Item
	market []*Item
}

// NewInventory 创建背包管理器
func NewInventory(char *Character, log *CombatLog) *Inventory {
	return &Inventory{char: char, log: log}
}

// Restore 从存档恢复背包与集市，并恢复已装备物品的属性加成
func (v *Inventory) Restore(items, market []*Item) {
	v.items = items
	v.market = market
	for _, it := range v.items {
		if it.Equipped {
			v.char.ApplyDelta(it.Delta())
		}
	}
}

// Items 背包内容
func (v *Inventory) Items() []*Item { return v.items }

// Marketplace 集市挂单
func (v *Inventory) Marketplace() []*Item { return v.market }

// Add 放入背包
func (v *Inventory) Add(item *Item) {
	v.items = append(v.items, item)
}

// Find 按 ID 查找背包物品
func (v *Inventory) Find(id string) (*Item, bool) {
	for _, it := range v.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// ToggleEquip 穿上或脱下装备。穿上时同槽位其他装备先被卸下，
// 属性增量一次性结算，当前生命法力夹紧到新上限。
func (v *Inventory) ToggleEquip(id string) error {
	target, ok := v.Find(id)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}

	// 法师禁用副手
	if v.char.Class == ClassWizard && target.Type == TypeSubWeapon {
		v.log.Append(LogInfo, "Wizards cannot equip Sub Weapons!")
		return errors.New(errors.ErrClassRestriction)
	}

	var delta StatDelta
	if !target.Equipped {
		// 先卸下同槽位装备
		for _, it := range v.items {
			if it.Type == target.Type && it.Equipped && it.ID != target.ID {
				it.Equipped = false
				delta = sub(delta, it.Delta())
			}
		}
		target.Equipped = true
		delta = add(delta, target.Delta())
	} else {
		target.Equipped = false
		delta = target.Delta().Negate()
	}

	v.char.ApplyDelta(delta)
	return nil
}

// EquippedBySlot 当前各槽位已装备物品
func (v *Inventory) EquippedBySlot() map[ItemType]*Item {
	out := make(map[ItemType]*Item)
	for _, it := range v.items {
		if it.Equipped {
			out[it.Type] = it
		}
	}
	return out
}

// BuyFromMarket 从集市购买：扣金币、清除卖家标记、移除挂单
func (v *Inventory) BuyFromMarket(id string) error {
	var target *Item
	idx := -1
	for i, it := range v.market {
		if it.ID == id {
			target, idx = it, i
			break
		}
	}
	if target == nil {
		return errors.New(errors.ErrItemNotFound)
	}
	if v.char.Gold < target.Price {
		v.log.Append(LogInfo, fmt.Sprintf("Need %d gold!", target.Price))
		return errors.New(errors.ErrInsufficientGold)
	}

	v.char.Gold -= target.Price
	bought := target.Clone()
	bought.Seller = ""
	bought.Equipped = false
	v.items = append(v.items, bought)
	v.market = append(v.market[:idx], v.market[idx+1:]...)
	v.log.Append(LogTrade, fmt.Sprintf("Bought %s", bought.Name))
	return nil
}

// SellToMarket 将背包物品挂上集市。已装备的先卸下。
func (v *Inventory) SellToMarket(id string) error {
	target, ok := v.Find(id)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}
	if target.Equipped {
		if err := v.ToggleEquip(id); err != nil {
			return err
		}
	}

	for i, it := range v.items {
		if it.ID == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			break
		}
	}
	listed := target.Clone()
	listed.Seller = "You"
	v.market = append(v.market, listed)
	v.log.Append(LogTrade, fmt.Sprintf("Listed %s", listed.Name))
	return nil
}

// BuyShopItem 从金币商店购买装备
func (v *Inventory) BuyShopItem(id string) error {
	item, ok := GetShopItem(id)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}
	if v.char.Gold < item.Price {
		v.log.Append(LogInfo, fmt.Sprintf("Need %d gold!", item.Price))
		return errors.New(errors.ErrInsufficientGold)
	}
	v.char.Gold -= item.Price
	bought := item.Clone()
	bought.Equipped = false
	v.items = append(v.items, bought)
	v.log.Append(LogTrade, fmt.Sprintf("Bought %s", bought.Name))
	return nil
}

// BuyPotion 购买并立即使用药水
func (v *Inventory) BuyPotion(id string) error {
	potion, ok := GetPotion(id)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}
	if v.char.Gold < potion.Price {
		v.log.Append(LogInfo, fmt.Sprintf("Need %d gold!", potion.Price))
		return errors.New(errors.ErrInsufficientGold)
	}
	v.char.Gold -= potion.Price
	if potion.HealHP > 0 {
		v.char.Heal(potion.HealHP)
	}
	if potion.HealMana > 0 {
		v.char.RestoreMana(potion.HealMana)
	}
	v.log.Append(LogInfo, fmt.Sprintf("Used %s! %s", potion.Name, potion.Description))
	return nil
}

func add(a, b StatDelta) StatDelta {
	return StatDelta{Str: a.Str + b.Str, Int: a.Int + b.Int, Def: a.Def + b.Def, HP: a.HP + b.HP, Mana: a.Mana + b.Mana}
}

func sub(a, b StatDelta) StatDelta {
	return add(a, b.Negate())
}
