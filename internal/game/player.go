package game

import (
	"math"

	"github.com/wfunc/chain-hunter/internal/errors"
)

// StatKind 可分配属性类型
type StatKind string

const (
	StatStr  StatKind = "str"
	StatInt  StatKind = "int"
	StatDef  StatKind = "def"
	StatHP   StatKind = "hp"
	StatMana StatKind = "mana"
)

// Character 角色。JSON 字段名保持与存档格式一致。
type Character struct {
	Class      ClassID `json:"class"`
	Level      int     `json:"level"`
	Exp        int     `json:"exp"`
	ExpToNext  int     `json:"expToNext"`
	Str        int     `json:"str"`
	Int        int     `json:"int"`
	Def        int     `json:"def"`
	HP         int     `json:"hp"`
	MaxHP      int     `json:"maxHp"`
	Mana       int     `json:"mana"`
	MaxMana    int     `json:"maxMana"`
	Gold       int     `json:"gold"`
}

// Allocation 属性点分配状态，与角色分开持久化
type Allocation struct {
	Points    int `json:"points"`
	SpentStr  int `json:"spentStr"`
	SpentInt  int `json:"spentInt"`
	SpentDef  int `json:"spentDef"`
	SpentMana int `json:"spentMana"`
}

// NewCharacter 按职业模板创建角色
func NewCharacter(classID ClassID) (*Character, error) {
	tpl, ok := GetClass(classID)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidParam, "未知职业: %s", classID)
	}
	return &Character{
		Class:     classID,
		Level:     1,
		Exp:       0,
		ExpToNext: 10,
		Str:       tpl.BaseStr,
		Int:       tpl.BaseInt,
		Def:       tpl.BaseDef,
		HP:        tpl.BaseHP,
		MaxHP:     tpl.BaseHP,
		Mana:      tpl.BaseMana,
		MaxMana:   tpl.BaseMana,
		Gold:      0,
	}, nil
}

// AttackPower 基础攻击力
func (c *Character) AttackPower() int {
	return int(math.Floor(float64(c.Str) * 1.5))
}

// SkillDamage 技能伤害：攻击力与智力加成乘以技能倍率
func (c *Character) SkillDamage(multiplier float64) int {
	base := float64(c.AttackPower()) + float64(c.Int)*0.8
	return int(math.Floor(base * multiplier))
}

// NormalStrike 冷却期间的普通攻击伤害
func (c *Character) NormalStrike() int {
	return int(math.Floor(float64(c.AttackPower()) * 0.2))
}

// ManaRegenAmount 每次法力回复量
func (c *Character) ManaRegenAmount() int {
	return int(math.Floor(2 + float64(c.Int)*0.1))
}

// HPRegenAmount 每次生命回复量
func (c *Character) HPRegenAmount() int {
	return int(math.Floor(10 * math.Sqrt(float64(c.Level))))
}

// GainExperience 获得经验与金币。单次调用最多升一级（剩余经验保留）。
// 返回是否升级。
func (c *Character) GainExperience(exp, gold int) bool {
	c.Exp += exp
	c.Gold += gold
	if c.Exp < c.ExpToNext {
		return false
	}
	c.Exp -= c.ExpToNext
	c.Level++
	c.ExpToNext = int(math.Floor(float64(c.ExpToNext) * 1.2))
	return true
}

// AllocateStat 消耗一点属性点
func (c *Character) AllocateStat(alloc *Allocation, stat StatKind) error {
	if alloc.Points <= 0 {
		return errors.New(errors.ErrNoStatPoints)
	}
	switch stat {
	case StatStr:
		c.Str++
		alloc.SpentStr++
	case StatInt:
		c.Int++
		alloc.SpentInt++
	case StatDef:
		c.Def++
		alloc.SpentDef++
	case StatMana:
		// 法力加点同时提升上限与当前值
		c.MaxMana += 8
		c.Mana += 8
		alloc.SpentMana++
	default:
		return errors.Newf(errors.ErrInvalidParam, "未知属性: %s", stat)
	}
	alloc.Points--
	return nil
}

// ApplyDelta 应用装备增量。上限变化后当前值只做夹紧，装备提升生命上限不会回血。
func (c *Character) ApplyDelta(d StatDelta) {
	c.Str += d.Str
	c.Int += d.Int
	c.Def += d.Def
	c.MaxHP += d.HP
	c.MaxMana += d.Mana
	c.HP = clamp(c.HP, 0, c.MaxHP)
	c.Mana = clamp(c.Mana, 0, c.MaxMana)
}

// Heal 回复生命
func (c *Character) Heal(amount int) {
	c.HP = clamp(c.HP+amount, 0, c.MaxHP)
}

// RestoreMana 回复法力
func (c *Character) RestoreMana(amount int) {
	c.Mana = clamp(c.Mana+amount, 0, c.MaxMana)
}

// Clone 深拷贝（对外快照用）
func (c *Character) Clone() *Character {
	cp := *c
	return &cp
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
