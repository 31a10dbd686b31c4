package game

import "fmt"

// Enemy 敌人。每 10 级出现一次 Boss。
type Enemy struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"maxHp"`
	Atk       int    `json:"atk"`
	IsBoss    bool   `json:"isBoss"`
	RewardExp int    `json:"rewardExp"`
	RewardGold int   `json:"rewardGold"`

	defeated bool
}

// GenerateEnemy 按等级生成敌人（完全确定性）
func GenerateEnemy(level int) *Enemy {
	if level < 1 {
		level = 1
	}
	if level%10 == 0 {
		hp := 200 + 50*level
		return &Enemy{
			Name:       fmt.Sprintf("Boss Lv.%d", level),
			Level:      level,
			HP:         hp,
			MaxHP:      hp,
			Atk:        10 + 3*level,
			IsBoss:     true,
			RewardExp:  100 + 10*level,
			RewardGold: 50 + 5*level,
		}
	}
	hp := 20 + 20*level
	return &Enemy{
		Name:       fmt.Sprintf("Monster Lv.%d", level),
		Level:      level,
		HP:         hp,
		MaxHP:      hp,
		Atk:        1 + 2*level,
		IsBoss:     false,
		RewardExp:  int(5 + 2.5*float64(level)),
		RewardGold: 5 + 3*level,
	}
}

// TakeDamage 扣血，返回是否刚刚死亡（只会返回一次 true）
func (e *Enemy) TakeDamage(dmg int) bool {
	if e.defeated {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.defeated = true
		return true
	}
	return false
}

// Alive 是否存活
func (e *Enemy) Alive() bool {
	return e != nil && !e.defeated
}

// Clone 深拷贝（对外快照用）
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}
