package game

import "time"

// Skill 技能定义与冷却状态
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	UnlockLevel int           `json:"unlockLevel"`
	Multiplier  float64       `json:"multiplier"`
	ManaCost    int           `json:"manaCost"`
	Cooldown    time.Duration `json:"cooldown"`
	Ready       bool          `json:"ready"`
}

// DefaultSkills 技能表。冷却时间为 1 倍速下的基准值。
func DefaultSkills() []*Skill {
	return []*Skill{
		{ID: "power_strike", Name: "Power Strike", UnlockLevel: 5, Multiplier: 1.4, ManaCost: 10, Cooldown: 5 * time.Second, Ready: true},
		{ID: "arcane_blast", Name: "Arcane Blast", UnlockLevel: 10, Multiplier: 1.6, ManaCost: 15, Cooldown: 6 * time.Second, Ready: true},
		{ID: "fury_slash", Name: "Fury Slash", UnlockLevel: 15, Multiplier: 1.8, ManaCost: 20, Cooldown: 8 * time.Second, Ready: true},
		{ID: "divine_smite", Name: "Divine Smite", UnlockLevel: 30, Multiplier: 2.8, ManaCost: 35, Cooldown: 12 * time.Second, Ready: true},
	}
}

// Clone 深拷贝（对外快照用）
func (s *Skill) Clone() *Skill {
	cp := *s
	return &cp
}

// CloneSkills 深拷贝技能列表
func CloneSkills(skills []*Skill) []*Skill {
	out := make([]*Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Clone())
	}
	return out
}
