package game

// ClassID 职业标识
type ClassID string

const (
	ClassWarrior ClassID = "warrior"
	ClassWizard  ClassID = "wizard"
	ClassTanker  ClassID = "tanker"
)

// ClassTemplate 职业模板：创建角色时的基础属性
type ClassTemplate struct {
	ID          ClassID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BaseStr     int     `json:"baseStr"`
	BaseInt     int     `json:"baseInt"`
	BaseDef     int     `json:"baseDef"`
	BaseHP      int     `json:"baseHp"`
	BaseMana    int     `json:"baseMana"`
}

var classTemplates = map[ClassID]*ClassTemplate{
	ClassWarrior: {
		ID:          ClassWarrior,
		Name:        "Warrior",
		Description: "Balanced melee fighter with solid defense.",
		BaseStr:     15,
		BaseInt:     4,
		BaseDef:     20,
		BaseHP:      30,
		BaseMana:    50,
	},
	ClassWizard: {
		ID:          ClassWizard,
		Name:        "Wizard",
		Description: "Fragile caster with overwhelming skill damage.",
		BaseStr:     2,
		BaseInt:     20,
		BaseDef:     5,
		BaseHP:      25,
		BaseMana:    100,
	},
	ClassTanker: {
		ID:          ClassTanker,
		Name:        "Tanker",
		Description: "Slow bruiser that outlasts everything.",
		BaseStr:     7,
		BaseInt:     2,
		BaseDef:     40,
		BaseHP:      70,
		BaseMana:    70,
	},
}

// GetClass 获取职业模板
func GetClass(id ClassID) (*ClassTemplate, bool) {
	t, ok := classTemplates[id]
	return t, ok
}

// AllClasses 返回全部职业模板（固定顺序）
func AllClasses() []*ClassTemplate {
	return []*ClassTemplate{
		classTemplates[ClassWarrior],
		classTemplates[ClassWizard],
		classTemplates[ClassTanker],
	}
}
