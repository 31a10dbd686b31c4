package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/config"
	"github.com/wfunc/chain-hunter/internal/errors"
)

// command 引擎命令。所有状态变更都封装成命令，
// 由唯一的消费协程串行执行，引擎内部不需要锁。
type command func(*Engine)

// Engine 战斗引擎。定时器到期只投递命令，不直接改状态，
// 命令执行时读取的永远是最新状态。
type Engine struct {
	cfg    *config.CombatConfig
	logger *zap.Logger
	saver  Saver

	char   *Character
	alloc  *Allocation
	enemy  *Enemy
	skills []*Skill
	inv    *Inventory
	loot   *LootGenerator
	combat *CombatLog

	speed         int
	allowedSpeeds []int

	commands chan command
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// EngineState 对外状态快照，全部为深拷贝
type EngineState struct {
	Player      *Character  `json:"player"`
	Allocation  *Allocation `json:"allocation"`
	Enemy       *Enemy      `json:"enemy"`
	Skills      []*Skill    `json:"skills"`
	Inventory   []*Item     `json:"inventory"`
	Marketplace []*Item     `json:"marketplace"`
	Speed       int         `json:"speed"`
	CombatLog   []LogEntry  `json:"combatLog"`
}

// NewEngine 创建战斗引擎
func NewEngine(cfg *config.GameConfig, saver Saver, logger *zap.Logger) *Engine {
	combat := NewCombatLog(cfg.Combat.LogBufferSize)
	e := &Engine{
		cfg:           &cfg.Combat,
		logger:        logger,
		saver:         saver,
		combat:        combat,
		loot:          NewLootGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		speed:         1,
		allowedSpeeds: cfg.Speeds,
		skills:        DefaultSkills(),
		alloc:         &Allocation{},
	}
	e.inv = NewInventory(nil, combat)
	return e
}

// CombatLog 战斗日志（供 WebSocket 推送订阅）
func (e *Engine) CombatLog() *CombatLog { return e.combat }

// Hydrate 启动前从存档恢复状态。必须在 Start 之前调用。
func (e *Engine) Hydrate(char *Character, alloc *Allocation, items, market []*Item) {
	e.char = char
	if alloc != nil {
		e.alloc = alloc
	}
	e.inv = NewInventory(char, e.combat)
	e.inv.Restore(items, market)
	if char != nil {
		e.enemy = GenerateEnemy(char.Level)
	}
}

// Start 启动命令循环与周期定时器
func (e *Engine) Start(ctx context.Context) {
	e.startOnce.Do(func() {
		e.ctx, e.cancel = context.WithCancel(ctx)
		backlog := e.cfg.CommandBacklog
		if backlog <= 0 {
			backlog = 64
		}
		e.commands = make(chan command, backlog)

		e.wg.Add(1)
		go e.run()

		e.scheduleAttack()
		e.scheduleManaRegen()
		e.scheduleHPRegen()
		e.logger.Info("战斗引擎已启动", zap.Int("speed", e.speed))
	})
}

// Stop 停止引擎并等待命令循环退出
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		if e.cancel != nil {
			e.cancel()
		}
		e.wg.Wait()
		e.logger.Info("战斗引擎已停止")
	})
}

func (e *Engine) run() {
	defer e.wg.Done()
	for {
		select {
		case <-e.ctx.Done():
			return
		case cmd := <-e.commands:
			cmd(e)
		}
	}
}

// post 投递命令（发后即忘）
func (e *Engine) post(cmd command) {
	select {
	case <-e.ctx.Done():
	case e.commands <- cmd:
	}
}

// call 投递命令并等待结果
func (e *Engine) call(fn func(*Engine) error) error {
	done := make(chan error, 1)
	e.post(func(en *Engine) {
		done <- fn(en)
	})
	select {
	case <-e.ctx.Done():
		return errors.New(errors.ErrCanceled)
	case err := <-done:
		return err
	}
}

// scaled 按当前倍速折算延迟。只影响此后新调度的定时器，
// 已排定的定时器保持原延迟。
func (e *Engine) scaled(d time.Duration) time.Duration {
	if e.speed <= 1 {
		return d
	}
	return d / time.Duration(e.speed)
}

func (e *Engine) after(d time.Duration, cmd command) {
	time.AfterFunc(d, func() {
		e.post(cmd)
	})
}

// ---- 周期定时器（自续期链） ----

func (e *Engine) scheduleAttack() {
	e.after(e.scaled(e.cfg.AttackInterval), (*Engine).attackTick)
}

func (e *Engine) attackTick() {
	defer e.scheduleAttack()
	if e.char == nil || !e.enemy.Alive() || e.char.HP <= 0 {
		return
	}

	dmg := e.char.AttackPower()
	killed := e.enemy.TakeDamage(dmg)
	e.combat.Append(LogInfo, fmt.Sprintf("Auto attack! Dealt %d damage!", dmg))

	if killed {
		e.handleDefeat()
		return
	}
	// 敌人反击延迟到期后读取届时的最新状态
	e.after(e.scaled(e.cfg.CounterDelay), (*Engine).counterTick)
}

func (e *Engine) counterTick() {
	if e.char == nil || e.char.HP <= 0 || !e.enemy.Alive() {
		return
	}
	dmg := e.enemy.Atk
	e.char.HP = clamp(e.char.HP-dmg, 0, e.char.MaxHP)
	e.combat.Append(LogInfo, fmt.Sprintf("Enemy attacked! Took %d damage!", dmg))
	e.saver.Save(KeyPlayer, e.char)
}

func (e *Engine) scheduleManaRegen() {
	e.after(e.scaled(e.cfg.ManaRegenTick), func(en *Engine) {
		defer en.scheduleManaRegen()
		if en.char == nil {
			return
		}
		en.char.RestoreMana(en.char.ManaRegenAmount())
	})
}

func (e *Engine) scheduleHPRegen() {
	e.after(e.scaled(e.cfg.HPRegenTick), func(en *Engine) {
		defer en.scheduleHPRegen()
		if en.char == nil || en.char.HP >= en.char.MaxHP {
			return
		}
		before := en.char.HP
		en.char.Heal(en.char.HPRegenAmount())
		if en.char.HP > before {
			en.combat.Append(LogInfo, fmt.Sprintf("Regenerated +%d HP", en.char.HP-before))
		}
	})
}

// handleDefeat 敌人死亡结算。TakeDamage 保证只触发一次。
func (e *Engine) handleDefeat() {
	enemy := e.enemy
	dropLevel := e.char.Level

	leveled := e.char.GainExperience(enemy.RewardExp, enemy.RewardGold)
	if leveled {
		e.alloc.Points += 3
		e.combat.Append(LogVictory, fmt.Sprintf("LEVEL UP! Level %d! +3 Stat Points!", e.char.Level))
	}

	source := enemy.Name
	if !enemy.IsBoss {
		source = fmt.Sprintf("Monster Lv.%d", dropLevel)
	}
	if drop := e.loot.Generate(enemy.IsBoss, dropLevel, source); drop != nil {
		e.inv.Add(drop)
		e.combat.Append(LogNFT, fmt.Sprintf("NFT: %s!", drop.Name))
		e.saver.Save(KeyInventory, e.inv.Items())
	}

	e.combat.Append(LogVictory, fmt.Sprintf("Defeated %s! +%d EXP, +%d Gold",
		enemy.Name, enemy.RewardExp, enemy.RewardGold))

	e.savePlayer()
	e.saveAllocation()

	// 重生时按届时等级生成新敌人
	e.after(e.scaled(e.cfg.RespawnDelay), func(en *Engine) {
		if en.char == nil {
			return
		}
		en.enemy = GenerateEnemy(en.char.Level)
	})
}

// ---- 对外操作（经命令队列串行） ----

// SelectClass 选择职业并开局
func (e *Engine) SelectClass(classID ClassID) error {
	return e.call(func(en *Engine) error {
		char, err := NewCharacter(classID)
		if err != nil {
			return err
		}
		en.char = char
		en.alloc = &Allocation{Points: 3}
		en.skills = DefaultSkills()
		en.inv = NewInventory(char, en.combat)
		en.enemy = GenerateEnemy(char.Level)
		en.combat.Append(LogInfo, fmt.Sprintf("Welcome, %s!", classID))

		en.savePlayer()
		en.saveAllocation()
		en.saver.Save(KeyInventory, en.inv.Items())
		en.logger.Info("角色已创建", zap.String("class", string(classID)))
		return nil
	})
}

// UseSkill 使用技能
func (e *Engine) UseSkill(skillID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if !en.enemy.Alive() {
			return errors.New(errors.ErrNoEnemy)
		}
		var skill *Skill
		for _, s := range en.skills {
			if s.ID == skillID {
				skill = s
				break
			}
		}
		if skill == nil {
			return errors.Newf(errors.ErrInvalidParam, "未知技能: %s", skillID)
		}
		if en.char.Level < skill.UnlockLevel {
			return errors.New(errors.ErrSkillLocked)
		}
		if !skill.Ready {
			return errors.New(errors.ErrSkillNotReady)
		}
		if en.char.Mana < skill.ManaCost {
			return errors.New(errors.ErrInsufficientMana)
		}

		dmg := en.char.SkillDamage(skill.Multiplier)
		en.char.Mana -= skill.ManaCost
		skill.Ready = false
		killed := en.enemy.TakeDamage(dmg)
		en.combat.Append(LogSkill, fmt.Sprintf("Used %s! Dealt %d damage!", skill.Name, dmg))

		// 冷却结束时重置就绪标记
		id := skill.ID
		en.after(en.scaled(skill.Cooldown), func(e2 *Engine) {
			for _, s := range e2.skills {
				if s.ID == id {
					s.Ready = true
				}
			}
		})

		if killed {
			en.handleDefeat()
		}
		return nil
	})
}

// NormalAttack 普通攻击（不占资源，可在技能冷却时反复使用）
func (e *Engine) NormalAttack() error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if !en.enemy.Alive() {
			return errors.New(errors.ErrNoEnemy)
		}
		dmg := en.char.NormalStrike()
		killed := en.enemy.TakeDamage(dmg)
		en.combat.Append(LogInfo, fmt.Sprintf("Strike! Dealt %d damage!", dmg))
		if killed {
			en.handleDefeat()
		}
		return nil
	})
}

// AllocateStat 分配属性点
func (e *Engine) AllocateStat(stat StatKind) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.char.AllocateStat(en.alloc, stat); err != nil {
			return err
		}
		label := string(stat)
		if stat == StatMana {
			label = "MANA"
		}
		en.combat.Append(LogInfo, fmt.Sprintf("+1 %s!", label))
		en.savePlayer()
		en.saveAllocation()
		return nil
	})
}

// SetSpeed 设置游戏倍速。只影响此后调度的定时器。
func (e *Engine) SetSpeed(speed int) error {
	return e.call(func(en *Engine) error {
		for _, s := range en.allowedSpeeds {
			if s == speed {
				en.speed = speed
				en.logger.Info("游戏倍速已调整", zap.Int("speed", speed))
				return nil
			}
		}
		return errors.New(errors.ErrInvalidGameSpeed)
	})
}

// EquipItem 穿脱装备
func (e *Engine) EquipItem(itemID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.inv.ToggleEquip(itemID); err != nil {
			return err
		}
		en.savePlayer()
		en.saveInventory()
		return nil
	})
}

// BuyMarketItem 从集市购买
func (e *Engine) BuyMarketItem(itemID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.inv.BuyFromMarket(itemID); err != nil {
			return err
		}
		en.savePlayer()
		en.saveInventory()
		return nil
	})
}

// SellItem 挂单到集市
func (e *Engine) SellItem(itemID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.inv.SellToMarket(itemID); err != nil {
			return err
		}
		en.savePlayer()
		en.saveInventory()
		return nil
	})
}

// BuyShopItem 从金币商店购买装备
func (e *Engine) BuyShopItem(itemID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.inv.BuyShopItem(itemID); err != nil {
			return err
		}
		en.savePlayer()
		en.saveInventory()
		return nil
	})
}

// BuyPotion 购买并使用药水
func (e *Engine) BuyPotion(potionID string) error {
	return e.call(func(en *Engine) error {
		if en.char == nil {
			return errors.New(errors.ErrNoCharacter)
		}
		if err := en.inv.BuyPotion(potionID); err != nil {
			return err
		}
		en.savePlayer()
		return nil
	})
}

// AddItem 外部来源（链上购买）入包，发后即忘
func (e *Engine) AddItem(item *Item) {
	e.post(func(en *Engine) {
		if en.char == nil {
			return
		}
		en.inv.Add(item)
		en.saveInventory()
	})
}

// State 当前状态快照
func (e *Engine) State() (*EngineState, error) {
	var state *EngineState
	err := e.call(func(en *Engine) error {
		state = &EngineState{
			Allocation:  &Allocation{},
			Enemy:       en.enemy.Clone(),
			Skills:      CloneSkills(en.skills),
			Inventory:   CloneItems(en.inv.Items()),
			Marketplace: CloneItems(en.inv.Marketplace()),
			Speed:       en.speed,
			CombatLog:   en.combat.Entries(),
		}
		if en.char != nil {
			state.Player = en.char.Clone()
		}
		if en.alloc != nil {
			a := *en.alloc
			state.Allocation = &a
		}
		return nil
	})
	return state, err
}

func (e *Engine) savePlayer() {
	e.saver.Save(KeyPlayer, e.char)
}

func (e *Engine) saveInventory() {
	e.saver.Save(KeyInventory, e.inv.Items())
	e.saver.Save(KeyMarketplace, e.inv.Marketplace())
}

func (e *Engine) saveAllocation() {
	e.saver.Save(KeyStatPoints, e.alloc.Points)
	e.saver.Save(KeySpentStr, e.alloc.SpentStr)
	e.saver.Save(KeySpentInt, e.alloc.SpentInt)
	e.saver.Save(KeySpentDef, e.alloc.SpentDef)
	e.saver.Save(KeySpentMana, e.alloc.SpentMana)
}
