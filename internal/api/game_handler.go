package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wfunc/chain-hunter/internal/game"
)

// GameHandler 游戏处理器。所有操作经战斗引擎命令队列串行执行。
type GameHandler struct {
	engine *game.Engine
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(engine *game.Engine) *GameHandler {
	return &GameHandler{engine: engine}
}

// State 当前游戏状态快照
func (h *GameHandler) State(c *gin.Context) {
	state, err := h.engine.State()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, state)
}

// Classes 可选职业列表
func (h *GameHandler) Classes(c *gin.Context) {
	respondOK(c, game.AllClasses())
}

// SelectClassRequest 选择职业请求
type SelectClassRequest struct {
	Class string `json:"class" binding:"required"`
}

// SelectClass 选择职业开局
func (h *GameHandler) SelectClass(c *gin.Context) {
	var req SelectClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "请求参数错误"})
		return
	}
	if err := h.engine.SelectClass(game.ClassID(req.Class)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"class": req.Class})
}

// UseSkill 使用技能
func (h *GameHandler) UseSkill(c *gin.Context) {
	if err := h.engine.UseSkill(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// NormalAttack 普通攻击
func (h *GameHandler) NormalAttack(c *gin.Context) {
	if err := h.engine.NormalAttack(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// AllocateStatRequest 属性分配请求
type AllocateStatRequest struct {
	Stat string `json:"stat" binding:"required"`
}

// AllocateStat 分配属性点
func (h *GameHandler) AllocateStat(c *gin.Context) {
	var req AllocateStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "请求参数错误"})
		return
	}
	if err := h.engine.AllocateStat(game.StatKind(req.Stat)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// SetSpeedRequest 倍速请求
type SetSpeedRequest struct {
	Speed int `json:"speed" binding:"required"`
}

// SetSpeed 调整游戏倍速
func (h *GameHandler) SetSpeed(c *gin.Context) {
	var req SetSpeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "请求参数错误"})
		return
	}
	if err := h.engine.SetSpeed(req.Speed); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"speed": req.Speed})
}

// CombatLog 战斗日志快照
func (h *GameHandler) CombatLog(c *gin.Context) {
	respondOK(c, h.engine.CombatLog().Entries())
}
