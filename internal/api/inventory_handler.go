package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wfunc/chain-hunter/internal/game"
)

// InventoryHandler 背包与商店处理器
type InventoryHandler struct {
	engine *game.Engine
}

// NewInventoryHandler 创建背包处理器
func NewInventoryHandler(engine *game.Engine) *InventoryHandler {
	return &InventoryHandler{engine: engine}
}

// Equip 穿脱装备
func (h *InventoryHandler) Equip(c *gin.Context) {
	if err := h.engine.EquipItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// Sell 挂单到集市
func (h *InventoryHandler) Sell(c *gin.Context) {
	if err := h.engine.SellItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// BuyMarket 从集市购买
func (h *InventoryHandler) BuyMarket(c *gin.Context) {
	if err := h.engine.BuyMarketItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// ShopPotions 药水货架
func (h *InventoryHandler) ShopPotions(c *gin.Context) {
	respondOK(c, game.GoldShopPotions)
}

// ShopEquipment 装备货架
func (h *InventoryHandler) ShopEquipment(c *gin.Context) {
	respondOK(c, game.GoldShopEquipment())
}

// BuyPotion 购买并使用药水
func (h *InventoryHandler) BuyPotion(c *gin.Context) {
	if err := h.engine.BuyPotion(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// BuyEquipment 购买商店装备
func (h *InventoryHandler) BuyEquipment(c *gin.Context) {
	if err := h.engine.BuyShopItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
