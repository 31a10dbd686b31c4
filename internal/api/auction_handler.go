package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wfunc/chain-hunter/internal/chain"
	"github.com/wfunc/chain-hunter/internal/game"
)

// AuctionHandler 链上拍卖行处理器。
// 校验失败同步返回，链上调用在后台执行，结果经战斗日志推送。
type AuctionHandler struct {
	bridge *chain.Bridge
	signer chain.WalletSigner
}

// NewAuctionHandler 创建拍卖行处理器
func NewAuctionHandler(bridge *chain.Bridge, signer chain.WalletSigner) *AuctionHandler {
	return &AuctionHandler{bridge: bridge, signer: signer}
}

// Status 拍卖行当前状态
func (h *AuctionHandler) Status(c *gin.Context) {
	respondOK(c, gin.H{
		"status":         h.bridge.Status(),
		"auctionHouseId": h.bridge.HouseID(),
		"initError":      h.bridge.InitError(),
		"wallet":         h.signer.Address(),
	})
}

// Catalog 链上商品货架
func (h *AuctionHandler) Catalog(c *gin.Context) {
	type entry struct {
		*game.Item
		AuctionID string `json:"auctionId,omitempty"`
	}
	out := make([]entry, 0, len(game.MysticalShopItems))
	for _, it := range game.MysticalShopItems {
		e := entry{Item: it}
		if id, ok := h.bridge.AuctionID(it.ID); ok {
			e.AuctionID = id
		}
		out = append(out, e)
	}
	respondOK(c, out)
}

// ConnectWallet 连接钱包
func (h *AuctionHandler) ConnectWallet(c *gin.Context) {
	address, err := h.signer.Connect(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"address": address})
}

// Initialize 初始化拍卖行（异步）
func (h *AuctionHandler) Initialize(c *gin.Context) {
	if err := h.bridge.Initialize(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"status":  h.bridge.Status(),
	})
}

// CreateAuctionRequest 挂拍请求
type CreateAuctionRequest struct {
	DurationMs uint64 `json:"durationMs"`
}

// CreateAuction 挂拍商品（异步）
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req CreateAuctionRequest
	// duration 可省略，默认 24 小时
	_ = c.ShouldBindJSON(&req)
	if req.DurationMs == 0 {
		req.DurationMs = 86400000
	}

	if err := h.bridge.CreateAuction(c.Request.Context(), c.Param("id"), req.DurationMs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// Buy 链上购买（异步）
func (h *AuctionHandler) Buy(c *gin.Context) {
	if err := h.bridge.BuyItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// ClaimItem 买家提货（异步）
func (h *AuctionHandler) ClaimItem(c *gin.Context) {
	if err := h.bridge.ClaimItem(c.Request.Context(), c.Param("auctionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// ClaimSellerRequest 卖家收款请求
type ClaimSellerRequest struct {
	TreasuryID string `json:"treasuryId"`
}

// ClaimSeller 卖家收款（异步）
func (h *AuctionHandler) ClaimSeller(c *gin.Context) {
	var req ClaimSellerRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.bridge.ClaimSellerProceeds(c.Request.Context(), c.Param("auctionId"), req.TreasuryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// Events 查询拍卖事件
func (h *AuctionHandler) Events(c *gin.Context) {
	if err := h.bridge.QueryAuctionEvents(c.Request.Context(), c.Param("auctionId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
