package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/chain"
	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/middleware"
	"github.com/wfunc/chain-hunter/internal/service"
	ws "github.com/wfunc/chain-hunter/internal/websocket"
)

// Router API路由器
type Router struct {
	engine *gin.Engine
	log    *zap.Logger

	authHandler      *AuthHandler
	gameHandler      *GameHandler
	inventoryHandler *InventoryHandler
	auctionHandler   *AuctionHandler
	wsHandler        *WebSocketHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter 创建路由器
func NewRouter(
	gameEngine *game.Engine,
	bridge *chain.Bridge,
	signer chain.WalletSigner,
	authService service.AuthService,
	hub *ws.Hub,
	log *zap.Logger,
) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	r := &Router{
		engine:           engine,
		log:              log,
		authHandler:      NewAuthHandler(authService),
		gameHandler:      NewGameHandler(gameEngine),
		inventoryHandler: NewInventoryHandler(gameEngine),
		auctionHandler:   NewAuctionHandler(bridge, signer),
		wsHandler:        NewWebSocketHandler(hub, log),
		authMiddleware:   middleware.NewAuthMiddleware(authService),
	}
	r.setupRoutes()
	return r
}

// Engine 底层gin引擎
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/ws", r.wsHandler.Handle)

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)

			authed := auth.Group("")
			authed.Use(r.authMiddleware.RequireAuth())
			{
				authed.POST("/logout", r.authHandler.Logout)
				authed.GET("/profile", r.authHandler.Profile)
			}
		}

		gameGroup := v1.Group("/game")
		gameGroup.Use(r.authMiddleware.RequireAuth())
		{
			gameGroup.GET("/state", r.gameHandler.State)
			gameGroup.GET("/classes", r.gameHandler.Classes)
			gameGroup.POST("/class", r.gameHandler.SelectClass)
			gameGroup.POST("/skill/:id", r.gameHandler.UseSkill)
			gameGroup.POST("/attack", r.gameHandler.NormalAttack)
			gameGroup.POST("/stats", r.gameHandler.AllocateStat)
			gameGroup.POST("/speed", r.gameHandler.SetSpeed)
			gameGroup.GET("/log", r.gameHandler.CombatLog)
		}

		inv := v1.Group("/inventory")
		inv.Use(r.authMiddleware.RequireAuth())
		{
			inv.POST("/equip/:id", r.inventoryHandler.Equip)
			inv.POST("/sell/:id", r.inventoryHandler.Sell)
			inv.POST("/buy/:id", r.inventoryHandler.BuyMarket)
		}

		shop := v1.Group("/shop")
		shop.Use(r.authMiddleware.RequireAuth())
		{
			shop.GET("/potions", r.inventoryHandler.ShopPotions)
			shop.GET("/equipment", r.inventoryHandler.ShopEquipment)
			shop.POST("/potions/:id", r.inventoryHandler.BuyPotion)
			shop.POST("/equipment/:id", r.inventoryHandler.BuyEquipment)
		}

		auction := v1.Group("/auction")
		auction.Use(r.authMiddleware.RequireAuth())
		{
			auction.GET("/status", r.auctionHandler.Status)
			auction.GET("/catalog", r.auctionHandler.Catalog)
			auction.POST("/wallet/connect", r.auctionHandler.ConnectWallet)
			auction.POST("/initialize", r.auctionHandler.Initialize)
			auction.POST("/create/:id", r.auctionHandler.CreateAuction)
			auction.POST("/buy/:id", r.auctionHandler.Buy)
			auction.POST("/claim/:auctionId", r.auctionHandler.ClaimItem)
			auction.POST("/claim-seller/:auctionId", r.auctionHandler.ClaimSeller)
			auction.GET("/events/:auctionId", r.auctionHandler.Events)
		}
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	respondOK(c, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// requestLogger 请求日志中间件
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP请求",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
