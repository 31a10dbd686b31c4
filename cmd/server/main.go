package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/api"
	"github.com/wfunc/chain-hunter/internal/chain"
	"github.com/wfunc/chain-hunter/internal/config"
	"github.com/wfunc/chain-hunter/internal/database"
	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/logger"
	"github.com/wfunc/chain-hunter/internal/service"
	"github.com/wfunc/chain-hunter/internal/storage"
	"github.com/wfunc/chain-hunter/internal/utils"
	"github.com/wfunc/chain-hunter/internal/websocket"
)

// 版本信息（构建时注入）
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Server 服务器实例
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	engine *game.Engine
	bridge *chain.Bridge
	hub    *websocket.Hub
	http   *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("Chain Hunter %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		os.Exit(0)
	}

	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	logger.Info("Chain Hunter 启动中",
		zap.String("version", Version),
		zap.String("network", cfg.Chain.Network))

	server, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("服务器初始化失败", zap.Error(err))
	}

	if err := server.Start(); err != nil {
		logger.Fatal("服务器启动失败", zap.Error(err))
	}

	server.WaitForShutdown()
	server.Shutdown()
	logger.Info("服务器已安全关闭")
}

// NewServer 组装全部组件
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())

	// 数据库与存档
	if err := database.Init(&cfg.Database); err != nil {
		cancel()
		return nil, err
	}
	if err := database.AutoMigrate(); err != nil {
		cancel()
		return nil, err
	}
	store := storage.NewStore(database.GetDB())
	snap := store.Load(ctx)

	// 战斗引擎
	engine := game.NewEngine(&cfg.Game, store, logger.GetModuleLogger("game"))
	engine.Hydrate(snap.Player, snap.Allocation, snap.Inventory, snap.Marketplace)

	// 链上桥
	signer := chain.NewMockSigner(cfg.Chain.WalletAddress)
	bridge := chain.NewBridge(&cfg.Chain, signer, store, engine.CombatLog())
	bridge.Hydrate(snap.AuctionHouseID, snap.AuctionIDs)
	bridge.SetPurchaseHandler(engine.AddItem)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// 认证
	jwtManager := utils.NewJWTManager(cfg.Security.JWT.Secret,
		time.Duration(cfg.Security.JWT.ExpireHours)*time.Hour)
	authService := service.NewAuthService(store, jwtManager, snap)

	// WebSocket推送
	hub := websocket.NewHub(logger.GetModuleLogger("websocket"))
	hub.AttachCombatLog(engine.CombatLog())

	router := api.NewRouter(engine, bridge, signer, authService, hub, logger.GetModuleLogger("api"))

	srv := &Server{
		cfg:    cfg,
		logger: logger.GetLogger(),
		engine: engine,
		bridge: bridge,
		hub:    hub,
		ctx:    ctx,
		cancel: cancel,
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router.Engine(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// 配置热更新：倍速表等游戏参数下次调度生效
	config.Watch(func(updated *config.Config) {
		srv.logger.Info("配置已热更新")
	})

	return srv, nil
}

// Start 启动服务
func (s *Server) Start() error {
	s.engine.Start(s.ctx)
	go s.hub.Run()

	go func() {
		s.logger.Info("HTTP服务监听中", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP服务异常退出", zap.Error(err))
		}
	}()
	return nil
}

// WaitForShutdown 等待退出信号
func (s *Server) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	s.logger.Info("收到退出信号", zap.String("signal", sig.String()))
}

// Shutdown 优雅关闭：先停HTTP，再停引擎，等在途链上调用收尾
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP服务关闭失败", zap.Error(err))
	}

	s.engine.Stop()
	s.bridge.Wait()
	s.cancel()

	if err := database.Close(); err != nil {
		s.logger.Error("数据库关闭失败", zap.Error(err))
	}
}
