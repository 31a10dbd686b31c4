package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/logger"
	"github.com/wfunc/chain-hunter/internal/models"
)

// keyPrefix 所有存档键统一前缀，避免与其他表内容混淆
const keyPrefix = "chain_hunter_"

const opTimeout = 5 * time.Second

// UserRecord 当前登录用户
type UserRecord struct {
	Name string `json:"name"`
}

// Credential 注册用户的口令记录（argon2id 哈希）
type Credential struct {
	Password string `json:"password"`
}

// Snapshot 一次性加载的完整存档。字段缺失或损坏时保持零值，
// 调用方直接使用即可开新档。
type Snapshot struct {
	Player         *game.Character
	Allocation     *game.Allocation
	Inventory      []*game.Item
	Marketplace    []*game.Item
	PackageID      string
	AuctionHouseID string
	AuctionIDs     map[string]string
	Authenticated  bool
	User           *UserRecord
	Users          map[string]Credential
}

// Store 键值存档层。写入错误一律记日志后吞掉，
// 游戏循环不感知持久化故障。
type Store struct {
	db     *gorm.DB
	logger *zap.Logger

	mu     sync.Mutex
	loaded bool
}

// NewStore 创建存档层
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		logger: logger.GetLogger(),
	}
}

// Load 加载完整存档。任何单键的缺失或损坏都不阻止其余键加载。
// 加载完成后才允许写入，防止启动早期把空状态覆盖到旧档上。
func (s *Store) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		Allocation: &game.Allocation{},
		AuctionIDs: make(map[string]string),
		Users:      make(map[string]Credential),
	}

	var player game.Character
	if s.loadJSON(ctx, game.KeyPlayer, &player) && player.Class != "" {
		snap.Player = &player
	}
	s.loadJSON(ctx, game.KeyInventory, &snap.Inventory)
	s.loadJSON(ctx, game.KeyMarketplace, &snap.Marketplace)

	snap.Allocation.Points = s.loadInt(ctx, game.KeyStatPoints)
	snap.Allocation.SpentStr = s.loadInt(ctx, game.KeySpentStr)
	snap.Allocation.SpentInt = s.loadInt(ctx, game.KeySpentInt)
	snap.Allocation.SpentDef = s.loadInt(ctx, game.KeySpentDef)
	snap.Allocation.SpentMana = s.loadInt(ctx, game.KeySpentMana)

	snap.PackageID, _ = s.getRaw(ctx, game.KeyPackageID)
	snap.AuctionHouseID, _ = s.getRaw(ctx, game.KeyAuctionHouseID)
	s.loadJSON(ctx, game.KeyAuctionIDs, &snap.AuctionIDs)

	if raw, ok := s.getRaw(ctx, game.KeyAuth); ok {
		snap.Authenticated = raw == "true"
	}
	var user UserRecord
	if s.loadJSON(ctx, game.KeyUser, &user) && user.Name != "" {
		snap.User = &user
	}
	s.loadJSON(ctx, game.KeyUsers, &snap.Users)

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("存档加载完成",
		zap.Bool("hasPlayer", snap.Player != nil),
		zap.Int("inventory", len(snap.Inventory)),
		zap.Bool("houseInitialized", snap.AuctionHouseID != ""))
	return snap
}

// Loaded 是否已完成加载
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Save 写入单键。字符串按原文存储，其余值序列化为 JSON。
// 加载完成前的写入会被丢弃。
func (s *Store) Save(key string, value interface{}) {
	if !s.Loaded() {
		s.logger.Warn("存档尚未加载，忽略写入", zap.String("key", key))
		return
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case int:
		raw = strconv.Itoa(v)
	case bool:
		raw = strconv.FormatBool(v)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			logger.LogStorageOperation("marshal", key, err)
			return
		}
		raw = string(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	record := models.GameRecord{Key: keyPrefix + key, Value: raw}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	logger.LogStorageOperation("save", key, err)
}

// Delete 删除单键
func (s *Store) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.db.WithContext(ctx).
		Where("key = ?", keyPrefix+key).
		Delete(&models.GameRecord{}).Error
	logger.LogStorageOperation("delete", key, err)
}

// ClearAll 清空全部存档（重开新档）
func (s *Store) ClearAll() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := s.db.WithContext(ctx).
		Where("key LIKE ?", keyPrefix+"%").
		Delete(&models.GameRecord{}).Error
	logger.LogStorageOperation("clear_all", "*", err)
}

// ClearAuction 仅清除拍卖行相关键（合约重新部署后使用）
func (s *Store) ClearAuction() {
	s.Delete(game.KeyAuctionHouseID)
	s.Delete(game.KeyAuctionIDs)
}

// getRaw 读取原始键值
func (s *Store) getRaw(ctx context.Context, key string) (string, bool) {
	var record models.GameRecord
	err := s.db.WithContext(ctx).
		Where("key = ?", keyPrefix+key).
		First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.LogStorageOperation("read", key, err)
		}
		return "", false
	}
	return record.Value, true
}

// loadJSON 读取并反序列化。损坏的 JSON 记日志后按缺失处理。
func (s *Store) loadJSON(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := s.getRaw(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("存档数据损坏，按新档处理",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return true
}

// loadInt 读取整数键，缺失或非法返回 0
func (s *Store) loadInt(ctx context.Context, key string) int {
	raw, ok := s.getRaw(ctx, key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("存档整数字段非法", zap.String("key", key), zap.String("value", raw))
		return 0
	}
	return n
}
