package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/models"
)

type StoreSuite struct {
	suite.Suite
	db    *gorm.DB
	store *Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.GameRecord{}))
	s.db = db
	s.store = NewStore(db)
	s.ctx = context.Background()
}

func (s *StoreSuite) TestSaveBeforeLoadDropped() {
	s.store.Save(game.KeyPlayer, &game.Character{Class: game.ClassWarrior})

	var count int64
	s.db.Model(&models.GameRecord{}).Count(&count)
	s.Equal(int64(0), count)
}

func (s *StoreSuite) TestLoadEmptyDatabase() {
	snap := s.store.Load(s.ctx)

	s.Nil(snap.Player)
	s.Empty(snap.Inventory)
	s.Equal(0, snap.Allocation.Points)
	s.Empty(snap.AuctionHouseID)
	s.False(snap.Authenticated)
	s.NotNil(snap.AuctionIDs)
	s.NotNil(snap.Users)
	s.True(s.store.Loaded())
}

func (s *StoreSuite) TestPlayerRoundtrip() {
	s.store.Load(s.ctx)

	player := &game.Character{
		Class: game.ClassWizard, Level: 7, Exp: 45, ExpToNext: 207,
		Str: 2, Int: 25, HP: 25, MaxHP: 25, Mana: 140, MaxMana: 140, Gold: 321,
	}
	s.store.Save(game.KeyPlayer, player)

	snap := s.store.Load(s.ctx)
	s.Require().NotNil(snap.Player)
	s.Equal(game.ClassWizard, snap.Player.Class)
	s.Equal(7, snap.Player.Level)
	s.Equal(321, snap.Player.Gold)
}

func (s *StoreSuite) TestIntAndStringRoundtrip() {
	s.store.Load(s.ctx)

	s.store.Save(game.KeyStatPoints, 6)
	s.store.Save(game.KeySpentMana, 2)
	s.store.Save(game.KeyPackageID, "0xabc123")
	s.store.Save(game.KeyAuth, true)

	snap := s.store.Load(s.ctx)
	s.Equal(6, snap.Allocation.Points)
	s.Equal(2, snap.Allocation.SpentMana)
	s.Equal("0xabc123", snap.PackageID)
	s.True(snap.Authenticated)
}

func (s *StoreSuite) TestInventoryRoundtrip() {
	s.store.Load(s.ctx)

	items := []*game.Item{
		{ID: "nft_1", Name: "Epic Ring", Type: game.TypeRing, Rarity: game.RarityEpic, Str: 20, Equipped: true},
		{ID: "nft_2", Name: "Common Boots", Type: game.TypeBoots, Rarity: game.RarityCommon, Def: 4},
	}
	s.store.Save(game.KeyInventory, items)

	snap := s.store.Load(s.ctx)
	s.Require().Len(snap.Inventory, 2)
	s.Equal("Epic Ring", snap.Inventory[0].Name)
	s.True(snap.Inventory[0].Equipped)
	s.False(snap.Inventory[1].Equipped)
}

func (s *StoreSuite) TestExperienceReplayAcrossReload() {
	s.store.Load(s.ctx)

	gains := []struct{ exp, gold int }{
		{5, 3}, {9, 2}, {14, 0}, {3, 7}, {25, 11}, {8, 4},
	}

	// 基准：同一序列在内存中连续结算
	reference, err := game.NewCharacter(game.ClassWarrior)
	s.Require().NoError(err)
	for _, g := range gains {
		reference.GainExperience(g.exp, g.gold)
	}

	// 每步落库并用新 Store 重新加载，继续在加载结果上结算
	live, err := game.NewCharacter(game.ClassWarrior)
	s.Require().NoError(err)
	for _, g := range gains {
		live.GainExperience(g.exp, g.gold)
		s.store.Save(game.KeyPlayer, live)

		reloaded := NewStore(s.db).Load(s.ctx)
		s.Require().NotNil(reloaded.Player)
		live = reloaded.Player
	}

	s.Equal(reference, live)
}

func (s *StoreSuite) TestCorruptValueTolerated() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyPlayer, "{not valid json")
	s.store.Save(game.KeyStatPoints, 4)

	snap := s.store.Load(s.ctx)
	// 损坏键按新档处理，完好键照常加载
	s.Nil(snap.Player)
	s.Equal(4, snap.Allocation.Points)
}

func (s *StoreSuite) TestUpsertOverwrites() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyStatPoints, 1)
	s.store.Save(game.KeyStatPoints, 9)

	var count int64
	s.db.Model(&models.GameRecord{}).Count(&count)
	s.Equal(int64(1), count)

	snap := s.store.Load(s.ctx)
	s.Equal(9, snap.Allocation.Points)
}

func (s *StoreSuite) TestDelete() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyAuth, true)
	s.store.Delete(game.KeyAuth)

	snap := s.store.Load(s.ctx)
	s.False(snap.Authenticated)
}

func (s *StoreSuite) TestClearAuction() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyPackageID, "0xpkg")
	s.store.Save(game.KeyAuctionHouseID, "0xhouse")
	s.store.Save(game.KeyAuctionIDs, map[string]string{"mys_01": "0xa1"})

	s.store.ClearAuction()

	snap := s.store.Load(s.ctx)
	// 合约地址保留，拍卖行与拍卖映射清除
	s.Equal("0xpkg", snap.PackageID)
	s.Empty(snap.AuctionHouseID)
	s.Empty(snap.AuctionIDs)
}

func (s *StoreSuite) TestClearAll() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyPlayer, &game.Character{Class: game.ClassTanker, Level: 3})
	s.store.Save(game.KeyStatPoints, 5)

	s.store.ClearAll()

	var count int64
	s.db.Model(&models.GameRecord{}).Count(&count)
	s.Equal(int64(0), count)
}

func (s *StoreSuite) TestUsersRoundtrip() {
	s.store.Load(s.ctx)
	s.store.Save(game.KeyUsers, map[string]Credential{
		"hunter": {Password: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
	})
	s.store.Save(game.KeyUser, UserRecord{Name: "hunter"})

	snap := s.store.Load(s.ctx)
	s.Require().NotNil(snap.User)
	s.Equal("hunter", snap.User.Name)
	s.Contains(snap.Users, "hunter")
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
