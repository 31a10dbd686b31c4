package models

import (
	"time"
)

// GameRecord 游戏存档记录（键值存储，值为JSON编码）
type GameRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:128;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (GameRecord) TableName() string {
	return "game_records"
}

// DeployRecord 合约部署审计记录（deployparse脚本写入）
type DeployRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PackageID      string    `gorm:"size:128;not null" json:"package_id"`
	AuctionHouseID string    `gorm:"size:128" json:"auction_house_id"`
	Network        string    `gorm:"size:32" json:"network"`
	RawExcerpt     string    `gorm:"type:text" json:"raw_excerpt"`
	DeployedAt     time.Time `json:"deployed_at"`
}

// TableName 指定表名
func (DeployRecord) TableName() string {
	return "deploy_records"
}
