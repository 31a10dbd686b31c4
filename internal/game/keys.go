package game

// 存档键名。持久层负责补全 chain_hunter_ 前缀。
const (
	KeyPlayer      = "player"
	KeyInventory   = "inventory"
	KeyMarketplace = "marketplace"
	KeyStatPoints  = "statPoints"
	KeySpentStr    = "spentStr"
	KeySpentInt    = "spentInt"
	KeySpentDef    = "spentDef"
	KeySpentMana   = "spentMana"

	KeyPackageID      = "packageId"
	KeyAuctionHouseID = "auctionHouseId"
	KeyAuctionIDs     = "auctionIds"

	KeyAuth  = "auth"
	KeyUser  = "user"
	KeyUsers = "users"
)

// Saver 存档写入接口。实现必须吞掉底层错误（记日志后返回），
// 游戏循环不会因为存档失败而中断。
type Saver interface {
	Save(key string, value interface{})
	Delete(key string)
}
