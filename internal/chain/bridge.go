package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/config"
	"github.com/wfunc/chain-hunter/internal/errors"
	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/logger"
)

// HouseStatus 拍卖行状态
type HouseStatus string

const (
	StatusUninitialized HouseStatus = "uninitialized"
	StatusInitializing  HouseStatus = "initializing"
	StatusInitialized   HouseStatus = "initialized"
	StatusFailed        HouseStatus = "failed"
)

// 合约入口
const (
	fnInit        = "init"
	fnCreate      = "create"
	fnBuyItem     = "buy_item"
	fnClaimItem   = "claim_item"
	fnClaimSeller = "claim_seller"
)

// mistPerToken 1 代币 = 1e9 MIST
const mistPerToken = 1_000_000_000

// placeholderID 占位对象 ID，视同未配置
func placeholderID(id string) bool {
	return id == "" || id == "0x..." || id == "0x0"
}

// Bridge 拍卖行桥。负责与链上 auction_house 合约交互：
// 初始化、挂拍、购买、买家提货、卖家收款。
// 校验同步完成，链上调用在独立协程执行，结果写入战斗日志。
type Bridge struct {
	mu     sync.RWMutex
	wg     sync.WaitGroup
	logger *zap.Logger

	signer WalletSigner
	saver  game.Saver
	combat *game.CombatLog

	packageID  string
	clockID    string
	treasuryID string

	status  HouseStatus
	houseID string
	initErr string

	// registry 本地登记的 item -> auction 映射。
	// 只是咨询性缓存，真实裁决永远在链上。
	registry map[string]string

	onPurchase func(*game.Item)
}

// NewBridge 创建拍卖行桥
func NewBridge(cfg *config.ChainConfig, signer WalletSigner, saver game.Saver, combat *game.CombatLog) *Bridge {
	return &Bridge{
		logger:     logger.GetModuleLogger("chain"),
		signer:     signer,
		saver:      saver,
		combat:     combat,
		packageID:  cfg.PackageID,
		clockID:    cfg.ClockID,
		treasuryID: cfg.TreasuryID,
		status:     StatusUninitialized,
		registry:   make(map[string]string),
	}
}

// Hydrate 从存档恢复。已持久化的拍卖行 ID 直接进入已初始化状态。
func (b *Bridge) Hydrate(houseID string, auctionIDs map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if houseID != "" {
		b.houseID = houseID
		b.status = StatusInitialized
		b.logger.Info("从存档恢复拍卖行", zap.String("houseId", houseID))
	}
	for k, v := range auctionIDs {
		b.registry[k] = v
	}
}

// SetPurchaseHandler 链上购买成功后的入包回调
func (b *Bridge) SetPurchaseHandler(fn func(*game.Item)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPurchase = fn
}

// Status 当前状态
func (b *Bridge) Status() HouseStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// HouseID 拍卖行对象 ID
func (b *Bridge) HouseID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.houseID
}

// InitError 最近一次初始化失败原因
func (b *Bridge) InitError() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.initErr
}

// AuctionID 指定商品的拍卖对象 ID
func (b *Bridge) AuctionID(itemID string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	id, ok := b.registry[itemID]
	return id, ok
}

// Wait 等待所有在途链上调用完成（停机与测试用）
func (b *Bridge) Wait() {
	b.wg.Wait()
}

// Initialize 初始化拍卖行。重复初始化与前置缺失同步报错，
// 不会发起任何链上调用。
func (b *Bridge) Initialize(ctx context.Context) error {
	b.mu.Lock()
	if b.houseID != "" {
		b.mu.Unlock()
		return errors.New(errors.ErrHouseExists)
	}
	if b.status == StatusInitializing {
		// 已有一次初始化在途，不再发起第二笔链上调用
		b.mu.Unlock()
		return errors.New(errors.ErrHouseExists)
	}
	if !b.signer.Connected() {
		b.mu.Unlock()
		return errors.New(errors.ErrWalletNotConnected)
	}
	if placeholderID(b.packageID) {
		b.mu.Unlock()
		return errors.New(errors.ErrPackageNotSet)
	}
	// failed 状态允许重试
	b.status = StatusInitializing
	b.initErr = ""
	b.mu.Unlock()

	b.wg.Add(1)
	go b.runInit(ctx)
	return nil
}

func (b *Bridge) runInit(ctx context.Context) {
	defer b.wg.Done()

	target := fmt.Sprintf("%s::auction_house::%s", b.packageID, fnInit)
	result, err := b.signer.SignAndExecute(ctx, &CallDescriptor{Target: target})
	if err != nil {
		b.mu.Lock()
		b.status = StatusFailed
		b.initErr = fmt.Sprintf("On-chain error: %s", err.Error())
		b.mu.Unlock()
		logger.LogChainCall(target, "", err)
		return
	}

	objectID := ExtractCreatedObjectID(result, "AuctionHouse")
	if objectID == "" {
		b.mu.Lock()
		b.status = StatusFailed
		b.initErr = errors.New(errors.ErrObjectExtraction).Error()
		b.mu.Unlock()
		logger.LogChainCall(target, result.Digest, errors.New(errors.ErrObjectExtraction))
		return
	}

	b.mu.Lock()
	b.houseID = objectID
	b.status = StatusInitialized
	b.initErr = ""
	b.mu.Unlock()

	b.saver.Save(game.KeyAuctionHouseID, objectID)
	b.combat.Append(game.LogVictory, fmt.Sprintf("Auction House Live: %s...", truncate(objectID, 10)))
	logger.LogChainCall(target, result.Digest, nil)
}

// CreateAuction 将商品挂上拍卖行
func (b *Bridge) CreateAuction(ctx context.Context, itemID string, durationMs uint64) error {
	item, ok := game.GetMysticalItem(itemID)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}

	b.mu.RLock()
	houseID := b.houseID
	b.mu.RUnlock()

	if !b.signer.Connected() {
		return errors.New(errors.ErrWalletNotConnected)
	}
	if placeholderID(houseID) {
		return errors.New(errors.ErrHouseNotReady)
	}
	if placeholderID(b.packageID) {
		return errors.New(errors.ErrPackageNotSet)
	}

	b.combat.Append(game.LogInfo, fmt.Sprintf("Creating auction for %s...", item.Name))

	b.wg.Add(1)
	go b.runCreate(ctx, item, durationMs)
	return nil
}

func (b *Bridge) runCreate(ctx context.Context, item *game.Item, durationMs uint64) {
	defer b.wg.Done()

	target := fmt.Sprintf("%s::auction_house::%s", b.packageID, fnCreate)
	call := &CallDescriptor{
		Target: target,
		Arguments: []CallArg{
			ObjectArg(item.ID),
			PureArg(durationMs),
			ObjectArg(b.clockID),
		},
	}

	result, err := b.signer.SignAndExecute(ctx, call)
	if err != nil {
		b.combat.Append(game.LogError, fmt.Sprintf("Auction creation failed: %s", err.Error()))
		logger.LogChainCall(target, "", err)
		return
	}

	b.combat.Append(game.LogVictory, fmt.Sprintf("Auction created! TxHash: %s...", truncate(result.Digest, 10)))

	auctionID := ExtractCreatedObjectID(result, "Auction")
	if auctionID == "" {
		// 创建成功但对象 ID 不可得，留给人工处理
		b.combat.Append(game.LogInfo, "Auction created but object ID not found in transaction results")
		logger.LogChainCall(target, result.Digest, errors.New(errors.ErrObjectExtraction))
		return
	}

	b.mu.Lock()
	b.registry[item.ID] = auctionID
	snapshot := make(map[string]string, len(b.registry))
	for k, v := range b.registry {
		snapshot[k] = v
	}
	b.mu.Unlock()

	b.saver.Save(game.KeyAuctionIDs, snapshot)
	b.combat.Append(game.LogInfo, fmt.Sprintf("Auction ID: %s", auctionID))
	b.combat.Append(game.LogVictory, "Item ready for purchase!")
	logger.LogChainCall(target, result.Digest, nil)
}

// BuyItem 链上购买。前置校验按固定顺序短路，
// 任何一项不满足都不会发起链上调用。
func (b *Bridge) BuyItem(ctx context.Context, itemID string) error {
	item, ok := game.GetMysticalItem(itemID)
	if !ok {
		return errors.New(errors.ErrItemNotFound)
	}

	if !b.signer.Connected() {
		return errors.New(errors.ErrWalletNotConnected)
	}

	b.mu.RLock()
	houseID := b.houseID
	auctionID, hasAuction := b.registry[item.ID]
	b.mu.RUnlock()

	if houseID == "" {
		b.combat.Append(game.LogError, "Auction House not initialized. Please initialize first.")
		return errors.New(errors.ErrHouseNotReady)
	}
	if !hasAuction {
		b.combat.Append(game.LogError, fmt.Sprintf("Auction not created for %s yet.", item.Name))
		return errors.New(errors.ErrAuctionNotCreated)
	}
	if placeholderID(b.packageID) {
		b.combat.Append(game.LogError, "Auction house not configured. Contact admin.")
		return errors.New(errors.ErrPackageNotSet)
	}

	b.combat.Append(game.LogInfo, fmt.Sprintf("Preparing purchase for %s...", item.Name))

	b.wg.Add(1)
	go b.runBuy(ctx, item, houseID, auctionID)
	return nil
}

func (b *Bridge) runBuy(ctx context.Context, item *game.Item, houseID, auctionID string) {
	defer b.wg.Done()

	payment := uint64(item.Price) * mistPerToken
	target := fmt.Sprintf("%s::auction_house::%s", b.packageID, fnBuyItem)
	call := &CallDescriptor{
		Target: target,
		Arguments: []CallArg{
			ObjectArg(houseID),
			ObjectArg(auctionID),
			SplitCoinArg(payment),
			ObjectArg(b.clockID),
		},
	}

	result, err := b.signer.SignAndExecute(ctx, call)
	if err != nil {
		b.combat.Append(game.LogError, fmt.Sprintf("Transaction failed: %s", err.Error()))
		logger.LogChainCall(target, "", err)
		return
	}

	b.combat.Append(game.LogVictory, fmt.Sprintf("Purchase successful! TxHash: %s...", truncate(result.Digest, 10)))
	b.combat.Append(game.LogNFT, fmt.Sprintf("You now own %s!", item.Name))
	logger.LogChainCall(target, result.Digest, nil)

	b.mu.RLock()
	handler := b.onPurchase
	b.mu.RUnlock()
	if handler != nil {
		bought := item.Clone()
		bought.Source = "On-Chain Purchase"
		bought.Equipped = false
		handler(bought)
	}
}

// ClaimItem 买家提货
func (b *Bridge) ClaimItem(ctx context.Context, auctionID string) error {
	if !b.signer.Connected() {
		return errors.New(errors.ErrWalletNotConnected)
	}
	if placeholderID(b.packageID) {
		b.combat.Append(game.LogError, "Auction house not configured. Contact admin.")
		return errors.New(errors.ErrPackageNotSet)
	}
	if placeholderID(auctionID) {
		b.combat.Append(game.LogError, "Invalid auction ID.")
		return errors.New(errors.ErrInvalidObjectID)
	}

	b.combat.Append(game.LogInfo, "Claiming item from auction...")

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		target := fmt.Sprintf("%s::auction_house::%s", b.packageID, fnClaimItem)
		call := &CallDescriptor{
			Target:    target,
			Arguments: []CallArg{ObjectArg(auctionID)},
		}
		result, err := b.signer.SignAndExecute(ctx, call)
		if err != nil {
			b.combat.Append(game.LogError, fmt.Sprintf("Failed to claim item: %s", err.Error()))
			b.explainClaimError(err.Error(), false)
			logger.LogChainCall(target, "", err)
			return
		}
		b.combat.Append(game.LogVictory, fmt.Sprintf("Item claimed successfully! TxHash: %s...", truncate(result.Digest, 10)))
		b.combat.Append(game.LogNFT, "Check your inventory for your winnings!")
		logger.LogChainCall(target, result.Digest, nil)
	}()
	return nil
}

// ClaimSellerProceeds 卖家收款
func (b *Bridge) ClaimSellerProceeds(ctx context.Context, auctionID, treasuryID string) error {
	if !b.signer.Connected() {
		return errors.New(errors.ErrWalletNotConnected)
	}
	if placeholderID(b.packageID) {
		b.combat.Append(game.LogError, "Auction house not configured. Contact admin.")
		return errors.New(errors.ErrPackageNotSet)
	}
	if placeholderID(auctionID) {
		b.combat.Append(game.LogError, "Invalid auction ID.")
		return errors.New(errors.ErrInvalidObjectID)
	}
	if treasuryID == "" {
		treasuryID = b.treasuryID
	}
	if placeholderID(treasuryID) {
		b.combat.Append(game.LogError, "Treasury ID not configured.")
		return errors.New(errors.ErrInvalidObjectID)
	}

	b.combat.Append(game.LogInfo, "Claiming seller proceeds...")

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		target := fmt.Sprintf("%s::auction_house::%s", b.packageID, fnClaimSeller)
		call := &CallDescriptor{
			Target: target,
			Arguments: []CallArg{
				ObjectArg(auctionID),
				ObjectArg(treasuryID),
			},
		}
		result, err := b.signer.SignAndExecute(ctx, call)
		if err != nil {
			b.combat.Append(game.LogError, fmt.Sprintf("Failed to claim proceeds: %s", err.Error()))
			b.explainClaimError(err.Error(), true)
			logger.LogChainCall(target, "", err)
			return
		}
		b.combat.Append(game.LogVictory, fmt.Sprintf("Payment claimed successfully! TxHash: %s...", truncate(result.Digest, 10)))
		b.combat.Append(game.LogTrade, "Funds transferred to your wallet (minus 0% fee).")
		logger.LogChainCall(target, result.Digest, nil)
	}()
	return nil
}

// QueryAuctionEvents 查询拍卖事件。事件索引尚未接入。
func (b *Bridge) QueryAuctionEvents(ctx context.Context, auctionID string) error {
	if placeholderID(b.packageID) {
		b.combat.Append(game.LogError, "Package ID not configured.")
		return errors.New(errors.ErrPackageNotSet)
	}
	b.combat.Append(game.LogWarning, "Event query requires a full node event index integration.")
	return errors.New(errors.ErrNotImplemented)
}

// explainClaimError 把链上错误文案翻译成玩家可读的提示
func (b *Bridge) explainClaimError(msg string, seller bool) {
	switch {
	case strings.Contains(msg, "ended"):
		b.combat.Append(game.LogWarning, "Auction hasn't ended yet.")
	case strings.Contains(msg, "claimed"):
		if seller {
			b.combat.Append(game.LogWarning, "Payment already claimed by you.")
		} else {
			b.combat.Append(game.LogWarning, "Item already claimed by you.")
		}
	case seller && strings.Contains(msg, "no payment"):
		b.combat.Append(game.LogWarning, "No bids received for this auction.")
	case seller && strings.Contains(msg, "seller"):
		b.combat.Append(game.LogWarning, "You are not the seller.")
	case !seller && strings.Contains(msg, "bidder"):
		b.combat.Append(game.LogWarning, "You are not the highest bidder.")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
