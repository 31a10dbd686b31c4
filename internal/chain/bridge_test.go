package chain

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfunc/chain-hunter/internal/config"
	"github.com/wfunc/chain-hunter/internal/errors"
	"github.com/wfunc/chain-hunter/internal/game"
)

type fakeSaver struct {
	mu    sync.Mutex
	saved map[string]interface{}
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{saved: make(map[string]interface{})}
}

func (f *fakeSaver) Save(key string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[key] = value
}

func (f *fakeSaver) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, key)
}

func (f *fakeSaver) get(key string) (interface{}, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.saved[key]
	return v, ok
}

func testChainConfig() *config.ChainConfig {
	return &config.ChainConfig{
		PackageID:  "0xpkg",
		ClockID:    "0x6",
		TreasuryID: "0xtreasury",
		Network:    "testnet",
	}
}

func newTestBridge(t *testing.T, cfg *config.ChainConfig) (*Bridge, *MockSigner, *fakeSaver, *game.CombatLog) {
	t.Helper()
	signer := NewMockSigner("0xwallet")
	saver := newFakeSaver()
	combat := game.NewCombatLog(50)
	b := NewBridge(cfg, signer, saver, combat)
	return b, signer, saver, combat
}

func logMessages(combat *game.CombatLog) []string {
	var out []string
	for _, e := range combat.Entries() {
		out = append(out, e.Message)
	}
	return out
}

func TestInitializeRequiresWallet(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())

	err := b.Initialize(context.Background())
	assert.True(t, errors.Is(err, errors.ErrWalletNotConnected))
	assert.Equal(t, 0, signer.CallCount())
	assert.Equal(t, StatusUninitialized, b.Status())
}

func TestInitializeRequiresPackage(t *testing.T) {
	cfg := testChainConfig()
	cfg.PackageID = "0x..."
	b, signer, _, _ := newTestBridge(t, cfg)
	signer.Connect(context.Background())

	err := b.Initialize(context.Background())
	assert.True(t, errors.Is(err, errors.ErrPackageNotSet))
	assert.Equal(t, 0, signer.CallCount())
}

func TestInitializeSuccess(t *testing.T) {
	b, signer, saver, combat := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	signer.SetResult("0xpkg::auction_house::init", &CallResult{
		Digest: "digest_init",
		ObjectChanges: []ObjectChange{
			{Type: "created", ObjectType: "0xpkg::auction_house::AuctionHouse", ObjectID: "0xhouse_abc123"},
		},
	})

	require.NoError(t, b.Initialize(context.Background()))
	b.Wait()

	assert.Equal(t, StatusInitialized, b.Status())
	assert.Equal(t, "0xhouse_abc123", b.HouseID())
	assert.Empty(t, b.InitError())

	saved, ok := saver.get(game.KeyAuctionHouseID)
	require.True(t, ok)
	assert.Equal(t, "0xhouse_abc123", saved)
	assert.Contains(t, logMessages(combat), "Auction House Live: 0xhouse_ab...")
}

func TestInitializeAlreadyExists(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	b.Hydrate("0xexisting", nil)

	err := b.Initialize(context.Background())
	assert.True(t, errors.Is(err, errors.ErrHouseExists))
	assert.Equal(t, 0, signer.CallCount())
}

func TestInitializeWhileInFlight(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	gate := make(chan struct{})
	signer.SetGate(gate)
	signer.SetResult("0xpkg::auction_house::init", &CallResult{
		Digest:   "digest_init",
		ObjectID: "0xhouse_abc123",
	})

	require.NoError(t, b.Initialize(context.Background()))
	assert.Equal(t, StatusInitializing, b.Status())

	// 首次初始化仍在途，重复请求被拒绝且不产生第二笔链上调用
	err := b.Initialize(context.Background())
	assert.True(t, errors.Is(err, errors.ErrHouseExists))

	close(gate)
	b.Wait()
	assert.Equal(t, StatusInitialized, b.Status())
	assert.Equal(t, 1, signer.CallCount())
}

func TestInitializeFailureAllowsRetry(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	signer.SetError("0xpkg::auction_house::init", stderrors.New("gas budget exceeded"))

	require.NoError(t, b.Initialize(context.Background()))
	b.Wait()

	assert.Equal(t, StatusFailed, b.Status())
	assert.Contains(t, b.InitError(), "On-chain error: gas budget exceeded")

	// 失败后可重试
	signer.SetResult("0xpkg::auction_house::init", &CallResult{
		Digest:   "digest_retry",
		ObjectID: "0xhouse_retry",
	})
	signer.SetError("0xpkg::auction_house::init", nil)

	require.NoError(t, b.Initialize(context.Background()))
	b.Wait()
	assert.Equal(t, StatusInitialized, b.Status())
	assert.Equal(t, "0xhouse_retry", b.HouseID())
}

func TestInitializeExtractionFailure(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	signer.SetResult("0xpkg::auction_house::init", &CallResult{Digest: "d"})

	require.NoError(t, b.Initialize(context.Background()))
	b.Wait()

	assert.Equal(t, StatusFailed, b.Status())
	assert.NotEmpty(t, b.InitError())
}

func TestCreateAuction(t *testing.T) {
	b, signer, saver, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	b.Hydrate("0xhouse", nil)
	signer.SetResult("0xpkg::auction_house::create", &CallResult{
		Digest: "digest_create",
		ObjectChanges: []ObjectChange{
			{Type: "created", ObjectType: "0xpkg::auction_house::Auction", ObjectID: "0xauction_1"},
		},
	})

	require.NoError(t, b.CreateAuction(context.Background(), "mys_01", 86400000))
	b.Wait()

	id, ok := b.AuctionID("mys_01")
	require.True(t, ok)
	assert.Equal(t, "0xauction_1", id)

	saved, ok := saver.get(game.KeyAuctionIDs)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"mys_01": "0xauction_1"}, saved)

	calls := signer.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Arguments, 3)
	assert.Equal(t, ArgObject, calls[0].Arguments[0].Kind)
	assert.Equal(t, "mys_01", calls[0].Arguments[0].ObjectID)
	assert.Equal(t, uint64(86400000), calls[0].Arguments[1].Value)
	assert.Equal(t, "0x6", calls[0].Arguments[2].ObjectID)
}

func TestCreateAuctionUnknownItem(t *testing.T) {
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(context.Background())
	b.Hydrate("0xhouse", nil)

	err := b.CreateAuction(context.Background(), "mys_99", 1000)
	assert.True(t, errors.Is(err, errors.ErrItemNotFound))
	assert.Equal(t, 0, signer.CallCount())
}

func TestBuyItemValidationOrder(t *testing.T) {
	ctx := context.Background()

	// 未知商品
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	err := b.BuyItem(ctx, "mys_99")
	assert.True(t, errors.Is(err, errors.ErrItemNotFound))
	assert.Equal(t, 0, signer.CallCount())

	// 钱包未连接
	err = b.BuyItem(ctx, "mys_01")
	assert.True(t, errors.Is(err, errors.ErrWalletNotConnected))
	assert.Equal(t, 0, signer.CallCount())

	// 拍卖行未初始化
	signer.Connect(ctx)
	err = b.BuyItem(ctx, "mys_01")
	assert.True(t, errors.Is(err, errors.ErrHouseNotReady))
	assert.Equal(t, 0, signer.CallCount())

	// 商品未挂拍
	b.Hydrate("0xhouse", nil)
	err = b.BuyItem(ctx, "mys_01")
	assert.True(t, errors.Is(err, errors.ErrAuctionNotCreated))
	assert.Equal(t, 0, signer.CallCount())
}

func TestBuyItemSuccess(t *testing.T) {
	ctx := context.Background()
	b, signer, _, combat := newTestBridge(t, testChainConfig())
	signer.Connect(ctx)
	b.Hydrate("0xhouse", map[string]string{"mys_01": "0xauction_1"})

	var purchased *game.Item
	var mu sync.Mutex
	b.SetPurchaseHandler(func(item *game.Item) {
		mu.Lock()
		defer mu.Unlock()
		purchased = item
	})

	require.NoError(t, b.BuyItem(ctx, "mys_01"))
	b.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, purchased)
	assert.Equal(t, "mys_01", purchased.ID)
	assert.Equal(t, "On-Chain Purchase", purchased.Source)
	assert.False(t, purchased.Equipped)

	// 支付额 = 价格 × 1e9 MIST
	calls := signer.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Arguments, 4)
	assert.Equal(t, "0xhouse", calls[0].Arguments[0].ObjectID)
	assert.Equal(t, "0xauction_1", calls[0].Arguments[1].ObjectID)
	assert.Equal(t, ArgSplitCoin, calls[0].Arguments[2].Kind)
	assert.Equal(t, uint64(1_000_000_000), calls[0].Arguments[2].SplitAmount)

	assert.Contains(t, logMessages(combat), "You now own Mystical Void Cleaver!")
}

func TestBuyItemChainFailure(t *testing.T) {
	ctx := context.Background()
	b, signer, _, combat := newTestBridge(t, testChainConfig())
	signer.Connect(ctx)
	b.Hydrate("0xhouse", map[string]string{"mys_01": "0xauction_1"})
	signer.SetError("0xpkg::auction_house::buy_item", stderrors.New("insufficient balance"))

	called := false
	b.SetPurchaseHandler(func(*game.Item) { called = true })

	require.NoError(t, b.BuyItem(ctx, "mys_01"))
	b.Wait()

	assert.False(t, called)
	assert.Contains(t, logMessages(combat), "Transaction failed: insufficient balance")
}

func TestClaimItemValidation(t *testing.T) {
	ctx := context.Background()
	b, signer, _, _ := newTestBridge(t, testChainConfig())

	err := b.ClaimItem(ctx, "0xauction")
	assert.True(t, errors.Is(err, errors.ErrWalletNotConnected))

	signer.Connect(ctx)
	err = b.ClaimItem(ctx, "0x0")
	assert.True(t, errors.Is(err, errors.ErrInvalidObjectID))
	assert.Equal(t, 0, signer.CallCount())
}

func TestClaimItemErrorExplained(t *testing.T) {
	ctx := context.Background()
	b, signer, _, combat := newTestBridge(t, testChainConfig())
	signer.Connect(ctx)
	signer.SetError("0xpkg::auction_house::claim_item", stderrors.New("auction has not ended"))

	require.NoError(t, b.ClaimItem(ctx, "0xauction"))
	b.Wait()

	assert.Contains(t, logMessages(combat), "Auction hasn't ended yet.")
	for _, e := range combat.Entries() {
		if e.Message == "Auction hasn't ended yet." {
			assert.Equal(t, game.LogWarning, e.Type)
		}
	}
}

func TestClaimSellerTreasuryFallback(t *testing.T) {
	ctx := context.Background()
	b, signer, _, _ := newTestBridge(t, testChainConfig())
	signer.Connect(ctx)

	// 未显式传入时回退到配置的国库对象
	require.NoError(t, b.ClaimSellerProceeds(ctx, "0xauction", ""))
	b.Wait()

	calls := signer.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, fmt.Sprintf("%s::auction_house::%s", "0xpkg", "claim_seller"), calls[0].Target)
	assert.Equal(t, "0xtreasury", calls[0].Arguments[1].ObjectID)
}

func TestClaimSellerNoBidsExplained(t *testing.T) {
	ctx := context.Background()
	b, signer, _, combat := newTestBridge(t, testChainConfig())
	signer.Connect(ctx)
	signer.SetError("0xpkg::auction_house::claim_seller", stderrors.New("no payment available"))

	require.NoError(t, b.ClaimSellerProceeds(ctx, "0xauction", "0xtreasury"))
	b.Wait()

	assert.Contains(t, logMessages(combat), "No bids received for this auction.")
}

func TestQueryAuctionEventsNotImplemented(t *testing.T) {
	b, _, _, _ := newTestBridge(t, testChainConfig())
	err := b.QueryAuctionEvents(context.Background(), "0xauction")
	assert.True(t, errors.Is(err, errors.ErrNotImplemented))
}

func TestHydrateRestoresState(t *testing.T) {
	b, _, _, _ := newTestBridge(t, testChainConfig())
	b.Hydrate("0xhouse", map[string]string{"mys_02": "0xa2"})

	assert.Equal(t, StatusInitialized, b.Status())
	assert.Equal(t, "0xhouse", b.HouseID())
	id, ok := b.AuctionID("mys_02")
	assert.True(t, ok)
	assert.Equal(t, "0xa2", id)
}
