package chain

import "context"

// WalletSigner 钱包签名器。默认无可用钱包，
// 连接并签名成功后才允许发起链上调用。
type WalletSigner interface {
	// Connect 连接钱包并完成登录签名，返回地址
	Connect(ctx context.Context) (string, error)
	// Address 当前地址，未连接时为空
	Address() string
	// Connected 是否已连接
	Connected() bool
	// SignAndExecute 签名并提交交易
	SignAndExecute(ctx context.Context, call *CallDescriptor) (*CallResult, error)
}
