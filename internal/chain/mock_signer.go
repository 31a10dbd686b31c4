package chain

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/logger"
)

// MockSigner 模拟钱包签名器（开发与测试用）。
// 记录每次提交的交易，结果可按 target 预设。
type MockSigner struct {
	mu        sync.RWMutex
	logger    *zap.Logger
	connected bool
	address   string

	calls   []*CallDescriptor
	results map[string]*CallResult
	errs    map[string]error
	gate    chan struct{}
	seq     int
}

// NewMockSigner 创建模拟签名器
func NewMockSigner(address string) *MockSigner {
	return &MockSigner{
		logger:  logger.GetLogger(),
		address: address,
		results: make(map[string]*CallResult),
		errs:    make(map[string]error),
	}
}

// Connect 模拟连接与登录签名
func (m *MockSigner) Connect(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = true
	m.logger.Info("模拟钱包已连接", zap.String("address", m.address))
	return m.address, nil
}

// Disconnect 断开连接
func (m *MockSigner) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
}

// Address 当前地址
func (m *MockSigner) Address() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return ""
	}
	return m.address
}

// Connected 是否已连接
func (m *MockSigner) Connected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// SignAndExecute 记录交易并返回预设结果
func (m *MockSigner) SignAndExecute(ctx context.Context, call *CallDescriptor) (*CallResult, error) {
	m.mu.RLock()
	gate := m.gate
	m.mu.RUnlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, call)
	m.seq++

	if err, ok := m.errs[call.Target]; ok {
		return nil, err
	}
	if result, ok := m.results[call.Target]; ok {
		return result, nil
	}
	return &CallResult{Digest: fmt.Sprintf("mock_digest_%d", m.seq)}, nil
}

// SetResult 预设指定 target 的返回结果
func (m *MockSigner) SetResult(target string, result *CallResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[target] = result
}

// SetError 预设指定 target 的返回错误。传入 nil 清除预设。
func (m *MockSigner) SetError(target string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.errs, target)
		return
	}
	m.errs[target] = err
}

// SetGate 设置放行通道。设置后每次 SignAndExecute 先阻塞等待通道，
// 用于模拟在途交易。关闭通道放行全部。
func (m *MockSigner) SetGate(ch chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate = ch
}

// Calls 已提交的全部交易
func (m *MockSigner) Calls() []*CallDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*CallDescriptor, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount 已提交交易数
func (m *MockSigner) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}
