package game

import (
	"sync"
	"time"
)

// LogType 战斗日志条目类型
type LogType string

const (
	LogInfo    LogType = "info"
	LogSkill   LogType = "skill"
	LogVictory LogType = "victory"
	LogNFT     LogType = "nft"
	LogTrade   LogType = "trade"
	LogError   LogType = "error"
	LogWarning LogType = "warning"
)

// LogEntry 战斗日志条目
type LogEntry struct {
	Message string    `json:"message"`
	Type    LogType   `json:"type"`
	Time    time.Time `json:"time"`
}

// CombatLog 固定容量的战斗日志环。写满后丢弃最旧条目。
// 订阅者在 Append 时同步收到新条目。
type CombatLog struct {
	mu        sync.RWMutex
	capacity  int
	entries   []LogEntry
	observers []func(LogEntry)
}

// NewCombatLog 创建战斗日志
func NewCombatLog(capacity int) *CombatLog {
	if capacity <= 0 {
		capacity = 10
	}
	return &CombatLog{
		capacity: capacity,
		entries:  make([]LogEntry, 0, capacity),
	}
}

// Append 追加一条日志
func (l *CombatLog) Append(typ LogType, message string) {
	entry := LogEntry{Message: message, Type: typ, Time: time.Now()}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	observers := l.observers
	l.mu.Unlock()

	for _, fn := range observers {
		fn(entry)
	}
}

// Subscribe 注册订阅者。回调在 Append 的调用协程内执行，必须保持轻量。
func (l *CombatLog) Subscribe(fn func(LogEntry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, fn)
}

// Entries 返回当前日志快照，最新条目在前
func (l *CombatLog) Entries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LogEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len 当前条目数
func (l *CombatLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
