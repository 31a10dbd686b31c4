package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  host: 127.0.0.1
  port: 9090
  mode: test

game:
  combat:
    attack_interval: 250ms
  speeds: [1, 2, 3]

chain:
  package_id: "0xtest_pkg"
  network: devnet

security:
  jwt:
    secret: test-secret
    expire_hours: 2
`

// 配置通过包级 once 初始化，全部断言集中在一个测试里按序执行
func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	require.NoError(t, Init(path))

	cfg := Get()
	require.NotNil(t, cfg)

	// 文件中的值
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.Combat.AttackInterval)
	assert.Equal(t, "0xtest_pkg", cfg.Chain.PackageID)
	assert.Equal(t, "devnet", cfg.Chain.Network)
	assert.Equal(t, 2, cfg.Security.JWT.ExpireHours)

	// 文件未覆盖时落回默认值
	assert.Equal(t, 500*time.Millisecond, cfg.Game.Combat.CounterDelay)
	assert.Equal(t, []int{1, 2, 3}, cfg.Game.Speeds)
	assert.Equal(t, "0x6", cfg.Chain.ClockID)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Game.Combat.LogBufferSize)

	// 辅助读取函数
	assert.Equal(t, "devnet", GetString("chain.network"))
	assert.Equal(t, 9090, GetInt("server.port"))
	assert.True(t, IsSet("chain.package_id"))

	// 部署脚本写回
	require.NoError(t, SetChainValue("package_id", "0xdeployed"))
	assert.Equal(t, "0xdeployed", GetString("chain.package_id"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0xdeployed")
}
