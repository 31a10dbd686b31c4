package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/config"
	"github.com/wfunc/chain-hunter/internal/database"
	"github.com/wfunc/chain-hunter/internal/logger"
	"github.com/wfunc/chain-hunter/internal/models"
)

// deployparse 解析合约发布命令的输出，提取 packageId 与
// 拍卖行共享对象 ID，写回配置文件并留存部署审计记录。
//
// 用法:
//
//	deployparse -config config/config.yaml < publish-output.txt
//	deployparse -config config/config.yaml -input publish-output.txt

var (
	publishedRe = regexp.MustCompile(`(?i)Published Objects:\s*-\s*ID:\s*(0x[a-f0-9]+)`)
	packageRe   = regexp.MustCompile(`(?i)Package ID:\s*(0x[a-f0-9]+)`)
	sharedRe    = regexp.MustCompile(`(?i)Shared Objects:\s*-\s*ID:\s*(0x[a-f0-9]+)`)
	idRe        = regexp.MustCompile(`(?i)ID:\s*(0x[a-f0-9]+)`)
)

func main() {
	var (
		configPath = flag.String("config", "", "配置文件路径")
		inputPath  = flag.String("input", "", "发布输出文件（缺省读取标准输入）")
		network    = flag.String("network", "testnet", "目标网络")
		skipAudit  = flag.Bool("no-audit", false, "只更新配置，不写审计记录")
	)
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	output, err := readInput(*inputPath, flag.Args())
	if err != nil {
		logger.Fatal("读取发布输出失败", zap.Error(err))
	}
	if strings.TrimSpace(output) == "" {
		logger.Fatal("发布输出为空")
	}

	packageID := extractPackageID(output)
	houseID := extractSharedObjectID(output)

	if packageID == "" {
		logger.Fatal("未能从输出中提取 Package ID")
	}
	logger.Info("解析完成",
		zap.String("packageId", packageID),
		zap.String("auctionHouseId", houseID))

	if err := config.SetChainValue("package_id", packageID); err != nil {
		logger.Fatal("写回配置失败", zap.Error(err))
	}

	if !*skipAudit {
		if err := writeAudit(cfg, packageID, houseID, *network, output); err != nil {
			logger.Fatal("写入部署审计记录失败", zap.Error(err))
		}
	}

	fmt.Printf("Package ID:       %s\n", packageID)
	if houseID != "" {
		fmt.Printf("Auction House ID: %s\n", houseID)
	} else {
		fmt.Println("Auction House ID: (not found, initialize via API)")
	}
}

// readInput 按优先级读取：-input 文件、命令行参数、标准输入
func readInput(path string, args []string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

// extractPackageID 提取包 ID。优先 Published Objects 段，
// 回落到 "Package ID:" 行。
func extractPackageID(output string) string {
	if m := publishedRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}
	if m := packageRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}
	return ""
}

// extractSharedObjectID 提取 init 创建的共享对象 ID。
// 格式多变：先试紧凑格式，再逐行扫描 Shared Objects 段。
func extractSharedObjectID(output string) string {
	if m := sharedRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}

	inShared := false
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Shared Objects:") {
			inShared = true
			continue
		}
		if !inShared {
			continue
		}
		if m := idRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "-") {
			inShared = false
		}
	}
	return ""
}

// writeAudit 在数据库里留一条部署记录
func writeAudit(cfg *config.Config, packageID, houseID, network, raw string) error {
	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()
	if err := database.AutoMigrate(); err != nil {
		return err
	}

	excerpt := raw
	if len(excerpt) > 4000 {
		excerpt = excerpt[:4000]
	}

	record := &models.DeployRecord{
		PackageID:      packageID,
		AuctionHouseID: houseID,
		Network:        network,
		RawExcerpt:     excerpt,
		DeployedAt:     time.Now(),
	}
	return database.GetDB().Create(record).Error
}
