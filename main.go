// @title Creator Insight Portal API
// @version 1.0.0
// @description 创作者分析、AI 洞察、作品集与成就接口。

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"creator_insight_backend/internal/app"
	"creator_insight_backend/internal/config"
	"creator_insight_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrate := flag.Bool("migrate", false, "启动时执行数据库迁移")
	seed := flag.Bool("seed", false, "写入演示数据（隐含 -migrate）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate
	cfg.Seed = *seed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
