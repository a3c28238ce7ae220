package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ChaseCarlson/ClockWidget/config"
	"github.com/ChaseCarlson/ClockWidget/internal/clock"
	"github.com/ChaseCarlson/ClockWidget/internal/game"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "clock",
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})

	// 1. 读配置 (没有文件就用默认值)
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logger.Warn("config ignored, using defaults", "err", err)
		cfg = config.NewDefault()
	}
	logger.SetLevel(cfg.Level())

	// 2. 初始化窗口和各部件
	mgr := game.New(cfg, clock.System(), logger)
	mgr.Init()

	// 3. 启动。窗口创建失败时静默退出，不弹任何提示
	if err := ebiten.RunGame(mgr); err != nil {
		logger.Debug("run ended", "err", err)
	}
}
