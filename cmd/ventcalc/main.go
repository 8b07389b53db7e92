package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"ventcalc/internal/config"
	"ventcalc/internal/server"
	"ventcalc/internal/util"
)

var (
	port       = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode    = flag.Bool("dev", false, "开发模式")
	dataDir    = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	configPath = flag.String("config", "", "配置文件路径 (默认读取可执行文件同目录的 config.toml)")
	noBrowser  = flag.Bool("no-browser", false, "启动后不自动打开浏览器")
)

func main() {
	flag.Parse()
	setupLogging()

	fmt.Println("==========================================")
	fmt.Println("  VentCalc - 医疗建筑送排风量计算工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo(*configPath)
	if err != nil {
		if *configPath != "" {
			// 显式指定的配置文件读不到就直接退出，避免带错配置默默运行
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}
	if info.ConfigPath != "" {
		fmt.Printf("配置文件: %s\n", info.ConfigPath)
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 确保数据目录存在
	resolvedDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create data dir")
	} else {
		fmt.Printf("数据目录: %s\n", resolvedDir)
	}

	// 创建服务器
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	url := fmt.Sprintf("http://%s:%d", browseHost(cfg.Server.Host), cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听 %s ...\n", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("server exited unexpectedly")
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode && !*noBrowser {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown failed")
	}
}

// browseHost 监听地址里的通配主机换成 localhost 供浏览器访问
func browseHost(host string) string {
	if host == "" || host == "0.0.0.0" || host == "::" {
		return "localhost"
	}
	return host
}
