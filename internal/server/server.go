package server

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	v1 "ventcalc/internal/api/v1"
	"ventcalc/internal/config"
	"ventcalc/internal/importer"
	"ventcalc/internal/service/store"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	v1     *v1.Handler
	http   *http.Server
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to ensure data dir, falling back to config value")
		dataDir = cfg.Data.DataDir
	}

	memStore := store.NewMemoryStore()
	coordinator := importer.NewCoordinator(memStore, filepath.Join(dataDir, "uploads"))
	v1Handler := v1.NewHandler(memStore, coordinator, cfg)

	s := &Server{
		router: gin.Default(),
		store:  memStore,
		v1:     v1Handler,
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// V1 API 路由
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	// 纯 API 服务，其余路径一律 JSON 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "path": c.Request.URL.Path})
	})
}

// Run 启动服务器，阻塞到监听结束
func (s *Server) Run(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	log.Info().Str("addr", addr).Msg("http server listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown 优雅停机，等待存量请求完成
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	log.Info().Msg("http server shutting down")
	return s.http.Shutdown(ctx)
}

// Router 暴露路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}
