package v1

import (
	"github.com/gin-gonic/gin"

	"ventcalc/internal/config"
	"ventcalc/internal/importer"
	"ventcalc/internal/service/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.MemoryStore
	importer  *importer.Coordinator
	cfg       *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.MemoryStore, imp *importer.Coordinator, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:     st,
		importer:  imp,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 参考网格与标准
	router.POST("/reference", h.ImportReference)
	router.GET("/reference/standards", h.ListStandards)
	router.POST("/reference/standards/select", h.SelectStandard)
	router.GET("/reference/table", h.GetTable)

	// 房间清单
	router.POST("/rooms", h.ImportRooms)
	router.GET("/rooms", h.ListRooms)
	router.PATCH("/rooms/:id", h.UpdateRoom)

	// 批量计算与结果
	router.POST("/calculate", h.Calculate)
	router.GET("/results", h.GetResults)

	// 结果导出
	router.GET("/results/export", h.ExportCSV)
	router.POST("/results/export/stream", h.ExportStream)
	router.GET("/results/download/:token", h.DownloadExport)

	// 工作区管理
	router.POST("/workspace/reset", h.ResetWorkspace)
}
