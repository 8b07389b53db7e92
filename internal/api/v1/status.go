package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventcalc/internal/service/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized bool                    `json:"initialized"` // 是否已导入参考网格
	DefaultSAT  float64                 `json:"defaultSAT"`  // 默认送风温度 (°F)
	Workspace   store.WorkspaceSnapshot `json:"workspace"`   // 工作区状态
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, StatusResponse{
		Initialized: snap.HasReference,
		DefaultSAT:  h.cfg.Calc.DefaultSAT,
		Workspace:   snap,
	})
}

// ResetWorkspace 清空工作区
// POST /api/workspace/reset
func (h *Handler) ResetWorkspace(c *gin.Context) {
	h.store.Reset()
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
