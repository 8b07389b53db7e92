package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ventcalc/internal/report"
	"ventcalc/internal/service/calculator"
)

// CalculateRequest 批量计算请求，sat 缺省取配置默认值
type CalculateRequest struct {
	SAT *float64 `json:"sat"`
}

// CalculateResponse 批量计算响应
type CalculateResponse struct {
	Count      int                     `json:"count"`      // 参与计算的房间数
	Errors     int                     `json:"errors"`     // 类型未匹配的行数
	SAT        float64                 `json:"sat"`        // 实际使用的送风温度
	DurationMs int64                   `json:"durationMs"` // 计算耗时
	Groups     []report.IndicatorGroup `json:"groups"`     // 汇总指标
}

// Calculate 对当前房间清单执行批量计算
// POST /api/calculate
// 请求体可省略；未选标准或房间清单为空时返回 409
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	_, table := h.store.SelectedTable()
	if table == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未选择标准"})
		return
	}
	rooms := h.store.Rooms()
	if len(rooms) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未导入房间清单"})
		return
	}

	sat := h.cfg.Calc.DefaultSAT
	if req.SAT != nil {
		sat = *req.SAT
	}

	start := time.Now()
	results := calculator.CalculateAll(rooms, sat, table)
	h.store.SetResults(results)

	errorCount := 0
	for _, r := range results {
		if r.Error != "" {
			errorCount++
		}
	}

	log.Info().
		Int("rooms", len(results)).
		Int("errors", errorCount).
		Float64("sat", sat).
		Dur("duration", time.Since(start)).
		Msg("batch calculation finished")

	c.JSON(http.StatusOK, CalculateResponse{
		Count:      len(results),
		Errors:     errorCount,
		SAT:        sat,
		DurationMs: time.Since(start).Milliseconds(),
		Groups:     report.Summarize(results),
	})
}

// GetResults 查询最近一次计算结果
// GET /api/results
func (h *Handler) GetResults(c *gin.Context) {
	results := h.store.Results()
	c.JSON(http.StatusOK, gin.H{
		"items":  results,
		"total":  len(results),
		"groups": report.Summarize(results),
	})
}
