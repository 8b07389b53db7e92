package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ventcalc/internal/exporter"
)

// ExportCSV 下载 CSV 结果文件
// GET /api/results/export
func (h *Handler) ExportCSV(c *gin.Context) {
	results := h.store.Results()
	if len(results) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "尚无计算结果"})
		return
	}

	filename := h.exportFileName("csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := exporter.WriteCSV(c.Writer, results); err != nil {
		// 响应头已发出，只能记录
		log.Error().Err(err).Msg("failed to stream csv export")
		return
	}

	log.Info().
		Int("rows", len(results)).
		Str("fileName", filename).
		Msg("csv export completed")
}

// exportFileName 导出文件名：配置前缀 + 时间戳
func (h *Handler) exportFileName(ext string) string {
	prefix := h.cfg.Export.FilePrefix
	if prefix == "" {
		prefix = "airflow_results"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}
