package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ventcalc/internal/parser"
)

// StandardInfo 参考网格中一个标准的列区间信息
type StandardInfo struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Width int    `json:"width"`
}

// ImportReference 上传参考网格并分段
// POST /api/reference
func (h *Handler) ImportReference(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer f.Close()

	summary, err := h.importer.ImportReference(f, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListStandards 列出参考网格中识别出的标准
// GET /api/reference/standards
func (h *Handler) ListStandards(c *gin.Context) {
	blocks := h.store.Blocks()
	items := make([]StandardInfo, 0, len(blocks))
	for _, b := range blocks {
		items = append(items, StandardInfo{
			Name:  b.Name,
			Start: b.Start,
			End:   b.End,
			Width: b.Width(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// SelectStandardRequest 标准选择请求
type SelectStandardRequest struct {
	Name string `json:"name" binding:"required"`
}

// SelectStandard 选定标准并构建查找表
// POST /api/reference/standards/select
// 空表（区间内没有有效数据行）允许选中，由响应中的条数体现
func (h *Handler) SelectStandard(c *gin.Context) {
	var req SelectStandardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	grid, ok := h.store.Grid()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未导入参考网格"})
		return
	}

	block, ok := parser.FindBlock(h.store.Blocks(), req.Name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "标准不存在: " + req.Name})
		return
	}

	table := parser.Extract(grid, block)
	h.store.SelectStandard(req.Name, table)

	log.Info().
		Str("name", req.Name).
		Int("records", table.Len()).
		Msg("standard selected")

	c.JSON(http.StatusOK, gin.H{
		"name":          req.Name,
		"roomTypeCount": table.Len(),
		"records":       table.Records(),
	})
}

// GetTable 预览当前标准表
// GET /api/reference/table
func (h *Handler) GetTable(c *gin.Context) {
	name, table := h.store.SelectedTable()
	if table == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未选择标准"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"records": table.Records(),
		"total":   table.Len(),
	})
}
