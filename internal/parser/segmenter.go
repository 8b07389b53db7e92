package parser

import (
	"strings"

	"ventcalc/internal/model"
)

// markerKeywords 标准标记关键词
// 参考表首行中文本含任一关键词（不区分大小写）的单元格视为一个标准的起始标记
var markerKeywords = []string{"TABLE", "FGI"}

// Segment 扫描网格首行，把参考表切分为按标准划分的列区间
// 区间连续、不重叠、按起始列有序，自首个标记列起覆盖到网格末列；
// 最后一个标记的区间延伸到末列，相邻标记产生仅含标记列的最小区间。
// 未发现任何标记时返回空列表，由调用方作"无可用标准"处理
func Segment(grid model.RawGrid) []model.StandardBlock {
	blocks := make([]model.StandardBlock, 0, 4)
	cols := grid.Cols()

	start := -1
	name := ""
	for col := 0; col < cols; col++ {
		text := strings.TrimSpace(grid.Cell(0, col))
		// 缺失与空白单元格先统一排除，之后才做关键词判断
		if text == "" {
			continue
		}
		if !ContainsAny(strings.ToUpper(text), markerKeywords) {
			continue
		}
		if start >= 0 {
			blocks = append(blocks, model.StandardBlock{Name: name, Start: start, End: col})
		}
		start = col
		name = text
	}
	if start >= 0 {
		blocks = append(blocks, model.StandardBlock{Name: name, Start: start, End: cols})
	}

	return blocks
}

// FindBlock 按名称查找区间，同名标记取首个出现
func FindBlock(blocks []model.StandardBlock, name string) (model.StandardBlock, bool) {
	for _, b := range blocks {
		if b.Name == name {
			return b, true
		}
	}
	return model.StandardBlock{}, false
}
