package model

// RawGrid 参考表原始网格，按行读取的单元格文本
// 加载后只读；空串与越界位置均视为缺失单元格
type RawGrid [][]string

// Rows 行数
func (g RawGrid) Rows() int {
	return len(g)
}

// Cols 列数，取所有行的最大宽度
func (g RawGrid) Cols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell 读取单元格文本，越界返回空串
func (g RawGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
