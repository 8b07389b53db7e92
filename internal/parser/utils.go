package parser

import (
	"strconv"
	"strings"
)

// CleanHeader 规范化表头：去除首尾空白，单元格内换行替换为单个空格
func CleanHeader(name string) string {
	name = strings.ReplaceAll(name, "\r\n", "\n")
	name = strings.ReplaceAll(name, "\r", "\n")
	name = strings.ReplaceAll(name, "\n", " ")
	return strings.TrimSpace(name)
}

// ParseFloat 安全数值解析
// 去除首尾空白与千分位分隔符后做标准浮点解析，失败时返回 0
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// ParseBoolYes 仅当文本为 YES（不区分大小写）时为 true，缺失视为 false
func ParseBoolYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "YES")
}

// GetCell 读取行内单元格并去除首尾空白，越界返回空串
func GetCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ContainsAny 检查字符串是否包含任意一个关键词
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
