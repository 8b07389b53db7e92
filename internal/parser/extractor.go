package parser

import (
	"strings"

	"ventcalc/internal/model"
)

// 标准表规范表头，清洗（去空白、换行折叠）后按原文精确匹配
const (
	HeaderRoomName          = "ROOM NAME"
	HeaderMinTotalACH       = "CODE MINIMUM TOTAL AIR CHANGES"
	HeaderMinOutdoorACH     = "CODE MINIMUM OUTDOOR AIR CHANGES"
	HeaderPressure          = "Code Pressure"
	HeaderDesignCoolingTemp = "ROOM DESIGN TEMPERATURE (COOLING)"
	HeaderOffsetCFM         = "Pressurization / Room Offset (CFM)"
	HeaderFullExhaust       = "100% Exhaust"
)

// PressureNotRequired 压差要求缺失时的默认值
const PressureNotRequired = "NR"

// Extract 按列区间切片网格并生成标准查找表
// 区间内切片行号 1（第二物理行）为表头，前两行不产出数据行；
// ROOM NAME 为空的行丢弃，数值字段解析失败取 0。
// 调用方需保证网格至少两行；行数不足或零宽区间产出空表
func Extract(grid model.RawGrid, block model.StandardBlock) *model.StandardTable {
	if grid.Rows() < 2 {
		return model.NewStandardTable(nil)
	}

	// 表头 → 列号；重复表头取首列
	colIndex := make(map[string]int, block.Width())
	for col := block.Start; col < block.End; col++ {
		h := CleanHeader(grid.Cell(1, col))
		if h == "" {
			continue
		}
		if _, exists := colIndex[h]; !exists {
			colIndex[h] = col
		}
	}

	getValue := func(row int, header string) string {
		col, ok := colIndex[header]
		if !ok {
			return ""
		}
		return strings.TrimSpace(grid.Cell(row, col))
	}

	records := make([]model.RequirementRecord, 0, grid.Rows())
	for row := 2; row < grid.Rows(); row++ {
		roomType := getValue(row, HeaderRoomName)
		if roomType == "" {
			continue
		}

		pressure := getValue(row, HeaderPressure)
		if pressure == "" {
			pressure = PressureNotRequired
		}

		records = append(records, model.RequirementRecord{
			RoomType:          roomType,
			MinTotalACH:       ParseFloat(getValue(row, HeaderMinTotalACH)),
			MinOutdoorACH:     ParseFloat(getValue(row, HeaderMinOutdoorACH)),
			DesignCoolingTemp: ParseFloat(getValue(row, HeaderDesignCoolingTemp)),
			Pressure:          pressure,
			OffsetCFM:         ParseFloat(getValue(row, HeaderOffsetCFM)),
			FullExhaust:       ParseBoolYes(getValue(row, HeaderFullExhaust)),
		})
	}

	return model.NewStandardTable(records)
}
