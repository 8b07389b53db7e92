package report

import (
	"strings"

	"ventcalc/internal/model"
)

// Indicator 指标定义
type Indicator struct {
	ID    string  `json:"id"`    // 指标ID
	Name  string  `json:"name"`  // 指标名称
	Value float64 `json:"value"` // 指标值
	Unit  string  `json:"unit"`  // 单位 (如 CFM、间)
}

// IndicatorGroup 指标分组
type IndicatorGroup struct {
	Name       string      `json:"name"`       // 分组名称
	Indicators []Indicator `json:"indicators"` // 指标列表
}

// Summarize 汇总一次批量计算的结果，产出三组指标：
// 风量合计、房间统计、压差分布
func Summarize(results []model.RoomResult) []IndicatorGroup {
	return []IndicatorGroup{
		summarizeAirflow(results),
		summarizeRooms(results),
		summarizePressure(results),
	}
}

// summarizeAirflow 计算全楼层风量合计（5个指标）
// 只累加计算成功的行，失败行没有风量可计
func summarizeAirflow(results []model.RoomResult) IndicatorGroup {
	var supply, ret, exhaust, vent, oa float64
	for _, r := range results {
		if r.Airflow == nil {
			continue
		}
		supply += r.Airflow.DesignSupplyCFM
		ret += r.Airflow.ReturnCFM
		exhaust += r.Airflow.ExhaustCFM
		vent += r.Airflow.RequiredVentCFM
		oa += r.Airflow.RequiredOACFM
	}

	return IndicatorGroup{
		Name: "风量合计",
		Indicators: []Indicator{
			{ID: "totalDesignSupplyCFM", Name: "设计送风量合计", Value: supply, Unit: "CFM"},
			{ID: "totalReturnCFM", Name: "回风量合计", Value: ret, Unit: "CFM"},
			{ID: "totalExhaustCFM", Name: "排风量合计", Value: exhaust, Unit: "CFM"},
			{ID: "totalRequiredVentCFM", Name: "最小通风量合计", Value: vent, Unit: "CFM"},
			{ID: "totalRequiredOACFM", Name: "最小新风量合计", Value: oa, Unit: "CFM"},
		},
	}
}

// summarizeRooms 计算房间统计（3个指标）
func summarizeRooms(results []model.RoomResult) IndicatorGroup {
	var calculated, failed float64
	for _, r := range results {
		if r.Error != "" {
			failed++
		} else {
			calculated++
		}
	}

	return IndicatorGroup{
		Name: "房间统计",
		Indicators: []Indicator{
			{ID: "roomCount", Name: "房间总数", Value: float64(len(results)), Unit: "间"},
			{ID: "calculatedCount", Name: "计算成功", Value: calculated, Unit: "间"},
			{ID: "errorCount", Name: "类型未匹配", Value: failed, Unit: "间"},
		},
	}
}

// summarizePressure 计算压差分布（3个指标）
// 压差文案来自标准表原文，按关键词归类，既不识别的归入"无压差要求"
func summarizePressure(results []model.RoomResult) IndicatorGroup {
	var positive, negative, none float64
	for _, r := range results {
		if r.Airflow == nil {
			continue
		}
		switch {
		case strings.Contains(strings.ToLower(r.Airflow.Pressure), "positive"):
			positive++
		case strings.Contains(strings.ToLower(r.Airflow.Pressure), "negative"):
			negative++
		default:
			none++
		}
	}

	return IndicatorGroup{
		Name: "压差分布",
		Indicators: []Indicator{
			{ID: "positiveRoomCount", Name: "正压房间", Value: positive, Unit: "间"},
			{ID: "negativeRoomCount", Name: "负压房间", Value: negative, Unit: "间"},
			{ID: "noPressureRoomCount", Name: "无压差要求", Value: none, Unit: "间"},
		},
	}
}
