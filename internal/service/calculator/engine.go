package calculator

import (
	"errors"
	"math"

	"ventcalc/internal/model"
)

// airSensibleHeatFactor 空气显热系数 (BTU/hr ÷ CFM ÷ °F)
// 数值兼容要求精确取 1.08
const airSensibleHeatFactor = 1.08

// fallbackDeltaT 送风温差非正时的回退温差 (°F)
const fallbackDeltaT = 20.0

// ErrRoomTypeNotFound 指定的房间类型在标准表中不存在
var ErrRoomTypeNotFound = errors.New("room type not found")

// Calculate 计算单个房间的设计风量
// 纯函数：只读三个入参，无共享状态；唯一的失败是房间类型查找失败，
// 此时不产出任何部分结果
func Calculate(room model.RoomRecord, sat float64, table *model.StandardTable) (model.AirflowResult, error) {
	req, ok := table.Lookup(room.RoomType)
	if !ok {
		return model.AirflowResult{}, ErrRoomTypeNotFound
	}

	// 规范通风最低需求
	requiredVentCFM := req.MinTotalACH * room.Volume / 60
	requiredOACFM := req.MinOutdoorACH * room.Volume / 60

	// 热负荷需求
	// 温差非正说明 SAT 与设计冷却温度配置冲突，回退到 20°F 避免除零或负风量
	deltaT := req.DesignCoolingTemp - sat
	if deltaT <= 0 {
		deltaT = fallbackDeltaT
	}
	coolingLoadCFM := room.CoolingLoadBTUH / (airSensibleHeatFactor * deltaT)

	// 设计送风量取规范与热负荷两者较大
	designSupplyCFM := math.Max(requiredVentCFM, coolingLoadCFM)

	// 压差偏移分配：全排风房间不设回风，其余房间不设排风
	// 负值原样保留，用于提示配置问题
	returnCFM := 0.0
	exhaustCFM := 0.0
	if req.FullExhaust {
		exhaustCFM = designSupplyCFM - req.OffsetCFM
	} else {
		returnCFM = designSupplyCFM - req.OffsetCFM
	}

	return model.AirflowResult{
		StandardUsed:    req.RoomType,
		MinTotalACH:     req.MinTotalACH,
		RequiredVentCFM: math.Round(requiredVentCFM),
		RequiredOACFM:   math.Round(requiredOACFM),
		CoolingLoadCFM:  math.Round(coolingLoadCFM),
		DesignSupplyCFM: math.Round(designSupplyCFM),
		ReturnCFM:       math.Round(returnCFM),
		ExhaustCFM:      math.Round(exhaustCFM),
		Pressure:        req.Pressure,
	}, nil
}

// CalculateAll 依输入顺序计算整批房间
// 单行查找失败记为行级错误，不中断其余房间
func CalculateAll(rooms []model.RoomRecord, sat float64, table *model.StandardTable) []model.RoomResult {
	results := make([]model.RoomResult, 0, len(rooms))
	for _, room := range rooms {
		result := model.RoomResult{
			RoomNumber: room.RoomNumber,
			RoomName:   room.RoomName,
		}
		airflow, err := Calculate(room, sat, table)
		if err != nil {
			result.Error = model.ErrorRoomTypeNotFound
		} else {
			result.Airflow = &airflow
		}
		results = append(results, result)
	}
	return results
}
