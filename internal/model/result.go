package model

// ErrorRoomTypeNotFound 行级错误文案，输出格式兼容要求原文保留
const ErrorRoomTypeNotFound = "Room Type Not Found"

// AirflowResult 单个房间的风量计算结果
// CFM 字段已取整；MinTotalACH 与 Pressure 原样透传
type AirflowResult struct {
	StandardUsed    string  `json:"standardUsed"` // 匹配到的房间类型名
	MinTotalACH     float64 `json:"minTotalACH"`
	RequiredVentCFM float64 `json:"requiredVentCFM"`
	RequiredOACFM   float64 `json:"requiredOACFM"` // 新风需求，不进入导出列
	CoolingLoadCFM  float64 `json:"coolingLoadCFM"`
	DesignSupplyCFM float64 `json:"designSupplyCFM"`
	ReturnCFM       float64 `json:"returnCFM"`
	ExhaustCFM      float64 `json:"exhaustCFM"`
	Pressure        string  `json:"pressure"`
}

// RoomResult 批量计算中一个房间的行结果
// Error 与 Airflow 二选一：查找失败时只有 Error，其余行只有 Airflow
type RoomResult struct {
	RoomNumber string         `json:"roomNumber"`
	RoomName   string         `json:"roomName"`
	Error      string         `json:"error,omitempty"`
	Airflow    *AirflowResult `json:"airflow,omitempty"`
}
