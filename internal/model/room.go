package model

// RoomRecord 负荷导出文件中的一个房间
// 计算引擎只读该结构，RoomType 由用户在计算前指定
type RoomRecord struct {
	ID              string  `json:"id"`              // 服务端生成，供行级编辑定位
	RoomNumber      string  `json:"roomNumber"`      // 房间编号
	RoomName        string  `json:"roomName"`        // 建筑房间名
	Volume          float64 `json:"volume"`          // 房间体积 (ft³)
	CoolingLoadBTUH float64 `json:"coolingLoadBTUH"` // 围护冷负荷 (BTUH)
	RoomType        string  `json:"roomType"`        // 指定的房间类型，空串表示未指定
}

// RoomPatch 房间行级编辑补丁，nil 字段保持原值
type RoomPatch struct {
	RoomType        *string  `json:"roomType"`
	Volume          *float64 `json:"volume"`
	CoolingLoadBTUH *float64 `json:"coolingLoadBTUH"`
}
