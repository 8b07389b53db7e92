package model

// StandardBlock 参考表中一个标准占据的列区间 [Start, End)
type StandardBlock struct {
	Name  string `json:"name"`  // 标记单元格文本（去除首尾空白）
	Start int    `json:"start"` // 起始列（含）
	End   int    `json:"end"`   // 结束列（不含）
}

// Width 区间宽度，相邻标记会产生零宽区间
func (b StandardBlock) Width() int {
	return b.End - b.Start
}

// RequirementRecord 标准表中一个房间类型的通风要求
type RequirementRecord struct {
	RoomType          string  `json:"roomType"`          // 房间类型名（查找键）
	MinTotalACH       float64 `json:"minTotalACH"`       // 最低总换气次数 (ACH)
	MinOutdoorACH     float64 `json:"minOutdoorACH"`     // 最低新风换气次数 (ACH)
	DesignCoolingTemp float64 `json:"designCoolingTemp"` // 设计冷却温度 (°F)
	Pressure          string  `json:"pressure"`          // 压差要求，缺失时为 NR
	OffsetCFM         float64 `json:"offsetCFM"`         // 压差风量偏移 (CFM)
	FullExhaust       bool    `json:"fullExhaust"`       // 是否全排风房间
}

// StandardTable 单个标准的查找表
// 构建完成后只读，可在多个计算之间安全共享
type StandardTable struct {
	records   map[string]RequirementRecord
	roomTypes []string
}

// NewStandardTable 构建查找表
// 重复的房间类型名只保留首次出现
func NewStandardTable(records []RequirementRecord) *StandardTable {
	t := &StandardTable{
		records:   make(map[string]RequirementRecord, len(records)),
		roomTypes: make([]string, 0, len(records)),
	}
	for _, rec := range records {
		if _, exists := t.records[rec.RoomType]; exists {
			continue
		}
		t.records[rec.RoomType] = rec
		t.roomTypes = append(t.roomTypes, rec.RoomType)
	}
	return t
}

// Lookup 按房间类型名精确查找
func (t *StandardTable) Lookup(roomType string) (RequirementRecord, bool) {
	rec, ok := t.records[roomType]
	return rec, ok
}

// RoomTypes 按出现顺序返回去重后的房间类型名
func (t *StandardTable) RoomTypes() []string {
	out := make([]string, len(t.roomTypes))
	copy(out, t.roomTypes)
	return out
}

// Records 按出现顺序返回所有要求记录
func (t *StandardTable) Records() []RequirementRecord {
	out := make([]RequirementRecord, 0, len(t.roomTypes))
	for _, name := range t.roomTypes {
		out = append(out, t.records[name])
	}
	return out
}

// Len 记录条数
func (t *StandardTable) Len() int {
	return len(t.roomTypes)
}
