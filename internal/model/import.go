package model

// ReferenceImportSummary 参考表导入产物：原始网格规模 + 分段结果
type ReferenceImportSummary struct {
	FileID   string          `json:"fileId"`
	FileName string          `json:"fileName"`
	Sheet    string          `json:"sheet"`
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	Blocks   []StandardBlock `json:"blocks"` // 未发现标记时为空列表
}

// RoomImportSummary 负荷文件导入产物
type RoomImportSummary struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	Imported int    `json:"imported"` // 成功导入的房间行数
	Dropped  int    `json:"dropped"`  // 缺少房间编号被丢弃的行数
}
