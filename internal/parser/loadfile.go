package parser

import (
	"fmt"

	"github.com/google/uuid"

	"ventcalc/internal/model"
)

// 负荷导出文件的必需列
const (
	LoadHeaderRoomNumber  = "ROOM NUMBER"
	LoadHeaderRoomName    = "ARCH ROOM NAME"
	LoadHeaderVolume      = "ROOM VOLUME"
	LoadHeaderCoolingBTUH = "Envelope Gain - Cooling (BTUH)"
)

// loadHeaderRowIndex 真实表头所在的物理行号，前两行为导出工具的说明行
const loadHeaderRowIndex = 2

// ParseLoadRows 解析负荷导出的物理行集合为房间记录
// 缺少房间编号的行丢弃并计数；体积与冷负荷按安全数值规则解析
func ParseLoadRows(rows [][]string) (records []*model.RoomRecord, dropped int, err error) {
	if len(rows) <= loadHeaderRowIndex {
		return nil, 0, fmt.Errorf("load file has %d rows, header expected at physical row %d", len(rows), loadHeaderRowIndex+1)
	}

	header := rows[loadHeaderRowIndex]
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		h = CleanHeader(h)
		if h == "" {
			continue
		}
		if _, exists := colIndex[h]; !exists {
			colIndex[h] = i
		}
	}

	required := []string{LoadHeaderRoomNumber, LoadHeaderRoomName, LoadHeaderVolume, LoadHeaderCoolingBTUH}
	for _, name := range required {
		if _, ok := colIndex[name]; !ok {
			return nil, 0, fmt.Errorf("load file missing column %q", name)
		}
	}

	records = make([]*model.RoomRecord, 0, len(rows)-loadHeaderRowIndex-1)
	for _, row := range rows[loadHeaderRowIndex+1:] {
		roomNumber := GetCell(row, colIndex[LoadHeaderRoomNumber])
		if roomNumber == "" {
			dropped++
			continue
		}
		records = append(records, &model.RoomRecord{
			ID:              uuid.New().String(),
			RoomNumber:      roomNumber,
			RoomName:        GetCell(row, colIndex[LoadHeaderRoomName]),
			Volume:          ParseFloat(GetCell(row, colIndex[LoadHeaderVolume])),
			CoolingLoadBTUH: ParseFloat(GetCell(row, colIndex[LoadHeaderCoolingBTUH])),
		})
	}

	return records, dropped, nil
}
