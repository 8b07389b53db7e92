package parser

import (
	"testing"

	"ventcalc/internal/model"
)

// 构造双标准参考网格：行 0 标记行，行 1 表头行，行 2 起数据行
func newReferenceGrid() model.RawGrid {
	return model.RawGrid{
		{
			"ASHRAE 170 TABLE 7.1", "", "", "", "", "", "",
			"FGI 2022", "", "",
		},
		{
			"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES", "CODE MINIMUM OUTDOOR AIR CHANGES",
			"ROOM DESIGN TEMPERATURE (COOLING)", "Code Pressure", "Pressurization / Room Offset (CFM)", "100% Exhaust",
			"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES", "Code Pressure",
		},
		{
			"PATIENT ROOM", "4", "2", "72", "NR", "0", "NO",
			"EXAM ROOM", "6", "Positive",
		},
		{
			"AII ROOM", "12", "2", "75", "Negative", "100", "YES",
			"TRIAGE", "12", "Negative",
		},
	}
}

// TestExtractBasic 区间切片产出查找表，字段按列名映射并做类型转换
func TestExtractBasic(t *testing.T) {
	t.Parallel()

	grid := newReferenceGrid()
	table := Extract(grid, model.StandardBlock{Name: "ASHRAE 170 TABLE 7.1", Start: 0, End: 7})

	if table.Len() != 2 {
		t.Fatalf("table.Len() = %d, want 2", table.Len())
	}

	rec, ok := table.Lookup("PATIENT ROOM")
	if !ok {
		t.Fatal("PATIENT ROOM not found")
	}
	if rec.MinTotalACH != 4 || rec.MinOutdoorACH != 2 {
		t.Errorf("ACH = %v/%v, want 4/2", rec.MinTotalACH, rec.MinOutdoorACH)
	}
	if rec.DesignCoolingTemp != 72 {
		t.Errorf("DesignCoolingTemp = %v, want 72", rec.DesignCoolingTemp)
	}
	if rec.Pressure != "NR" {
		t.Errorf("Pressure = %q, want NR", rec.Pressure)
	}
	if rec.FullExhaust {
		t.Error("PATIENT ROOM FullExhaust = true, want false")
	}

	aii, ok := table.Lookup("AII ROOM")
	if !ok {
		t.Fatal("AII ROOM not found")
	}
	if !aii.FullExhaust {
		t.Error("AII ROOM FullExhaust = false, want true")
	}
	if aii.OffsetCFM != 100 {
		t.Errorf("OffsetCFM = %v, want 100", aii.OffsetCFM)
	}
	if aii.Pressure != "Negative" {
		t.Errorf("Pressure = %q, want Negative", aii.Pressure)
	}
}

// TestExtractBlockIsolation 第二个区间只能看到自己的列，互不串数据
func TestExtractBlockIsolation(t *testing.T) {
	t.Parallel()

	grid := newReferenceGrid()
	table := Extract(grid, model.StandardBlock{Name: "FGI 2022", Start: 7, End: 10})

	if table.Len() != 2 {
		t.Fatalf("table.Len() = %d, want 2", table.Len())
	}
	if _, ok := table.Lookup("PATIENT ROOM"); ok {
		t.Error("FGI block leaked PATIENT ROOM from the first block")
	}

	rec, ok := table.Lookup("EXAM ROOM")
	if !ok {
		t.Fatal("EXAM ROOM not found")
	}
	if rec.MinTotalACH != 6 {
		t.Errorf("MinTotalACH = %v, want 6", rec.MinTotalACH)
	}
	if rec.Pressure != "Positive" {
		t.Errorf("Pressure = %q, want Positive", rec.Pressure)
	}
	// FGI 区间没有这些列，数值字段取 0
	if rec.MinOutdoorACH != 0 || rec.DesignCoolingTemp != 0 || rec.OffsetCFM != 0 {
		t.Errorf("absent columns should parse to 0, got %+v", rec)
	}
	if rec.FullExhaust {
		t.Error("absent exhaust column should be false")
	}
}

// TestExtractHeaderCleaning 表头去首尾空白、单元格内换行折叠为空格后匹配
func TestExtractHeaderCleaning(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE X", "", ""},
		{" ROOM NAME ", "CODE MINIMUM\nTOTAL AIR CHANGES", "ROOM DESIGN\r\nTEMPERATURE (COOLING)"},
		{"OR", "20", "68"},
	}

	table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 3})
	rec, ok := table.Lookup("OR")
	if !ok {
		t.Fatal("OR not found")
	}
	if rec.MinTotalACH != 20 {
		t.Errorf("MinTotalACH = %v, want 20", rec.MinTotalACH)
	}
	if rec.DesignCoolingTemp != 68 {
		t.Errorf("DesignCoolingTemp = %v, want 68", rec.DesignCoolingTemp)
	}
}

// TestExtractSkipsEmptyRoomName 房间类型名缺失的行丢弃
func TestExtractSkipsEmptyRoomName(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE X", ""},
		{"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES"},
		{"PATIENT ROOM", "4"},
		{"", "6"},
		{"   ", "8"},
		{"EXAM ROOM", "10"},
	}

	table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 2})
	if table.Len() != 2 {
		t.Errorf("table.Len() = %d, want 2", table.Len())
	}
	if got := table.RoomTypes(); len(got) != 2 || got[0] != "PATIENT ROOM" || got[1] != "EXAM ROOM" {
		t.Errorf("RoomTypes() = %v, want [PATIENT ROOM EXAM ROOM]", got)
	}
}

// TestExtractSafeNumeric 数值字段解析失败取 0，千分位分隔符可解析
func TestExtractSafeNumeric(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE X", "", "", ""},
		{"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES", "Pressurization / Room Offset (CFM)", "ROOM DESIGN TEMPERATURE (COOLING)"},
		{"LAB", "N/A", "1,200", ""},
	}

	table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 4})
	rec, ok := table.Lookup("LAB")
	if !ok {
		t.Fatal("LAB not found")
	}
	if rec.MinTotalACH != 0 {
		t.Errorf("MinTotalACH = %v, want 0 for non-numeric text", rec.MinTotalACH)
	}
	if rec.OffsetCFM != 1200 {
		t.Errorf("OffsetCFM = %v, want 1200", rec.OffsetCFM)
	}
	if rec.DesignCoolingTemp != 0 {
		t.Errorf("DesignCoolingTemp = %v, want 0 for empty cell", rec.DesignCoolingTemp)
	}
}

// TestExtractPressureDefault 压差要求缺失时取 NR：空单元格与整列缺失同样处理
func TestExtractPressureDefault(t *testing.T) {
	t.Parallel()

	withEmptyCell := model.RawGrid{
		{"TABLE X", ""},
		{"ROOM NAME", "Code Pressure"},
		{"WARD", ""},
	}
	table := Extract(withEmptyCell, model.StandardBlock{Name: "TABLE X", Start: 0, End: 2})
	rec, _ := table.Lookup("WARD")
	if rec.Pressure != PressureNotRequired {
		t.Errorf("empty cell Pressure = %q, want %q", rec.Pressure, PressureNotRequired)
	}

	withoutColumn := model.RawGrid{
		{"TABLE X"},
		{"ROOM NAME"},
		{"WARD"},
	}
	table = Extract(withoutColumn, model.StandardBlock{Name: "TABLE X", Start: 0, End: 1})
	rec, _ = table.Lookup("WARD")
	if rec.Pressure != PressureNotRequired {
		t.Errorf("missing column Pressure = %q, want %q", rec.Pressure, PressureNotRequired)
	}
}

// TestExtractExhaustFlag 仅 YES（不区分大小写）为 true
func TestExtractExhaustFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want bool
	}{
		{"大写YES", "YES", true},
		{"小写yes", "yes", true},
		{"混合Yes带空格", " Yes ", true},
		{"NO", "NO", false},
		{"单字母Y", "Y", false},
		{"空单元格", "", false},
		{"无关文本", "ALL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := model.RawGrid{
				{"TABLE X", ""},
				{"ROOM NAME", "100% Exhaust"},
				{"SOILED", tt.cell},
			}
			table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 2})
			rec, _ := table.Lookup("SOILED")
			if rec.FullExhaust != tt.want {
				t.Errorf("FullExhaust for %q = %v, want %v", tt.cell, rec.FullExhaust, tt.want)
			}
		})
	}
}

// TestExtractDuplicateRoomTypes 重复房间类型名保留首次出现
func TestExtractDuplicateRoomTypes(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE X", ""},
		{"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES"},
		{"PATIENT ROOM", "4"},
		{"PATIENT ROOM", "9"},
	}

	table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 2})
	if table.Len() != 1 {
		t.Fatalf("table.Len() = %d, want 1", table.Len())
	}
	rec, _ := table.Lookup("PATIENT ROOM")
	if rec.MinTotalACH != 4 {
		t.Errorf("MinTotalACH = %v, want first occurrence value 4", rec.MinTotalACH)
	}
}

// TestExtractDegenerateBlocks 零宽区间与行数不足产出空表而不是错误
func TestExtractDegenerateBlocks(t *testing.T) {
	t.Parallel()

	grid := newReferenceGrid()

	empty := Extract(grid, model.StandardBlock{Name: "ZERO", Start: 3, End: 3})
	if empty.Len() != 0 {
		t.Errorf("zero-width block table.Len() = %d, want 0", empty.Len())
	}

	short := Extract(model.RawGrid{{"TABLE X"}}, model.StandardBlock{Name: "TABLE X", Start: 0, End: 1})
	if short.Len() != 0 {
		t.Errorf("single-row grid table.Len() = %d, want 0", short.Len())
	}

	// 相邻标记产生的最小区间：表头列是下一个标准的标记列，无 ROOM NAME
	minimal := Extract(model.RawGrid{
		{"TABLE A", "TABLE B"},
		{"junk", "ROOM NAME"},
		{"x", "WARD"},
	}, model.StandardBlock{Name: "TABLE A", Start: 0, End: 1})
	if minimal.Len() != 0 {
		t.Errorf("minimal block table.Len() = %d, want 0", minimal.Len())
	}
}

// TestExtractRoomTypeOrder 房间类型列表按出现顺序返回
func TestExtractRoomTypeOrder(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE X", ""},
		{"ROOM NAME", "CODE MINIMUM TOTAL AIR CHANGES"},
		{"WARD", "4"},
		{"AII ROOM", "12"},
		{"CORRIDOR", "2"},
	}

	table := Extract(grid, model.StandardBlock{Name: "TABLE X", Start: 0, End: 2})
	got := table.RoomTypes()
	want := []string{"WARD", "AII ROOM", "CORRIDOR"}
	if len(got) != len(want) {
		t.Fatalf("RoomTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RoomTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
