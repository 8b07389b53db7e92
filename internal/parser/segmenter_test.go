package parser

import (
	"testing"

	"ventcalc/internal/model"
)

// TestSegmentBasic 两个标记把首行切成两个连续区间，末段延伸到末列
func TestSegmentBasic(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"ASHRAE 170 TABLE 7.1", "", "", "FGI 2022", "", ""},
		{"h1", "h2", "h3", "h4", "h5", "h6"},
	}

	blocks := Segment(grid)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}

	if blocks[0].Name != "ASHRAE 170 TABLE 7.1" || blocks[0].Start != 0 || blocks[0].End != 3 {
		t.Errorf("blocks[0] = %+v, want {ASHRAE 170 TABLE 7.1 0 3}", blocks[0])
	}
	if blocks[1].Name != "FGI 2022" || blocks[1].Start != 3 || blocks[1].End != 6 {
		t.Errorf("blocks[1] = %+v, want {FGI 2022 3 6}", blocks[1])
	}
}

// TestSegmentNoMarkers 无标记时返回空列表而不是错误
func TestSegmentNoMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid model.RawGrid
	}{
		{"首行无关键词", model.RawGrid{{"ROOM NAME", "ACH", "170"}, {"a", "b", "c"}}},
		{"首行全空", model.RawGrid{{"", "", ""}, {"a", "b", "c"}}},
		{"空网格", model.RawGrid{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Segment(tt.grid)
			if len(blocks) != 0 {
				t.Errorf("len(blocks) = %d, want 0", len(blocks))
			}
		})
	}
}

// TestSegmentMarkerDetection 关键词不区分大小写；缺失、空白与数字单元格一律不是标记
func TestSegmentMarkerDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cell   string
		marker bool
	}{
		{"大写TABLE", "STANDARD TABLE 1", true},
		{"小写table", "standard table 1", true},
		{"大写FGI", "FGI 2022", true},
		{"小写fgi", "fgi guidelines", true},
		{"混合大小写", "Fgi Table", true},
		{"数字文本", "170", false},
		{"无关键词", "ROOM NAME", false},
		{"空单元格", "", false},
		{"纯空白", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := model.RawGrid{{tt.cell, "pad"}}
			blocks := Segment(grid)
			got := len(blocks) > 0
			if got != tt.marker {
				t.Errorf("Segment marker for %q = %v, want %v", tt.cell, got, tt.marker)
			}
		})
	}
}

// TestSegmentAdjacentMarkers 相邻标记产生仅含标记列的最小区间，由下游按空表处理
func TestSegmentAdjacentMarkers(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE A", "TABLE B", "", ""},
	}

	blocks := Segment(grid)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Width() != 1 {
		t.Errorf("blocks[0].Width() = %d, want 1", blocks[0].Width())
	}
	if blocks[1].Start != 1 || blocks[1].End != 4 {
		t.Errorf("blocks[1] = %+v, want range [1,4)", blocks[1])
	}

	adjacent := model.RawGrid{
		{"", "TABLE A", "TABLE B"},
	}
	blocks = Segment(adjacent)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Width() != 1 || blocks[1].Width() != 1 {
		t.Errorf("widths = %d,%d, want 1,1", blocks[0].Width(), blocks[1].Width())
	}
}

// TestSegmentPartition 区间始终连续不重叠，自首个标记列覆盖到末列
func TestSegmentPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row      []string
		firstCol int
	}{
		{"首列起步", []string{"TABLE A", "", "FGI B", "", "", "TABLE C", ""}, 0},
		{"中部起步", []string{"", "", "TABLE A", "", "FGI B", ""}, 2},
		{"单个标记", []string{"", "FGI ONLY", "", ""}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := model.RawGrid{tt.row}
			blocks := Segment(grid)
			if len(blocks) == 0 {
				t.Fatalf("no blocks for %v", tt.row)
			}
			if blocks[0].Start != tt.firstCol {
				t.Errorf("first start = %d, want %d", blocks[0].Start, tt.firstCol)
			}
			for i := 0; i < len(blocks)-1; i++ {
				if blocks[i].End != blocks[i+1].Start {
					t.Errorf("gap between blocks[%d] and blocks[%d]: %+v", i, i+1, blocks)
				}
			}
			if last := blocks[len(blocks)-1]; last.End != len(tt.row) {
				t.Errorf("last end = %d, want %d", last.End, len(tt.row))
			}
		})
	}
}

// TestSegmentRaggedRows 列数取全网格最大行宽，首行较短时末段仍覆盖到最宽列
func TestSegmentRaggedRows(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"TABLE A"},
		{"h1", "h2", "h3", "h4"},
		{"r1", "r2", "r3", "r4"},
	}

	blocks := Segment(grid)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].End != 4 {
		t.Errorf("End = %d, want 4", blocks[0].End)
	}
}

// TestSegmentMarkerNameTrimmed 标记名取单元格文本并去除首尾空白
func TestSegmentMarkerNameTrimmed(t *testing.T) {
	t.Parallel()

	grid := model.RawGrid{
		{"  FGI 2022 Guidelines \n", ""},
	}
	blocks := Segment(grid)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].Name != "FGI 2022 Guidelines" {
		t.Errorf("Name = %q, want %q", blocks[0].Name, "FGI 2022 Guidelines")
	}
}

// TestFindBlock 按名称取首个匹配
func TestFindBlock(t *testing.T) {
	t.Parallel()

	blocks := []model.StandardBlock{
		{Name: "TABLE A", Start: 0, End: 3},
		{Name: "TABLE B", Start: 3, End: 6},
		{Name: "TABLE A", Start: 6, End: 9},
	}

	b, ok := FindBlock(blocks, "TABLE A")
	if !ok {
		t.Fatal("FindBlock(TABLE A) not found")
	}
	if b.Start != 0 {
		t.Errorf("duplicate name should resolve to first occurrence, got start %d", b.Start)
	}

	if _, ok := FindBlock(blocks, "TABLE X"); ok {
		t.Error("FindBlock(TABLE X) should not be found")
	}
}
