package store

import (
	"errors"
	"sync"

	"ventcalc/internal/model"
)

// MemoryStore 工作区内存存储
// 单工作区：参考网格、分段结果、选中标准、房间清单与最近一次计算结果
// 挂在同一实例上；上游数据更新时级联清除下游派生数据
type MemoryStore struct {
	mu sync.RWMutex

	grid          model.RawGrid
	referenceFile string
	blocks        []model.StandardBlock

	selectedStandard string
	table            *model.StandardTable

	rooms     []*model.RoomRecord
	roomIndex map[string]*model.RoomRecord
	roomsFile string

	results []model.RoomResult
}

// WorkspaceSnapshot 工作区状态快照，供状态接口使用
type WorkspaceSnapshot struct {
	HasReference     bool   `json:"hasReference"`
	ReferenceFile    string `json:"referenceFile,omitempty"`
	BlockCount       int    `json:"blockCount"`
	SelectedStandard string `json:"selectedStandard,omitempty"`
	RoomTypeCount    int    `json:"roomTypeCount"`
	RoomsFile        string `json:"roomsFile,omitempty"`
	RoomCount        int    `json:"roomCount"`
	ResultCount      int    `json:"resultCount"`
	ResultErrors     int    `json:"resultErrors"`
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roomIndex: make(map[string]*model.RoomRecord),
	}
}

// SetReference 存入参考网格与分段结果
// 旧的标准选择、查找表与计算结果随之失效；房间清单保留
func (s *MemoryStore) SetReference(fileName string, grid model.RawGrid, blocks []model.StandardBlock) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = grid
	s.referenceFile = fileName
	s.blocks = blocks
	s.selectedStandard = ""
	s.table = nil
	s.results = nil
}

// Grid 返回参考网格
// 网格加载后只读，调用方不得修改
func (s *MemoryStore) Grid() (model.RawGrid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid, s.grid != nil
}

// Blocks 返回分段结果副本
func (s *MemoryStore) Blocks() []model.StandardBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.StandardBlock, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// SelectStandard 记录选中的标准及其查找表，旧计算结果失效
func (s *MemoryStore) SelectStandard(name string, table *model.StandardTable) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedStandard = name
	s.table = table
	s.results = nil
}

// SelectedTable 返回选中标准名与查找表，未选择时表为 nil
func (s *MemoryStore) SelectedTable() (string, *model.StandardTable) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedStandard, s.table
}

// SetRooms 替换房间清单，旧计算结果失效
func (s *MemoryStore) SetRooms(fileName string, rooms []*model.RoomRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = rooms
	s.roomsFile = fileName
	s.roomIndex = make(map[string]*model.RoomRecord, len(rooms))
	for _, r := range rooms {
		s.roomIndex[r.ID] = r
	}
	s.results = nil
}

// Rooms 返回房间清单的值快照，调用方与存储互不影响
func (s *MemoryStore) Rooms() []model.RoomRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RoomRecord, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, *r)
	}
	return out
}

// GetRoom 按 ID 返回房间快照
func (s *MemoryStore) GetRoom(id string) (model.RoomRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.roomIndex[id]
	if !ok {
		return model.RoomRecord{}, errors.New("room not found")
	}
	return *r, nil
}

// UpdateRoom 按补丁更新房间，返回更新后的快照
// 房间数据变动使既有计算结果失效
func (s *MemoryStore) UpdateRoom(id string, patch model.RoomPatch) (model.RoomRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.roomIndex[id]
	if !ok {
		return model.RoomRecord{}, errors.New("room not found")
	}

	if patch.RoomType != nil {
		r.RoomType = *patch.RoomType
	}
	if patch.Volume != nil {
		r.Volume = *patch.Volume
	}
	if patch.CoolingLoadBTUH != nil {
		r.CoolingLoadBTUH = *patch.CoolingLoadBTUH
	}

	s.results = nil
	return *r, nil
}

// SetResults 存入最近一次批量计算结果
func (s *MemoryStore) SetResults(results []model.RoomResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

// Results 返回计算结果副本
func (s *MemoryStore) Results() []model.RoomResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RoomResult, len(s.results))
	copy(out, s.results)
	return out
}

// RoomCount 房间数量
func (s *MemoryStore) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Reset 清空整个工作区
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = nil
	s.referenceFile = ""
	s.blocks = nil
	s.selectedStandard = ""
	s.table = nil
	s.rooms = nil
	s.roomIndex = make(map[string]*model.RoomRecord)
	s.roomsFile = ""
	s.results = nil
}

// Snapshot 工作区状态快照
func (s *MemoryStore) Snapshot() WorkspaceSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := WorkspaceSnapshot{
		HasReference:     s.grid != nil,
		ReferenceFile:    s.referenceFile,
		BlockCount:       len(s.blocks),
		SelectedStandard: s.selectedStandard,
		RoomsFile:        s.roomsFile,
		RoomCount:        len(s.rooms),
		ResultCount:      len(s.results),
	}
	if s.table != nil {
		snap.RoomTypeCount = s.table.Len()
	}
	for _, r := range s.results {
		if r.Error != "" {
			snap.ResultErrors++
		}
	}
	return snap
}
