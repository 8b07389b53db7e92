package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"ventcalc/internal/model"
	"ventcalc/internal/parser"
	"ventcalc/internal/service/store"
)

// Coordinator 导入协调器
// 负责上传落盘、按扩展名读取表格、调用解析器并写入工作区
type Coordinator struct {
	store      *store.MemoryStore
	uploadsDir string
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.MemoryStore, uploadsDir string) *Coordinator {
	return &Coordinator{
		store:      st,
		uploadsDir: uploadsDir,
	}
}

// ImportReference 导入多标准参考网格
// 读取为原始网格后立即分段；未发现标记时 Blocks 为空列表而非错误，
// 由调用方决定如何提示
func (c *Coordinator) ImportReference(r io.Reader, fileName string) (model.ReferenceImportSummary, error) {
	fileID, path, err := c.spool(r, fileName)
	if err != nil {
		return model.ReferenceImportSummary{}, err
	}
	defer os.Remove(path)

	rows, sheet, err := readRows(path, fileName)
	if err != nil {
		return model.ReferenceImportSummary{}, err
	}

	grid := model.RawGrid(rows)
	blocks := parser.Segment(grid)
	c.store.SetReference(fileName, grid, blocks)

	log.Info().
		Str("fileId", fileID).
		Str("fileName", fileName).
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Int("blocks", len(blocks)).
		Msg("reference grid imported")

	return model.ReferenceImportSummary{
		FileID:   fileID,
		FileName: fileName,
		Sheet:    sheet,
		Rows:     grid.Rows(),
		Cols:     grid.Cols(),
		Blocks:   blocks,
	}, nil
}

// ImportRooms 导入房间负荷文件
// 表头固定在第 3 个物理行，缺少房间编号的行计入 Dropped
func (c *Coordinator) ImportRooms(r io.Reader, fileName string) (model.RoomImportSummary, error) {
	fileID, path, err := c.spool(r, fileName)
	if err != nil {
		return model.RoomImportSummary{}, err
	}
	defer os.Remove(path)

	rows, _, err := readRows(path, fileName)
	if err != nil {
		return model.RoomImportSummary{}, err
	}

	records, dropped, err := parser.ParseLoadRows(rows)
	if err != nil {
		return model.RoomImportSummary{}, err
	}
	c.store.SetRooms(fileName, records)

	log.Info().
		Str("fileId", fileID).
		Str("fileName", fileName).
		Int("imported", len(records)).
		Int("dropped", dropped).
		Msg("room loads imported")

	return model.RoomImportSummary{
		FileID:   fileID,
		FileName: fileName,
		Imported: len(records),
		Dropped:  dropped,
	}, nil
}

// spool 把上传流落盘到 uploads 目录
// 落盘文件名用 uuid 加原扩展名，避免覆盖与路径穿越；解析完成后由调用方删除
func (c *Coordinator) spool(r io.Reader, fileName string) (fileID, path string, err error) {
	if err := os.MkdirAll(c.uploadsDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	fileID = uuid.New().String()
	path = filepath.Join(c.uploadsDir, fileID+strings.ToLower(filepath.Ext(fileName)))

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to save upload: %w", err)
	}
	return fileID, path, nil
}

// readRows 按扩展名读取表格内容为行切片
// xlsx 取第一个工作表并返回表名；csv 没有工作表概念，表名为空
func readRows(path, fileName string) (rows [][]string, sheet string, err error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rows, err = readCSVRows(path)
		return rows, "", err
	case ".xlsx", ".xlsm":
		return readWorkbookRows(path)
	default:
		return nil, "", fmt.Errorf("unsupported file type %q, expect .csv or .xlsx", filepath.Ext(fileName))
	}
}

// readCSVRows 读取 CSV 为参差行切片
func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// 参差行原样保留，列对齐交给网格访问层处理
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	// Excel 导出的 CSV 常带 UTF-8 BOM，会污染首个单元格
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	return rows, nil
}

// readWorkbookRows 读取工作簿第一个工作表为行切片
func readWorkbookRows(path string) ([][]string, string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, sheet, nil
}
