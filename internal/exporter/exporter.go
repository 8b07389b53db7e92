package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"ventcalc/internal/model"
	"ventcalc/internal/report"
)

// ResultColumns 成功行的导出列，名称与顺序是对外兼容约定，不可改动
var ResultColumns = []string{
	"ROOM NUMBER",
	"ARCH ROOM NAME",
	"Standard Used",
	"Min Total ACH",
	"Required Vent CFM",
	"Cooling Load CFM",
	"Design Supply CFM",
	"Return CFM",
	"Exhaust CFM",
	"Pressure",
}

// ErrorColumn 存在失败行时追加在末尾的列
const ErrorColumn = "Error"

// 工作簿导出的工作表名
const (
	SheetResults = "计算结果"
	SheetSummary = "汇总指标"
)

// WriteCSV 把计算结果写为 CSV
// 固定十列；任何一行失败时整表追加 Error 列，失败行的风量列留空
func WriteCSV(w io.Writer, results []model.RoomResult) error {
	writer := csv.NewWriter(w)

	withError := hasErrors(results)
	if err := writer.Write(headerRow(withError)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write(textRow(r, withError)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// BuildWorkbook 把计算结果与汇总指标写为工作簿
// 结果表列布局与 CSV 一致但数值保持数值类型；progress 可为 nil
func BuildWorkbook(results []model.RoomResult, groups []report.IndicatorGroup, progress func(ProgressEvent)) (*excelize.File, error) {
	reportProgress(progress, 0, StagePrepare)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetResults); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename results sheet: %w", err)
	}

	if err := writeResultsSheet(f, results, progress); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(progress, 70, StageSummary)
	if err := writeSummarySheet(f, groups); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	reportProgress(progress, 100, StageDone)
	return f, nil
}

// writeResultsSheet 写入结果行，行进度映射到 10%-70% 区间
func writeResultsSheet(f *excelize.File, results []model.RoomResult, progress func(ProgressEvent)) error {
	withError := hasErrors(results)

	header := headerRow(withError)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := setRow(f, SheetResults, 1, cells); err != nil {
		return err
	}

	reportProgress(progress, 10, StageRows)
	for i, r := range results {
		if err := setRow(f, SheetResults, i+2, valueRow(r, withError)); err != nil {
			return err
		}
		if len(results) > 0 {
			reportProgress(progress, 10+60*(i+1)/len(results), StageRows)
		}
	}
	return nil
}

// writeSummarySheet 写入指标汇总表：分组名只在组内首行出现
func writeSummarySheet(f *excelize.File, groups []report.IndicatorGroup) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := setRow(f, SheetSummary, 1, []any{"指标分组", "指标", "数值", "单位"}); err != nil {
		return err
	}

	row := 2
	for _, g := range groups {
		for i, ind := range g.Indicators {
			groupName := ""
			if i == 0 {
				groupName = g.Name
			}
			if err := setRow(f, SheetSummary, row, []any{groupName, ind.Name, ind.Value, ind.Unit}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// setRow 写入一整行，列号从 1 起
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func hasErrors(results []model.RoomResult) bool {
	for _, r := range results {
		if r.Error != "" {
			return true
		}
	}
	return false
}

func headerRow(withError bool) []string {
	if !withError {
		return ResultColumns
	}
	header := make([]string, 0, len(ResultColumns)+1)
	header = append(header, ResultColumns...)
	return append(header, ErrorColumn)
}

// textRow CSV 行：数值按最短十进制表示，失败行风量列留空
func textRow(r model.RoomResult, withError bool) []string {
	row := make([]string, 0, len(ResultColumns)+1)
	row = append(row, r.RoomNumber, r.RoomName)
	if r.Airflow != nil {
		a := r.Airflow
		row = append(row,
			a.StandardUsed,
			formatNumber(a.MinTotalACH),
			formatNumber(a.RequiredVentCFM),
			formatNumber(a.CoolingLoadCFM),
			formatNumber(a.DesignSupplyCFM),
			formatNumber(a.ReturnCFM),
			formatNumber(a.ExhaustCFM),
			a.Pressure,
		)
	} else {
		row = append(row, "", "", "", "", "", "", "", "")
	}
	if withError {
		row = append(row, r.Error)
	}
	return row
}

// valueRow 工作簿行：数值列写 float64，Excel 中保持数值类型
func valueRow(r model.RoomResult, withError bool) []any {
	row := make([]any, 0, len(ResultColumns)+1)
	row = append(row, r.RoomNumber, r.RoomName)
	if r.Airflow != nil {
		a := r.Airflow
		row = append(row,
			a.StandardUsed,
			a.MinTotalACH,
			a.RequiredVentCFM,
			a.CoolingLoadCFM,
			a.DesignSupplyCFM,
			a.ReturnCFM,
			a.ExhaustCFM,
			a.Pressure,
		)
	} else {
		row = append(row, "", "", "", "", "", "", "", "")
	}
	if withError {
		row = append(row, r.Error)
	}
	return row
}

// formatNumber 最短十进制表示，整数值不带小数点
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
