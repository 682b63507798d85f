package services

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GrainArc/DigVolume/Tin"
	"github.com/GrainArc/DigVolume/Volume"
	"github.com/GrainArc/DigVolume/models"
)

func TestWriteDzGridCsv(t *testing.T) {
	result := &Volume.Result{
		GridX: []float64{0, 1},
		GridY: []float64{0, 1},
		DzGrid: [][]float64{
			{1.5, math.NaN()},
			{-2.0, 0.5},
		},
	}
	data, err := models.MarshalDzGrid(result)
	if err != nil {
		t.Fatalf("MarshalDzGrid: %v", err)
	}
	record := &models.VolumeRecord{DzGrid: data}

	csvPath := filepath.Join(t.TempDir(), "dz.csv")
	if err := writeDzGridCsv(record, csvPath); err != nil {
		t.Fatalf("writeDzGridCsv: %v", err)
	}

	content, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("读取csv失败: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if lines[0] != "x,y,dz" {
		t.Errorf("表头错误: %q", lines[0])
	}
	// NaN单元格不输出，4个单元只剩3行
	if len(lines) != 4 {
		t.Errorf("期望3行数据, 实际 %d 行", len(lines)-1)
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "NaN") {
			t.Errorf("csv中不应出现NaN: %q", line)
		}
	}
}

func TestWriteDzGridCsvTruncatedMask(t *testing.T) {
	// 掩码比数据矩阵短的损坏记录不能让报告流程崩溃
	raw := `{"grid_x":[0,1],"grid_y":[0,1],"dz":[[1.5,2.5],[3.5,4.5]],"valid":[[true]]}`
	record := &models.VolumeRecord{DzGrid: []byte(raw)}

	csvPath := filepath.Join(t.TempDir(), "dz.csv")
	if err := writeDzGridCsv(record, csvPath); err != nil {
		t.Fatalf("writeDzGridCsv: %v", err)
	}

	content, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("读取csv失败: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	// 掩码只覆盖一个单元格，其余一律按无效跳过
	if len(lines) != 2 {
		t.Errorf("期望1行数据, 实际 %d 行", len(lines)-1)
	}
}

func TestWriteDzGridCsvEmpty(t *testing.T) {
	record := &models.VolumeRecord{}
	csvPath := filepath.Join(t.TempDir(), "dz.csv")
	if err := writeDzGridCsv(record, csvPath); err == nil {
		t.Error("无网格数据应返回错误")
	}
}

func TestExportSurfaceCsv(t *testing.T) {
	surface := Tin.NewSurface("测试面")
	surface.AddPoint(&Tin.Point3D{X: 1, Y: 2, Z: 3, ID: "a"})
	surface.AddPoint(&Tin.Point3D{X: 4, Y: 5, Z: 6, ID: "b"})

	csvPath := filepath.Join(t.TempDir(), "surface.csv")
	if err := ExportSurfaceCsv(surface, csvPath); err != nil {
		t.Fatalf("ExportSurfaceCsv: %v", err)
	}

	content, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("读取csv失败: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("期望表头+2行数据, 实际 %d 行", len(lines))
	}
	if lines[0] != "id,x,y,z" {
		t.Errorf("表头错误: %q", lines[0])
	}
	if lines[1] != "a,1.000,2.000,3.000" {
		t.Errorf("第一行错误: %q", lines[1])
	}
}
