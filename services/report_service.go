package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gitee.com/gooffice/gooffice/document"
	"github.com/GrainArc/DigVolume/Tin"
	"github.com/GrainArc/DigVolume/WordGenerator"
	"github.com/GrainArc/DigVolume/config"
	"github.com/GrainArc/DigVolume/methods"
	"github.com/GrainArc/DigVolume/models"
	"github.com/google/uuid"
)

// 差值网格在数据库中的JSON形式
type dzGridPayload struct {
	GridX []float64   `json:"grid_x"`
	GridY []float64   `json:"grid_y"`
	Dz    [][]float64 `json:"dz"`
	Valid [][]bool    `json:"valid"`
}

// GenerateVolumeReport 生成填挖方计算报告
// 输出目录下包含word报告与差值网格csv，打包为zip后返回zip路径与任务id
func GenerateVolumeReport(record *models.VolumeRecord) (string, string, error) {
	taskid := uuid.New().String()
	outDir := filepath.Join(config.Download, taskid)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	docPath := filepath.Join(outDir, "填挖方计算报告.docx")
	if err := buildReportDoc(record, docPath); err != nil {
		return "", "", err
	}

	csvPath := filepath.Join(outDir, "差值网格.csv")
	if err := writeDzGridCsv(record, csvPath); err != nil {
		// 网格数据缺失不影响报告主体
		os.Remove(csvPath)
	}

	zipPath := filepath.Join(config.Download, taskid+".zip")
	if err := methods.ZipFolderTo(outDir, zipPath); err != nil {
		return "", "", fmt.Errorf("打包成果失败: %w", err)
	}
	return zipPath, taskid, nil
}

// buildReportDoc 构建word报告
func buildReportDoc(record *models.VolumeRecord, docPath string) error {
	doc := document.New()
	defer doc.Close()

	WordGenerator.AddHeading1(doc, "填挖方计算报告")
	WordGenerator.AddText(doc, "生成时间："+record.Date, false)

	WordGenerator.AddHeading2(doc, "一、计算参数")
	WordGenerator.OutVolumeTable(doc, []WordGenerator.VolumeRow{
		{Name: "基准面", Value: record.SurfaceA},
		{Name: "对比面", Value: record.SurfaceB},
		{Name: "网格分辨率", Value: fmt.Sprintf("%gm", record.Resolution)},
	})

	WordGenerator.AddHeading2(doc, "二、计算成果")
	WordGenerator.OutVolumeTable(doc, []WordGenerator.VolumeRow{
		{Name: "挖方量", Value: WordGenerator.FormatVolume(record.Cut)},
		{Name: "填方量", Value: WordGenerator.FormatVolume(record.Fill)},
		{Name: "净方量（填-挖）", Value: WordGenerator.FormatVolume(record.Net)},
	})

	if record.EmptyOverlap {
		WordGenerator.AddTextBlod(doc, "注意：两个地形面没有有效的重叠区域，方量为0。", false)
	}
	if record.Warnings != "" {
		WordGenerator.AddText(doc, "警告信息："+record.Warnings, false)
	}

	if err := doc.SaveToFile(docPath); err != nil {
		return fmt.Errorf("保存报告失败: %w", err)
	}
	return nil
}

// writeDzGridCsv 将差值网格导出为csv，只输出有效单元
func writeDzGridCsv(record *models.VolumeRecord, csvPath string) error {
	if len(record.DzGrid) == 0 {
		return fmt.Errorf("无差值网格数据")
	}
	var payload dzGridPayload
	if err := json.Unmarshal(record.DzGrid, &payload); err != nil {
		return fmt.Errorf("解析差值网格失败: %w", err)
	}

	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"x", "y", "dz"}); err != nil {
		return err
	}
	for iy, y := range payload.GridY {
		if iy >= len(payload.Dz) || iy >= len(payload.Valid) {
			break
		}
		for ix, x := range payload.GridX {
			// 有效性掩码和数据矩阵可能被截断，越界一律视为无效
			if ix >= len(payload.Dz[iy]) || ix >= len(payload.Valid[iy]) || !payload.Valid[iy][ix] {
				continue
			}
			rowData := []string{
				strconv.FormatFloat(x, 'f', 3, 64),
				strconv.FormatFloat(y, 'f', 3, 64),
				strconv.FormatFloat(payload.Dz[iy][ix], 'f', 3, 64),
			}
			if err := writer.Write(rowData); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportSurfaceCsv 将地形面点位导出为csv
func ExportSurfaceCsv(surface *Tin.Surface, csvPath string) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range surface.SortedPoints() {
		rowData := []string{
			p.ID,
			strconv.FormatFloat(p.X, 'f', 3, 64),
			strconv.FormatFloat(p.Y, 'f', 3, 64),
			strconv.FormatFloat(p.Z, 'f', 3, 64),
		}
		if err := writer.Write(rowData); err != nil {
			return err
		}
	}
	return nil
}
