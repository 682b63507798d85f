package Transformer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/GrainArc/DigVolume/Tin"
)

// csv表头中可识别的坐标列名
var csvColumnNames = map[string]string{
	"x": "x", "east": "x", "easting": "x", "e": "x",
	"y": "y", "north": "y", "northing": "y", "n": "y",
	"z": "z", "elev": "z", "elevation": "z", "height": "z", "h": "z",
}

// CsvToPoints 解析CSV/TXT格式的三维点文件
// 支持带表头（x/y/z、easting/northing/elevation等列名）和不带表头（前三列即x,y,z）两种格式
// 自动检测GBK编码，分隔符支持逗号、制表符和空格
func CsvToPoints(FilePath string) ([]*Tin.Point3D, error) {
	data, err := os.ReadFile(FilePath)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	text := DecodeToUtf8(data)

	delimiter := detectDelimiter(text)
	var rows [][]string
	if delimiter == ' ' {
		// 空格分隔的测量文件可能有连续空格，不能交给csv解析
		for _, line := range strings.Split(text, "\n") {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				rows = append(rows, fields)
			}
		}
	} else {
		reader := csv.NewReader(strings.NewReader(text))
		reader.Comma = delimiter
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		rows, err = reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("解析CSV失败: %w", err)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV文件为空")
	}

	// 列映射：有表头用表头，无表头按前三列
	colX, colY, colZ := 0, 1, 2
	dataRows := rows
	if mapped, ok := mapHeaderColumns(rows[0]); ok {
		colX, colY, colZ = mapped[0], mapped[1], mapped[2]
		dataRows = rows[1:]
	} else if !rowIsNumeric(rows[0]) {
		// 表头无法识别坐标列时跳过首行按默认列序处理
		dataRows = rows[1:]
	}

	var points []*Tin.Point3D
	for i, row := range dataRows {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		maxCol := colX
		if colY > maxCol {
			maxCol = colY
		}
		if colZ > maxCol {
			maxCol = colZ
		}
		if len(row) <= maxCol {
			return nil, fmt.Errorf("第%d行列数不足", i+1)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[colX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[colY]), 64)
		z, err3 := strconv.ParseFloat(strings.TrimSpace(row[colZ]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("第%d行坐标解析失败: %v", i+1, row)
		}
		points = append(points, &Tin.Point3D{X: x, Y: y, Z: z})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("CSV文件中没有有效的点数据")
	}
	return points, nil
}

// mapHeaderColumns 尝试从表头识别x/y/z三列，全部识别成功才生效
func mapHeaderColumns(header []string) ([3]int, bool) {
	var mapped [3]int
	found := [3]bool{}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		switch csvColumnNames[key] {
		case "x":
			if !found[0] {
				mapped[0], found[0] = i, true
			}
		case "y":
			if !found[1] {
				mapped[1], found[1] = i, true
			}
		case "z":
			if !found[2] {
				mapped[2], found[2] = i, true
			}
		}
	}
	return mapped, found[0] && found[1] && found[2]
}

func rowIsNumeric(row []string) bool {
	if len(row) < 3 {
		return false
	}
	for _, v := range row[:3] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return false
		}
	}
	return true
}

// detectDelimiter 从首行推断分隔符
func detectDelimiter(text string) rune {
	firstLine := text
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		firstLine = text[:idx]
	}
	switch {
	case strings.Contains(firstLine, "\t"):
		return '\t'
	case strings.Contains(firstLine, ","):
		return ','
	default:
		return ' '
	}
}
