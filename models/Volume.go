package models

import (
	"encoding/json"

	"github.com/GrainArc/DigVolume/Volume"
	"gorm.io/datatypes"
)

// VolumeRecord 一次填挖方计算的结果记录
type VolumeRecord struct {
	ID           int64  `gorm:"primary_key;autoIncrement"`
	SurfaceA     string `gorm:"type:varchar(255)"`
	SurfaceB     string `gorm:"type:varchar(255)"`
	Resolution   float64
	Cut          float64
	Fill         float64
	Net          float64
	EmptyOverlap bool
	Warnings     string `gorm:"type:varchar(1024)"`
	DzGrid       datatypes.JSON
	ReportPath   string `gorm:"type:varchar(255)"`
	Date         string `gorm:"type:varchar(255)"`
}

// 差值网格的JSON存储形式，NaN无法进JSON，有效性用掩码单独存
type dzGridData struct {
	GridX []float64   `json:"grid_x"`
	GridY []float64   `json:"grid_y"`
	Dz    [][]float64 `json:"dz"`
	Valid [][]bool    `json:"valid"`
}

// MarshalDzGrid 将差值网格编码为JSON，NaN单元格记为0并在掩码中标记无效
func MarshalDzGrid(result *Volume.Result) (datatypes.JSON, error) {
	data := dzGridData{
		GridX: result.GridX,
		GridY: result.GridY,
		Dz:    make([][]float64, len(result.DzGrid)),
		Valid: make([][]bool, len(result.DzGrid)),
	}
	for i, row := range result.DzGrid {
		dzRow := make([]float64, len(row))
		validRow := make([]bool, len(row))
		for j, v := range row {
			if v == v { // 非NaN
				dzRow[j] = v
				validRow[j] = true
			}
		}
		data.Dz[i] = dzRow
		data.Valid[i] = validRow
	}
	return json.Marshal(data)
}
