package models

import (
	"encoding/json"

	"github.com/GrainArc/DigVolume/Tin"
	"gorm.io/datatypes"
)

// SurfaceRecord 入库的地形面
type SurfaceRecord struct {
	ID         int64          `gorm:"primary_key;autoIncrement"`
	Name       string         `gorm:"type:varchar(255);uniqueIndex"`
	SourceFile string         `gorm:"type:varchar(255)"`
	PointCount int
	MinX       float64
	MinY       float64
	MaxX       float64
	MaxY       float64
	Points     datatypes.JSON
	Date       string `gorm:"type:varchar(255)"`
}

// 点的JSON存储形式
type surfacePoint struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// NewSurfaceRecord 将地形面转换为数据库记录
func NewSurfaceRecord(surface *Tin.Surface, sourceFile string, date string) (*SurfaceRecord, error) {
	points := make([]surfacePoint, 0, surface.PointCount())
	for _, p := range surface.SortedPoints() {
		points = append(points, surfacePoint{ID: p.ID, X: p.X, Y: p.Y, Z: p.Z})
	}
	data, err := json.Marshal(points)
	if err != nil {
		return nil, err
	}

	record := &SurfaceRecord{
		Name:       surface.Name,
		SourceFile: sourceFile,
		PointCount: surface.PointCount(),
		Points:     data,
		Date:       date,
	}
	if !surface.IsEmpty() {
		record.MinX, record.MinY, record.MaxX, record.MaxY, _ = surface.Extent()
	}
	return record, nil
}

// ToSurface 从数据库记录恢复地形面
func (r *SurfaceRecord) ToSurface() (*Tin.Surface, error) {
	var points []surfacePoint
	if err := json.Unmarshal(r.Points, &points); err != nil {
		return nil, err
	}
	surface := Tin.NewSurface(r.Name)
	for _, p := range points {
		surface.AddPoint(&Tin.Point3D{X: p.X, Y: p.Y, Z: p.Z, ID: p.ID})
	}
	return surface, nil
}
