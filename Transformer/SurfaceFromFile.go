package Transformer

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/GrainArc/DigVolume/Tin"
)

// 各格式的点提取函数，按扩展名分发
var pointParsers = map[string]func(string) ([]*Tin.Point3D, error){
	".csv":     CsvToPoints,
	".txt":     CsvToPoints,
	".dat":     CsvToPoints,
	".dxf":     DxfToPoints,
	".shp":     ShpToPoints,
	".geojson": GeojsonToPoints,
	".json":    GeojsonToPoints,
}

// SupportedExtensions 返回支持的地形文件扩展名
func SupportedExtensions() []string {
	exts := []string{".xml"}
	for ext := range pointParsers {
		exts = append(exts, ext)
	}
	return exts
}

// SurfaceFromFile 按扩展名分发解析地形文件并构造地形面
// LandXML自带三角网直接恢复，其余格式导入散点后做Delaunay剖分
func SurfaceFromFile(FilePath string, name string) (*Tin.Surface, error) {
	ext := strings.ToLower(filepath.Ext(FilePath))
	if name == "" {
		base := filepath.Base(FilePath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// LandXML格式点和三角网一体，单独处理
	if ext == ".xml" {
		return LandXMLToSurface(FilePath, name)
	}

	parser, ok := pointParsers[ext]
	if !ok {
		return nil, fmt.Errorf("不支持的地形文件格式: %s", ext)
	}

	points, err := parser(FilePath)
	if err != nil {
		return nil, err
	}

	surface := Tin.NewSurface(name)
	for _, p := range points {
		surface.AddPoint(p)
	}

	// 点数足够时预构三角网，方量计算本身只用散点
	if surface.PointCount() >= 3 {
		tin := Tin.CreateTINFromSurface(surface)
		surface.Triangles = tin.Triangles
		log.Printf("地形面 %s 导入完成: %d 个点, %d 个三角形", name, surface.PointCount(), len(surface.Triangles))
	} else {
		log.Printf("地形面 %s 导入完成: %d 个点（不足以构网）", name, surface.PointCount())
	}

	return surface, nil
}
