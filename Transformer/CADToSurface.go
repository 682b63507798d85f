package Transformer

import (
	"fmt"
	"os"

	"github.com/GrainArc/DigVolume/Tin"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
)

// DxfToPoints 从DXF图形文件中提取三维点
// 采集POINT实体和三维多段线顶点，地形图里的散点高程和特征线都能进来
func DxfToPoints(dxfFilePath string) ([]*Tin.Point3D, error) {
	file, err := os.Open(dxfFilePath)
	if err != nil {
		return nil, fmt.Errorf("打开DXF文件失败: %w", err)
	}
	defer file.Close()

	doc, err := document.DxfDocumentFromStream(file)
	if err != nil {
		return nil, fmt.Errorf("解析DXF文件失败: %w", err)
	}

	var points []*Tin.Point3D

	// 处理实体
	for _, entity := range doc.Entities.Entities {
		if point, ok := entity.(*entities.Point); ok {
			points = append(points, &Tin.Point3D{
				X: point.Location.X,
				Y: point.Location.Y,
				Z: point.Location.Z,
			})
		} else if polyline, ok := entity.(*entities.Polyline); ok {
			for _, vertex := range polyline.Vertices {
				points = append(points, &Tin.Point3D{
					X: vertex.Location.X,
					Y: vertex.Location.Y,
					Z: vertex.Location.Z,
				})
			}
		}
	}

	// 块内的实体也要收集
	for _, block := range doc.Blocks {
		for _, entity := range block.Entities {
			if point, ok := entity.(*entities.Point); ok {
				points = append(points, &Tin.Point3D{
					X: point.Location.X,
					Y: point.Location.Y,
					Z: point.Location.Z,
				})
			} else if polyline, ok := entity.(*entities.Polyline); ok {
				for _, vertex := range polyline.Vertices {
					points = append(points, &Tin.Point3D{
						X: vertex.Location.X,
						Y: vertex.Location.Y,
						Z: vertex.Location.Z,
					})
				}
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("DXF文件中没有可用的三维点")
	}
	return points, nil
}
