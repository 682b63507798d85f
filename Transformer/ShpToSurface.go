package Transformer

import (
	"fmt"

	"gitee.com/LJ_COOL/go-shp"
	"github.com/GrainArc/DigVolume/Tin"
)

// ShpToPoints 从shapefile中提取三维点
// PointZ/MultiPointZ直接取Z值，普通Point类型没有高程信息则报错
func ShpToPoints(shpfileFilePath string) ([]*Tin.Point3D, error) {
	// 打开 shapefile 文件
	shape, err := shp.Open(shpfileFilePath)
	if err != nil {
		return nil, fmt.Errorf("打开shapefile失败: %w", err)
	}
	defer shape.Close()

	var points []*Tin.Point3D

	// 遍历 shapefile 中的所有要素
	for shape.Next() {
		_, p := shape.Shape()

		switch s := p.(type) {
		case *shp.PointZ:
			points = append(points, &Tin.Point3D{X: s.X, Y: s.Y, Z: s.Z})

		case *shp.MultiPointZ:
			for i, pt := range s.Points {
				z := 0.0
				if i < len(s.ZArray) {
					z = s.ZArray[i]
				}
				points = append(points, &Tin.Point3D{X: pt.X, Y: pt.Y, Z: z})
			}

		case *shp.PolyLineZ:
			// 带高程的特征线顶点也能参与建面
			for i, pt := range s.Points {
				z := 0.0
				if i < len(s.ZArray) {
					z = s.ZArray[i]
				}
				points = append(points, &Tin.Point3D{X: pt.X, Y: pt.Y, Z: z})
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("shapefile中没有带高程的点数据，需要PointZ/PolyLineZ类型")
	}
	return points, nil
}
