package Transformer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GrainArc/DigVolume/Tin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeojsonToPoints 从GeoJSON要素集中提取三维点
// 高程优先取要素的z/elevation属性；orb解析时会丢掉坐标的第三个分量，
// 没有高程属性的要素回退到原始coordinates里的z值，两者都没有则跳过
func GeojsonToPoints(FilePath string) ([]*Tin.Point3D, error) {
	data, err := os.ReadFile(FilePath)
	if err != nil {
		return nil, fmt.Errorf("打开GeoJSON文件失败: %w", err)
	}

	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("解析GeoJSON失败: %w", err)
	}
	coordZ := rawCoordinateZ(data, len(featureCollection.Features))

	var points []*Tin.Point3D
	for i, feature := range featureCollection.Features {
		z, hasZ := featureElevation(feature)

		switch geom := feature.Geometry.(type) {
		case orb.Point:
			pz, ok := vertexZ(z, hasZ, coordZ[i], 0)
			if !ok {
				continue
			}
			points = append(points, &Tin.Point3D{X: geom.Lon(), Y: geom.Lat(), Z: pz})
		case orb.MultiPoint:
			for j, pt := range geom {
				pz, ok := vertexZ(z, hasZ, coordZ[i], j)
				if !ok {
					continue
				}
				points = append(points, &Tin.Point3D{X: pt.Lon(), Y: pt.Lat(), Z: pz})
			}
		case orb.LineString:
			// 等高线：高程属性对整条线生效，否则逐顶点取坐标z
			for j, pt := range geom {
				pz, ok := vertexZ(z, hasZ, coordZ[i], j)
				if !ok {
					continue
				}
				points = append(points, &Tin.Point3D{X: pt.Lon(), Y: pt.Lat(), Z: pz})
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("GeoJSON文件中没有带高程的点数据")
	}
	return points, nil
}

// vertexZ 决定一个顶点的高程：属性优先，其次原始坐标第三分量
func vertexZ(propZ float64, hasProp bool, coordZs []float64, vertex int) (float64, bool) {
	if hasProp {
		return propZ, true
	}
	if vertex < len(coordZs) {
		return coordZs[vertex], true
	}
	return 0, false
}

// rawCoordinateZ 从原始JSON里按要素取出每个顶点的第三个坐标分量
// 返回切片与要素一一对应，二维坐标的要素对应空切片
func rawCoordinateZ(data []byte, featureCount int) [][]float64 {
	result := make([][]float64, featureCount)

	var raw struct {
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return result
	}

	for i, f := range raw.Features {
		if i >= featureCount {
			break
		}
		switch f.Geometry.Type {
		case "Point":
			var coords []float64
			if json.Unmarshal(f.Geometry.Coordinates, &coords) == nil && len(coords) >= 3 {
				result[i] = []float64{coords[2]}
			}
		case "MultiPoint", "LineString":
			var coords [][]float64
			if json.Unmarshal(f.Geometry.Coordinates, &coords) != nil {
				continue
			}
			zs := make([]float64, 0, len(coords))
			all := true
			for _, c := range coords {
				if len(c) < 3 {
					all = false
					break
				}
				zs = append(zs, c[2])
			}
			if all {
				result[i] = zs
			}
		}
	}
	return result
}

// featureElevation 从要素属性中取高程
func featureElevation(feature *geojson.Feature) (float64, bool) {
	for _, key := range []string{"z", "Z", "elevation", "ELEVATION", "elev", "height"} {
		if v, ok := feature.Properties[key]; ok {
			switch value := v.(type) {
			case float64:
				return value, true
			case int:
				return float64(value), true
			}
		}
	}
	return 0, false
}
