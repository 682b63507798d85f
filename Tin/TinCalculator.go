package Tin

import (
	"fmt"
	"math"
)

// 重心坐标的边界容差，网格点落在三角形公共边上时不能漏判
const baryTolerance = 1e-9

// 判断二维点是否在三角形内部（基于重心坐标）
func pointInTriangle(px, py float64, t *Triangle3D) bool {
	x1, y1 := t.P1.X, t.P1.Y
	x2, y2 := t.P2.X, t.P2.Y
	x3, y3 := t.P3.X, t.P3.Y

	// 计算重心坐标
	denominator := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(denominator) < 1e-10 {
		return false // 三角形退化
	}

	a := ((y2-y3)*(px-x3) + (x3-x2)*(py-y3)) / denominator
	b := ((y3-y1)*(px-x3) + (x1-x3)*(py-y3)) / denominator
	c := 1 - a - b

	// 点在三角形内当且仅当所有重心坐标都非负
	return a >= -baryTolerance && b >= -baryTolerance && c >= -baryTolerance
}

// 使用重心坐标在三角形内插值高程
func interpolateElevationInTriangle(px, py float64, t *Triangle3D) float64 {
	x1, y1, z1 := t.P1.X, t.P1.Y, t.P1.Z
	x2, y2, z2 := t.P2.X, t.P2.Y, t.P2.Z
	x3, y3, z3 := t.P3.X, t.P3.Y, t.P3.Z

	// 计算重心坐标
	denominator := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(denominator) < 1e-10 {
		// 三角形退化，返回平均高程
		return (z1 + z2 + z3) / 3.0
	}

	a := ((y2-y3)*(px-x3) + (x3-x2)*(py-y3)) / denominator
	b := ((y3-y1)*(px-x3) + (x1-x3)*(py-y3)) / denominator
	c := 1 - a - b

	// 使用重心坐标插值高程
	return a*z1 + b*z2 + c*z3
}

// GetElevationAt 获取二维点在TIN上的投影高程
func (tin *TIN3D) GetElevationAt(x, y float64) (float64, error) {
	// 遍历所有三角形，找到包含该点的三角形
	for _, triangle := range tin.Triangles {
		if pointInTriangle(x, y, triangle) {
			elevation := interpolateElevationInTriangle(x, y, triangle)
			return elevation, nil
		}
	}

	// 点在凸包外部，没有可用的三角形
	return 0, fmt.Errorf("point (%.2f, %.2f) is not inside any triangle of the TIN", x, y)
}

// GetElevationsAt 批量获取多个点的高程，凸包外的点返回NaN
func (tin *TIN3D) GetElevationsAt(points []Point2D) []float64 {
	elevations := make([]float64, len(points))

	for i, point := range points {
		elevation, err := tin.GetElevationAt(point.X, point.Y)
		if err != nil {
			elevations[i] = math.NaN()
		} else {
			elevations[i] = elevation
		}
	}

	return elevations
}

// GetElevationGrid 获取指定区域内的高程网格，TIN外部的格点为NaN
func (tin *TIN3D) GetElevationGrid(minX, minY, maxX, maxY float64, stepX, stepY float64) ([][]float64, error) {
	if stepX <= 0 || stepY <= 0 {
		return nil, fmt.Errorf("step size must be positive")
	}

	// 计算网格尺寸
	nx := int(math.Ceil((maxX-minX)/stepX)) + 1
	ny := int(math.Ceil((maxY-minY)/stepY)) + 1

	// 初始化网格
	grid := make([][]float64, ny)
	for i := range grid {
		grid[i] = make([]float64, nx)
	}

	// 填充网格
	for i := 0; i < ny; i++ {
		y := minY + float64(i)*stepY
		for j := 0; j < nx; j++ {
			x := minX + float64(j)*stepX

			elevation, err := tin.GetElevationAt(x, y)
			if err != nil {
				grid[i][j] = math.NaN()
			} else {
				grid[i][j] = elevation
			}
		}
	}

	return grid, nil
}

// VolumeToElevation 计算TIN与水平参考面之间的有符号棱柱体积
// 正值表示TIN高于参考面（需开挖），负值表示低于参考面（需回填）
func (tin *TIN3D) VolumeToElevation(elevation float64) float64 {
	var volume float64
	for _, t := range tin.Triangles {
		avgZ := (t.P1.Z + t.P2.Z + t.P3.Z) / 3.0
		volume += (avgZ - elevation) * t.Area2D()
	}
	return volume
}

// GetSlopeAndAspect 计算指定点所在三角面的坡度和坡向
// TIN在单个三角形内是平面，梯度直接由三角形法向量导出
// 坡度为弧度，坡向为从北方向顺时针的弧度，平地坡向为0
func (tin *TIN3D) GetSlopeAndAspect(x, y float64) (slope, aspect float64, err error) {
	for _, triangle := range tin.Triangles {
		if !pointInTriangle(x, y, triangle) {
			continue
		}
		nx, ny, nz := triangle.Normal()
		// 法向量统一取朝上方向
		if nz < 0 {
			nx, ny, nz = -nx, -ny, -nz
		}
		if nz == 0 {
			// 垂直三角面
			return math.Pi / 2, 0, nil
		}
		dzdx := -nx / nz
		dzdy := -ny / nz

		slope = math.Atan(math.Sqrt(dzdx*dzdx + dzdy*dzdy))
		if dzdx == 0 && dzdy == 0 {
			return slope, 0, nil
		}
		aspect = math.Atan2(dzdx, dzdy)
		if aspect < 0 {
			aspect += 2 * math.Pi
		}
		return slope, aspect, nil
	}
	return 0, 0, fmt.Errorf("point (%.2f, %.2f) is not inside any triangle of the TIN", x, y)
}
