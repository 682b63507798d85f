package Volume

import (
	"log"
	"math"

	"github.com/GrainArc/DigVolume/Tin"
)

// InterpolateSurface 将地形面的高程插值到采样点上
// 返回与points等长的高程向量，凸包外或无法插值的位置为NaN
// 点数不足或三角剖分退化时返回全NaN向量并记录日志，插值失败不是致命错误，
// 计算流程依靠另一个面的有效采样继续进行
func InterpolateSurface(surface *Tin.Surface, points []GridPoint) []float64 {
	elevations := make([]float64, len(points))
	allNaN := func() []float64 {
		for i := range elevations {
			elevations[i] = math.NaN()
		}
		return elevations
	}

	if surface == nil || surface.IsEmpty() {
		return allNaN()
	}
	if surface.PointCount() < 3 {
		log.Printf("地形面 %s 只有 %d 个点，线性插值至少需要3个点，跳过", surface.Name, surface.PointCount())
		return allNaN()
	}

	tin := buildTIN(surface)
	if tin == nil || len(tin.Triangles) == 0 {
		// 共线等退化点集无法构成三角网
		log.Printf("地形面 %s 三角剖分退化，无法插值", surface.Name)
		return allNaN()
	}

	for i, p := range points {
		z, err := tin.GetElevationAt(p.X, p.Y)
		if err != nil {
			// 凸包外不外推
			elevations[i] = math.NaN()
		} else {
			elevations[i] = z
		}
	}
	return elevations
}

// buildTIN 构造TIN并把内部数值异常转换为nil返回
func buildTIN(surface *Tin.Surface) (tin *Tin.TIN3D) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("地形面 %s 三角剖分失败: %v", surface.Name, r)
			tin = nil
		}
	}()
	return Tin.CreateTINFromSurface(surface)
}
