package Volume

import (
	"fmt"
	"sort"

	"github.com/GrainArc/DigVolume/Tin"
)

// SliceResult 一个高程切片内的填挖量
type SliceResult struct {
	Bottom float64 `json:"z_bottom"`
	Top    float64 `json:"z_top"`
	Cut    float64 `json:"cut"`
	Fill   float64 `json:"fill"`
}

// ComputeSliceVolumes 按高程切片统计两个地形面之间的填挖分布
// 从两个面的最低高程到最高高程按thickness分层，逐层累计每对采样点落入该层的高差
// 两个面的点按(x,y)排序后一一配对，点数不同按较短的一方截断
// dz = 对比面 - 基准面，dz>0计入填方，dz<0计入挖方
func ComputeSliceVolumes(surfaceRef, surfaceDiff *Tin.Surface, thickness float64) ([]SliceResult, error) {
	if surfaceRef == nil || surfaceDiff == nil {
		return nil, fmt.Errorf("%w: 地形面不能为nil", ErrInvalidInput)
	}
	if surfaceRef.IsEmpty() || surfaceDiff.IsEmpty() {
		return nil, ErrEmptyData
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: 切片厚度 %f", ErrInvalidResolution, thickness)
	}

	refMinZ, refMaxZ, err := surfaceRef.ZRange()
	if err != nil {
		return nil, err
	}
	diffMinZ, diffMaxZ, err := surfaceDiff.ZRange()
	if err != nil {
		return nil, err
	}
	zMin := refMinZ
	if diffMinZ < zMin {
		zMin = diffMinZ
	}
	zMax := refMaxZ
	if diffMaxZ > zMax {
		zMax = diffMaxZ
	}

	refPts := sortPointsXY(surfaceRef.SortedPoints())
	diffPts := sortPointsXY(surfaceDiff.SortedPoints())
	n := len(refPts)
	if len(diffPts) < n {
		n = len(diffPts)
	}

	var slices []SliceResult
	for z := zMin; z < zMax; z += thickness {
		zTop := z + thickness
		var cut, fill float64
		for i := 0; i < n; i++ {
			zr := refPts[i].Z
			zd := diffPts[i].Z
			dz := zd - zr
			if dz > 0 {
				var sliceFill float64
				if zr < zTop {
					sliceFill = dz
					if zTop-zr < sliceFill {
						sliceFill = zTop - zr
					}
				}
				if zr < z && zd > z {
					sliceFill -= z - zr
				}
				fill += sliceFill
			} else if dz < 0 {
				dz = -dz
				var sliceCut float64
				if zd < zTop {
					sliceCut = dz
					if zTop-zd < sliceCut {
						sliceCut = zTop - zd
					}
				}
				if zd < z && zr > z {
					sliceCut -= z - zd
				}
				cut += sliceCut
			}
		}
		slices = append(slices, SliceResult{Bottom: z, Top: zTop, Cut: cut, Fill: fill})
	}
	return slices, nil
}

// sortPointsXY 按(x,y)排序，保证两个面的采样点能一一对应
func sortPointsXY(points []*Tin.Point3D) []*Tin.Point3D {
	sorted := make([]*Tin.Point3D, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}
