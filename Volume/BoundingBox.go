package Volume

import (
	"fmt"
	"math"

	"github.com/GrainArc/DigVolume/Tin"
)

// CombinedBoundingBox 计算覆盖两个地形面的联合平面范围
// 允许其中一个面为空，此时范围为另一个面的范围；两个都为空返回ErrEmptyData
func CombinedBoundingBox(surfaceA, surfaceB *Tin.Surface) (*BoundingBox2D, error) {
	if surfaceA == nil || surfaceB == nil {
		return nil, fmt.Errorf("%w: 地形面不能为nil", ErrInvalidInput)
	}
	if surfaceA.IsEmpty() && surfaceB.IsEmpty() {
		return nil, ErrEmptyData
	}

	box := &BoundingBox2D{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, s := range []*Tin.Surface{surfaceA, surfaceB} {
		if s.IsEmpty() {
			continue
		}
		minX, minY, maxX, maxY, err := s.Extent()
		if err != nil {
			return nil, err
		}
		box.MinX = math.Min(box.MinX, minX)
		box.MinY = math.Min(box.MinY, minY)
		box.MaxX = math.Max(box.MaxX, maxX)
		box.MaxY = math.Max(box.MaxY, maxY)
	}
	return box, nil
}
