package Volume

import (
	"errors"
	"math"
	"testing"

	"github.com/GrainArc/DigVolume/Tin"
)

func TestComputeSliceVolumesUniformFill(t *testing.T) {
	// 9点平面从0抬升到3，厚度1：每个切片每点贡献1
	a := makeGridSurface("现状面", 10, 5, func(x, y float64) float64 { return 0 })
	b := makeGridSurface("设计面", 10, 5, func(x, y float64) float64 { return 3 })

	slices, err := ComputeSliceVolumes(a, b, 1)
	if err != nil {
		t.Fatalf("切片统计失败: %v", err)
	}
	if len(slices) != 3 {
		t.Fatalf("高程0到3按厚度1应有3个切片, got %d", len(slices))
	}
	for i, s := range slices {
		if math.Abs(s.Bottom-float64(i)) > 1e-9 || math.Abs(s.Top-float64(i+1)) > 1e-9 {
			t.Errorf("切片%d范围错误: [%f,%f)", i, s.Bottom, s.Top)
		}
		if math.Abs(s.Fill-9) > 1e-9 {
			t.Errorf("切片%d填方应为9（9个点各1）, got %f", i, s.Fill)
		}
		if s.Cut != 0 {
			t.Errorf("切片%d不应有挖方, got %f", i, s.Cut)
		}
	}
}

func TestComputeSliceVolumesSwapMovesToCut(t *testing.T) {
	a := makeGridSurface("现状面", 10, 5, func(x, y float64) float64 { return 0 })
	b := makeGridSurface("设计面", 10, 5, func(x, y float64) float64 { return 3 })

	slices, err := ComputeSliceVolumes(b, a, 1)
	if err != nil {
		t.Fatalf("切片统计失败: %v", err)
	}
	for i, s := range slices {
		if math.Abs(s.Cut-9) > 1e-9 || s.Fill != 0 {
			t.Errorf("交换后切片%d应全为挖方, got cut=%f fill=%f", i, s.Cut, s.Fill)
		}
	}
}

func TestComputeSliceVolumesPartialTopSlice(t *testing.T) {
	// 抬升1.5按厚度1切片：第一层满1，顶层只剩0.5
	a := makeGridSurface("现状面", 10, 5, func(x, y float64) float64 { return 0 })
	b := makeGridSurface("设计面", 10, 5, func(x, y float64) float64 { return 1.5 })

	slices, err := ComputeSliceVolumes(a, b, 1)
	if err != nil {
		t.Fatalf("切片统计失败: %v", err)
	}
	if len(slices) != 2 {
		t.Fatalf("应有2个切片, got %d", len(slices))
	}
	if math.Abs(slices[0].Fill-9) > 1e-9 {
		t.Errorf("底层切片填方应为9, got %f", slices[0].Fill)
	}
	if math.Abs(slices[1].Fill-4.5) > 1e-9 {
		t.Errorf("顶层切片填方应为4.5, got %f", slices[1].Fill)
	}
}

func TestComputeSliceVolumesErrors(t *testing.T) {
	s := flatSurface("现状面", 10, 0)
	empty := Tin.NewSurface("空面")

	if _, err := ComputeSliceVolumes(nil, s, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil面应返回ErrInvalidInput, got %v", err)
	}
	if _, err := ComputeSliceVolumes(s, empty, 1); !errors.Is(err, ErrEmptyData) {
		t.Errorf("空面应返回ErrEmptyData, got %v", err)
	}
	if _, err := ComputeSliceVolumes(s, s, 0); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("厚度0应返回ErrInvalidResolution, got %v", err)
	}
}
