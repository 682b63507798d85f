package Volume

import (
	"errors"
	"math"
	"testing"

	"github.com/GrainArc/DigVolume/Tin"
)

// makeGridSurface 构造 size x size 范围内等间距点阵的平面地形面
func makeGridSurface(name string, size float64, step float64, z func(x, y float64) float64) *Tin.Surface {
	s := Tin.NewSurface(name)
	n := 0
	for y := 0.0; y <= size; y += step {
		for x := 0.0; x <= size; x += step {
			p := &Tin.Point3D{X: x, Y: y, Z: z(x, y)}
			p.ID = paddedID(n)
			s.AddPoint(p)
			n++
		}
	}
	return s
}

func paddedID(n int) string {
	// 固定宽度保证字符串排序与插入顺序一致
	id := []byte{'p', '0', '0', '0', '0'}
	for i := 4; i >= 1 && n > 0; i-- {
		id[i] = byte('0' + n%10)
		n /= 10
	}
	return string(id)
}

func flatSurface(name string, size, elevation float64) *Tin.Surface {
	return makeGridSurface(name, size, size/2, func(x, y float64) float64 { return elevation })
}

func TestCalculateGridMethodIdentity(t *testing.T) {
	s := makeGridSurface("现状面", 10, 2, func(x, y float64) float64 { return x*0.5 + y*0.3 })
	result, err := CalculateGridMethod(s, s, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if result.Cut != 0 || result.Fill != 0 || result.Net != 0 {
		t.Errorf("同一地形面自比较应为零方量, got cut=%f fill=%f net=%f", result.Cut, result.Fill, result.Net)
	}
	if result.EmptyOverlap {
		t.Error("同一地形面自比较不应报告无重叠")
	}
}

func TestCalculateGridMethodUniformOffset(t *testing.T) {
	const h = 2.0
	a := makeGridSurface("现状面", 10, 2, func(x, y float64) float64 { return 5 })
	b := makeGridSurface("设计面", 10, 2, func(x, y float64) float64 { return 5 + h })

	result, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if result.Cut != 0 {
		t.Errorf("整体抬高不应有挖方, got %f", result.Cut)
	}
	// 11x11个采样点全部落在凸包内，每个单元格体积 1*1*h
	want := 121 * h
	if math.Abs(result.Fill-want) > 1e-6 {
		t.Errorf("填方应为 %f, got %f", want, result.Fill)
	}
	if math.Abs(result.Net-result.Fill) > 1e-9 {
		t.Errorf("净方量应等于填方, net=%f fill=%f", result.Net, result.Fill)
	}
}

func TestCalculateGridMethodSignConvention(t *testing.T) {
	a := makeGridSurface("现状面", 10, 2, func(x, y float64) float64 { return x * 0.1 })
	b := makeGridSurface("设计面", 10, 2, func(x, y float64) float64 { return 1 + x*0.05 })

	r1, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	r2, err := CalculateGridMethod(b, a, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if math.Abs(r1.Net+r2.Net) > 1e-9 {
		t.Errorf("交换两面净方量应取反: %f vs %f", r1.Net, r2.Net)
	}
	if math.Abs(r1.Cut-r2.Fill) > 1e-9 || math.Abs(r1.Fill-r2.Cut) > 1e-9 {
		t.Errorf("交换两面挖填方应互换: cut=%f/%f fill=%f/%f", r1.Cut, r2.Cut, r1.Fill, r2.Fill)
	}
}

func TestCalculateGridMethodDisjointSurfaces(t *testing.T) {
	a := flatSurface("现状面", 10, 0)
	b := Tin.NewSurface("设计面")
	n := 0
	for y := 0.0; y <= 10; y += 5 {
		for x := 100.0; x <= 110; x += 5 {
			p := &Tin.Point3D{X: x, Y: y, Z: 3, ID: paddedID(n)}
			b.AddPoint(p)
			n++
		}
	}

	result, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if !result.EmptyOverlap {
		t.Error("不重叠的两个面应报告EmptyOverlap")
	}
	if result.Cut != 0 || result.Fill != 0 || result.Net != 0 {
		t.Errorf("不重叠应为零方量, got cut=%f fill=%f net=%f", result.Cut, result.Fill, result.Net)
	}
	for _, row := range result.DzGrid {
		for _, v := range row {
			if !math.IsNaN(v) {
				t.Fatalf("不重叠时DzGrid应全为NaN, got %f", v)
			}
		}
	}
}

func TestCalculateGridMethodDegenerateSurface(t *testing.T) {
	// 少于3个点的面无法插值，所有单元格都无效
	a := Tin.NewSurface("现状面")
	a.AddPoint(&Tin.Point3D{X: 0, Y: 0, Z: 0, ID: "p1"})
	a.AddPoint(&Tin.Point3D{X: 10, Y: 10, Z: 1, ID: "p2"})
	b := flatSurface("设计面", 10, 2)

	result, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("退化输入不应报错: %v", err)
	}
	if !result.EmptyOverlap {
		t.Error("单面退化时应报告EmptyOverlap")
	}
	for _, row := range result.DzGrid {
		for _, v := range row {
			if !math.IsNaN(v) {
				t.Fatalf("单面退化时DzGrid应全为NaN, got %f", v)
			}
		}
	}
}

func TestCalculateGridMethodErrors(t *testing.T) {
	empty1 := Tin.NewSurface("空面1")
	empty2 := Tin.NewSurface("空面2")
	if _, err := CalculateGridMethod(empty1, empty2, 1); !errors.Is(err, ErrEmptyData) {
		t.Errorf("两面皆空应返回ErrEmptyData, got %v", err)
	}

	s := flatSurface("现状面", 10, 0)
	if _, err := CalculateGridMethod(s, s, 0); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("零分辨率应返回ErrInvalidResolution, got %v", err)
	}
	if _, err := CalculateGridMethod(s, s, -1); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("负分辨率应返回ErrInvalidResolution, got %v", err)
	}
	if _, err := CalculateGridMethod(nil, s, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil输入应返回ErrInvalidInput, got %v", err)
	}
}

func TestCalculateGridMethodGridShape(t *testing.T) {
	a := makeGridSurface("现状面", 7, 1, func(x, y float64) float64 { return 1 })
	b := makeGridSurface("设计面", 7, 1, func(x, y float64) float64 { return 2 })

	result, err := CalculateGridMethod(a, b, 0.7)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if len(result.DzGrid) != len(result.GridY) {
		t.Errorf("DzGrid行数 %d 应等于GridY长度 %d", len(result.DzGrid), len(result.GridY))
	}
	for _, row := range result.DzGrid {
		if len(row) != len(result.GridX) {
			t.Errorf("DzGrid列数 %d 应等于GridX长度 %d", len(row), len(result.GridX))
		}
	}
}

func TestCalculateGridMethodDeterminism(t *testing.T) {
	a := makeGridSurface("现状面", 10, 2, func(x, y float64) float64 { return math.Sin(x) + y*0.2 })
	b := makeGridSurface("设计面", 10, 2, func(x, y float64) float64 { return math.Cos(y) })

	r1, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	r2, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if r1.Cut != r2.Cut || r1.Fill != r2.Fill || r1.Net != r2.Net {
		t.Errorf("相同输入两次计算结果不一致: %+v vs %+v", r1, r2)
	}
	for iy := range r1.DzGrid {
		for ix := range r1.DzGrid[iy] {
			v1, v2 := r1.DzGrid[iy][ix], r2.DzGrid[iy][ix]
			if v1 != v2 && !(math.IsNaN(v1) && math.IsNaN(v2)) {
				t.Fatalf("DzGrid[%d][%d]不一致: %f vs %f", iy, ix, v1, v2)
			}
		}
	}
}

func TestCalculateGridMethodFlatSquareScenario(t *testing.T) {
	// 10x10正方形的4个角点，现状面z=0，设计面z=2，分辨率1
	a := Tin.NewSurface("现状面")
	b := Tin.NewSurface("设计面")
	corners := [][2]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	for i, c := range corners {
		a.AddPoint(&Tin.Point3D{X: c[0], Y: c[1], Z: 0, ID: paddedID(i)})
		b.AddPoint(&Tin.Point3D{X: c[0], Y: c[1], Z: 2, ID: paddedID(i)})
	}

	result, err := CalculateGridMethod(a, b, 1)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if result.Cut != 0 {
		t.Errorf("挖方应为0, got %f", result.Cut)
	}
	// 理论方量200，网格法在边界上最多多算一圈单元格
	if result.Fill < 190 || result.Fill > 245 {
		t.Errorf("填方应约为200（含边界离散误差）, got %f", result.Fill)
	}
	if math.Abs(result.Net-result.Fill) > 1e-9 {
		t.Errorf("净方量应等于填方, got net=%f fill=%f", result.Net, result.Fill)
	}
}
