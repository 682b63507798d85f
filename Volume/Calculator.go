package Volume

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/GrainArc/DigVolume/Tin"
)

// CalculateGridMethod 网格法计算两个地形面之间的填挖方
// 流程：联合范围 -> 采样网格 -> 两次插值 -> 差值聚合
// 面A为现状面，面B为设计面；dz = B - A，dz<0为挖方，dz>0为填方
func CalculateGridMethod(surfaceA, surfaceB *Tin.Surface, resolution float64) (*Result, error) {
	if surfaceA == nil || surfaceB == nil {
		return nil, fmt.Errorf("%w: 地形面不能为nil", ErrInvalidInput)
	}
	if surfaceA.IsEmpty() && surfaceB.IsEmpty() {
		return nil, ErrEmptyData
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidResolution, resolution)
	}

	log.Printf("开始网格法方量计算: %s vs %s, 分辨率 %f", surfaceA.Name, surfaceB.Name, resolution)

	box, err := CombinedBoundingBox(surfaceA, surfaceB)
	if err != nil {
		return nil, err
	}

	grid, err := BuildGrid(box, resolution)
	if err != nil {
		return nil, err
	}
	if len(grid.Points) == 0 {
		log.Printf("采样网格为空，返回零方量")
		return &Result{
			DzGrid:   [][]float64{},
			GridX:    []float64{},
			GridY:    []float64{},
			Warnings: []string{"采样网格为空"},
		}, nil
	}

	// 两个面的插值互不依赖，并发执行
	var elevationsA, elevationsB []float64
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		elevationsA = InterpolateSurface(surfaceA, grid.Points)
	}()
	go func() {
		defer wg.Done()
		elevationsB = InterpolateSurface(surfaceB, grid.Points)
	}()
	wg.Wait()

	return differenceElevations(elevationsA, elevationsB, grid, resolution), nil
}

// differenceElevations 差分两组高程并聚合填挖方
func differenceElevations(elevationsA, elevationsB []float64, grid *Grid, resolution float64) *Result {
	nx := len(grid.GridX)
	ny := len(grid.GridY)
	cellArea := resolution * resolution

	result := &Result{
		GridX:  grid.GridX,
		GridY:  grid.GridY,
		DzGrid: make([][]float64, ny),
	}

	validCount := 0
	var cut, fill float64
	for iy := 0; iy < ny; iy++ {
		row := make([]float64, nx)
		for ix := 0; ix < nx; ix++ {
			i := iy*nx + ix
			zA := elevationsA[i]
			zB := elevationsB[i]
			// 两个面都有有效高程该单元格才参与计算
			if math.IsNaN(zA) || math.IsNaN(zB) {
				row[ix] = math.NaN()
				continue
			}
			dz := zB - zA
			row[ix] = dz
			validCount++
			volume := math.Abs(dz) * cellArea
			if dz < 0 {
				cut += volume
			} else if dz > 0 {
				fill += volume
			}
		}
		result.DzGrid[iy] = row
	}

	if validCount == 0 {
		// 两个面没有空间重叠时属于正常情况，返回零方量并附带警告
		log.Printf("两个地形面没有有效的重叠网格单元")
		result.EmptyOverlap = true
		result.Warnings = append(result.Warnings, "两个地形面没有有效的重叠区域，方量为0")
		return result
	}

	result.Cut = cut
	result.Fill = fill
	result.Net = fill - cut
	log.Printf("方量计算完成: 挖方=%.3f, 填方=%.3f, 净方量=%.3f (有效单元格 %d/%d)",
		result.Cut, result.Fill, result.Net, validCount, nx*ny)
	return result
}
