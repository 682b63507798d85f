package Volume

import (
	"errors"
)

// 填挖方计算的结构性错误，调用方可用errors.Is区分
var (
	// ErrInvalidInput 输入不是有效的地形面
	ErrInvalidInput = errors.New("输入必须是有效的地形面对象")
	// ErrEmptyData 两个地形面都没有点数据
	ErrEmptyData = errors.New("两个地形面都为空，无法计算填挖方")
	// ErrInvalidResolution 网格分辨率必须为正数
	ErrInvalidResolution = errors.New("网格分辨率必须为正数")
)

// BoundingBox2D 两个地形面的联合平面范围
type BoundingBox2D struct {
	MinX, MinY, MaxX, MaxY float64
}

// GridPoint 展平后的一个采样点
type GridPoint struct {
	X, Y float64
}

// Grid 公共采样网格
// 展平顺序为行优先：y变化最慢，index = iy*len(GridX) + ix
// 该顺序与DzGrid的重构方式一一对应，两次插值调用必须使用同一份Points
type Grid struct {
	GridX  []float64
	GridY  []float64
	Points []GridPoint
}

// Result 填挖方计算结果
// DzGrid为高程差矩阵（面B减面A），尺寸为 len(GridY) x len(GridX)
// 任一地形面插值无效的单元格以NaN标记，绝不以0代替，否则会低估方量
type Result struct {
	Cut    float64     `json:"cut"`
	Fill   float64     `json:"fill"`
	Net    float64     `json:"net"`
	DzGrid [][]float64 `json:"dz_grid"`
	GridX  []float64   `json:"grid_x"`
	GridY  []float64   `json:"grid_y"`
	// EmptyOverlap 表示两个面没有有效重叠区域，方量为0是"无重叠"而非"无差异"
	EmptyOverlap bool     `json:"empty_overlap"`
	Warnings     []string `json:"warnings,omitempty"`
}
