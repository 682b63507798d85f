package Tin

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// Point3D 表示一个三维点
type Point3D struct {
	X, Y, Z float64
	ID      string
}

// Point2D 表示一个二维点
type Point2D struct {
	X, Y float64
	ID   string
}

// Triangle3D 表示一个三维三角形
type Triangle3D struct {
	P1, P2, P3 *Point3D
	ID         int
}

// Edge3D 表示一条三维边
type Edge3D struct {
	P1, P2 *Point3D
}

// TIN3D 三维三角不规则网络
type TIN3D struct {
	Points    []*Point3D
	Triangles []*Triangle3D
}

// Surface 表示一个命名地形面，点集以点号为键，三角网可选
type Surface struct {
	Name      string
	Points    map[string]*Point3D
	Triangles []*Triangle3D
}

// NewSurface 创建一个空的地形面
func NewSurface(name string) *Surface {
	return &Surface{
		Name:   name,
		Points: make(map[string]*Point3D),
	}
}

// AddPoint 向地形面添加一个点，点号为空时自动生成uuid
func (s *Surface) AddPoint(p *Point3D) *Point3D {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.Points[p.ID] = p
	return p
}

// AddXYZ 以坐标方式添加点
func (s *Surface) AddXYZ(x, y, z float64) *Point3D {
	return s.AddPoint(&Point3D{X: x, Y: y, Z: z})
}

// IsEmpty 判断地形面是否为空
func (s *Surface) IsEmpty() bool {
	return len(s.Points) == 0
}

// PointCount 返回点数量
func (s *Surface) PointCount() int {
	return len(s.Points)
}

// SortedPoints 返回按点号排序的点列表
// map遍历顺序随机，三角剖分和插值必须使用固定顺序保证结果可复现
func (s *Surface) SortedPoints() []*Point3D {
	ids := make([]string, 0, len(s.Points))
	for id := range s.Points {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	points := make([]*Point3D, 0, len(ids))
	for _, id := range ids {
		points = append(points, s.Points[id])
	}
	return points
}

// Extent 计算地形面的平面范围 (minX, minY, maxX, maxY)
func (s *Surface) Extent() (float64, float64, float64, float64, error) {
	if s.IsEmpty() {
		return 0, 0, 0, 0, fmt.Errorf("地形面 %s 没有点数据", s.Name)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY, nil
}

// VolumeToElevation 计算地形面推平到指定标高的净体积
// 正值表示地形整体高于标高（需挖），负值表示低于标高（需填）
// 已有三角网时直接使用，否则现场剖分
func (s *Surface) VolumeToElevation(elevation float64) float64 {
	if len(s.Triangles) > 0 {
		tin := &TIN3D{Triangles: s.Triangles}
		return tin.VolumeToElevation(elevation)
	}
	return CreateTINFromSurface(s).VolumeToElevation(elevation)
}

// SurfaceArea 计算地形面三角网的三维表面积
// 已有三角网时直接使用，否则现场剖分；不足3个点返回0
func (s *Surface) SurfaceArea() float64 {
	triangles := s.Triangles
	if len(triangles) == 0 {
		if s.PointCount() < 3 {
			return 0
		}
		triangles = CreateTINFromSurface(s).Triangles
	}
	var area float64
	for _, t := range triangles {
		area += t.Area()
	}
	return area
}

// ZRange 计算地形面的高程范围
func (s *Surface) ZRange() (float64, float64, error) {
	if s.IsEmpty() {
		return 0, 0, fmt.Errorf("地形面 %s 没有点数据", s.Name)
	}
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, p := range s.Points {
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return minZ, maxZ, nil
}
