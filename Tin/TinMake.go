package Tin

import (
	"math"
)

// 计算三角形外接圆圆心和半径（基于XY平面投影）
func circumcircle3D(p1, p2, p3 *Point3D) (cx, cy, r float64) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	cx1, cy1 := p3.X, p3.Y

	d := 2 * (ax*(by-cy1) + bx*(cy1-ay) + cx1*(ay-by))
	if math.Abs(d) < 1e-10 {
		return 0, 0, math.Inf(1)
	}

	ux := (ax*ax+ay*ay)*(by-cy1) + (bx*bx+by*by)*(cy1-ay) + (cx1*cx1+cy1*cy1)*(ay-by)
	uy := (ax*ax+ay*ay)*(cx1-bx) + (bx*bx+by*by)*(ax-cx1) + (cx1*cx1+cy1*cy1)*(bx-ax)

	cx = ux / d
	cy = uy / d
	r = math.Sqrt((cx-ax)*(cx-ax) + (cy-ay)*(cy-ay))

	return cx, cy, r
}

// 判断点是否在三角形外接圆内（基于XY投影）
func inCircumcircle3D(p *Point3D, t *Triangle3D) bool {
	cx, cy, r := circumcircle3D(t.P1, t.P2, t.P3)
	if math.IsInf(r, 1) {
		return false
	}
	dist := math.Sqrt((p.X-cx)*(p.X-cx) + (p.Y-cy)*(p.Y-cy))
	return dist < r
}

// 创建超级三角形
func createSuperTriangle3D(points []*Point3D) *Triangle3D {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range points {
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

	dx := maxX - minX
	dy := maxY - minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		// 所有点重合时给一个最小跨度，剖分结果会在后续被判定为退化
		deltaMax = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	p1 := &Point3D{X: midX - 20*deltaMax, Y: midY - deltaMax, Z: 0, ID: "super-1"}
	p2 := &Point3D{X: midX, Y: midY + 20*deltaMax, Z: 0, ID: "super-2"}
	p3 := &Point3D{X: midX + 20*deltaMax, Y: midY - deltaMax, Z: 0, ID: "super-3"}

	return &Triangle3D{P1: p1, P2: p2, P3: p3, ID: -1}
}

// Delaunay三角剖分
// 输入点顺序固定时输出顺序也固定，调用方需先对点排序
func delaunayTriangulation3D(points []*Point3D) []*Triangle3D {
	if len(points) < 3 {
		return nil
	}

	superTriangle := createSuperTriangle3D(points)
	superVertex := map[*Point3D]bool{
		superTriangle.P1: true,
		superTriangle.P2: true,
		superTriangle.P3: true,
	}
	triangles := []*Triangle3D{superTriangle}

	for _, point := range points {
		var badTriangles []*Triangle3D

		// 找到包含当前点的外接圆的三角形
		for _, triangle := range triangles {
			if inCircumcircle3D(point, triangle) {
				badTriangles = append(badTriangles, triangle)
			}
		}

		// 找到多边形边界
		var polygon []*Edge3D
		for _, badTriangle := range badTriangles {
			edges := []*Edge3D{
				{badTriangle.P1, badTriangle.P2},
				{badTriangle.P2, badTriangle.P3},
				{badTriangle.P3, badTriangle.P1},
			}

			for _, edge := range edges {
				shared := false
				for _, otherBadTriangle := range badTriangles {
					if otherBadTriangle == badTriangle {
						continue
					}
					otherEdges := []*Edge3D{
						{otherBadTriangle.P1, otherBadTriangle.P2},
						{otherBadTriangle.P2, otherBadTriangle.P3},
						{otherBadTriangle.P3, otherBadTriangle.P1},
					}

					for _, otherEdge := range otherEdges {
						if (edge.P1 == otherEdge.P1 && edge.P2 == otherEdge.P2) ||
							(edge.P1 == otherEdge.P2 && edge.P2 == otherEdge.P1) {
							shared = true
							break
						}
					}
					if shared {
						break
					}
				}
				if !shared {
					polygon = append(polygon, edge)
				}
			}
		}

		// 移除坏三角形
		var newTriangles []*Triangle3D
		for _, triangle := range triangles {
			bad := false
			for _, badTriangle := range badTriangles {
				if triangle == badTriangle {
					bad = true
					break
				}
			}
			if !bad {
				newTriangles = append(newTriangles, triangle)
			}
		}
		triangles = newTriangles

		// 创建新三角形
		triangleID := len(triangles)
		for _, edge := range polygon {
			newTriangle := &Triangle3D{
				P1: edge.P1,
				P2: edge.P2,
				P3: point,
				ID: triangleID,
			}
			triangles = append(triangles, newTriangle)
			triangleID++
		}
	}

	// 移除包含超级三角形顶点的三角形
	var finalTriangles []*Triangle3D
	for _, triangle := range triangles {
		if !superVertex[triangle.P1] && !superVertex[triangle.P2] && !superVertex[triangle.P3] {
			finalTriangles = append(finalTriangles, triangle)
		}
	}

	return finalTriangles
}

// CreateTIN3D 对散点集执行Delaunay三角剖分生成TIN
func CreateTIN3D(points3D []*Point3D) *TIN3D {
	return &TIN3D{
		Points:    points3D,
		Triangles: delaunayTriangulation3D(points3D),
	}
}

// CreateTINFromSurface 由地形面构造TIN，点按点号排序后参与剖分保证确定性
func CreateTINFromSurface(s *Surface) *TIN3D {
	return CreateTIN3D(s.SortedPoints())
}

// 计算三角形面积（三维）
func (t *Triangle3D) Area() float64 {
	// 使用向量叉积计算面积
	v1 := &Point3D{
		X: t.P2.X - t.P1.X,
		Y: t.P2.Y - t.P1.Y,
		Z: t.P2.Z - t.P1.Z,
	}
	v2 := &Point3D{
		X: t.P3.X - t.P1.X,
		Y: t.P3.Y - t.P1.Y,
		Z: t.P3.Z - t.P1.Z,
	}

	// 叉积
	cross := &Point3D{
		X: v1.Y*v2.Z - v1.Z*v2.Y,
		Y: v1.Z*v2.X - v1.X*v2.Z,
		Z: v1.X*v2.Y - v1.Y*v2.X,
	}

	// 叉积的模长的一半就是三角形面积
	length := math.Sqrt(cross.X*cross.X + cross.Y*cross.Y + cross.Z*cross.Z)
	return length / 2.0
}

// Area2D 计算三角形在XY平面上的投影面积
func (t *Triangle3D) Area2D() float64 {
	cross := (t.P2.X-t.P1.X)*(t.P3.Y-t.P1.Y) - (t.P3.X-t.P1.X)*(t.P2.Y-t.P1.Y)
	return math.Abs(cross) / 2.0
}

// 计算三角形法向量
func (t *Triangle3D) Normal() (float64, float64, float64) {
	v1 := &Point3D{
		X: t.P2.X - t.P1.X,
		Y: t.P2.Y - t.P1.Y,
		Z: t.P2.Z - t.P1.Z,
	}
	v2 := &Point3D{
		X: t.P3.X - t.P1.X,
		Y: t.P3.Y - t.P1.Y,
		Z: t.P3.Z - t.P1.Z,
	}

	nx := v1.Y*v2.Z - v1.Z*v2.Y
	ny := v1.Z*v2.X - v1.X*v2.Z
	nz := v1.X*v2.Y - v1.Y*v2.X

	// 归一化
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length > 0 {
		nx /= length
		ny /= length
		nz /= length
	}

	return nx, ny, nz
}
