package views

type UserController struct {
}

// 方量计算请求
type VolumeRequest struct {
	SurfaceA   string  `json:"surface_a"`
	SurfaceB   string  `json:"surface_b"`
	Resolution float64 `json:"resolution"`
}

// 高程切片统计请求
type SliceVolumeRequest struct {
	SurfaceA  string  `json:"surface_a"`
	SurfaceB  string  `json:"surface_b"`
	Thickness float64 `json:"thickness"`
}

// 推平标高计算请求
type VolumeToElevationRequest struct {
	Surface   string  `json:"surface"`
	Elevation float64 `json:"elevation"`
}

// 地形面列表项
type SurfaceMSG struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	SourceFile string  `json:"source_file"`
	PointCount int     `json:"point_count"`
	MinX       float64 `json:"min_x"`
	MinY       float64 `json:"min_y"`
	MaxX       float64 `json:"max_x"`
	MaxY       float64 `json:"max_y"`
	Date       string  `json:"date"`
}

// 方量计算结果列表项
type VolumeMSG struct {
	ID           int64   `json:"id"`
	SurfaceA     string  `json:"surface_a"`
	SurfaceB     string  `json:"surface_b"`
	Resolution   float64 `json:"resolution"`
	Cut          float64 `json:"cut"`
	Fill         float64 `json:"fill"`
	Net          float64 `json:"net"`
	EmptyOverlap bool    `json:"empty_overlap"`
	Warnings     string  `json:"warnings"`
	Date         string  `json:"date"`
}
