package Transformer

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入临时文件失败: %v", err)
	}
	return path
}

func TestCsvToPointsWithHeader(t *testing.T) {
	path := writeTempFile(t, "points.csv", "x,y,z\n1.0,2.0,3.0\n4.5,5.5,6.5\n")
	points, err := CsvToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("应解析出2个点, got %d", len(points))
	}
	if points[0].X != 1.0 || points[0].Y != 2.0 || points[0].Z != 3.0 {
		t.Errorf("第1个点坐标错误: %+v", points[0])
	}
}

func TestCsvToPointsHeaderAliases(t *testing.T) {
	// 列序打乱也要按表头正确映射
	path := writeTempFile(t, "points.csv", "elevation,easting,northing\n9.0,1.0,2.0\n")
	points, err := CsvToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if points[0].X != 1.0 || points[0].Y != 2.0 || points[0].Z != 9.0 {
		t.Errorf("表头映射错误: %+v", points[0])
	}
}

func TestCsvToPointsNoHeader(t *testing.T) {
	path := writeTempFile(t, "points.txt", "1 2 3\n4 5 6\n7 8 9\n")
	points, err := CsvToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("应解析出3个点, got %d", len(points))
	}
	if points[2].X != 7 || points[2].Y != 8 || points[2].Z != 9 {
		t.Errorf("第3个点坐标错误: %+v", points[2])
	}
}

func TestCsvToPointsEmpty(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")
	if _, err := CsvToPoints(path); err == nil {
		t.Error("空文件应报错")
	}
}

func TestLandXMLToSurface(t *testing.T) {
	content := `<?xml version="1.0"?>
<LandXML xmlns="http://www.landxml.org/schema/LandXML-1.2">
  <Surfaces>
    <Surface name="EG">
      <Definition surfType="TIN">
        <Pnts>
          <P id="1">100.0 200.0 10.0</P>
          <P id="2">100.0 210.0 11.0</P>
          <P id="3">110.0 200.0 12.0</P>
        </Pnts>
        <Faces>
          <F>1 2 3</F>
        </Faces>
      </Definition>
    </Surface>
  </Surfaces>
</LandXML>`
	path := writeTempFile(t, "surface.xml", content)
	surface, err := LandXMLToSurface(path, "")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if surface.Name != "EG" {
		t.Errorf("面名应取自文件, got %s", surface.Name)
	}
	if surface.PointCount() != 3 {
		t.Fatalf("应解析出3个点, got %d", surface.PointCount())
	}
	// LandXML点顺序是 Y X Z
	p := surface.Points["1"]
	if p == nil || p.X != 200.0 || p.Y != 100.0 || p.Z != 10.0 {
		t.Errorf("点1坐标顺序错误: %+v", p)
	}
	if len(surface.Triangles) != 1 {
		t.Errorf("应恢复1个三角形, got %d", len(surface.Triangles))
	}
}

func TestGeojsonToPoints(t *testing.T) {
	content := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[1.0,2.0]},"properties":{"z":5.5}},
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[3.0,4.0]},"properties":{"elevation":6.5}},
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[9.0,9.0]},"properties":{}}
	]}`
	path := writeTempFile(t, "points.geojson", content)
	points, err := GeojsonToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	// 没有高程属性的点被跳过
	if len(points) != 2 {
		t.Fatalf("应解析出2个点, got %d", len(points))
	}
	if math.Abs(points[0].Z-5.5) > 1e-9 || math.Abs(points[1].Z-6.5) > 1e-9 {
		t.Errorf("高程属性解析错误: %+v %+v", points[0], points[1])
	}
}

func TestGeojsonToPointsCoordinateZ(t *testing.T) {
	// 没有高程属性但坐标带第三个分量的要素，取坐标z
	content := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[1.0,2.0,7.5]},"properties":{}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.0,0.0,1.0],[3.0,0.0,2.0]]},"properties":{}}
	]}`
	path := writeTempFile(t, "points3d.geojson", content)
	points, err := GeojsonToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("应解析出3个点, got %d", len(points))
	}
	if math.Abs(points[0].Z-7.5) > 1e-9 {
		t.Errorf("Point坐标z解析错误: %+v", points[0])
	}
	if math.Abs(points[1].Z-1.0) > 1e-9 || math.Abs(points[2].Z-2.0) > 1e-9 {
		t.Errorf("LineString逐顶点z解析错误: %+v %+v", points[1], points[2])
	}
}

func TestGeojsonToPointsPropertyOverridesCoordinate(t *testing.T) {
	content := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[1.0,2.0,7.5]},"properties":{"z":9.0}}
	]}`
	path := writeTempFile(t, "override.geojson", content)
	points, err := GeojsonToPoints(path)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if math.Abs(points[0].Z-9.0) > 1e-9 {
		t.Errorf("高程属性应优先于坐标z: %+v", points[0])
	}
}

func TestSurfaceFromFileDispatch(t *testing.T) {
	path := writeTempFile(t, "points.csv", "x,y,z\n0,0,1\n10,0,1\n10,10,1\n0,10,1\n")
	surface, err := SurfaceFromFile(path, "测试面")
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	if surface.Name != "测试面" {
		t.Errorf("面名错误: %s", surface.Name)
	}
	if surface.PointCount() != 4 {
		t.Errorf("应有4个点, got %d", surface.PointCount())
	}
	if len(surface.Triangles) == 0 {
		t.Error("4个点应构出三角网")
	}
}

func TestSurfaceFromFileUnknownExtension(t *testing.T) {
	path := writeTempFile(t, "points.pdf", "not a surface")
	if _, err := SurfaceFromFile(path, ""); err == nil {
		t.Error("未知格式应报错")
	}
}
