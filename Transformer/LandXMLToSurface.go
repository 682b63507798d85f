package Transformer

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/GrainArc/DigVolume/Tin"
)

// LandXML文件结构，只取Surface定义里的点和面
type landXML struct {
	XMLName  xml.Name         `xml:"LandXML"`
	Surfaces []landXMLSurface `xml:"Surfaces>Surface"`
}

type landXMLSurface struct {
	Name       string        `xml:"name,attr"`
	Definition landXMLDefine `xml:"Definition"`
}

type landXMLDefine struct {
	Pnts  []landXMLPoint `xml:"Pnts>P"`
	Faces []landXMLFace  `xml:"Faces>F"`
}

type landXMLPoint struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type landXMLFace struct {
	Value string `xml:",chardata"`
}

// LandXMLToSurface 解析LandXML格式的地形面定义
// 点坐标顺序为 Y X Z（北坐标 东坐标 高程），这是LandXML的约定
// 文件包含Faces时一并恢复三角网
func LandXMLToSurface(FilePath string, name string) (*Tin.Surface, error) {
	data, err := os.ReadFile(FilePath)
	if err != nil {
		return nil, fmt.Errorf("打开LandXML文件失败: %w", err)
	}

	var doc landXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析LandXML失败: %w", err)
	}
	if len(doc.Surfaces) == 0 {
		return nil, fmt.Errorf("LandXML文件中没有Surface定义")
	}

	// 只取第一个Surface，多面文件按需分次导入
	src := doc.Surfaces[0]
	if name == "" {
		name = src.Name
	}
	surface := Tin.NewSurface(name)

	for _, p := range src.Definition.Pnts {
		coords := strings.Fields(strings.TrimSpace(p.Value))
		if len(coords) < 3 {
			continue
		}
		y, err1 := strconv.ParseFloat(coords[0], 64)
		x, err2 := strconv.ParseFloat(coords[1], 64)
		z, err3 := strconv.ParseFloat(coords[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("LandXML点 %s 坐标解析失败", p.ID)
		}
		surface.AddPoint(&Tin.Point3D{X: x, Y: y, Z: z, ID: p.ID})
	}
	if surface.IsEmpty() {
		return nil, fmt.Errorf("LandXML文件中没有有效的点数据")
	}

	// 恢复三角网，引用不存在点号的面直接跳过
	for i, f := range src.Definition.Faces {
		ids := strings.Fields(strings.TrimSpace(f.Value))
		if len(ids) < 3 {
			continue
		}
		p1, ok1 := surface.Points[ids[0]]
		p2, ok2 := surface.Points[ids[1]]
		p3, ok3 := surface.Points[ids[2]]
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		surface.Triangles = append(surface.Triangles, &Tin.Triangle3D{P1: p1, P2: p2, P3: p3, ID: i})
	}

	return surface, nil
}
