package views

import (
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GrainArc/DigVolume/Tin"
	"github.com/GrainArc/DigVolume/Transformer"
	"github.com/GrainArc/DigVolume/config"
	"github.com/GrainArc/DigVolume/methods"
	"github.com/GrainArc/DigVolume/models"
	"github.com/GrainArc/DigVolume/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadSurface 上传地形文件并入库
// 支持csv/txt/dat/dxf/xml/geojson/json/shp，压缩包自动解压后查找地形文件
func (uc *UserController) UploadSurface(c *gin.Context) {
	name := c.PostForm("name")

	file, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "File upload failed: "+err.Error())
		return
	}
	if name == "" {
		base := filepath.Base(file.Filename)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// 创建任务ID和文件路径
	taskid := uuid.New().String()
	path, err := filepath.Abs(filepath.Join(config.Upload, taskid, file.Filename))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create file path: "+err.Error())
		return
	}

	// 确保目录存在
	dirpath := filepath.Dir(path)
	if err := os.MkdirAll(dirpath, 0755); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create directory: "+err.Error())
		return
	}

	// 保存上传的文件
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save file: "+err.Error())
		return
	}

	// 如果是压缩文件，则解压后查找地形数据文件
	dataFile := path
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zip" || ext == ".rar" {
		if err := methods.Unzip(path); err != nil {
			c.String(http.StatusInternalServerError, "Failed to unzip file: "+err.Error())
			return
		}
		found := methods.FindFileByExt(dirpath, Transformer.SupportedExtensions())
		if found == nil {
			c.String(http.StatusBadRequest, "压缩包内未找到地形数据文件")
			return
		}
		dataFile = *found
	}

	surface, err := Transformer.SurfaceFromFile(dataFile, name)
	if err != nil {
		c.String(http.StatusBadRequest, "地形文件解析失败: "+err.Error())
		return
	}
	if surface.IsEmpty() {
		c.String(http.StatusBadRequest, "地形文件中没有有效点位")
		return
	}

	date := time.Now().Format("2006-01-02 15:04:05")
	record, err := models.NewSurfaceRecord(surface, file.Filename, date)
	if err != nil {
		c.String(http.StatusInternalServerError, "地形面序列化失败: "+err.Error())
		return
	}

	DB := models.DB
	var old models.SurfaceRecord
	if DB.Where("name = ?", name).First(&old).Error == nil {
		// 同名地形面覆盖更新
		record.ID = old.ID
		if err := DB.Save(record).Error; err != nil {
			c.String(http.StatusInternalServerError, "地形面入库失败: "+err.Error())
			return
		}
	} else {
		if err := DB.Create(record).Error; err != nil {
			c.String(http.StatusInternalServerError, "地形面入库失败: "+err.Error())
			return
		}
	}

	// 清理临时文件
	defer func() {
		if err := os.RemoveAll(dirpath); err != nil {
			log.Printf("Failed to cleanup temp directory: %v", err)
		}
	}()

	c.JSON(http.StatusOK, SurfaceMSG{
		ID:         record.ID,
		Name:       record.Name,
		SourceFile: record.SourceFile,
		PointCount: record.PointCount,
		MinX:       record.MinX,
		MinY:       record.MinY,
		MaxX:       record.MaxX,
		MaxY:       record.MaxY,
		Date:       record.Date,
	})
}

// GetSurfaceList 获取已入库的地形面列表
func (uc *UserController) GetSurfaceList(c *gin.Context) {
	DB := models.DB
	var records []models.SurfaceRecord
	if err := DB.Order("id desc").Find(&records).Error; err != nil {
		c.String(http.StatusInternalServerError, "查询地形面失败: "+err.Error())
		return
	}
	data := make([]SurfaceMSG, 0, len(records))
	for _, item := range records {
		data = append(data, SurfaceMSG{
			ID:         item.ID,
			Name:       item.Name,
			SourceFile: item.SourceFile,
			PointCount: item.PointCount,
			MinX:       item.MinX,
			MinY:       item.MinY,
			MaxX:       item.MaxX,
			MaxY:       item.MaxY,
			Date:       item.Date,
		})
	}
	c.JSON(http.StatusOK, data)
}

// GetSurfaceExtent 获取地形面的平面范围与高程范围
func (uc *UserController) GetSurfaceExtent(c *gin.Context) {
	name := c.Query("name")
	DB := models.DB
	var record models.SurfaceRecord
	if err := DB.Where("name = ?", name).First(&record).Error; err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+name)
		return
	}
	surface, err := record.ToSurface()
	if err != nil {
		c.String(http.StatusInternalServerError, "地形面数据损坏: "+err.Error())
		return
	}
	minZ, maxZ, _ := surface.ZRange()
	c.JSON(http.StatusOK, gin.H{
		"name":         record.Name,
		"point_count":  record.PointCount,
		"min_x":        record.MinX,
		"min_y":        record.MinY,
		"max_x":        record.MaxX,
		"max_y":        record.MaxY,
		"min_z":        minZ,
		"max_z":        maxZ,
		"surface_area": surface.SurfaceArea(),
	})
}

// GetElevationGrid 按指定步长采样地形面的高程网格
// TIN凸包外的格点在JSON里输出为null
func (uc *UserController) GetElevationGrid(c *gin.Context) {
	name := c.Query("name")
	step, err := strconv.ParseFloat(c.Query("step"), 64)
	if err != nil || step <= 0 {
		c.String(http.StatusBadRequest, "step参数必须为正数")
		return
	}

	surface, err := loadSurface(name)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+name)
		return
	}
	if surface.PointCount() < 3 {
		c.String(http.StatusBadRequest, "地形面点数不足以构网")
		return
	}

	minX, minY, maxX, maxY, err := surface.Extent()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	tin := Tin.CreateTINFromSurface(surface)
	grid, err := tin.GetElevationGrid(minX, minY, maxX, maxY, step, step)
	if err != nil {
		c.String(http.StatusBadRequest, "高程网格采样失败: "+err.Error())
		return
	}

	// NaN无法进JSON，凸包外格点转为null
	rows := make([][]*float64, len(grid))
	for i, row := range grid {
		out := make([]*float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				z := v
				out[j] = &z
			}
		}
		rows[i] = out
	}
	c.JSON(http.StatusOK, gin.H{
		"name": name,
		"step": step,
		"grid": rows,
	})
}

// GetSlopeAspect 查询指定位置的坡度和坡向（单位为度）
func (uc *UserController) GetSlopeAspect(c *gin.Context) {
	name := c.Query("name")
	x, err1 := strconv.ParseFloat(c.Query("x"), 64)
	y, err2 := strconv.ParseFloat(c.Query("y"), 64)
	if err1 != nil || err2 != nil {
		c.String(http.StatusBadRequest, "x/y参数错误")
		return
	}

	surface, err := loadSurface(name)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+name)
		return
	}
	if surface.PointCount() < 3 {
		c.String(http.StatusBadRequest, "地形面点数不足以构网")
		return
	}

	tin := Tin.CreateTINFromSurface(surface)
	slope, aspect, err := tin.GetSlopeAndAspect(x, y)
	if err != nil {
		c.String(http.StatusBadRequest, "查询点在地形面范围之外")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":       name,
		"x":          x,
		"y":          y,
		"slope_deg":  slope * 180 / math.Pi,
		"aspect_deg": aspect * 180 / math.Pi,
	})
}

// DelSurface 删除地形面
func (uc *UserController) DelSurface(c *gin.Context) {
	name := c.Query("name")
	DB := models.DB
	var records []models.SurfaceRecord
	DB.Where("name = ?", name).Find(&records)
	if len(records) == 0 {
		c.String(http.StatusNotFound, "地形面不存在: "+name)
		return
	}
	if err := DB.Delete(&records).Error; err != nil {
		c.String(http.StatusInternalServerError, "删除失败: "+err.Error())
		return
	}
	c.String(http.StatusOK, "删除成功")
}

// DownloadSurfaceCsv 将地形面点位导出为csv并返回下载链接
func (uc *UserController) DownloadSurfaceCsv(c *gin.Context) {
	name := c.Query("name")
	DB := models.DB
	var record models.SurfaceRecord
	if err := DB.Where("name = ?", name).First(&record).Error; err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+name)
		return
	}
	surface, err := record.ToSurface()
	if err != nil {
		c.String(http.StatusInternalServerError, "地形面数据损坏: "+err.Error())
		return
	}

	taskid := uuid.New().String()
	outDir := filepath.Join(config.Download, taskid)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		c.String(http.StatusInternalServerError, "创建输出目录失败: "+err.Error())
		return
	}
	// 中文地形面名转成安全文件名
	fileName := methods.ConvertToInitials(name) + ".csv"
	csvPath := filepath.Join(outDir, fileName)
	if err := services.ExportSurfaceCsv(surface, csvPath); err != nil {
		c.String(http.StatusInternalServerError, "导出失败: "+err.Error())
		return
	}
	c.String(http.StatusOK, "/volume/OutFile/"+taskid+"/"+fileName)
}
