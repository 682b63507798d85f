package views

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GrainArc/DigVolume/Tin"
	"github.com/GrainArc/DigVolume/Volume"
	"github.com/GrainArc/DigVolume/models"
	"github.com/GrainArc/DigVolume/services"
	"github.com/gin-gonic/gin"
)

// loadSurface 按名称从数据库恢复地形面
func loadSurface(name string) (*Tin.Surface, error) {
	DB := models.DB
	var record models.SurfaceRecord
	if err := DB.Where("name = ?", name).First(&record).Error; err != nil {
		return nil, err
	}
	return record.ToSurface()
}

// GetVolume 网格法计算两个地形面之间的填挖方量
func (uc *UserController) GetVolume(c *gin.Context) {
	var req VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}
	if req.SurfaceA == "" || req.SurfaceB == "" {
		c.String(http.StatusBadRequest, "surface_a and surface_b are required")
		return
	}

	surfaceA, err := loadSurface(req.SurfaceA)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+req.SurfaceA)
		return
	}
	surfaceB, err := loadSurface(req.SurfaceB)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+req.SurfaceB)
		return
	}

	result, err := Volume.CalculateGridMethod(surfaceA, surfaceB, req.Resolution)
	if err != nil {
		c.String(http.StatusBadRequest, "方量计算失败: "+err.Error())
		return
	}

	dzData, err := models.MarshalDzGrid(result)
	if err != nil {
		c.String(http.StatusInternalServerError, "差值网格序列化失败: "+err.Error())
		return
	}
	record := &models.VolumeRecord{
		SurfaceA:     req.SurfaceA,
		SurfaceB:     req.SurfaceB,
		Resolution:   req.Resolution,
		Cut:          result.Cut,
		Fill:         result.Fill,
		Net:          result.Net,
		EmptyOverlap: result.EmptyOverlap,
		Warnings:     strings.Join(result.Warnings, "; "),
		DzGrid:       dzData,
		Date:         time.Now().Format("2006-01-02 15:04:05"),
	}
	DB := models.DB
	if err := DB.Create(record).Error; err != nil {
		c.String(http.StatusInternalServerError, "计算结果入库失败: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            record.ID,
		"cut":           result.Cut,
		"fill":          result.Fill,
		"net":           result.Net,
		"empty_overlap": result.EmptyOverlap,
		"warnings":      result.Warnings,
		"grid_x":        result.GridX,
		"grid_y":        result.GridY,
	})
}

// GetVolumeList 获取历史方量计算记录
func (uc *UserController) GetVolumeList(c *gin.Context) {
	DB := models.DB
	var records []models.VolumeRecord
	if err := DB.Order("id desc").Find(&records).Error; err != nil {
		c.String(http.StatusInternalServerError, "查询计算记录失败: "+err.Error())
		return
	}
	data := make([]VolumeMSG, 0, len(records))
	for _, item := range records {
		data = append(data, VolumeMSG{
			ID:           item.ID,
			SurfaceA:     item.SurfaceA,
			SurfaceB:     item.SurfaceB,
			Resolution:   item.Resolution,
			Cut:          item.Cut,
			Fill:         item.Fill,
			Net:          item.Net,
			EmptyOverlap: item.EmptyOverlap,
			Warnings:     item.Warnings,
			Date:         item.Date,
		})
	}
	c.JSON(http.StatusOK, data)
}

// GetSliceVolumes 按高程切片统计两个地形面之间的填挖分布
func (uc *UserController) GetSliceVolumes(c *gin.Context) {
	var req SliceVolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}
	if req.SurfaceA == "" || req.SurfaceB == "" {
		c.String(http.StatusBadRequest, "surface_a and surface_b are required")
		return
	}

	surfaceA, err := loadSurface(req.SurfaceA)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+req.SurfaceA)
		return
	}
	surfaceB, err := loadSurface(req.SurfaceB)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+req.SurfaceB)
		return
	}

	slices, err := Volume.ComputeSliceVolumes(surfaceA, surfaceB, req.Thickness)
	if err != nil {
		c.String(http.StatusBadRequest, "切片统计失败: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"surface_a": req.SurfaceA,
		"surface_b": req.SurfaceB,
		"thickness": req.Thickness,
		"slices":    slices,
	})
}

// VolumeToElevation 计算地形面推平到指定标高的方量
// 结果为正表示地形高于标高需挖，为负表示需填
func (uc *UserController) VolumeToElevation(c *gin.Context) {
	var req VolumeToElevationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}
	if req.Surface == "" {
		c.String(http.StatusBadRequest, "surface is required")
		return
	}

	surface, err := loadSurface(req.Surface)
	if err != nil {
		c.String(http.StatusNotFound, "地形面不存在: "+req.Surface)
		return
	}
	if surface.PointCount() < 3 {
		c.String(http.StatusBadRequest, "地形面点数不足以构网")
		return
	}

	volume := surface.VolumeToElevation(req.Elevation)
	c.JSON(http.StatusOK, gin.H{
		"surface":   req.Surface,
		"elevation": req.Elevation,
		"volume":    volume,
	})
}

// DownloadVolumeReport 生成方量计算报告并返回下载链接
func (uc *UserController) DownloadVolumeReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "id参数错误")
		return
	}
	DB := models.DB
	var record models.VolumeRecord
	if err := DB.Where("id = ?", id).First(&record).Error; err != nil {
		c.String(http.StatusNotFound, "计算记录不存在")
		return
	}

	zipPath, taskid, err := services.GenerateVolumeReport(&record)
	if err != nil {
		c.String(http.StatusInternalServerError, "报告生成失败: "+err.Error())
		return
	}
	record.ReportPath = zipPath
	DB.Save(&record)

	c.String(http.StatusOK, "/volume/OutFile/"+taskid+".zip")
}
