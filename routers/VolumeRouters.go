package routers

import (
	"github.com/GrainArc/DigVolume/config"
	"github.com/GrainArc/DigVolume/views"
	"github.com/gin-gonic/gin"
)

func VolumeRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	surfaceRouter := r.Group("/surface")
	{
		surfaceRouter.POST("/UploadSurface", UserController.UploadSurface)
		surfaceRouter.GET("/GetSurfaceList", UserController.GetSurfaceList)
		surfaceRouter.GET("/GetSurfaceExtent", UserController.GetSurfaceExtent)
		surfaceRouter.GET("/DelSurface", UserController.DelSurface)
		surfaceRouter.GET("/DownloadSurfaceCsv", UserController.DownloadSurfaceCsv)
		surfaceRouter.GET("/GetElevationGrid", UserController.GetElevationGrid)
		surfaceRouter.GET("/GetSlopeAspect", UserController.GetSlopeAspect)
	}
	volumeRouter := r.Group("/volume")
	{
		volumeRouter.POST("/GetVolume", UserController.GetVolume)
		volumeRouter.POST("/GetSliceVolumes", UserController.GetSliceVolumes)
		volumeRouter.GET("/GetVolumeList", UserController.GetVolumeList)
		volumeRouter.POST("/VolumeToElevation", UserController.VolumeToElevation)
		volumeRouter.GET("/DownloadVolumeReport", UserController.DownloadVolumeReport)
		volumeRouter.Static("/OutFile", config.Download)
	}
}
