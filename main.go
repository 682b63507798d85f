package main

import (
	"log"
	"os"

	"github.com/GrainArc/DigVolume/config"
	"github.com/GrainArc/DigVolume/methods"
	"github.com/GrainArc/DigVolume/models"
	"github.com/GrainArc/DigVolume/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	// 上传与成果目录
	if err := os.MkdirAll(config.Upload, os.ModePerm); err != nil {
		log.Fatalf("创建上传目录失败: %v", err)
	}
	if err := os.MkdirAll(config.Download, os.ModePerm); err != nil {
		log.Fatalf("创建成果目录失败: %v", err)
	}
	// 清理上次运行遗留的临时上传文件
	if err := methods.DeleteFiles(config.Upload); err != nil {
		log.Printf("清理上传目录失败: %v", err)
	}

	models.InitDB()

	r := gin.Default()
	routers.VolumeRouters(r)

	log.Println("填挖方计算服务启动于", config.MainRouter)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
