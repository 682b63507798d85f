package models

import (
	"log"
	"os"
	"path/filepath"

	"github.com/GrainArc/DigVolume/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func InitDB() {
	var err error

	// 按配置选择数据库后端，默认本地sqlite
	switch config.DBType {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	case "mysql":
		DB, err = gorm.Open(mysql.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	default:
		if dir := filepath.Dir(config.DataPath); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				log.Printf("创建数据目录失败: %v", err)
			}
		}
		DB, err = gorm.Open(sqlite.Open(config.DataPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 设置命名策略
	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	// 批量迁移所有表
	if err := migrateAllTables(DB); err != nil {
		log.Printf("Failed to migrate tables: %v", err)
	}
}

// migrateAllTables 批量迁移所有表
func migrateAllTables(db *gorm.DB) error {
	models := []interface{}{
		&SurfaceRecord{},
		&VolumeRecord{},
	}

	return db.AutoMigrate(models...)
}
