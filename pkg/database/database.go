package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
// dsn 非空时连接 Postgres；为空时退回本地 sqlite 文件，
// 保证没有任何云端凭证也能本地起服务
// models: 需要自动建表/迁移的结构体指针
func InitDB(dsn string, sqlitePath string, models ...interface{}) *gorm.DB {
	dbLogger := logger.Default.LogMode(logger.Warn)

	var db *gorm.DB
	var err error

	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: dbLogger})
		if err != nil {
			log.Fatalf("数据库连接失败: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("获取底层 SQL DB 失败: %v", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Println("数据库连接成功 (postgres)")
	} else {
		if sqlitePath == "" {
			sqlitePath = "selling_sisters.db"
		}
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{Logger: dbLogger})
		if err != nil {
			log.Fatalf("数据库连接失败: %v", err)
		}
		log.Printf("DATABASE_DSN 未配置，使用本地 sqlite: %s", sqlitePath)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("自动建表出错: %v", err)
		}
	}

	return db
}
