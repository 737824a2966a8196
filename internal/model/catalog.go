package model

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogDocument 目录文档（对外形态）
// 整个商品目录是一份带版本号的整体文档，发布时整体覆盖
type CatalogDocument struct {
	Products    []Product `json:"products"`
	LastUpdated string    `json:"last_updated"`
	Version     int       `json:"version"`
}

// CatalogRecord 目录文档的存储行（单行表）
// version 支持乐观并发检查，历史实现没有 CAS，这里在仓库层补上能力，
// 发布接口保持整体覆盖语义
type CatalogRecord struct {
	ID          int            `gorm:"primaryKey"`
	Version     int            `gorm:"not null;default:0"`
	LastUpdated string         `gorm:"size:64"`
	Data        datatypes.JSON `gorm:"type:json"`
	UpdatedAt   time.Time
}

func (CatalogRecord) TableName() string { return "catalog_documents" }
