package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"selling-sisters-api/internal/model"
)

// 目录文档固定只有一行
const catalogRowID = 1

var (
	// ErrCatalogEmpty 还没有发布过目录
	ErrCatalogEmpty = errors.New("catalog not published yet")
	// ErrVersionConflict 乐观版本检查失败，说明有并发发布
	ErrVersionConflict = errors.New("catalog version conflict")
)

// CatalogRepository 目录文档仓库
type CatalogRepository interface {
	Get(ctx context.Context) (*model.CatalogDocument, error)
	// Put 整体覆盖目录
	// expectedVersion 非 nil 时做乐观并发检查，版本不匹配返回 ErrVersionConflict；
	// 为 nil 时无条件覆盖（发布接口的历史语义）
	Put(ctx context.Context, doc *model.CatalogDocument, expectedVersion *int) error
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Get(ctx context.Context) (*model.CatalogDocument, error) {
	var rec model.CatalogRecord
	err := r.db.WithContext(ctx).First(&rec, catalogRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCatalogEmpty
	}
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(rec.Data, &products); err != nil {
		return nil, fmt.Errorf("目录数据损坏: %w", err)
	}

	return &model.CatalogDocument{
		Products:    products,
		LastUpdated: rec.LastUpdated,
		Version:     rec.Version,
	}, nil
}

func (r *catalogRepo) Put(ctx context.Context, doc *model.CatalogDocument, expectedVersion *int) error {
	data, err := json.Marshal(doc.Products)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.CatalogRecord
		err := tx.First(&rec, catalogRowID).Error
		notFound := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !notFound {
			return err
		}

		if expectedVersion != nil {
			current := 0
			if !notFound {
				current = rec.Version
			}
			if current != *expectedVersion {
				return ErrVersionConflict
			}
		}

		rec.ID = catalogRowID
		rec.Version = doc.Version
		rec.LastUpdated = doc.LastUpdated
		rec.Data = data

		if notFound {
			return tx.Create(&rec).Error
		}
		return tx.Model(&model.CatalogRecord{}).Where("id = ?", catalogRowID).
			Updates(map[string]interface{}{
				"version":      rec.Version,
				"last_updated": rec.LastUpdated,
				"data":         rec.Data,
			}).Error
	})
}
