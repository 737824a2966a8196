package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"selling-sisters-api/internal/model"
)

func setupRepo(t *testing.T) CatalogRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.CatalogRecord{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return NewCatalogRepository(db)
}

func sampleDoc(version int) *model.CatalogDocument {
	return &model.CatalogDocument{
		Products: []model.Product{
			{ProductID: "BR-0001", Type: "bracelet", Title: "Friendship Bracelet", Status: "published"},
		},
		LastUpdated: "2026-08-29T12:00:00Z",
		Version:     version,
	}
}

func TestCatalogGetEmpty(t *testing.T) {
	repo := setupRepo(t)

	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrCatalogEmpty) {
		t.Errorf("空表应返回 ErrCatalogEmpty, 实际 %v", err)
	}
}

func TestCatalogPutGetRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, sampleDoc(1), nil); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	doc, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if len(doc.Products) != 1 || doc.Products[0].ProductID != "BR-0001" {
		t.Errorf("商品数据错误: %+v", doc.Products)
	}
	if doc.Version != 1 || doc.LastUpdated != "2026-08-29T12:00:00Z" {
		t.Errorf("版本/时间戳错误: version=%d last_updated=%s", doc.Version, doc.LastUpdated)
	}
}

func TestCatalogPutOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, sampleDoc(1), nil); err != nil {
		t.Fatalf("首次写入失败: %v", err)
	}

	next := sampleDoc(2)
	next.Products = []model.Product{
		{ProductID: "CP-0001", Type: "coloring_page", Title: "Unicorn Page", Status: "published"},
	}
	if err := repo.Put(ctx, next, nil); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}

	doc, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if doc.Version != 2 || doc.Products[0].ProductID != "CP-0001" {
		t.Errorf("整体覆盖失败: %+v", doc)
	}
}

func TestCatalogPutVersionConflict(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, sampleDoc(3), nil); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	// 期望版本匹配 -> 成功
	expected := 3
	if err := repo.Put(ctx, sampleDoc(4), &expected); err != nil {
		t.Fatalf("版本匹配时写入应成功: %v", err)
	}

	// 期望版本过期 -> 冲突
	stale := 3
	if err := repo.Put(ctx, sampleDoc(5), &stale); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("版本过期应返回 ErrVersionConflict, 实际 %v", err)
	}

	doc, _ := repo.Get(ctx)
	if doc.Version != 4 {
		t.Errorf("冲突写入不应生效, 当前版本 %d", doc.Version)
	}
}
