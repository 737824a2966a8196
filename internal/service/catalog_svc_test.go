package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/internal/model"
	"selling-sisters-api/internal/repository"
)

// fakeCatalogRepo 内存版目录仓库，可注入读取错误
type fakeCatalogRepo struct {
	doc    *model.CatalogDocument
	getErr error
}

func (r *fakeCatalogRepo) Get(_ context.Context) (*model.CatalogDocument, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.doc == nil {
		return nil, repository.ErrCatalogEmpty
	}
	return r.doc, nil
}

func (r *fakeCatalogRepo) Put(_ context.Context, doc *model.CatalogDocument, _ *int) error {
	r.doc = doc
	return nil
}

func testCatalog() *model.CatalogDocument {
	return &model.CatalogDocument{
		Products: []model.Product{
			{ProductID: "BR-0002", Type: model.ProductTypeBracelet, Title: "Beaded Bracelet", Status: model.ProductStatusPublished, SortOrder: intPtr(2)},
			{ProductID: "BR-0001", Type: model.ProductTypeBracelet, Title: "Friendship Bracelet", Status: model.ProductStatusPublished, SortOrder: intPtr(1)},
			{ProductID: "BR-0003", Type: model.ProductTypeBracelet, Title: "Charm Bracelet", Status: model.ProductStatusSoldOut}, // sort_order 缺省 -> 999
			{ProductID: "BR-0004", Type: model.ProductTypeBracelet, Title: "Draft Bracelet", Status: model.ProductStatusDraft},
			{ProductID: "PT-0001", Type: model.ProductTypePortrait, Title: "Custom Portrait", Status: model.ProductStatusPublished, SortOrder: intPtr(1)},
		},
		LastUpdated: "2026-08-01T00:00:00Z",
		Version:     3,
	}
}

func newTestCatalogService(repo repository.CatalogRepository, secret string) *CatalogService {
	return NewCatalogService(repo, secret, zap.NewNop())
}

func TestListProductsFiltersAndSorts(t *testing.T) {
	svc := newTestCatalogService(&fakeCatalogRepo{doc: testCatalog()}, "")

	resp, err := svc.ListProducts(context.Background(), "bracelet")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	wantIDs := []string{"BR-0001", "BR-0002", "BR-0003"}
	if len(resp.Products) != len(wantIDs) {
		t.Fatalf("应返回 %d 个商品, 实际 %d", len(wantIDs), len(resp.Products))
	}
	for i, want := range wantIDs {
		if resp.Products[i].ProductID != want {
			t.Errorf("第 %d 个商品应为 %s, 实际 %s", i, want, resp.Products[i].ProductID)
		}
	}
	if resp.LastUpdated != "2026-08-01T00:00:00Z" {
		t.Errorf("last_updated 错误: %s", resp.LastUpdated)
	}
}

func TestListProductsNoFilterExcludesDrafts(t *testing.T) {
	svc := newTestCatalogService(&fakeCatalogRepo{doc: testCatalog()}, "")

	resp, err := svc.ListProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	for _, p := range resp.Products {
		if p.Status == model.ProductStatusDraft {
			t.Errorf("草稿商品 %s 不应出现在公开列表", p.ProductID)
		}
	}
	if len(resp.Products) != 4 {
		t.Errorf("应返回 4 个公开商品, 实际 %d", len(resp.Products))
	}
}

func TestListProductsInvalidType(t *testing.T) {
	svc := newTestCatalogService(&fakeCatalogRepo{doc: testCatalog()}, "")

	if _, err := svc.ListProducts(context.Background(), "stickers"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("未知类目应返回 ErrInvalidType, 实际 %v", err)
	}
}

func TestListProductsFallsBackToSampleData(t *testing.T) {
	// 空存储和读故障都应退回示例目录
	for name, repo := range map[string]*fakeCatalogRepo{
		"empty": {},
		"error": {getErr: errors.New("db down")},
	} {
		svc := newTestCatalogService(repo, "")
		resp, err := svc.ListProducts(context.Background(), "")
		if err != nil {
			t.Fatalf("%s: 查询失败: %v", name, err)
		}
		if len(resp.Products) == 0 {
			t.Errorf("%s: 降级时应返回示例商品", name)
		}
	}
}

func TestGetProductByID(t *testing.T) {
	svc := newTestCatalogService(&fakeCatalogRepo{doc: testCatalog()}, "")
	ctx := context.Background()

	resp, err := svc.GetProduct(ctx, "BR-0004")
	if err != nil {
		t.Fatalf("按 id 查询失败: %v", err)
	}
	// 按 id 查询不限状态，草稿也能查到
	if resp.Product.Status != model.ProductStatusDraft {
		t.Errorf("应返回草稿商品, 实际状态 %s", resp.Product.Status)
	}

	if _, err := svc.GetProduct(ctx, "XX-9999"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("未命中应返回 ErrProductNotFound, 实际 %v", err)
	}
}

func TestPublishSecretChecks(t *testing.T) {
	repo := &fakeCatalogRepo{}
	req := &dto.PublishReq{Secret: "right", Products: testCatalog().Products}

	// 未配置密钥
	if _, err := newTestCatalogService(repo, "").Publish(context.Background(), req); !errors.Is(err, ErrSecretUnconfigured) {
		t.Errorf("未配置密钥应返回 ErrSecretUnconfigured, 实际 %v", err)
	}

	// 密钥不匹配
	svc := newTestCatalogService(repo, "right")
	badReq := &dto.PublishReq{Secret: "wrong", Products: req.Products}
	if _, err := svc.Publish(context.Background(), badReq); !errors.Is(err, ErrInvalidSecret) {
		t.Errorf("密钥不匹配应返回 ErrInvalidSecret, 实际 %v", err)
	}
}

func TestPublishValidation(t *testing.T) {
	svc := newTestCatalogService(&fakeCatalogRepo{}, "secret")
	ctx := context.Background()

	// 空数组
	_, err := svc.Publish(ctx, &dto.PublishReq{Secret: "secret"})
	var verr *PublishValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("空商品数组应返回校验错误, 实际 %v", err)
	}

	// 单个商品的错误带索引
	_, err = svc.Publish(ctx, &dto.PublishReq{
		Secret: "secret",
		Products: []model.Product{
			{ProductID: "BR-0001", Type: "bracelet", Title: "OK", Status: "published"},
			{Type: "stickers", Status: "published"},
		},
	})
	if !errors.As(err, &verr) {
		t.Fatalf("非法商品应返回校验错误, 实际 %v", err)
	}
	found := false
	for _, d := range verr.Details {
		if d == "Product 1: missing or invalid product_id" {
			found = true
		}
	}
	if !found {
		t.Errorf("错误明细应带商品索引, 实际 %v", verr.Details)
	}
}

func TestPublishOverwritesAndCounts(t *testing.T) {
	repo := &fakeCatalogRepo{doc: testCatalog()}
	svc := newTestCatalogService(repo, "secret")

	resp, err := svc.Publish(context.Background(), &dto.PublishReq{
		Secret:      "secret",
		PublishedAt: "2026-08-29T12:00:00Z",
		Version:     4,
		Products: []model.Product{
			{ProductID: "CP-0001", Type: "coloring_page", Title: "Unicorn Page", Status: "published"},
			{ProductID: "CP-0002", Type: "coloring_page", Title: "Dragon Page", Status: "draft"},
		},
	})
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if resp.ProductsReceived != 2 || resp.ProductsPublished != 1 {
		t.Errorf("计数错误: received=%d published=%d", resp.ProductsReceived, resp.ProductsPublished)
	}
	if resp.Version != 4 {
		t.Errorf("版本应为 4, 实际 %d", resp.Version)
	}

	// 整体覆盖：旧目录不再可见
	if len(repo.doc.Products) != 2 {
		t.Errorf("发布应整体覆盖目录, 实际商品数 %d", len(repo.doc.Products))
	}
}
