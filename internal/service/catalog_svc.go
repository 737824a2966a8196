package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/internal/model"
	"selling-sisters-api/internal/repository"
)

var (
	// ErrInvalidType 列表查询传了未知类目
	ErrInvalidType = errors.New("invalid product type")
	// ErrProductNotFound 按 id 查询没有命中
	ErrProductNotFound = errors.New("product not found")
	// ErrSecretUnconfigured 服务端没配发布密钥
	ErrSecretUnconfigured = errors.New("publish secret not configured")
	// ErrInvalidSecret 发布密钥不匹配
	ErrInvalidSecret = errors.New("invalid secret")
)

// PublishValidationError 发布数据校验失败，Details 汇总所有商品的错误
type PublishValidationError struct {
	Details []string
}

func (e *PublishValidationError) Error() string { return "validation failed" }

// ==================== CatalogService ====================

// CatalogService 商品目录服务
// 读路径对存储故障降级：存储为空或不可用时退回内置示例目录，
// 可用性优先于一致性（低风险小店的取舍，是策略不是兜底补丁）
type CatalogService struct {
	repo          repository.CatalogRepository
	publishSecret string
	logger        *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, publishSecret string, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:          repo,
		publishSecret: publishSecret,
		logger:        logger,
	}
}

// getDocument 读目录，空/故障时退回示例数据
func (s *CatalogService) getDocument(ctx context.Context) *model.CatalogDocument {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrCatalogEmpty) {
			s.logger.Warn("目录读取失败，使用示例数据",
				zap.String("event", "catalog_fallback"),
				zap.Error(err))
		}
		return &model.CatalogDocument{
			Products:    SampleProducts,
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		}
	}
	return doc
}

// GetProduct 按 id 精确查询，不限状态（草稿也能按 id 查到）
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*dto.ProductDetailResp, error) {
	doc := s.getDocument(ctx)
	for i := range doc.Products {
		if doc.Products[i].ProductID == id {
			return &dto.ProductDetailResp{
				Product:     &doc.Products[i],
				LastUpdated: doc.LastUpdated,
			}, nil
		}
	}
	return nil, ErrProductNotFound
}

// ListProducts 公开商品列表
// 可选类目过滤；只返回 published / sold_out；按 sort_order 升序稳定排序
func (s *CatalogService) ListProducts(ctx context.Context, typeFilter string) (*dto.ProductListResp, error) {
	if typeFilter != "" && !model.IsValidProductType(typeFilter) {
		return nil, ErrInvalidType
	}

	doc := s.getDocument(ctx)

	filtered := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if typeFilter != "" && p.Type != typeFilter {
			continue
		}
		if !model.IsPubliclyVisible(p.Status) {
			continue
		}
		filtered = append(filtered, p)
	}

	// 稳定排序：sort_order 相同的保持发布时的原始顺序
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].EffectiveSortOrder() < filtered[j].EffectiveSortOrder()
	})

	return &dto.ProductListResp{
		Products:    filtered,
		LastUpdated: doc.LastUpdated,
	}, nil
}

// ==================== 发布 ====================

// Publish 整体覆盖商品目录
// 鉴权用共享密钥（常数时间比较），数据校验汇总所有错误一次性返回
func (s *CatalogService) Publish(ctx context.Context, req *dto.PublishReq) (*dto.PublishResp, error) {
	if s.publishSecret == "" {
		return nil, ErrSecretUnconfigured
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.publishSecret)) != 1 {
		return nil, ErrInvalidSecret
	}

	if len(req.Products) == 0 {
		return nil, &PublishValidationError{Details: []string{"Products array cannot be empty"}}
	}

	var details []string
	for i, p := range req.Products {
		details = append(details, validateProduct(&p, i)...)
	}
	if len(details) > 0 {
		return nil, &PublishValidationError{Details: details}
	}

	published := 0
	for _, p := range req.Products {
		if model.IsPubliclyVisible(p.Status) {
			published++
		}
	}

	lastUpdated := req.PublishedAt
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}
	version := req.Version
	if version == 0 {
		version = 1
	}

	doc := &model.CatalogDocument{
		Products:    req.Products,
		LastUpdated: lastUpdated,
		Version:     version,
	}
	// 历史语义是无条件整体覆盖，仓库层已有乐观版本检查的能力，
	// 发布端目前不带 expectedVersion
	if err := s.repo.Put(ctx, doc, nil); err != nil {
		return nil, err
	}

	s.logger.Info("目录已发布",
		zap.String("event", "catalog_published"),
		zap.Int("products_received", len(req.Products)),
		zap.Int("products_published", published),
		zap.Int("version", version))

	return &dto.PublishResp{
		Success:           true,
		ProductsReceived:  len(req.Products),
		ProductsPublished: published,
		Version:           version,
	}, nil
}

// validateProduct 单个商品的结构校验
func validateProduct(p *model.Product, index int) []string {
	var errs []string

	if p.ProductID == "" {
		errs = append(errs, fmt.Sprintf("Product %d: missing or invalid product_id", index))
	}
	if !model.IsValidProductType(p.Type) {
		errs = append(errs, fmt.Sprintf("Product %d: invalid type (must be bracelet, coloring_page, or portrait)", index))
	}
	if p.Title == "" {
		errs = append(errs, fmt.Sprintf("Product %d: missing or invalid title", index))
	}
	if !model.IsValidProductStatus(p.Status) {
		errs = append(errs, fmt.Sprintf("Product %d: invalid status", index))
	}

	return errs
}
