package dto

import "selling-sisters-api/internal/model"

// ==================== 目录读取 ====================

// ProductListResp 商品列表响应
type ProductListResp struct {
	Products    []model.Product `json:"products"`
	LastUpdated string          `json:"last_updated"`
}

// ProductDetailResp 单个商品响应（按 id 精确查询）
type ProductDetailResp struct {
	Product     *model.Product `json:"product"`
	LastUpdated string         `json:"last_updated"`
}

// ContentErrorResp 目录读取失败响应
type ContentErrorResp struct {
	Error      string   `json:"error"`
	ProductID  string   `json:"product_id,omitempty"`
	ValidTypes []string `json:"valid_types,omitempty"`
}

// ==================== 目录发布 ====================

// PublishReq 发布请求（表格同步脚本推送）
type PublishReq struct {
	PublishedAt string          `json:"published_at"`
	Source      string          `json:"source"`
	Version     int             `json:"version"`
	Secret      string          `json:"secret"`
	Products    []model.Product `json:"products"`
}

// PublishResp 发布成功响应
type PublishResp struct {
	Success           bool `json:"success"`
	ProductsReceived  int  `json:"products_received"`
	ProductsPublished int  `json:"products_published"`
	Version           int  `json:"version"`
}
