package dto

import "selling-sisters-api/internal/model"

// ==================== 请求 DTO ====================

// SubmitOrderReq 提交订单请求
// idempotency_key 由前端生成，每次提交全局唯一
type SubmitOrderReq struct {
	Contact        model.ContactInfo  `json:"contact"`
	Details        model.OrderDetails `json:"details"`
	IdempotencyKey string             `json:"idempotency_key"`
}

// ==================== 响应 DTO ====================

// SubmitOrderResp 提交成功响应
type SubmitOrderResp struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// ErrorResp 统一失败响应
// 409 重复提交时 order_id 带上次生成的订单号，前端可按成功处理
type ErrorResp struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	OrderID string   `json:"order_id,omitempty"`
}
