package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/internal/service"
)

// OrderController 订单提交入口
type OrderController struct {
	orderSvc *service.OrderService
}

func NewOrderController(orderSvc *service.OrderService) *OrderController {
	return &OrderController{orderSvc: orderSvc}
}

// Submit 接收订单，错误按类型映射状态码:
// 重复提交 409 / 校验失败 400 / 店主邮件失败 500
func (ctl *OrderController) Submit(c *gin.Context) {
	var req dto.SubmitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.ErrorResp{Success: false, Error: "Invalid request body"})
		return
	}

	orderID, err := ctl.orderSvc.Submit(c.Request.Context(), req)
	if err != nil {
		var (
			dup  *service.DuplicateOrderError
			verr *service.ValidationError
			derr *service.EmailDeliveryError
		)
		switch {
		case errors.As(err, &dup):
			// 重复提交返回首次的订单号，前端据此展示原订单
			c.JSON(409, dto.ErrorResp{
				Success: false,
				Error:   "This order was already submitted.",
				OrderID: dup.OrderID,
			})
		case errors.As(err, &verr):
			c.JSON(400, dto.ErrorResp{
				Success: false,
				Error:   "Validation failed",
				Details: verr.Details,
			})
		case errors.As(err, &derr):
			c.JSON(500, dto.ErrorResp{
				Success: false,
				Error:   "Failed to submit order. Please try again or contact us directly.",
			})
		default:
			c.JSON(500, dto.ErrorResp{
				Success: false,
				Error:   "Failed to submit order. Please try again or contact us directly.",
			})
		}
		return
	}

	c.JSON(200, dto.SubmitOrderResp{
		Success: true,
		OrderID: orderID,
		Message: "Order submitted successfully! We'll be in touch soon.",
	})
}
