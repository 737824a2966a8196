package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/internal/model"
	"selling-sisters-api/internal/service"
)

// ContentController 商品目录的读取与发布
type ContentController struct {
	catalogSvc *service.CatalogService
}

func NewContentController(catalogSvc *service.CatalogService) *ContentController {
	return &ContentController{catalogSvc: catalogSvc}
}

// GetProducts 公开商品查询
// ?id=xxx 按 id 查单个（不限状态），否则按可选 ?type= 返回公开列表
func (ctl *ContentController) GetProducts(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		resp, err := ctl.catalogSvc.GetProduct(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				c.JSON(404, dto.ContentErrorResp{
					Error:     "Product not found",
					ProductID: id,
				})
				return
			}
			c.JSON(500, dto.ContentErrorResp{Error: "Failed to load product"})
			return
		}
		c.JSON(200, resp)
		return
	}

	resp, err := ctl.catalogSvc.ListProducts(c.Request.Context(), c.Query("type"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidType) {
			c.JSON(400, dto.ContentErrorResp{
				Error:      "Invalid product type",
				ValidTypes: model.ValidProductTypes,
			})
			return
		}
		c.JSON(500, dto.ContentErrorResp{Error: "Failed to load products"})
		return
	}
	c.JSON(200, resp)
}

// Publish CMS 推送整份目录，共享密钥鉴权
func (ctl *ContentController) Publish(c *gin.Context) {
	var req dto.PublishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.ErrorResp{Success: false, Error: "Invalid JSON body"})
		return
	}

	resp, err := ctl.catalogSvc.Publish(c.Request.Context(), &req)
	if err != nil {
		var verr *service.PublishValidationError
		switch {
		case errors.Is(err, service.ErrSecretUnconfigured):
			c.JSON(500, dto.ErrorResp{Success: false, Error: "Content publishing not configured"})
		case errors.Is(err, service.ErrInvalidSecret):
			c.JSON(401, dto.ErrorResp{Success: false, Error: "Unauthorized"})
		case errors.As(err, &verr):
			c.JSON(400, dto.ErrorResp{Success: false, Error: "Validation failed", Details: verr.Details})
		default:
			c.JSON(500, dto.ErrorResp{Success: false, Error: "Failed to publish content"})
		}
		return
	}
	c.JSON(200, resp)
}
