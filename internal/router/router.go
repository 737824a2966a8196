package router

import (
	"github.com/gin-gonic/gin"

	"selling-sisters-api/internal/controller"
	"selling-sisters-api/internal/middleware"
)

// Setup 注册全部路由
func Setup(
	contentCtl *controller.ContentController,
	orderCtl *controller.OrderController,
	uploadCtl *controller.UploadController,
	limiter *middleware.RateLimiter,
	debug bool,
) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	// 路径存在但方法不对时返回 405 而不是 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(405, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	{
		content := api.Group("/content")
		{
			content.GET("/products", contentCtl.GetProducts)
			content.POST("/publish", contentCtl.Publish)
		}

		orders := api.Group("/orders")
		{
			// 只有订单提交走限流，目录读取不限
			orders.POST("/submit", limiter.Handler(), orderCtl.Submit)
		}

		uploads := api.Group("/upload")
		{
			uploads.POST("/image", uploadCtl.UploadImage)
		}
	}

	return r
}
