package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/internal/service"
	"selling-sisters-api/pkg/upload"
)

// UploadController 肖像参考图上传
type UploadController struct {
	storageSvc *service.StorageService
}

func NewUploadController(storageSvc *service.StorageService) *UploadController {
	return &UploadController{storageSvc: storageSvc}
}

// UploadImage 解析 multipart 请求体中的第一个文件并上传
func (ctl *UploadController) UploadImage(c *gin.Context) {
	file, err := upload.Parse(c.Request.Body, c.GetHeader("Content-Type"), upload.DefaultMaxBytes)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			c.JSON(400, dto.ErrorResp{Success: false, Error: "File too large. Maximum size is 10MB."})
		case errors.Is(err, upload.ErrExpectedMultipart),
			errors.Is(err, upload.ErrNoBoundary),
			errors.Is(err, upload.ErrNoFile):
			c.JSON(400, dto.ErrorResp{Success: false, Error: "No file provided"})
		default:
			c.JSON(400, dto.ErrorResp{Success: false, Error: "Invalid upload request"})
		}
		return
	}

	res, err := ctl.storageSvc.UploadImage(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedImageType):
			c.JSON(400, dto.ErrorResp{Success: false, Error: "Invalid file type. Only JPEG and PNG images are allowed."})
		case errors.Is(err, service.ErrImageTooLarge):
			c.JSON(400, dto.ErrorResp{Success: false, Error: "File too large. Maximum size is 10MB."})
		default:
			c.JSON(500, dto.ErrorResp{Success: false, Error: "Failed to upload image. Please try again."})
		}
		return
	}

	c.JSON(200, dto.UploadResp{
		Success:  true,
		URL:      res.URL,
		Filename: res.Filename,
		Message:  res.Message,
	})
}
