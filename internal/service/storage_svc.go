package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"selling-sisters-api/pkg/upload"
)

var (
	// ErrUnsupportedImageType 只接受 JPEG / PNG
	ErrUnsupportedImageType = errors.New("unsupported image type")
	// ErrImageTooLarge 超出大小上限
	ErrImageTooLarge = errors.New("image exceeds size limit")
)

// allowedImageTypes 参考图允许的 MIME 类型
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// BlobStore 对象存储抽象，返回上传后的公开 URL
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ==================== S3 实现 ====================

// S3Store 把参考图写入 S3 桶
type S3Store struct {
	client  *s3.Client
	bucket  string
	region  string
	cdnBase string // 可选 CDN 前缀，空则用 S3 直链
}

func NewS3Store(client *s3.Client, bucket, region, cdnBase string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		region:  region,
		cdnBase: strings.TrimSuffix(cdnBase, "/"),
	}
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	if s.cdnBase != "" {
		return s.cdnBase + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// ==================== 上传服务 ====================

// UploadResult 上传结果，Message 仅开发模式下有值
type UploadResult struct {
	URL      string
	Filename string
	Message  string
}

// StorageService 参考图上传
// store 为 nil 时进入开发模式：不真正上传，返回占位图 URL
type StorageService struct {
	store    BlobStore
	maxBytes int64
	logger   *zap.Logger
}

func NewStorageService(store BlobStore, logger *zap.Logger) *StorageService {
	return &StorageService{
		store:    store,
		maxBytes: upload.DefaultMaxBytes,
		logger:   logger,
	}
}

// UploadImage 校验类型和大小后上传，返回公开 URL
func (s *StorageService) UploadImage(ctx context.Context, file *upload.File) (*UploadResult, error) {
	ext, ok := allowedImageTypes[strings.ToLower(file.ContentType)]
	if !ok {
		return nil, ErrUnsupportedImageType
	}
	if int64(len(file.Data)) > s.maxBytes {
		return nil, ErrImageTooLarge
	}

	filename := uploadFilename(ext)

	if s.store == nil {
		s.logger.Info("upload_simulated", zap.String("filename", filename))
		return &UploadResult{
			URL:      fmt.Sprintf("https://placehold.co/400x400/EDE9FE/A78BFA?text=Reference+%d", time.Now().Unix()),
			Filename: filename,
			Message:  "Development mode: image upload simulated",
		}, nil
	}

	url, err := s.store.Put(ctx, filename, file.Data, file.ContentType)
	if err != nil {
		s.logger.Error("upload_failed", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	s.logger.Info("upload_completed",
		zap.String("filename", filename),
		zap.Int("bytes", len(file.Data)))
	return &UploadResult{URL: url, Filename: filename}, nil
}

// uploadFilename 时间戳 + 随机后缀，避免同名覆盖
func uploadFilename(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("reference-%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}
