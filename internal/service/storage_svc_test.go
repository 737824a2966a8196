package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"

	"selling-sisters-api/pkg/upload"
)

type fakeBlobStore struct {
	lastKey  string
	lastType string
	err      error
}

func (f *fakeBlobStore) Put(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastType = contentType
	return "https://cdn.example.com/" + key, nil
}

var uploadNamePattern = regexp.MustCompile(`^reference-\d+-[0-9a-f]{6}\.(jpg|png)$`)

func TestUploadImage(t *testing.T) {
	store := &fakeBlobStore{}
	svc := NewStorageService(store, zap.NewNop())

	res, err := svc.UploadImage(context.Background(), &upload.File{
		Data:        []byte("fake png bytes"),
		ContentType: "image/png",
		Filename:    "dog.png",
	})
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !uploadNamePattern.MatchString(res.Filename) {
		t.Errorf("文件名格式错误: %s", res.Filename)
	}
	if !strings.HasSuffix(res.Filename, ".png") {
		t.Errorf("PNG 应使用 .png 扩展名: %s", res.Filename)
	}
	if res.URL != "https://cdn.example.com/"+res.Filename {
		t.Errorf("URL 错误: %s", res.URL)
	}
	if res.Message != "" {
		t.Errorf("真实上传不应带开发模式提示: %q", res.Message)
	}
	if store.lastType != "image/png" {
		t.Errorf("Content-Type 透传错误: %s", store.lastType)
	}
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	svc := NewStorageService(&fakeBlobStore{}, zap.NewNop())

	_, err := svc.UploadImage(context.Background(), &upload.File{
		Data:        []byte("GIF89a"),
		ContentType: "image/gif",
	})
	if !errors.Is(err, ErrUnsupportedImageType) {
		t.Errorf("GIF 应被拒绝, 实际 %v", err)
	}
}

func TestUploadImageRejectsOversized(t *testing.T) {
	svc := NewStorageService(&fakeBlobStore{}, zap.NewNop())
	svc.maxBytes = 16

	_, err := svc.UploadImage(context.Background(), &upload.File{
		Data:        make([]byte, 17),
		ContentType: "image/jpeg",
	})
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("超限文件应被拒绝, 实际 %v", err)
	}
}

func TestUploadImageDevelopmentMode(t *testing.T) {
	svc := NewStorageService(nil, zap.NewNop())

	res, err := svc.UploadImage(context.Background(), &upload.File{
		Data:        []byte("fake jpeg"),
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("开发模式上传失败: %v", err)
	}
	if !strings.HasPrefix(res.URL, "https://placehold.co/400x400/EDE9FE/A78BFA?text=Reference+") {
		t.Errorf("开发模式应返回占位图 URL, 实际 %s", res.URL)
	}
	if res.Message == "" {
		t.Error("开发模式应带提示信息")
	}
}
