package storage

import (
	"Chirper/internal/api/config"
	"bytes"
	"context"
	"mime/multipart"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// 头像与封面统一限制在 1024px 内
const maxImageEdge = 1024

// Uploader 上传单个表单文件并返回可公开访问的地址。
// file 为 nil 时返回空字符串，调用方回退到既有值。
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// NewUploader 按配置选择上传后端
func NewUploader(cfg config.StorageConfig) (Uploader, error) {
	switch cfg.Backend {
	case "minio":
		return &minioUploader{}, nil
	case "imgur":
		return newImgurUploader(cfg.ImgurClientID), nil
	case "", "local":
		return newLocalUploader(cfg.LocalDir, cfg.LocalBaseURL)
	default:
		return nil, errors.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// normalizeImage 解码、按边界缩小并重编码为 JPEG
func normalizeImage(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "decode uploaded image")
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageEdge || bounds.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, errors.Wrap(err, "encode image")
	}
	return buf.Bytes(), nil
}
