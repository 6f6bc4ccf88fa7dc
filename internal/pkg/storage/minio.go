package storage

import (
	"Chirper/internal/pkg/minio"
	"bytes"
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

type minioUploader struct{}

func (s *minioUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}

	data, err := normalizeImage(file)
	if err != nil {
		return "", err
	}

	objectName := "upload/" + uuid.NewString() + ".jpg"
	key, err := minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), "image/jpeg")
	if err != nil {
		return "", err
	}

	return minio.GetPublicURL(key), nil
}
