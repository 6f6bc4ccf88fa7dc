package storage

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type localUploader struct {
	dir     string
	baseURL string
}

func newLocalUploader(dir, baseURL string) (*localUploader, error) {
	if dir == "" {
		dir = "upload"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	return &localUploader{dir: dir, baseURL: baseURL}, nil
}

func (s *localUploader) Upload(_ context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}

	data, err := normalizeImage(file)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ".jpg"
	if err = os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "write uploaded file")
	}

	return s.baseURL + "/" + name, nil
}
