package storage

import (
	"context"
	"encoding/base64"
	"mime/multipart"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const imgurUploadURL = "https://api.imgur.com/3/image"

type imgurUploader struct {
	clientID string
	client   *resty.Client
}

func newImgurUploader(clientID string) *imgurUploader {
	return &imgurUploader{
		clientID: clientID,
		client:   resty.New(),
	}
}

type imgurResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		Link  string `json:"link"`
		Error string `json:"error"`
	} `json:"data"`
}

func (s *imgurUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}

	data, err := normalizeImage(file)
	if err != nil {
		return "", err
	}

	var result imgurResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+s.clientID).
		SetFormData(map[string]string{
			"image": base64.StdEncoding.EncodeToString(data),
			"type":  "base64",
		}).
		SetResult(&result).
		Post(imgurUploadURL)
	if err != nil {
		return "", errors.Wrap(err, "imgur upload request")
	}
	if resp.IsError() || !result.Success {
		return "", errors.Errorf("imgur upload failed: status=%d error=%s", resp.StatusCode(), result.Data.Error)
	}

	return result.Data.Link, nil
}
