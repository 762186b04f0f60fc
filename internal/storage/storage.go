package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Uploader is the narrow contract the handlers depend on; the concrete
// bucket API behind it is a black box.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

var ErrNotConfigured = errors.New("object storage not configured")

// BucketClient uploads to a Supabase-style storage bucket API:
// POST {base}/storage/v1/object/{bucket}/{name} with a bearer key, and
// public URLs at {base}/storage/v1/object/public/{bucket}/{name}.
type BucketClient struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

func NewBucketClient(baseURL, apiKey, bucket string) *BucketClient {
	return &BucketClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *BucketClient) Configured() bool {
	return s.baseURL != "" && s.apiKey != ""
}

func (s *BucketClient) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, body)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name), nil
}
