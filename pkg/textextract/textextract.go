// Package textextract yüklenen dosyalardan düz metin çıkarır. PDF dosyaları
// bir Apache Tika sunucusuna gönderilir.
package textextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const maxErrorBody = 512

var (
	ErrNotConfigured = errors.New("text extraction server is not configured")
	ErrUnsupported   = errors.New("unsupported content type")
	ErrEmptyText     = errors.New("no text could be extracted")
)

// Extractor içerik türüne göre metin çıkarır.
type Extractor interface {
	Extract(ctx context.Context, contentType string, data []byte) (string, error)
}

// TikaClient Tika'nın /tika uç noktasını kullanır.
type TikaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTikaClient(baseURL string, timeout time.Duration) *TikaClient {
	return &TikaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *TikaClient) Extract(ctx context.Context, contentType string, data []byte) (string, error) {
	switch contentType {
	case "text/plain", "text/markdown":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupported)
		}
		return nonEmpty(string(data))
	case "application/pdf":
		return c.extractRemote(ctx, contentType, data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, contentType)
	}
}

func (c *TikaClient) extractRemote(ctx context.Context, contentType string, data []byte) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("extraction server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read extraction response: %w", err)
	}
	return nonEmpty(string(body))
}

func nonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyText
	}
	return s, nil
}

var _ Extractor = (*TikaClient)(nil)
