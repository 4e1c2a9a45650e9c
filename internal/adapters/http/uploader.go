package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bft-labs/efflux/internal/domain"
	"github.com/bft-labs/efflux/internal/ports"
)

const contentType = "text/plain; charset=utf-8"

// Uploader implements ports.Uploader using HTTP.
type Uploader struct {
	client    ports.HTTPClient
	logger    ports.Logger
	userAgent string
}

// NewUploader creates a new HTTP uploader.
func NewUploader(client ports.HTTPClient, logger ports.Logger, userAgent string) *Uploader {
	return &Uploader{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

// Send posts the batch body to the endpoint and returns the response status.
// The status is not interpreted; only a failed round trip is an error.
func (u *Uploader) Send(ctx context.Context, batch *domain.Batch, endpoint domain.Endpoint) (int, error) {
	body := batch.Body()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, strings.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", endpoint.Authorization)
	req.Header.Set("Content-Type", contentType)
	if u.userAgent != "" {
		req.Header.Set("User-Agent", u.userAgent)
	}

	start := time.Now()
	resp, err := u.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the content is not validated.
	n, _ := io.Copy(io.Discard, resp.Body)

	u.logger.Debug("collector response",
		ports.Int("status", resp.StatusCode),
		ports.Int("request_bytes", len(body)),
		ports.Int64("response_bytes", n),
		ports.Duration("duration", time.Since(start)),
	)

	return resp.StatusCode, nil
}
