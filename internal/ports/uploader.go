package ports

import (
	"context"

	"github.com/bft-labs/efflux/internal/domain"
)

// Uploader transmits a batch to the collector.
type Uploader interface {
	// Send posts the batch body to the endpoint and blocks until a response
	// arrives. Any HTTP status is returned without interpretation.
	// Returns an error wrapping domain.ErrTransport if the request could not
	// complete.
	Send(ctx context.Context, batch *domain.Batch, endpoint domain.Endpoint) (int, error)
}
