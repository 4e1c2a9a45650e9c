package app

import (
	"context"
	"errors"
	"io"

	"github.com/bft-labs/efflux/internal/domain"
	"github.com/bft-labs/efflux/internal/ports"
)

// Batcher groups consecutive lines from a source into size-bounded batches.
//
// A batch accumulates lines while the sum of their lengths stays below
// maxBytes. The line that would bring the sum to or above maxBytes is held
// back and opens the next batch. A line is always accepted into an empty
// batch, so a line longer than maxBytes is sent alone and never split.
// Separators are not counted, making maxBytes a soft limit on the body.
type Batcher struct {
	source   ports.LineSource
	maxBytes int

	pending    string
	hasPending bool
	exhausted  bool
}

// NewBatcher creates a batcher reading from source.
func NewBatcher(source ports.LineSource, maxBytes int) *Batcher {
	return &Batcher{
		source:   source,
		maxBytes: maxBytes,
	}
}

// Next builds the next batch.
// Returns io.EOF when the source has no more lines. Source errors are
// returned as-is and leave the batcher unusable.
func (b *Batcher) Next(ctx context.Context) (*domain.Batch, error) {
	batch := domain.NewBatch()

	if b.hasPending {
		batch.Add(b.pending)
		b.pending, b.hasPending = "", false
	}

	for !b.exhausted {
		// Oversized line: it fills the batch on its own.
		if !batch.Empty() && batch.TotalBytes >= b.maxBytes {
			break
		}

		line, err := b.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			b.exhausted = true
			break
		}
		if err != nil {
			return nil, err
		}

		if !batch.Empty() && batch.TotalBytes+len(line) >= b.maxBytes {
			b.pending, b.hasPending = line, true
			break
		}
		batch.Add(line)
	}

	if batch.Empty() {
		return nil, io.EOF
	}
	return batch, nil
}
