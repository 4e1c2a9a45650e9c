// Package report prints per-batch delivery outcomes for the operator.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/bft-labs/efflux/internal/domain"
)

// Writer implements ports.Reporter by printing one line per outcome:
//
//	request:<index> size:<bytes> status:<code>
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a reporter printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Report prints the outcome.
func (w *Writer) Report(o domain.Outcome) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.out, "request:%d size:%d status:%d\n", o.Index, o.Bytes, o.StatusCode)
	return err
}
