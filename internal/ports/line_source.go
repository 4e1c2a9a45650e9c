package ports

import "context"

// LineSource provides lines of an input file one at a time.
// A source is consumed once; restarting means opening the file again.
type LineSource interface {
	// Open acquires the underlying file handle.
	// Returns an error wrapping domain.ErrFileAccess if the file cannot be opened.
	Open(ctx context.Context) error

	// Next returns the next line with its terminator stripped.
	// Returns io.EOF when the input is exhausted.
	// Returns an error wrapping domain.ErrLineDecode if a line cannot be read.
	Next(ctx context.Context) (string, error)

	// Close releases the file handle. Safe to call more than once.
	Close() error
}
