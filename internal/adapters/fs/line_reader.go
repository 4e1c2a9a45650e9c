package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bft-labs/efflux/internal/domain"
)

const readBufferSize = 64 << 10

// LineReader implements ports.LineSource over a local file.
// Lines may be of any length; terminators ("\n" or "\r\n") are stripped.
type LineReader struct {
	path   string
	file   *os.File
	reader *bufio.Reader
	lineNo int
}

// NewLineReader creates a LineReader for the given path. The file is not
// opened until Open is called.
func NewLineReader(path string) *LineReader {
	return &LineReader{path: path}
}

// Open acquires the file handle.
func (r *LineReader) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.file != nil {
		return fmt.Errorf("%s: already open", r.path)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	st, err := f.Stat()
	if err == nil && st.IsDir() {
		f.Close()
		return fmt.Errorf("%w: %s is a directory", domain.ErrFileAccess, r.path)
	}

	r.file = f
	r.reader = bufio.NewReaderSize(f, readBufferSize)
	r.lineNo = 0
	return nil
}

// Next returns the next line. Returns io.EOF once the file is exhausted.
func (r *LineReader) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.reader == nil {
		return "", fmt.Errorf("%s: not open", r.path)
	}

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s line %d: %w", domain.ErrLineDecode, r.path, r.lineNo+1, err)
		}
		// Final line without a terminator is still a line.
		if line == "" {
			return "", io.EOF
		}
	}
	r.lineNo++

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w: %s line %d: invalid UTF-8", domain.ErrLineDecode, r.path, r.lineNo)
	}
	return line, nil
}

// Close releases the file handle. Safe to call more than once.
func (r *LineReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.reader = nil
	return err
}
