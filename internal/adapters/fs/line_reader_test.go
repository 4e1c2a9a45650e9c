package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/efflux/internal/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *LineReader) ([]string, error) {
	t.Helper()
	ctx := context.Background()
	var lines []string
	for {
		line, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func TestLineReader_Lines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", nil},
		{"single line with newline", "hello\n", []string{"hello"}},
		{"final line without newline", "a\nb", []string{"a", "b"}},
		{"crlf terminators", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines preserved", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"utf8 content", "héllo\nwörld\n", []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineReader(writeFile(t, tt.content))
			if err := r.Open(context.Background()); err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer r.Close()

			got, err := readAll(t, r)
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 3*readBufferSize+17)
	r := NewLineReader(writeFile(t, long+"\nshort\n"))
	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	got, err := readAll(t, r)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Errorf("unexpected lines: %d lines, first len %d", len(got), len(got[0]))
	}
}

func TestLineReader_MissingFile(t *testing.T) {
	r := NewLineReader(filepath.Join(t.TempDir(), "nope.log"))
	err := r.Open(context.Background())
	if !errors.Is(err, domain.ErrFileAccess) {
		t.Fatalf("Open() error = %v, want ErrFileAccess", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, should wrap os.ErrNotExist", err)
	}
}

func TestLineReader_Directory(t *testing.T) {
	r := NewLineReader(t.TempDir())
	if err := r.Open(context.Background()); !errors.Is(err, domain.ErrFileAccess) {
		t.Fatalf("Open() error = %v, want ErrFileAccess", err)
	}
}

func TestLineReader_InvalidUTF8(t *testing.T) {
	r := NewLineReader(writeFile(t, "ok\nbad \xff\xfe\nnever\n"))
	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	got, err := readAll(t, r)
	if !errors.Is(err, domain.ErrLineDecode) {
		t.Fatalf("error = %v, want ErrLineDecode", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("lines before failure = %q, want [ok]", got)
	}
}

func TestLineReader_NextBeforeOpen(t *testing.T) {
	r := NewLineReader("unused")
	if _, err := r.Next(context.Background()); err == nil {
		t.Error("Next() before Open should fail")
	}
}

func TestLineReader_CloseIdempotent(t *testing.T) {
	r := NewLineReader(writeFile(t, "a\n"))
	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := r.Next(context.Background()); err == nil {
		t.Error("Next() after Close should fail")
	}
}

func TestLineReader_CanceledContext(t *testing.T) {
	r := NewLineReader(writeFile(t, "a\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Open(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}
