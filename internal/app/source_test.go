package app

import (
	"context"
	"io"
)

// sliceSource implements ports.LineSource over an in-memory slice.
type sliceSource struct {
	lines   []string
	failAt  int // index of the line whose read fails; -1 for never
	failErr error
	openErr error

	pos    int
	opened bool
	closed bool
	reads  int
}

func newSliceSource(lines ...string) *sliceSource {
	return &sliceSource{lines: lines, failAt: -1}
}

func (s *sliceSource) Open(ctx context.Context) error {
	if s.openErr != nil {
		return s.openErr
	}
	s.opened = true
	return nil
}

func (s *sliceSource) Next(ctx context.Context) (string, error) {
	s.reads++
	if s.pos == s.failAt {
		return "", s.failErr
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}
