package domain

import "strings"

// LineSeparator is written after every line when a batch is rendered as a
// request body. It is not counted towards TotalBytes.
const LineSeparator = "\n"

// Batch is an ordered group of lines ready to be sent together.
type Batch struct {
	// Lines holds the source lines in file order, terminators stripped
	Lines []string

	// TotalBytes is the sum of all line lengths, separators excluded
	TotalBytes int
}

// NewBatch creates a new empty batch.
func NewBatch() *Batch {
	return &Batch{
		Lines: make([]string, 0),
	}
}

// Add appends a line to the batch.
func (b *Batch) Add(line string) {
	b.Lines = append(b.Lines, line)
	b.TotalBytes += len(line)
}

// Size returns the number of lines in the batch.
func (b *Batch) Size() int {
	return len(b.Lines)
}

// Empty returns true if the batch has no lines.
func (b *Batch) Empty() bool {
	return len(b.Lines) == 0
}

// BodySize returns the number of bytes Body will produce.
func (b *Batch) BodySize() int {
	return b.TotalBytes + len(b.Lines)*len(LineSeparator)
}

// Body renders the batch as a request body: each line followed by
// LineSeparator.
func (b *Batch) Body() string {
	var sb strings.Builder
	sb.Grow(b.BodySize())
	for _, l := range b.Lines {
		sb.WriteString(l)
		sb.WriteString(LineSeparator)
	}
	return sb.String()
}
