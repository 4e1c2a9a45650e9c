package domain

import "time"

// Outcome is the recorded result of delivering one batch.
// A batch whose request never completed has no Outcome; the transport error
// is returned instead.
type Outcome struct {
	// Index is the zero-based position of the batch in the run
	Index int

	// Bytes is the batch size counted as the sum of line lengths
	Bytes int

	// Lines is the number of lines in the batch
	Lines int

	// StatusCode is the HTTP status returned by the collector
	StatusCode int

	// Duration is the time spent on the request round trip
	Duration time.Duration
}
