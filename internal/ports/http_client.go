package ports

import "net/http"

// HTTPClient performs the collector POST for the uploader.
// *http.Client satisfies it; tests substitute clients that fail or record.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
