package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// CollectorPath is the HEC raw ingestion path.
const CollectorPath = "/services/collector/raw"

// Query values used when none are configured.
const (
	DefaultSource     = "efflux"
	DefaultSourceType = "generic_single_line"
)

// Endpoint is the fixed destination every batch is posted to.
// It is resolved once before the run starts and never modified.
type Endpoint struct {
	// URL is the full collector URL including source and sourcetype
	URL string

	// Authorization is the value of the Authorization header
	Authorization string
}

// NewEndpoint resolves the collector URL and authorization header.
// baseURL is the scheme and host, e.g. "https://x.splunk.com".
func NewEndpoint(baseURL, source, sourcetype, token string) Endpoint {
	q := url.Values{}
	q.Set("source", source)
	q.Set("sourcetype", sourcetype)

	return Endpoint{
		URL:           fmt.Sprintf("%s%s?%s", strings.TrimSuffix(baseURL, "/"), CollectorPath, q.Encode()),
		Authorization: "Splunk " + token,
	}
}

// ResolveEndpoint builds the endpoint for a collector host.
// A non-empty serviceURL replaces https://<host> as the base URL.
func ResolveEndpoint(host, serviceURL, source, sourcetype, token string) Endpoint {
	base := serviceURL
	if base == "" {
		base = HostURL(host)
	}
	return NewEndpoint(base, source, sourcetype, token)
}

// HostURL returns the HTTPS base URL for a bare collector host name.
func HostURL(host string) string {
	return "https://" + host
}
