// Package efflux ships a local log file to a Splunk HTTP Event Collector.
//
// The file is read line by line and grouped into batches whose summed line
// length stays under MaxBatchBytes. Each batch is posted to the collector's
// raw endpoint as newline-separated text, strictly one request at a time.
//
// # Usage
//
//	cfg := efflux.DefaultConfig()
//	cfg.File = "/var/log/app.log"
//	cfg.Host = "x.splunk.com"
//	cfg.Token = os.Getenv("SPLUNK_TOKEN")
//
//	s, err := efflux.New(cfg, efflux.WithOutput(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	return s.Run(ctx)
//
// # Errors
//
// Run stops at the first fatal error: the file cannot be opened
// ([ErrFileAccess]), a line cannot be decoded ([ErrLineDecode]) or a request
// does not complete ([ErrTransport]). Batches sent before the error are not
// rolled back. HTTP status codes, including 4xx and 5xx, are reported but
// never treated as errors.
package efflux
