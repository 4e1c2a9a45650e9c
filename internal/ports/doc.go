// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [LineSource]: yields lines from the input file
//   - [Uploader]: posts one batch to the collector endpoint
//   - [Reporter]: records the outcome of each delivered batch
//   - [Logger]: structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters) implement them with the file system,
// net/http and an io.Writer.
package ports
