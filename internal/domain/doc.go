// Package domain contains the core entities and value objects for efflux.
//
// It has no dependencies on infrastructure concerns (HTTP, file system,
// logging) and holds only the batching rules and the values exchanged
// between the application layer and its adapters.
//
// # Entities
//
//   - [Batch]: an ordered, size-bounded group of lines sent as one request body
//   - [Endpoint]: the resolved collector URL and authorization header
//   - [Outcome]: the recorded result of delivering one batch
package domain
