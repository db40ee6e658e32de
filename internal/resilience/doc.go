// Package resilience groups the fault tolerance helpers that sit between the
// HTTP layer and the document store.
//
//   - circuitbreaker: fails session acquisition fast while the store is down
//   - retry: exponential backoff with jitter for start-up connection attempts
package resilience
