// Package resilience provides a minimal retry primitive.
//
// Retry re-invokes a failing operation a bounded number of times with a
// fixed delay between attempts. It is intentionally not a resilience
// framework: no jitter, no exponential backoff, no per-attempt timeout.
// Waits are context-aware, so a retry sequence suspends cooperatively and
// aborts on cancellation instead of retrying it.
package resilience
