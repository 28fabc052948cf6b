// Package retry provides exponential backoff retry logic for transient failures.
//
// [Do] retries an operation until it succeeds, the attempt budget is spent,
// the context ends, or the error is classified as permanent. AWS describe
// calls use it to ride out API throttling.
package retry
