// Package types defines the core types and interfaces used throughout aidot.
// This includes the FS interface and the low-level Operation structures
// consumed by the executor.
package types
