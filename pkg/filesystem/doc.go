// Package filesystem provides filesystem implementations for aidot.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used by the pipeline.
package filesystem
