// Package codec seeds and exports configuration stores through byte
// slices. No file access happens here; callers own where the bytes come
// from and where they go.
package codec

import "fmt"

// DecodeError reports a document that could not be decoded.
type DecodeError struct {
	// Format is the document format ("toml", "yaml", "json").
	Format string
	// Err is the underlying decoder error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("decoding %s document failed", e.Format)
	}
	return fmt.Sprintf("decoding %s document: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
