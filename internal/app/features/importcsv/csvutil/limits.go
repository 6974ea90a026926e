// internal/app/features/importcsv/csvutil/limits.go
package csvutil

import "errors"

// Upload size and row limits for CSV processing.
const (
	MaxUploadSize = 5 << 20 // 5 MB
	MaxRows       = 5000
)

var (
	ErrEmptyFile   = errors.New("the file is empty")
	ErrTooManyRows = errors.New("the file has too many rows")
)
