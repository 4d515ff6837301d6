package lint

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gozhlint/pkg/fsutil"
)

// Error categories for file processing.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidEncoding indicates the file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrParseFailure indicates the code-region parser failed.
	ErrParseFailure = errors.New("parse failure")
)

// CategorizeError wraps err with the matching category sentinel so callers
// can use errors.Is without knowing about fsutil or os errors.
func CategorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	if errors.Is(err, fsutil.ErrInvalidEncoding) {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return err
}

// IsFileError checks if an error is a known file processing category.
func IsFileError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrParseFailure)
}
