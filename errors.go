package readlines

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrFileUnavailable matches every *FileUnavailableError with errors.Is.
var ErrFileUnavailable = errors.New("file unavailable")

// Reason tells why a file could not be read.
type Reason string

const (
	ReasonNotFound         Reason = "not found"
	ReasonPermissionDenied Reason = "permission denied"
	ReasonIsDirectory      Reason = "is a directory"
	ReasonUnreadable       Reason = "unreadable"
)

// FileUnavailableError is returned when a path cannot be opened or read.
type FileUnavailableError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *FileUnavailableError) Error() string {
	// a PathError already carries the path
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("%s: %s: %s (%s: %v)", ErrFileUnavailable, e.Path, e.Reason, pathErr.Op, pathErr.Err)
	}

	return fmt.Sprintf("%s: %s: %s: %v", ErrFileUnavailable, e.Path, e.Reason, e.Err)
}

func (e *FileUnavailableError) Unwrap() error {
	return e.Err
}

func (e *FileUnavailableError) Is(target error) bool {
	return target == ErrFileUnavailable
}

func unavailable(path string, err error) error {
	return &FileUnavailableError{
		Path:   path,
		Reason: reasonOf(err),
		Err:    err,
	}
}

func reasonOf(err error) Reason {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	case errors.Is(err, syscall.EISDIR):
		return ReasonIsDirectory
	default:
		return ReasonUnreadable
	}
}
