package terminal

import "errors"

// Editor errors.
var (
	// ErrUnsavedChanges is returned when a command would discard edits.
	ErrUnsavedChanges = errors.New("unsaved changes (add ! to override)")

	// ErrNoFileName is returned when writing a document without a path.
	ErrNoFileName = errors.New("no file name")
)

// FileError records a failed file operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
