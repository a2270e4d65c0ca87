package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/grachmannico95/gig-earnings/internal/domain"
)

// localFile adapts a path on disk. Only the file name suffix identifies
// the type.
func localFile(path string) domain.UploadedFile {
	return domain.UploadedFile{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// userError prints the user-facing message while keeping the cause
// available to errors.Is.
type userError struct {
	source domain.Source
	err    error
}

func (e *userError) Error() string {
	return domain.UserMessageFor(e.source, e.err)
}

func (e *userError) Unwrap() error {
	return e.err
}

func asUserError(source domain.Source, err error) error {
	if err == nil {
		return nil
	}
	return &userError{source: source, err: err}
}
