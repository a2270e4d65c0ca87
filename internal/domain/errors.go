package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidFileType       = errors.New("invalid file type")
	ErrEmptyInput            = errors.New("empty input")
	ErrMissingColumn         = errors.New("missing required column")
	ErrReadFailure           = errors.New("read failure")
	ErrUploadNotFound        = errors.New("upload not found")
	ErrNoStudyData           = errors.New("no study data")
	ErrInvalidConversionRate = errors.New("invalid conversion rate")
)

const (
	MsgInvalidFileType = "Please upload a CSV file"
	// The study page words the same rejection with a trailing period.
	MsgInvalidStudyFileType = "Please upload a CSV file."
	MsgEmptyInput           = "CSV must contain at least a header row and one data row"
	MsgMissingColumns       = "CSV must contain columns: Payment Received, Payment Pending, Amount Bonused"
	MsgReadFailure          = "Error reading file. Please try again."
	MsgNoStudyData          = "Please upload a CSV file first."
)

// MissingColumnError lists the logical Connect columns that could not be
// resolved.
type MissingColumnError struct {
	Missing []string
}

func (e *MissingColumnError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// UserMessage converts an error into the single message shown to the user.
// Unknown errors fall back to the read-failure retry prompt.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFileType):
		return MsgInvalidFileType
	case errors.Is(err, ErrMissingColumn):
		return MsgMissingColumns
	case errors.Is(err, ErrEmptyInput):
		return "Error parsing CSV: " + MsgEmptyInput
	case errors.Is(err, ErrNoStudyData):
		return MsgNoStudyData
	case errors.Is(err, ErrUploadNotFound):
		return "upload not found"
	case errors.Is(err, ErrInvalidConversionRate):
		return "conversion rate must be a non-negative number"
	default:
		return MsgReadFailure
	}
}

// UserMessageFor is UserMessage with the wording of the given source's page.
func UserMessageFor(src Source, err error) string {
	if src == SourceProlific && errors.Is(err, ErrInvalidFileType) {
		return MsgInvalidStudyFileType
	}
	return UserMessage(err)
}
