package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingColumnError_Is(t *testing.T) {
	var err error = &MissingColumnError{Missing: []string{"Payment Pending"}}

	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorIs(t, fmt.Errorf("resolve columns: %w", err), ErrMissingColumn)
	assert.NotErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "Payment Pending")

	var target *MissingColumnError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, []string{"Payment Pending"}, target.Missing)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidFileType, "Please upload a CSV file"},
		{&MissingColumnError{Missing: []string{"Amount Bonused"}}, "CSV must contain columns: Payment Received, Payment Pending, Amount Bonused"},
		{fmt.Errorf("parse: %w", ErrEmptyInput), "Error parsing CSV: CSV must contain at least a header row and one data row"},
		{ErrNoStudyData, "Please upload a CSV file first."},
		{fmt.Errorf("read upload: %w", ErrReadFailure), "Error reading file. Please try again."},
		{errors.New("anything else"), "Error reading file. Please try again."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}

func TestUserMessageFor(t *testing.T) {
	wrapped := fmt.Errorf("%w: %q", ErrInvalidFileType, "notes.txt")

	assert.Equal(t, "Please upload a CSV file", UserMessageFor(SourceConnect, wrapped))
	assert.Equal(t, "Please upload a CSV file.", UserMessageFor(SourceProlific, wrapped))
	assert.Equal(t, MsgNoStudyData, UserMessageFor(SourceProlific, ErrNoStudyData))
	assert.Equal(t, MsgMissingColumns, UserMessageFor(SourceConnect, &MissingColumnError{}))
}
