package service

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/grachmannico95/gig-earnings/internal/domain"
)

// IsCSVFile accepts a ".csv" name in any case, or a text/csv media type.
func IsCSVFile(name, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/csv"
}

// ReadUploadedText checks the file type, then reads the whole file.
// Invalid UTF-8 sequences are replaced rather than rejected.
func ReadUploadedText(file domain.UploadedFile) (string, error) {
	if !IsCSVFile(file.Name, file.ContentType) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFileType, file.Name)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %q: %v", domain.ErrReadFailure, file.Name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("%w: read %q: %v", domain.ErrReadFailure, file.Name, err)
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
