package handler

import (
	"io"
	"mime/multipart"

	"github.com/grachmannico95/gig-earnings/internal/domain"
)

func uploadedFile(fh *multipart.FileHeader) domain.UploadedFile {
	return domain.UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
