package domain

import "context"

type StudyUploadRepository interface {
	CreateUpload(ctx context.Context, upload *StudyUpload) error
	GetUpload(ctx context.Context, uploadID string) (*StudyUpload, error)
	DeleteUpload(ctx context.Context, uploadID string) error

	// SaveCalculation replaces the upload's previous outcome. Exactly one of
	// calc and errMsg is set.
	SaveCalculation(ctx context.Context, uploadID string, calc *StudyCalculation, errMsg string) error
}
