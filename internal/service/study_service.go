package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
)

type StudyService interface {
	Upload(ctx context.Context, file domain.UploadedFile) (*domain.StudyUpload, error)
	// Calculate runs today's filter over a stored upload. conversionRate is
	// the raw user input; empty or unparsable input uses the default rate.
	Calculate(ctx context.Context, uploadID, conversionRate string) (*domain.StudyCalculation, error)
	GetUpload(ctx context.Context, uploadID string) (*domain.StudyUpload, error)
	DeleteUpload(ctx context.Context, uploadID string) error
}

type StudyConfig struct {
	// DefaultConversionRate must be positive; zero means unset. A rate of 0
	// can still be requested per calculation.
	DefaultConversionRate float64
	Dates                 earnings.DateMatcher
	// Now defaults to time.Now.
	Now func() time.Time
}

type studyService struct {
	repo   domain.StudyUploadRepository
	cfg    StudyConfig
	logger *logger.Logger
}

func NewStudyService(repo domain.StudyUploadRepository, cfg StudyConfig, log *logger.Logger) StudyService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.DefaultConversionRate <= 0 {
		cfg.DefaultConversionRate = earnings.DefaultConversionRate
	}

	return &studyService{
		repo:   repo,
		cfg:    cfg,
		logger: log,
	}
}

func (s *studyService) Upload(ctx context.Context, file domain.UploadedFile) (*domain.StudyUpload, error) {
	uploadID := uuid.New().String()

	ctx = logger.WithSource(logger.WithUploadID(ctx, uploadID), string(domain.SourceProlific))

	s.logger.Info(ctx, "Loading study export",
		"file_name", file.Name,
	)

	text, err := ReadUploadedText(file)
	if err != nil {
		s.logger.Warn(ctx, "Rejected study upload",
			"error", err,
		)
		return nil, err
	}

	headers, rows, err := earnings.ParseStudies(text)
	if err != nil {
		s.logger.Warn(ctx, "Failed to parse study export",
			"error", err,
		)
		return nil, err
	}

	upload := &domain.StudyUpload{
		ID:           uploadID,
		FileName:     file.Name,
		TotalStudies: len(rows),
		CreatedAt:    s.cfg.Now(),
		Headers:      headers,
		Rows:         rows,
	}

	if err := s.repo.CreateUpload(ctx, upload); err != nil {
		s.logger.Error(ctx, "Failed to store upload",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Study export loaded",
		"total_studies", upload.TotalStudies,
	)

	return upload, nil
}

func (s *studyService) Calculate(ctx context.Context, uploadID, conversionRate string) (*domain.StudyCalculation, error) {
	ctx = logger.WithSource(logger.WithUploadID(ctx, uploadID), string(domain.SourceProlific))

	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		s.logger.Warn(ctx, "Failed to get upload",
			"error", err,
		)
		return nil, err
	}

	// Upload rejects tables without data rows, so this only guards uploads
	// stored by other repository writers.
	if len(upload.Rows) == 0 {
		return nil, s.fail(ctx, uploadID, domain.ErrNoStudyData)
	}

	rate, err := ParseConversionRate(conversionRate, s.cfg.DefaultConversionRate)
	if err != nil {
		return nil, s.fail(ctx, uploadID, err)
	}

	now := s.cfg.Now()
	opts := earnings.StudyOptions{
		Today:          now.UTC(),
		ConversionRate: rate,
		Dates:          s.cfg.Dates,
	}

	result, eligible := earnings.AggregateStudies(upload.Rows, opts)

	calc := &domain.StudyCalculation{
		Result:         result,
		Studies:        eligible,
		ConversionRate: rate,
		Today:          earnings.CalendarDate(now),
		CalculatedAt:   now,
	}

	if err := s.repo.SaveCalculation(ctx, uploadID, calc, ""); err != nil {
		s.logger.Error(ctx, "Failed to save calculation",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Study earnings calculated",
		"today", calc.Today,
		"conversion_rate", rate,
		"total_studies", result.TotalStudies,
		"valid_studies", result.ValidStudies,
		"total_earnings", result.TotalEarnings,
	)

	return calc, nil
}

// fail records err as the upload's latest outcome and returns it.
func (s *studyService) fail(ctx context.Context, uploadID string, err error) error {
	s.logger.Warn(ctx, "Study calculation rejected",
		"error", err,
	)

	if saveErr := s.repo.SaveCalculation(ctx, uploadID, nil, domain.UserMessageFor(domain.SourceProlific, err)); saveErr != nil {
		s.logger.Error(ctx, "Failed to save calculation error",
			"error", saveErr,
		)
	}
	return err
}

func (s *studyService) GetUpload(ctx context.Context, uploadID string) (*domain.StudyUpload, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Debug(ctx, "Getting upload")

	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		s.logger.Debug(ctx, "Failed to get upload",
			"error", err,
		)
		return nil, err
	}

	return upload, nil
}

func (s *studyService) DeleteUpload(ctx context.Context, uploadID string) error {
	ctx = logger.WithUploadID(ctx, uploadID)

	if err := s.repo.DeleteUpload(ctx, uploadID); err != nil {
		s.logger.Debug(ctx, "Failed to delete upload",
			"error", err,
		)
		return err
	}

	s.logger.Info(ctx, "Upload deleted")
	return nil
}

// ParseConversionRate reads user input for the USD per GBP rate. Blank,
// unparsable and non-finite input yields fallback; negative rates are
// rejected.
func ParseConversionRate(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fallback, nil
	}
	if rate < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidConversionRate, raw)
	}

	return rate, nil
}

func LoadedMessage(totalStudies int) string {
	return fmt.Sprintf("CSV file loaded successfully! Found %d studies.", totalStudies)
}

func CalculatedMessage(validStudies int) string {
	if validStudies == 0 {
		return "No valid studies found that were started today. This could be because:\n" +
			"- No studies were started today\n" +
			"- All studies have invalid statuses (TIMED-OUT, RETURNED, REJECTED)\n" +
			"- The \"Started At\" column is missing or has invalid dates"
	}
	return fmt.Sprintf("Found %d valid studies started today.", validStudies)
}
