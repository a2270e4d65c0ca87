package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/mocks"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func newTestStudyService(repo domain.StudyUploadRepository) StudyService {
	return NewStudyService(repo, StudyConfig{
		DefaultConversionRate: 1.25,
		Now:                   func() time.Time { return fixedNow },
	}, logger.NewNop())
}

func storedUpload(rows ...domain.StudyRow) *domain.StudyUpload {
	return &domain.StudyUpload{
		ID:           "test-upload-123",
		TotalStudies: len(rows),
		Rows:         rows,
	}
}

func TestNewStudyService(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)

	svc := NewStudyService(repo, StudyConfig{}, logger.NewNop())

	assert.NotNil(t, svc)
	assert.Implements(t, (*StudyService)(nil), svc)
}

func TestUpload_Success(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	file := textFile("prolific.csv", "", "Study,Reward,Bonus,Status,Started At\n"+
		"A,$1.00,,APPROVED,2026-10-14\n"+
		"\n"+
		"B,£2.00,,RETURNED,2026-10-14\n")

	var stored *domain.StudyUpload
	repo.EXPECT().
		CreateUpload(mock.Anything, mock.AnythingOfType("*domain.StudyUpload")).
		Run(func(ctx context.Context, upload *domain.StudyUpload) {
			stored = upload
		}).
		Return(nil).
		Once()

	upload, err := svc.Upload(context.Background(), file)

	require.NoError(t, err)
	assert.Len(t, upload.ID, 36)
	assert.Equal(t, "prolific.csv", upload.FileName)
	assert.Equal(t, 2, upload.TotalStudies)
	assert.Equal(t, fixedNow, upload.CreatedAt)
	assert.Equal(t, []string{"Study", "Reward", "Bonus", "Status", "Started At"}, upload.Headers)
	assert.Same(t, upload, stored)
	assert.Equal(t, "CSV file loaded successfully! Found 2 studies.", LoadedMessage(upload.TotalStudies))
}

func TestUpload_EmptyInput(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	_, err := svc.Upload(context.Background(), textFile("prolific.csv", "", "Study,Reward"))

	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	repo.AssertNotCalled(t, "CreateUpload", mock.Anything, mock.Anything)
}

func TestUpload_InvalidFileType(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	_, err := svc.Upload(context.Background(), textFile("prolific.json", "application/json", "{}"))

	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
}

func TestUpload_StoreError(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)
	expectedError := errors.New("store full")

	repo.EXPECT().
		CreateUpload(mock.Anything, mock.Anything).
		Return(expectedError).
		Once()

	upload, err := svc.Upload(context.Background(), textFile("p.csv", "", "Study\nA"))

	assert.Equal(t, expectedError, err)
	assert.Nil(t, upload)
}

func TestCalculate_Success(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)
	ctx := context.Background()

	upload := storedUpload(
		domain.StudyRow{Study: "A", Reward: "$2.00", Bonus: "$0.50", Status: "AWAITING REVIEW", StartedAt: "2026-10-14T10:00:00Z"},
		domain.StudyRow{Study: "B", Reward: "£1.00", Bonus: "£0.20", Status: "APPROVED", StartedAt: "2026-10-14T11:00:00Z"},
		domain.StudyRow{Study: "C", Reward: "£1.00", Status: "REJECTED", StartedAt: "2026-10-14T11:00:00Z"},
		domain.StudyRow{Study: "D", Reward: "$9.00", Status: "APPROVED", StartedAt: "2026-10-13T11:00:00Z"},
	)

	repo.EXPECT().
		GetUpload(mock.Anything, upload.ID).
		Return(upload, nil).
		Once()

	repo.EXPECT().
		SaveCalculation(mock.Anything, upload.ID, mock.AnythingOfType("*domain.StudyCalculation"), "").
		Return(nil).
		Once()

	calc, err := svc.Calculate(ctx, upload.ID, "2")

	require.NoError(t, err)
	assert.Equal(t, 2.0, calc.ConversionRate)
	assert.Equal(t, "2026-10-14", calc.Today)
	assert.Equal(t, fixedNow, calc.CalculatedAt)

	result := calc.Result
	assert.Equal(t, 4, result.TotalStudies)
	assert.Equal(t, 2, result.ValidStudies)
	assert.Equal(t, 2.0, result.USDRewards)
	assert.Equal(t, 0.5, result.USDBonuses)
	assert.Equal(t, 1.0, result.GBPRewards)
	assert.Equal(t, 0.2, result.GBPBonuses)
	assert.Equal(t, earnings.TotalEarnings(result, 2), result.TotalEarnings)

	require.Len(t, calc.Studies, 2)
	assert.Equal(t, "A", calc.Studies[0].Study)
	assert.Equal(t, "B", calc.Studies[1].Study)
}

func TestCalculate_DefaultRate(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc"} {
		repo := mocks.NewMockStudyUploadRepository(t)
		svc := newTestStudyService(repo)

		upload := storedUpload(domain.StudyRow{Reward: "£4.00", Status: "APPROVED", StartedAt: "2026-10-14"})

		repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Once()
		repo.EXPECT().SaveCalculation(mock.Anything, upload.ID, mock.Anything, "").Return(nil).Once()

		calc, err := svc.Calculate(context.Background(), upload.ID, raw)

		require.NoError(t, err, "rate %q", raw)
		assert.Equal(t, 1.25, calc.ConversionRate)
		assert.Equal(t, 5.0, calc.Result.TotalEarnings)
	}
}

func TestCalculate_NegativeRateRecordsError(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	upload := storedUpload(domain.StudyRow{Reward: "£4.00", Status: "APPROVED", StartedAt: "2026-10-14"})

	repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Once()
	repo.EXPECT().
		SaveCalculation(mock.Anything, upload.ID, (*domain.StudyCalculation)(nil), "conversion rate must be a non-negative number").
		Return(nil).
		Once()

	calc, err := svc.Calculate(context.Background(), upload.ID, "-1")

	assert.ErrorIs(t, err, domain.ErrInvalidConversionRate)
	assert.Nil(t, calc)
}

func TestCalculate_NoRows(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	upload := storedUpload()

	repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Once()
	repo.EXPECT().
		SaveCalculation(mock.Anything, upload.ID, (*domain.StudyCalculation)(nil), domain.MsgNoStudyData).
		Return(nil).
		Once()

	_, err := svc.Calculate(context.Background(), upload.ID, "")

	assert.ErrorIs(t, err, domain.ErrNoStudyData)
}

func TestCalculate_UploadNotFound(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	repo.EXPECT().
		GetUpload(mock.Anything, "missing").
		Return(nil, domain.ErrUploadNotFound).
		Once()

	_, err := svc.Calculate(context.Background(), "missing", "")

	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestCalculate_TodayFollowsClockInUTC(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)

	// 22:30 at UTC-5 on the 14th is already the 15th in UTC.
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, time.October, 14, 22, 30, 0, 0, est)

	svc := NewStudyService(repo, StudyConfig{
		Now:   func() time.Time { return now },
		Dates: earnings.DateMatcher{Location: est},
	}, logger.NewNop())

	upload := storedUpload(
		domain.StudyRow{Study: "late", Reward: "$1", Status: "APPROVED", StartedAt: "2026-10-14 21:00:00"},
		domain.StudyRow{Study: "early", Reward: "$1", Status: "APPROVED", StartedAt: "2026-10-14 09:00:00"},
	)

	repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Once()
	repo.EXPECT().SaveCalculation(mock.Anything, upload.ID, mock.Anything, "").Return(nil).Once()

	calc, err := svc.Calculate(context.Background(), upload.ID, "")

	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", calc.Today)
	require.Len(t, calc.Studies, 1)
	assert.Equal(t, "late", calc.Studies[0].Study)
}

func TestCalculate_ContextPropagation(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)

	ctx := logger.WithTraceID(context.Background(), "test-trace-123")

	repo.EXPECT().
		GetUpload(mock.MatchedBy(func(ctx context.Context) bool {
			return logger.GetUploadID(ctx) == "test-upload-123" &&
				logger.GetTraceID(ctx) == "test-trace-123" &&
				logger.GetSource(ctx) == "prolific"
		}), "test-upload-123").
		Return(nil, domain.ErrUploadNotFound).
		Once()

	_, err := svc.Calculate(ctx, "test-upload-123", "")

	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestGetAndDeleteUpload(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := newTestStudyService(repo)
	ctx := context.Background()

	upload := storedUpload()
	repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Once()
	repo.EXPECT().DeleteUpload(mock.Anything, upload.ID).Return(nil).Once()
	repo.EXPECT().DeleteUpload(mock.Anything, "missing").Return(domain.ErrUploadNotFound).Once()

	got, err := svc.GetUpload(ctx, upload.ID)
	require.NoError(t, err)
	assert.Equal(t, upload, got)

	assert.NoError(t, svc.DeleteUpload(ctx, upload.ID))
	assert.ErrorIs(t, svc.DeleteUpload(ctx, "missing"), domain.ErrUploadNotFound)
}

func TestParseConversionRate(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 1.25, false},
		{"1.31", 1.31, false},
		{" 0 ", 0, false},
		{"abc", 1.25, false},
		{"NaN", 1.25, false},
		{"Inf", 1.25, false},
		{"-0.5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseConversionRate(tt.raw, 1.25)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidConversionRate, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestCalculatedMessage(t *testing.T) {
	assert.Equal(t, "Found 3 valid studies started today.", CalculatedMessage(3))
	assert.Contains(t, CalculatedMessage(0), "No valid studies found that were started today.")
	assert.Equal(t, "CSV file loaded successfully! Found 7 studies.", LoadedMessage(7))
}

func TestCalculate_ZeroDefaultMeansUnsetButZeroInputIsHonoured(t *testing.T) {
	repo := mocks.NewMockStudyUploadRepository(t)
	svc := NewStudyService(repo, StudyConfig{
		DefaultConversionRate: 0,
		Now:                   func() time.Time { return fixedNow },
	}, logger.NewNop())

	upload := storedUpload(
		domain.StudyRow{Study: "gbp", Reward: "£2.00", Status: "APPROVED", StartedAt: "2026-10-14 09:00:00"},
	)

	repo.EXPECT().GetUpload(mock.Anything, upload.ID).Return(upload, nil).Twice()
	repo.EXPECT().SaveCalculation(mock.Anything, upload.ID, mock.Anything, "").Return(nil).Twice()

	calc, err := svc.Calculate(context.Background(), upload.ID, "")
	require.NoError(t, err)
	assert.Equal(t, earnings.DefaultConversionRate, calc.ConversionRate)
	assert.InDelta(t, 2.5, calc.Result.TotalEarnings, 1e-9)

	calc, err = svc.Calculate(context.Background(), upload.ID, "0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, calc.ConversionRate)
	assert.Equal(t, 0.0, calc.Result.TotalEarnings)
}
