package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/pkg/money"
)

type ConnectEarningsResponse struct {
	Total     float64                 `json:"total"`
	Breakdown ConnectBreakdown        `json:"breakdown"`
	Formatted ConnectFormattedAmounts `json:"formatted"`
}

type ConnectBreakdown struct {
	Received float64 `json:"received"`
	Pending  float64 `json:"pending"`
	Bonused  float64 `json:"bonused"`
}

type ConnectFormattedAmounts struct {
	Total    string `json:"total"`
	Received string `json:"received"`
	Pending  string `json:"pending"`
	Bonused  string `json:"bonused"`
}

type StudyUploadResponse struct {
	UploadID     string `json:"upload_id"`
	FileName     string `json:"file_name"`
	TotalStudies int    `json:"total_studies"`
	Message      string `json:"message"`
}

type StudyCalculationResponse struct {
	UploadID       string                     `json:"upload_id"`
	Today          string                     `json:"today"`
	ConversionRate float64                    `json:"conversion_rate"`
	Result         domain.StudyEarningsResult `json:"result"`
	Formatted      StudyFormattedAmounts      `json:"formatted"`
	Studies        []StudyRowView             `json:"studies"`
	Message        string                     `json:"message"`
}

type StudyFormattedAmounts struct {
	USDRewards    string `json:"usd_rewards"`
	GBPRewards    string `json:"gbp_rewards"`
	USDBonuses    string `json:"usd_bonuses"`
	GBPBonuses    string `json:"gbp_bonuses"`
	GBPInUSD      string `json:"gbp_in_usd"`
	TotalEarnings string `json:"total_earnings"`
}

type StudyRowView struct {
	Study          string        `json:"study"`
	Reward         string        `json:"reward"`
	Bonus          string        `json:"bonus"`
	Status         string        `json:"status"`
	StatusTone     earnings.Tone `json:"status_tone"`
	CompletionCode string        `json:"completion_code"`
	StartedAt      string        `json:"started_at"`
}

func newConnectEarningsResponse(b domain.EarningsBreakdown) ConnectEarningsResponse {
	return ConnectEarningsResponse{
		Total: b.Total,
		Breakdown: ConnectBreakdown{
			Received: b.Received,
			Pending:  b.Pending,
			Bonused:  b.Bonused,
		},
		Formatted: ConnectFormattedAmounts{
			Total:    money.FormatUSD(b.Total),
			Received: money.FormatUSD(b.Received),
			Pending:  money.FormatUSD(b.Pending),
			Bonused:  money.FormatUSD(b.Bonused),
		},
	}
}

func newStudyCalculationResponse(uploadID string, calc *domain.StudyCalculation, message string) StudyCalculationResponse {
	r := calc.Result

	studies := make([]StudyRowView, 0, len(calc.Studies))
	for _, row := range calc.Studies {
		studies = append(studies, newStudyRowView(row))
	}

	return StudyCalculationResponse{
		UploadID:       uploadID,
		Today:          calc.Today,
		ConversionRate: calc.ConversionRate,
		Result:         r,
		Formatted: StudyFormattedAmounts{
			USDRewards:    money.Format(r.USDRewards, money.USD),
			GBPRewards:    money.Format(r.GBPRewards, money.GBP),
			USDBonuses:    money.Format(r.USDBonuses, money.USD),
			GBPBonuses:    money.Format(r.GBPBonuses, money.GBP),
			GBPInUSD:      money.Format((r.GBPRewards+r.GBPBonuses)*calc.ConversionRate, money.USD),
			TotalEarnings: money.Format(r.TotalEarnings, money.USD),
		},
		Studies: studies,
		Message: message,
	}
}

func newStudyRowView(row domain.StudyRow) StudyRowView {
	return StudyRowView{
		Study:          earnings.DisplayValue(row.Study),
		Reward:         earnings.DisplayValue(row.Reward),
		Bonus:          earnings.DisplayValue(row.Bonus),
		Status:         earnings.DisplayValue(row.Status),
		StatusTone:     earnings.StatusTone(row.Status),
		CompletionCode: earnings.DisplayValue(row.CompletionCode),
		StartedAt:      earnings.DisplayValue(row.StartedAt),
	}
}


// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUploadNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidFileType),
		errors.Is(err, domain.ErrMissingColumn),
		errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrNoStudyData),
		errors.Is(err, domain.ErrInvalidConversionRate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
