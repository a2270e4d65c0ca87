package domain

import (
	"io"
	"time"
)

type Source string

const (
	SourceConnect  Source = "connect"
	SourceProlific Source = "prolific"
)

// EarningsBreakdown is the Connect export summary.
type EarningsBreakdown struct {
	Received float64 `json:"received"`
	Pending  float64 `json:"pending"`
	Bonused  float64 `json:"bonused"`
	Total    float64 `json:"total"`
}

// StudyRow is the typed view of one Prolific export row.
type StudyRow struct {
	Study          string `json:"study"`
	Reward         string `json:"reward"`
	Bonus          string `json:"bonus"`
	Status         string `json:"status"`
	CompletionCode string `json:"completion_code"`
	StartedAt      string `json:"started_at"`
}

type StudyEarningsResult struct {
	TotalStudies  int     `json:"total_studies"`
	ValidStudies  int     `json:"valid_studies"`
	USDRewards    float64 `json:"usd_rewards"`
	GBPRewards    float64 `json:"gbp_rewards"`
	USDBonuses    float64 `json:"usd_bonuses"`
	GBPBonuses    float64 `json:"gbp_bonuses"`
	TotalEarnings float64 `json:"total_earnings"`
}

// StudyCalculation pairs a result with the rows that passed the filters,
// in file order.
type StudyCalculation struct {
	Result         StudyEarningsResult `json:"result"`
	Studies        []StudyRow          `json:"studies"`
	ConversionRate float64             `json:"conversion_rate"`
	Today          string              `json:"today"`
	CalculatedAt   time.Time           `json:"calculated_at"`
}

// StudyUpload is a parsed Prolific export held between the load step and
// one or more calculate steps.
type StudyUpload struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	TotalStudies int       `json:"total_studies"`
	CreatedAt    time.Time `json:"created_at"`

	Headers []string   `json:"-"`
	Rows    []StudyRow `json:"-"`

	// Last calculation outcome. A new calculation replaces both fields.
	LastCalculation *StudyCalculation `json:"last_calculation,omitempty"`
	LastError       string            `json:"last_error,omitempty"`
}

// UploadedFile is what a presentation adapter hands to the services.
type UploadedFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}
