package earnings

import (
	"strings"
	"time"

	"github.com/grachmannico95/gig-earnings/internal/csvtext"
	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/pkg/money"
)

const (
	ColumnStudy          = "Study"
	ColumnReward         = "Reward"
	ColumnBonus          = "Bonus"
	ColumnStatus         = "Status"
	ColumnCompletionCode = "Completion Code"
	ColumnStartedAt      = "Started At"
)

const DefaultConversionRate = 1.25

type StudyOptions struct {
	// Today is compared by UTC calendar date only.
	Today time.Time
	// ConversionRate is USD per GBP.
	ConversionRate float64
	Dates          DateMatcher
}

// StudyRowFrom maps a row by exact column name. Absent columns read as "".
func StudyRowFrom(r csvtext.Row) domain.StudyRow {
	return domain.StudyRow{
		Study:          r.Get(ColumnStudy),
		Reward:         r.Get(ColumnReward),
		Bonus:          r.Get(ColumnBonus),
		Status:         r.Get(ColumnStatus),
		CompletionCode: r.Get(ColumnCompletionCode),
		StartedAt:      r.Get(ColumnStartedAt),
	}
}

func StudyRows(table *csvtext.Table) []domain.StudyRow {
	rows := make([]domain.StudyRow, 0, table.Len())
	for _, r := range table.Rows() {
		rows = append(rows, StudyRowFrom(r))
	}
	return rows
}

// ParseStudies parses a Prolific export into typed rows.
func ParseStudies(text string) ([]string, []domain.StudyRow, error) {
	table, err := csvtext.Parse(text, csvtext.StudyOptions)
	if err != nil {
		return nil, nil, err
	}
	return table.Headers(), StudyRows(table), nil
}

// IsEligible reports whether a study started today with a non-terminal
// status.
func IsEligible(row domain.StudyRow, opts StudyOptions) bool {
	return IsEligibleStatus(row.Status) && opts.Dates.StartedOn(row.StartedAt, opts.Today)
}

// CurrencyOf picks the bucket for a raw amount: "£" is checked before "$".
// Amounts with neither symbol belong to no bucket.
func CurrencyOf(raw string) (money.Currency, bool) {
	switch {
	case strings.Contains(raw, money.GBP.Symbol):
		return money.GBP, true
	case strings.Contains(raw, money.USD.Symbol):
		return money.USD, true
	default:
		return money.Currency{}, false
	}
}

// AggregateStudies filters rows and totals eligible rewards and bonuses
// per currency. The eligible rows are returned in input order.
func AggregateStudies(rows []domain.StudyRow, opts StudyOptions) (domain.StudyEarningsResult, []domain.StudyRow) {
	result := domain.StudyEarningsResult{TotalStudies: len(rows)}
	eligible := make([]domain.StudyRow, 0)

	for _, row := range rows {
		if !IsEligible(row, opts) {
			continue
		}
		eligible = append(eligible, row)

		addAmount(row.Reward, &result.USDRewards, &result.GBPRewards)
		addAmount(row.Bonus, &result.USDBonuses, &result.GBPBonuses)
	}

	result.ValidStudies = len(eligible)
	result.TotalEarnings = TotalEarnings(result, opts.ConversionRate)

	return result, eligible
}

func addAmount(raw string, usd, gbp *float64) {
	c, ok := CurrencyOf(raw)
	if !ok {
		return
	}

	amount := AmountOrZero(raw)
	if c == money.GBP {
		*gbp += amount
	} else {
		*usd += amount
	}
}

// TotalEarnings converts the GBP buckets at rate and adds the USD buckets.
func TotalEarnings(r domain.StudyEarningsResult, rate float64) float64 {
	return r.USDRewards + r.USDBonuses + (r.GBPRewards+r.GBPBonuses)*rate
}
