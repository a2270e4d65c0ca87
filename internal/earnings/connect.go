package earnings

import (
	"strings"

	"github.com/grachmannico95/gig-earnings/internal/csvtext"
	"github.com/grachmannico95/gig-earnings/internal/domain"
)

type connectColumn struct {
	label     string
	spellings []string
}

var (
	columnReceived = connectColumn{"Payment Received", []string{"payment received", "paymentreceived"}}
	columnPending  = connectColumn{"Payment Pending", []string{"payment pending", "paymentpending"}}
	columnBonused  = connectColumn{"Amount Bonused", []string{"amount bonused", "amountbonused"}}
)

// ConnectColumns holds the header positions of the three Connect amounts.
type ConnectColumns struct {
	Received int
	Pending  int
	Bonused  int
}

// ResolveConnectColumns finds each amount column as the first header whose
// lower-cased text contains one of its spellings. Later lookalike headers
// are ignored.
func ResolveConnectColumns(headers []string) (ConnectColumns, error) {
	cols := ConnectColumns{
		Received: findColumn(headers, columnReceived),
		Pending:  findColumn(headers, columnPending),
		Bonused:  findColumn(headers, columnBonused),
	}

	var missing []string
	for _, c := range []struct {
		idx int
		col connectColumn
	}{
		{cols.Received, columnReceived},
		{cols.Pending, columnPending},
		{cols.Bonused, columnBonused},
	} {
		if c.idx < 0 {
			missing = append(missing, c.col.label)
		}
	}
	if len(missing) > 0 {
		return ConnectColumns{}, &domain.MissingColumnError{Missing: missing}
	}

	return cols, nil
}

func findColumn(headers []string, col connectColumn) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		for _, s := range col.spellings {
			if strings.Contains(lower, s) {
				return i
			}
		}
	}
	return -1
}

// AggregateConnect sums every row of a Connect export. Cells that are not
// numbers count as zero.
func AggregateConnect(table *csvtext.Table) (domain.EarningsBreakdown, error) {
	cols, err := ResolveConnectColumns(table.Headers())
	if err != nil {
		return domain.EarningsBreakdown{}, err
	}

	var b domain.EarningsBreakdown
	for _, row := range table.Rows() {
		b.Received += NumberOrZero(row.At(cols.Received))
		b.Pending += NumberOrZero(row.At(cols.Pending))
		b.Bonused += NumberOrZero(row.At(cols.Bonused))
	}
	b.Total = b.Received + b.Pending + b.Bonused

	return b, nil
}

// CalculateConnect parses text and aggregates it.
func CalculateConnect(text string) (domain.EarningsBreakdown, error) {
	table, err := csvtext.Parse(text, csvtext.ConnectOptions)
	if err != nil {
		return domain.EarningsBreakdown{}, err
	}
	return AggregateConnect(table)
}
