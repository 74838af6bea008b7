package sales

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
	"github.com/pp-tools/pizza-pulse/pkg/models/store"
)

// NormalizerSettings contains the layouts used to coerce temporal columns.
type NormalizerSettings struct {
	// DateLayout parses order_date (date only, no time component).
	DateLayout string
	// TimeLayout parses order_time (time of day only).
	TimeLayout string
}

// DefaultNormalizerSettings returns the layouts matching the standard
// sales export (2024-01-31 dates, 13:45:00 times).
func DefaultNormalizerSettings() NormalizerSettings {
	return NormalizerSettings{
		DateLayout: "2006-01-02",
		TimeLayout: "15:04:05",
	}
}

// Normalizer turns raw rows into typed sale records. Malformed rows are
// dropped and counted, never fatal; output order matches input order.
type Normalizer struct {
	settings NormalizerSettings
}

func NewNormalizer(settings NormalizerSettings) *Normalizer {
	return &Normalizer{settings: settings}
}

// Normalize parses every row and returns the surviving records plus the
// number of rows that were skipped. A row is skipped when a required column
// is missing, a numeric field does not parse or is negative, or a temporal
// field does not parse.
func (n *Normalizer) Normalize(rows []store.RawRow) ([]domain.SaleRecord, int) {
	records := make([]domain.SaleRecord, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		rec, ok := n.normalizeRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped
}

func (n *Normalizer) normalizeRow(row store.RawRow) (domain.SaleRecord, bool) {
	orderID := strings.TrimSpace(row[store.ColOrderID])
	if orderID == "" {
		return domain.SaleRecord{}, false
	}

	item := strings.TrimSpace(row[store.ColItemName])
	if item == "" {
		item = strings.TrimSpace(row[store.ColItemNameAlt])
	}
	if item == "" {
		return domain.SaleRecord{}, false
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(row[store.ColQuantity]))
	if err != nil || quantity.Sign() < 0 {
		return domain.SaleRecord{}, false
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row[store.ColTotalPrice]))
	if err != nil || price.Sign() < 0 {
		return domain.SaleRecord{}, false
	}

	date, err := time.ParseInLocation(n.settings.DateLayout, strings.TrimSpace(row[store.ColOrderDate]), time.UTC)
	if err != nil {
		return domain.SaleRecord{}, false
	}

	clock, ok := n.parseClock(strings.TrimSpace(row[store.ColOrderTime]))
	if !ok {
		return domain.SaleRecord{}, false
	}

	return domain.SaleRecord{
		OrderID:    orderID,
		ItemName:   item,
		Category:   strings.TrimSpace(row[store.ColCategory]),
		Size:       strings.TrimSpace(row[store.ColSize]),
		Quantity:   quantity,
		TotalPrice: price,
		OrderDate:  date,
		OrderTime:  clock,
	}, true
}

// parseClock parses a time-only string. The zero date time.Parse attaches is
// discarded here; only the clock fields survive, so it cannot reach weekday
// or calendar computations.
func (n *Normalizer) parseClock(s string) (domain.ClockTime, bool) {
	t, err := time.Parse(n.settings.TimeLayout, s)
	if err != nil {
		return domain.ClockTime{}, false
	}
	hour, minute, second := t.Clock()
	return domain.ClockTime{Hour: hour, Minute: minute, Second: second}, true
}
