package sales

import (
	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

// ApplyFilter returns the records matching f, in input order. The input
// slice is never mutated. Date bounds are inclusive and compared against
// OrderDate only.
func ApplyFilter(records []domain.SaleRecord, f domain.Filter) []domain.SaleRecord {
	if f.From == nil && f.To == nil && f.Category == "" {
		return records
	}

	out := make([]domain.SaleRecord, 0, len(records))
	for _, rec := range records {
		if f.From != nil && rec.OrderDate.Before(*f.From) {
			continue
		}
		if f.To != nil && rec.OrderDate.After(*f.To) {
			continue
		}
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		out = append(out, rec)
	}
	return out
}
