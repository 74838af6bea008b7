package sales

import (
	"context"
	"fmt"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
	"github.com/pp-tools/pizza-pulse/pkg/models/store"
)

// RowSource supplies raw tabular rows. Implementations own I/O concerns
// (files, HTTP); a source failure is structural and fatal, unlike the
// row-level errors the normalizer absorbs.
type RowSource interface {
	Rows(ctx context.Context) ([]store.RawRow, error)
}

// Analyzer ties a row source to the normalizer and aggregator.
type Analyzer interface {
	// GenerateReport reads the source, normalizes, applies f and aggregates.
	// Row-level parse failures only surface via the report's SkippedRows.
	GenerateReport(ctx context.Context, f domain.Filter) (*domain.AggregateReport, error)
	// CollectRecords returns the normalized records and the skipped-row count.
	CollectRecords(ctx context.Context) ([]domain.SaleRecord, int, error)
}

type analyzer struct {
	source     RowSource
	normalizer *Normalizer
}

func NewAnalyzer(source RowSource) Analyzer {
	return &analyzer{
		source:     source,
		normalizer: NewNormalizer(DefaultNormalizerSettings()),
	}
}

func (a *analyzer) CollectRecords(ctx context.Context) ([]domain.SaleRecord, int, error) {
	rows, err := a.source.Rows(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read rows: %w", err)
	}
	records, skipped := a.normalizer.Normalize(rows)
	return records, skipped, nil
}

func (a *analyzer) GenerateReport(ctx context.Context, f domain.Filter) (*domain.AggregateReport, error) {
	records, skipped, err := a.CollectRecords(ctx)
	if err != nil {
		return nil, err
	}

	report := Aggregate(ApplyFilter(records, f))
	report.SkippedRows = skipped
	return report, nil
}
