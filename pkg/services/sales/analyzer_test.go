package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
	"github.com/pp-tools/pizza-pulse/pkg/models/store"
)

// stubSource lets us simulate any RowSource with preset rows or errors.
type stubSource struct {
	rows []store.RawRow
	err  error
}

func (s *stubSource) Rows(_ context.Context) ([]store.RawRow, error) {
	return s.rows, s.err
}

func TestAnalyzer_GenerateReport(t *testing.T) {
	broken := validRow()
	broken[store.ColTotalPrice] = "n/a"

	src := &stubSource{rows: []store.RawRow{validRow(), broken}}
	analyzer := NewAnalyzer(src)

	report, err := analyzer.GenerateReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	assert.True(t, report.HasData)
	assert.Equal(t, 1, report.TotalOrders)
	assert.Equal(t, 1, report.SkippedRows)
	assert.Equal(t, "21.5", report.TotalRevenue.String())
}

func TestAnalyzer_GenerateReportAppliesFilter(t *testing.T) {
	src := &stubSource{rows: []store.RawRow{validRow()}}
	analyzer := NewAnalyzer(src)

	report, err := analyzer.GenerateReport(context.Background(), domain.Filter{Category: "Supreme"})
	require.NoError(t, err)

	// The only row has no category, so nothing matches — but the skipped
	// count still reflects normalization, not filtering.
	assert.False(t, report.HasData)
	assert.Equal(t, 0, report.SkippedRows)
}

func TestAnalyzer_SourceErrorPropagates(t *testing.T) {
	srcErr := errors.New("connection reset")
	analyzer := NewAnalyzer(&stubSource{err: srcErr})

	report, err := analyzer.GenerateReport(context.Background(), domain.Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, srcErr)
	assert.Nil(t, report)
}

func TestAnalyzer_AllRowsInvalidYieldsEmptyReport(t *testing.T) {
	bad := validRow()
	delete(bad, store.ColOrderID)

	analyzer := NewAnalyzer(&stubSource{rows: []store.RawRow{bad, bad}})

	report, err := analyzer.GenerateReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	assert.False(t, report.HasData)
	assert.Equal(t, 2, report.SkippedRows)
}

func TestAnalyzer_CollectRecords(t *testing.T) {
	analyzer := NewAnalyzer(&stubSource{rows: []store.RawRow{validRow()}})

	records, skipped, err := analyzer.CollectRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 0, skipped)
}
