package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

func TestApplyFilter_DateRangeInclusive(t *testing.T) {
	records := []domain.SaleRecord{
		record("1", "Margherita", "1", "10", date(2024, time.January, 1), 12),
		record("2", "Margherita", "1", "10", date(2024, time.January, 2), 12),
		record("3", "Margherita", "1", "10", date(2024, time.January, 3), 12),
	}

	from := date(2024, time.January, 2)
	to := date(2024, time.January, 3)
	out := ApplyFilter(records, domain.Filter{From: &from, To: &to})

	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].OrderID)
	assert.Equal(t, "3", out[1].OrderID)
}

func TestApplyFilter_Category(t *testing.T) {
	records := sampleRecords()
	records[0].Category = "Classic"
	records[1].Category = "Classic"
	records[2].Category = "Veggie"

	out := ApplyFilter(records, domain.Filter{Category: "Veggie"})

	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].OrderID)
}

func TestApplyFilter_EmptyFilterReturnsInput(t *testing.T) {
	records := sampleRecords()
	out := ApplyFilter(records, domain.Filter{})
	assert.Equal(t, records, out)
}

func TestApplyFilter_NoMatches(t *testing.T) {
	records := sampleRecords()
	from := date(2030, time.January, 1)
	out := ApplyFilter(records, domain.Filter{From: &from})
	assert.Empty(t, out)
}
