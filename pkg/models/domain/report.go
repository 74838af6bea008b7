package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRevenue is one point of the by-date revenue series.
type DateRevenue struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// ItemRevenue is summed revenue for a single item.
type ItemRevenue struct {
	Item    string
	Revenue decimal.Decimal
}

// CategoryRevenue is summed revenue for the optional category dimension.
type CategoryRevenue struct {
	Category string
	Revenue  decimal.Decimal
}

// SizeRevenue is summed revenue for the optional size dimension.
type SizeRevenue struct {
	Size    string
	Revenue decimal.Decimal
}

// WeekOrders is the distinct-order count for one ISO week.
type WeekOrders struct {
	Year   int
	Week   int
	Orders int
}

// YearSummary aggregates revenue and distinct orders for one calendar year.
type YearSummary struct {
	Year    int
	Revenue decimal.Decimal
	Orders  int
}

// AggregateReport is a full summary derived from a record set. It is a pure
// function of its input: recomputed wholesale on every load, never patched.
//
// Bucket policies:
//   - RevenueByDate, OrdersByWeek, YearlySummaries, RevenueByCategory and
//     RevenueBySize are sparse: only observed keys appear, ascending.
//   - RevenueByWeekday is dense with index 0=Sunday .. 6=Saturday
//     (time.Weekday numbering), zero-filled.
//   - RevenueByHour, QuantityByHour (24 buckets) and RevenueByMonth
//     (12 buckets, index 0=January) are dense and zero-filled.
type AggregateReport struct {
	// HasData distinguishes a real report from the empty state. When false,
	// no division was performed and all averages are zero.
	HasData bool

	TotalRevenue     decimal.Decimal
	TotalOrders      int
	TotalItems       decimal.Decimal
	AvgOrderValue    decimal.Decimal
	AvgItemsPerOrder decimal.Decimal

	// SkippedRows counts input rows dropped during normalization. The
	// aggregator leaves it zero; the analyzer fills it in.
	SkippedRows int

	RevenueByDate    []DateRevenue
	RevenueByItem    []ItemRevenue
	RevenueByWeekday [7]decimal.Decimal
	RevenueByHour    [24]decimal.Decimal

	QuantityByHour    [24]decimal.Decimal
	OrdersByWeek      []WeekOrders
	RevenueByMonth    [12]decimal.Decimal
	YearlySummaries   []YearSummary
	RevenueByCategory []CategoryRevenue
	RevenueBySize     []SizeRevenue
}
