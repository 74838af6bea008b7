package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type KPISet struct {
	HasData          bool            `json:"has_data"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalOrders      int             `json:"total_orders"`
	TotalItems       decimal.Decimal `json:"total_items"`
	AvgOrderValue    decimal.Decimal `json:"avg_order_value"`
	AvgItemsPerOrder decimal.Decimal `json:"avg_items_per_order"`
}

type DatePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ItemPoint struct {
	Item    string          `json:"item"`
	Revenue decimal.Decimal `json:"revenue"`
}

type WeekdayPoint struct {
	Weekday string          `json:"weekday"`
	Revenue decimal.Decimal `json:"revenue"`
}

type HourPoint struct {
	Hour  int             `json:"hour"`
	Value decimal.Decimal `json:"value"`
}

type MonthPoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type WeekPoint struct {
	Year   int `json:"year"`
	Week   int `json:"week"`
	Orders int `json:"orders"`
}

type YearPoint struct {
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type CategoryPoint struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SizePoint struct {
	Size    string          `json:"size"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Report is the JSON shape served to clients. Monetary values are emitted as
// decimal strings; formatting (currency symbols, rounding) is the client's
// concern.
type Report struct {
	ID          string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	SkippedRows int       `json:"skipped_rows"`

	KPIs KPISet `json:"kpis"`

	RevenueByDate    []DatePoint    `json:"revenue_by_date"`
	RevenueByItem    []ItemPoint    `json:"revenue_by_item"`
	RevenueByWeekday []WeekdayPoint `json:"revenue_by_weekday"`
	RevenueByHour    []HourPoint    `json:"revenue_by_hour"`

	QuantityByHour    []HourPoint     `json:"quantity_by_hour"`
	OrdersByWeek      []WeekPoint     `json:"orders_by_week"`
	RevenueByMonth    []MonthPoint    `json:"revenue_by_month"`
	Yearly            []YearPoint     `json:"yearly"`
	RevenueByCategory []CategoryPoint `json:"revenue_by_category,omitempty"`
	RevenueBySize     []SizePoint     `json:"revenue_by_size,omitempty"`

	TopItems    []ItemPoint `json:"top_items"`
	BottomItems []ItemPoint `json:"bottom_items"`
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
