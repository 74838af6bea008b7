package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClockTime is a wall-clock time of day with no date attached.
// Weekday and calendar buckets must never be derived from it.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// SaleRecord is one line item of an order. Records are immutable once
// constructed; aggregation treats them as a read-only sequence.
type SaleRecord struct {
	// OrderID identifies the order the line belongs to. It is not unique
	// across records: one order usually spans several line items.
	OrderID  string
	ItemName string

	// Category and Size are optional dimensions. They stay empty when the
	// input has no pizza_category / pizza_size columns.
	Category string
	Size     string

	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal

	// OrderDate is the calendar date the order was placed, truncated to
	// midnight UTC. OrderTime carries the time-of-day component.
	OrderDate time.Time
	OrderTime ClockTime
}

// Filter narrows a record set before aggregation. Date bounds are inclusive
// and compared against OrderDate only. An empty Category matches everything.
type Filter struct {
	From     *time.Time
	To       *time.Time
	Category string
}
