package store

// RawRow is one untyped input row keyed by column name, exactly as a source
// read it. Normalization turns RawRows into typed domain records.
type RawRow map[string]string

// Column names a row source is expected to provide. Category and size are
// optional; everything else is required for a row to survive normalization.
// ColItemNameAlt covers exports that still call the item column pizza_name.
const (
	ColOrderID     = "order_id"
	ColItemName    = "item_name"
	ColItemNameAlt = "pizza_name"
	ColQuantity    = "quantity"
	ColTotalPrice  = "total_price"
	ColOrderDate   = "order_date"
	ColOrderTime   = "order_time"
	ColCategory    = "pizza_category"
	ColSize        = "pizza_size"
)
