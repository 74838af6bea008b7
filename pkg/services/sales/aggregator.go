package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

type weekKey struct {
	year int
	week int
}

// Aggregate folds a record sequence into a complete report in a single pass.
// It is pure: no shared state survives between calls, and identical input
// yields an identical report. An empty input produces the explicit no-data
// state (HasData=false, zero averages) instead of dividing by zero.
func Aggregate(records []domain.SaleRecord) *domain.AggregateReport {
	report := &domain.AggregateReport{
		RevenueByDate:     []domain.DateRevenue{},
		RevenueByItem:     []domain.ItemRevenue{},
		OrdersByWeek:      []domain.WeekOrders{},
		YearlySummaries:   []domain.YearSummary{},
		RevenueByCategory: []domain.CategoryRevenue{},
		RevenueBySize:     []domain.SizeRevenue{},
	}

	orders := make(map[string]struct{})
	revenueByDate := make(map[time.Time]decimal.Decimal)
	itemIndex := make(map[string]int)
	categoryIndex := make(map[string]int)
	sizeIndex := make(map[string]int)
	ordersByWeek := make(map[weekKey]map[string]struct{})
	revenueByYear := make(map[int]decimal.Decimal)
	ordersByYear := make(map[int]map[string]struct{})

	for _, rec := range records {
		report.TotalRevenue = report.TotalRevenue.Add(rec.TotalPrice)
		report.TotalItems = report.TotalItems.Add(rec.Quantity)
		orders[rec.OrderID] = struct{}{}

		revenueByDate[rec.OrderDate] = revenueByDate[rec.OrderDate].Add(rec.TotalPrice)

		if idx, ok := itemIndex[rec.ItemName]; ok {
			report.RevenueByItem[idx].Revenue = report.RevenueByItem[idx].Revenue.Add(rec.TotalPrice)
		} else {
			itemIndex[rec.ItemName] = len(report.RevenueByItem)
			report.RevenueByItem = append(report.RevenueByItem, domain.ItemRevenue{
				Item:    rec.ItemName,
				Revenue: rec.TotalPrice,
			})
		}

		// Weekday and month derive from OrderDate only; the hour comes from
		// OrderTime only.
		weekday := int(rec.OrderDate.Weekday())
		report.RevenueByWeekday[weekday] = report.RevenueByWeekday[weekday].Add(rec.TotalPrice)

		hour := rec.OrderTime.Hour
		report.RevenueByHour[hour] = report.RevenueByHour[hour].Add(rec.TotalPrice)
		report.QuantityByHour[hour] = report.QuantityByHour[hour].Add(rec.Quantity)

		month := int(rec.OrderDate.Month()) - 1
		report.RevenueByMonth[month] = report.RevenueByMonth[month].Add(rec.TotalPrice)

		isoYear, isoWeek := rec.OrderDate.ISOWeek()
		wk := weekKey{year: isoYear, week: isoWeek}
		if ordersByWeek[wk] == nil {
			ordersByWeek[wk] = make(map[string]struct{})
		}
		ordersByWeek[wk][rec.OrderID] = struct{}{}

		year := rec.OrderDate.Year()
		revenueByYear[year] = revenueByYear[year].Add(rec.TotalPrice)
		if ordersByYear[year] == nil {
			ordersByYear[year] = make(map[string]struct{})
		}
		ordersByYear[year][rec.OrderID] = struct{}{}

		if rec.Category != "" {
			if idx, ok := categoryIndex[rec.Category]; ok {
				report.RevenueByCategory[idx].Revenue = report.RevenueByCategory[idx].Revenue.Add(rec.TotalPrice)
			} else {
				categoryIndex[rec.Category] = len(report.RevenueByCategory)
				report.RevenueByCategory = append(report.RevenueByCategory, domain.CategoryRevenue{
					Category: rec.Category,
					Revenue:  rec.TotalPrice,
				})
			}
		}

		if rec.Size != "" {
			if idx, ok := sizeIndex[rec.Size]; ok {
				report.RevenueBySize[idx].Revenue = report.RevenueBySize[idx].Revenue.Add(rec.TotalPrice)
			} else {
				sizeIndex[rec.Size] = len(report.RevenueBySize)
				report.RevenueBySize = append(report.RevenueBySize, domain.SizeRevenue{
					Size:    rec.Size,
					Revenue: rec.TotalPrice,
				})
			}
		}
	}

	report.TotalOrders = len(orders)
	if report.TotalOrders > 0 {
		report.HasData = true
		orderCount := decimal.NewFromInt(int64(report.TotalOrders))
		report.AvgOrderValue = report.TotalRevenue.Div(orderCount)
		report.AvgItemsPerOrder = report.TotalItems.Div(orderCount)
	}

	report.RevenueByDate = sortedDateRevenue(revenueByDate)
	report.OrdersByWeek = sortedWeekOrders(ordersByWeek)
	report.YearlySummaries = sortedYearSummaries(revenueByYear, ordersByYear)

	return report
}

func sortedDateRevenue(byDate map[time.Time]decimal.Decimal) []domain.DateRevenue {
	out := make([]domain.DateRevenue, 0, len(byDate))
	for date, revenue := range byDate {
		out = append(out, domain.DateRevenue{Date: date, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func sortedWeekOrders(byWeek map[weekKey]map[string]struct{}) []domain.WeekOrders {
	out := make([]domain.WeekOrders, 0, len(byWeek))
	for wk, orderIDs := range byWeek {
		out = append(out, domain.WeekOrders{Year: wk.year, Week: wk.week, Orders: len(orderIDs)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})
	return out
}

func sortedYearSummaries(
	revenueByYear map[int]decimal.Decimal,
	ordersByYear map[int]map[string]struct{},
) []domain.YearSummary {
	out := make([]domain.YearSummary, 0, len(revenueByYear))
	for year, revenue := range revenueByYear {
		out = append(out, domain.YearSummary{
			Year:    year,
			Revenue: revenue,
			Orders:  len(ordersByYear[year]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}
