package adapters

import (
	"time"

	"github.com/pp-tools/pizza-pulse/pkg/models/api"
	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// MapReportDomainToApi converts a computed report into its JSON shape. The
// ranked top/bottom lists are computed by the caller so the mapping stays a
// pure reshaping step. Dense weekday/hour/month buckets come out as labeled
// points; sparse series map one to one.
func MapReportDomainToApi(report *domain.AggregateReport, top, bottom []domain.ItemRevenue) api.Report {
	out := api.Report{
		SkippedRows: report.SkippedRows,
		KPIs: api.KPISet{
			HasData:          report.HasData,
			TotalRevenue:     report.TotalRevenue,
			TotalOrders:      report.TotalOrders,
			TotalItems:       report.TotalItems,
			AvgOrderValue:    report.AvgOrderValue,
			AvgItemsPerOrder: report.AvgItemsPerOrder,
		},
		RevenueByDate:    make([]api.DatePoint, 0, len(report.RevenueByDate)),
		RevenueByItem:    make([]api.ItemPoint, 0, len(report.RevenueByItem)),
		RevenueByWeekday: make([]api.WeekdayPoint, 0, len(report.RevenueByWeekday)),
		RevenueByHour:    make([]api.HourPoint, 0, len(report.RevenueByHour)),
		QuantityByHour:   make([]api.HourPoint, 0, len(report.QuantityByHour)),
		OrdersByWeek:     make([]api.WeekPoint, 0, len(report.OrdersByWeek)),
		RevenueByMonth:   make([]api.MonthPoint, 0, len(report.RevenueByMonth)),
		Yearly:           make([]api.YearPoint, 0, len(report.YearlySummaries)),
		TopItems:         MapItemRevenuesDomainToApi(top),
		BottomItems:      MapItemRevenuesDomainToApi(bottom),
	}

	for _, d := range report.RevenueByDate {
		out.RevenueByDate = append(out.RevenueByDate, api.DatePoint{
			Date:    d.Date.Format(dateLayout),
			Revenue: d.Revenue,
		})
	}

	out.RevenueByItem = MapItemRevenuesDomainToApi(report.RevenueByItem)

	for i, revenue := range report.RevenueByWeekday {
		out.RevenueByWeekday = append(out.RevenueByWeekday, api.WeekdayPoint{
			Weekday: time.Weekday(i).String(),
			Revenue: revenue,
		})
	}

	for hour, revenue := range report.RevenueByHour {
		out.RevenueByHour = append(out.RevenueByHour, api.HourPoint{Hour: hour, Value: revenue})
	}
	for hour, quantity := range report.QuantityByHour {
		out.QuantityByHour = append(out.QuantityByHour, api.HourPoint{Hour: hour, Value: quantity})
	}

	for _, w := range report.OrdersByWeek {
		out.OrdersByWeek = append(out.OrdersByWeek, api.WeekPoint{
			Year:   w.Year,
			Week:   w.Week,
			Orders: w.Orders,
		})
	}

	for i, revenue := range report.RevenueByMonth {
		out.RevenueByMonth = append(out.RevenueByMonth, api.MonthPoint{
			Month:   time.Month(i + 1).String(),
			Revenue: revenue,
		})
	}

	for _, y := range report.YearlySummaries {
		out.Yearly = append(out.Yearly, api.YearPoint{
			Year:    y.Year,
			Revenue: y.Revenue,
			Orders:  y.Orders,
		})
	}

	for _, c := range report.RevenueByCategory {
		out.RevenueByCategory = append(out.RevenueByCategory, api.CategoryPoint{
			Category: c.Category,
			Revenue:  c.Revenue,
		})
	}
	for _, s := range report.RevenueBySize {
		out.RevenueBySize = append(out.RevenueBySize, api.SizePoint{
			Size:    s.Size,
			Revenue: s.Revenue,
		})
	}

	return out
}

func MapItemRevenuesDomainToApi(items []domain.ItemRevenue) []api.ItemPoint {
	out := make([]api.ItemPoint, 0, len(items))
	for _, item := range items {
		out = append(out, api.ItemPoint{Item: item.Item, Revenue: item.Revenue})
	}
	return out
}
