package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 28,
		ValueWidth: 16,
	}
}

// Reporter renders an aggregate report as formatted console text. Monetary
// values are rounded here, at display time only.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type reportView struct {
	Report *domain.AggregateReport
	Top    []domain.ItemRevenue
	Bottom []domain.ItemRevenue
	TopN   int
}

func (c *Reporter) Handle(report *domain.AggregateReport, top, bottom []domain.ItemRevenue, topN int) error {
	funcMap := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"weekday": func(i int) string {
			return time.Weekday(i).String()
		},
		"month": func(i int) string {
			return time.Month(i + 1).String()
		},
		"row": func(label string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
Sales Report
{{if not .Report.HasData}}
No data: the input contained no valid orders.
Skipped rows: {{.Report.SkippedRows}}
{{else}}
Total Revenue:        {{money .Report.TotalRevenue}}
Total Orders:         {{.Report.TotalOrders}}
Total Items Sold:     {{.Report.TotalItems}}
Avg Order Value:      {{money .Report.AvgOrderValue}}
Avg Items per Order:  {{money .Report.AvgItemsPerOrder}}
Skipped Rows:         {{.Report.SkippedRows}}

=== Revenue by Date ===
{{separator}}
{{range .Report.RevenueByDate}}{{row (.Date.Format "2006-01-02") (money .Revenue)}}
{{end}}{{separator}}

=== Revenue by Weekday ===
{{separator}}
{{range $i, $v := .Report.RevenueByWeekday}}{{row (weekday $i) (money $v)}}
{{end}}{{separator}}

=== Revenue by Hour ===
{{separator}}
{{range $i, $v := .Report.RevenueByHour}}{{row (printf "%02d:00" $i) (money $v)}}
{{end}}{{separator}}

=== Revenue by Month ===
{{separator}}
{{range $i, $v := .Report.RevenueByMonth}}{{row (month $i) (money $v)}}
{{end}}{{separator}}
{{if .Report.RevenueByCategory}}
=== Revenue by Category ===
{{separator}}
{{range .Report.RevenueByCategory}}{{row .Category (money .Revenue)}}
{{end}}{{separator}}
{{end}}{{if .Report.RevenueBySize}}
=== Revenue by Size ===
{{separator}}
{{range .Report.RevenueBySize}}{{row .Size (money .Revenue)}}
{{end}}{{separator}}
{{end}}
=== Top {{.TopN}} Items by Revenue ===
{{separator}}
{{range .Top}}{{row .Item (money .Revenue)}}
{{end}}{{separator}}

=== Bottom {{.TopN}} Items by Revenue ===
{{separator}}
{{range .Bottom}}{{row .Item (money .Revenue)}}
{{end}}{{separator}}
{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportView{
		Report: report,
		Top:    top,
		Bottom: bottom,
		TopN:   topN,
	})
}
