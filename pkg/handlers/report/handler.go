package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pp-tools/pizza-pulse/pkg/adapters"
	"github.com/pp-tools/pizza-pulse/pkg/models/api"
	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
	"github.com/pp-tools/pizza-pulse/pkg/services/sales"
	"github.com/pp-tools/pizza-pulse/pkg/store/cache"
	"github.com/pp-tools/pizza-pulse/pkg/store/csvsource"
)

const (
	maxBodyBytes = 64 << 20
	dateLayout   = "2006-01-02"
)

type Handler struct {
	reports     *cache.ReportCache
	defaultTopN int
}

func NewHandler(reports *cache.ReportCache, defaultTopN int) *Handler {
	return &Handler{
		reports:     reports,
		defaultTopN: defaultTopN,
	}
}

// CreateReport computes an aggregate report from the CSV dataset in the
// request body. Optional query parameters: from, to (YYYY-MM-DD, inclusive),
// category, top (ranking size). Recomputation is skipped when the same
// dataset and filter were already seen.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filter, topN, err := h.parseQuery(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			renderError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds the %d byte limit", maxErr.Limit))
			return
		}
		renderError(w, r, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) == 0 {
		renderError(w, r, http.StatusBadRequest, "request body is empty; expected a CSV dataset")
		return
	}

	key := reportKey(body, filter)
	report, ok := h.reports.Get(key)
	if !ok {
		analyzer := sales.NewAnalyzer(csvsource.NewSource(bytes.NewReader(body)))
		report, err = analyzer.GenerateReport(ctx, filter)
		if err != nil {
			logger.Error().Err(err).Msg("failed to generate report")
			renderError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("failed to process dataset: %v", err))
			return
		}
		h.reports.Put(key, report)
	}

	resp := adapters.MapReportDomainToApi(
		report,
		sales.TopItems(report.RevenueByItem, topN),
		sales.BottomItems(report.RevenueByItem, topN),
	)
	resp.ID = uuid.NewString()
	resp.GeneratedAt = time.Now().UTC()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *Handler) parseQuery(r *http.Request) (domain.Filter, int, error) {
	q := r.URL.Query()

	var filter domain.Filter
	filter.Category = q.Get("category")

	if raw := q.Get("from"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return domain.Filter{}, 0, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", raw)
		}
		filter.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return domain.Filter{}, 0, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", raw)
		}
		filter.To = &to
	}

	topN := h.defaultTopN
	if raw := q.Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return domain.Filter{}, 0, fmt.Errorf("invalid top parameter %q: must be a positive integer", raw)
		}
		topN = n
	}

	return filter, topN, nil
}

func reportKey(body []byte, f domain.Filter) string {
	from, to := "", ""
	if f.From != nil {
		from = f.From.Format(dateLayout)
	}
	if f.To != nil {
		to = f.To.Format(dateLayout)
	}
	return fmt.Sprintf("%s|%s|%s|%s", cache.Checksum(body), from, to, f.Category)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Status: status, Message: message})
}
