package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reporthandler "github.com/pp-tools/pizza-pulse/pkg/handlers/report"
	"github.com/pp-tools/pizza-pulse/pkg/models/api"
	"github.com/pp-tools/pizza-pulse/pkg/store/cache"
)

const sampleCSV = `order_id,item_name,quantity,total_price,order_date,order_time
1,Margherita,2,10,2024-01-01,12:30:00
2,Pepperoni,1,6,2024-01-02,19:15:00
`

func newTestAPI() *WebAPI {
	logger := zerolog.New(io.Discard)
	return NewWebAPI(logger, Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		Dependencies: Dependencies{
			Report: reporthandler.NewHandler(cache.New(4), 5),
		},
	})
}

func TestWebAPI_Routes(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("reports", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/reports", "text/csv", strings.NewReader(sampleCSV))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report api.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 2, report.KPIs.TotalOrders)
		assert.Equal(t, "16", report.KPIs.TotalRevenue.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/reports")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
