package httpsrc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `order_id,item_name,quantity,total_price,order_date,order_time
1,Margherita,2,10,2024-01-01,12:30:00
`

func TestSource_Rows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := NewSource(srv.URL)
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Margherita", rows[0]["item_name"])
}

func TestSource_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewSource(srv.URL)
	rows, err := src.Rows(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Nil(t, rows)
}

func TestSource_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	src := NewSource(srv.URL)
	_, err := src.Rows(context.Background())
	assert.Error(t, err)
}

func TestSource_CustomClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := NewSourceWithClient(srv.URL, srv.Client())
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
