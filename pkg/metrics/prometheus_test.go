package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics("flights")
	b := NewMetrics("flights")

	a.FlightsAdded.Inc()
	a.CommandsTotal.WithLabelValues("add").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.FlightsAdded))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FlightsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CommandsTotal.WithLabelValues("add")))
}

func TestObserveStorage(t *testing.T) {
	m := NewMetrics("flights")
	m.ObserveStorage("load", time.Now())

	assert.Equal(t, 1, testutil.CollectAndCount(m.StorageDuration, "flights_storage_duration_seconds"))
}

func TestPush(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewMetrics("flights")
	m.FlightsAdded.Inc()

	require.NoError(t, m.Push(srv.URL, "flights"))
	assert.Equal(t, "/metrics/job/flights", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewMetrics("flights").Push(srv.URL, "flights")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "500"))
}
