package metrics

import (
	"context"
	"errors"
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

func TestObserveStep(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveStep("upsert", time.Now(), nil)
	m.ObserveStep("search", time.Now(), errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.stepDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.stepFailures.WithLabelValues("upsert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stepFailures.WithLabelValues("search")))
}

func TestRecordRun(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.RecordRun("test_collection", nil)
	m.RecordRun("test_collection", errors.New("boom"))
	m.RecordRun("test_collection", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues(ResultFailure)))
	assert.Greater(t, testutil.ToFloat64(m.lastSuccess.WithLabelValues("test_collection")), 0.0)
}

func TestNamespaceAndServiceLabel(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "smoke", Namespace: "qdrant"})
	m.SetTopScore("test_collection", 0.97)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "qdrant_smoketest_top_score" {
			continue
		}
		found = true
		labels := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, "smoke", labels["service"])
		assert.Equal(t, "test_collection", labels["collection"])
		assert.InDelta(t, 0.97, mf.GetMetric()[0].GetGauge().GetValue(), 1e-9)
	}
	assert.True(t, found, "qdrant_smoketest_top_score not gathered")
}

func TestCreateCounter(t *testing.T) {
	m := NewMetrics(Config{})
	c := m.CreateCounter("extra_total", "extra", []string{"kind"})
	c.WithLabelValues("a").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("a")))
}

func TestPush_Disabled(t *testing.T) {
	m := NewMetrics(Config{})
	assert.False(t, m.PushEnabled())
	assert.NoError(t, m.Push(context.Background()))
}

func TestPush(t *testing.T) {
	var (
		gotPath string
		gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewMetrics(Config{PushgatewayURL: srv.URL, ServiceName: "smoke"})
	m.RecordRun("test_collection", nil)

	require.NoError(t, m.Push(context.Background()))
	assert.Equal(t, "/metrics/job/"+DefaultJob, gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewMetrics(Config{PushgatewayURL: srv.URL, Job: "custom"})
	err := m.Push(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), srv.URL))
}
