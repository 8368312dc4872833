package server

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/probelab/beliefnet/pkg/observability"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beliefnet_queries_total",
		Help: "Total number of inference queries, labelled by network and status.",
	}, []string{"network", "status"})

	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beliefnet_query_duration_seconds",
		Help:    "Inference query latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beliefnet_cache_events_total",
		Help: "Cache hits and misses, labelled by key type and outcome.",
	}, []string{"key_type", "outcome"})

	storeOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beliefnet_store_ops_total",
		Help: "Store operations, labelled by operation and status.",
	}, []string{"op", "status"})
)

// metricsHooks feeds observability events into Prometheus collectors.
type metricsHooks struct{}

func (metricsHooks) OnQueryStart(context.Context, string, string, string) {}

func (metricsHooks) OnQueryComplete(ctx context.Context, id, network, node string, observed bool, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	queriesTotal.WithLabelValues(network, status).Inc()
	queryDuration.Observe(duration.Seconds())
}

func (metricsHooks) OnCacheHit(ctx context.Context, keyType string) {
	cacheHits.WithLabelValues(keyType, "hit").Inc()
}

func (metricsHooks) OnCacheMiss(ctx context.Context, keyType string) {
	cacheHits.WithLabelValues(keyType, "miss").Inc()
}

func (metricsHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	cacheHits.WithLabelValues(keyType, "set").Inc()
}

func (metricsHooks) OnStoreOp(ctx context.Context, op, network string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeOps.WithLabelValues(op, status).Inc()
}

// Ensure metricsHooks satisfies every hook interface it backs.
var (
	_ observability.QueryHooks = metricsHooks{}
	_ observability.CacheHooks = metricsHooks{}
	_ observability.StoreHooks = metricsHooks{}
)
