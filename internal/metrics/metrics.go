// Package metrics exposes request counters and collection sizes in the
// Prometheus text format.
package metrics

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chokokon"

// CountFunc reports the number of records per collection.
type CountFunc func(ctx context.Context) (map[string]int64, error)

type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	logins   *prometheus.CounterVec
}

// New builds a recorder on its own registry. counts may be nil.
func New(counts CountFunc) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}

	r.registry.MustRegister(
		r.requests,
		r.latency,
		r.logins,
		collectors.NewGoCollector(),
	)
	if counts != nil {
		r.registry.MustRegister(&collectionCollector{counts: counts})
	}
	return r
}

// ObserveRequest records one finished request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveLogin records a login attempt, result being "success" or a
// failure reason.
func (r *Recorder) ObserveLogin(result string) {
	r.logins.WithLabelValues(result).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

var collectionDesc = prometheus.NewDesc(
	prometheus.BuildFQName(namespace, "", "collection_records"),
	"Number of records held per collection.",
	[]string{"collection"}, nil,
)

// collectionCollector reads the store on every scrape.
type collectionCollector struct {
	counts CountFunc
}

func (c *collectionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collectionDesc
}

func (c *collectionCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	counts, err := c.counts(ctx)
	if err != nil {
		log.Printf("metrics: count collections: %v", err)
		return
	}
	for name, n := range counts {
		ch <- prometheus.MustNewConstMetric(collectionDesc, prometheus.GaugeValue, float64(n), name)
	}
}
