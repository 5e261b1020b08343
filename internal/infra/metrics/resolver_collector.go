// Package metrics exposes resolver measurements to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ResolverCollector bundles the Prometheus metrics of the availability
// resolver and serves them over HTTP.
type ResolverCollector struct {
	gatherer prometheus.Gatherer

	Lookups          *prometheus.CounterVec
	GeocodeDurations *prometheus.HistogramVec
	CacheErrors      *prometheus.CounterVec
	Resolutions      *prometheus.CounterVec
	BatchDurations   prometheus.Histogram
	BatchOrders      prometheus.Histogram
}

var _ service.ResolutionRecorder = (*ResolverCollector)(nil)

// NewResolverCollector registers resolver metrics against reg, defaulting to
// the global Prometheus registry when nil.
func NewResolverCollector(reg prometheus.Registerer) (*ResolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	lookups, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcart_coordinate_lookups_total",
		Help: "Address coordinate lookups, labeled by outcome.",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	geocodes, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "foodcart_geocode_duration_seconds",
		Help:    "External geocoder call latency in seconds, labeled by outcome.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	cacheErrors, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcart_geocache_errors_total",
		Help: "Geo cache failures, labeled by operation.",
	}, []string{"op"}))
	if err != nil {
		return nil, err
	}

	resolutions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcart_order_resolutions_total",
		Help: "Resolved orders, labeled by resolution status.",
	}, []string{"status"}))
	if err != nil {
		return nil, err
	}

	batchDurations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodcart_resolution_batch_duration_seconds",
		Help:    "Time to resolve one batch of orders in seconds.",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}

	batchOrders, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodcart_resolution_batch_orders",
		Help:    "Number of orders per resolution batch.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}))
	if err != nil {
		return nil, err
	}

	return &ResolverCollector{
		gatherer:         gatherer,
		Lookups:          lookups,
		GeocodeDurations: geocodes,
		CacheErrors:      cacheErrors,
		Resolutions:      resolutions,
		BatchDurations:   batchDurations,
		BatchOrders:      batchOrders,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *ResolverCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveLookup counts one coordinate lookup.
func (c *ResolverCollector) ObserveLookup(outcome string) {
	if c == nil || c.Lookups == nil {
		return
	}
	c.Lookups.WithLabelValues(outcome).Inc()
}

// ObserveGeocode records one external geocoder call.
func (c *ResolverCollector) ObserveGeocode(outcome string, elapsed time.Duration) {
	if c == nil || c.GeocodeDurations == nil {
		return
	}
	c.GeocodeDurations.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveCacheError counts one geo cache failure.
func (c *ResolverCollector) ObserveCacheError(op string) {
	if c == nil || c.CacheErrors == nil {
		return
	}
	c.CacheErrors.WithLabelValues(op).Inc()
}

// ObserveResolution counts one resolved order.
func (c *ResolverCollector) ObserveResolution(status entity.ResolutionStatus) {
	if c == nil || c.Resolutions == nil {
		return
	}
	c.Resolutions.WithLabelValues(status.String()).Inc()
}

// ObserveBatch records the size and duration of one batch.
func (c *ResolverCollector) ObserveBatch(orders int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.BatchOrders != nil {
		c.BatchOrders.Observe(float64(orders))
	}
	if c.BatchDurations != nil {
		c.BatchDurations.Observe(elapsed.Seconds())
	}
}

// register adds collector to reg, reusing an identical collector that is
// already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}

			return collector, errors.Errorf("collector already registered with incompatible type: %v", err)
		}

		return collector, errors.Wrap(err, "register collector")
	}

	return collector, nil
}
