// Package metrics registra os coletores Prometheus da aplicação
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	projectionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clinic",
		Subsystem: "reporting",
		Name:      "projection_duration_seconds",
		Help:      "Tempo de cálculo de cada projeção.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report"})

	skippedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clinic",
		Subsystem: "reporting",
		Name:      "skipped_records_total",
		Help:      "Registros malformados ignorados pelas projeções.",
	}, []string{"report"})

	cacheResults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clinic",
		Subsystem: "reporting",
		Name:      "cache_results_total",
		Help:      "Acertos e falhas do cache de projeções.",
	}, []string{"report", "result"})

	stageTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clinic",
		Subsystem: "pipeline",
		Name:      "stage_transitions_total",
		Help:      "Transições de etapa aplicadas no funil.",
	}, []string{"entity", "to", "result"})
)

func init() {
	registry.MustRegister(
		projectionDuration,
		skippedRecords,
		cacheResults,
		stageTransitions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler expõe as métricas no formato de texto do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveProjection registra a duração e os registros ignorados de uma projeção
func ObserveProjection(report string, startedAt time.Time, skipped int) {
	projectionDuration.WithLabelValues(report).Observe(time.Since(startedAt).Seconds())
	if skipped > 0 {
		skippedRecords.WithLabelValues(report).Add(float64(skipped))
	}
}

func CacheHit(report string) {
	cacheResults.WithLabelValues(report, "hit").Inc()
}

func CacheMiss(report string) {
	cacheResults.WithLabelValues(report, "miss").Inc()
}

// StageTransition conta transições por entidade, etapa de destino e resultado (applied, noop, rejected)
func StageTransition(entity, to, result string) {
	stageTransitions.WithLabelValues(entity, to, result).Inc()
}
