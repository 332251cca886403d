package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/routing"
)

const instrumentationName = "github.com/Cleawwy/Project-Omega/services"

// searchMetrics holds the instruments recorded for every strategy run.
type searchMetrics struct {
	duration metric.Float64Histogram
	visited  metric.Int64Histogram
	searches metric.Int64Counter
}

func newSearchMetrics(meter metric.Meter) (*searchMetrics, error) {
	m := &searchMetrics{}
	var err error

	m.duration, err = meter.Float64Histogram(
		"routing.search.duration",
		metric.WithDescription("Wall-clock time spent inside a search strategy"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	m.visited, err = meter.Int64Histogram(
		"routing.search.visited_nodes",
		metric.WithDescription("Nodes visited by a search strategy"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create visited histogram: %w", err)
	}

	m.searches, err = meter.Int64Counter(
		"routing.search.count",
		metric.WithDescription("Number of searches performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create search counter: %w", err)
	}

	return m, nil
}

func (m *searchMetrics) record(ctx context.Context, algo models.Algorithm, res *routing.Result, elapsed time.Duration) {
	opts := metric.WithAttributes(
		attribute.String("algorithm", string(algo)),
		attribute.Bool("found", res.Found),
	)
	m.duration.Record(ctx, durationMS(elapsed), opts)
	m.visited.Record(ctx, int64(res.Visited), opts)
	m.searches.Add(ctx, 1, opts)
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
