package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/graphs_go"
	"github.com/Cleawwy/Project-Omega/logging"
	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/routing"
)

// optimalSlack is the relative slack within which a strategy's cost still
// counts as optimal in a comparison.
const optimalSlack = 1e-3

const (
	efficiencyOptimal    = "Optimal Path"
	efficiencySubOptimal = "Sub-optimal Path"
	efficiencyNoPath     = "No Path"
)

// RoutingService answers route and comparison queries against one graph.
type RoutingService struct {
	graph       *graphs_go.Graph
	parallelism int
	tracer      trace.Tracer
	metrics     *searchMetrics
}

type options struct {
	parallelism    int
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option configures a RoutingService.
type Option func(*options)

// WithParallelism bounds how many strategies a comparison runs at once.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

func NewRoutingService(g *graphs_go.Graph, opts ...Option) (*RoutingService, error) {
	o := options{
		parallelism:    1,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}

	metrics, err := newSearchMetrics(o.meterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &RoutingService{
		graph:       g,
		parallelism: o.parallelism,
		tracer:      o.tracerProvider.Tracer(instrumentationName),
		metrics:     metrics,
	}, nil
}

// CalculateRoute snaps both endpoints and runs the requested strategy.
// An unreachable destination is a normal response with a nil distance.
func (rs *RoutingService) CalculateRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, err, "request cancelled")
	}

	source, target, err := rs.snap(req.Source, req.Destination)
	if err != nil {
		return nil, err
	}

	res, elapsed, err := rs.run(ctx, req.Algorithm, source, target)
	if err != nil {
		return nil, err
	}

	return &models.RouteResponse{
		Polyline:     res.Polyline(rs.graph),
		DistanceM:    res.Distance(),
		TimeS:        nil,
		RuntimeMS:    durationMS(elapsed),
		VisitedNodes: res.Visited,
		VisitedEdges: res.VisitedEdges(rs.graph),
	}, nil
}

// CompareAlgorithms runs every strategy on the same snapped pair. A strategy
// is optimal when both it and Dijkstra found a path and its cost is within
// optimalSlack of Dijkstra's.
func (rs *RoutingService) CompareAlgorithms(ctx context.Context, req models.CompareRequest) (*models.CompareResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, err, "request cancelled")
	}

	source, target, err := rs.snap(req.Source, req.Destination)
	if err != nil {
		return nil, err
	}

	algos := routing.Algorithms()
	results := make([]*routing.Result, len(algos))
	runtimes := make([]time.Duration, len(algos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rs.parallelism)
	for i, algo := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeUnavailable, err, "request cancelled")
			}
			res, elapsed, err := rs.run(gctx, algo, source, target)
			if err != nil {
				return err
			}
			results[i] = res
			runtimes[i] = elapsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var baseline *routing.Result
	for _, res := range results {
		if res.Algorithm == models.Dijkstra {
			baseline = res
		}
	}

	resp := &models.CompareResponse{
		Source:      rs.graph.LatLng(source),
		Destination: rs.graph.LatLng(target),
		Results:     make([]models.CompareResult, 0, len(results)),
	}
	for i, res := range results {
		optimal := isOptimal(res, baseline)
		resp.Results = append(resp.Results, models.CompareResult{
			Algorithm:    res.Algorithm,
			Name:         res.Algorithm.DisplayName(),
			DistanceM:    res.Distance(),
			RuntimeMS:    durationMS(runtimes[i]),
			VisitedNodes: res.Visited,
			PathNodes:    len(res.Path),
			Optimal:      optimal,
			Efficiency:   efficiency(res, optimal),
		})
	}
	return resp, nil
}

// GraphInfo summarises the loaded graph.
func (rs *RoutingService) GraphInfo() models.GraphInfo {
	return rs.graph.Info()
}

func (rs *RoutingService) snap(src, dst models.LatLng) (int, int, error) {
	source, ok := routing.NearestNode(rs.graph, src.Lat, src.Lng)
	if !ok {
		return 0, 0, apperrors.New(apperrors.ErrCodeUnavailable, "graph has no nodes")
	}
	target, _ := routing.NearestNode(rs.graph, dst.Lat, dst.Lng)
	return source, target, nil
}

// run times a single strategy. Only the search itself is measured.
func (rs *RoutingService) run(ctx context.Context, algo models.Algorithm, source, target int) (*routing.Result, time.Duration, error) {
	ctx, span := rs.tracer.Start(ctx, "routing.search", trace.WithAttributes(
		attribute.String("algorithm", string(algo)),
		attribute.Int("source", source),
		attribute.Int("target", target),
	))
	defer span.End()

	start := time.Now()
	res, err := routing.Search(rs.graph, algo, source, target)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apperrors.Is(err, apperrors.ErrCodeInternal) {
			logging.FromContext(ctx).Error("search produced an inconsistent result",
				"algorithm", algo, "source", source, "target", target, "err", err)
		}
		return nil, elapsed, err
	}

	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("visited_nodes", res.Visited),
		attribute.Int("path_nodes", len(res.Path)),
	)
	rs.metrics.record(ctx, algo, res, elapsed)

	logging.FromContext(ctx).Debug("search finished",
		"algorithm", algo, "source", source, "target", target,
		"found", res.Found, "visited", res.Visited, "elapsed", elapsed)

	return res, elapsed, nil
}

func isOptimal(res, baseline *routing.Result) bool {
	if baseline == nil || !baseline.Found || !res.Found {
		return false
	}
	return res.Cost <= baseline.Cost*(1+optimalSlack)+1e-9
}

func efficiency(res *routing.Result, optimal bool) string {
	switch {
	case !res.Found:
		return efficiencyNoPath
	case optimal:
		return efficiencyOptimal
	default:
		return efficiencySubOptimal
	}
}
