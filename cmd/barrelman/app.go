package main

import (
	"context"
	"os"
	"slices"

	"barrelman/internal/catalog"
	"barrelman/internal/config"
	"barrelman/internal/core"
	"barrelman/internal/logger"
	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// app is one opened store with the service wired over it.
type app struct {
	cfg     *config.Config
	kinds   *registry.Registry
	store   domain.PersistentStore
	svc     *core.Service
	closers []func() error
}

// newRegistry builds the catalog registry with the configured binary
// equality mode.
func newRegistry(cfg *config.Config) (*registry.Registry, error) {
	mode, err := cfg.BinaryEquality()
	if err != nil {
		return nil, err
	}
	return catalog.NewRegistry(registry.WithBinaryEquality(mode))
}

func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	kinds, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}
	engine := domain.NewRulesEngine()
	for _, r := range catalog.Rules() {
		engine.Register(r)
	}
	store, err := core.OpenPersistentStore(ctx, cfg.Storage, kinds, engine, logger.Named("store"))
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, kinds: kinds, store: store}
	a.closers = append(a.closers, store.Close)

	opts := []core.Option{
		core.WithLogger(core.NewZapLogger(logger.Named("service"))),
		core.WithAuditRecorder(logAuditRecorder{log: logger.Named("audit")}),
		core.WithMaxAttempts(cfg.Service.MaxAttempts),
	}
	switch cfg.Service.Metrics {
	case "expvar":
		opts = append(opts, core.WithMetricsRecorder(core.NewExpvarMetricsRecorder("")))
	case "prometheus":
		rec, err := core.NewPrometheusMetricsRecorder(prometheus.DefaultRegisterer)
		if err != nil {
			_ = a.Close()
			return nil, errors.Wrap(err, "register prometheus metrics")
		}
		opts = append(opts, core.WithMetricsRecorder(rec))
	}
	if cfg.Service.TraceFile != "" {
		f, err := os.OpenFile(cfg.Service.TraceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			_ = a.Close()
			return nil, errors.Wrapf(err, "open trace file %s", cfg.Service.TraceFile)
		}
		a.closers = append(a.closers, f.Close)
		opts = append(opts, core.WithTracer(core.NewJSONTracer(f)))
	}
	a.svc = core.NewService(store, kinds, opts...)
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs error
	for _, c := range slices.Backward(a.closers) {
		errs = errors.CombineErrors(errs, c())
	}
	a.closers = nil
	return errs
}

// logAuditRecorder writes audit entries to the structured log.
type logAuditRecorder struct{ log *zap.SugaredLogger }

func (r logAuditRecorder) Record(_ context.Context, e core.AuditEntry) {
	fields := []any{
		logger.FieldOperation, e.Operation,
		"status", e.Status,
		logger.FieldVersion, e.Version,
		logger.FieldDuration, e.Duration.Milliseconds(),
	}
	if e.EntityID != uuid.Nil {
		fields = append(fields, logger.FieldEntityID, e.EntityID.String())
	}
	if e.Kind != domain.KindUnknown {
		fields = append(fields, logger.FieldKind, e.Kind.String())
	}
	if e.Error != "" {
		fields = append(fields, logger.FieldError, e.Error)
	}
	r.log.Infow("audit", fields...)
}
