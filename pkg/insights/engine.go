package insights

import (
	"context"
	"time"

	internalTypes "github.com/finwellhq/insights-go/internal/types"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// SnapshotProvider supplies a point-in-time snapshot of a user's financial
// records. The engine treats a provider failure as a hard error; everything
// after the fetch is best-effort.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context, asOf time.Time) (*Snapshot, error)
}

// Engine runs the analyzer pipeline over a snapshot. It holds no per-user
// state; a single Engine is safe to share across concurrent report
// computations.
type Engine struct {
	logger        Logger
	hooks         *internalTypes.Hooks
	sentryEnabled bool
}

// EngineOptions configures the engine
type EngineOptions struct {
	// Logger for debug logging
	Logger Logger

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// NewEngine creates a new insights engine
func NewEngine(opts *EngineOptions) (*Engine, error) {
	if opts == nil {
		opts = &EngineOptions{}
	}

	sentryEnabled := false

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		// Use provided options if available, otherwise create new ones
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		// Override DSN if provided separately
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		// Set default environment if not provided
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail engine creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		} else {
			sentryEnabled = true
		}
	}

	return &Engine{
		logger:        opts.Logger,
		hooks:         opts.Hooks,
		sentryEnabled: sentryEnabled,
	}, nil
}

// GenerateReport fetches a snapshot from the provider and computes the full
// insights report for it.
func (e *Engine) GenerateReport(ctx context.Context, provider SnapshotProvider, asOf time.Time) (*InsightsReport, error) {
	snap, err := provider.FetchSnapshot(ctx, asOf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch snapshot")
	}
	return e.ComputeInsights(snap, asOf), nil
}

// ComputeInsights runs every analyzer against the snapshot and assembles the
// composite report. Analyzers are independent: a failure in one degrades its
// own section to a zero value and never aborts the others.
func (e *Engine) ComputeInsights(snap *Snapshot, asOf time.Time) *InsightsReport {
	if snap == nil {
		snap = &Snapshot{}
	}

	ranges := resolveDateRanges(asOf)
	stats := aggregate(snap, ranges)

	report := &InsightsReport{
		ID:          uuid.New().String(),
		GeneratedAt: asOf,
	}

	e.section("health_score", func() {
		report.HealthScore = calculateHealthScore(snap, ranges, stats)
	})
	e.section("anomaly_detection", func() {
		report.Anomalies = detectAnomalies(snap, ranges, stats)
	})
	e.section("duplicate_detection", func() {
		report.Duplicates = detectDuplicates(snap)
	})
	e.section("spending_patterns", func() {
		report.SpendingPatterns = analyzeSpendingPatterns(snap, ranges)
	})
	e.section("subscription_audit", func() {
		report.Subscriptions = auditSubscriptions(snap, ranges)
	})
	e.section("expense_forecast", func() {
		report.ExpenseForecast = predictExpenses(ranges, stats)
	})
	e.section("cash_flow_forecast", func() {
		report.CashFlow = forecastCashFlow(snap, ranges, stats)
	})
	e.section("goal_predictions", func() {
		report.GoalPredictions = predictGoals(snap, ranges)
	})
	e.section("bill_impact", func() {
		report.BillImpact = analyzeBillImpact(snap, ranges, stats)
	})
	e.section("predictive_alerts", func() {
		report.PredictiveAlerts = generatePredictiveAlerts(snap, ranges, stats)
	})
	e.section("summary", func() {
		report.Summary = buildSummary(snap, stats, report.ExpenseForecast)
	})

	// The ranker reads other sections, so it runs last
	e.section("insight_ranking", func() {
		report.ProactiveInsights = rankInsights(report, snap, stats)
	})

	report.applyRounding()
	return report
}

// section runs one analyzer, converting a panic into a degraded (zero value)
// report section.
func (e *Engine) section(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Error("Analyzer failed", "analyzer", name, "panic", r)
			}
			if e.hooks != nil && e.hooks.OnAnalyzerError != nil {
				e.hooks.OnAnalyzerError(name, r)
			}
			if e.sentryEnabled {
				sentry.CurrentHub().Recover(r)
			}
		}
	}()
	fn()
}
