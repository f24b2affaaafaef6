package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"formcheck/application/pages"
	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// Runner executes scenarios one after another, each in a fresh session
type Runner struct {
	sessions  interfaces.SessionFactory
	store     interfaces.ArtifactStore
	cfg       pages.Config
	logger    *logrus.Logger
	reporters ReporterFactory
	newRunID  func() string
	now       func() time.Time
}

// ReporterFactory builds the step reporter for one scenario run. log already
// carries the scenario and run_id fields.
type ReporterFactory func(log *logrus.Entry, runID string) interfaces.StepReporter

// Option configures a Runner
type Option func(*Runner)

// WithStore persists the run summary
func WithStore(store interfaces.ArtifactStore) Option {
	return func(r *Runner) { r.store = store }
}

// WithReporters receives the steps of every scenario. Without it steps are discarded.
func WithReporters(factory ReporterFactory) Option {
	return func(r *Runner) { r.reporters = factory }
}

// NewRunner - creates a runner over sessions
func NewRunner(sessions interfaces.SessionFactory, cfg pages.Config, logger *logrus.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r := &Runner{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every scenario and returns the summary. A failing scenario
// does not stop the run; only cancellation does.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (entities.Summary, error) {
	var summary entities.Summary

	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			return summary, fmt.Errorf("run canceled: %w", ctx.Err())
		default:
		}

		summary.Add(r.runOne(ctx, sc))
	}

	r.logger.WithFields(logrus.Fields{"passed": summary.Passed, "failed": summary.Failed}).Info("run finished")

	if r.store != nil {
		if err := r.store.SaveSummary(summary); err != nil {
			return summary, fmt.Errorf("failed to save summary: %w", err)
		}
	}
	return summary, nil
}

func (r *Runner) runOne(ctx context.Context, sc Scenario) entities.ScenarioResult {
	result := entities.ScenarioResult{
		Scenario:  sc.Name,
		RunID:     r.newRunID(),
		Status:    entities.ScenarioRunning,
		StartedAt: r.now(),
	}
	log := r.logger.WithFields(logrus.Fields{"scenario": sc.Name, "run_id": result.RunID})
	log.Info("scenario started")

	err := r.execute(ctx, sc, log, result.RunID)

	result.Duration = r.now().Sub(result.StartedAt)
	if err != nil {
		result.Status = entities.ScenarioFailed
		result.Error = err.Error()
		log.WithError(err).WithField("duration", result.Duration.Round(time.Millisecond)).Error("scenario failed")
		return result
	}
	result.Status = entities.ScenarioPassed
	log.WithField("duration", result.Duration.Round(time.Millisecond)).Info("scenario passed")
	return result
}

func (r *Runner) execute(ctx context.Context, sc Scenario, log *logrus.Entry, runID string) (err error) {
	session, err := r.sessions.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire session: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			err = multierr.Append(err, fmt.Errorf("scenario panicked: %v", p))
		}
		err = multierr.Append(err, session.Release())
	}()

	var reporter interfaces.StepReporter
	if r.reporters != nil {
		reporter = r.reporters(log, runID)
	}
	page := session.Page()
	return sc.Run(ctx, Pages{
		Form:   pages.NewFormPage(page, reporter, r.cfg),
		Submit: pages.NewSubmitPage(page, reporter, r.cfg),
	})
}
