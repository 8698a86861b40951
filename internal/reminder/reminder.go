// Package reminder は復習待ちの単語がある学習者に定期的に通知するジョブです。
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
)

// Reminder は1人分の通知内容です。
type Reminder struct {
	LearnerID uuid.UUID
	Name      string
	Pending   int
	Due       int
	New       int
}

// Notifier は通知の送り先です。
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type LearnerLister interface {
	ListLearners(ctx context.Context) ([]*model.Learner, error)
}

type SummaryProvider interface {
	GetReviewSummary(ctx context.Context, learnerID uuid.UUID) (*model.ReviewSummaryResponse, error)
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	cfg       config.ReminderConfig
	learners  LearnerLister
	reviews   SummaryProvider
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Scheduler)

// WithClock は通知時間帯の判定に使う時刻を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func New(cfg config.ReminderConfig, learners LearnerLister, reviews SummaryProvider, notifier Notifier, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		learners:  learners,
		reviews:   reviews,
		notifier:  notifier,
		logger:    logger.With(slog.String("component", "reminder")),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start は interval_minutes ごとのチェックを非同期で開始します。
func (s *Scheduler) Start() error {
	if s.cfg.IntervalMinutes <= 0 {
		return fmt.Errorf("reminder: interval_minutes must be positive, got %d", s.cfg.IntervalMinutes)
	}
	s.scheduler.SingletonModeAll()
	if _, err := s.scheduler.Every(s.cfg.IntervalMinutes).Minutes().Do(s.runScheduled); err != nil {
		return fmt.Errorf("reminder: schedule job: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started",
		slog.Int("interval_minutes", s.cfg.IntervalMinutes),
		slog.Int("start_hour", s.cfg.StartHour),
		slog.Int("end_hour", s.cfg.EndHour),
	)
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Reminder scheduler stopped")
}

func (s *Scheduler) runScheduled() {
	ctx := middleware.WithLogger(context.Background(), s.logger)
	if !s.withinHours(s.now()) {
		s.logger.Debug("Outside notification hours, skipping reminders", slog.Int("hour", s.now().UTC().Hour()))
		return
	}
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("Reminder run failed", slog.Any("error", err))
	}
}

// withinHours は UTC の時刻が [start_hour, end_hour] に入っているかを返します。
// start_hour > end_hour (例: 22-6) は日付をまたぐ時間帯として扱います。
func (s *Scheduler) withinHours(t time.Time) bool {
	h := t.UTC().Hour()
	if s.cfg.StartHour <= s.cfg.EndHour {
		return h >= s.cfg.StartHour && h <= s.cfg.EndHour
	}
	return h >= s.cfg.StartHour || h <= s.cfg.EndHour
}

// RunOnce は全学習者をチェックし、出題待ちがあれば通知します。通知した人数を返します。
// 時間帯の判定はしません。
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	learners, err := s.learners.ListLearners(ctx)
	if err != nil {
		return 0, fmt.Errorf("reminder: list learners: %w", err)
	}

	var errs []error
	sent := 0
	for _, l := range learners {
		summary, err := s.reviews.GetReviewSummary(ctx, l.LearnerID)
		if err != nil {
			errs = append(errs, fmt.Errorf("summary for %s: %w", l.LearnerID, err))
			continue
		}
		if summary.Pending == 0 {
			continue
		}
		r := Reminder{LearnerID: l.LearnerID, Name: l.Name, Pending: summary.Pending, Due: summary.Due, New: summary.New}
		if err := s.notifier.Notify(ctx, r); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", l.LearnerID, err))
			continue
		}
		sent++
	}

	s.logger.Info("Reminder run completed", slog.Int("learners", len(learners)), slog.Int("notified", sent))
	return sent, errors.Join(errs...)
}

// LogNotifier は通知をログに出すだけの Notifier です。
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, r Reminder) error {
	logger := n.Logger
	if logger == nil {
		logger = middleware.GetLogger(ctx)
	}
	logger.InfoContext(ctx, "Words are waiting for review",
		slog.String("learner_id", r.LearnerID.String()),
		slog.String("name", r.Name),
		slog.Int("pending", r.Pending),
		slog.Int("due", r.Due),
		slog.Int("new", r.New),
	)
	return nil
}
