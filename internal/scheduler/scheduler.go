package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/config"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/service/reporting"
	"github.com/salonops/backoffice/pkg/clients/notify"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifier     notify.Notifier
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The notifier may be nil,
// which disables the webhook announcement.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, notifier notify.Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow), evaluated in the configured timezone.
	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, scheduler falls back to UTC", zap.String("timezone", cfg.Reporting.Timezone))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:         c,
		reportingSvc: reportingSvc,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.publishDailyDigest)
	if err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) publishDailyDigest() {
	s.logger.Info("generating daily digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Daily sale buckets are keyed by UTC midnight, so the digest covers the
	// previous UTC day.
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	digest, err := s.reportingSvc.GenerateDailyDigest(ctx, yesterday)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			s.logger.Info("no daily sales recorded yesterday, skipping digest")
			return
		}
		s.logger.Error("failed to generate daily digest", zap.Error(err))
		return
	}

	if err := s.reportingSvc.ExportDigest(ctx, digest); err != nil {
		s.logger.Error("failed to export daily digest", zap.Error(err))
	}

	if s.notifier == nil {
		return
	}

	if err := s.notifier.PostText(ctx, reporting.FormatDigest(digest)); err != nil {
		s.logger.Error("failed to send digest notification", zap.Error(err))
	} else {
		s.logger.Info("daily digest sent successfully")
	}
}
