package scheduler

import (
	"context"
	"fmt"
	"safari/config"
	"safari/internal/domains/availability/model"
	"safari/internal/domains/availability/model/dto"
	availabilityService "safari/internal/domains/availability/service"
	"safari/shared/constant"
	"safari/shared/metrics"
	"safari/shared/timezone"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type jobFunc func(ctx context.Context, today time.Time) (dto.JobResult, error)

// Scheduler runs the daily availability jobs on cron schedules in the app timezone.
type Scheduler struct {
	cfg          *config.Config
	availability availabilityService.Availability
	cron         *cron.Cron
	jobs         map[string]jobFunc
}

func New(cfg *config.Config, availability availabilityService.Availability) *Scheduler {
	s := &Scheduler{
		cfg:          cfg,
		availability: availability,
		cron:         cron.New(cron.WithLocation(timezone.GetLocation())),
	}

	s.jobs = map[string]jobFunc{
		model.JobRoomStatus: availability.UpdateRoomStatus,
		model.JobCheckout:   availability.ProcessCheckout,
	}

	return s
}

// Start registers both jobs and starts the cron loop. It is a no-op when the scheduler is disabled.
func (s *Scheduler) Start() error {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled, skipping job registration")

		return nil
	}

	specs := map[string]string{
		model.JobRoomStatus: s.cfg.Scheduler.RoomStatusSpec,
		model.JobCheckout:   s.cfg.Scheduler.CheckoutSpec,
	}

	for job, spec := range specs {
		name := job

		if _, err := s.cron.AddFunc(spec, func() { _ = s.Run(context.Background(), name) }); err != nil {
			return fmt.Errorf("registering %s job with spec %q: %w", name, spec, err)
		}

		log.Info().Str("job", name).Str("spec", spec).Msg("Scheduled job registered")
	}

	s.cron.Start()

	return nil
}

// Stop waits for running jobs to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		log.Info().Msg("Scheduler stopped")
	case <-ctx.Done():
		log.Warn().Msg("Scheduler stop timed out, jobs may still be running")
	}
}

// Run executes a single job for the current app date as the system user.
func (s *Scheduler) Run(ctx context.Context, job string) error {
	fn, ok := s.jobs[job]
	if !ok {
		return fmt.Errorf("unknown job %q", job)
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.SystemUser)
	today := timezone.Now()

	res, err := fn(ctx, today)
	if err != nil {
		metrics.JobRuns.WithLabelValues(job, metrics.ResultFailure).Inc()
		log.Error().Err(err).Str("job", job).Int("processed", res.Processed).Msg("Scheduled job failed")

		return err
	}

	// Processed records are counted by the availability service itself.
	metrics.JobRuns.WithLabelValues(job, metrics.ResultSuccess).Inc()

	log.Info().Str("job", job).Str("date", res.Date).Int("processed", res.Processed).Msg("Scheduled job finished")

	return nil
}
