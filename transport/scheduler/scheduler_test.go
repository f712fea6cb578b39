package scheduler_test

import (
	"context"
	"errors"
	"safari/config"
	"safari/internal/domains/availability/mocks"
	"safari/internal/domains/availability/model"
	"safari/internal/domains/availability/model/dto"
	"safari/shared/constant"
	"safari/shared/metrics"
	"safari/transport/scheduler"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScheduler_Run(t *testing.T) {
	t.Run("runs room status job as system user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAvailabilityService(ctrl)
		cfg := &config.Config{}
		s := scheduler.New(cfg, service)

		runs := testutil.ToFloat64(metrics.JobRuns.WithLabelValues(model.JobRoomStatus, metrics.ResultSuccess))
		processed := testutil.ToFloat64(metrics.JobProcessedRecords.WithLabelValues(model.JobRoomStatus))

		service.EXPECT().
			UpdateRoomStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ time.Time) (dto.JobResult, error) {
				assert.Equal(t, constant.SystemUser, ctx.Value(constant.ContextKeyUserID))

				return dto.JobResult{Job: model.JobRoomStatus, Processed: 3}, nil
			})

		err := s.Run(context.Background(), model.JobRoomStatus)

		assert.NoError(t, err)
		assert.InDelta(t, runs+1, testutil.ToFloat64(metrics.JobRuns.WithLabelValues(model.JobRoomStatus, metrics.ResultSuccess)), 0.001)
		// the service counts processed records, the scheduler must not add them again
		assert.InDelta(t, processed, testutil.ToFloat64(metrics.JobProcessedRecords.WithLabelValues(model.JobRoomStatus)), 0.001)
	})

	t.Run("records checkout failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAvailabilityService(ctrl)
		s := scheduler.New(&config.Config{}, service)

		before := testutil.ToFloat64(metrics.JobRuns.WithLabelValues(model.JobCheckout, metrics.ResultFailure))

		service.EXPECT().
			ProcessCheckout(gomock.Any(), gomock.Any()).
			Return(dto.JobResult{Job: model.JobCheckout}, errors.New("db down"))

		err := s.Run(context.Background(), model.JobCheckout)

		assert.EqualError(t, err, "db down")
		assert.InDelta(t, before+1, testutil.ToFloat64(metrics.JobRuns.WithLabelValues(model.JobCheckout, metrics.ResultFailure)), 0.001)
	})

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := scheduler.New(&config.Config{}, mocks.NewMockAvailabilityService(ctrl))

		err := s.Run(context.Background(), "reindex")

		assert.Error(t, err)
	})
}

func TestScheduler_Start(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := scheduler.New(&config.Config{}, mocks.NewMockAvailabilityService(ctrl))

		assert.NoError(t, s.Start())
	})

	t.Run("invalid spec", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := &config.Config{}
		cfg.Scheduler.Enable = true
		cfg.Scheduler.RoomStatusSpec = "not a cron"
		cfg.Scheduler.CheckoutSpec = "0 10 * * *"

		s := scheduler.New(cfg, mocks.NewMockAvailabilityService(ctrl))

		assert.Error(t, s.Start())
	})

	t.Run("starts and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := &config.Config{}
		cfg.Scheduler.Enable = true
		cfg.Scheduler.RoomStatusSpec = "5 0 * * *"
		cfg.Scheduler.CheckoutSpec = "0 10 * * *"

		s := scheduler.New(cfg, mocks.NewMockAvailabilityService(ctrl))

		assert.NoError(t, s.Start())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		s.Stop(ctx)
	})
}
