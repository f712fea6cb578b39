package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safari/config"
	otelMocks "safari/infras/otel/mocks"
	"safari/internal/domains/activity/mocks"
	"safari/internal/domains/activity/model"
	"safari/internal/domains/activity/model/dto"
	"safari/internal/domains/activity/service"
	cacheMocks "safari/shared/cache/mocks"
	"safari/shared/constant"
	"safari/shared/failure"
)

func newService(t *testing.T) (*mocks.MockActivity, *cacheMocks.MockRedisCache, service.Activity) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockActivity(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, cache, service.New(repo, &config.Config{}, cache, otelMocks.NewOtel())
}

func TestActivityService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	t.Run("new activity", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a model.Activity) error {
				assert.Equal(t, "Kayaking", a.Name)
				assert.Equal(t, model.CategoryWaterSports, a.Category)

				return nil
			})

		err := svc.Create(ctx, dto.CreateActivityRequest{Name: "Kayaking", Category: model.CategoryWaterSports, Cost: 40})

		assert.NoError(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, dto.CreateActivityRequest{Name: "Kayaking"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestActivityService_Get(t *testing.T) {
	t.Run("cache miss reads the store", func(t *testing.T) {
		repo, cache, svc := newService(t)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{Name: "Game Drive", Cost: 90}, nil)

		res, err := svc.Get(context.Background(), "Game Drive")

		assert.NoError(t, err)
		assert.Equal(t, 90.0, res.Cost)
	})

	t.Run("unknown activity", func(t *testing.T) {
		repo, cache, svc := newService(t)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, nil)

		_, err := svc.Get(context.Background(), "Skydiving")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestActivityService_Update_Empty(t *testing.T) {
	_, _, svc := newService(t)

	err := svc.Update(context.Background(), dto.UpdateActivityRequest{}, "Kayaking")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
