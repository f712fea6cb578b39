package service_test

import (
	"context"
	"errors"
	"net/http"
	"safari/config"
	otelMocks "safari/infras/otel/mocks"
	"safari/internal/domains/user/mocks"
	"safari/internal/domains/user/model"
	"safari/internal/domains/user/model/dto"
	"safari/internal/domains/user/service"
	cacheMocks "safari/shared/cache/mocks"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*mocks.MockUser, *cacheMocks.MockRedisCache, service.User) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, cache, service.New(repo, &config.Config{}, cache, otelMocks.NewOtel())
}

func adminContext(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserService_Create(t *testing.T) {
	t.Run("normalizes email and defaults level", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) error {
				assert.Equal(t, "guide@safari.test", u.Email)
				assert.Equal(t, constant.RoleUser, u.Level)
				assert.True(t, u.Active)
				assert.Equal(t, "admin-1", u.CreatedBy)
				assert.NoError(t, password.Verify("secret-pass", u.Password))

				return nil
			})

		err := svc.Create(adminContext("admin-1"), dto.CreateUserRequest{Email: "  Guide@Safari.test ", Password: "secret-pass"})

		assert.NoError(t, err)
	})

	t.Run("email taken", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(adminContext("admin-1"), dto.CreateUserRequest{Email: "guide@safari.test", Password: "secret-pass"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss reads the store", func(t *testing.T) {
		repo, cache, svc := newService(t)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Email: "guide@safari.test", Level: constant.RoleUser}, nil)

		res, err := svc.Get(context.Background(), "u-1")

		assert.NoError(t, err)
		assert.Equal(t, "guide@safari.test", res.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, cache, svc := newService(t)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "u-404")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		_, _, svc := newService(t)

		err := svc.Update(adminContext("admin-1"), dto.UpdateUserRequest{}, "u-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("renames another user", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Level: constant.RoleUser, Active: true}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, ptr("Amani"), fields[model.FieldFullName])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		err := svc.Update(adminContext("admin-1"), dto.UpdateUserRequest{FullName: ptr("Amani")}, "u-1")

		assert.NoError(t, err)
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "admin-1", Level: constant.RoleAdmin, Active: true}, nil)

		err := svc.Update(adminContext("admin-1"), dto.UpdateUserRequest{Active: ptr(false)}, "admin-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cannot demote the last admin", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "admin-2", Level: constant.RoleAdmin, Active: true}, nil)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		err := svc.Update(adminContext("admin-1"), dto.UpdateUserRequest{Level: ptr(constant.RoleUser)}, "admin-2")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("demotes an admin when another remains", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "admin-2", Level: constant.RoleAdmin, Active: true}, nil)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(adminContext("admin-1"), dto.UpdateUserRequest{Level: ptr(constant.RoleUser)}, "admin-2")

		assert.NoError(t, err)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	t.Run("stores a new hash", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, ok := fields[model.FieldPassword].(string)

				assert.True(t, ok)
				assert.NoError(t, password.Verify("new-secret", hash))

				return nil
			})

		err := svc.ResetPassword(adminContext("admin-1"), dto.ResetPasswordRequest{NewPassword: "new-secret"}, "u-1")

		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		err := svc.ResetPassword(adminContext("admin-1"), dto.ResetPasswordRequest{NewPassword: "new-secret"}, "u-404")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("cannot delete self", func(t *testing.T) {
		_, _, svc := newService(t)

		err := svc.Delete(adminContext("admin-1"), "admin-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deletes a staff user", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Level: constant.RoleUser, Active: true}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(adminContext("admin-1"), "u-1")

		assert.NoError(t, err)
	})

	t.Run("keeps the last admin", func(t *testing.T) {
		repo, _, svc := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "admin-2", Level: constant.RoleAdmin, Active: true}, nil)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		err := svc.Delete(adminContext("admin-1"), "admin-2")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
