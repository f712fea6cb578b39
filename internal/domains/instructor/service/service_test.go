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
	"safari/internal/domains/instructor/mocks"
	"safari/internal/domains/instructor/model"
	"safari/internal/domains/instructor/model/dto"
	"safari/internal/domains/instructor/service"
	cacheMocks "safari/shared/cache/mocks"
	"safari/shared/constant"
	"safari/shared/failure"
)

type fixture struct {
	levelRepo      *mocks.MockActivityLevel
	rateRepo       *mocks.MockRate
	assignmentRepo *mocks.MockAssignment
	svc            service.Instructor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		levelRepo:      mocks.NewMockActivityLevel(ctrl),
		rateRepo:       mocks.NewMockRate(ctrl),
		assignmentRepo: mocks.NewMockAssignment(ctrl),
	}

	f.svc = service.New(f.levelRepo, f.rateRepo, f.assignmentRepo, &config.Config{}, cache, otelMocks.NewOtel())

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func TestInstructorService_GetAllInstructors(t *testing.T) {
	rate := 45.0

	t.Run("returns the joined rows", func(t *testing.T) {
		f := newFixture(t)

		f.levelRepo.EXPECT().FindCandidates(gomock.Any(), "Kayaking", "Private").Return([]model.Candidate{
			{Instructor: "Wanjiru", Qualification: "Senior", Rate: &rate},
			{Instructor: "Otieno", Qualification: "Junior"},
		}, nil)

		res, err := f.svc.GetAllInstructors(userContext(), dto.InstructorQuery{Activity: "Kayaking", SessionType: "Private"})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Wanjiru", res[0].Instructor)
		assert.Equal(t, &rate, res[0].Rate)
		assert.Nil(t, res[1].Rate)
	})

	tests := []struct {
		name  string
		query dto.InstructorQuery
		want  string
	}{
		{
			name:  "missing session type",
			query: dto.InstructorQuery{Activity: "Kayaking"},
			want:  "Both activity and session_type parameters are required. Received: Activity=Kayaking, Session Type=",
		},
		{
			name:  "missing activity",
			query: dto.InstructorQuery{SessionType: "Group"},
			want:  "Both activity and session_type parameters are required. Received: Activity=, Session Type=Group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.GetAllInstructors(userContext(), tt.query)

			assert.EqualError(t, err, tt.want)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestInstructorService_Suggest(t *testing.T) {
	t.Run("replaces suggestions from the lookup", func(t *testing.T) {
		f := newFixture(t)

		f.assignmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Assignment{ID: "as-1", Activity: "Kayaking", SessionType: "Private"}, nil)
		f.levelRepo.EXPECT().FindCandidates(gomock.Any(), "Kayaking", "Private").Return([]model.Candidate{
			{Instructor: "Wanjiru", Qualification: "Senior"},
		}, nil)
		f.assignmentRepo.EXPECT().
			ReplaceSuggestions(gomock.Any(), "as-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, suggestions []model.Suggestion) error {
				assert.Len(t, suggestions, 1)
				assert.Equal(t, "as-1", suggestions[0].AssignmentID)
				assert.Equal(t, "Senior", suggestions[0].Qualification)

				return nil
			})

		res, err := f.svc.Suggest(userContext(), "as-1")

		assert.NoError(t, err)
		assert.Equal(t, []dto.SuggestionResponse{{Instructor: "Wanjiru", Qualification: "Senior"}}, res.Suggestions)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		f := newFixture(t)

		f.assignmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Assignment{}, nil)

		_, err := f.svc.Suggest(userContext(), "as-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestInstructorService_CreateRate(t *testing.T) {
	req := dto.CreateRateRequest{ActivityName: "Kayaking", Qualification: "Senior", SessionType: "Private", Rate: 45}

	t.Run("duplicate rate", func(t *testing.T) {
		f := newFixture(t)

		f.rateRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.CreateRate(userContext(), req)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		f.rateRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.rateRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rate model.Rate) error {
				assert.Equal(t, "staff-1", rate.CreatedBy)
				assert.InDelta(t, 45.0, rate.Rate, 0.001)

				return nil
			})

		id, err := f.svc.CreateRate(userContext(), req)

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestInstructorService_UpdateRate(t *testing.T) {
	f := newFixture(t)

	err := f.svc.UpdateRate(userContext(), dto.UpdateRateRequest{}, "rate-1")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
