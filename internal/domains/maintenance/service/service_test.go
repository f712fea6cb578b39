package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "safari/infras/otel/mocks"
	"safari/internal/domains/maintenance/mocks"
	"safari/internal/domains/maintenance/model"
	"safari/internal/domains/maintenance/model/dto"
	"safari/internal/domains/maintenance/service"
	roomMocks "safari/internal/domains/room/mocks"
	roomModel "safari/internal/domains/room/model"
	roomDto "safari/internal/domains/room/model/dto"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
)

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func TestMaintenanceService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		record    model.MaintenanceLog
		setupMock func(repo *mocks.MockMaintenanceLog, rooms *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name:   "draft log releases the room",
			record: model.MaintenanceLog{ID: "m-1", RoomNumber: "R-101", Status: model.StatusPending},
			setupMock: func(repo *mocks.MockMaintenanceLog, rooms *roomMocks.MockRoomService) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
						assert.Equal(t, constant.DocStatusSubmitted, fields[model.FieldDocStatus])

						return nil
					})
				rooms.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusAvailable).Return(nil)
			},
		},
		{
			name:      "already submitted",
			record:    model.MaintenanceLog{ID: "m-1", RoomNumber: "R-101", DocStatus: constant.DocStatusSubmitted},
			setupMock: func(_ *mocks.MockMaintenanceLog, _ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "not found",
			setupMock: func(_ *mocks.MockMaintenanceLog, _ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMaintenanceLog(ctrl)
			rooms := roomMocks.NewMockRoomService(ctrl)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.record, nil)
			tt.setupMock(repo, rooms)

			err := service.New(repo, rooms, otelMocks.NewOtel()).Submit(userContext(), "m-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestMaintenanceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaintenanceLog(ctrl)
	rooms := roomMocks.NewMockRoomService(ctrl)

	rooms.EXPECT().Get(gomock.Any(), "R-101").Return(roomDto.RoomResponse{RoomNumber: "R-101"}, nil)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.MaintenanceLog) error {
			assert.Equal(t, "R-101", m.RoomNumber)
			assert.Equal(t, model.StatusPending, m.Status)
			assert.Equal(t, constant.DocStatusDraft, m.DocStatus)
			assert.Equal(t, "staff-1", m.CreatedBy)

			return nil
		})

	id, err := service.New(repo, rooms, otelMocks.NewOtel()).Create(userContext(), dto.CreateMaintenanceLogRequest{
		RoomNumber: "R-101",
		Remarks:    "Leaking tap",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestAfterCheckoutRemarks(t *testing.T) {
	assert.Equal(t, "Room R-7 is now under maintenance after checkout.", model.AfterCheckoutRemarks("R-7"))
}
