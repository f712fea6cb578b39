package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/internal/domains/maintenance/model"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"
	"safari/shared/timezone"
)

type MaintenanceLog interface {
	Insert(ctx context.Context, model model.MaintenanceLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceLog, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CompletePending(ctx context.Context, roomNumber, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.MaintenanceLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) MaintenanceLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MaintenanceLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CompletePending closes every open log of the room.
func (r *repositoryImpl) CompletePending(ctx context.Context, roomNumber, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance_log.CompletePending")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	return r.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        model.StatusCompleted,
		model.FieldDocStatus:     constant.DocStatusSubmitted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
}
