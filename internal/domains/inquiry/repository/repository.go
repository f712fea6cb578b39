package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/internal/domains/inquiry/model"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Inquiry interface {
	Create(ctx context.Context, inquiry model.Inquiry, details model.Details) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	GetDetails(ctx context.Context, id string) (model.Details, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Replace(ctx context.Context, id string, fields map[string]any, details model.Details) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Submit(ctx context.Context, id string, fields map[string]any, event model.CalendarEvent) error
	GetEvents(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CalendarEvent, error)
	CountEvents(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
	db         *postgres.Connection
	otel       otel.Otel
	activities gRepo.Repository[model.ActivityRow]
	rooms      gRepo.Repository[model.RoomRow]
	events     gRepo.Repository[model.CalendarEvent]
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		activities: gRepo.NewRepository[model.ActivityRow]("booking_inquiry_activity", model.ActivityTableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[model.RoomRow]("booking_inquiry_room", model.RoomTableName, model.FieldID, db, otel),
		events:     gRepo.NewRepository[model.CalendarEvent](model.EventEntityName, model.EventTableName, model.FieldID, db, otel),
	}
}

func byInquiry(table, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldInquiryID, Operator: gDto.FilterOperatorEq, Value: id, Table: table},
		},
	}
}

func byID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}
}

func (r *repositoryImpl) Create(ctx context.Context, inquiry model.Inquiry, details model.Details) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inquiry.Create")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, inquiry); err != nil {
			return err
		}

		return r.insertDetails(ctx, tx, details)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create booking inquiry: %w", err)
	}

	return nil
}

// Replace rewrites the inquiry header and swaps its activity and room rows.
func (r *repositoryImpl) Replace(ctx context.Context, id string, fields map[string]any, details model.Details) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inquiry.Replace")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, fields, byID(id)); err != nil {
			return err
		}

		if err := r.activities.ReplaceTx(ctx, tx, byInquiry(model.ActivityTableName, id), details.Activities); err != nil {
			return err
		}

		return r.rooms.ReplaceTx(ctx, tx, byInquiry(model.RoomTableName, id), details.Rooms)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace booking inquiry: %w", err)
	}

	return nil
}

// Submit marks the inquiry submitted and stores its calendar event together.
func (r *repositoryImpl) Submit(ctx context.Context, id string, fields map[string]any, event model.CalendarEvent) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inquiry.Submit")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.events.InsertTx(ctx, tx, event); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, fields, byID(id))
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to submit booking inquiry: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetDetails(ctx context.Context, id string) (details model.Details, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inquiry.GetDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{}

	if details.Activities, err = r.activities.GetAll(ctx, params, byInquiry(model.ActivityTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	if details.Rooms, err = r.rooms.GetAll(ctx, params, byInquiry(model.RoomTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	return details, nil
}

func (r *repositoryImpl) GetEvents(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CalendarEvent, error) {
	return r.events.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountEvents(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.events.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) insertDetails(ctx context.Context, tx *sqlx.Tx, details model.Details) error {
	if err := r.activities.InsertBulkTx(ctx, tx, details.Activities); err != nil {
		return err //nolint:wrapcheck
	}

	return r.rooms.InsertBulkTx(ctx, tx, details.Rooms) //nolint:wrapcheck
}
