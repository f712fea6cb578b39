package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/reservation/model"
	roomModel "safari/internal/domains/room/model"
	roomRepo "safari/internal/domains/room/repository"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Create(ctx context.Context, reservation model.Reservation, details model.Details) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	GetDetails(ctx context.Context, id string) (model.Details, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Replace(ctx context.Context, id string, fields map[string]any, details model.Details) error
	Confirm(ctx context.Context, id string, fields map[string]any, availabilities []availabilityModel.Availability, rooms []string, user string) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db           *postgres.Connection
	otel         otel.Otel
	activities   gRepo.Repository[model.ActivityRow]
	rooms        gRepo.Repository[model.RoomRow]
	tents        gRepo.Repository[model.TentRow]
	transports   gRepo.Repository[model.TransportRow]
	services     gRepo.Repository[model.ServiceRow]
	availability gRepo.Repository[availabilityModel.Availability]
	roomStatus   roomRepo.Room
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
		activities:   gRepo.NewRepository[model.ActivityRow]("reservation_activity", model.ActivityTableName, model.FieldID, db, otel),
		rooms:        gRepo.NewRepository[model.RoomRow]("reservation_room", model.RoomTableName, model.FieldID, db, otel),
		tents:        gRepo.NewRepository[model.TentRow]("reservation_tent", model.TentTableName, model.FieldID, db, otel),
		transports:   gRepo.NewRepository[model.TransportRow]("reservation_transport", model.TransportTableName, model.FieldID, db, otel),
		services:     gRepo.NewRepository[model.ServiceRow]("reservation_service", model.ServiceTableName, model.FieldID, db, otel),
		availability: gRepo.NewRepository[availabilityModel.Availability](availabilityModel.EntityName, availabilityModel.TableName, availabilityModel.FieldID, db, otel),
		roomStatus:   roomRepo.New(db, otel),
	}
}

func byReservation(table, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    table,
			},
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

// Create stores the reservation and its child rows in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, reservation model.Reservation, details model.Details) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Create")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, reservation); err != nil {
			return err
		}

		return r.insertDetails(ctx, tx, details)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// Replace updates the reservation and swaps every child row for the given ones.
func (r *repositoryImpl) Replace(ctx context.Context, id string, fields map[string]any, details model.Details) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Replace")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, fields, byID(id)); err != nil {
			return err
		}

		return r.replaceDetails(ctx, tx, id, details)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace reservation: %w", err)
	}

	return nil
}

// Confirm submits the reservation, writes its availability records and books its rooms in one
// transaction. Any room that is no longer Available rolls the whole confirmation back.
func (r *repositoryImpl) Confirm(
	ctx context.Context,
	id string,
	fields map[string]any,
	availabilities []availabilityModel.Availability,
	rooms []string,
	user string,
) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Confirm")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, fields, byID(id)); err != nil {
			return err
		}

		if err := r.availability.InsertBulkTx(ctx, tx, availabilities); err != nil {
			return err
		}

		return r.roomStatus.MoveStatusTx(ctx, tx, rooms, []string{roomModel.StatusAvailable}, roomModel.StatusBooked, user)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetDetails(ctx context.Context, id string) (details model.Details, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{}

	if details.Activities, err = r.activities.GetAll(ctx, params, byReservation(model.ActivityTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	if details.Rooms, err = r.rooms.GetAll(ctx, params, byReservation(model.RoomTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	if details.Tents, err = r.tents.GetAll(ctx, params, byReservation(model.TentTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	if details.Transports, err = r.transports.GetAll(ctx, params, byReservation(model.TransportTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	if details.Services, err = r.services.GetAll(ctx, params, byReservation(model.ServiceTableName, id)); err != nil {
		return details, err //nolint:wrapcheck
	}

	return details, nil
}

func (r *repositoryImpl) insertDetails(ctx context.Context, tx *sqlx.Tx, details model.Details) error {
	if err := r.activities.InsertBulkTx(ctx, tx, details.Activities); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.rooms.InsertBulkTx(ctx, tx, details.Rooms); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.tents.InsertBulkTx(ctx, tx, details.Tents); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.transports.InsertBulkTx(ctx, tx, details.Transports); err != nil {
		return err //nolint:wrapcheck
	}

	return r.services.InsertBulkTx(ctx, tx, details.Services) //nolint:wrapcheck
}

func (r *repositoryImpl) replaceDetails(ctx context.Context, tx *sqlx.Tx, id string, details model.Details) error {
	if err := r.activities.ReplaceTx(ctx, tx, byReservation(model.ActivityTableName, id), details.Activities); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.rooms.ReplaceTx(ctx, tx, byReservation(model.RoomTableName, id), details.Rooms); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.tents.ReplaceTx(ctx, tx, byReservation(model.TentTableName, id), details.Tents); err != nil {
		return err //nolint:wrapcheck
	}

	if err := r.transports.ReplaceTx(ctx, tx, byReservation(model.TransportTableName, id), details.Transports); err != nil {
		return err //nolint:wrapcheck
	}

	return r.services.ReplaceTx(ctx, tx, byReservation(model.ServiceTableName, id), details.Services) //nolint:wrapcheck
}
