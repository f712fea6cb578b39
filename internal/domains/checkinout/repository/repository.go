package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/checkinout/model"
	maintenanceModel "safari/internal/domains/maintenance/model"
	reservationModel "safari/internal/domains/reservation/model"
	roomRepo "safari/internal/domains/room/repository"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CheckInLog interface {
	Insert(ctx context.Context, model model.CheckInLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckInLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CheckInLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CheckIn(ctx context.Context, logs []model.CheckInLog, stay model.StayWrite) error
}

type CheckoutLog interface {
	Insert(ctx context.Context, model model.CheckoutLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckoutLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CheckoutLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CheckOut(ctx context.Context, logs []model.CheckoutLog, maintenance []maintenanceModel.MaintenanceLog, stay model.StayWrite) error
}

// stayWriter applies the writes shared by check-in and checkout inside the caller's transaction.
type stayWriter struct {
	db           *postgres.Connection
	otel         otel.Otel
	rooms        roomRepo.Room
	availability gRepo.Repository[availabilityModel.Availability]
	reservations gRepo.Repository[reservationModel.Reservation]
}

type checkInRepositoryImpl struct {
	gRepo.Repository[model.CheckInLog]
	stayWriter
}

type checkoutRepositoryImpl struct {
	gRepo.Repository[model.CheckoutLog]
	stayWriter
	maintenance gRepo.Repository[maintenanceModel.MaintenanceLog]
}

func newStayWriter(db *postgres.Connection, otel otel.Otel) stayWriter {
	return stayWriter{
		db:           db,
		otel:         otel,
		rooms:        roomRepo.New(db, otel),
		availability: gRepo.NewRepository[availabilityModel.Availability](availabilityModel.EntityName, availabilityModel.TableName, availabilityModel.FieldID, db, otel),
		reservations: gRepo.NewRepository[reservationModel.Reservation](reservationModel.EntityName, reservationModel.TableName, reservationModel.FieldID, db, otel),
	}
}

func NewCheckIn(db *postgres.Connection, otel otel.Otel) CheckInLog {
	return &checkInRepositoryImpl{
		Repository: gRepo.NewRepository[model.CheckInLog](model.CheckInEntityName, model.CheckInTableName, model.FieldID, db, otel),
		stayWriter: newStayWriter(db, otel),
	}
}

func NewCheckout(db *postgres.Connection, otel otel.Otel) CheckoutLog {
	return &checkoutRepositoryImpl{
		Repository:  gRepo.NewRepository[model.CheckoutLog](model.CheckoutEntityName, model.CheckoutTableName, model.FieldID, db, otel),
		stayWriter:  newStayWriter(db, otel),
		maintenance: gRepo.NewRepository[maintenanceModel.MaintenanceLog](maintenanceModel.EntityName, maintenanceModel.TableName, maintenanceModel.FieldID, db, otel),
	}
}

// CheckIn writes the check-in logs and occupies the rooms in one transaction.
func (r *checkInRepositoryImpl) CheckIn(ctx context.Context, logs []model.CheckInLog, stay model.StayWrite) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".check_in_log.CheckIn")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertBulkTx(ctx, tx, logs); err != nil {
			return err
		}

		return r.apply(ctx, tx, stay)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to check in reservation: %w", err)
	}

	return nil
}

// CheckOut writes the checkout and maintenance logs and releases the rooms in one transaction.
func (r *checkoutRepositoryImpl) CheckOut(
	ctx context.Context,
	logs []model.CheckoutLog,
	maintenance []maintenanceModel.MaintenanceLog,
	stay model.StayWrite,
) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkout_log.CheckOut")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertBulkTx(ctx, tx, logs); err != nil {
			return err
		}

		if err := r.maintenance.InsertBulkTx(ctx, tx, maintenance); err != nil {
			return err
		}

		return r.apply(ctx, tx, stay)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to check out reservation: %w", err)
	}

	return nil
}

func (w stayWriter) apply(ctx context.Context, tx *sqlx.Tx, stay model.StayWrite) error {
	if err := w.rooms.MoveStatusTx(ctx, tx, stay.Rooms, stay.RoomFrom, stay.RoomTo, stay.By); err != nil {
		return err //nolint:wrapcheck
	}

	if len(stay.Rooms) > 0 {
		fields := map[string]any{
			availabilityModel.FieldStatus: stay.AvailabilityStatus,
			constant.FieldModifiedAt:      stay.At,
			constant.FieldModifiedBy:      stay.By,
		}

		if err := w.availability.UpdateTx(ctx, tx, fields, availabilityFilter(stay)); err != nil {
			return err //nolint:wrapcheck
		}
	}

	fields := map[string]any{
		stay.ReservationFlag:     true,
		constant.FieldModifiedAt: stay.At,
		constant.FieldModifiedBy: stay.By,
	}

	return w.reservations.UpdateTx(ctx, tx, fields, reservationFilter(stay.ReservationID)) //nolint:wrapcheck
}

func availabilityFilter(stay model.StayWrite) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    availabilityModel.FieldReservationID,
				Operator: gDto.FilterOperatorEq,
				Value:    stay.ReservationID,
				Table:    availabilityModel.TableName,
			},
			gDto.Filter{
				Field:    availabilityModel.FieldRoomNumber,
				Operator: gDto.FilterOperatorIn,
				Value:    stay.Rooms,
				Table:    availabilityModel.TableName,
			},
		},
	}
}

func reservationFilter(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    reservationModel.TableName,
			},
		},
	}
}
