package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/room/model"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"
	"safari/shared/timezone"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ErrStatusConflict means a guarded status move found a room outside the expected statuses.
var ErrStatusConflict = errors.New("room status changed")

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAvailable(ctx context.Context, checkIn, checkOut *time.Time) ([]model.Room, error)
	MoveStatus(ctx context.Context, roomNumbers, from []string, to, user string) error
	MoveStatusTx(ctx context.Context, tx *sqlx.Tx, roomNumbers, from []string, to, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAvailable lists active rooms in status Available. With a date range it also drops rooms
// holding an availability record whose stay overlaps [checkIn, checkOut).
func (r *repositoryImpl) GetAvailable(ctx context.Context, checkIn, checkOut *time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAvailable")
	defer scope.End()

	builder := buildAvailableQuery(r.Columns(), checkIn, checkOut)

	rooms, err := r.Query(ctx, builder)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

// MoveStatus sets every listed room to status to, but only rooms currently in one of from.
// It returns ErrStatusConflict unless every room matched.
func (r *repositoryImpl) MoveStatus(ctx context.Context, roomNumbers, from []string, to, user string) error {
	return r.moveStatus(ctx, nil, roomNumbers, from, to, user)
}

// MoveStatusTx is MoveStatus inside tx, so a conflict rolls back the caller's other writes.
func (r *repositoryImpl) MoveStatusTx(ctx context.Context, tx *sqlx.Tx, roomNumbers, from []string, to, user string) error {
	return r.moveStatus(ctx, tx, roomNumbers, from, to, user)
}

func (r *repositoryImpl) moveStatus(ctx context.Context, tx *sqlx.Tx, roomNumbers, from []string, to, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.MoveStatus")
	defer scope.End()

	rooms := slices.Compact(slices.Sorted(slices.Values(roomNumbers)))
	if len(rooms) == 0 {
		return nil
	}

	fields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	var (
		affected int64
		err      error
	)

	if tx == nil {
		affected, err = r.UpdateRows(ctx, fields, statusGuard(rooms, from))
	} else {
		affected, err = r.UpdateRowsTx(ctx, tx, fields, statusGuard(rooms, from))
	}

	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to move room status: %w", err)
	}

	if affected != int64(len(rooms)) {
		scope.TraceError(ErrStatusConflict)

		return fmt.Errorf("%w: %d of %d rooms in %v", ErrStatusConflict, affected, len(rooms), from)
	}

	return nil
}

func statusGuard(rooms, from []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorIn,
				Value:    rooms,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "from_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    from,
				Table:    model.TableName,
			},
		},
	}
}

func buildAvailableQuery(columns []string, checkIn, checkOut *time.Time) squirrel.SelectBuilder {
	builder := gRepo.Psql.
		Select(columns...).
		From(model.TableName).
		Where(squirrel.Eq{
			model.TableName + "." + model.FieldStatus: model.StatusAvailable,
			model.TableName + "." + model.FieldActive: true,
		}).
		OrderBy(model.TableName + "." + model.FieldRoomNumber)

	if checkIn == nil || checkOut == nil {
		return builder
	}

	occupied := gRepo.Psql.
		Select(availabilityModel.FieldRoomNumber).
		From(availabilityModel.TableName).
		Where(squirrel.NotEq{availabilityModel.FieldRoomNumber: nil}).
		Where(squirrel.Eq{availabilityModel.FieldStatus: availabilityModel.BlockingStatuses}).
		Where(squirrel.Lt{availabilityModel.FieldCheckInDate: *checkOut}).
		Where(squirrel.Gt{availabilityModel.FieldCheckOutDate: *checkIn})

	return builder.Where(squirrel.Expr(model.TableName+"."+model.FieldRoomNumber+" NOT IN (?)", occupied))
}
