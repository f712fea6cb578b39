package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/internal/domains/quotation/model"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Quotation interface {
	Create(ctx context.Context, quotation model.Quotation, items []model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Quotation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Quotation, error)
	GetItems(ctx context.Context, quotationID string) ([]model.Item, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Quotation]
	db    *postgres.Connection
	otel  otel.Otel
	items gRepo.Repository[model.Item]
}

func New(db *postgres.Connection, otel otel.Otel) Quotation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Quotation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		items:      gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
	}
}

// Create stores the quotation with its items in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, quotation model.Quotation, items []model.Item) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".quotation.Create")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, quotation); err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		return r.items.InsertBulkTx(ctx, tx, items)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create quotation: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetItems(ctx context.Context, quotationID string) ([]model.Item, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldQuotationID,
				Operator: gDto.FilterOperatorEq,
				Value:    quotationID,
				Table:    model.ItemTableName,
			},
		},
	}

	items, err := r.items.GetAll(ctx, gDto.QueryParams{SortBy: "idx", SortDir: "ASC"}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation items: %w", err)
	}

	return items, nil
}
