package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/internal/domains/instructor/model"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gRepo "safari/shared/repository"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ActivityLevel interface {
	Insert(ctx context.Context, model model.ActivityLevel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ActivityLevel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ActivityLevel, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindCandidates(ctx context.Context, activity, sessionType string) ([]model.Candidate, error)
}

type Rate interface {
	Insert(ctx context.Context, model model.Rate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Rate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Assignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetSuggestions(ctx context.Context, assignmentID string) ([]model.Suggestion, error)
	ReplaceSuggestions(ctx context.Context, assignmentID string, suggestions []model.Suggestion) error
}

type activityLevelImpl struct {
	gRepo.Repository[model.ActivityLevel]
	db   *postgres.Connection
	otel otel.Otel
}

type rateImpl struct {
	gRepo.Repository[model.Rate]
}

type assignmentImpl struct {
	gRepo.Repository[model.Assignment]
	db          *postgres.Connection
	otel        otel.Otel
	suggestions gRepo.Repository[model.Suggestion]
}

func NewActivityLevel(db *postgres.Connection, otel otel.Otel) ActivityLevel {
	return &activityLevelImpl{
		Repository: gRepo.NewRepository[model.ActivityLevel](model.ActivityLevelEntityName, model.ActivityLevelTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func NewRate(db *postgres.Connection, otel otel.Otel) Rate {
	return &rateImpl{
		Repository: gRepo.NewRepository[model.Rate](model.RateEntityName, model.RateTableName, model.FieldID, db, otel),
	}
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentImpl{
		Repository:  gRepo.NewRepository[model.Assignment](model.AssignmentEntityName, model.AssignmentTableName, model.FieldID, db, otel),
		db:          db,
		otel:        otel,
		suggestions: gRepo.NewRepository[model.Suggestion](model.SuggestionEntityName, model.SuggestionTableName, model.FieldID, db, otel),
	}
}

// FindCandidates lists instructors qualified for the activity with the rate of the session, if any.
func (r *activityLevelImpl) FindCandidates(ctx context.Context, activity, sessionType string) ([]model.Candidate, error) {
	candidates, err := gRepo.Select[model.Candidate](ctx, r.db, r.otel, model.ActivityLevelEntityName, buildCandidateQuery(activity, sessionType))
	if err != nil {
		return nil, fmt.Errorf("failed to find instructors: %w", err)
	}

	return candidates, nil
}

func buildCandidateQuery(activity, sessionType string) squirrel.SelectBuilder {
	return gRepo.Psql.
		Select("ia.instructor", "ia.qualification", "ir.rate").
		From(model.ActivityLevelTableName+" ia").
		LeftJoin(
			model.RateTableName+" ir ON ia.qualification = ir.qualification AND ia.activity_name = ir.activity_name AND ir.session_type = ?",
			sessionType,
		).
		Where(squirrel.Eq{"ia.activity_name": activity}).
		OrderBy("ia.instructor")
}

func bySuggestionParent(assignmentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAssignmentID,
				Operator: gDto.FilterOperatorEq,
				Value:    assignmentID,
				Table:    model.SuggestionTableName,
			},
		},
	}
}

func (r *assignmentImpl) GetSuggestions(ctx context.Context, assignmentID string) ([]model.Suggestion, error) {
	suggestions, err := r.suggestions.GetAll(ctx, gDto.QueryParams{}, bySuggestionParent(assignmentID))
	if err != nil {
		return nil, fmt.Errorf("failed to get instructor suggestions: %w", err)
	}

	return suggestions, nil
}

// ReplaceSuggestions clears the suggestion rows of an assignment and writes the new ones.
func (r *assignmentImpl) ReplaceSuggestions(ctx context.Context, assignmentID string, suggestions []model.Suggestion) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".instructor_assignment.ReplaceSuggestions")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.suggestions.DeleteTx(ctx, tx, bySuggestionParent(assignmentID)); err != nil {
			return err //nolint:wrapcheck
		}

		if len(suggestions) == 0 {
			return nil
		}

		return r.suggestions.InsertBulkTx(ctx, tx, suggestions) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace instructor suggestions: %w", err)
	}

	return nil
}
