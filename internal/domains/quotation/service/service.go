package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Quotation=MockQuotationService

import (
	"context"
	"fmt"

	"safari/infras/otel"
	"safari/internal/domains/quotation/model"
	"safari/internal/domains/quotation/model/dto"
	"safari/internal/domains/quotation/repository"
	reservationModel "safari/internal/domains/reservation/model"
	reservationRepo "safari/internal/domains/reservation/repository"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/event"
	"safari/shared/failure"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Quotation interface {
	CreateFromReservation(ctx context.Context, reservationID string) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotationsResponse, error)
	Get(ctx context.Context, id string) (dto.QuotationResponse, error)
	Submit(ctx context.Context, id string) (string, error)
}

type serviceImpl struct {
	repo            repository.Quotation
	reservationRepo reservationRepo.Reservation
	otel            otel.Otel
	publisher       event.Publisher
}

func New(repo repository.Quotation, reservationRepo reservationRepo.Reservation, otel otel.Otel, publisher event.Publisher) Quotation {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		otel:            otel,
		publisher:       publisher,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// CreateFromReservation drafts a quotation itemising a reservation and returns its id.
func (s *serviceImpl) CreateFromReservation(ctx context.Context, reservationID string) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFromReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(reservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservationID).Msg("failed to get reservation")

		return id, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return id, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.CustomerName == constant.Empty {
		return id, failure.BadRequestFromString("Please ensure the Customer Name field is filled in the Reservation.") // nolint:wrapcheck
	}

	submitted := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldReservationID, Operator: gDto.FilterOperatorEq, Value: reservationID, Table: model.TableName},
			gDto.Filter{Field: model.FieldDocStatus, Operator: gDto.FilterOperatorEq, Value: constant.DocStatusSubmitted, Table: model.TableName},
		},
	}

	exists, err := s.repo.Exist(ctx, submitted)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for submitted quotations")

		return id, fmt.Errorf("failed to check for submitted quotations: %w", err)
	}

	if exists {
		return id, failure.BadRequestFromString("A quotation has already been created and submitted for this reservation.") // nolint:wrapcheck
	}

	details, err := s.reservationRepo.GetDetails(ctx, reservationID)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservationID).Msg("failed to get reservation details")

		return id, fmt.Errorf("failed to get reservation details: %w", err)
	}

	quotation := model.Quotation{
		ID:            uuid.NewString(),
		Customer:      reservation.CustomerName,
		ReservationID: reservationID,
		CheckInDate:   reservation.CheckInDate,
		CheckOutDate:  reservation.CheckOutDate,
		DocStatus:     constant.DocStatusDraft,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}

	items := model.ItemsFor(quotation.ID, details)
	quotation.GrandTotal = model.GrandTotal(items)

	if err = s.repo.Create(ctx, quotation, items); err != nil {
		log.Error().Err(err).Msg("failed to create quotation")

		return id, fmt.Errorf("failed to create quotation: %w", err)
	}

	event.PublishAsync(ctx, s.publisher, event.TopicQuotationCreated, quotation.ID, model.Created{
		QuotationID:   quotation.ID,
		ReservationID: reservationID,
		Customer:      quotation.Customer,
		GrandTotal:    quotation.GrandTotal,
	})

	return quotation.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotations")

		return res, fmt.Errorf("failed to count quotations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotations")

		return res, fmt.Errorf("failed to get quotations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	quotation, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get quotation items")

		return res, fmt.Errorf("failed to get quotation items: %w", err)
	}

	res.FromModel(quotation, items)

	return res, nil
}

func (s *serviceImpl) Submit(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	quotation, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if quotation.DocStatus != constant.DocStatusDraft {
		return msg, failure.BadRequestFromString("Only draft quotations can be submitted.") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldDocStatus:     constant.DocStatusSubmitted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to submit quotation")

		return msg, fmt.Errorf("failed to submit quotation: %w", err)
	}

	return fmt.Sprintf("Quotation %s has been submitted.", id), nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Quotation, error) {
	quotation, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotation")

		return quotation, fmt.Errorf("failed to get quotation: %w", err)
	}

	if quotation.ID == constant.Empty {
		return quotation, failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	return quotation, nil
}
