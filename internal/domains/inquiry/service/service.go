package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inquiry=MockInquiryService

import (
	"context"
	"fmt"
	"html"
	"path"

	"safari/config"
	"safari/infras/mail"
	"safari/infras/otel"
	"safari/infras/s3"
	"safari/internal/domains/inquiry/model"
	"safari/internal/domains/inquiry/model/dto"
	"safari/internal/domains/inquiry/repository"
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

const kitListEmailed = "Kit list has been emailed to the customer."

type Inquiry interface {
	Create(ctx context.Context, req dto.InquiryRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	Update(ctx context.Context, req dto.InquiryRequest, id string) error
	Delete(ctx context.Context, id string) error
	AttachKitList(ctx context.Context, id string, req dto.AttachKitListRequest) (string, error)
	Submit(ctx context.Context, id string) (string, error)
	GetCalendarEvents(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCalendarEventsResponse, error)
}

type serviceImpl struct {
	repo      repository.Inquiry
	cfg       *config.Config
	s3        s3.S3
	mailer    mail.Mailer
	otel      otel.Otel
	publisher event.Publisher
}

func New(
	repo repository.Inquiry,
	cfg *config.Config,
	s3 s3.S3,
	mailer mail.Mailer,
	otel otel.Otel,
	publisher event.Publisher,
) Inquiry {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		s3:        s3,
		mailer:    mailer,
		otel:      otel,
		publisher: publisher,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.InquiryRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	inquiry, details, err := req.ToModel(user)
	if err != nil {
		return id, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Create(ctx, inquiry, details); err != nil {
		log.Error().Err(err).Msg("failed to create booking inquiry")

		return id, fmt.Errorf("failed to create booking inquiry: %w", err)
	}

	return inquiry.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking inquiries")

		return res, fmt.Errorf("failed to count booking inquiries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking inquiries")

		return res, fmt.Errorf("failed to get booking inquiries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiry, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking inquiry details")

		return res, fmt.Errorf("failed to get booking inquiry details: %w", err)
	}

	res.FromModel(inquiry)
	res.WithDetails(details)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.InquiryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	inquiry, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if inquiry.DocStatus != constant.DocStatusDraft {
		return failure.BadRequestFromString("Only draft booking inquiries can be edited.") // nolint:wrapcheck
	}

	details := req.Details(id)

	fields, err := req.Fields(user, details)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Replace(ctx, id, fields, details); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking inquiry")

		return fmt.Errorf("failed to update booking inquiry: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiry, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if inquiry.DocStatus == constant.DocStatusSubmitted {
		return failure.BadRequestFromString("Submitted booking inquiries cannot be deleted.") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking inquiry")

		return fmt.Errorf("failed to delete booking inquiry: %w", err)
	}

	s.removeKitList(ctx, inquiry.KitListURL)

	return nil
}

// AttachKitList uploads the kit list and replaces any previous one. It returns the public URL.
func (s *serviceImpl) AttachKitList(ctx context.Context, id string, req dto.AttachKitListRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachKitList")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	inquiry, err := s.get(ctx, id)
	if err != nil {
		return url, err
	}

	if inquiry.DocStatus == constant.DocStatusCancelled {
		return url, failure.BadRequestFromString("Cancelled booking inquiries cannot take attachments.") // nolint:wrapcheck
	}

	bucket := s.cfg.External.S3.BucketName
	filename := uuid.NewString() + path.Ext(req.KitList.Filename)

	url, err = s.s3.UploadFile(ctx, bucket, model.KitListDirectory, req.KitListFile, req.KitList, filename)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to upload kit list")

		return constant.Empty, fmt.Errorf("failed to upload kit list: %w", err)
	}

	fields := map[string]any{
		model.FieldKitListURL:    url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		_ = s.s3.DeleteFile(ctx, bucket, model.KitListDirectory, filename)

		log.Error().Err(err).Str("id", id).Msg("failed to store kit list url")

		return constant.Empty, fmt.Errorf("failed to store kit list url: %w", err)
	}

	s.removeKitList(ctx, inquiry.KitListURL)

	return url, nil
}

// Submit mails the kit list to the customer, then records the calendar event and submits the inquiry.
func (s *serviceImpl) Submit(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	inquiry, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if inquiry.DocStatus != constant.DocStatusDraft {
		return msg, failure.BadRequestFromString("Only draft booking inquiries can be submitted.") // nolint:wrapcheck
	}

	if inquiry.KitListURL == constant.Empty {
		return msg, failure.BadRequestFromString("Submission incomplete. Please attach a kit list.") // nolint:wrapcheck
	}

	if err = s.mailer.Send(ctx, kitListMail(inquiry)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to send kit list email")

		return msg, failure.InternalError(fmt.Errorf("An error occurred while sending the kit list email. Error: %w", err)) // nolint:wrapcheck,stylecheck
	}

	now := timezone.Now()
	calendarEvent := model.NewCalendarEvent(inquiry, gModel.NewMetadata(user, now))

	fields := map[string]any{
		model.FieldDocStatus:     constant.DocStatusSubmitted,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Submit(ctx, id, fields, calendarEvent); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to submit booking inquiry")

		return msg, fmt.Errorf("failed to submit booking inquiry: %w", err)
	}

	event.PublishAsync(ctx, s.publisher, event.TopicInquirySubmitted, id, model.Submitted{
		InquiryID:     id,
		EventID:       calendarEvent.ID,
		CustomerEmail: inquiry.CustomerEmail,
		KitListURL:    inquiry.KitListURL,
	})

	return kitListEmailed, nil
}

func (s *serviceImpl) GetCalendarEvents(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCalendarEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCalendarEvents")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.CountEvents(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count calendar events")

		return res, fmt.Errorf("failed to count calendar events: %w", err)
	}

	events, err := s.repo.GetEvents(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar events")

		return res, fmt.Errorf("failed to get calendar events: %w", err)
	}

	res.FromModels(events, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Inquiry, error) {
	inquiry, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking inquiry")

		return inquiry, fmt.Errorf("failed to get booking inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return inquiry, failure.NotFound("booking inquiry not found") // nolint:wrapcheck
	}

	return inquiry, nil
}

func (s *serviceImpl) removeKitList(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	bucket := s.cfg.External.S3.BucketName
	if objectName := s.s3.GetObjectNameFromURL(bucket, url); objectName != constant.Empty {
		_ = s.s3.DeleteFile(ctx, bucket, model.KitListDirectory, path.Base(objectName))
	}
}

func kitListMail(inquiry model.Inquiry) mail.Message {
	name := html.EscapeString(inquiry.CustomerName)
	link := html.EscapeString(inquiry.KitListURL)

	return mail.Message{
		To:      []string{inquiry.CustomerEmail},
		Subject: fmt.Sprintf("Kit List for Your Booking Inquiry %s", inquiry.ID),
		HTML: fmt.Sprintf(
			"<p>Dear %s,</p><p>Thank you for your booking inquiry. Please find the kit list for your reference "+
				"<a href=\"%s\">here</a>.</p><p>Best regards,</p>",
			name, link,
		),
	}
}
