package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safari/config"
	"safari/infras/mail"
	mailMocks "safari/infras/mail/mocks"
	otelMocks "safari/infras/otel/mocks"
	s3Mocks "safari/infras/s3/mocks"
	"safari/internal/domains/inquiry/mocks"
	"safari/internal/domains/inquiry/model"
	"safari/internal/domains/inquiry/model/dto"
	"safari/internal/domains/inquiry/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	eventMocks "safari/shared/event/mocks"
	"safari/shared/failure"
)

type fixture struct {
	repo   *mocks.MockInquiry
	s3     *s3Mocks.MockS3
	mailer *mailMocks.MockMailer
	svc    service.Inquiry
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "safari"

	f := &fixture{
		repo:   mocks.NewMockInquiry(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
		mailer: mailMocks.NewMockMailer(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.s3, f.mailer, otelMocks.NewOtel(), publisher)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func draftInquiry() model.Inquiry {
	return model.Inquiry{
		ID:            "inq-1",
		CustomerName:  "Amina",
		CustomerEmail: "amina@example.com",
		CheckInDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		KitListURL:    "https://cdn.example.com/kit-lists/kit.pdf",
	}
}

func TestInquiryService_Create(t *testing.T) {
	t.Run("proposed cost sums activities and rooms", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inquiry model.Inquiry, details model.Details) error {
				assert.InDelta(t, 320.0, inquiry.ProposedTotalCost, 0.001)
				assert.Equal(t, constant.DocStatusDraft, inquiry.DocStatus)
				assert.Equal(t, "staff-1", inquiry.CreatedBy)
				assert.Len(t, details.Activities, 2)
				assert.Equal(t, inquiry.ID, details.Rooms[0].InquiryID)

				return nil
			})

		id, err := f.svc.Create(userContext(), dto.InquiryRequest{
			CustomerName:  "Amina",
			CustomerEmail: "amina@example.com",
			CheckInDate:   "2025-07-01",
			CheckOutDate:  "2025-07-04",
			Activities:    []dto.ActivityRequest{{ActivityName: "Kayaking", Cost: 50}, {ActivityName: "Hiking", Cost: 70}},
			Rooms:         []dto.RoomRequest{{RoomNumber: "101", Price: 200}},
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(userContext(), dto.InquiryRequest{
			CustomerName:  "Amina",
			CustomerEmail: "amina@example.com",
			CheckInDate:   "2025-07-04",
			CheckOutDate:  "2025-07-01",
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestInquiryService_Submit(t *testing.T) {
	t.Run("mails the kit list and records the event", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draftInquiry(), nil)
		f.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mail.Message) error {
				assert.Equal(t, []string{"amina@example.com"}, msg.To)
				assert.Equal(t, "Kit List for Your Booking Inquiry inq-1", msg.Subject)
				assert.Contains(t, msg.HTML, "https://cdn.example.com/kit-lists/kit.pdf")

				return nil
			})
		f.repo.EXPECT().
			Submit(gomock.Any(), "inq-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, event model.CalendarEvent) error {
				assert.Equal(t, constant.DocStatusSubmitted, fields[model.FieldDocStatus])
				assert.Equal(t, "Booking: Amina (inq-1)", event.Subject)
				assert.True(t, event.AllDay)

				return nil
			})

		msg, err := f.svc.Submit(userContext(), "inq-1")

		assert.NoError(t, err)
		assert.Equal(t, "Kit list has been emailed to the customer.", msg)
	})

	t.Run("kit list missing", func(t *testing.T) {
		f := newFixture(t)

		inquiry := draftInquiry()
		inquiry.KitListURL = ""
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inquiry, nil)

		_, err := f.svc.Submit(userContext(), "inq-1")

		assert.EqualError(t, err, "Submission incomplete. Please attach a kit list.")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("mail failure leaves the inquiry in draft", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draftInquiry(), nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := f.svc.Submit(userContext(), "inq-1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("already submitted", func(t *testing.T) {
		f := newFixture(t)

		inquiry := draftInquiry()
		inquiry.DocStatus = constant.DocStatusSubmitted
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inquiry, nil)

		_, err := f.svc.Submit(userContext(), "inq-1")

		assert.EqualError(t, err, "Only draft booking inquiries can be submitted.")
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)

		_, err := f.svc.Submit(userContext(), "inq-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestInquiryService_AttachKitList(t *testing.T) {
	f := newFixture(t)

	previous := draftInquiry()
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(previous, nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), "safari", model.KitListDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/kit-lists/new.pdf", nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "https://cdn.example.com/kit-lists/new.pdf", fields[model.FieldKitListURL])

			return nil
		})
	f.s3.EXPECT().GetObjectNameFromURL("safari", previous.KitListURL).Return("kit-lists/kit.pdf")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "safari", model.KitListDirectory, "kit.pdf").Return(nil)

	url, err := f.svc.AttachKitList(userContext(), "inq-1", dto.AttachKitListRequest{
		KitList: &multipart.FileHeader{Filename: "kit.pdf"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/kit-lists/new.pdf", url)
}

func TestInquiryService_Update(t *testing.T) {
	f := newFixture(t)

	inquiry := draftInquiry()
	inquiry.DocStatus = constant.DocStatusSubmitted
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inquiry, nil)

	err := f.svc.Update(userContext(), dto.InquiryRequest{CheckInDate: "2025-07-01", CheckOutDate: "2025-07-02"}, "inq-1")

	assert.EqualError(t, err, "Only draft booking inquiries can be edited.")
}
