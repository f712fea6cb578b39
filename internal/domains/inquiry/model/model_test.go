package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safari/internal/domains/inquiry/model"
	gModel "safari/shared/model"
)

func TestDetails_ProposedTotalCost(t *testing.T) {
	details := model.Details{
		Activities: []model.ActivityRow{{Cost: 50}, {Cost: 25.5}},
		Rooms:      []model.RoomRow{{Price: 120}},
	}

	assert.InDelta(t, 195.5, details.ProposedTotalCost(), 0.001)
	assert.Zero(t, model.Details{}.ProposedTotalCost())
}

func TestNewCalendarEvent(t *testing.T) {
	inquiry := model.Inquiry{
		ID:           "inq-1",
		CustomerName: "Amina",
		CheckInDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
	}

	event := model.NewCalendarEvent(inquiry, gModel.Metadata{})

	assert.Equal(t, "Booking: Amina (inq-1)", event.Subject)
	assert.Equal(t, "Booking for Amina from 2025-07-01 to 2025-07-04. Booking Inquiry: inq-1", event.Description)
	assert.Equal(t, model.EventTypePublic, event.EventType)
	assert.True(t, event.AllDay)
	assert.Equal(t, "inq-1", event.BookingInquiryID)
	assert.NotEmpty(t, event.ID)
}
