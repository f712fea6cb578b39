package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safari/internal/domains/quotation/model"
	reservationModel "safari/internal/domains/reservation/model"
)

func TestItemsFor(t *testing.T) {
	details := reservationModel.Details{
		Activities: []reservationModel.ActivityRow{{ActivityName: "Kayaking", Cost: 40}},
		Rooms:      []reservationModel.RoomRow{{RoomNumber: "R-101", Price: 200}},
		Tents:      []reservationModel.TentRow{{TentType: "Dome", Qty: 3, Price: 50}},
		Transports: []reservationModel.TransportRow{{Price: 30}},
		Services:   []reservationModel.ServiceRow{{ServiceName: "Laundry", Price: 10}},
	}

	items := model.ItemsFor("q-1", details)

	assert.Len(t, items, 5)

	assert.Equal(t, model.ItemActivity, items[0].ItemCode)
	assert.Equal(t, 1, items[0].Qty)

	assert.Equal(t, model.ItemAccommodation, items[1].ItemCode)
	assert.Equal(t, "Room", items[1].ItemName)
	assert.Equal(t, "Room Booking: N/A", items[1].Description)

	assert.Equal(t, "Tent: Dome", items[2].Description)
	assert.Equal(t, 3, items[2].Qty)
	assert.InDelta(t, 150.0, items[2].Amount, 0.001)

	assert.Equal(t, model.ItemTransport, items[3].ItemCode)
	assert.Equal(t, "Transport", items[3].ItemName)

	assert.Equal(t, model.ItemService, items[4].ItemCode)
	assert.Equal(t, 5, items[4].Idx)
	assert.Equal(t, "q-1", items[4].QuotationID)

	assert.InDelta(t, 430.0, model.GrandTotal(items), 0.001)
}
