package model

import (
	"fmt"
	"safari/shared/model"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "maintenance_logs"
	EntityName = "maintenance_log"

	FieldID              = "id"
	FieldRoomNumber      = "room_number"
	FieldMaintenanceDate = "maintenance_date"
	FieldRemarks         = "remarks"
	FieldStatus          = "status"
	FieldDocStatus       = "docstatus"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

type MaintenanceLog struct {
	ID              string    `db:"id"`
	RoomNumber      string    `db:"room_number"`
	MaintenanceDate time.Time `db:"maintenance_date"`
	Remarks         string    `db:"remarks"`
	Status          string    `db:"status"`
	DocStatus       int       `db:"docstatus"`
	model.Metadata
}

// NewPending opens a draft log for a room that needs attention.
func NewPending(roomNumber, remarks, user string, at time.Time) MaintenanceLog {
	return MaintenanceLog{
		ID:              uuid.NewString(),
		RoomNumber:      roomNumber,
		MaintenanceDate: at,
		Remarks:         remarks,
		Status:          StatusPending,
		Metadata:        model.NewMetadata(user, at),
	}
}

// AfterCheckoutRemarks is the note left on logs opened by a checkout.
func AfterCheckoutRemarks(roomNumber string) string {
	return fmt.Sprintf("Room %s is now under maintenance after checkout.", roomNumber)
}
