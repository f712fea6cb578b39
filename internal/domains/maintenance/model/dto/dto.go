package dto

import (
	"time"

	"safari/internal/domains/maintenance/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
)

type CreateMaintenanceLogRequest struct {
	RoomNumber      string `json:"room_number"      validate:"required,max=20"`
	MaintenanceDate string `json:"maintenance_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Remarks         string `json:"remarks"          validate:"omitempty,max=500"`
}

// ToModel builds a draft log; the date defaults to now.
func (c *CreateMaintenanceLogRequest) ToModel(user string, now time.Time) (model.MaintenanceLog, error) {
	at := now

	if c.MaintenanceDate != constant.Empty {
		parsed, err := time.Parse(constant.DateFormat, c.MaintenanceDate)
		if err != nil {
			return model.MaintenanceLog{}, err
		}

		at = parsed
	}

	log := model.NewPending(c.RoomNumber, c.Remarks, user, now)
	log.MaintenanceDate = at

	return log, nil
}

type MaintenanceLogResponse struct {
	ID              string `json:"id"`
	RoomNumber      string `json:"room_number"`
	MaintenanceDate string `json:"maintenance_date"`
	Remarks         string `json:"remarks"`
	Status          string `json:"status"`
	DocStatus       int    `json:"docstatus"`
	gDto.Metadata
}

func (m *MaintenanceLogResponse) FromModel(model model.MaintenanceLog) {
	m.ID = model.ID
	m.RoomNumber = model.RoomNumber
	m.MaintenanceDate = model.MaintenanceDate.Format(constant.DateFormat)
	m.Remarks = model.Remarks
	m.Status = model.Status
	m.DocStatus = model.DocStatus
	m.Metadata.FromModel(model.Metadata)
}

type GetMaintenanceLogsResponse struct {
	MaintenanceLogs []MaintenanceLogResponse `json:"maintenance_logs"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (g *GetMaintenanceLogsResponse) FromModels(models []model.MaintenanceLog, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.MaintenanceLogs = make([]MaintenanceLogResponse, len(models))
	for i, mod := range models {
		g.MaintenanceLogs[i].FromModel(mod)
	}
}
