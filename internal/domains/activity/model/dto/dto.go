package dto

import (
	"safari/internal/domains/activity/model"
	"safari/shared"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"
)

type CreateActivityRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Category    string  `json:"category"    validate:"omitempty,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Cost        float64 `json:"cost"        validate:"omitempty,min=0"`
}

func (c *CreateActivityRequest) ToModel(user string) model.Activity {
	return model.Activity{
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Cost:        c.Cost,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateActivityRequest struct {
	Category    string   `db:"category"    json:"category"    validate:"omitempty,max=50"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=500"`
	Cost        *float64 `db:"cost"        json:"cost"        validate:"omitempty,min=0"`
}

type ActivityResponse struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	gDto.Metadata
}

func (a *ActivityResponse) FromModel(model model.Activity) {
	a.Name = model.Name
	a.Category = model.Category
	a.Description = model.Description
	a.Cost = model.Cost
	a.Metadata.FromModel(model.Metadata)
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (g *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		g.Activities[i].FromModel(mod)
	}
}
