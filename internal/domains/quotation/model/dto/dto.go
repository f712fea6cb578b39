package dto

import (
	"safari/internal/domains/quotation/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
)

type ItemResponse struct {
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description,omitempty"`
	Qty         int     `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type QuotationResponse struct {
	ID            string         `json:"id"`
	Customer      string         `json:"customer"`
	ReservationID string         `json:"reservation_id"`
	CheckInDate   string         `json:"check_in_date"`
	CheckOutDate  string         `json:"check_out_date"`
	DocStatus     int            `json:"docstatus"`
	GrandTotal    float64        `json:"grand_total"`
	Items         []ItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *QuotationResponse) FromModel(model model.Quotation, items []model.Item) {
	r.ID = model.ID
	r.Customer = model.Customer
	r.ReservationID = model.ReservationID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.DocStatus = model.DocStatus
	r.GrandTotal = model.GrandTotal
	r.Metadata.FromModel(model.Metadata)

	for _, item := range items {
		r.Items = append(r.Items, ItemResponse{
			ItemCode:    item.ItemCode,
			ItemName:    item.ItemName,
			Description: item.Description,
			Qty:         item.Qty,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}
}

type GetQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetQuotationsResponse) FromModels(models []model.Quotation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Quotations = make([]QuotationResponse, len(models))
	for i, mod := range models {
		r.Quotations[i].FromModel(mod, nil)
	}
}
