package dto

import (
	"cowork/internal/domains/room/model"
	"cowork/shared"
	gDto "cowork/shared/dto"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Site              string          `json:"site"`
	Capacity          int             `json:"capacity"`
	CreditCostPerHour decimal.Decimal `json:"credit_cost_per_hour" swaggertype:"string" example:"2.00"`
	IsAvailable       bool            `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Site = model.Site
	r.Capacity = model.Capacity
	r.CreditCostPerHour = model.CreditCostPerHour
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
