package dto

import (
	"resort/internal/domains/roomplan/model"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"

	"github.com/google/uuid"
)

type CreateRoomPlanRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price"       validate:"gt=0"`
	Breakfast   bool    `json:"breakfast"`
	Refundable  bool    `json:"refundable"`
	Active      *bool   `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomPlanRequest) ToModel(roomID, user string) model.RoomPlan {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomPlan{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Breakfast:   c.Breakfast,
		Refundable:  c.Refundable,
		Active:      active,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateRoomPlanRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Breakfast   *bool    `db:"breakfast"   json:"breakfast"   validate:"omitempty"`
	Refundable  *bool    `db:"refundable"  json:"refundable"  validate:"omitempty"`
	Active      *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomPlanResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Breakfast   bool    `json:"breakfast"`
	Refundable  bool    `json:"refundable"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomPlanResponse) FromModel(model model.RoomPlan) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Breakfast = model.Breakfast
	r.Refundable = model.Refundable
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomPlansResponse = gDto.Page[RoomPlanResponse]

func FromModels(models []model.RoomPlan, totalData, limit int) GetRoomPlansResponse {
	items := make([]RoomPlanResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}
