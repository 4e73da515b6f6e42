package dto

import (
	"resort/internal/domains/itinerary/model"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/ordering"
)

type StepPayload struct {
	StartTime   string `json:"start_time"  validate:"omitempty,datetime=15:04"`
	Title       string `json:"title"       validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type SyncItineraryRequest = gDto.SyncRequest[StepPayload]

func ToModel(item ordering.DisplayItem[StepPayload], activityID, user string) model.Itinerary {
	return model.Itinerary{
		ID:          item.ID,
		ActivityID:  activityID,
		StartTime:   item.Payload.StartTime,
		Title:       item.Payload.Title,
		Description: item.Payload.Description,
		SortOrder:   item.Order,
		Metadata:    gModel.NewMetadata(user),
	}
}

// StepCodec reads the payload back from a stored itinerary step.
type StepCodec struct{}

func (StepCodec) ID(row model.Itinerary) string { return row.ID }

func (StepCodec) Payload(row model.Itinerary) StepPayload {
	return StepPayload{StartTime: row.StartTime, Title: row.Title, Description: row.Description}
}

func (StepCodec) Columns(payload StepPayload) map[string]any {
	return map[string]any{
		model.FieldStartTime:   payload.StartTime,
		model.FieldTitle:       payload.Title,
		model.FieldDescription: payload.Description,
	}
}

type UpdateStepRequest struct {
	StartTime   string `db:"start_time"  json:"start_time"  validate:"omitempty,datetime=15:04"`
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
}

type ItineraryResponse struct {
	Items []ordering.DisplayItem[StepPayload] `json:"items"`
}

func (r *ItineraryResponse) FromModels(models []model.Itinerary) error {
	ids := make([]string, len(models))
	payloads := make([]StepPayload, len(models))

	for i, mod := range models {
		ids[i] = mod.ID
		payloads[i] = StepCodec{}.Payload(mod)
	}

	items, err := ordering.FromEntities(ids, payloads)
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.Items = items

	return nil
}
