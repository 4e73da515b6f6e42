package dto

import (
	"resort/internal/domains/policy/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/ordering"
)

type PolicyPayload struct {
	Kind        string `json:"kind"        validate:"required,oneof=include exclude"`
	Description string `json:"description" validate:"required,max=500"`
}

type SyncPoliciesRequest = gDto.SyncRequest[PolicyPayload]

// ToModel builds the row of a planned insert for the owner.
func ToModel(item ordering.DisplayItem[PolicyPayload], ownerType, ownerID, user string) model.Policy {
	policy := model.Policy{
		ID:          item.ID,
		Kind:        item.Payload.Kind,
		Description: item.Payload.Description,
		SortOrder:   item.Order,
		Metadata:    gModel.NewMetadata(user),
	}

	switch ownerType {
	case constant.OwnerTypeHotel:
		policy.HotelID = &ownerID
	case constant.OwnerTypeActivity:
		policy.ActivityID = &ownerID
	}

	return policy
}

// PolicyCodec reads the payload back from a stored policy.
type PolicyCodec struct{}

func (PolicyCodec) ID(row model.Policy) string { return row.ID }

func (PolicyCodec) Payload(row model.Policy) PolicyPayload {
	return PolicyPayload{Kind: row.Kind, Description: row.Description}
}

func (PolicyCodec) Columns(payload PolicyPayload) map[string]any {
	return map[string]any{
		model.FieldKind:        payload.Kind,
		model.FieldDescription: payload.Description,
	}
}

type UpdatePolicyRequest struct {
	Kind        string `db:"kind"        json:"kind"        validate:"omitempty,oneof=include exclude"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
}

type PolicyListResponse struct {
	Items   []ordering.DisplayItem[PolicyPayload] `json:"items"`
	Include []string                              `json:"include"`
	Exclude []string                              `json:"exclude"`
}

func (r *PolicyListResponse) FromModels(models []model.Policy) error {
	ids := make([]string, len(models))
	payloads := make([]PolicyPayload, len(models))

	r.Include = []string{}
	r.Exclude = []string{}

	for i, mod := range models {
		ids[i] = mod.ID
		payloads[i] = PolicyCodec{}.Payload(mod)

		if mod.Kind == model.KindInclude {
			r.Include = append(r.Include, mod.Description)
		} else {
			r.Exclude = append(r.Exclude, mod.Description)
		}
	}

	items, err := ordering.FromEntities(ids, payloads)
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.Items = items

	return nil
}
