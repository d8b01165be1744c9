package dto

import (
	"resort/internal/domains/amenity/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Icon        string `json:"icon"        validate:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Amenity{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		IsActive:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
	Icon        string `db:"icon"        json:"icon"        validate:"omitempty,max=50"`
	IsActive    *bool  `db:"is_active"   json:"is_active"`
}

func (u UpdateAmenityRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.Icon == "" && u.IsActive == nil
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Icon = model.Icon
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
