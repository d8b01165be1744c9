package dto

import (
	"mime/multipart"

	"resort/internal/domains/accommodation/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	Type          string                `json:"type"            validate:"required,max=50"`
	Description   string                `json:"description"     validate:"omitempty,max=2000"`
	PricePerNight float64               `json:"price_per_night" validate:"gte=0"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
	IsActive      *bool                 `json:"is_active"       validate:"omitempty"`
}

func (c *CreateAccommodationRequest) ToModel(user string, imageURL string) model.Accommodation {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Accommodation{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Type:          c.Type,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		ImageURL:      imageURL,
		IsActive:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAccommodationRequest struct {
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type          string                `db:"type"            json:"type"            validate:"omitempty,max=50"`
	Description   string                `db:"description"     json:"description"     validate:"omitempty,max=2000"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
	IsActive      *bool                 `db:"is_active"       json:"is_active"       validate:"omitempty"`
}

func (u UpdateAccommodationRequest) IsEmpty() bool {
	return u.Name == "" && u.Type == "" && u.Description == "" && u.PricePerNight == nil &&
		u.Capacity == nil && u.Image == nil && u.IsActive == nil
}

type AccommodationResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	ImageURL      string  `json:"image_url"`
	IsActive      bool    `json:"is_active"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(model model.Accommodation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.ImageURL = model.ImageURL
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
