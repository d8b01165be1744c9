package dto

import (
	"strings"

	"resort/internal/domains/packages/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreatePackageRequest struct {
	Code         string   `json:"code"          validate:"required,alphanum,min=3,max=20"`
	Name         string   `json:"name"          validate:"required,max=100"`
	Description  string   `json:"description"   validate:"omitempty,max=2000"`
	Price        float64  `json:"price"         validate:"gte=0"`
	DurationDays int      `json:"duration_days" validate:"required,min=1"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,min=1"`
	Includes     []string `json:"includes"      validate:"omitempty,dive,max=200"`
	IsActive     *bool    `json:"is_active"     validate:"omitempty"`
	IsFeatured   bool     `json:"is_featured"   validate:"omitempty"`
}

func (c *CreatePackageRequest) ToModel(user string) model.Package {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Package{
		ID:           uuid.NewString(),
		Code:         strings.ToUpper(c.Code),
		Name:         c.Name,
		Description:  c.Description,
		Price:        c.Price,
		DurationDays: c.DurationDays,
		MaxOccupancy: c.MaxOccupancy,
		Includes:     pq.StringArray(c.Includes),
		IsActive:     active,
		IsFeatured:   c.IsFeatured,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	Name         string         `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Description  string         `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	Price        *float64       `db:"price"         json:"price"         validate:"omitempty,gte=0"`
	DurationDays *int           `db:"duration_days" json:"duration_days" validate:"omitempty,min=1"`
	MaxOccupancy *int           `db:"max_occupancy" json:"max_occupancy" validate:"omitempty,min=1"`
	Includes     pq.StringArray `db:"includes"      json:"includes"      validate:"omitempty,dive,max=200"`
	IsActive     *bool          `db:"is_active"     json:"is_active"     validate:"omitempty"`
	IsFeatured   *bool          `db:"is_featured"   json:"is_featured"   validate:"omitempty"`
}

func (u UpdatePackageRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.Price == nil && u.DurationDays == nil &&
		u.MaxOccupancy == nil && u.Includes == nil && u.IsActive == nil && u.IsFeatured == nil
}

type PackageResponse struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"duration_days"`
	MaxOccupancy int      `json:"max_occupancy"`
	Includes     []string `json:"includes"`
	IsActive     bool     `json:"is_active"`
	IsFeatured   bool     `json:"is_featured"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.DurationDays = model.DurationDays
	r.MaxOccupancy = model.MaxOccupancy
	r.Includes = []string(model.Includes)
	r.IsActive = model.IsActive
	r.IsFeatured = model.IsFeatured
	r.Metadata.FromModel(model.Metadata)

	if r.Includes == nil {
		r.Includes = []string{}
	}
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}
