package dto

import (
	"resort/internal/domains/user/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(user model.User) {
	u.ID = user.ID
	u.Email = user.Email
	u.FullName = user.FullName
	u.Role = user.Role
	u.Active = user.Active
	u.Metadata.FromModel(user.Metadata)

	if user.LastLogin != nil {
		stamp := timezone.Format(*user.LastLogin, constant.DateFormat)
		u.LastLogin = &stamp
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(users []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}

// UpdateUserRequest changes an account. Passwords are only changed by their owner.
type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name" validate:"omitempty,min=1,max=100"`
	Role     *string `db:"role"      json:"role"      validate:"omitempty,oneof=admin staff"`
	Active   *bool   `db:"active"    json:"active"`
}

func (u UpdateUserRequest) Empty() bool {
	return u.FullName == nil && u.Role == nil && u.Active == nil
}

// Demotes reports whether applying the request takes admin rights or access away.
func (u UpdateUserRequest) Demotes() bool {
	return (u.Role != nil && *u.Role != constant.RoleAdmin) || (u.Active != nil && !*u.Active)
}
