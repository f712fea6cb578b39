package dto

import (
	"safari/internal/domains/user/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8"`
	Level    string  `json:"level"               validate:"omitempty,oneof=admin user"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty"     validate:"omitempty,e164"`
}

// NormalizedEmail is the lookup key used for uniqueness checks and login.
func (r *CreateUserRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.NormalizedEmail(),
		Password: hashedPassword,
		Level:    level,
		FullName: r.FullName,
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.NewMetadata(username, timezone.Now()),
	}
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Level     string     `json:"level"`
	FullName  *string    `json:"full_name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Active    bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Level    *string `db:"level"     json:"level,omitempty"     validate:"omitempty,oneof=admin user"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `db:"phone"     json:"phone,omitempty"     validate:"omitempty,e164"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

// Restricts reports whether the update would remove admin rights or deactivate the account.
func (r UpdateUserRequest) Restricts() bool {
	if r.Level != nil && *r.Level != constant.RoleAdmin {
		return true
	}

	return r.Active != nil && !*r.Active
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
