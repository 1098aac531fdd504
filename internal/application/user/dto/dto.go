package dto

import (
	"time"

	"relnotes/internal/domain/user"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUserEntity(entity *user.User) *UserDTO {
	if entity == nil {
		return nil
	}
	return &UserDTO{
		ID:        entity.ID(),
		Username:  entity.Username(),
		IsStaff:   entity.IsStaff(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
