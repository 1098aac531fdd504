package mappers

import (
	"fmt"

	"relnotes/internal/domain/user"
	"relnotes/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.IsStaff,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		PasswordHash: entity.PasswordHash(),
		IsStaff:      entity.IsStaff(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}
