package mappers

import (
	"fmt"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/infrastructure/persistence/models"
)

// ReleaseMapper handles the conversion between domain entities and persistence models
type ReleaseMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.ReleaseModel) (*release.Release, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *release.Release) (*models.ReleaseModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.ReleaseModel) ([]*release.Release, error)
}

// ReleaseMapperImpl is the concrete implementation of ReleaseMapper
type ReleaseMapperImpl struct{}

// NewReleaseMapper creates a new release mapper
func NewReleaseMapper() ReleaseMapper {
	return &ReleaseMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ReleaseMapperImpl) ToEntity(model *models.ReleaseModel) (*release.Release, error) {
	if model == nil {
		return nil, nil
	}

	product, err := vo.NewProduct(model.Product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product value object: %w", err)
	}

	channel, err := vo.NewChannel(model.Channel)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel value object: %w", err)
	}

	entity, err := release.ReconstructRelease(
		model.ID,
		product,
		channel,
		model.Version,
		model.ReleaseDate,
		model.Text,
		model.IsPublic,
		model.BugList,
		model.BugSearchURL,
		model.SystemRequirements,
		model.CreatedAt,
		model.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct release entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ReleaseMapperImpl) ToModel(entity *release.Release) (*models.ReleaseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ReleaseModel{
		ID:                 entity.ID(),
		Product:            entity.Product().String(),
		Channel:            entity.Channel().String(),
		Version:            entity.Version(),
		ReleaseDate:        entity.ReleaseDate(),
		Text:               entity.Text(),
		IsPublic:           entity.IsPublic(),
		BugList:            entity.BugList(),
		BugSearchURL:       entity.BugSearchURLOverride(),
		SystemRequirements: entity.SystemRequirements(),
		CreatedAt:          entity.Created(),
		ModifiedAt:         entity.Modified(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ReleaseMapperImpl) ToEntities(releaseModels []*models.ReleaseModel) ([]*release.Release, error) {
	entities := make([]*release.Release, 0, len(releaseModels))
	for _, model := range releaseModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
