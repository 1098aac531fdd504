package mappers

import (
	"fmt"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/infrastructure/persistence/models"
)

// NoteMapper handles the conversion between domain entities and persistence models
type NoteMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.NoteModel) (*release.Note, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *release.Note) (*models.NoteModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.NoteModel) ([]*release.Note, error)
}

// NoteMapperImpl is the concrete implementation of NoteMapper
type NoteMapperImpl struct{}

// NewNoteMapper creates a new note mapper
func NewNoteMapper() NoteMapper {
	return &NoteMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *NoteMapperImpl) ToEntity(model *models.NoteModel) (*release.Note, error) {
	if model == nil {
		return nil, nil
	}

	tag, err := vo.NewTag(model.Tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag value object: %w", err)
	}

	entity, err := release.ReconstructNote(
		model.ID,
		model.Bug,
		model.Note,
		tag,
		model.SortNum,
		model.IsKnownIssue,
		model.IsPublic,
		model.FixedInReleaseID,
		model.Image,
		model.CreatedAt,
		model.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct note entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *NoteMapperImpl) ToModel(entity *release.Note) (*models.NoteModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NoteModel{
		ID:               entity.ID(),
		Bug:              entity.Bug(),
		Tag:              entity.Tag().String(),
		Note:             entity.Text(),
		IsPublic:         entity.IsPublic(),
		IsKnownIssue:     entity.IsKnownIssue(),
		FixedInReleaseID: entity.FixedInReleaseID(),
		SortNum:          entity.SortNum(),
		Image:            entity.ImagePath(),
		CreatedAt:        entity.Created(),
		ModifiedAt:       entity.Modified(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *NoteMapperImpl) ToEntities(noteModels []*models.NoteModel) ([]*release.Note, error) {
	entities := make([]*release.Note, 0, len(noteModels))
	for _, model := range noteModels {
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
