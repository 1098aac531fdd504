package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"relnotes/internal/domain/release"
	"relnotes/internal/infrastructure/persistence/mappers"
	"relnotes/internal/infrastructure/persistence/models"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/logger"
)

// NoteRepository implements the note repository interface backed by GORM
type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
	logger logger.Interface
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB, log logger.Interface) release.NoteRepository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewNoteMapper(),
		logger: log,
	}
}

// Create creates a new note and links it to the given releases
func (r *NoteRepository) Create(ctx context.Context, entity *release.Note, releaseIDs []uint) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map note entity to model", "error", err)
		return fmt.Errorf("failed to map note entity: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		return insertNoteLinks(tx, model.ID, releaseIDs)
	})
	if err != nil {
		r.logger.Errorw("failed to create note in database", "error", err)
		return err
	}

	if entity.ID() == 0 {
		if err := entity.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set note ID: %w", err)
		}
	}

	r.logger.Infow("note created successfully",
		"id", model.ID,
		"releases", len(releaseIDs))
	return nil
}

// Update updates an existing note
func (r *NoteRepository) Update(ctx context.Context, entity *release.Note) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map note entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update note", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

// UpdatePreservingModified upserts the note exactly as mapped and replaces
// its release links. Sync writes go through here so remote modified
// timestamps survive.
func (r *NoteRepository) UpdatePreservingModified(ctx context.Context, entity *release.Note, releaseIDs []uint) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map note entity: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return fmt.Errorf("failed to upsert note: %w", err)
		}

		if err := tx.Exec("DELETE FROM "+constants.TableNoteReleases+" WHERE note_model_id = ?", model.ID).Error; err != nil {
			return fmt.Errorf("failed to clear note links: %w", err)
		}

		return insertNoteLinks(tx, model.ID, releaseIDs)
	})
}

// Delete removes a note and its release links
func (r *NoteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+constants.TableNoteReleases+" WHERE note_model_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink releases: %w", err)
		}

		result := tx.Delete(&models.NoteModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete note: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID retrieves a note by ID
func (r *NoteRepository) GetByID(ctx context.Context, id uint) (*release.Note, error) {
	var model models.NoteModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get note by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves notes with filtering and pagination
func (r *NoteRepository) List(ctx context.Context, filter release.NoteFilter) ([]*release.Note, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.NoteModel{})
	query = applyNoteFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query = query.Order("created_at DESC").Order("id ASC")

	if filter.PageSize > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PageSize
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var noteModels []*models.NoteModel
	if err := query.Find(&noteModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}

	entities, err := r.mapper.ToEntities(noteModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func applyNoteFilter(query *gorm.DB, filter release.NoteFilter) *gorm.DB {
	if filter.Tag != nil {
		query = query.Where("tag = ?", filter.Tag.String())
	}
	if filter.IsKnownIssue != nil {
		query = query.Where("is_known_issue = ?", *filter.IsKnownIssue)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.ReleaseID != nil {
		query = query.Where(
			"id IN (SELECT note_model_id FROM "+constants.TableNoteReleases+" WHERE release_model_id = ?)",
			*filter.ReleaseID)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.ModifiedBefore != nil {
		query = query.Where("modified_at < ?", *filter.ModifiedBefore)
	}
	if filter.ModifiedAfter != nil {
		query = query.Where("modified_at > ?", *filter.ModifiedAfter)
	}
	return query
}

// NotesForRelease retrieves all notes linked to a release in display order:
// sort_num descending, ties by id ascending
func (r *NoteRepository) NotesForRelease(ctx context.Context, releaseID uint) ([]*release.Note, error) {
	var noteModels []*models.NoteModel

	if err := r.db.WithContext(ctx).Model(&models.NoteModel{}).
		Joins("JOIN "+constants.TableNoteReleases+" nr ON nr.note_model_id = "+constants.TableNotes+".id").
		Where("nr.release_model_id = ?", releaseID).
		Order(constants.TableNotes + ".sort_num DESC").
		Order(constants.TableNotes + ".id ASC").
		Find(&noteModels).Error; err != nil {
		r.logger.Errorw("failed to load notes for release", "release_id", releaseID, "error", err)
		return nil, fmt.Errorf("failed to load notes for release: %w", err)
	}

	return r.mapper.ToEntities(noteModels)
}

// ReleaseIDsForNote retrieves the IDs of the releases a note is linked to
func (r *NoteRepository) ReleaseIDsForNote(ctx context.Context, noteID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Table(constants.TableNoteReleases).
		Where("note_model_id = ?", noteID).
		Order("release_model_id ASC").
		Pluck("release_model_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load release links: %w", err)
	}
	return ids, nil
}

// Link associates a note with a release
func (r *NoteRepository) Link(ctx context.Context, noteID, releaseID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO "+constants.TableNoteReleases+" (note_model_id, release_model_id) VALUES (?, ?)",
		noteID, releaseID).Error
	if err != nil {
		return fmt.Errorf("failed to link note %d to release %d: %w", noteID, releaseID, err)
	}
	return nil
}

// Unlink removes the association between a note and a release
func (r *NoteRepository) Unlink(ctx context.Context, noteID, releaseID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"DELETE FROM "+constants.TableNoteReleases+" WHERE note_model_id = ? AND release_model_id = ?",
		noteID, releaseID).Error
	if err != nil {
		return fmt.Errorf("failed to unlink note %d from release %d: %w", noteID, releaseID, err)
	}
	return nil
}

// LatestModified returns the most recent modified timestamp across all
// notes, or nil when none exist
func (r *NoteRepository) LatestModified(ctx context.Context) (*time.Time, error) {
	var latest sql.NullTime
	row := r.db.WithContext(ctx).Model(&models.NoteModel{}).
		Select("MAX(modified_at)").Row()
	if err := row.Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to query latest modified: %w", err)
	}
	if !latest.Valid {
		return nil, nil
	}
	return &latest.Time, nil
}

func insertNoteLinks(tx *gorm.DB, noteID uint, releaseIDs []uint) error {
	for _, releaseID := range releaseIDs {
		if err := tx.Exec(
			"INSERT INTO "+constants.TableNoteReleases+" (note_model_id, release_model_id) VALUES (?, ?)",
			noteID, releaseID).Error; err != nil {
			return fmt.Errorf("failed to link note %d to release %d: %w", noteID, releaseID, err)
		}
	}
	return nil
}
