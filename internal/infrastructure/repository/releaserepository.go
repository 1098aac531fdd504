package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/infrastructure/persistence/mappers"
	"relnotes/internal/infrastructure/persistence/models"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/logger"
)

// ReleaseRepository implements the release repository interface backed by GORM
type ReleaseRepository struct {
	db     *gorm.DB
	mapper mappers.ReleaseMapper
	logger logger.Interface
}

// NewReleaseRepository creates a new release repository
func NewReleaseRepository(db *gorm.DB, log logger.Interface) release.ReleaseRepository {
	return &ReleaseRepository{
		db:     db,
		mapper: mappers.NewReleaseMapper(),
		logger: log,
	}
}

// Create creates a new release
func (r *ReleaseRepository) Create(ctx context.Context, entity *release.Release) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map release entity to model", "error", err)
		return fmt.Errorf("failed to map release entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create release in database", "error", err)
		return fmt.Errorf("failed to create release: %w", err)
	}

	if entity.ID() == 0 {
		if err := entity.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set release ID: %w", err)
		}
	}

	r.logger.Infow("release created successfully",
		"id", model.ID,
		"product", model.Product,
		"version", model.Version)
	return nil
}

// Update updates an existing release
func (r *ReleaseRepository) Update(ctx context.Context, entity *release.Release) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map release entity: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update release", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update release: %w", result.Error)
	}

	return nil
}

// UpdatePreservingModified upserts the release exactly as mapped, without
// letting the storage layer touch timestamps. The sync client relies on
// remote modified values surviving the write.
func (r *ReleaseRepository) UpdatePreservingModified(ctx context.Context, entity *release.Release) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map release entity: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert release", "id", model.ID, "error", err)
		return fmt.Errorf("failed to upsert release: %w", err)
	}

	return nil
}

// Delete removes a release and its note links
func (r *ReleaseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+constants.TableNoteReleases+" WHERE release_model_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink notes: %w", err)
		}

		result := tx.Delete(&models.ReleaseModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete release: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID retrieves a release by ID
func (r *ReleaseRepository) GetByID(ctx context.Context, id uint) (*release.Release, error) {
	var model models.ReleaseModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get release by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get release: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByProductVersion retrieves a release by its natural key
func (r *ReleaseRepository) GetByProductVersion(ctx context.Context, product vo.Product, version string) (*release.Release, error) {
	var model models.ReleaseModel

	if err := r.db.WithContext(ctx).
		Where("product = ? AND version = ?", product.String(), version).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get release by product and version",
			"product", product.String(), "version", version, "error", err)
		return nil, fmt.Errorf("failed to get release: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves releases with filtering and pagination
func (r *ReleaseRepository) List(ctx context.Context, filter release.ReleaseFilter) ([]*release.Release, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ReleaseModel{})
	query = applyReleaseFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count releases: %w", err)
	}

	if filter.OrderBy != "" {
		direction := "ASC"
		if filter.OrderDesc {
			direction = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + direction)
	} else {
		query = query.Order("product ASC").Order("version DESC").Order("channel ASC")
	}

	if filter.PageSize > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PageSize
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var releaseModels []*models.ReleaseModel
	if err := query.Find(&releaseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list releases: %w", err)
	}

	entities, err := r.mapper.ToEntities(releaseModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func applyReleaseFilter(query *gorm.DB, filter release.ReleaseFilter) *gorm.DB {
	if filter.Product != nil {
		query = query.Where("product = ?", filter.Product.String())
	}
	if filter.Channel != nil {
		query = query.Where("channel = ?", filter.Channel.String())
	}
	if filter.Version != nil {
		query = query.Where("version = ?", *filter.Version)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
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

// EquivalenceCandidates retrieves same-major releases on a channel,
// version descending
func (r *ReleaseRepository) EquivalenceCandidates(ctx context.Context, product vo.Product, channel vo.Channel, versionPrefix string, publicOnly bool) ([]*release.Release, error) {
	query := r.db.WithContext(ctx).Model(&models.ReleaseModel{}).
		Where("product = ? AND channel = ?", product.String(), channel.String()).
		Where("version LIKE ?", versionPrefix+"%")

	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var releaseModels []*models.ReleaseModel
	if err := query.Order("version DESC").Find(&releaseModels).Error; err != nil {
		r.logger.Errorw("failed to query equivalence candidates",
			"product", product.String(), "channel", channel.String(), "error", err)
		return nil, fmt.Errorf("failed to query equivalence candidates: %w", err)
	}

	return r.mapper.ToEntities(releaseModels)
}

// CountVersionSuffix counts releases of a product whose version ends with
// the given suffix
func (r *ReleaseRepository) CountVersionSuffix(ctx context.Context, product vo.Product, versionSuffix string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ReleaseModel{}).
		Where("product = ?", product.String()).
		Where("version LIKE ?", "%"+versionSuffix).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count releases by version suffix: %w", err)
	}
	return count, nil
}

// Copy duplicates a release under a new version inside one transaction.
// The copy starts unpublished; every note link of the source is recreated
// and the linked notes get fresh modified timestamps.
func (r *ReleaseRepository) Copy(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error) {
	var copied models.ReleaseModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source models.ReleaseModel
		if err := tx.First(&source, sourceID).Error; err != nil {
			return fmt.Errorf("failed to load source release: %w", err)
		}

		var noteIDs []uint
		if err := tx.Table(constants.TableNoteReleases).
			Where("release_model_id = ?", sourceID).
			Pluck("note_model_id", &noteIDs).Error; err != nil {
			return fmt.Errorf("failed to load source note links: %w", err)
		}

		now := time.Now().UTC()
		copied = models.ReleaseModel{
			Product:            source.Product,
			Channel:            source.Channel,
			Version:            newVersion,
			ReleaseDate:        source.ReleaseDate,
			Text:               source.Text,
			IsPublic:           false,
			BugList:            source.BugList,
			BugSearchURL:       source.BugSearchURL,
			SystemRequirements: source.SystemRequirements,
			CreatedAt:          now,
			ModifiedAt:         now,
		}
		if err := tx.Create(&copied).Error; err != nil {
			return fmt.Errorf("failed to create release copy: %w", err)
		}

		for _, noteID := range noteIDs {
			link := map[string]interface{}{
				"note_model_id":    noteID,
				"release_model_id": copied.ID,
			}
			if err := tx.Table(constants.TableNoteReleases).Create(link).Error; err != nil {
				return fmt.Errorf("failed to link note %d to copy: %w", noteID, err)
			}
		}

		if len(noteIDs) > 0 {
			if err := tx.Model(&models.NoteModel{}).
				Where("id IN ?", noteIDs).
				Update("modified_at", now).Error; err != nil {
				return fmt.Errorf("failed to refresh note timestamps: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		r.logger.Errorw("release copy failed", "source_id", sourceID, "error", err)
		return nil, err
	}

	r.logger.Infow("release copied successfully",
		"source_id", sourceID,
		"copy_id", copied.ID,
		"version", newVersion)

	return r.mapper.ToEntity(&copied)
}

// LatestModified returns the most recent modified timestamp across all
// releases, or nil when none exist
func (r *ReleaseRepository) LatestModified(ctx context.Context) (*time.Time, error) {
	var latest sql.NullTime
	row := r.db.WithContext(ctx).Model(&models.ReleaseModel{}).
		Select("MAX(modified_at)").Row()
	if err := row.Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to query latest modified: %w", err)
	}
	if !latest.Valid {
		return nil, nil
	}
	return &latest.Time, nil
}
