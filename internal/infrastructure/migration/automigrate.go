package migration

import (
	"fmt"

	"gorm.io/gorm"

	"relnotes/internal/infrastructure/persistence/models"
	"relnotes/internal/shared/logger"
)

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

// Migrate runs GORM AutoMigrate over the given models.
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting auto migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model the schema consists of.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ReleaseModel{},
		&models.NoteModel{},
		&models.UserModel{},
	}
}
