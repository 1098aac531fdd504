package models

import (
	"time"

	"relnotes/internal/shared/constants"
)

// ReleaseModel represents the database persistence model for releases
// This is the anti-corruption layer between domain and database
type ReleaseModel struct {
	ID                 uint      `gorm:"primarykey"`
	Product            string    `gorm:"not null;size:255;uniqueIndex:uq_releases_product_version;index:idx_releases_product"`
	Channel            string    `gorm:"not null;size:255"`
	Version            string    `gorm:"not null;size:255;uniqueIndex:uq_releases_product_version;index:idx_releases_version"`
	ReleaseDate        time.Time `gorm:"not null"`
	Text               string    `gorm:"type:text;not null"`
	IsPublic           bool      `gorm:"not null;default:false"`
	BugList            string    `gorm:"type:text;not null"`
	BugSearchURL       string    `gorm:"size:2000;not null"`
	SystemRequirements string    `gorm:"type:text;not null"`
	CreatedAt          time.Time `gorm:"not null"`
	ModifiedAt         time.Time `gorm:"not null;index:idx_releases_modified_at"`

	Notes []*NoteModel `gorm:"many2many:note_releases"`
}

// TableName specifies the table name for GORM
func (ReleaseModel) TableName() string {
	return constants.TableReleases
}
