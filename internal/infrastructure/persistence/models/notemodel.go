package models

import (
	"time"

	"relnotes/internal/shared/constants"
)

// NoteModel represents the database persistence model for release notes
type NoteModel struct {
	ID               uint      `gorm:"primarykey"`
	Bug              *int      `gorm:""`
	Tag              string    `gorm:"not null;size:255;default:''"`
	Note             string    `gorm:"type:text;not null"`
	IsPublic         bool      `gorm:"not null;default:true"`
	IsKnownIssue     bool      `gorm:"not null;default:false"`
	FixedInReleaseID *uint     `gorm:"index:idx_notes_fixed_in_release_id"`
	SortNum          int       `gorm:"not null;default:0"`
	Image            string    `gorm:"size:500;not null;default:''"`
	CreatedAt        time.Time `gorm:"not null"`
	ModifiedAt       time.Time `gorm:"not null;index:idx_notes_modified_at"`

	Releases       []*ReleaseModel `gorm:"many2many:note_releases"`
	FixedInRelease *ReleaseModel   `gorm:"foreignKey:FixedInReleaseID"`
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string {
	return constants.TableNotes
}
