package dto

import (
	"time"

	"relnotes/internal/domain/release"
)

// ReleaseDTO is the application-facing representation of a release
type ReleaseDTO struct {
	ID                 uint      `json:"id"`
	Product            string    `json:"product"`
	Channel            string    `json:"channel"`
	Version            string    `json:"version"`
	MajorVersion       string    `json:"major_version"`
	ReleaseDate        time.Time `json:"release_date"`
	Text               string    `json:"text"`
	IsPublic           bool      `json:"is_public"`
	BugList            string    `json:"bug_list"`
	BugSearchURL       string    `json:"bug_search_url"`
	SystemRequirements string    `json:"system_requirements"`
	PagePath           string    `json:"page_path,omitempty"`
	Created            time.Time `json:"created"`
	Modified           time.Time `json:"modified"`
}

// NoteDTO is the application-facing representation of a note
type NoteDTO struct {
	ID               uint      `json:"id"`
	Bug              *int      `json:"bug"`
	Note             string    `json:"note"`
	NoteHTML         string    `json:"note_html,omitempty"`
	Tag              string    `json:"tag"`
	SortNum          int       `json:"sort_num"`
	IsKnownIssue     bool      `json:"is_known_issue"`
	IsPublic         bool      `json:"is_public"`
	FixedInReleaseID *uint     `json:"fixed_in_release"`
	Image            string    `json:"image,omitempty"`
	ImageWidth       int       `json:"image_width,omitempty"`
	ImageHeight      int       `json:"image_height,omitempty"`
	Releases         []uint    `json:"releases,omitempty"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
}

// ReleaseNotesDTO carries a release together with its projected notes
type ReleaseNotesDTO struct {
	Release     *ReleaseDTO `json:"release"`
	NewFeatures []*NoteDTO  `json:"new_features"`
	KnownIssues []*NoteDTO  `json:"known_issues"`
}

// FromReleaseEntity converts a domain release to its DTO
func FromReleaseEntity(entity *release.Release) *ReleaseDTO {
	if entity == nil {
		return nil
	}
	return &ReleaseDTO{
		ID:                 entity.ID(),
		Product:            entity.Product().String(),
		Channel:            entity.Channel().String(),
		Version:            entity.Version(),
		MajorVersion:       entity.MajorVersion(),
		ReleaseDate:        entity.ReleaseDate(),
		Text:               entity.Text(),
		IsPublic:           entity.IsPublic(),
		BugList:            entity.BugList(),
		BugSearchURL:       entity.BugSearchURL(),
		SystemRequirements: entity.SystemRequirements(),
		PagePath:           entity.PagePath(),
		Created:            entity.Created(),
		Modified:           entity.Modified(),
	}
}

// FromReleaseEntities converts a slice of domain releases
func FromReleaseEntities(entities []*release.Release) []*ReleaseDTO {
	dtos := make([]*ReleaseDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, FromReleaseEntity(entity))
	}
	return dtos
}

// FromNoteEntity converts a domain note to its DTO
func FromNoteEntity(entity *release.Note) *NoteDTO {
	if entity == nil {
		return nil
	}
	return &NoteDTO{
		ID:               entity.ID(),
		Bug:              entity.Bug(),
		Note:             entity.Text(),
		Tag:              entity.Tag().String(),
		SortNum:          entity.SortNum(),
		IsKnownIssue:     entity.IsKnownIssue(),
		IsPublic:         entity.IsPublic(),
		FixedInReleaseID: entity.FixedInReleaseID(),
		Image:            entity.ImagePath(),
		Created:          entity.Created(),
		Modified:         entity.Modified(),
	}
}

// FromNoteEntities converts a slice of domain notes
func FromNoteEntities(entities []*release.Note) []*NoteDTO {
	dtos := make([]*NoteDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, FromNoteEntity(entity))
	}
	return dtos
}
