package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	syncapp "relnotes/internal/application/sync"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/logger"
)

// RunSyncResult summarizes one sync pass.
type RunSyncResult struct {
	ReleasesSynced int
	NotesSynced    int
	Skipped        int
}

// RunSyncUseCase pulls releases and notes from a remote instance and
// restores them locally. The cursor for each resource is the latest local
// modified timestamp, so only newer remote records travel. Restores keep
// the remote timestamps; a record whose timestamps cannot be parsed is
// skipped, never written half-formed.
type RunSyncUseCase struct {
	remote      syncapp.RemoteReader
	releaseRepo release.ReleaseRepository
	noteRepo    release.NoteRepository
	logger      logger.Interface
}

func NewRunSyncUseCase(
	remote syncapp.RemoteReader,
	releaseRepo release.ReleaseRepository,
	noteRepo release.NoteRepository,
	logger logger.Interface,
) *RunSyncUseCase {
	return &RunSyncUseCase{
		remote:      remote,
		releaseRepo: releaseRepo,
		noteRepo:    noteRepo,
		logger:      logger,
	}
}

func (uc *RunSyncUseCase) Execute(ctx context.Context) (*RunSyncResult, error) {
	result := &RunSyncResult{}

	if err := uc.syncReleases(ctx, result); err != nil {
		return nil, err
	}
	if err := uc.syncNotes(ctx, result); err != nil {
		return nil, err
	}

	uc.logger.Infow("sync completed",
		"releases", result.ReleasesSynced,
		"notes", result.NotesSynced,
		"skipped", result.Skipped)
	return result, nil
}

func (uc *RunSyncUseCase) syncReleases(ctx context.Context, result *RunSyncResult) error {
	cursor, err := uc.releaseRepo.LatestModified(ctx)
	if err != nil {
		return err
	}

	remoteReleases, err := uc.remote.FetchReleases(ctx, cursor)
	if err != nil {
		return err
	}

	for _, remote := range remoteReleases {
		entity, err := restoreRelease(remote)
		if err != nil {
			uc.logger.Errorw("skipping unrestorable release",
				"remote_id", remote.ID, "error", err)
			result.Skipped++
			continue
		}

		if err := uc.releaseRepo.UpdatePreservingModified(ctx, entity); err != nil {
			uc.logger.Errorw("failed to restore release", "remote_id", remote.ID, "error", err)
			result.Skipped++
			continue
		}
		result.ReleasesSynced++
	}

	return nil
}

func (uc *RunSyncUseCase) syncNotes(ctx context.Context, result *RunSyncResult) error {
	cursor, err := uc.noteRepo.LatestModified(ctx)
	if err != nil {
		return err
	}

	remoteNotes, err := uc.remote.FetchNotes(ctx, cursor)
	if err != nil {
		return err
	}

	for _, remote := range remoteNotes {
		entity, releaseIDs, err := uc.restoreNote(ctx, remote)
		if err != nil {
			uc.logger.Errorw("skipping unrestorable note",
				"remote_id", remote.ID, "error", err)
			result.Skipped++
			continue
		}

		if err := uc.noteRepo.UpdatePreservingModified(ctx, entity, releaseIDs); err != nil {
			uc.logger.Errorw("failed to restore note", "remote_id", remote.ID, "error", err)
			result.Skipped++
			continue
		}
		result.NotesSynced++
	}

	return nil
}

func restoreRelease(remote syncapp.RemoteRelease) (*release.Release, error) {
	product, err := vo.NewProduct(remote.Product)
	if err != nil {
		return nil, err
	}
	channel, err := vo.NewChannel(remote.Channel)
	if err != nil {
		return nil, err
	}

	releaseDate, err := parseRemoteTime(remote.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("release_date: %w", err)
	}
	created, err := parseRemoteTime(remote.Created)
	if err != nil {
		return nil, fmt.Errorf("created: %w", err)
	}
	modified, err := parseRemoteTime(remote.Modified)
	if err != nil {
		return nil, fmt.Errorf("modified: %w", err)
	}

	return release.ReconstructRelease(
		remote.ID,
		product,
		channel,
		remote.Version,
		releaseDate,
		remote.Text,
		remote.IsPublic,
		remote.BugList,
		remote.BugSearchURL,
		remote.SystemRequirements,
		created,
		modified,
	)
}

func (uc *RunSyncUseCase) restoreNote(ctx context.Context, remote syncapp.RemoteNote) (*release.Note, []uint, error) {
	tag, err := vo.NewTag(remote.Tag)
	if err != nil {
		return nil, nil, err
	}
	created, err := parseRemoteTime(remote.Created)
	if err != nil {
		return nil, nil, fmt.Errorf("created: %w", err)
	}
	modified, err := parseRemoteTime(remote.Modified)
	if err != nil {
		return nil, nil, fmt.Errorf("modified: %w", err)
	}

	var fixedInID *uint
	if remote.FixedInRelease != nil {
		id, err := trailingPK(*remote.FixedInRelease)
		if err != nil {
			return nil, nil, fmt.Errorf("fixed_in_release: %w", err)
		}
		if err := uc.ensureRelease(ctx, id); err != nil {
			return nil, nil, err
		}
		fixedInID = &id
	}

	releaseIDs := make([]uint, 0, len(remote.Releases))
	for _, rawURL := range remote.Releases {
		id, err := trailingPK(rawURL)
		if err != nil {
			return nil, nil, fmt.Errorf("releases: %w", err)
		}
		if err := uc.ensureRelease(ctx, id); err != nil {
			return nil, nil, err
		}
		releaseIDs = append(releaseIDs, id)
	}

	entity, err := release.ReconstructNote(
		remote.ID,
		remote.Bug,
		remote.Note,
		tag,
		remote.SortNum,
		remote.IsKnownIssue,
		remote.IsPublic,
		fixedInID,
		remote.Image,
		created,
		modified,
	)
	if err != nil {
		return nil, nil, err
	}

	return entity, releaseIDs, nil
}

// ensureRelease resolves a referenced release, pulling it from the remote
// when it has not arrived through the regular cursor window.
func (uc *RunSyncUseCase) ensureRelease(ctx context.Context, id uint) error {
	existing, err := uc.releaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	remote, err := uc.remote.FetchRelease(ctx, id)
	if err != nil {
		return err
	}

	entity, err := restoreRelease(*remote)
	if err != nil {
		return err
	}
	return uc.releaseRepo.UpdatePreservingModified(ctx, entity)
}

// trailingPK extracts the numeric primary key from a resource URL such as
// "https://remote.example/rna/releases/42/".
func trailingPK(rawURL string) (uint, error) {
	trimmed := strings.TrimRight(rawURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return 0, fmt.Errorf("no primary key in %q", rawURL)
	}
	id, err := strconv.ParseUint(trimmed[idx+1:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid primary key in %q: %w", rawURL, err)
	}
	return uint(id), nil
}

var remoteTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseRemoteTime(value string) (time.Time, error) {
	for _, layout := range remoteTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", value)
}
