package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
)

type mockScreenshotStore struct {
	path    string
	width   int
	height  int
	saveErr error
	removed []string
}

func (m *mockScreenshotStore) Save(noteID uint, filename string, data []byte) (string, int, int, error) {
	if m.saveErr != nil {
		return "", 0, 0, m.saveErr
	}
	return m.path, m.width, m.height, nil
}

func (m *mockScreenshotStore) Remove(relPath string) error {
	m.removed = append(m.removed, relPath)
	return nil
}

func noteWithImage(t *testing.T, id uint, imagePath string) *release.Note {
	t.Helper()
	n := testNote(t, id, "toolbar refresh", vo.TagNew, false, true, nil)
	if imagePath != "" {
		n.AttachImage(imagePath)
	}
	return n
}

func TestUploadNoteImageUseCase_StoresImageAndReportsDimensions(t *testing.T) {
	entity := noteWithImage(t, 4, "")
	var updated *release.Note
	noteRepo := &mockNoteRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Note, error) {
			return entity, nil
		},
		UpdateFunc: func(ctx context.Context, n *release.Note) error {
			updated = n
			return nil
		},
		ReleaseIDsForNoteFunc: func(ctx context.Context, noteID uint) ([]uint, error) {
			return []uint{2, 5}, nil
		},
	}
	store := &mockScreenshotStore{path: "screenshot/4/shot.png", width: 640, height: 480}

	uc := NewUploadNoteImageUseCase(noteRepo, store, nil, testLogger())
	result, err := uc.Execute(context.Background(), UploadNoteImageCommand{
		NoteID:   4,
		Filename: "shot.png",
		Data:     []byte("png-bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "screenshot/4/shot.png", updated.ImagePath())
	assert.Equal(t, "screenshot/4/shot.png", result.Image)
	assert.Equal(t, 640, result.ImageWidth)
	assert.Equal(t, 480, result.ImageHeight)
	assert.Equal(t, []uint{2, 5}, result.Releases)
	assert.Empty(t, store.removed)
}

func TestUploadNoteImageUseCase_ReplacesPreviousImage(t *testing.T) {
	entity := noteWithImage(t, 4, "screenshot/4/old.png")
	noteRepo := &mockNoteRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Note, error) {
			return entity, nil
		},
	}
	store := &mockScreenshotStore{path: "screenshot/4/new.png", width: 100, height: 50}

	uc := NewUploadNoteImageUseCase(noteRepo, store, nil, testLogger())
	_, err := uc.Execute(context.Background(), UploadNoteImageCommand{
		NoteID:   4,
		Filename: "new.png",
		Data:     []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"screenshot/4/old.png"}, store.removed)
}

func TestUploadNoteImageUseCase_RejectsInvalidImage(t *testing.T) {
	entity := noteWithImage(t, 4, "")
	noteRepo := &mockNoteRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Note, error) {
			return entity, nil
		},
	}
	store := &mockScreenshotStore{saveErr: assert.AnError}

	uc := NewUploadNoteImageUseCase(noteRepo, store, nil, testLogger())
	_, err := uc.Execute(context.Background(), UploadNoteImageCommand{
		NoteID:   4,
		Filename: "not-an-image.txt",
		Data:     []byte("plain text"),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestUploadNoteImageUseCase_NoteNotFound(t *testing.T) {
	noteRepo := &mockNoteRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Note, error) {
			return nil, nil
		},
	}

	uc := NewUploadNoteImageUseCase(noteRepo, &mockScreenshotStore{}, nil, testLogger())
	_, err := uc.Execute(context.Background(), UploadNoteImageCommand{NoteID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
