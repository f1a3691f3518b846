package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/internet-kid/notes-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCache_GetVisibleSet_ReadThrough(t *testing.T) {
	store := NewMemoryStore()
	noteCache := NewNoteCache(store, 5*time.Minute)

	loads := 0
	load := func() ([]models.Note, error) {
		loads++
		return []models.Note{{ID: 1, UserID: 7, Title: "first"}}, nil
	}

	notes, err := noteCache.GetVisibleSet(7, load)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 1, loads)

	// Second read is served from the cache without touching the loader.
	notes, err = noteCache.GetVisibleSet(7, load)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, 1, loads)
}

func TestNoteCache_GetVisibleSet_LoaderError(t *testing.T) {
	noteCache := NewNoteCache(NewMemoryStore(), 5*time.Minute)

	_, err := noteCache.GetVisibleSet(7, func() ([]models.Note, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)
}

func TestNoteCache_GetNote_ReadThrough(t *testing.T) {
	store := NewMemoryStore()
	noteCache := NewNoteCache(store, 5*time.Minute)

	loads := 0
	load := func() (*models.Note, error) {
		loads++
		return &models.Note{ID: 3, UserID: 7, Title: "cached note", Tags: models.TagList{"a", "b"}}, nil
	}

	note, err := noteCache.GetNote(3, load)
	require.NoError(t, err)
	assert.Equal(t, "cached note", note.Title)

	note, err = noteCache.GetNote(3, load)
	require.NoError(t, err)
	assert.Equal(t, models.TagList{"a", "b"}, note.Tags)
	assert.Equal(t, 1, loads)
}

func TestNoteCache_Invalidation(t *testing.T) {
	store := NewMemoryStore()
	noteCache := NewNoteCache(store, 5*time.Minute)

	_, err := noteCache.GetVisibleSet(7, func() ([]models.Note, error) {
		return []models.Note{{ID: 1, Title: "stale"}}, nil
	})
	require.NoError(t, err)
	_, err = noteCache.GetNote(1, func() (*models.Note, error) {
		return &models.Note{ID: 1, Title: "stale"}, nil
	})
	require.NoError(t, err)

	require.NoError(t, noteCache.InvalidateUsers(7))
	require.NoError(t, noteCache.InvalidateNote(1))

	notes, err := noteCache.GetVisibleSet(7, func() ([]models.Note, error) {
		return []models.Note{{ID: 1, Title: "fresh"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", notes[0].Title)

	note, err := noteCache.GetNote(1, func() (*models.Note, error) {
		return &models.Note{ID: 1, Title: "fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", note.Title)
}

func TestNoteCache_InvalidateAbsentKeysIsNoop(t *testing.T) {
	noteCache := NewNoteCache(NewMemoryStore(), 5*time.Minute)

	assert.NoError(t, noteCache.InvalidateUsers(99, 100))
	assert.NoError(t, noteCache.InvalidateNote(99))
	assert.NoError(t, noteCache.InvalidateUsers())
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()

	current := time.Now()
	store.SetClock(func() time.Time { return current })

	require.NoError(t, store.Set("notes:user:7", []byte("[]"), 5*time.Minute))

	_, ok, err := store.Get("notes:user:7")
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(6 * time.Minute)

	_, ok, err = store.Get("notes:user:7")
	require.NoError(t, err)
	assert.False(t, ok)
}
