package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/internet-kid/notes-api/internal/models"
)

// NoteCache is a read-through cache for single notes and per-user visible
// sets. Cache failures on the read path fall back to the loader; mutation
// paths must call the Invalidate methods synchronously after the write
// commits so no entry ever serves pre-mutation data.
type NoteCache struct {
	store Store
	ttl   time.Duration
}

// NewNoteCache creates a NoteCache with the given TTL applied to every entry.
func NewNoteCache(store Store, ttl time.Duration) *NoteCache {
	return &NoteCache{
		store: store,
		ttl:   ttl,
	}
}

// VisibleSetKey is the cache key of a user's visible-note list.
func VisibleSetKey(userID uint64) string {
	return fmt.Sprintf("notes:user:%d", userID)
}

// NoteKey is the cache key of a single note.
func NoteKey(noteID uint64) string {
	return fmt.Sprintf("notes:note:%d", noteID)
}

// GetVisibleSet returns the cached visible set for userID, calling load and
// storing its result on a miss.
func (c *NoteCache) GetVisibleSet(userID uint64, load func() ([]models.Note, error)) ([]models.Note, error) {
	key := VisibleSetKey(userID)

	if value, ok, err := c.store.Get(key); err == nil && ok {
		var notes []models.Note
		if err := json.Unmarshal(value, &notes); err == nil {
			return notes, nil
		}
		// Unreadable entry: drop it and fall through to the loader.
		_ = c.store.Delete(key)
	}

	notes, err := load()
	if err != nil {
		return nil, err
	}

	if value, err := json.Marshal(notes); err == nil {
		_ = c.store.Set(key, value, c.ttl)
	}

	return notes, nil
}

// GetNote returns the cached note, calling load and storing its result on a
// miss.
func (c *NoteCache) GetNote(noteID uint64, load func() (*models.Note, error)) (*models.Note, error) {
	key := NoteKey(noteID)

	if value, ok, err := c.store.Get(key); err == nil && ok {
		var note models.Note
		if err := json.Unmarshal(value, &note); err == nil {
			return &note, nil
		}
		_ = c.store.Delete(key)
	}

	note, err := load()
	if err != nil {
		return nil, err
	}

	if value, err := json.Marshal(note); err == nil {
		_ = c.store.Set(key, value, c.ttl)
	}

	return note, nil
}

// InvalidateUsers removes the visible-set entries of the given users.
// Removing an absent key is a no-op.
func (c *NoteCache) InvalidateUsers(userIDs ...uint64) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = VisibleSetKey(id)
	}
	return c.store.Delete(keys...)
}

// InvalidateNote removes the single-note entry.
func (c *NoteCache) InvalidateNote(noteID uint64) error {
	return c.store.Delete(NoteKey(noteID))
}
