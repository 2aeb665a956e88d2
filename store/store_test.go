package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/store"
	"github.com/katalvlaran/tilewave/tile"
)

func sample(seed int64) *store.Snapshot {
	cat := tile.DefaultCatalog()
	return &store.Snapshot{
		Seed:     seed,
		Topology: "bipyramid-3",
		Patterns: []tile.Pattern{cat.At(0), cat.At(13), cat.At(26), cat.At(1), cat.At(2), cat.At(3)},
		Attempts: 1,
	}
}

func openMem(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openMem(t)

	snap := sample(7)
	id, err := s.Put(snap)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, snap.ID)
	assert.False(t, snap.CreatedAt.IsZero())

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.Seed, got.Seed)
	assert.Equal(t, snap.Topology, got.Topology)
	assert.Equal(t, snap.Patterns, got.Patterns)
	assert.True(t, snap.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, snap.LabelCounts(), got.LabelCounts())
}

func TestGet_NotFound(t *testing.T) {
	s := openMem(t)
	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(uuid.New()), store.ErrNotFound)
}

func TestList_OldestFirst(t *testing.T) {
	s := openMem(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 2; i >= 0; i-- {
		snap := sample(int64(i))
		snap.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		id, err := s.Put(snap)
		require.NoError(t, err)
		ids = append([]uuid.UUID{id}, ids...)
	}

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, snap := range all {
		assert.Equal(t, ids[i], snap.ID)
		assert.Equal(t, int64(i), snap.Seed)
	}

	require.NoError(t, s.Delete(ids[1]))
	all, err = s.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOpen_Persistent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	cfg := store.DefaultConfig()
	cfg.Path = dir
	cfg.SyncWrites = false
	cfg.GCInterval = 10 * time.Millisecond

	s, err := store.Open(cfg)
	require.NoError(t, err)
	id, err := s.Put(sample(3))
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, s.Close())

	s, err = store.Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Seed)
}

func TestOpen_NoPath(t *testing.T) {
	_, err := store.Open(store.DefaultConfig())
	assert.ErrorIs(t, err, store.ErrNoPath)
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "run.gob.zst")
	snap := sample(11)
	snap.ID = uuid.New()
	snap.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, store.WriteFile(path, snap))
	got, err := store.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = store.ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
