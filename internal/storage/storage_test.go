package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'z'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStoreFailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.FailWrites = assert.AnError

	err := s.Set(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyCustomCars, []byte(`[]`)))
	got, err := s.Get(ctx, KeyCustomCars)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, s.Delete(ctx, KeyCustomCars))
	_, err = s.Get(ctx, KeyCustomCars)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("persisted")))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
