package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "captures.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_RunsMigrations(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Health())
}

func TestInsertAndList_NewestFirst(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Insert(OperationDecode, "req-1", "res-1", true)
	require.NoError(t, err)
	second, err := s.Insert(OperationEncode, "req-2", "res-2", false)
	require.NoError(t, err)

	captures, err := s.List(10, 0)
	require.NoError(t, err)
	require.Len(t, captures, 2)

	assert.Equal(t, second.ID, captures[0].ID)
	assert.Equal(t, OperationEncode, captures[0].Operation)
	assert.False(t, captures[0].OK)

	assert.Equal(t, first.ID, captures[1].ID)
	assert.Equal(t, OperationDecode, captures[1].Operation)
	assert.True(t, captures[1].OK)
}

func TestList_LimitClampedToDefault(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 3; i++ {
		_, err := s.Insert(OperationCompare, "a", "b", true)
		require.NoError(t, err)
	}

	captures, err := s.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, captures, 3)
}

func TestList_Pagination(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.Insert(OperationDecode, "a", "b", true)
		require.NoError(t, err)
	}

	page, err := s.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}
