package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the same keyed-collection behavior is expected of every backend
func testStoreContract(t *testing.T, s Store[testItem]) {
	t.Helper()

	_, err := s.GetOne("never-saved")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteOne("never-saved"))

	require.NoError(t, s.SaveOne("a", testItem{Title: "first"}))
	require.NoError(t, s.SaveOne("a", testItem{Title: "second"}))

	got, err := s.GetOne("a")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)

	want := map[string]testItem{
		"a": {Title: "second"},
		"b": {Title: "b", Status: "done"},
	}
	require.NoError(t, s.SaveAll(want))

	items, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, items))

	require.NoError(t, s.DeleteOne("a"))

	items, err = s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]testItem{"b": {Title: "b", Status: "done"}}, items))
}

func TestInMemoryStoreContract(t *testing.T) {
	testStoreContract(t, NewInMemoryStore[testItem]())
}

func TestInMemoryStoreCopiesOnSaveAll(t *testing.T) {
	s := NewInMemoryStore[testItem]()

	items := map[string]testItem{"a": {Title: "a"}}
	require.NoError(t, s.SaveAll(items))

	items["b"] = testItem{Title: "b"}

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]testItem{"a": {Title: "a"}}, got))
}

func TestInMemoryStoreCopiesOnLoadAll(t *testing.T) {
	s := NewInMemoryStore[testItem]()
	require.NoError(t, s.SaveOne("a", testItem{Title: "a"}))

	got, err := s.LoadAll()
	require.NoError(t, err)
	got["b"] = testItem{Title: "b"}

	again, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]testItem{"a": {Title: "a"}}, again))
}

func TestBoltStoreContract(t *testing.T) {
	s, err := NewBoltStore[testItem](filepath.Join(t.TempDir(), "tasks.db"), 0600, "tasks", nil)
	require.NoError(t, err)
	defer s.Close()

	testStoreContract(t, s)
}

func TestBoltStoreBadBucketName(t *testing.T) {
	_, err := NewBoltStore[testItem](filepath.Join(t.TempDir(), "tasks.db"), 0600, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create bucket")
}

func TestBoltStoreReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tasks.db")

	s, err := NewBoltStore[testItem](file, 0600, "tasks", nil)
	require.NoError(t, err)
	require.NoError(t, s.SaveOne("a", testItem{Title: "a", Status: "pending"}))
	require.NoError(t, s.Close())

	s, err = NewBoltStore[testItem](file, 0600, "tasks", nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetOne("a")
	require.NoError(t, err)
	assert.Equal(t, testItem{Title: "a", Status: "pending"}, got)
}

func TestSQLiteStoreContract(t *testing.T) {
	s, err := NewSQLiteStore[testItem](filepath.Join(t.TempDir(), "tasks.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	testStoreContract(t, s)
}

func TestSQLiteStoreReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tasks.sqlite")

	s, err := NewSQLiteStore[testItem](file)
	require.NoError(t, err)
	require.NoError(t, s.SaveOne("a", testItem{Title: "a", Status: "done"}))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore[testItem](file)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetOne("a")
	require.NoError(t, err)
	assert.Equal(t, testItem{Title: "a", Status: "done"}, got)
}
