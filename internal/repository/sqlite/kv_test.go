package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKVRepo_GetMissing(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))

	value, found, err := repo.Get("vocab_app_state")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestKVRepo_SetThenGet(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))

	require.NoError(t, repo.Set("learn_session_index:1", "4"))

	value, found, err := repo.Get("learn_session_index:1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "4", value)
}

func TestKVRepo_SetOverwrites(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))

	require.NoError(t, repo.Set("vocab_app_state", `{"vocabList":[]}`))
	require.NoError(t, repo.Set("vocab_app_state", `{"vocabList":[{"id":"1","word":"a","meaning":"b"}]}`))

	value, found, err := repo.Get("vocab_app_state")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"vocabList":[{"id":"1","word":"a","meaning":"b"}]}`, value)
}

func TestKVRepo_KeysAreIndependent(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))

	require.NoError(t, repo.Set("learn_session_index:1", "1"))
	require.NoError(t, repo.Set("learn_session_index:2", "2"))

	v1, _, _ := repo.Get("learn_session_index:1")
	v2, _, _ := repo.Get("learn_session_index:2")
	assert.Equal(t, "1", v1)
	assert.Equal(t, "2", v2)
}

func TestInitDB_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, InitDB(db))
}
