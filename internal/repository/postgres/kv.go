package postgres

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_store"

// KVRepo implements repository.KeyValueRepository
type KVRepo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewKVRepo creates a new key/value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the stored value for key
func (r *KVRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.sb.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"name": key}).
		RunWith(r.db).
		QueryRow().
		Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set upserts the value for key
func (r *KVRepo) Set(key, value string) error {
	_, err := r.sb.
		Insert(kvTable).
		Columns("name", "value").
		Values(key, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		RunWith(r.db).
		Exec()
	return err
}
