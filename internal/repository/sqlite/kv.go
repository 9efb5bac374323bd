package sqlite

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// KVRepo implements repository.KeyValueRepository on a local SQLite file
type KVRepo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewKVRepo creates a new key/value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// Get returns the stored value for key
func (r *KVRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.sb.
		Select("value").
		From("kv_store").
		Where(sq.Eq{"name": key}).
		RunWith(r.db).
		QueryRow().
		Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key
func (r *KVRepo) Set(key, value string) error {
	_, err := r.sb.
		Insert("kv_store").
		Columns("name", "value").
		Values(key, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		RunWith(r.db).
		Exec()
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
