package localstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MediCare-Portal/pkg/psqlbuilder"
)

const (
	tableName = "local_storage"

	createTableSQL = `CREATE TABLE IF NOT EXISTS local_storage (
	namespace  TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`
)

// PostgresRepository хранит значения в таблице local_storage
type PostgresRepository struct {
	db        DBExecutor
	namespace string
}

// NewPostgresRepository создает репозиторий поверх *sql.DB (драйвер lib/pq)
func NewPostgresRepository(db DBExecutor, namespace string) *PostgresRepository {
	return &PostgresRepository{db: db, namespace: namespace}
}

// EnsureSchema создает таблицу, если её нет
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrWrite, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := r.buildGet(key)
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrRead, err)
	}
	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.buildSet(key, value)
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrWrite, err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, key string) error {
	query, args, err := r.buildRemove(key)
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrWrite, err)
	}
	return nil
}

func (r *PostgresRepository) buildGet(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"namespace": r.namespace, "key": key}).
		ToSql()
}

func (r *PostgresRepository) buildSet(key, value string) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("namespace", "key", "value").
		Values(r.namespace, key, value).
		Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
}

func (r *PostgresRepository) buildRemove(key string) (string, []interface{}, error) {
	return psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"namespace": r.namespace, "key": key}).
		ToSql()
}
