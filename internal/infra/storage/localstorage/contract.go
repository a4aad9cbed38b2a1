package localstorage

import (
	"context"
	"database/sql"
)

// Repository durable key-value storage with browser local storage semantics
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// DBExecutor подмножество *sql.DB, которое нужно PostgresRepository
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
