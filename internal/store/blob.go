package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Blob abstracts the single serialized value the record store owns. ok is
// false when no value exists under the key.
type Blob interface {
	Read(ctx context.Context) (data []byte, ok bool, err error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// RedisBlob keeps the blob under one Redis key.
type RedisBlob struct {
	client *redis.Client
	key    string
}

// NewRedisBlob constructs a Redis-backed blob.
func NewRedisBlob(client *redis.Client, key string) *RedisBlob {
	return &RedisBlob{client: client, key: key}
}

func (b *RedisBlob) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBlob) Write(ctx context.Context, data []byte) error {
	return b.client.Set(ctx, b.key, data, 0).Err()
}

func (b *RedisBlob) Delete(ctx context.Context) error {
	return b.client.Del(ctx, b.key).Err()
}

// PostgresBlob keeps the blob in a single row of survey_blobs.
type PostgresBlob struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresBlob constructs a Postgres-backed blob.
func NewPostgresBlob(pool *pgxpool.Pool, key string) *PostgresBlob {
	return &PostgresBlob{pool: pool, key: key}
}

func (b *PostgresBlob) Read(ctx context.Context) ([]byte, bool, error) {
	const query = `SELECT data FROM survey_blobs WHERE storage_key=$1`
	var data []byte
	if err := b.pool.QueryRow(ctx, query, b.key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *PostgresBlob) Write(ctx context.Context, data []byte) error {
	const query = `
        INSERT INTO survey_blobs (storage_key, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (storage_key) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()`
	_, err := b.pool.Exec(ctx, query, b.key, data)
	return err
}

func (b *PostgresBlob) Delete(ctx context.Context) error {
	const query = `DELETE FROM survey_blobs WHERE storage_key=$1`
	_, err := b.pool.Exec(ctx, query, b.key)
	return err
}
