package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore is the durable backing over the relational schema in
// scripts/schema.sql. Money columns are DECIMAL(10,2) and are selected as
// text so prices round-trip as two-decimal strings.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) Store {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}
