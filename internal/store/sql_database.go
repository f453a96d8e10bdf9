package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/migrations"
)

// DB wraps the shared *sql.DB with everything the repositories need to stay
// driver-agnostic: a squirrel statement builder configured with the right
// placeholder format and a constraint classifier for the active driver.
type DB struct {
	*sql.DB

	driver      string
	builder     sq.StatementBuilderType
	constraints ConstraintClassifier
	logger      *logger.Logger
}

// Open connects to the database selected by cfg.DSN. A "postgres://" or
// "postgresql://" DSN selects the pgx driver; anything else is treated as a
// SQLite file path.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return newConnectPostgres(ctx, cfg, log)
	}

	return newConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns the squirrel statement builder configured for the active
// driver's placeholder format ($N for PostgreSQL, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
