package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintKind is the result type returned by
// [ConstraintClassifier.Classify]. It names the class of integrity
// constraint a failed write violated, so repositories can translate driver
// errors into domain sentinel errors without driver-specific code.
type ConstraintKind int

const (
	// ConstraintNone indicates the error is not a recognised constraint
	// violation (or is nil).
	ConstraintNone ConstraintKind = iota

	// ConstraintUnique indicates a unique-constraint violation, e.g. a
	// duplicate user email.
	ConstraintUnique

	// ConstraintForeignKey indicates a foreign-key violation, e.g. a food
	// log referencing a user that does not exist.
	ConstraintForeignKey
)

// ConstraintClassifier maps driver-level errors to [ConstraintKind] values.
// There is one implementation per supported database driver.
type ConstraintClassifier interface {
	Classify(err error) ConstraintKind
}

// PostgresConstraintClassifier implements [ConstraintClassifier] for
// PostgreSQL. It inspects the pgconn error code returned by the pgx driver.
type PostgresConstraintClassifier struct{}

// NewPostgresConstraintClassifier constructs a [PostgresConstraintClassifier].
func NewPostgresConstraintClassifier() *PostgresConstraintClassifier {
	return &PostgresConstraintClassifier{}
}

// Classify implements [ConstraintClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and maps the Class 23 integrity-constraint codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresConstraintClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ConstraintNone
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ConstraintUnique
	case pgerrcode.ForeignKeyViolation:
		return ConstraintForeignKey
	}

	return ConstraintNone
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for SQLite,
// inspecting the extended result code of the mattn/go-sqlite3 driver.
type SQLiteConstraintClassifier struct{}

// NewSQLiteConstraintClassifier constructs a [SQLiteConstraintClassifier].
func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

// Classify implements [ConstraintClassifier].
func (c *SQLiteConstraintClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ConstraintNone
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		return ConstraintUnique
	case sqlite3.ErrConstraintForeignKey:
		return ConstraintForeignKey
	}

	return ConstraintNone
}
