package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// ConstraintKind names the kind of integrity rule the database rejected.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintOther      ConstraintKind = "integrity"
)

// ConstraintViolation is the single error kind for writes rejected by the
// database's integrity rules (duplicate email, missing required column, ...).
type ConstraintViolation struct {
	Table      string
	Constraint string
	Column     string
	Kind       ConstraintKind
	Err        error
}

func (e *ConstraintViolation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s constraint violated on %s", e.Kind, e.Table)
	if e.Constraint != "" {
		fmt.Fprintf(&b, " (%s)", e.Constraint)
	} else if e.Column != "" {
		fmt.Fprintf(&b, " (column %s)", e.Column)
	}
	return b.String()
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// IsConstraintViolation reports whether err is, or wraps, a ConstraintViolation.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

var sqlStateKinds = map[string]ConstraintKind{
	"23505": ConstraintUnique,
	"23502": ConstraintNotNull,
	"23503": ConstraintForeignKey,
	"23514": ConstraintCheck,
}

// translate maps driver and gorm errors onto ErrNotFound and
// ConstraintViolation. Anything else is returned unchanged.
func translate(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		kind, ok := sqlStateKinds[pgErr.Code]
		if !ok {
			kind = ConstraintOther
		}
		if pgErr.TableName != "" {
			table = pgErr.TableName
		}
		return &ConstraintViolation{
			Table:      table,
			Constraint: pgErr.ConstraintName,
			Column:     pgErr.ColumnName,
			Kind:       kind,
			Err:        err,
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintViolation{Table: table, Kind: ConstraintUnique, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintViolation{Table: table, Kind: ConstraintForeignKey, Err: err}
	}
	return err
}
