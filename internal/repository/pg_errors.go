// internal/repository/pg_errors.go
package repository

import (
	"errors"
	"strings"

	"mussar_keep/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of interest. Everything else in class 23 falls through to the
// generic constraint-violation kind.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

// uniqueConstraintDetails maps every named unique constraint in the schema to
// the client-facing message naming the duplicated fields.
var uniqueConstraintDetails = map[string]string{
	"middot_pkey":                     "Middah already exists",
	"uq_middot_name_hebrew":           "Middah with this Hebrew name already exists",
	"uq_middot_name_english":          "Middah with this English name already exists",
	"uq_reminder_phrases_middah_text": "Reminder phrase already exists for middah",
	"uq_daily_texts_sefaria_url":      "Daily text with this sefaria_url already exists",
	"uq_kabbalot_middah_description":  "Kabbalah already exists for middah",
	"uq_weekly_texts_sefaria_url":     "Weekly text with this sefaria_url already exists",
	"uq_users_email":                  "User with this email already exists",
}

// translateConstraintError is the single place that knows about the database
// engine's error surface. It classifies Postgres integrity errors by SQLSTATE
// and constraint name; fkDetail is the message used for foreign-key failures,
// since the meaning of the broken reference depends on the calling repository.
// Non-integrity errors pass through unchanged.
func translateConstraintError(err error, fkDetail string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgUniqueViolation:
		detail, ok := uniqueConstraintDetails[pgErr.ConstraintName]
		if !ok {
			detail = "Duplicate value violates a unique constraint"
		}
		return model.NewAppError("DUPLICATE_ENTITY", detail, model.ErrDuplicate)
	case pgErr.Code == pgForeignKeyViolation:
		return model.NewAppError("INVALID_REFERENCE", fkDetail, model.ErrInvalidReference)
	case strings.HasPrefix(pgErr.Code, pgIntegrityClass):
		return model.NewAppError("CONSTRAINT_VIOLATION", "Database constraint violated", model.ErrConstraint)
	default:
		return err
	}
}
