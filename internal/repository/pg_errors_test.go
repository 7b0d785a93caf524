// internal/repository/pg_errors_test.go
package repository

import (
	"errors"
	"fmt"
	"testing"

	"mussar_keep/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_translateConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		fkDetail   string
		wantErrIs  error
		wantDetail string
	}{
		{
			name: "unique violation with known constraint name",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "uq_middot_name_hebrew",
			},
			fkDetail:   "invalid middah specified",
			wantErrIs:  model.ErrDuplicate,
			wantDetail: uniqueConstraintDetails["uq_middot_name_hebrew"],
		},
		{
			name: "unique violation on primary key",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "middot_pkey",
			},
			fkDetail:   "invalid middah specified",
			wantErrIs:  model.ErrDuplicate,
			wantDetail: uniqueConstraintDetails["middot_pkey"],
		},
		{
			name: "foreign key violation uses caller detail",
			err: &pgconn.PgError{
				Code:           "23503",
				ConstraintName: "fk_reminder_phrases_middah",
			},
			fkDetail:   "invalid middah specified",
			wantErrIs:  model.ErrInvalidReference,
			wantDetail: "invalid middah specified",
		},
		{
			name: "other integrity violation",
			err: &pgconn.PgError{
				Code: "23502",
			},
			fkDetail:  "invalid middah specified",
			wantErrIs: model.ErrConstraint,
		},
		{
			name:      "non-integrity pg error passes through",
			err:       &pgconn.PgError{Code: "42P01"},
			fkDetail:  "invalid middah specified",
			wantErrIs: nil,
		},
		{
			name:      "plain error passes through",
			err:       fmt.Errorf("connection reset"),
			fkDetail:  "invalid middah specified",
			wantErrIs: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translateConstraintError(tc.err, tc.fkDetail)

			if tc.wantErrIs == nil {
				// Untranslated errors must come back unchanged.
				assert.Equal(t, tc.err, got)
				return
			}

			require.NotEqual(t, tc.err, got)
			assert.True(t, errors.Is(got, tc.wantErrIs), "expected %v to wrap %v", got, tc.wantErrIs)

			var appErr *model.AppError
			require.True(t, errors.As(got, &appErr))
			if tc.wantDetail != "" {
				assert.Equal(t, tc.wantDetail, appErr.Detail)
			}
			assert.NotEmpty(t, appErr.Detail)
		})
	}
}

func Test_translateConstraintError_unknownUniqueConstraint(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_something_new"}
	got := translateConstraintError(err, "invalid reference specified")

	var appErr *model.AppError
	require.True(t, errors.As(got, &appErr))
	assert.True(t, errors.Is(got, model.ErrDuplicate))
	assert.NotEmpty(t, appErr.Detail)
}
