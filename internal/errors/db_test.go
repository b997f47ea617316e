package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantCode: ErrCodeTimeout},
		{name: "canceled", err: fmt.Errorf("query: %w", context.Canceled), wantCode: ErrCodeCanceled},
		{name: "no rows", err: pgx.ErrNoRows, wantCode: ErrCodeNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "value"}, wantCode: ErrCodeValidation},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, wantCode: ErrCodeInternal},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, wantCode: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("MapDBError() code = %v, want %v", got, tt.wantCode)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("MapDBError() lost cause %v", tt.err)
			}
		})
	}
}

func TestMapDBError_FieldFromColumn(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "profile_id"})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Field != "profile_id" {
		t.Fatalf("expected field profile_id, got %#v", err)
	}
}

func TestMapDBError_PassThrough(t *testing.T) {
	orig := errors.New("boom")
	if err := MapDBError(orig); err != orig {
		t.Errorf("MapDBError() = %v, want original", err)
	}
}
