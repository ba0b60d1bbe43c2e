package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(pgError("23505", "uk_course_name")) {
		t.Error("23505 should be a unique violation")
	}
	if IsUniqueViolation(pgError("23503", "fk_dc_degree")) {
		t.Error("23503 is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("non-pg errors are never unique violations")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(pgError("23503", "fk_dc_degree")) {
		t.Error("23503 should be a foreign-key violation")
	}
	if IsForeignKeyViolation(pgError("23505", "")) {
		t.Error("23505 is not a foreign-key violation")
	}
}

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching fk constraint", err: pgError("23503", "fk_co_degree_course"), constraint: "fk_co_degree_course", want: true},
		{name: "matching unique constraint", err: pgError("23505", "uk_instructor_email"), constraint: "uk_instructor_email", want: true},
		{name: "different constraint", err: pgError("23503", "fk_co_degree_obj"), constraint: "fk_co_degree_course", want: false},
		{name: "other sqlstate", err: pgError("42P01", "fk_co_degree_course"), constraint: "fk_co_degree_course", want: false},
		{name: "wrapped pg error", err: fmt.Errorf("insert: %w", pgError("23503", "fk_eval_co")), constraint: "fk_eval_co", want: true},
		{name: "plain error", err: errors.New("nope"), constraint: "fk_eval_co", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConstraintViolation(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsConstraintViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstraintName(t *testing.T) {
	if got := ConstraintName(pgError("23505", "pk_degree")); got != "pk_degree" {
		t.Errorf("ConstraintName() = %q, want pk_degree", got)
	}
	if got := ConstraintName(errors.New("plain")); got != "" {
		t.Errorf("ConstraintName() on plain error = %q, want empty", got)
	}
}
