package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsInvalidDataError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nul byte", &pgconn.PgError{Code: characterNotInRepertoire}, true},
		{"value too long", &pgconn.PgError{Code: stringTooLongCode}, true},
		{"check constraint", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: checkViolationCode}), true},
		{"bad enum text", &pgconn.PgError{Code: invalidTextRepresentation}, true},
		{"unique violation", &pgconn.PgError{Code: uniqueViolationCode}, false},
		{"connection failure", errors.New("conn refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := isInvalidDataError(tt.err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
