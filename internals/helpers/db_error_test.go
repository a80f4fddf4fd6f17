// file: internals/helpers/db_error_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDBError_Pgx(t *testing.T) {
	status, msg := TranslateDBError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.NotEmpty(t, msg)

	status, _ = TranslateDBError(&pgconn.PgError{Code: "23503", Message: "fk"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = TranslateDBError(&pgconn.PgError{Code: "23P01", Message: "exclusion"})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestTranslateDBError_PgxWrapped(t *testing.T) {
	wrapped := fmt.Errorf("migrasi grade_records gagal: %w", &pgconn.PgError{Code: "23505"})
	status, _ := TranslateDBError(wrapped)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestTranslateDBError_Pq(t *testing.T) {
	status, _ := TranslateDBError(&pq.Error{Code: "23505"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = TranslateDBError(&pq.Error{Code: "23503"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestTranslateDBError_Unknown(t *testing.T) {
	status, msg := TranslateDBError(errors.New("boom"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "boom", msg)

	// SQLSTATE yang tidak dipetakan tetap 500
	status, _ = TranslateDBError(&pgconn.PgError{Code: "42P01", Message: "no table"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
