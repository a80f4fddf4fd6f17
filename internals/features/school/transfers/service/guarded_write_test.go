// file: internals/features/school/transfers/service/guarded_write_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRequireAffected(t *testing.T) {
	// mutasi kena satu baris → sah
	require.NoError(t, RequireAffected(&gorm.DB{RowsAffected: 1}, "konflik"))

	// nol baris: status sudah bergeser sebelum mutasi → 409
	err := RequireAffected(&gorm.DB{RowsAffected: 0}, "permintaan sudah diproses")
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "permintaan sudah diproses", fe.Message)

	// error driver diteruskan apa adanya, bukan dibungkus 409
	boom := errors.New("boom")
	err = RequireAffected(&gorm.DB{Error: boom, RowsAffected: 0}, "konflik")
	assert.ErrorIs(t, err, boom)
}
