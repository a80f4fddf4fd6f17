// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// halaman terakhir
	p = BuildPaginationFromPage(45, 3, 20)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// kosong tetap 1 halaman
	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	// input aneh dinormalisasi
	p = BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestLenOf(t *testing.T) {
	assert.Equal(t, 0, lenOf(nil))
	assert.Equal(t, 3, lenOf([]int{1, 2, 3}))
	assert.Equal(t, 2, lenOf(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, 0, lenOf(42))
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
