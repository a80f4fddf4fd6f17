// file: internals/features/school/transfers/service/transfer_resources_test.go
package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferableResources_Registry(t *testing.T) {
	kinds := make(map[string]TransferableResource, len(TransferableResources))
	for _, r := range TransferableResources {
		_, dup := kinds[r.Kind]
		require.False(t, dup, "kind %s terdaftar dua kali", r.Kind)
		kinds[r.Kind] = r
	}

	for _, want := range []string{
		"grade_records",
		"health_records",
		"counseling_sessions",
		"discipline_records",
		"extracurriculars",
		"class_enrollments",
		"class_progresses",
	} {
		assert.Contains(t, kinds, want)
	}

	// data terikat tenant tidak boleh ikut pindah
	for _, excluded := range []string{"payments", "attendances", "exam_attempts"} {
		assert.NotContains(t, kinds, excluded)
	}
}

func TestTransferableResources_ColumnsFollowTablePrefix(t *testing.T) {
	for _, r := range TransferableResources {
		require.NotEmpty(t, r.Table, r.Kind)
		require.NotEmpty(t, r.StudentColumn, r.Kind)
		require.NotEmpty(t, r.SchoolColumn, r.Kind)

		prefix := strings.TrimSuffix(r.Table, "s")
		// student_class_progresses → student_class_progress
		prefix = strings.TrimSuffix(prefix, "e")
		assert.True(t, strings.HasPrefix(r.StudentColumn, prefix), "%s: %s", r.Kind, r.StudentColumn)
		assert.True(t, strings.HasPrefix(r.SchoolColumn, prefix), "%s: %s", r.Kind, r.SchoolColumn)
		assert.True(t, strings.HasSuffix(r.StudentColumn, "_student_id"), r.Kind)
		assert.True(t, strings.HasSuffix(r.SchoolColumn, "_school_id"), r.Kind)
	}
}

func TestTransferableResources_ScopedKinds(t *testing.T) {
	scoped := map[string]bool{}
	for _, r := range TransferableResources {
		scoped[r.Kind] = r.Scope != nil
	}

	// enrolment & progress bergantung kelas sekolah asal; ekskul difilter aktif
	assert.True(t, scoped["class_enrollments"])
	assert.True(t, scoped["class_progresses"])
	assert.True(t, scoped["extracurriculars"])

	// jenis catatan murni milik siswa: tanpa filter tambahan
	assert.False(t, scoped["grade_records"])
	assert.False(t, scoped["health_records"])
	assert.False(t, scoped["counseling_sessions"])
	assert.False(t, scoped["discipline_records"])
}
