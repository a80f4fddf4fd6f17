// file: internals/features/school/transfers/snapshot/student_snapshot_test.go
package snapshot

import (
	"testing"
	"time"

	smodel "sekolahku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleStudent() *smodel.SchoolStudentModel {
	birth := time.Date(2012, 3, 14, 0, 0, 0, 0, time.UTC)
	enrolled := time.Date(2019, 7, 15, 0, 0, 0, 0, time.UTC)
	section := uuid.New()
	return &smodel.SchoolStudentModel{
		SchoolStudentID:       uuid.New(),
		SchoolStudentSchoolID: uuid.New(),

		SchoolStudentNISN:       "0051234567",
		SchoolStudentName:       "Aisyah Putri",
		SchoolStudentGender:     strPtr("female"),
		SchoolStudentBirthPlace: strPtr("Jakarta"),
		SchoolStudentBirthDate:  &birth,

		SchoolStudentHealthNotes:      strPtr("alergi kacang"),
		SchoolStudentGuardianName:     strPtr("Budi Santoso"),
		SchoolStudentGuardianRelation: strPtr("ayah"),

		SchoolStudentEnrolledAt: &enrolled,

		// tenant-scoped: harus hilang di sekolah tujuan
		SchoolStudentCode:           strPtr("NIS-0042"),
		SchoolStudentRegistrationNo: strPtr("REG/2019/071"),
		SchoolStudentClassSectionID: &section,

		SchoolStudentIsActive: true,
	}
}

func TestBuildStudentSnapshot_PortableFields(t *testing.T) {
	stu := sampleStudent()
	sn := BuildStudentSnapshot(stu)

	assert.Equal(t, "0051234567", sn.NISN)
	assert.Equal(t, "Aisyah Putri", sn.Name)
	require.NotNil(t, sn.HealthNotes)
	assert.Equal(t, "alergi kacang", *sn.HealthNotes)
	require.NotNil(t, sn.GuardianName)
	assert.Equal(t, "Budi Santoso", *sn.GuardianName)
	assert.Equal(t, stu.SchoolStudentEnrolledAt, sn.EnrolledAt)
	assert.False(t, sn.CapturedAt.IsZero())
}

func TestBuildStudentSnapshot_Immutable(t *testing.T) {
	stu := sampleStudent()
	sn := BuildStudentSnapshot(stu)

	// mutasi record hidup setelah snapshot tidak boleh bocor
	stu.SchoolStudentName = "Nama Lain"
	assert.Equal(t, "Aisyah Putri", sn.Name)
}

func TestNewStudent_ResetsTenantScopedFields(t *testing.T) {
	stu := sampleStudent()
	dest := uuid.New()
	now := time.Now()

	newStu := BuildStudentSnapshot(stu).NewStudent(dest, now)

	assert.Equal(t, dest, newStu.SchoolStudentSchoolID)
	assert.Equal(t, stu.SchoolStudentNISN, newStu.SchoolStudentNISN)
	assert.Equal(t, stu.SchoolStudentName, newStu.SchoolStudentName)
	assert.True(t, newStu.SchoolStudentIsActive)

	// NIS lokal, no. registrasi, dan section milik tenant lama
	assert.Nil(t, newStu.SchoolStudentCode)
	assert.Nil(t, newStu.SchoolStudentRegistrationNo)
	assert.Nil(t, newStu.SchoolStudentClassSectionID)

	// enrolled_at asli dipertahankan
	require.NotNil(t, newStu.SchoolStudentEnrolledAt)
	assert.Equal(t, *stu.SchoolStudentEnrolledAt, *newStu.SchoolStudentEnrolledAt)
}

func TestNewStudent_DefaultsEnrolledAt(t *testing.T) {
	stu := sampleStudent()
	stu.SchoolStudentEnrolledAt = nil
	now := time.Now()

	newStu := BuildStudentSnapshot(stu).NewStudent(uuid.New(), now)

	require.NotNil(t, newStu.SchoolStudentEnrolledAt)
	assert.Equal(t, now, *newStu.SchoolStudentEnrolledAt)
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	sn := BuildStudentSnapshot(sampleStudent())

	raw, err := sn.ToJSON()
	require.NoError(t, err)

	got, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, sn.NISN, got.NISN)
	assert.Equal(t, sn.Name, got.Name)
	require.NotNil(t, got.GuardianRelation)
	assert.Equal(t, "ayah", *got.GuardianRelation)
}
