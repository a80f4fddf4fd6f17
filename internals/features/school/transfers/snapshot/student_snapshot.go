// file: internals/features/school/transfers/snapshot/student_snapshot.go
package snapshot

import (
	"encoding/json"
	"time"

	smodel "sekolahku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   StudentSnapshot — nilai immutable, BUKAN record hidup.

   Diambil dua kali: saat request dibuat (membekukan niat)
   dan persis sebelum migrasi jalan (hindari data basi).
   Field tenant-scoped (NIS lokal, no. registrasi, section)
   sengaja tidak ikut: itu di-reset di sekolah tujuan.
====================================================== */

type StudentSnapshot struct {
	// Identitas
	NISN       string     `json:"nisn"`
	Name       string     `json:"name"`
	Gender     *string    `json:"gender,omitempty"`
	BirthPlace *string    `json:"birth_place,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`

	// Kontak
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`

	// Kesehatan & wali
	HealthNotes      *string `json:"health_notes,omitempty"`
	GuardianName     *string `json:"guardian_name,omitempty"`
	GuardianPhone    *string `json:"guardian_phone,omitempty"`
	GuardianRelation *string `json:"guardian_relation,omitempty"`
	FatherName       *string `json:"father_name,omitempty"`
	MotherName       *string `json:"mother_name,omitempty"`

	// Sekolah asal
	PreviousSchoolName *string `json:"previous_school_name,omitempty"`
	PreviousSchoolNPSN *string `json:"previous_school_npsn,omitempty"`

	// Metadata enrolment
	EnrolledAt *time.Time `json:"enrolled_at,omitempty"`

	CapturedAt time.Time `json:"captured_at"`
}

// BuildStudentSnapshot memotret semua atribut portable siswa.
// Murni, tanpa side effect.
func BuildStudentSnapshot(s *smodel.SchoolStudentModel) StudentSnapshot {
	return StudentSnapshot{
		NISN:       s.SchoolStudentNISN,
		Name:       s.SchoolStudentName,
		Gender:     s.SchoolStudentGender,
		BirthPlace: s.SchoolStudentBirthPlace,
		BirthDate:  s.SchoolStudentBirthDate,

		Address: s.SchoolStudentAddress,
		Phone:   s.SchoolStudentPhone,
		Email:   s.SchoolStudentEmail,

		HealthNotes:      s.SchoolStudentHealthNotes,
		GuardianName:     s.SchoolStudentGuardianName,
		GuardianPhone:    s.SchoolStudentGuardianPhone,
		GuardianRelation: s.SchoolStudentGuardianRelation,
		FatherName:       s.SchoolStudentFatherName,
		MotherName:       s.SchoolStudentMotherName,

		PreviousSchoolName: s.SchoolStudentPreviousSchoolName,
		PreviousSchoolNPSN: s.SchoolStudentPreviousSchoolNPSN,

		EnrolledAt: s.SchoolStudentEnrolledAt,

		CapturedAt: time.Now(),
	}
}

// NewStudent membangun baris siswa tujuan dari snapshot.
// Section, NIS lokal, dan no. registrasi dikosongkan untuk
// diisi ulang oleh sekolah tujuan; enrolled_at asli dipertahankan
// kalau ada, kalau tidak pakai waktu sekarang.
func (sn StudentSnapshot) NewStudent(destSchoolID uuid.UUID, now time.Time) smodel.SchoolStudentModel {
	enrolledAt := sn.EnrolledAt
	if enrolledAt == nil {
		t := now
		enrolledAt = &t
	}
	return smodel.SchoolStudentModel{
		SchoolStudentSchoolID: destSchoolID,

		SchoolStudentNISN:       sn.NISN,
		SchoolStudentName:       sn.Name,
		SchoolStudentGender:     sn.Gender,
		SchoolStudentBirthPlace: sn.BirthPlace,
		SchoolStudentBirthDate:  sn.BirthDate,

		SchoolStudentAddress: sn.Address,
		SchoolStudentPhone:   sn.Phone,
		SchoolStudentEmail:   sn.Email,

		SchoolStudentHealthNotes:      sn.HealthNotes,
		SchoolStudentGuardianName:     sn.GuardianName,
		SchoolStudentGuardianPhone:    sn.GuardianPhone,
		SchoolStudentGuardianRelation: sn.GuardianRelation,
		SchoolStudentFatherName:       sn.FatherName,
		SchoolStudentMotherName:       sn.MotherName,

		SchoolStudentPreviousSchoolName: sn.PreviousSchoolName,
		SchoolStudentPreviousSchoolNPSN: sn.PreviousSchoolNPSN,

		SchoolStudentEnrolledAt: enrolledAt,

		SchoolStudentIsActive: true,
	}
}

// ToJSON menyerialisasi snapshot ke kolom jsonb.
func (sn StudentSnapshot) ToJSON() (datatypes.JSON, error) {
	b, err := json.Marshal(sn)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// FromJSON membaca snapshot tersimpan dari kolom jsonb.
func FromJSON(raw datatypes.JSON) (StudentSnapshot, error) {
	var sn StudentSnapshot
	err := json.Unmarshal(raw, &sn)
	return sn, err
}
