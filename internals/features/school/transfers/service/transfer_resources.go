// file: internals/features/school/transfers/service/transfer_resources.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Registry resource yang ikut pindah saat transfer.

   Tiap jenis data siswa dideskripsikan deklaratif (tabel,
   kolom kepemilikan, filter), lalu diproses seragam oleh
   executor. Jenis data baru cukup didaftarkan di sini tanpa
   menyentuh kode executor.

   Pembayaran (student_payments), absensi (student_attendances),
   dan attempt ujian (student_exam_attempts) SENGAJA tidak
   terdaftar: data itu terikat pada tenant tempat terjadinya.
====================================================== */

type TransferableResource struct {
	Kind          string
	Table         string
	StudentColumn string
	SchoolColumn  string
	// Scope menambah filter per jenis; nil = semua baris milik
	// (siswa, sekolah asal) ikut pindah.
	Scope func(q *gorm.DB, sourceSchoolID uuid.UUID) *gorm.DB
}

// scopeClassOwnedBySource membatasi ke baris yang kelasnya milik sekolah asal.
func scopeClassOwnedBySource(classColumn string) func(q *gorm.DB, src uuid.UUID) *gorm.DB {
	return func(q *gorm.DB, src uuid.UUID) *gorm.DB {
		return q.Where(classColumn+` IN (
			SELECT class_id FROM classes
			WHERE class_school_id = ? AND class_deleted_at IS NULL)`, src)
	}
}

// TransferableResources dievaluasi berurutan oleh executor.
var TransferableResources = []TransferableResource{
	{
		Kind:          "grade_records",
		Table:         "student_grade_records",
		StudentColumn: "student_grade_record_student_id",
		SchoolColumn:  "student_grade_record_school_id",
	},
	{
		Kind:          "health_records",
		Table:         "student_health_records",
		StudentColumn: "student_health_record_student_id",
		SchoolColumn:  "student_health_record_school_id",
	},
	{
		Kind:          "counseling_sessions",
		Table:         "student_counseling_sessions",
		StudentColumn: "student_counseling_session_student_id",
		SchoolColumn:  "student_counseling_session_school_id",
	},
	{
		Kind:          "discipline_records",
		Table:         "student_discipline_records",
		StudentColumn: "student_discipline_record_student_id",
		SchoolColumn:  "student_discipline_record_school_id",
	},
	{
		// hanya keikutsertaan yang masih berjalan
		Kind:          "extracurriculars",
		Table:         "student_extracurriculars",
		StudentColumn: "student_extracurricular_student_id",
		SchoolColumn:  "student_extracurricular_school_id",
		Scope: func(q *gorm.DB, _ uuid.UUID) *gorm.DB {
			return q.Where("student_extracurricular_is_active = TRUE")
		},
	},
	{
		// kelas milik sekolah asal + belum completed
		Kind:          "class_enrollments",
		Table:         "student_class_enrollments",
		StudentColumn: "student_class_enrollment_student_id",
		SchoolColumn:  "student_class_enrollment_school_id",
		Scope: func(q *gorm.DB, src uuid.UUID) *gorm.DB {
			q = scopeClassOwnedBySource("student_class_enrollment_class_id")(q, src)
			return q.Where("student_class_enrollment_status <> ?", "completed")
		},
	},
	{
		// kelas milik sekolah asal
		Kind:          "class_progresses",
		Table:         "student_class_progresses",
		StudentColumn: "student_class_progress_student_id",
		SchoolColumn:  "student_class_progress_school_id",
		Scope:         scopeClassOwnedBySource("student_class_progress_class_id"),
	},
}
