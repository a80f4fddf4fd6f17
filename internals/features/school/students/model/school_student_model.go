// file: internals/features/school/students/model/school_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: school_students (aggregate per tenant)

   Catatan: satu siswa (NISN) boleh punya banyak baris
   lintas sekolah, tapi hanya SATU yang aktif system-wide.
   Index parsial uq_school_students_active_nisn dibuat di
   EnsureTransferSchema (fitur transfers).
====================================================== */

type SchoolStudentModel struct {
	// PK & Tenant
	SchoolStudentID       uuid.UUID `gorm:"column:school_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_student_id"`
	SchoolStudentSchoolID uuid.UUID `gorm:"column:school_student_school_id;type:uuid;not null;index" json:"school_student_school_id"`

	// ===== Identitas (portable) =====
	SchoolStudentNISN       string     `gorm:"column:school_student_nisn;type:varchar(20);not null;index" json:"school_student_nisn"`
	SchoolStudentName       string     `gorm:"column:school_student_name;type:varchar(100);not null" json:"school_student_name"`
	SchoolStudentGender     *string    `gorm:"column:school_student_gender;type:varchar(20)" json:"school_student_gender,omitempty"`
	SchoolStudentBirthPlace *string    `gorm:"column:school_student_birth_place;type:varchar(80)" json:"school_student_birth_place,omitempty"`
	SchoolStudentBirthDate  *time.Time `gorm:"column:school_student_birth_date;type:date" json:"school_student_birth_date,omitempty"`

	// ===== Kontak (portable) =====
	SchoolStudentAddress *string `gorm:"column:school_student_address;type:text" json:"school_student_address,omitempty"`
	SchoolStudentPhone   *string `gorm:"column:school_student_phone;type:varchar(30)" json:"school_student_phone,omitempty"`
	SchoolStudentEmail   *string `gorm:"column:school_student_email;type:varchar(120)" json:"school_student_email,omitempty"`

	// ===== Kesehatan & wali (portable) =====
	SchoolStudentHealthNotes      *string `gorm:"column:school_student_health_notes;type:text" json:"school_student_health_notes,omitempty"`
	SchoolStudentGuardianName     *string `gorm:"column:school_student_guardian_name;type:varchar(100)" json:"school_student_guardian_name,omitempty"`
	SchoolStudentGuardianPhone    *string `gorm:"column:school_student_guardian_phone;type:varchar(30)" json:"school_student_guardian_phone,omitempty"`
	SchoolStudentGuardianRelation *string `gorm:"column:school_student_guardian_relation;type:varchar(40)" json:"school_student_guardian_relation,omitempty"`
	SchoolStudentFatherName       *string `gorm:"column:school_student_father_name;type:varchar(100)" json:"school_student_father_name,omitempty"`
	SchoolStudentMotherName       *string `gorm:"column:school_student_mother_name;type:varchar(100)" json:"school_student_mother_name,omitempty"`

	// ===== Sekolah asal (portable) =====
	SchoolStudentPreviousSchoolName *string `gorm:"column:school_student_previous_school_name;type:varchar(160)" json:"school_student_previous_school_name,omitempty"`
	SchoolStudentPreviousSchoolNPSN *string `gorm:"column:school_student_previous_school_npsn;type:varchar(20)" json:"school_student_previous_school_npsn,omitempty"`

	// ===== Metadata enrolment (portable) =====
	SchoolStudentEnrolledAt *time.Time `gorm:"column:school_student_enrolled_at;type:timestamptz" json:"school_student_enrolled_at,omitempty"`

	// ===== Tenant-scoped: TIDAK ikut snapshot, di-reset saat pindah =====
	SchoolStudentCode           *string    `gorm:"column:school_student_code;type:varchar(50)" json:"school_student_code,omitempty"`                       // NIS lokal
	SchoolStudentRegistrationNo *string    `gorm:"column:school_student_registration_no;type:varchar(50)" json:"school_student_registration_no,omitempty"` // no. registrasi tenant
	SchoolStudentClassSectionID *uuid.UUID `gorm:"column:school_student_class_section_id;type:uuid" json:"school_student_class_section_id,omitempty"`

	SchoolStudentIsActive bool `gorm:"column:school_student_is_active;not null;default:true;index" json:"school_student_is_active"`

	SchoolStudentCreatedAt time.Time      `gorm:"column:school_student_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"school_student_created_at"`
	SchoolStudentUpdatedAt time.Time      `gorm:"column:school_student_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"school_student_updated_at"`
	SchoolStudentDeletedAt gorm.DeletedAt `gorm:"column:school_student_deleted_at;index" json:"school_student_deleted_at,omitempty"`
}

func (SchoolStudentModel) TableName() string { return "school_students" }
