// file: internals/features/school/students/model/student_class_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   ENUM: class_enrollment_status
====================================================== */

type ClassEnrollmentStatus string

const (
	EnrollmentActive    ClassEnrollmentStatus = "active"
	EnrollmentPaused    ClassEnrollmentStatus = "paused"
	EnrollmentCompleted ClassEnrollmentStatus = "completed"
	EnrollmentDropped   ClassEnrollmentStatus = "dropped"
)

/* ======================================================
   Model: student_class_enrollments
   Ikut migrasi transfer: HANYA bila kelasnya milik sekolah
   asal DAN status belum completed.
====================================================== */

type StudentClassEnrollmentModel struct {
	StudentClassEnrollmentID        uuid.UUID `gorm:"column:student_class_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_class_enrollment_id"`
	StudentClassEnrollmentSchoolID  uuid.UUID `gorm:"column:student_class_enrollment_school_id;type:uuid;not null;index" json:"student_class_enrollment_school_id"`
	StudentClassEnrollmentStudentID uuid.UUID `gorm:"column:student_class_enrollment_student_id;type:uuid;not null;index" json:"student_class_enrollment_student_id"`
	StudentClassEnrollmentClassID   uuid.UUID `gorm:"column:student_class_enrollment_class_id;type:uuid;not null;index" json:"student_class_enrollment_class_id"`

	StudentClassEnrollmentStatus     ClassEnrollmentStatus `gorm:"column:student_class_enrollment_status;type:varchar(20);not null;default:'active'" json:"student_class_enrollment_status"`
	StudentClassEnrollmentEnrolledAt time.Time             `gorm:"column:student_class_enrollment_enrolled_at;type:timestamptz;not null;default:now()" json:"student_class_enrollment_enrolled_at"`
	StudentClassEnrollmentEndedAt    *time.Time            `gorm:"column:student_class_enrollment_ended_at;type:timestamptz" json:"student_class_enrollment_ended_at,omitempty"`

	StudentClassEnrollmentCreatedAt time.Time `gorm:"column:student_class_enrollment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_class_enrollment_created_at"`
	StudentClassEnrollmentUpdatedAt time.Time `gorm:"column:student_class_enrollment_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_class_enrollment_updated_at"`
}

func (StudentClassEnrollmentModel) TableName() string { return "student_class_enrollments" }
