// file: internals/features/school/students/model/student_tenant_bound_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Data terikat tenant (TIDAK PERNAH ikut migrasi transfer):
   pembayaran, absensi, dan attempt ujian tetap milik sekolah
   tempat data itu terjadi.
====================================================== */

type StudentPaymentModel struct {
	StudentPaymentID        uuid.UUID `gorm:"column:student_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_payment_id"`
	StudentPaymentSchoolID  uuid.UUID `gorm:"column:student_payment_school_id;type:uuid;not null;index" json:"student_payment_school_id"`
	StudentPaymentStudentID uuid.UUID `gorm:"column:student_payment_student_id;type:uuid;not null;index" json:"student_payment_student_id"`

	StudentPaymentAmountIDR int64     `gorm:"column:student_payment_amount_idr;type:numeric(14,0);not null" json:"student_payment_amount_idr"`
	StudentPaymentPurpose   string    `gorm:"column:student_payment_purpose;type:varchar(120);not null" json:"student_payment_purpose"`
	StudentPaymentPaidAt    time.Time `gorm:"column:student_payment_paid_at;type:timestamptz;not null;default:now()" json:"student_payment_paid_at"`

	StudentPaymentCreatedAt time.Time `gorm:"column:student_payment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_payment_created_at"`
}

func (StudentPaymentModel) TableName() string { return "student_payments" }

type StudentAttendanceModel struct {
	StudentAttendanceID        uuid.UUID `gorm:"column:student_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_attendance_id"`
	StudentAttendanceSchoolID  uuid.UUID `gorm:"column:student_attendance_school_id;type:uuid;not null;index" json:"student_attendance_school_id"`
	StudentAttendanceStudentID uuid.UUID `gorm:"column:student_attendance_student_id;type:uuid;not null;index" json:"student_attendance_student_id"`

	StudentAttendanceDate   time.Time `gorm:"column:student_attendance_date;type:date;not null" json:"student_attendance_date"`
	StudentAttendanceStatus string    `gorm:"column:student_attendance_status;type:varchar(20);not null" json:"student_attendance_status"` // present|sick|leave|absent

	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_attendance_created_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }

type StudentExamAttemptModel struct {
	StudentExamAttemptID        uuid.UUID `gorm:"column:student_exam_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_exam_attempt_id"`
	StudentExamAttemptSchoolID  uuid.UUID `gorm:"column:student_exam_attempt_school_id;type:uuid;not null;index" json:"student_exam_attempt_school_id"`
	StudentExamAttemptStudentID uuid.UUID `gorm:"column:student_exam_attempt_student_id;type:uuid;not null;index" json:"student_exam_attempt_student_id"`

	StudentExamAttemptExamName  string     `gorm:"column:student_exam_attempt_exam_name;type:varchar(160);not null" json:"student_exam_attempt_exam_name"`
	StudentExamAttemptScore     *float64   `gorm:"column:student_exam_attempt_score;type:numeric(5,2)" json:"student_exam_attempt_score,omitempty"`
	StudentExamAttemptStartedAt time.Time  `gorm:"column:student_exam_attempt_started_at;type:timestamptz;not null;default:now()" json:"student_exam_attempt_started_at"`
	StudentExamAttemptEndedAt   *time.Time `gorm:"column:student_exam_attempt_ended_at;type:timestamptz" json:"student_exam_attempt_ended_at,omitempty"`

	StudentExamAttemptCreatedAt time.Time `gorm:"column:student_exam_attempt_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_exam_attempt_created_at"`
}

func (StudentExamAttemptModel) TableName() string { return "student_exam_attempts" }
