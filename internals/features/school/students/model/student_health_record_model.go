// file: internals/features/school/students/model/student_health_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_health_records
   Ikut migrasi transfer: SEMUA baris.
====================================================== */

type StudentHealthRecordModel struct {
	StudentHealthRecordID        uuid.UUID `gorm:"column:student_health_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_health_record_id"`
	StudentHealthRecordSchoolID  uuid.UUID `gorm:"column:student_health_record_school_id;type:uuid;not null;index" json:"student_health_record_school_id"`
	StudentHealthRecordStudentID uuid.UUID `gorm:"column:student_health_record_student_id;type:uuid;not null;index" json:"student_health_record_student_id"`

	StudentHealthRecordRecordType  string     `gorm:"column:student_health_record_record_type;type:varchar(40);not null" json:"student_health_record_record_type"` // checkup|vaccination|incident
	StudentHealthRecordDescription string     `gorm:"column:student_health_record_description;type:text;not null" json:"student_health_record_description"`
	StudentHealthRecordRecordedAt  *time.Time `gorm:"column:student_health_record_recorded_at;type:timestamptz" json:"student_health_record_recorded_at,omitempty"`

	StudentHealthRecordCreatedAt time.Time `gorm:"column:student_health_record_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_health_record_created_at"`
	StudentHealthRecordUpdatedAt time.Time `gorm:"column:student_health_record_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_health_record_updated_at"`
}

func (StudentHealthRecordModel) TableName() string { return "student_health_records" }
