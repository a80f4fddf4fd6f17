// file: internals/features/school/students/model/student_discipline_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_discipline_records
   Ikut migrasi transfer: SEMUA baris.
====================================================== */

type StudentDisciplineRecordModel struct {
	StudentDisciplineRecordID        uuid.UUID `gorm:"column:student_discipline_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_discipline_record_id"`
	StudentDisciplineRecordSchoolID  uuid.UUID `gorm:"column:student_discipline_record_school_id;type:uuid;not null;index" json:"student_discipline_record_school_id"`
	StudentDisciplineRecordStudentID uuid.UUID `gorm:"column:student_discipline_record_student_id;type:uuid;not null;index" json:"student_discipline_record_student_id"`

	StudentDisciplineRecordCategory   string     `gorm:"column:student_discipline_record_category;type:varchar(60);not null" json:"student_discipline_record_category"`
	StudentDisciplineRecordDetail     string     `gorm:"column:student_discipline_record_detail;type:text;not null" json:"student_discipline_record_detail"`
	StudentDisciplineRecordAction     *string    `gorm:"column:student_discipline_record_action;type:text" json:"student_discipline_record_action,omitempty"`
	StudentDisciplineRecordOccurredAt *time.Time `gorm:"column:student_discipline_record_occurred_at;type:timestamptz" json:"student_discipline_record_occurred_at,omitempty"`

	StudentDisciplineRecordCreatedAt time.Time `gorm:"column:student_discipline_record_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_discipline_record_created_at"`
	StudentDisciplineRecordUpdatedAt time.Time `gorm:"column:student_discipline_record_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_discipline_record_updated_at"`
}

func (StudentDisciplineRecordModel) TableName() string { return "student_discipline_records" }
