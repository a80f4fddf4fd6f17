// file: internals/features/school/students/model/student_class_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_class_progresses
   Ikut migrasi transfer: HANYA bila kelasnya milik sekolah asal.
====================================================== */

type StudentClassProgressModel struct {
	StudentClassProgressID        uuid.UUID `gorm:"column:student_class_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_class_progress_id"`
	StudentClassProgressSchoolID  uuid.UUID `gorm:"column:student_class_progress_school_id;type:uuid;not null;index" json:"student_class_progress_school_id"`
	StudentClassProgressStudentID uuid.UUID `gorm:"column:student_class_progress_student_id;type:uuid;not null;index" json:"student_class_progress_student_id"`
	StudentClassProgressClassID   uuid.UUID `gorm:"column:student_class_progress_class_id;type:uuid;not null;index" json:"student_class_progress_class_id"`

	StudentClassProgressMaterial   string     `gorm:"column:student_class_progress_material;type:varchar(160);not null" json:"student_class_progress_material"`
	StudentClassProgressPercent    int        `gorm:"column:student_class_progress_percent;type:int;not null;default:0" json:"student_class_progress_percent"`
	StudentClassProgressLastSeenAt *time.Time `gorm:"column:student_class_progress_last_seen_at;type:timestamptz" json:"student_class_progress_last_seen_at,omitempty"`

	StudentClassProgressCreatedAt time.Time `gorm:"column:student_class_progress_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_class_progress_created_at"`
	StudentClassProgressUpdatedAt time.Time `gorm:"column:student_class_progress_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_class_progress_updated_at"`
}

func (StudentClassProgressModel) TableName() string { return "student_class_progresses" }
