// file: internals/features/school/students/model/student_extracurricular_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_extracurriculars
   Ikut migrasi transfer: HANYA baris yang masih aktif.
====================================================== */

type StudentExtracurricularModel struct {
	StudentExtracurricularID        uuid.UUID `gorm:"column:student_extracurricular_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_extracurricular_id"`
	StudentExtracurricularSchoolID  uuid.UUID `gorm:"column:student_extracurricular_school_id;type:uuid;not null;index" json:"student_extracurricular_school_id"`
	StudentExtracurricularStudentID uuid.UUID `gorm:"column:student_extracurricular_student_id;type:uuid;not null;index" json:"student_extracurricular_student_id"`

	StudentExtracurricularActivityName string     `gorm:"column:student_extracurricular_activity_name;type:varchar(120);not null" json:"student_extracurricular_activity_name"`
	StudentExtracurricularRole         *string    `gorm:"column:student_extracurricular_role;type:varchar(60)" json:"student_extracurricular_role,omitempty"`
	StudentExtracurricularJoinedAt     *time.Time `gorm:"column:student_extracurricular_joined_at;type:timestamptz" json:"student_extracurricular_joined_at,omitempty"`
	StudentExtracurricularIsActive     bool       `gorm:"column:student_extracurricular_is_active;not null;default:true;index" json:"student_extracurricular_is_active"`

	StudentExtracurricularCreatedAt time.Time `gorm:"column:student_extracurricular_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_extracurricular_created_at"`
	StudentExtracurricularUpdatedAt time.Time `gorm:"column:student_extracurricular_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_extracurricular_updated_at"`
}

func (StudentExtracurricularModel) TableName() string { return "student_extracurriculars" }
