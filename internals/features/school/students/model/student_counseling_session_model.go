// file: internals/features/school/students/model/student_counseling_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_counseling_sessions
   Ikut migrasi transfer: SEMUA baris.
====================================================== */

type StudentCounselingSessionModel struct {
	StudentCounselingSessionID        uuid.UUID `gorm:"column:student_counseling_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_counseling_session_id"`
	StudentCounselingSessionSchoolID  uuid.UUID `gorm:"column:student_counseling_session_school_id;type:uuid;not null;index" json:"student_counseling_session_school_id"`
	StudentCounselingSessionStudentID uuid.UUID `gorm:"column:student_counseling_session_student_id;type:uuid;not null;index" json:"student_counseling_session_student_id"`

	StudentCounselingSessionTopic     string     `gorm:"column:student_counseling_session_topic;type:varchar(160);not null" json:"student_counseling_session_topic"`
	StudentCounselingSessionSummary   *string    `gorm:"column:student_counseling_session_summary;type:text" json:"student_counseling_session_summary,omitempty"`
	StudentCounselingSessionHeldAt    *time.Time `gorm:"column:student_counseling_session_held_at;type:timestamptz" json:"student_counseling_session_held_at,omitempty"`
	StudentCounselingSessionCounselor *string    `gorm:"column:student_counseling_session_counselor;type:varchar(100)" json:"student_counseling_session_counselor,omitempty"`

	StudentCounselingSessionCreatedAt time.Time `gorm:"column:student_counseling_session_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_counseling_session_created_at"`
	StudentCounselingSessionUpdatedAt time.Time `gorm:"column:student_counseling_session_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_counseling_session_updated_at"`
}

func (StudentCounselingSessionModel) TableName() string { return "student_counseling_sessions" }
