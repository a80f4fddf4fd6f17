// file: internals/features/school/students/model/student_grade_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: student_grade_records
   Ikut migrasi transfer: SEMUA baris milik (siswa, sekolah asal).
====================================================== */

type StudentGradeRecordModel struct {
	StudentGradeRecordID        uuid.UUID `gorm:"column:student_grade_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_grade_record_id"`
	StudentGradeRecordSchoolID  uuid.UUID `gorm:"column:student_grade_record_school_id;type:uuid;not null;index" json:"student_grade_record_school_id"`
	StudentGradeRecordStudentID uuid.UUID `gorm:"column:student_grade_record_student_id;type:uuid;not null;index" json:"student_grade_record_student_id"`

	StudentGradeRecordSubject      string  `gorm:"column:student_grade_record_subject;type:varchar(120);not null" json:"student_grade_record_subject"`
	StudentGradeRecordAcademicYear string  `gorm:"column:student_grade_record_academic_year;type:varchar(12);not null" json:"student_grade_record_academic_year"`
	StudentGradeRecordSemester     int     `gorm:"column:student_grade_record_semester;type:int;not null;default:1" json:"student_grade_record_semester"`
	StudentGradeRecordScore        float64 `gorm:"column:student_grade_record_score;type:numeric(5,2);not null;default:0" json:"student_grade_record_score"`
	StudentGradeRecordNotes        *string `gorm:"column:student_grade_record_notes;type:text" json:"student_grade_record_notes,omitempty"`

	StudentGradeRecordCreatedAt time.Time `gorm:"column:student_grade_record_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_grade_record_created_at"`
	StudentGradeRecordUpdatedAt time.Time `gorm:"column:student_grade_record_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_grade_record_updated_at"`
}

func (StudentGradeRecordModel) TableName() string { return "student_grade_records" }
