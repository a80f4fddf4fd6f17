// file: internals/features/school/transfers/model/student_transfer_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: student_transfer_status
====================================================== */

type StudentTransferStatus string

const (
	TransferPending   StudentTransferStatus = "pending"
	TransferApproved  StudentTransferStatus = "approved"
	TransferRejected  StudentTransferStatus = "rejected"
	TransferCompleted StudentTransferStatus = "completed"
	// canceled bukan status tersimpan: cancel menghapus baris request.
)

/* ======================================================
   ENUM: student_transfer_type
====================================================== */

type StudentTransferType string

const (
	// push: dibuat & dituntaskan oleh sekolah asal
	TransferTypePush StudentTransferType = "push"
	// pull: dibuat oleh sekolah tujuan setelah lookup NPSN/NISN
	TransferTypePull StudentTransferType = "pull"
)

/* ======================================================
   Model: student_transfer_requests
====================================================== */

type StudentTransferRequestModel struct {
	StudentTransferRequestID uuid.UUID `gorm:"column:student_transfer_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_transfer_request_id"`

	StudentTransferRequestStudentID          uuid.UUID `gorm:"column:student_transfer_request_student_id;type:uuid;not null;index" json:"student_transfer_request_student_id"`
	StudentTransferRequestFromSchoolID       uuid.UUID `gorm:"column:student_transfer_request_from_school_id;type:uuid;not null;index" json:"student_transfer_request_from_school_id"`
	StudentTransferRequestToSchoolID         uuid.UUID `gorm:"column:student_transfer_request_to_school_id;type:uuid;not null;index" json:"student_transfer_request_to_school_id"`
	StudentTransferRequestInitiatedBySchoolID uuid.UUID `gorm:"column:student_transfer_request_initiated_by_school_id;type:uuid;not null" json:"student_transfer_request_initiated_by_school_id"`

	StudentTransferRequestType   StudentTransferType   `gorm:"column:student_transfer_request_type;type:varchar(10);not null" json:"student_transfer_request_type"`
	StudentTransferRequestStatus StudentTransferStatus `gorm:"column:student_transfer_request_status;type:varchar(20);not null;default:'pending';index" json:"student_transfer_request_status"`

	StudentTransferRequestReason          string     `gorm:"column:student_transfer_request_reason;type:text;not null" json:"student_transfer_request_reason"`
	StudentTransferRequestNotes           *string    `gorm:"column:student_transfer_request_notes;type:text" json:"student_transfer_request_notes,omitempty"`
	StudentTransferRequestRejectionReason *string    `gorm:"column:student_transfer_request_rejection_reason;type:text" json:"student_transfer_request_rejection_reason,omitempty"`
	StudentTransferRequestTransferDate    *time.Time `gorm:"column:student_transfer_request_transfer_date;type:date" json:"student_transfer_request_transfer_date,omitempty"`

	// Referensi dokumen pendukung (opaque, mis. object-storage keys)
	StudentTransferRequestDocuments pq.StringArray `gorm:"column:student_transfer_request_documents;type:text[]" json:"student_transfer_request_documents,omitempty"`

	// Snapshot beku data portable siswa; di-refresh persis sebelum migrasi jalan
	StudentTransferRequestStudentSnapshot datatypes.JSON `gorm:"column:student_transfer_request_student_snapshot;type:jsonb;not null" json:"student_transfer_request_student_snapshot"`

	StudentTransferRequestProcessedByUserID *uuid.UUID `gorm:"column:student_transfer_request_processed_by_user_id;type:uuid" json:"student_transfer_request_processed_by_user_id,omitempty"`
	StudentTransferRequestProcessedAt       *time.Time `gorm:"column:student_transfer_request_processed_at;type:timestamptz" json:"student_transfer_request_processed_at,omitempty"`

	StudentTransferRequestCreatedAt time.Time `gorm:"column:student_transfer_request_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_transfer_request_created_at"`
	StudentTransferRequestUpdatedAt time.Time `gorm:"column:student_transfer_request_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_transfer_request_updated_at"`
}

func (StudentTransferRequestModel) TableName() string { return "student_transfer_requests" }

// IsPush: request diprakarsai sekolah asal.
func (m *StudentTransferRequestModel) IsPush() bool {
	return m.StudentTransferRequestType == TransferTypePush
}

/* ======================================================
   Schema guard (dipanggil saat boot)

   Invariannya ditegakkan DI DATABASE, bukan cuma di cek
   aplikasi, supaya dua request berbarengan tidak lolos dua-
   duanya lewat celah read-then-write:
   - satu request pending per siswa
   - satu baris siswa aktif per NISN, lintas semua sekolah
====================================================== */

func EnsureTransferSchema(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_student_transfer_requests_pending
		   ON student_transfer_requests (student_transfer_request_student_id)
		   WHERE student_transfer_request_status = 'pending'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_school_students_active_nisn
		   ON school_students (school_student_nisn)
		   WHERE school_student_is_active = TRUE AND school_student_deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}
