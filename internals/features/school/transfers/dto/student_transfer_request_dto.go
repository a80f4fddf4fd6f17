// file: internals/features/school/transfers/dto/student_transfer_request_dto.go
package dto

import (
	"time"

	tmodel "sekolahku_backend/internals/features/school/transfers/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Requests
====================================================== */

// Push: dibuat sekolah asal (POST /student-transfers)
type CreatePushTransferRequest struct {
	StudentID  uuid.UUID `json:"student_transfer_request_student_id" validate:"required"`
	ToSchoolID uuid.UUID `json:"student_transfer_request_to_school_id" validate:"required"`

	Reason       string     `json:"student_transfer_request_reason" validate:"required,min=3"`
	Notes        *string    `json:"student_transfer_request_notes"`
	TransferDate *time.Time `json:"student_transfer_request_transfer_date"`
	Documents    []string   `json:"student_transfer_request_documents"`
}

// Pull: dibuat sekolah tujuan setelah lookup (POST /student-transfers/pull)
type CreatePullTransferRequest struct {
	SourceSchoolNPSN string `json:"source_school_npsn" validate:"required,min=4"`
	StudentNISN      string `json:"student_nisn" validate:"required,min=4"`

	Reason       string     `json:"student_transfer_request_reason" validate:"required,min=3"`
	Notes        *string    `json:"student_transfer_request_notes"`
	TransferDate *time.Time `json:"student_transfer_request_transfer_date"`
	Documents    []string   `json:"student_transfer_request_documents"`
}

// Patch field yang masih boleh diubah selama pending (PATCH /:id)
type UpdateStudentTransferRequest struct {
	Reason       *string    `json:"student_transfer_request_reason" validate:"omitempty,min=3"`
	Notes        *string    `json:"student_transfer_request_notes"`
	TransferDate *time.Time `json:"student_transfer_request_transfer_date"`
	Documents    []string   `json:"student_transfer_request_documents"`
}

// POST /:id/approve
type ApproveStudentTransferRequest struct {
	Notes *string `json:"student_transfer_request_notes"`
}

// POST /:id/reject
type RejectStudentTransferRequest struct {
	RejectionReason string `json:"student_transfer_request_rejection_reason" validate:"required,min=3"`
}

/* ======================================================
   Query params (List)
====================================================== */

type ListStudentTransferQuery struct {
	Q         string  `query:"q"`
	Status    *string `query:"status"`
	StudentID *string `query:"student_id"`
}

/* ======================================================
   Responses
====================================================== */

type StudentTransferRequestResponse struct {
	StudentTransferRequestID uuid.UUID `json:"student_transfer_request_id"`

	StudentTransferRequestStudentID           uuid.UUID `json:"student_transfer_request_student_id"`
	StudentTransferRequestFromSchoolID        uuid.UUID `json:"student_transfer_request_from_school_id"`
	StudentTransferRequestToSchoolID          uuid.UUID `json:"student_transfer_request_to_school_id"`
	StudentTransferRequestInitiatedBySchoolID uuid.UUID `json:"student_transfer_request_initiated_by_school_id"`

	StudentTransferRequestType   tmodel.StudentTransferType   `json:"student_transfer_request_type"`
	StudentTransferRequestStatus tmodel.StudentTransferStatus `json:"student_transfer_request_status"`

	StudentTransferRequestReason          string     `json:"student_transfer_request_reason"`
	StudentTransferRequestNotes           *string    `json:"student_transfer_request_notes,omitempty"`
	StudentTransferRequestRejectionReason *string    `json:"student_transfer_request_rejection_reason,omitempty"`
	StudentTransferRequestTransferDate    *time.Time `json:"student_transfer_request_transfer_date,omitempty"`
	StudentTransferRequestDocuments       []string   `json:"student_transfer_request_documents,omitempty"`

	StudentTransferRequestStudentSnapshot datatypes.JSON `json:"student_transfer_request_student_snapshot"`

	StudentTransferRequestProcessedByUserID *uuid.UUID `json:"student_transfer_request_processed_by_user_id,omitempty"`
	StudentTransferRequestProcessedAt       *time.Time `json:"student_transfer_request_processed_at,omitempty"`
	StudentTransferRequestCreatedAt         time.Time  `json:"student_transfer_request_created_at"`

	// Display names (di-join oleh controller, bukan kolom tabel)
	StudentName    string `json:"student_name,omitempty"`
	FromSchoolName string `json:"from_school_name,omitempty"`
	ToSchoolName   string `json:"to_school_name,omitempty"`
}

func FromModelStudentTransferRequest(m *tmodel.StudentTransferRequestModel) StudentTransferRequestResponse {
	return StudentTransferRequestResponse{
		StudentTransferRequestID: m.StudentTransferRequestID,

		StudentTransferRequestStudentID:           m.StudentTransferRequestStudentID,
		StudentTransferRequestFromSchoolID:        m.StudentTransferRequestFromSchoolID,
		StudentTransferRequestToSchoolID:          m.StudentTransferRequestToSchoolID,
		StudentTransferRequestInitiatedBySchoolID: m.StudentTransferRequestInitiatedBySchoolID,

		StudentTransferRequestType:   m.StudentTransferRequestType,
		StudentTransferRequestStatus: m.StudentTransferRequestStatus,

		StudentTransferRequestReason:          m.StudentTransferRequestReason,
		StudentTransferRequestNotes:           m.StudentTransferRequestNotes,
		StudentTransferRequestRejectionReason: m.StudentTransferRequestRejectionReason,
		StudentTransferRequestTransferDate:    m.StudentTransferRequestTransferDate,
		StudentTransferRequestDocuments:       []string(m.StudentTransferRequestDocuments),

		StudentTransferRequestStudentSnapshot: m.StudentTransferRequestStudentSnapshot,

		StudentTransferRequestProcessedByUserID: m.StudentTransferRequestProcessedByUserID,
		StudentTransferRequestProcessedAt:       m.StudentTransferRequestProcessedAt,
		StudentTransferRequestCreatedAt:         m.StudentTransferRequestCreatedAt,
	}
}

// Hasil lookup lintas tenant untuk alur pull.
type LookupStudentResponse struct {
	SourceSchoolID   uuid.UUID `json:"source_school_id"`
	SourceSchoolNPSN string    `json:"source_school_npsn"`
	SourceSchoolName string    `json:"source_school_name"`

	StudentID   uuid.UUID `json:"student_id"`
	StudentNISN string    `json:"student_nisn"`
	StudentName string    `json:"student_name"`
}
