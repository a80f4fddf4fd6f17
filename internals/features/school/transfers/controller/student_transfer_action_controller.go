// file: internals/features/school/transfers/controller/student_transfer_action_controller.go
package controller

import (
	"time"

	dto "sekolahku_backend/internals/features/school/transfers/dto"
	tmodel "sekolahku_backend/internals/features/school/transfers/model"
	"sekolahku_backend/internals/features/school/transfers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Controller aksi persetujuan:
   - POST /:school_id/student-transfers/:id/approve
   - POST /:school_id/student-transfers/:id/reject
   - POST /:school_id/student-transfers/:id/complete
   - POST /:school_id/student-transfers/:id/cancel
======================================================= */

type StudentTransferActionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Executor *service.TransferExecutor
}

func NewStudentTransferActionController(db *gorm.DB) *StudentTransferActionController {
	return &StudentTransferActionController{
		DB:       db,
		Validate: validator.New(),
		Executor: service.NewTransferExecutor(db),
	}
}

// loadForAction: konteks umum semua aksi (scope + flow + user).
func (ctl *StudentTransferActionController) loadForAction(c *fiber.Ctx) (schoolID uuid.UUID, userID uuid.UUID, req *tmodel.StudentTransferRequestModel, flow service.TransferFlow, err error) {
	schoolID, err = helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return
	}
	if err = helperAuth.EnsureMemberSchool(c, schoolID); err != nil {
		return
	}
	userID, err = helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return
	}

	var id uuid.UUID
	id, err = parseUUIDParam(c, "id")
	if err != nil {
		return
	}
	req, err = findRequestInScope(c.UserContext(), ctl.DB, id, schoolID)
	if err != nil {
		return
	}
	flow, err = service.FlowFor(req)
	return
}

// POST /:id/approve
// Push: hanya menandai approved. Pull: migrasi langsung jalan.
func (ctl *StudentTransferActionController) Approve(c *fiber.Ctx) error {
	schoolID, userID, req, flow, err := ctl.loadForAction(c)
	if err != nil {
		return err
	}

	var body dto.ApproveStudentTransferRequest
	_ = c.BodyParser(&body) // body opsional

	if err := flow.AuthorizeApprove(req, schoolID); err != nil {
		return err
	}

	if flow.ApproveRunsMigration() {
		summary, err := ctl.Executor.Execute(c.UserContext(), req, userID)
		if err != nil {
			return helper.JsonDBError(c, err)
		}
		return helper.JsonUpdated(c, "transfer disetujui dan migrasi selesai", fiber.Map{
			"request": dto.FromModelStudentTransferRequest(req),
			"summary": summary,
		})
	}

	now := time.Now()
	updates := map[string]any{
		"student_transfer_request_status":               tmodel.TransferApproved,
		"student_transfer_request_processed_by_user_id": userID,
		"student_transfer_request_processed_at":         now,
	}
	if body.Notes != nil {
		updates["student_transfer_request_notes"] = *body.Notes
	}
	// Pagar status: transisi lain yang menang duluan = 409, bukan timpa.
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&tmodel.StudentTransferRequestModel{}).
		Where("student_transfer_request_id = ? AND student_transfer_request_status = ?",
			req.StudentTransferRequestID, tmodel.TransferPending).
		Updates(updates)
	if err := service.RequireAffected(res, "transisi tidak sah: status permintaan sudah berubah"); err != nil {
		return helper.JsonDBError(c, err)
	}

	req.StudentTransferRequestStatus = tmodel.TransferApproved
	req.StudentTransferRequestProcessedByUserID = &userID
	req.StudentTransferRequestProcessedAt = &now
	if body.Notes != nil {
		req.StudentTransferRequestNotes = body.Notes
	}
	return helper.JsonUpdated(c, "transfer disetujui; menunggu sekolah asal menuntaskan",
		dto.FromModelStudentTransferRequest(req))
}

// POST /:id/reject
func (ctl *StudentTransferActionController) Reject(c *fiber.Ctx) error {
	schoolID, userID, req, flow, err := ctl.loadForAction(c)
	if err != nil {
		return err
	}

	var body dto.RejectStudentTransferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := flow.AuthorizeReject(req, schoolID); err != nil {
		return err
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&tmodel.StudentTransferRequestModel{}).
		Where("student_transfer_request_id = ? AND student_transfer_request_status = ?",
			req.StudentTransferRequestID, tmodel.TransferPending).
		Updates(map[string]any{
			"student_transfer_request_status":               tmodel.TransferRejected,
			"student_transfer_request_rejection_reason":     body.RejectionReason,
			"student_transfer_request_processed_by_user_id": userID,
			"student_transfer_request_processed_at":         now,
		})
	if err := service.RequireAffected(res, "transisi tidak sah: status permintaan sudah berubah"); err != nil {
		return helper.JsonDBError(c, err)
	}

	req.StudentTransferRequestStatus = tmodel.TransferRejected
	req.StudentTransferRequestRejectionReason = &body.RejectionReason
	req.StudentTransferRequestProcessedByUserID = &userID
	req.StudentTransferRequestProcessedAt = &now
	return helper.JsonUpdated(c, "transfer ditolak", dto.FromModelStudentTransferRequest(req))
}

// POST /:id/complete — hanya push, dari approved, oleh sekolah asal.
func (ctl *StudentTransferActionController) Complete(c *fiber.Ctx) error {
	schoolID, userID, req, flow, err := ctl.loadForAction(c)
	if err != nil {
		return err
	}

	if err := flow.AuthorizeComplete(req, schoolID); err != nil {
		return err
	}

	summary, err := ctl.Executor.Execute(c.UserContext(), req, userID)
	if err != nil {
		return helper.JsonDBError(c, err)
	}
	return helper.JsonUpdated(c, "migrasi selesai", fiber.Map{
		"request": dto.FromModelStudentTransferRequest(req),
		"summary": summary,
	})
}

// POST /:id/cancel — hapus baris request (bukan status terminal).
func (ctl *StudentTransferActionController) Cancel(c *fiber.Ctx) error {
	schoolID, _, req, flow, err := ctl.loadForAction(c)
	if err != nil {
		return err
	}

	if err := flow.AuthorizeCancel(req, schoolID); err != nil {
		return err
	}

	// Hanya baris yang MASIH pending yang boleh hilang; approve yang
	// menang duluan membuat baris ini jadi audit record permanen.
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&tmodel.StudentTransferRequestModel{},
			"student_transfer_request_id = ? AND student_transfer_request_status = ?",
			req.StudentTransferRequestID, tmodel.TransferPending)
	if err := service.RequireAffected(res, "permintaan sudah diproses, tidak bisa dibatalkan"); err != nil {
		return helper.JsonDBError(c, err)
	}
	return helper.JsonDeleted(c, "permintaan transfer dibatalkan", fiber.Map{
		"student_transfer_request_id": req.StudentTransferRequestID,
	})
}
