// file: internals/features/school/transfers/service/transfer_flow.go
package service

import (
	tmodel "sekolahku_backend/internals/features/school/transfers/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ======================================================
   State machine persetujuan.

   Legalitas transisi DAN aktor yang boleh memanggilnya
   bergantung pada siapa inisiator request. Daripada branching
   inisiator di tiap method, tiap tipe punya flow sendiri:

   - pushFlow (inisiator = sekolah asal):
       approve  : sekolah TUJUAN → status approved saja
       reject   : sekolah TUJUAN
       complete : sekolah ASAL, dari approved → jalankan migrasi
   - pullFlow (inisiator = sekolah tujuan):
       approve  : sekolah ASAL → migrasi langsung jalan, completed
       reject   : sekolah ASAL
       complete : tidak berlaku untuk tipe ini

   cancel (dua-duanya): hanya dari pending, oleh sekolah asal
   atau inisiator; MENGHAPUS baris, bukan status terminal.
====================================================== */

type TransferFlow interface {
	// AuthorizeApprove memastikan status & aktor sah untuk approve.
	AuthorizeApprove(req *tmodel.StudentTransferRequestModel, actorSchoolID uuid.UUID) error
	// ApproveRunsMigration: true bila approve langsung mengeksekusi migrasi.
	ApproveRunsMigration() bool

	AuthorizeReject(req *tmodel.StudentTransferRequestModel, actorSchoolID uuid.UUID) error
	AuthorizeComplete(req *tmodel.StudentTransferRequestModel, actorSchoolID uuid.UUID) error
	AuthorizeCancel(req *tmodel.StudentTransferRequestModel, actorSchoolID uuid.UUID) error
}

// FlowFor memilih flow berdasarkan tipe request yang tersimpan.
func FlowFor(req *tmodel.StudentTransferRequestModel) (TransferFlow, error) {
	switch req.StudentTransferRequestType {
	case tmodel.TransferTypePush:
		return pushFlow{}, nil
	case tmodel.TransferTypePull:
		return pullFlow{}, nil
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "tipe transfer tidak dikenal")
	}
}

func requireStatus(req *tmodel.StudentTransferRequestModel, want tmodel.StudentTransferStatus) error {
	if req.StudentTransferRequestStatus != want {
		return fiber.NewError(fiber.StatusConflict,
			"transisi tidak sah dari status "+string(req.StudentTransferRequestStatus))
	}
	return nil
}

func requireActor(actorSchoolID, want uuid.UUID, msg string) error {
	if actorSchoolID != want {
		return fiber.NewError(fiber.StatusForbidden, msg)
	}
	return nil
}

/* ===================== push ===================== */

type pushFlow struct{}

func (pushFlow) AuthorizeApprove(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferPending); err != nil {
		return err
	}
	return requireActor(actor, req.StudentTransferRequestToSchoolID,
		"hanya sekolah tujuan yang boleh menyetujui transfer push")
}

func (pushFlow) ApproveRunsMigration() bool { return false }

func (pushFlow) AuthorizeReject(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferPending); err != nil {
		return err
	}
	return requireActor(actor, req.StudentTransferRequestToSchoolID,
		"hanya sekolah tujuan yang boleh menolak transfer push")
}

func (pushFlow) AuthorizeComplete(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferApproved); err != nil {
		return err
	}
	return requireActor(actor, req.StudentTransferRequestFromSchoolID,
		"hanya sekolah asal yang boleh menuntaskan transfer push")
}

func (pushFlow) AuthorizeCancel(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	return authorizeCancel(req, actor)
}

/* ===================== pull ===================== */

type pullFlow struct{}

func (pullFlow) AuthorizeApprove(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferPending); err != nil {
		return err
	}
	return requireActor(actor, req.StudentTransferRequestFromSchoolID,
		"hanya sekolah asal yang boleh menyetujui transfer pull")
}

// Approve pada pull langsung memindahkan data (satu langkah).
func (pullFlow) ApproveRunsMigration() bool { return true }

func (pullFlow) AuthorizeReject(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferPending); err != nil {
		return err
	}
	return requireActor(actor, req.StudentTransferRequestFromSchoolID,
		"hanya sekolah asal yang boleh menolak transfer pull")
}

func (pullFlow) AuthorizeComplete(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	return fiber.NewError(fiber.StatusConflict,
		"complete tidak berlaku untuk transfer pull; approve sudah menjalankan migrasi")
}

func (pullFlow) AuthorizeCancel(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	return authorizeCancel(req, actor)
}

/* ===================== shared ===================== */

func authorizeCancel(req *tmodel.StudentTransferRequestModel, actor uuid.UUID) error {
	if err := requireStatus(req, tmodel.TransferPending); err != nil {
		return err
	}
	if actor != req.StudentTransferRequestFromSchoolID &&
		actor != req.StudentTransferRequestInitiatedBySchoolID {
		return fiber.NewError(fiber.StatusForbidden,
			"hanya sekolah asal atau inisiator yang boleh membatalkan")
	}
	return nil
}
