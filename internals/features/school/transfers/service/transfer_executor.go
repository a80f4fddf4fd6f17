// file: internals/features/school/transfers/service/transfer_executor.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	smodel "sekolahku_backend/internals/features/school/students/model"
	tmodel "sekolahku_backend/internals/features/school/transfers/model"
	"sekolahku_backend/internals/features/school/transfers/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ======================================================
   TransferExecutor — eksekusi migrasi data.

   Seluruh langkah (nonaktifkan asal, buat tujuan, re-parent
   semua child) berjalan dalam SATU transaksi durable, dengan
   baris siswa asal dikunci FOR UPDATE. Dua complete berbarengan
   untuk siswa yang sama tidak mungkin dua-duanya jalan.
====================================================== */

type MigrationSummary struct {
	NewStudentID uuid.UUID        `json:"new_student_id"`
	Moved        map[string]int64 `json:"moved"`
}

type TransferExecutor struct {
	DB        *gorm.DB
	Validator *TransferValidator
}

func NewTransferExecutor(db *gorm.DB) *TransferExecutor {
	return &TransferExecutor{DB: db, Validator: NewTransferValidator(db)}
}

// Execute dipanggil hanya dari transisi yang sudah diotorisasi
// state machine (approve pull / complete push). Gagal di langkah
// mana pun → rollback total, status request tidak berubah.
func (e *TransferExecutor) Execute(ctx context.Context, req *tmodel.StudentTransferRequestModel, processedBy uuid.UUID) (*MigrationSummary, error) {
	var summary *MigrationSummary

	err := e.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		from := req.StudentTransferRequestFromSchoolID
		to := req.StudentTransferRequestToSchoolID

		// Kunci baris request dan cek ulang statusnya DI DALAM transaksi:
		// otorisasi flow terjadi di luar lock, transisi lain bisa saja
		// menang duluan (termasuk cancel yang menghapus baris).
		var fresh tmodel.StudentTransferRequestModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fresh, "student_transfer_request_id = ?", req.StudentTransferRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusConflict, "permintaan transfer sudah dibatalkan")
			}
			return err
		}
		if fresh.StudentTransferRequestStatus != req.StudentTransferRequestStatus {
			return fiber.NewError(fiber.StatusConflict,
				"transisi tidak sah dari status "+string(fresh.StudentTransferRequestStatus))
		}

		// Kunci baris siswa asal selama seluruh mutasi multi-langkah.
		var stu smodel.SchoolStudentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("school_student_school_id = ?", from).
			First(&stu, "school_student_id = ?", req.StudentTransferRequestStudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "siswa sumber tidak ditemukan")
			}
			return err
		}
		if err := e.Validator.EnsureStudentActive(&stu); err != nil {
			return err
		}

		// Re-validasi identitas: waktu sudah berlalu sejak request dibuat.
		if err := e.Validator.EnsureNISNAvailable(ctx, tx, stu.SchoolStudentNISN, to, stu.SchoolStudentID); err != nil {
			return err
		}

		// Refresh snapshot dari record hidup, bukan dari snapshot lama.
		snap := snapshot.BuildStudentSnapshot(&stu)
		rawSnap, err := snap.ToJSON()
		if err != nil {
			return err
		}

		now := time.Now()

		// 1) Nonaktifkan asal DULU: invarian "satu aktif per NISN"
		//    tetap true di setiap saat yang teramati.
		if err := tx.Model(&smodel.SchoolStudentModel{}).
			Where("school_student_id = ?", stu.SchoolStudentID).
			Update("school_student_is_active", false).Error; err != nil {
			return err
		}

		// 2) Buat baris tujuan dari snapshot (field tenant-scoped kosong).
		newStu := snap.NewStudent(to, now)
		if err := tx.Create(&newStu).Error; err != nil {
			return err
		}

		// 3) Re-parent tiap jenis data sesuai registry.
		moved := make(map[string]int64, len(TransferableResources))
		for _, r := range TransferableResources {
			q := tx.Table(r.Table).
				Where(r.SchoolColumn+" = ? AND "+r.StudentColumn+" = ?", from, stu.SchoolStudentID)
			if r.Scope != nil {
				q = r.Scope(q, from)
			}
			res := q.Updates(map[string]any{
				r.SchoolColumn:  to,
				r.StudentColumn: newStu.SchoolStudentID,
			})
			if res.Error != nil {
				return fmt.Errorf("migrasi %s gagal: %w", r.Kind, res.Error)
			}
			moved[r.Kind] = res.RowsAffected
		}

		// 4) Finalisasi request dalam transaksi yang sama.
		req.StudentTransferRequestStatus = tmodel.TransferCompleted
		req.StudentTransferRequestStudentSnapshot = rawSnap
		req.StudentTransferRequestProcessedByUserID = &processedBy
		req.StudentTransferRequestProcessedAt = &now
		res := tx.Model(&tmodel.StudentTransferRequestModel{}).
			Where("student_transfer_request_id = ? AND student_transfer_request_status = ?",
				req.StudentTransferRequestID, fresh.StudentTransferRequestStatus).
			Updates(map[string]any{
				"student_transfer_request_status":               tmodel.TransferCompleted,
				"student_transfer_request_student_snapshot":     rawSnap,
				"student_transfer_request_processed_by_user_id": processedBy,
				"student_transfer_request_processed_at":         now,
			})
		if err := RequireAffected(res, "transisi tidak sah: status permintaan sudah berubah"); err != nil {
			return err
		}

		summary = &MigrationSummary{NewStudentID: newStu.SchoolStudentID, Moved: moved}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
