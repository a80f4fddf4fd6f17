// file: internals/features/school/transfers/service/transfer_validator.go
package service

import (
	"context"
	"errors"

	smodel "sekolahku_backend/internals/features/school/students/model"
	tmodel "sekolahku_backend/internals/features/school/transfers/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   TransferValidator — cek konflik sebelum request dibuat
   dan (untuk NISN) diulang persis sebelum migrasi jalan.

   Cek aplikasi ini dilapis index unik parsial di DB
   (lihat model.EnsureTransferSchema) untuk menutup race
   antar request berbarengan.
====================================================== */

type TransferValidator struct {
	DB *gorm.DB
}

func NewTransferValidator(db *gorm.DB) *TransferValidator {
	return &TransferValidator{DB: db}
}

// EnsureCrossSchool menolak transfer ke sekolah yang sama.
func (v *TransferValidator) EnsureCrossSchool(fromSchoolID, toSchoolID uuid.UUID) error {
	if fromSchoolID == toSchoolID {
		return fiber.NewError(fiber.StatusBadRequest, "sekolah asal dan tujuan tidak boleh sama")
	}
	return nil
}

// EnsureStudentActive menolak siswa yang sudah nonaktif.
func (v *TransferValidator) EnsureStudentActive(stu *smodel.SchoolStudentModel) error {
	if stu == nil || !stu.SchoolStudentIsActive {
		return fiber.NewError(fiber.StatusConflict, "siswa tidak aktif di sekolah asal")
	}
	return nil
}

// activeNISNRow: baris siswa aktif pemegang NISN yang sama.
type activeNISNRow struct {
	StudentID uuid.UUID `gorm:"column:school_student_id"`
	SchoolID  uuid.UUID `gorm:"column:school_student_school_id"`
}

// evaluateNISNConflicts memutuskan konflik identitas dari baris aktif
// yang sudah di-fetch. Baris milik siswa yang sedang ditransfer
// dikecualikan (dia memang masih aktif di sekolah asal sampai migrasi
// jalan); hit di sekolah tujuan dibedakan dari hit di sekolah lain.
func evaluateNISNConflicts(rows []activeNISNRow, destSchoolID, subjectStudentID uuid.UUID) error {
	elsewhere := 0
	for _, r := range rows {
		if r.StudentID == subjectStudentID {
			continue
		}
		if r.SchoolID == destSchoolID {
			return fiber.NewError(fiber.StatusConflict, "NISN sudah terdaftar aktif di sekolah tujuan")
		}
		elsewhere++
	}
	if elsewhere > 0 {
		return fiber.NewError(fiber.StatusConflict, "NISN masih aktif di sekolah lain")
	}
	return nil
}

// EnsureNISNAvailable menegakkan invarian identitas lintas tenant:
// paling banyak SATU baris siswa aktif per NISN system-wide.
func (v *TransferValidator) EnsureNISNAvailable(ctx context.Context, tx *gorm.DB, nisn string, destSchoolID, subjectStudentID uuid.UUID) error {
	if tx == nil {
		tx = v.DB
	}
	var rows []activeNISNRow
	if err := tx.WithContext(ctx).
		Table("school_students").
		Select("school_student_id, school_student_school_id").
		Where("school_student_nisn = ? AND school_student_is_active = TRUE AND school_student_deleted_at IS NULL", nisn).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return evaluateNISNConflicts(rows, destSchoolID, subjectStudentID)
}

// EnsureNoPendingTransfer: satu request pending per siswa.
func (v *TransferValidator) EnsureNoPendingTransfer(ctx context.Context, studentID uuid.UUID) error {
	var count int64
	if err := v.DB.WithContext(ctx).
		Model(&tmodel.StudentTransferRequestModel{}).
		Where("student_transfer_request_student_id = ? AND student_transfer_request_status = ?",
			studentID, tmodel.TransferPending).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "masih ada permintaan transfer pending untuk siswa ini")
	}
	return nil
}

// FindActiveStudent mengambil siswa aktif milik sekolah tertentu.
func (v *TransferValidator) FindActiveStudent(ctx context.Context, schoolID, studentID uuid.UUID) (*smodel.SchoolStudentModel, error) {
	var stu smodel.SchoolStudentModel
	err := v.DB.WithContext(ctx).
		Where("school_student_school_id = ?", schoolID).
		First(&stu, "school_student_id = ?", studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "siswa tidak ditemukan di sekolah ini")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &stu, nil
}
