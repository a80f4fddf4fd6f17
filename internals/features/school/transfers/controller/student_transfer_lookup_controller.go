// file: internals/features/school/transfers/controller/student_transfer_lookup_controller.go
package controller

import (
	"strings"

	dto "sekolahku_backend/internals/features/school/transfers/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =======================================================
   Lookup lintas tenant untuk alur pull:
   GET /:school_id/student-transfers/lookup?school_npsn=...&student_nisn=...
======================================================= */

type StudentTransferLookupController struct {
	DB *gorm.DB
}

func NewStudentTransferLookupController(db *gorm.DB) *StudentTransferLookupController {
	return &StudentTransferLookupController{DB: db}
}

// Lookup mencari siswa AKTIF di sekolah lain via NPSN + NISN.
// Hanya identitas minimum yang dibuka, bukan seluruh record.
func (ctl *StudentTransferLookupController) Lookup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}

	npsn := strings.TrimSpace(c.Query("school_npsn"))
	nisn := strings.TrimSpace(c.Query("student_nisn"))
	if npsn == "" || nisn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_npsn dan student_nisn wajib diisi")
	}

	school, stu, err := resolveSourceStudent(c.UserContext(), ctl.DB, npsn, nisn)
	if err != nil {
		return err
	}
	if school.SchoolID == schoolID {
		return helper.JsonError(c, fiber.StatusBadRequest, "tidak bisa lookup siswa di sekolah sendiri")
	}

	return helper.JsonOK(c, "ok", dto.LookupStudentResponse{
		SourceSchoolID:   school.SchoolID,
		SourceSchoolNPSN: school.SchoolNPSN,
		SourceSchoolName: school.SchoolName,
		StudentID:        stu.SchoolStudentID,
		StudentNISN:      stu.SchoolStudentNISN,
		StudentName:      stu.SchoolStudentName,
	})
}
