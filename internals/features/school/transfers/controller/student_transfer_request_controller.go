// file: internals/features/school/transfers/controller/student_transfer_request_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	schoolmodel "sekolahku_backend/internals/features/lembaga/schools/model"
	smodel "sekolahku_backend/internals/features/school/students/model"
	dto "sekolahku_backend/internals/features/school/transfers/dto"
	tmodel "sekolahku_backend/internals/features/school/transfers/model"
	"sekolahku_backend/internals/features/school/transfers/service"
	"sekolahku_backend/internals/features/school/transfers/snapshot"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   Controller bootstrap
======================================================= */

type StudentTransferRequestController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Validator *service.TransferValidator
}

func NewStudentTransferRequestController(db *gorm.DB) *StudentTransferRequestController {
	return &StudentTransferRequestController{
		DB:        db,
		Validate:  validator.New(),
		Validator: service.NewTransferValidator(db),
	}
}

/* =======================================================
   Helpers (local)
======================================================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// findRequestInScope mengambil request yang caller-nya sekolah asal ATAU tujuan.
// Di luar scope itu request dianggap tidak ada (404), bukan 403.
func findRequestInScope(ctx context.Context, db *gorm.DB, id, callerSchoolID uuid.UUID) (*tmodel.StudentTransferRequestModel, error) {
	var m tmodel.StudentTransferRequestModel
	err := db.WithContext(ctx).
		Where("student_transfer_request_from_school_id = ? OR student_transfer_request_to_school_id = ?",
			callerSchoolID, callerSchoolID).
		First(&m, "student_transfer_request_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "permintaan transfer tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// resolveSourceStudent: lookup lintas tenant via (NPSN sekolah, NISN siswa aktif).
func resolveSourceStudent(ctx context.Context, db *gorm.DB, npsn, nisn string) (*schoolmodel.SchoolModel, *smodel.SchoolStudentModel, error) {
	var school schoolmodel.SchoolModel
	if err := db.WithContext(ctx).
		First(&school, "school_npsn = ?", strings.TrimSpace(npsn)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "sekolah asal dengan NPSN itu tidak ditemukan")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var stu smodel.SchoolStudentModel
	if err := db.WithContext(ctx).
		Where("school_student_school_id = ? AND school_student_is_active = TRUE", school.SchoolID).
		First(&stu, "school_student_nisn = ?", strings.TrimSpace(nisn)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "siswa aktif dengan NISN itu tidak ditemukan di sekolah asal")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &school, &stu, nil
}

// enrichTransferExtras mengisi nama sekolah & siswa (batch, untuk display).
func enrichTransferExtras(ctx context.Context, db *gorm.DB, items []dto.StudentTransferRequestResponse) {
	if len(items) == 0 {
		return
	}

	schoolIDsSet := map[uuid.UUID]struct{}{}
	stuIDsSet := map[uuid.UUID]struct{}{}
	for _, it := range items {
		schoolIDsSet[it.StudentTransferRequestFromSchoolID] = struct{}{}
		schoolIDsSet[it.StudentTransferRequestToSchoolID] = struct{}{}
		stuIDsSet[it.StudentTransferRequestStudentID] = struct{}{}
	}
	schoolIDs := make([]uuid.UUID, 0, len(schoolIDsSet))
	for id := range schoolIDsSet {
		schoolIDs = append(schoolIDs, id)
	}
	stuIDs := make([]uuid.UUID, 0, len(stuIDsSet))
	for id := range stuIDsSet {
		stuIDs = append(stuIDs, id)
	}

	type schoolRow struct {
		ID   uuid.UUID `gorm:"column:school_id"`
		Name string    `gorm:"column:school_name"`
	}
	schoolMap := make(map[uuid.UUID]string, len(schoolIDs))
	var schools []schoolRow
	if err := db.WithContext(ctx).
		Table("schools").
		Select("school_id, school_name").
		Where("school_id IN ?", schoolIDs).
		Find(&schools).Error; err != nil {
		log.Printf("[WARN] enrich nama sekolah gagal: %v", err)
	}
	for _, s := range schools {
		schoolMap[s.ID] = s.Name
	}

	type stuRow struct {
		ID   uuid.UUID `gorm:"column:school_student_id"`
		Name string    `gorm:"column:school_student_name"`
	}
	stuMap := make(map[uuid.UUID]string, len(stuIDs))
	var stus []stuRow
	if err := db.WithContext(ctx).
		Table("school_students").
		Select("school_student_id, school_student_name").
		Where("school_student_id IN ?", stuIDs).
		Find(&stus).Error; err != nil {
		log.Printf("[WARN] enrich nama siswa gagal: %v", err)
	}
	for _, s := range stus {
		stuMap[s.ID] = s.Name
	}

	applyTransferNames(items, schoolMap, stuMap)
}

// applyTransferNames mengisi display name dari map hasil batch fetch.
func applyTransferNames(items []dto.StudentTransferRequestResponse, schoolNames, studentNames map[uuid.UUID]string) {
	for i := range items {
		items[i].FromSchoolName = schoolNames[items[i].StudentTransferRequestFromSchoolID]
		items[i].ToSchoolName = schoolNames[items[i].StudentTransferRequestToSchoolID]
		items[i].StudentName = studentNames[items[i].StudentTransferRequestStudentID]
	}
}

/* =======================================================
   Routes
   - POST   /:school_id/student-transfers          (push)
   - POST   /:school_id/student-transfers/pull     (pull)
   - GET    /:school_id/student-transfers/list
   - GET    /:school_id/student-transfers/:id
   - PATCH  /:school_id/student-transfers/:id
   - DELETE /:school_id/student-transfers/:id
======================================================= */

// POST /:school_id/student-transfers — push: sekolah asal memprakarsai.
func (ctl *StudentTransferRequestController) CreatePush(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}

	var body dto.CreatePushTransferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Validator.EnsureCrossSchool(schoolID, body.ToSchoolID); err != nil {
		return err
	}

	// ===== Sekolah tujuan harus ada & hidup =====
	var dest schoolmodel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&dest, "school_id = ?", body.ToSchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "sekolah tujuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// ===== Siswa milik sekolah asal & masih aktif =====
	stu, err := ctl.Validator.FindActiveStudent(c.UserContext(), schoolID, body.StudentID)
	if err != nil {
		return err
	}
	if err := ctl.Validator.EnsureStudentActive(stu); err != nil {
		return err
	}

	// ===== Cek konflik =====
	if err := ctl.Validator.EnsureNISNAvailable(c.UserContext(), nil, stu.SchoolStudentNISN, body.ToSchoolID, stu.SchoolStudentID); err != nil {
		return err
	}
	if err := ctl.Validator.EnsureNoPendingTransfer(c.UserContext(), stu.SchoolStudentID); err != nil {
		return err
	}

	// ===== Bekukan snapshot saat membuat request =====
	rawSnap, err := snapshot.BuildStudentSnapshot(stu).ToJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := tmodel.StudentTransferRequestModel{
		StudentTransferRequestStudentID:           stu.SchoolStudentID,
		StudentTransferRequestFromSchoolID:        schoolID,
		StudentTransferRequestToSchoolID:          body.ToSchoolID,
		StudentTransferRequestInitiatedBySchoolID: schoolID,

		StudentTransferRequestType:   tmodel.TransferTypePush,
		StudentTransferRequestStatus: tmodel.TransferPending,

		StudentTransferRequestReason:          body.Reason,
		StudentTransferRequestNotes:           body.Notes,
		StudentTransferRequestTransferDate:    body.TransferDate,
		StudentTransferRequestDocuments:       pq.StringArray(body.Documents),
		StudentTransferRequestStudentSnapshot: rawSnap,
	}

	// index unik pending bisa menolak race; map jadi 409
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonDBError(c, err)
	}

	resp := dto.FromModelStudentTransferRequest(&m)
	list := []dto.StudentTransferRequestResponse{resp}
	enrichTransferExtras(c.UserContext(), ctl.DB, list)
	return helper.JsonCreated(c, "permintaan transfer dibuat", list[0])
}

// POST /:school_id/student-transfers/pull — pull: sekolah tujuan memprakarsai.
func (ctl *StudentTransferRequestController) CreatePull(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c) // = sekolah tujuan
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}

	var body dto.CreatePullTransferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	source, stu, err := resolveSourceStudent(c.UserContext(), ctl.DB, body.SourceSchoolNPSN, body.StudentNISN)
	if err != nil {
		return err
	}

	if err := ctl.Validator.EnsureCrossSchool(source.SchoolID, schoolID); err != nil {
		return err
	}
	if err := ctl.Validator.EnsureNISNAvailable(c.UserContext(), nil, stu.SchoolStudentNISN, schoolID, stu.SchoolStudentID); err != nil {
		return err
	}
	if err := ctl.Validator.EnsureNoPendingTransfer(c.UserContext(), stu.SchoolStudentID); err != nil {
		return err
	}

	rawSnap, err := snapshot.BuildStudentSnapshot(stu).ToJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := tmodel.StudentTransferRequestModel{
		StudentTransferRequestStudentID:           stu.SchoolStudentID,
		StudentTransferRequestFromSchoolID:        source.SchoolID,
		StudentTransferRequestToSchoolID:          schoolID,
		StudentTransferRequestInitiatedBySchoolID: schoolID,

		StudentTransferRequestType:   tmodel.TransferTypePull,
		StudentTransferRequestStatus: tmodel.TransferPending,

		StudentTransferRequestReason:          body.Reason,
		StudentTransferRequestNotes:           body.Notes,
		StudentTransferRequestTransferDate:    body.TransferDate,
		StudentTransferRequestDocuments:       pq.StringArray(body.Documents),
		StudentTransferRequestStudentSnapshot: rawSnap,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonDBError(c, err)
	}

	resp := dto.FromModelStudentTransferRequest(&m)
	list := []dto.StudentTransferRequestResponse{resp}
	enrichTransferExtras(c.UserContext(), ctl.DB, list)
	return helper.JsonCreated(c, "permintaan transfer (pull) dibuat", list[0])
}

// GET /:school_id/student-transfers/list
func (ctl *StudentTransferRequestController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}

	var q dto.ListStudentTransferQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	// hanya request yang melibatkan sekolah caller (asal atau tujuan)
	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&tmodel.StudentTransferRequestModel{}).
		Where("student_transfer_request_from_school_id = ? OR student_transfer_request_to_school_id = ?",
			schoolID, schoolID)

	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("student_transfer_request_status = ?", strings.ToLower(strings.TrimSpace(*q.Status)))
	}
	if q.StudentID != nil && strings.TrimSpace(*q.StudentID) != "" {
		sid, err := uuid.Parse(strings.TrimSpace(*q.StudentID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("student_transfer_request_student_id = ?", sid)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("student_transfer_request_reason ILIKE ? OR student_transfer_request_notes ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []tmodel.StudentTransferRequestModel
	if err := tx.
		Order("student_transfer_request_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.StudentTransferRequestResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModelStudentTransferRequest(&rows[i]))
	}
	enrichTransferExtras(c.UserContext(), ctl.DB, items)

	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:school_id/student-transfers/:id
func (ctl *StudentTransferRequestController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	m, err := findRequestInScope(c.UserContext(), ctl.DB, id, schoolID)
	if err != nil {
		return err
	}

	list := []dto.StudentTransferRequestResponse{dto.FromModelStudentTransferRequest(m)}
	enrichTransferExtras(c.UserContext(), ctl.DB, list)
	return helper.JsonOK(c, "ok", list[0])
}

// PATCH /:school_id/student-transfers/:id
// Hanya saat pending, hanya oleh sekolah asal.
func (ctl *StudentTransferRequestController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateStudentTransferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := findRequestInScope(c.UserContext(), ctl.DB, id, schoolID)
	if err != nil {
		return err
	}
	if m.StudentTransferRequestStatus != tmodel.TransferPending {
		return helper.JsonError(c, fiber.StatusConflict, "permintaan sudah diproses, tidak bisa diubah")
	}
	if schoolID != m.StudentTransferRequestFromSchoolID {
		return helper.JsonError(c, fiber.StatusForbidden, "hanya sekolah asal yang boleh mengubah permintaan")
	}

	updates := map[string]any{}
	if body.Reason != nil {
		updates["student_transfer_request_reason"] = *body.Reason
		m.StudentTransferRequestReason = *body.Reason
	}
	if body.Notes != nil {
		updates["student_transfer_request_notes"] = *body.Notes
		m.StudentTransferRequestNotes = body.Notes
	}
	if body.TransferDate != nil {
		updates["student_transfer_request_transfer_date"] = *body.TransferDate
		m.StudentTransferRequestTransferDate = body.TransferDate
	}
	if body.Documents != nil {
		updates["student_transfer_request_documents"] = pq.StringArray(body.Documents)
		m.StudentTransferRequestDocuments = pq.StringArray(body.Documents)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "permintaan diperbarui", dto.FromModelStudentTransferRequest(m))
	}

	// Pagar status di WHERE: approve/reject yang menang duluan
	// tidak boleh tertimpa balik jadi pending.
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&tmodel.StudentTransferRequestModel{}).
		Where("student_transfer_request_id = ? AND student_transfer_request_status = ?",
			m.StudentTransferRequestID, tmodel.TransferPending).
		Updates(updates)
	if err := service.RequireAffected(res, "permintaan sudah diproses, tidak bisa diubah"); err != nil {
		return helper.JsonDBError(c, err)
	}
	return helper.JsonUpdated(c, "permintaan diperbarui", dto.FromModelStudentTransferRequest(m))
}

// DELETE /:school_id/student-transfers/:id
// Hanya saat pending, oleh sekolah asal atau inisiator.
func (ctl *StudentTransferRequestController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	if er := helperAuth.EnsureMemberSchool(c, schoolID); er != nil {
		return er
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	m, err := findRequestInScope(c.UserContext(), ctl.DB, id, schoolID)
	if err != nil {
		return err
	}
	if m.StudentTransferRequestStatus != tmodel.TransferPending {
		return helper.JsonError(c, fiber.StatusConflict, "permintaan sudah diproses, tidak bisa dihapus")
	}
	if schoolID != m.StudentTransferRequestFromSchoolID &&
		schoolID != m.StudentTransferRequestInitiatedBySchoolID {
		return helper.JsonError(c, fiber.StatusForbidden, "hanya sekolah asal atau inisiator yang boleh menghapus")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&tmodel.StudentTransferRequestModel{},
			"student_transfer_request_id = ? AND student_transfer_request_status = ?",
			m.StudentTransferRequestID, tmodel.TransferPending)
	if err := service.RequireAffected(res, "permintaan sudah diproses, tidak bisa dihapus"); err != nil {
		return helper.JsonDBError(c, err)
	}
	return helper.JsonDeleted(c, "permintaan dihapus", fiber.Map{"student_transfer_request_id": id})
}
