// file: internals/helpers/auth/school_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals keys (diisi middleware AuthJWT)
   ============================================ */

const (
	LocUserID         = "user_id"          // string UUID
	LocSchoolIDs      = "school_ids"       // []string | []any
	LocActiveSchoolID = "active_school_id" // string UUID
)

var (
	ErrSchoolContextMissing   = fiber.NewError(fiber.StatusBadRequest, "School context tidak ditemukan. Sertakan :school_id di path.")
	ErrSchoolContextForbidden = fiber.NewError(fiber.StatusForbidden, "Anda bukan anggota sekolah ini.")
)

// GetUserIDFromToken membaca user_id dari locals hasil AuthJWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ada di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetSchoolIDsFromToken membaca daftar sekolah yang boleh diakses user.
func GetSchoolIDsFromToken(c *fiber.Ctx) ([]uuid.UUID, error) {
	raw := c.Locals(LocSchoolIDs)
	if raw == nil {
		return nil, nil
	}
	var ss []string
	switch t := raw.(type) {
	case []string:
		ss = t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok {
				ss = append(ss, s)
			}
		}
	case string:
		ss = []string{t}
	}
	out := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			out = append(out, id)
		}
	}
	return out, nil
}

// ParseSchoolIDFromPath mengambil :school_id (tenant yang sedang di-act-kan).
func ParseSchoolIDFromPath(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("school_id"))
	if raw == "" {
		return uuid.Nil, ErrSchoolContextMissing
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
	}
	return id, nil
}

// EnsureMemberSchool memastikan caller adalah anggota sekolah tsb.
func EnsureMemberSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	ids, err := GetSchoolIDsFromToken(c)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == schoolID {
			return nil
		}
	}
	// fallback: single active school claim
	if s, ok := c.Locals(LocActiveSchoolID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil && id == schoolID {
			return nil
		}
	}
	return ErrSchoolContextForbidden
}
