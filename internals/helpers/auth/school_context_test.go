// file: internals/helpers/auth/school_context_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jalankan handler di dalam app fiber dengan locals yang sudah diisi,
// meniru hasil kerja middleware AuthJWT.
func runWithLocals(t *testing.T, path, reqPath string, locals map[string]any, h fiber.Handler) int {
	t.Helper()
	app := fiber.New()
	app.Get(path, func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		return h(c)
	})
	resp, err := app.Test(httptest.NewRequest("GET", reqPath, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGetUserIDFromToken(t *testing.T) {
	uid := uuid.New()

	status := runWithLocals(t, "/x", "/x",
		map[string]any{LocUserID: uid.String()},
		func(c *fiber.Ctx) error {
			got, err := GetUserIDFromToken(c)
			require.NoError(t, err)
			assert.Equal(t, uid, got)
			return c.SendStatus(fiber.StatusOK)
		})
	assert.Equal(t, fiber.StatusOK, status)

	// tanpa locals → 401
	status = runWithLocals(t, "/x", "/x", nil, func(c *fiber.Ctx) error {
		_, err := GetUserIDFromToken(c)
		return err
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestParseSchoolIDFromPath(t *testing.T) {
	sid := uuid.New()

	status := runWithLocals(t, "/:school_id/things", "/"+sid.String()+"/things", nil,
		func(c *fiber.Ctx) error {
			got, err := ParseSchoolIDFromPath(c)
			require.NoError(t, err)
			assert.Equal(t, sid, got)
			return c.SendStatus(fiber.StatusOK)
		})
	assert.Equal(t, fiber.StatusOK, status)

	status = runWithLocals(t, "/:school_id/things", "/bukan-uuid/things", nil,
		func(c *fiber.Ctx) error {
			_, err := ParseSchoolIDFromPath(c)
			return err
		})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestEnsureMemberSchool(t *testing.T) {
	member := uuid.New()
	other := uuid.New()

	// lewat daftar school_ids
	status := runWithLocals(t, "/x", "/x",
		map[string]any{LocSchoolIDs: []string{member.String()}},
		func(c *fiber.Ctx) error {
			if err := EnsureMemberSchool(c, member); err != nil {
				return err
			}
			return c.SendStatus(fiber.StatusOK)
		})
	assert.Equal(t, fiber.StatusOK, status)

	// fallback active_school_id
	status = runWithLocals(t, "/x", "/x",
		map[string]any{LocActiveSchoolID: member.String()},
		func(c *fiber.Ctx) error {
			if err := EnsureMemberSchool(c, member); err != nil {
				return err
			}
			return c.SendStatus(fiber.StatusOK)
		})
	assert.Equal(t, fiber.StatusOK, status)

	// bukan anggota → 403
	status = runWithLocals(t, "/x", "/x",
		map[string]any{LocSchoolIDs: []string{member.String()}},
		func(c *fiber.Ctx) error {
			if err := EnsureMemberSchool(c, other); err != nil {
				return err
			}
			return c.SendStatus(fiber.StatusOK)
		})
	assert.Equal(t, fiber.StatusForbidden, status)
}
