// file: internals/features/school/transfers/route/transfer_routes.go
package route

import (
	"sekolahku_backend/internals/features/school/transfers/controller"
	"sekolahku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentTransferRoutes — semua endpoint perpindahan siswa antar sekolah.
// Dipasang di bawah group admin: /api/a/:school_id/student-transfers
func StudentTransferRoutes(api fiber.Router, db *gorm.DB) {
	reqCtl := controller.NewStudentTransferRequestController(db)
	actCtl := controller.NewStudentTransferActionController(db)
	lookupCtl := controller.NewStudentTransferLookupController(db)

	g := api.Group("/:school_id/student-transfers")

	// CRUD request
	g.Post("/", reqCtl.CreatePush)
	g.Post("/pull", reqCtl.CreatePull)
	g.Get("/lookup", middlewares.LookupRateLimiter(), lookupCtl.Lookup)
	g.Get("/list", reqCtl.List)
	g.Get("/:id", reqCtl.GetByID)
	g.Patch("/:id", reqCtl.Update)
	g.Delete("/:id", reqCtl.Delete)

	// Aksi state machine
	g.Post("/:id/approve", actCtl.Approve)
	g.Post("/:id/reject", actCtl.Reject)
	g.Post("/:id/complete", actCtl.Complete)
	g.Post("/:id/cancel", actCtl.Cancel)
}
