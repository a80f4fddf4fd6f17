// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	schoolkuMiddleware "sekolahku_backend/internals/middlewares/auth_school"

	transferRoute "sekolahku_backend/internals/features/school/transfers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + school scope)...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up StudentTransferRoutes...")
	transferRoute.StudentTransferRoutes(admin, db)
}
