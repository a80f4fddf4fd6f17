// file: internals/features/school/transfers/service/guarded_write.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAffected menilai hasil mutasi berpagar status
// (WHERE ... AND status = ...). Nol baris berarti transisi lain
// menang duluan dan status sudah bergeser: itu konflik (409),
// bukan no-op diam-diam.
func RequireAffected(res *gorm.DB, conflictMsg string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	}
	return nil
}
