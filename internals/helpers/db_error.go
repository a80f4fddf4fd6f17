// file: internals/helpers/db_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

/* ===============================
   Mapping SQLSTATE → HTTP

   Index unik parsial (pending per siswa, NISN aktif) memukul
   balik sebagai 23505; biarkan jadi 409 yang bisa dibaca user,
   bukan 500 mentah.
=================================*/

func sqlstateToHTTP(code, fallbackMsg string) (int, string) {
	switch code {
	case "23505":
		return fiber.StatusConflict, "Data duplikat (unique violation)."
	case "23503":
		return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23P01":
		return fiber.StatusConflict, "Bentrok data (exclusion violation)."
	default:
		return fiber.StatusInternalServerError, fallbackMsg
	}
}

// TranslateDBError memetakan error driver (pgx maupun lib/pq) ke status+pesan.
func TranslateDBError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return sqlstateToHTTP(pgxErr.Code, pgxErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return sqlstateToHTTP(string(pqErr.Code), pqErr.Error())
	}
	return fiber.StatusInternalServerError, err.Error()
}

// JsonDBError: shortcut controller untuk error dari gorm/driver.
// *fiber.Error diteruskan apa adanya (status dari validator/flow).
func JsonDBError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	status, msg := TranslateDBError(err)
	return JsonError(c, status, msg)
}
