package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stuCtl "sekolahku_backend/internals/features/students/controller"
	helper "sekolahku_backend/internals/helpers"
)

// StudentRoutes memasang endpoint baca dokumen kelulusan (publik).
func StudentRoutes(app *fiber.App, db *gorm.DB, st helper.Storage) {
	h := stuCtl.NewGraduatedDocumentController(db, st)

	grp := app.Group("/api/students")
	grp.Get("/graduated", h.Index)
	grp.Get("/graduated/:nisn", h.Show)
}
