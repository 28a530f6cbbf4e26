package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achController "sekolahku_backend/internals/features/achievements/controller"
	helper "sekolahku_backend/internals/helpers"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// AchievementRoutes mendaftarkan seluruh endpoint prestasi.
// Rute statis (/meta, /count) wajib terdaftar SEBELUM wildcard /:idOrSlug.
func AchievementRoutes(app *fiber.App, db *gorm.DB, st helper.Storage) {
	ctrl := achController.NewAchievementController(db, st)

	api := app.Group("/api/achievements")

	// Publik
	api.Get("/", ctrl.Index)
	api.Get("/meta", ctrl.Meta)
	api.Get("/count", ctrl.Count)
	api.Get("/:idOrSlug", ctrl.Show)

	// Mutasi butuh token
	protected := app.Group("/api/achievements", authMw.AuthMiddleware(db))
	protected.Post("/", ctrl.Store)
	protected.Put("/:id", ctrl.Update)
	protected.Patch("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Destroy)
}
