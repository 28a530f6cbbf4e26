package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "sekolahku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar aplikasi (urutan penting:
// recovery paling awal supaya panic di middleware lain ikut tertangkap).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
