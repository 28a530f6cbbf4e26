// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "sekolahku_backend/internals/features/users/auth/controller"
	middlewares "sekolahku_backend/internals/middlewares"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authCtl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), h.LoginGoogle)
	grp.Post("/logout", authMw.AuthMiddleware(db), h.Logout)
}
