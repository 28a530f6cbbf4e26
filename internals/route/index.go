package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "sekolahku_backend/internals/configs"
	achRoute "sekolahku_backend/internals/features/achievements/route"
	stuRoute "sekolahku_backend/internals/features/students/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	helper "sekolahku_backend/internals/helpers"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	storage := helper.NewLocalStorage(configs.PublicDir, configs.AppBaseURL)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up AchievementRoutes...")
	achRoute.AchievementRoutes(app, db, storage)

	log.Println("[INFO] Setting up StudentRoutes...")
	stuRoute.StudentRoutes(app, db, storage)

	log.Println("✅ All routes registered")
}
