package main

import (
	"log"
	"strings"

	"personel-backend/internal/admin"
	"personel-backend/internal/auth"
	"personel-backend/internal/config"
	"personel-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		// Refresh cookie'si için gerekli
		AllowCredentials: true,
	}))

	// Public auth
	app.Post("/auth/register", auth.RegisterHandler(cfg))
	app.Post("/auth/login", auth.LoginHandler(cfg))
	app.Post("/auth/refresh", auth.RefreshHandler(cfg))
	app.Post("/auth/logout", auth.LogoutHandler())

	// Bearer token gerektiren route'lar
	app.Get("/auth/me", auth.RequireAuth(cfg), auth.MeHandler())

	// Güvenlik anahtarı yönetimi (sadece admin)
	keys := app.Group("/auth/security-keys", auth.RequireAuth(cfg), auth.RequireAdmin())
	keys.Post("/", auth.CreateSecurityKeyHandler())
	keys.Get("/", auth.ListSecurityKeysHandler())
	keys.Delete("/:id", auth.DeleteSecurityKeyHandler())

	// Çalışan yönetimi (sadece admin)
	adminRoutes := app.Group("/admin", auth.RequireAuth(cfg), auth.RequireAdmin())
	adminRoutes.Get("/employees", admin.ListEmployeesHandler())
	adminRoutes.Delete("/employees/:id", admin.DeleteEmployeeHandler())
	adminRoutes.Patch("/employees/:id/suspend", admin.SuspendEmployeeHandler())

	// DB bağlantı testi
	app.Get("/test-db", func(c *fiber.Ctx) error {
		var result int
		if err := database.DB.Raw("SELECT 1").Scan(&result).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veritabanı bağlantısı başarısız")
		}
		return c.JSON(fiber.Map{"db_status": "connected", "result": result})
	})

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
