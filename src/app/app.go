// Package app assembles the Fiber application from its stores and services.
package app

import (
	"context"
	"io"

	"Backend-Medical-Intake/src/config"
	"Backend-Medical-Intake/src/controllers"
	"Backend-Medical-Intake/src/database"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/routes"
	"Backend-Medical-Intake/src/services/availability"
	"Backend-Medical-Intake/src/services/formstore"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/services/settings"
	"Backend-Medical-Intake/src/services/status"
	"Backend-Medical-Intake/src/services/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Deps is everything the HTTP layer is built from. Forms and Responses may
// be nil when no remote database is configured.
type Deps struct {
	Forms          database.Collection[models.Form]
	Responses      database.Collection[models.Response]
	Ledger         *ledger.Ledger
	Probe          availability.Checker
	AllowedOrigins string
}

// New wires stores, services and controllers into a ready to listen app.
func New(d Deps) *fiber.App {
	probe := d.Probe
	if probe == nil {
		probe = availability.NewProbe(d.Forms)
	}

	store := formstore.New(probe, d.Forms, d.Responses, d.Ledger)
	templateSvc := templates.NewService(store)
	settingsSvc := settings.NewService(d.Ledger)
	statusSvc := status.NewService(probe, d.Ledger)

	app := fiber.New(fiber.Config{
		AppName:      "Medical Intake Forms",
		ErrorHandler: errorHandler,
	})

	origins := d.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Handlers{
		Forms:     controllers.NewFormController(store),
		Responses: controllers.NewResponseController(store),
		Templates: controllers.NewTemplateController(templateSvc),
		Settings:  controllers.NewSettingsController(settingsSvc),
		Status:    controllers.NewStatusController(statusSvc),
	})
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		logger.WithError(err).Error("❌ Unhandled request error")
	}
	return c.Status(code).JSON(models.ErrorResponse{Status: code, Message: err.Error()})
}

// OpenLedgerStorage picks the ledger backend named by cfg.LedgerDriver.
// A Redis backend that cannot be reached falls back to SQLite, and SQLite
// falls back to memory, so the app always has somewhere to write.
func OpenLedgerStorage(ctx context.Context, cfg config.Config) (ledger.Storage, io.Closer) {
	switch cfg.LedgerDriver {
	case config.LedgerMemory:
		logger.Warnf("⚠️ Ledger is in memory, local data is lost on restart")
		return ledger.NewMemoryStorage(), nopCloser{}
	case config.LedgerRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisURI)
		if err == nil {
			logger.Info("✅ Ledger using Redis")
			s := ledger.NewRedisStorage(client, "intake:")
			return s, s
		}
		logger.Warnf("⚠️ Redis ledger unavailable, falling back to SQLite: %v", err)
	}

	db, err := database.OpenSQLite(cfg.LedgerDir)
	if err == nil {
		var s *ledger.SQLiteStorage
		if s, err = ledger.NewSQLiteStorage(db); err == nil {
			logger.Infof("✅ Ledger using SQLite in %s", cfg.LedgerDir)
			return s, s
		}
		db.Close()
	}
	logger.Errorf("❌ SQLite ledger unavailable, using memory: %v", err)
	return ledger.NewMemoryStorage(), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
