package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "Backend-Medical-Intake/docs"
	"Backend-Medical-Intake/src/app"
	"Backend-Medical-Intake/src/config"
	"Backend-Medical-Intake/src/database"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("⚠️ Unknown LOG_LEVEL %q, keeping info", cfg.LogLevel)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	storage, closer := app.OpenLedgerStorage(ctx, cfg)
	defer closer.Close()

	deps := app.Deps{
		Ledger:         ledger.New(storage),
		AllowedOrigins: cfg.AllowedOrigins,
	}

	// เชื่อมต่อกับ MongoDB
	var client *mongo.Client
	if cfg.MongoURI != "" {
		var err error
		client, err = database.ConnectMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			logger.Warnf("⚠️ Running in local mode: %v", err)
		}
	} else {
		logger.Warnf("⚠️ MONGO_URI not set, running in local mode")
	}
	cancel()

	if client != nil {
		deps.Forms = database.NewMongoCollection[models.Form](
			database.GetCollection(client, cfg.MongoDB, database.FormsCollection))
		deps.Responses = database.NewMongoCollection[models.Response](
			database.GetCollection(client, cfg.MongoDB, database.ResponsesCollection))
		defer client.Disconnect(context.Background())
	}

	server := app.New(deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("🛑 Shutting down server")
		if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Errorf("❌ Shutdown error: %v", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	logger.Infof("🚀 Server is running on port %s", cfg.AppURI)
	if err := server.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		logger.Fatalf("❌ Server stopped: %v", err)
	}
}
