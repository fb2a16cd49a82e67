package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrirubim/laserpack/internal/config"
	"github.com/adrirubim/laserpack/internal/database"
	"github.com/adrirubim/laserpack/internal/handlers"
	"github.com/adrirubim/laserpack/internal/models"
	"github.com/adrirubim/laserpack/internal/services/las"
	"github.com/adrirubim/laserpack/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},

		// Article aggregate
		&models.Article{},
		&models.Offer{},
		&models.Category{},
		&models.PalletType{},
		&models.PalletSheet{},
		&models.QualityModel{},

		// Article children
		&models.Material{},
		&models.Machinery{},
		&models.MachineryParameter{},
		&models.CriticalIssue{},
		&models.PackagingInstruction{},
		&models.OperatingInstruction{},
		&models.PalletizingInstruction{},
		&models.CheckMaterial{},
		&models.ProductionOrder{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Start the dashboard event hub
	hub := websocket.NewHub()
	go hub.Run()

	// 5. Set up HTTP router
	router := handlers.NewRouter(db, cfg, hub)

	// 6. Start LAS Sync Service (Background)
	lasService := las.NewSyncService(db, hub, las.Config{
		URL:          cfg.LAS.URL,
		Database:     cfg.LAS.Database,
		Username:     cfg.LAS.Username,
		Password:     cfg.LAS.Password,
		SyncInterval: cfg.LAS.SyncInterval,
	})
	lasService.Start()

	// 7. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Stop LAS sync service
	lasService.Stop()

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
