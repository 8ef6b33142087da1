package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"boardinghouse-backend/config"
	"boardinghouse-backend/internal/api"
	"boardinghouse-backend/internal/db"
	"boardinghouse-backend/internal/seed"
	"boardinghouse-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "boardingd",
		Short: "Boarding house dashboard backend",
	}

	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("no configuration found at %s; using defaults", configPath)
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	log.Printf("configuration loaded from %s", configPath)
	return cfg, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return gormDB, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stdout, "boardingd ", log.LstdFlags)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gormDB, err := openDB(cfg)
			if err != nil {
				return err
			}
			appStore := store.NewGormStore(gormDB)
			seeder := seed.NewService(appStore.DB(), cfg.Seed)

			router := api.NewRouter(appStore, seeder, &cfg.Server)
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
				Handler: router,
			}

			go func() {
				logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatalf("HTTP server ListenAndServe: %v", err)
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop
			logger.Println("Shutdown signal received, stopping services...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server shutdown: %w", err)
			}

			logger.Println("Server gracefully stopped")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with the demo dataset",
		Long: "Clears tenants, rooms and payments and rebuilds the demo snapshot. " +
			"Destructive; intended to run offline, not against a live server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gormDB, err := openDB(cfg)
			if err != nil {
				return err
			}

			result, err := seed.NewService(gormDB, cfg.Seed).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			log.Printf("seeded %d tenants, %d rooms, %d payments", result.Tenants, result.Rooms, result.Payments)
			return nil
		},
	}
}
