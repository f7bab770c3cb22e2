package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/alimikegami/seller-dashboard/config"
	"github.com/alimikegami/seller-dashboard/internal/app"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/database/postgres"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Close()

	server := app.App{
		DB:     db,
		Config: config,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
