package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/database"
	"fuelstation-backend/internal/router"
	"fuelstation-backend/internal/sales"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func setupLogger(cfg *config.Config) {
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
	}

	gate, err := auth.NewRoleGate(map[auth.Role]string{
		auth.RoleProprietor: cfg.ProprietorPassword,
		auth.RoleManager:    cfg.ManagerPassword,
		auth.RoleSupervisor: cfg.SupervisorPassword,
	}, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash role passwords")
	}

	auditSvc := audit.NewService(db)
	pending := sales.NewPendingDeleter(cfg.DeleteUndoWindow)
	salesSvc := sales.NewService(sales.NewRepository(db), pending, auditSvc, sales.Options{
		SupervisorHistoryLimit: cfg.SupervisorHistoryLimit,
	})

	app := router.New(router.Deps{
		Config:   cfg,
		Gate:     gate,
		Sessions: auth.NewSessionStore(cfg.SessionTTL),
		Audit:    auditSvc,
		Sales:    salesSvc,
	})

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("station", cfg.StationID.String()).Msg("fuel station backend listening")
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// a delete still inside its undo window is dropped, matching a cancel
	if op, ok := pending.Current(); ok {
		log.Warn().Str("entry", op.Key).Msg("pending delete dropped on shutdown")
	}
	pending.Stop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server exited")
}
