package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/pranav4002/ACADEMIX/config"
	"github.com/pranav4002/ACADEMIX/db"
	"github.com/pranav4002/ACADEMIX/internal/auth/handler"
	repo "github.com/pranav4002/ACADEMIX/internal/auth/repository/postgres"
	"github.com/pranav4002/ACADEMIX/internal/auth/service"
	"github.com/pranav4002/ACADEMIX/internal/mail"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repo.NewPostgresRepository(pool)
	otpRepo := repo.NewPostgresOTPRepository(pool)
	mailer := mail.NewSMTPMailer(&mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		AppName:  cfg.AppName,
	})

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours, cfg.CookieExpiryDays)
	otpService := service.NewOTPService(userRepo, otpRepo, mailer, cfg.OTPExpiryMinutes, logger)
	userService := service.NewUserService(userRepo, userRepo, otpService, tokenService, mailer, logger)
	authHandler := handler.NewAuthHandler(userService, otpService, tokenService, userRepo, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
