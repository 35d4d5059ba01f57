package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	authapp "github.com/jhoicas/Documentos-api/internal/application/auth"
	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/application/documents"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/memstore"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/renderer"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/telegram"
	httpRouter "github.com/jhoicas/Documentos-api/internal/interfaces/http"
	"github.com/jhoicas/Documentos-api/pkg/config"
	"github.com/jhoicas/Documentos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	stopSweep := make(chan struct{})
	sessionRepo := memstore.NewSessionRepository(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	sessionRepo.StartSweeper(time.Minute, stopSweep)

	backendClient := renderer.NewBackendClient(cfg.Backend.BaseURL)
	authClient := telegram.NewAuthClient(cfg.Backend.BaseURL)

	builderUC := builder.NewUseCase(sessionRepo)
	documentsUC := documents.NewUseCase(builderUC, sessionRepo, backendClient)
	authUC := authapp.NewUseCase(sessionRepo, authClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Documentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BuilderUC:   builderUC,
		DocumentsUC: documentsUC,
		AuthUC:      authUC,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			Issuer:     cfg.App.Name,
			TTLMinutes: cfg.Session.TTLMinutes,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(stopSweep)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
