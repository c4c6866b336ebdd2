package main

import (
	"log"

	"github.com/campsitehq/campsite-service/config"
	"github.com/campsitehq/campsite-service/internal/handler"
	"github.com/campsitehq/campsite-service/internal/idgen"
	"github.com/campsitehq/campsite-service/internal/middleware"
	"github.com/campsitehq/campsite-service/internal/repository"
	"github.com/campsitehq/campsite-service/internal/service"
	"github.com/campsitehq/campsite-service/pkg/database"
	"github.com/campsitehq/campsite-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking lifecycle events for downstream consumers
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("[Main] RABBIT_URL not set, event publishing disabled")
	}

	// Repositories
	scheduleRepo := repository.NewScheduleRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Service
	campsiteSvc := service.NewCampsiteService(
		scheduleRepo,
		reservationRepo,
		idgen.New(cfg.BookingIDAlphabet),
		publisher,
		service.Config{
			MinDaysAdvance:  cfg.MinDaysAdvance,
			MaxDaysAdvance:  cfg.MaxDaysAdvance,
			MaxStayDays:     cfg.MaxStayDays,
			BookingIDLength: cfg.BookingIDLength,
			LockTimeout:     cfg.LockTimeout,
		},
	)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "campsite-service"})
	})

	handler.NewCampsiteHandler(campsiteSvc).RegisterRoutes(e)

	log.Printf("Campsite Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
