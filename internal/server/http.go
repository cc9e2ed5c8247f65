package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/core/port"
	"github.com/zyzyva/mailqueue/internal/handler"
)

type HTTPServer struct {
	echo          *echo.Echo
	mailerService port.MailerService
}

func NewHTTPServer(mailerService port.MailerService) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("Request handled")
			return nil
		},
	}))

	server := &HTTPServer{
		echo:          e,
		mailerService: mailerService,
	}

	// Initialize handlers
	sendHandler := handler.NewSendHTTPHandler(mailerService, validator.New())

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/emails/send", sendHandler.Handle())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "sender",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
