package service

import (
	"log/slog"
	"net/http"

	"github.com/auchan-scraper/auchan/internal/export"
	"github.com/auchan-scraper/auchan/storage"
	"github.com/labstack/echo/v4"
)

type Service struct {
	storage *storage.Storage
	config  *Config
}

func New(storage *storage.Storage, config *Config) *Service {
	return &Service{
		storage: storage,
		config:  config,
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")
	api.GET("/products", s.handleListProducts)
	api.GET("/products.csv", s.handleExportProducts)
}

func (s *Service) handleHealth(c echo.Context) error {
	count, err := s.storage.Count(c.Request().Context())
	if err != nil {
		slog.Error("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":      "unhealthy",
			"environment": s.config.Environment,
			"database":    "unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    "connected",
		"products":    count,
	})
}

func (s *Service) handleListProducts(c echo.Context) error {
	products, err := s.storage.SelectAll(c.Request().Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}

	return c.JSON(http.StatusOK, export.FromProducts(products))
}

func (s *Service) handleExportProducts(c echo.Context) error {
	products, err := s.storage.SelectAll(c.Request().Context())
	if err != nil {
		slog.Error("failed to export products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="auchan.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteCSV(c.Response(), export.FromProducts(products))
}
