package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/scanshelf/scanshelf-backend/internal/barcode"
	"github.com/scanshelf/scanshelf-backend/internal/catalog"
	"github.com/scanshelf/scanshelf-backend/internal/config"
	"github.com/scanshelf/scanshelf-backend/internal/handler"
	"github.com/scanshelf/scanshelf-backend/internal/repository"
	"github.com/scanshelf/scanshelf-backend/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

// exampleBarcodes are well-known codes surfaced to the UI so a fresh install
// has something to try.
var exampleBarcodes = []map[string]string{
	{"barcode": "7622210449283", "label": "Milka Chocolate"},
	{"barcode": "3017620422003", "label": "Nutella"},
	{"barcode": "5449000000996", "label": "Coca-Cola"},
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			return strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:"), nil
		},
	}))

	itemRepo := repository.NewItemRepository(db)
	notifSvc := service.NewNotificationService(itemRepo)
	invSvc := service.NewInventoryService(itemRepo, notifSvc)
	itemHandler := handler.NewItemHandler(invSvc)
	notifHandler := handler.NewNotificationHandler(notifSvc)

	cache := catalog.NewCache(cfg.CacheTTL)
	client := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout, nil)
	resolver := catalog.NewResolver(client, cache)
	scanHandler := handler.NewScanHandler(resolver, barcode.NewDecoder())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/scan", scanHandler.Lookup)
	api.POST("/scan/image", scanHandler.DecodeImage)
	api.POST("/items", itemHandler.Create)
	api.GET("/items", itemHandler.List)
	api.GET("/items/expiring", itemHandler.ListExpiring)
	api.DELETE("/items/:id", itemHandler.Delete)
	api.GET("/notifications", notifHandler.List)
	api.GET("/dashboard", itemHandler.Dashboard)
	api.GET("/examples", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"examples": exampleBarcodes})
	})

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
