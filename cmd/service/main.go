// @title        Item Catalog API
// @version      1.0
// @description  Google-OAuth item catalog with public JSON read endpoints
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"item-catalog/internal/cache"
	"item-catalog/internal/config"
	"item-catalog/internal/database"
	"item-catalog/internal/provider"
	"item-catalog/internal/router"
	"item-catalog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "item-catalog/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newRenderer     = view.New
	newProvider     = func(cfg *config.Config) provider.Provider {
		return provider.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.RedirectURL())
	}
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config load failed: %v", err)
	}

	// The session middleware verifies against this env var directly.
	if err := os.Setenv("SESSION_SECRET", cfg.SessionSecret); err != nil {
		return fmt.Errorf("setting session secret: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("template parsing failed: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, newProvider(cfg))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
