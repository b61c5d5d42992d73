package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	v1 "github.com/jsarmiento/globetrotter/api/v1"
	"github.com/jsarmiento/globetrotter/internal/config"
	"github.com/jsarmiento/globetrotter/internal/destination"
	"github.com/jsarmiento/globetrotter/internal/game"
	"github.com/jsarmiento/globetrotter/internal/user"
	"github.com/jsarmiento/globetrotter/pkg/db"
	"github.com/jsarmiento/globetrotter/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("file .env not found, using system values")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: cfg.LogLevel,
	})))

	database, rdb, err := db.Init(cfg)
	if err != nil {
		log.Fatalf("error initializing storage: %v", err)
	}
	if err := database.AutoMigrate(
		&user.User{},
		&destination.Destination{},
		&game.GameSession{},
		&game.GameRound{},
	); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	userRepo := user.NewUserRepository(database)
	leaderboard := user.NewLeaderboardCache(rdb, cfg.LeaderboardTTL)
	userService := user.NewUserService(userRepo, leaderboard)

	destRepo := destination.NewDestinationRepository(database)
	destService := destination.NewDestinationService(destRepo)

	hub := websocket.NewHub()
	gameRepo := game.NewGameRepository(database)
	gameService := game.NewGameService(gameRepo, userRepo, destRepo, leaderboard, hub)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = v1.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/api/health", healthHandler)

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"), userService)
	v1.RegisterDestinationRoutes(api.Group("/destinations"), destService)
	v1.RegisterGameRoutes(api.Group("/games"), gameService)
	v1.RegisterAdminRoutes(api.Group("/admin"), cfg, destService)

	wsHandler := websocket.NewHandler(hub, gameService)
	e.GET("/ws/games", wsHandler.Serve)

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
