package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/twisterdot/leaderboard/api/middleware"
	v1 "github.com/twisterdot/leaderboard/api/v1"
	"github.com/twisterdot/leaderboard/internal/score"
	"github.com/twisterdot/leaderboard/internal/user"
	"github.com/twisterdot/leaderboard/pkg/db"
	"github.com/twisterdot/leaderboard/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("File .env not found, using system values")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	if err := conn.AutoMigrate(&user.User{}, &score.Record{}); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	rdb, err := db.ConnectRedis(context.Background())
	if err != nil {
		log.Fatalf("error connecting to redis: %v", err)
	}

	hub := websocket.NewHub()

	v1.UserService = user.NewUserService(user.NewGormRepository(conn))
	v1.ScoreService = score.NewScoreService(
		score.NewGormRepository(conn),
		score.NewRedisLeaderboardCache(rdb),
		hub,
	)

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api")
	protected := e.Group("/api", api_middleware.SetupJWTMiddleware())
	v1.RegisterUserRoutes(api, protected)
	v1.RegisterScoreRoutes(api, protected)

	e.GET("/ws/leaderboard", hub.LeaderboardFeedHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
