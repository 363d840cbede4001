package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"library_lending/config"
	"library_lending/db"
	"library_lending/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers read a little shorter.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies. Opened once at startup,
// closed at shutdown; everything downstream receives handles from here
// instead of reaching for globals.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *slog.Logger
	Config config.Config
}

func New(cfg config.Config) (*App, error) {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	dbConn, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("database connected", "host", cfg.DBHost, "db", cfg.DBName)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: dbConn, RDB: rdb, Log: log, Config: cfg}, nil
}

func (a *App) Close() { _ = a.RDB.Close() }
