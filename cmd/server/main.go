package main

import (
	"database/sql"
	"log"

	"campuschat/config"
	"campuschat/internal/auth"
	"campuschat/internal/chat/repository"
	"campuschat/internal/chat/usecase"
	"campuschat/internal/gateway"
	"campuschat/internal/http/handlers"
	"campuschat/internal/http/middleware"
	"campuschat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	_ = godotenv.Load()

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	repo := repository.NewChatRepository(db, *lg)
	uc := usecase.NewChatUsecase(repo, *lg, *cfg)
	verifier := auth.NewVerifier(cfg)
	gw := gateway.NewGateway(uc, verifier, *lg, cfg.Gateway)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/ws/chat", func(c *gin.Context) {
		gw.HandleWS(c.Writer, c.Request)
	})

	authed := r.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(verifier))

	chatH := &handlers.ChatHandler{UC: uc, Gateway: gw, Logger: *lg}
	chatH.Register(authed)

	lg.Info("listening", "port", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
