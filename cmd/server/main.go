package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/redis/go-redis/v9"

	"github.com/istvank-dev/Project-Tracking-Software/internal/api"
	"github.com/istvank-dev/Project-Tracking-Software/internal/config"
	"github.com/istvank-dev/Project-Tracking-Software/internal/db"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
	"github.com/istvank-dev/Project-Tracking-Software/internal/service"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	m := gormigrate.New(gdb, gormigrate.DefaultOptions, db.Migrations())
	if err := m.Migrate(); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	users := repository.NewUserRepository(gdb)
	projects := repository.NewProjectRepository(gdb)
	boards := repository.NewKanbanRepository(gdb)
	notes := repository.NewNoteRepository(gdb)

	authSvc := service.NewAuthService(users, rdb, cfg.JWTSecret)
	projectSvc := service.NewProjectService(users, projects)
	kanbanSvc := service.NewKanbanService(projects, boards, users)
	noteSvc := service.NewNoteService(projects, notes)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), api.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowOrigins, ","),
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
	}))

	h := api.New(authSvc, projectSvc, kanbanSvc, noteSvc, cfg.CookieSecure)
	h.Register(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
