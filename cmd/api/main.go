package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CarePulseLabs/clinic-scheduler/internal/cache"
	"github.com/CarePulseLabs/clinic-scheduler/internal/config"
	dbpkg "github.com/CarePulseLabs/clinic-scheduler/internal/db"
	"github.com/CarePulseLabs/clinic-scheduler/internal/logger"
	"github.com/CarePulseLabs/clinic-scheduler/internal/middleware"
	"github.com/CarePulseLabs/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.IsProduction())
	log := logger.Get()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
