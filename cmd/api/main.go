package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aladinbarber/booking-api/internal/config"
	dbpkg "github.com/aladinbarber/booking-api/internal/db"
	"github.com/aladinbarber/booking-api/internal/live"
	"github.com/aladinbarber/booking-api/internal/notify"
	"github.com/aladinbarber/booking-api/internal/routes"
	"github.com/aladinbarber/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.Init(cfg.Timezone)

	db := dbpkg.NewDB(cfg)
	dbpkg.Seed(db)

	// Redis is optional: without it, live updates stay in-process.
	broadcaster := live.NewBroadcaster(live.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))

	var notifier notify.Notifier = notify.Nop{}
	if cfg.AmqpURL != "" {
		notifier = notify.NewAmqpNotifier(cfg.AmqpURL)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, broadcaster, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
