package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/internal/config"
	httpx "github.com/dheerendra45/news-analyzer/internal/http"
	"github.com/dheerendra45/news-analyzer/internal/http/handlers"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
)

// sweepInterval is how often expired OTP challenges are reaped from the
// memory store. The redis store relies on key TTLs instead.
const sweepInterval = time.Minute

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	// Initialize handlers
	authH := handlers.NewAuthHandlers(c.AuthSvc, c.UploadSvc)
	newsH := handlers.NewNewsHandlers(c.NewsRepo)
	reportH := handlers.NewReportHandlers(c.ReportRepo)
	cardH := handlers.NewCardHandlers(c.CardRepo)
	subH := handlers.NewSubscriptionHandlers(c.SubRepo)

	// Initialize middleware
	authMW := middleware.NewAuthMW(c.TokenSvc)

	// Build router
	r := httpx.BuildRouter(authH, newsH, reportH, cardH, subH, authMW, cfg.UploadDir)

	if cfg.OTPStore == "memory" {
		go sweepChallenges(ctx, c)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

func sweepChallenges(ctx context.Context, c *Container) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.OTPSvc.SweepExpired(ctx); err != nil {
				log.Printf("OTP_SWEEP_FAILED: err=%v", err)
			}
		}
	}
}
