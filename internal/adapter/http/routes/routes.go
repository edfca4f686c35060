package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	_ "appraisal_booking/docs"
	"appraisal_booking/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router *gin.Engine

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	setMode(cfg.Server.Mode)

	h, cleanup := buildHandlers(ctx, cfg)
	defer cleanup()

	router = NewRouter(h)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes] listening addr=%s mode=%s", cfg.Server.Addr, gin.Mode())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("[routes] shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the engine with middlewares, swagger and every /v1 route.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(h.TrustedProxies); err != nil {
		log.Printf("[routes] invalid trusted proxies %v; trusting none err=%v", h.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	setMiddlewares(r)

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addAdminRoutes(v1, h)
	addFunctionRoutes(r, h)
	return r
}

func setMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
