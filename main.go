package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/prashanthm/portfolio/internal/analytics"
	"github.com/prashanthm/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Visitor rows older than this are removed at startup.
const visitorRetention = 365 * 24 * time.Hour

type app struct {
	cfg        config
	views      *session.Store
	stats      *analytics.Store // nil when analytics is off
	adminToken string
}

func newApp(cfg config) (*app, error) {
	a := &app{
		cfg:   cfg,
		views: session.NewStore(cfg.ViewTTL, cfg.MaxViews),
	}
	if cfg.Analytics {
		stats, err := analytics.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		token, err := newAdminToken()
		if err != nil {
			stats.Close()
			return nil, err
		}
		a.stats = stats
		a.adminToken = token
	}
	return a, nil
}

func (a *app) Close() error {
	if a.stats == nil {
		return nil
	}
	return a.stats.Close()
}

func (a *app) router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to load static assets:", err)
	}
	r.StaticFS("/static", http.FS(static))

	if a.stats != nil {
		r.Use(a.visitorTrackingMiddleware())
	}

	a.setupPortfolioRoutes(r)
	a.setupAdminRoutes(r)
	return r
}

func main() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.views.Run(ctx, time.Minute)
	if a.stats != nil {
		go func() {
			if _, err := a.stats.Cleanup(ctx, visitorRetention); err != nil {
				log.Printf("Error cleaning up old visitor data: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: a.router(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Printf("Portfolio listening on :%s", cfg.Port)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down: %v", err)
	}
}
