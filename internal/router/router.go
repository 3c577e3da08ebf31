package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/handler"
	"article-cms/internal/metrics"
	"article-cms/internal/middleware"
	"article-cms/internal/repository"
	"article-cms/internal/service"
	"article-cms/internal/view"
	"article-cms/web"
)

// Config holds router dependencies
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	BasePath string
	Metrics  *metrics.Metrics

	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Services built from DB when nil
	ArticleService service.ArticleService
	CommentService service.CommentService

	// DeletePolicy decides what a failed comment delete means. Defaults to BestEffortDelete.
	DeletePolicy service.DeletePolicy
}

// Setup configures and returns the Gin router
func Setup(cfg Config) (*gin.Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	articleService, commentService, err := services(cfg)
	if err != nil {
		return nil, err
	}

	urls := view.NewURLs(cfg.BasePath)
	tmpl, err := view.LoadTemplates(web.FS, urls)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger, handler.TemplateServerError))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	renderer := view.TemplateRenderer{}
	articleHandler := handler.NewArticleHandler(articleService, renderer, urls, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.DeletePolicy, renderer, urls, cfg.Metrics, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	metricsHandler := gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	// Probes and scrape endpoint at root
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)

	pages := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		pages.GET("/health", healthHandler.Health)
		pages.GET("/ready", healthHandler.Ready)
		pages.GET("/metrics", metricsHandler)
	}

	handlers := handler.Pages(articleHandler, commentHandler)
	for _, route := range view.Routes {
		h, ok := handlers[route.Name]
		if !ok {
			return nil, errors.New("router: no handler for route " + route.Name)
		}
		for _, method := range route.Methods {
			switch method {
			case http.MethodGet:
				pages.GET(route.Path, h.GET)
			case http.MethodPost:
				pages.POST(route.Path, h.POST)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		renderer.Render(handler.TemplateNotFound, gin.H{}).
			WithStatus(http.StatusNotFound).
			Send(c)
	})

	return r, nil
}

func services(cfg Config) (service.ArticleService, service.CommentService, error) {
	articleService, commentService := cfg.ArticleService, cfg.CommentService
	if articleService != nil && commentService != nil {
		return articleService, commentService, nil
	}
	if cfg.DB == nil {
		return nil, nil, errors.New("router: a database is required when services are not provided")
	}

	articleRepo := repository.NewArticleRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	categoryRepo := repository.NewCategoryRepository(cfg.DB)

	if articleService == nil {
		articleService = service.NewArticleService(articleRepo, categoryRepo, cfg.Metrics, cfg.Logger)
	}
	if commentService == nil {
		commentService = service.NewCommentService(commentRepo, articleRepo, cfg.Metrics, cfg.Logger)
	}
	return articleService, commentService, nil
}
