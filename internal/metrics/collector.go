package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Counter is satisfied by repositories that can count their rows
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector refreshes the business gauges from the store
type BusinessMetricsCollector struct {
	articles Counter
	comments Counter
	metrics  *Metrics
	logger   *zap.Logger
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(articles, comments Counter, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		articles: articles,
		comments: comments,
		metrics:  metrics,
		logger:   logger,
	}
}

// Collect counts articles and comments and updates the gauges.
// Failures are logged and leave the previous gauge value in place.
func (c *BusinessMetricsCollector) Collect(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if count, err := c.articles.Count(ctx); err != nil {
		c.logger.Error("Failed to count articles", zap.Error(err))
	} else {
		c.metrics.SetArticlesTotal(count)
	}

	if count, err := c.comments.Count(ctx); err != nil {
		c.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		c.metrics.SetCommentsTotal(count)
	}
}
