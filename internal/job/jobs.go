package job

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/database"
	"article-cms/internal/metrics"
)

// Job names
const (
	StatsJob = "stats"
	SweepJob = "sweep"
)

// Collector refreshes gauges from the store
type Collector interface {
	Collect(ctx context.Context)
}

// Sweeper removes comments whose article no longer exists
type Sweeper interface {
	SweepDangling(ctx context.Context) (int64, error)
}

// Stats refreshes the business gauges and the connection pool gauges
func Stats(collector Collector, db *gorm.DB, recorder database.MetricsRecorder) Func {
	return func(ctx context.Context) error {
		collector.Collect(ctx)
		return database.CollectStats(db, recorder)
	}
}

// Sweep removes dangling comments and logs how many went
func Sweep(sweeper Sweeper, logger *zap.Logger) Func {
	return func(ctx context.Context) error {
		removed, err := sweeper.SweepDangling(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Warn("Removed dangling comments", zap.Int64("count", removed))
		}
		return nil
	}
}

// Compile-time check that the metrics collector can drive the stats job
var _ Collector = (*metrics.BusinessMetricsCollector)(nil)
