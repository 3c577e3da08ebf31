package database

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start_time"

// MetricsRecorder receives timings for every statement GORM executes
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	registrations := []func() error{
		func() error { return cb.Query().Before("gorm:query").Register("metrics:select_before", markStart) },
		func() error { return cb.Query().After("gorm:query").Register("metrics:select_after", observe("select", recorder)) },
		func() error { return cb.Create().Before("gorm:create").Register("metrics:insert_before", markStart) },
		func() error { return cb.Create().After("gorm:create").Register("metrics:insert_after", observe("insert", recorder)) },
		func() error { return cb.Update().Before("gorm:update").Register("metrics:update_before", markStart) },
		func() error { return cb.Update().After("gorm:update").Register("metrics:update_after", observe("update", recorder)) },
		func() error { return cb.Delete().Before("gorm:delete").Register("metrics:delete_before", markStart) },
		func() error { return cb.Delete().After("gorm:delete").Register("metrics:delete_after", observe("delete", recorder)) },
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func markStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func observe(operation string, recorder MetricsRecorder) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// CollectStats pushes the current connection pool stats to the recorder
func CollectStats(db *gorm.DB, recorder MetricsRecorder) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	recorder.UpdateDBStats(sqlDB.Stats())
	return nil
}
