package jobs

import (
	"context"
	"time"

	"ownplate/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StaleOrderWatchJob periodically reports orders that were placed but not
// reacted to by the restaurant within the configured threshold. The job only
// observes and logs; nudging operators is left to the monitoring pipeline.
type StaleOrderWatchJob struct {
	db        *gorm.DB
	threshold time.Duration
	cron      *cron.Cron
	logger    *zap.SugaredLogger
}

// NewStaleOrderWatchJob creates a job that checks for stale placed orders
// once a minute.
func NewStaleOrderWatchJob(db *gorm.DB, threshold time.Duration, logger *zap.SugaredLogger) *StaleOrderWatchJob {
	return &StaleOrderWatchJob{
		db:        db,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_order_watch_job"),
	}
}

// Start begins the stale order watch job to run every minute.
func (j *StaleOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		var count int64
		err := j.db.WithContext(ctx).Raw(
			"SELECT COUNT(*) FROM orders WHERE status = ? AND time_placed < ?",
			int(order.Placed),
			time.Now().UTC().Add(-j.threshold),
		).Scan(&count).Error
		if err != nil {
			j.logger.Errorw("Stale order check failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.Warnw("Placed orders awaiting restaurant action",
				"count", count,
				"threshold", j.threshold.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Infow("Stale order watch job started (running every minute)")
	return nil
}

// Stop stops the stale order watch job.
func (j *StaleOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.Infow("Stale order watch job stopped")
}
