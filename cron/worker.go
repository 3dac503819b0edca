package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"pawcare/config"
	seriesRepo "pawcare/database/repository/series"
	"pawcare/services/recurring"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitTopUpWorker runs the async worker and the periodic scan scheduler in
// the background. The worker keeps every active series topped up to its
// rolling window of future bookings.
func InitTopUpWorker(recurringSvc recurring.RecurringService, series seriesRepo.SeriesRepository) {
	opts := redisOpts()

	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	enqueuer := NewEnqueuer()

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSeriesTopUp, handleSeriesTopUp(recurringSvc))
	mux.HandleFunc(TypeTopUpScan, handleTopUpScan(series, enqueuer))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TopUpWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TopUpWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TopUpWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Periodic scan that fans out per-series top-ups.
	go func() {
		scheduler := asynq.NewScheduler(opts, nil)
		task := asynq.NewTask(TypeTopUpScan, nil)
		if _, err := scheduler.Register(config.AppConfig.TopUpCronSpec, task); err != nil {
			log.Printf("[TopUpWorker] ❌ Failed to register top-up scan: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[TopUpWorker] ❌ Scheduler stopped: %v", err)
		}
	}()
}

func handleSeriesTopUp(recurringSvc recurring.RecurringService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p TopUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TopUpHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		result, err := recurringSvc.TopUpSeries(p.SeriesID)
		if err != nil {
			// A series deleted or cancelled between enqueue and execution is
			// not a retryable failure.
			if errors.Is(err, recurring.ErrSeriesNotFound) || errors.Is(err, recurring.ErrSeriesInactive) {
				log.Printf("[TopUpHandler] ⚠️ Skipping series %s: %v", p.SeriesID, err)
				return nil
			}
			log.Printf("[TopUpHandler] ❌ Top-up failed for series %s: %v", p.SeriesID, err)
			return err
		}
		if result.Created > 0 {
			log.Printf("[TopUpHandler] ⏰ Generated %d bookings for series %s", result.Created, p.SeriesID)
		}
		return nil
	}
}

func handleTopUpScan(series seriesRepo.SeriesRepository, enqueuer *Enqueuer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		active, err := series.ListActive()
		if err != nil {
			log.Printf("[TopUpScan] ❌ Failed to list active series: %v", err)
			return err
		}
		for _, s := range active {
			if err := enqueuer.EnqueueTopUp(s.ID); err != nil {
				log.Printf("[TopUpScan] ❌ Failed to enqueue series %s: %v", s.ID, err)
			}
		}
		log.Printf("[TopUpScan] ⏰ Enqueued top-ups for %d active series", len(active))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TopUpWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
