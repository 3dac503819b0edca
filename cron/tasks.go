package cron

import (
	"encoding/json"
	"fmt"

	"pawcare/config"

	"github.com/hibiken/asynq"
)

const (
	// TypeSeriesTopUp tops up a single recurring series.
	TypeSeriesTopUp = "recurring:topup"
	// TypeTopUpScan enqueues a top-up for every active series.
	TypeTopUpScan = "recurring:topup_scan"
)

// TopUpPayload identifies the series a top-up task operates on.
type TopUpPayload struct {
	SeriesID string `json:"series_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}
}

// Enqueuer pushes top-up tasks onto the job queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer constructs an Enqueuer backed by the configured Redis queue.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueueTopUp schedules a background top-up for one series.
func (e *Enqueuer) EnqueueTopUp(seriesID string) error {
	payload, err := json.Marshal(TopUpPayload{SeriesID: seriesID})
	if err != nil {
		return fmt.Errorf("failed to marshal top-up payload: %w", err)
	}
	task := asynq.NewTask(TypeSeriesTopUp, payload)
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue top-up for series %s: %w", seriesID, err)
	}
	return nil
}

// Close releases the underlying queue client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
