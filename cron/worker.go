package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/calendar"
	"slotwise/services/preferences"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAgendaDigest = "digest:agenda"

const digestTTL = 48 * time.Hour

func digestKey(userID, date string) string {
	return fmt.Sprintf("digest:%s:%s", userID, date)
}

// InitDigestWorker runs the async digest worker in background. Each task
// recomputes a user's free slots for one day from live calendar busy data and
// stored preferences, then caches the digest so the assistant can answer
// "what does my day look like" without a live search.
func InitDigestWorker(engine scheduling.SchedulingEngine, prefsStore preferences.Store, fetcher calendar.BusyFetcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAgendaDigest, handleDigestTask(engine, prefsStore, fetcher))

	go func() {
		log.Println("[DigestWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DigestWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[DigestWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// NewDigestClient returns an asynq client for enqueueing digest tasks.
func NewDigestClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// EnqueueAgendaDigest schedules a digest recomputation for one user and day.
func EnqueueAgendaDigest(client *asynq.Client, payload models.AgendaDigestPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = client.Enqueue(asynq.NewTask(TypeAgendaDigest, b))
	return err
}

func handleDigestTask(engine scheduling.SchedulingEngine, prefsStore preferences.Store, fetcher calendar.BusyFetcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AgendaDigestPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DigestHandler] invalid payload: %v", err)
			return err
		}
		if fetcher == nil {
			log.Printf("[DigestHandler] calendar integration disabled, skipping digest for %s", p.UserID)
			return nil
		}

		day, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			log.Printf("[DigestHandler] invalid date %q: %v", p.Date, err)
			return err
		}
		windowStart := day
		windowEnd := day.AddDate(0, 0, 1)

		busy, err := fetcher.FetchBusy(ctx, p.CalendarID, windowStart, windowEnd)
		if err != nil {
			return fmt.Errorf("digest fetch busy: %w", err)
		}

		prefs, err := prefsStore.Get(ctx, p.UserID)
		if err != nil {
			return fmt.Errorf("digest load preferences: %w", err)
		}

		slotMinutes := config.AppConfig.DigestSlotMinutes
		if slotMinutes <= 0 {
			slotMinutes = 30
		}
		slots, err := engine.Availability(ctx, busy, windowStart, windowEnd, slotMinutes, *prefs, 0)
		if err != nil {
			return fmt.Errorf("digest availability: %w", err)
		}

		digest := models.AgendaDigest{
			UserID:      p.UserID,
			Date:        p.Date,
			Slots:       slots,
			GeneratedAt: time.Now(),
		}
		b, err := json.Marshal(digest)
		if err != nil {
			return err
		}
		if err := utils.GetCacheClient().Set(ctx, digestKey(p.UserID, p.Date), b, digestTTL).Err(); err != nil {
			return fmt.Errorf("digest cache write: %w", err)
		}

		log.Printf("[DigestHandler] cached agenda digest for %s on %s (%d slots)", p.UserID, p.Date, len(slots))
		return nil
	}
}

// LoadDigest reads a cached digest back; ok is false when none exists.
func LoadDigest(ctx context.Context, userID, date string) (*models.AgendaDigest, bool, error) {
	data, err := utils.GetCacheClient().Get(ctx, digestKey(userID, date)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var digest models.AgendaDigest
	if err := json.Unmarshal([]byte(data), &digest); err != nil {
		return nil, false, err
	}
	return &digest, true, nil
}
