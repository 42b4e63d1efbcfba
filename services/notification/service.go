package notification

import (
	"context"
	"fmt"
	"time"

	"sanara/config"
	"sanara/models"
	"sanara/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqNotificationService enqueues notification tasks on the Redis-backed
// queue; the worker in cron/ picks them up at their scheduled time.
type AsynqNotificationService struct {
	Client *asynq.Client
}

// NewAsynqNotificationService builds a service on a fresh asynq client.
func NewAsynqNotificationService() *AsynqNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqNotificationService{Client: client}
}

// ScheduleAppointmentNotifications enqueues a confirmation now and reminders
// at each configured offset before the start time.
func (s *AsynqNotificationService) ScheduleAppointmentNotifications(ctx context.Context, appointment *models.Appointment) error {
	now := time.Now()

	messages := []models.NotificationMessage{
		{
			AppointmentID: appointment.ID,
			PatientID:     appointment.PatientID,
			Type:          models.NotificationConfirmation,
			ScheduledFor:  now,
		},
	}
	for _, fireAt := range ReminderOffsets(appointment.StartTime, config.AppConfig.ReminderHoursBefore, now) {
		messages = append(messages, models.NotificationMessage{
			AppointmentID: appointment.ID,
			PatientID:     appointment.PatientID,
			Type:          models.NotificationReminder,
			ScheduledFor:  fireAt,
		})
	}

	return s.enqueueAll(ctx, messages)
}

// NotifyCancellation enqueues an immediate cancellation message.
func (s *AsynqNotificationService) NotifyCancellation(ctx context.Context, appointment *models.Appointment) error {
	msg := models.NotificationMessage{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		Type:          models.NotificationCancellation,
		ScheduledFor:  time.Now(),
	}
	return s.enqueueAll(ctx, []models.NotificationMessage{msg})
}

func (s *AsynqNotificationService) enqueueAll(ctx context.Context, messages []models.NotificationMessage) error {
	logger := utils.GetLogger()

	for _, msg := range messages {
		task, opts, err := NewNotificationTask(msg)
		if err != nil {
			return fmt.Errorf("failed to build notification task: %w", err)
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue %s notification for appointment %s: %w", msg.Type, msg.AppointmentID, err)
		}
		logger.Info("notification enqueued",
			zap.String("appointmentID", msg.AppointmentID),
			zap.String("type", string(msg.Type)),
			zap.Time("scheduledFor", msg.ScheduledFor))
	}
	return nil
}
