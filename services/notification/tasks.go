package notification

import (
	"encoding/json"
	"time"

	"sanara/models"

	"github.com/hibiken/asynq"
)

const TypeDeliverNotification = "notification:deliver"

// NewNotificationTask builds an asynq task that fires at the message's
// scheduled time.
func NewNotificationTask(payload models.NotificationMessage) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeliverNotification, b)
	opts := []asynq.Option{asynq.ProcessAt(payload.ScheduledFor)}

	return task, opts, nil
}

// ReminderOffsets converts configured hour offsets into fire times before the
// appointment start, dropping any that are already in the past.
func ReminderOffsets(start time.Time, hoursBefore []int, now time.Time) []time.Time {
	var fireTimes []time.Time
	for _, h := range hoursBefore {
		fireAt := start.Add(-time.Duration(h) * time.Hour)
		if fireAt.After(now) {
			fireTimes = append(fireTimes, fireAt)
		}
	}
	return fireTimes
}
