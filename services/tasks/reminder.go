package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"amora/config"
	"amora/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how far ahead of the scheduled date the reminder
// fires.
const ReminderLeadTime = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues date reminders on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleDateReminder enqueues a reminder ahead of the booking's scheduled
// time. Bookings too close to fire are skipped rather than reminded late.
func (s *ReminderScheduler) ScheduleDateReminder(record models.BookingRecord) error {
	fireAt := record.ScheduledAt.Add(-ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ReminderID:  uuid.New().String(),
		BookingID:   record.ID,
		CompanionID: record.CompanionID,
		Title:       "Upcoming date",
		Body:        fmt.Sprintf("Reminder: %s on %s at %s.", record.PackageName, record.ScheduledAt.Format("Jan 2"), record.Time),
		FireDate:    record.ScheduledAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", record.ID, err)
	}
	return nil
}
