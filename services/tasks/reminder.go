package tasks

import (
	"encoding/json"
	"time"

	"freelanceai/models"

	"github.com/hibiken/asynq"
)

const TypeDeadlineReminder = "project:deadline_reminder"

// Enqueuer is the slice of asynq.Client the services need; tests swap in a
// recording fake.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewDeadlineReminderTask schedules a reminder to fire at the given time,
// typically 24 hours before a project or task deadline.
func NewDeadlineReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeadlineReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
