package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freelanceai/config"
	projectRepo "freelanceai/database/repository/project"
	"freelanceai/models"
	"freelanceai/services/project"
	"freelanceai/services/tasks"
	"freelanceai/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the deadline reminder worker in the background.
func InitReminderWorker(projSvc project.Service) *asynq.Server {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
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
	mux.HandleFunc(tasks.TypeDeadlineReminder, handleDeadlineReminder(projSvc, logger))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()

	return srv
}

// handleDeadlineReminder drops a system message into the project chat when a
// deadline approaches.
func handleDeadlineReminder(projSvc project.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		content := fmt.Sprintf("Rappel : l'échéance « %s » arrive le %s.",
			p.Title, p.DueAt.Format("02/01/2006 15:04"))

		_, err := projSvc.SendMessage(ctx, &models.ProjectMessage{
			SenderID:    "system",
			RecipientID: p.UserID,
			ProjectID:   p.ProjectID,
			Content:     content,
		})
		if errors.Is(err, projectRepo.ErrNotFound) {
			// The project is gone; nothing left to remind about.
			logger.Debug("dropping reminder for deleted project",
				zap.String("projectId", p.ProjectID))
			return nil
		}
		if err != nil {
			logger.Error("failed to deliver reminder",
				zap.String("projectId", p.ProjectID), zap.Error(err))
			return err
		}

		logger.Info("deadline reminder delivered",
			zap.String("projectId", p.ProjectID),
			zap.String("taskId", p.TaskID))
		return nil
	}
}
