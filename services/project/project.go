package project

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	projectRepo "freelanceai/database/repository/project"
	"freelanceai/models"
	"freelanceai/services/storage"
	"freelanceai/services/tasks"
	"freelanceai/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before a deadline the reminder fires.
const reminderLead = 24 * time.Hour

// Service manages projects and their tasks, comments, files and messages.
type Service interface {
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task *models.ProjectTask) (*models.ProjectTask, error)
	ListTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error)
	UpdateTask(ctx context.Context, task *models.ProjectTask) (*models.ProjectTask, error)
	DeleteTask(ctx context.Context, id string) error

	AddComment(ctx context.Context, comment *models.ProjectComment) (*models.ProjectComment, error)
	ListComments(ctx context.Context, projectID string) ([]models.ProjectComment, error)

	UploadFile(ctx context.Context, file *models.ProjectFile, content io.Reader) (*models.ProjectFile, error)
	ListFiles(ctx context.Context, projectID string) ([]models.ProjectFile, error)
	FileURL(ctx context.Context, projectID, fileID string) (string, error)
	DeleteFile(ctx context.Context, id string) error

	SendMessage(ctx context.Context, message *models.ProjectMessage) (*models.ProjectMessage, error)
	ListMessages(ctx context.Context, projectID string) ([]models.ProjectMessage, error)
	MarkMessagesRead(ctx context.Context, projectID, recipientID string) error
}

type DefaultService struct {
	Repo     projectRepo.Repository
	Storage  storage.StorageService
	Pub      *redis.Client
	Enqueuer tasks.Enqueuer
	Logger   *zap.Logger
}

func NewService(repo projectRepo.Repository, store storage.StorageService, pub *redis.Client, enq tasks.Enqueuer, logger *zap.Logger) *DefaultService {
	return &DefaultService{Repo: repo, Storage: store, Pub: pub, Enqueuer: enq, Logger: logger}
}

func (s *DefaultService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.ID = uuid.NewString()
	if project.Status == "" {
		project.Status = models.ProjectStatusPending
	}
	if project.Currency == "" {
		project.Currency = "EUR"
	}

	if err := s.Repo.Create(ctx, project); err != nil {
		return nil, err
	}

	if project.Deadline != nil {
		s.scheduleReminder(models.ReminderPayload{
			ProjectID: project.ID,
			UserID:    project.ClientID,
			Title:     project.Title,
			DueAt:     *project.Deadline,
		})
	}

	s.Logger.Info("project created",
		zap.String("projectId", project.ID),
		zap.String("clientId", project.ClientID))
	return project, nil
}

func (s *DefaultService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultService) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	existing, err := s.Repo.GetByID(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, project); err != nil {
		return nil, err
	}

	// A new or moved deadline gets a fresh reminder.
	if project.Deadline != nil && (existing.Deadline == nil || !existing.Deadline.Equal(*project.Deadline)) {
		s.scheduleReminder(models.ReminderPayload{
			ProjectID: project.ID,
			UserID:    project.ClientID,
			Title:     project.Title,
			DueAt:     *project.Deadline,
		})
	}
	return project, nil
}

func (s *DefaultService) DeleteProject(ctx context.Context, id string) error {
	files, err := s.Repo.ListFiles(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, f := range files {
		if err := s.Storage.DeleteFile(ctx, f.FilePath); err != nil {
			s.Logger.Warn("failed to delete stored file",
				zap.String("fileId", f.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultService) CreateTask(ctx context.Context, task *models.ProjectTask) (*models.ProjectTask, error) {
	if _, err := s.Repo.GetByID(ctx, task.ProjectID); err != nil {
		return nil, err
	}

	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	if task.DueDate != nil {
		s.scheduleReminder(models.ReminderPayload{
			ProjectID: task.ProjectID,
			TaskID:    task.ID,
			UserID:    task.AssignedTo,
			Title:     task.Title,
			DueAt:     *task.DueDate,
		})
	}
	return task, nil
}

func (s *DefaultService) ListTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	return s.Repo.ListTasks(ctx, projectID)
}

func (s *DefaultService) UpdateTask(ctx context.Context, task *models.ProjectTask) (*models.ProjectTask, error) {
	if err := s.Repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *DefaultService) DeleteTask(ctx context.Context, id string) error {
	return s.Repo.DeleteTask(ctx, id)
}

func (s *DefaultService) AddComment(ctx context.Context, comment *models.ProjectComment) (*models.ProjectComment, error) {
	if _, err := s.Repo.GetByID(ctx, comment.ProjectID); err != nil {
		return nil, err
	}

	comment.ID = uuid.NewString()
	if err := s.Repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *DefaultService) ListComments(ctx context.Context, projectID string) ([]models.ProjectComment, error) {
	return s.Repo.ListComments(ctx, projectID)
}

// UploadFile stores the content with the storage provider and records the
// attachment. FilePath ends up holding the provider's public ID.
func (s *DefaultService) UploadFile(ctx context.Context, file *models.ProjectFile, content io.Reader) (*models.ProjectFile, error) {
	if _, err := s.Repo.GetByID(ctx, file.ProjectID); err != nil {
		return nil, err
	}

	file.ID = uuid.NewString()
	publicID, err := s.Storage.UploadFile(ctx, content, file.ID, "projects/"+file.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	file.FilePath = publicID

	if err := s.Repo.CreateFile(ctx, file); err != nil {
		// Don't leave an orphan in storage.
		if delErr := s.Storage.DeleteFile(ctx, publicID); delErr != nil {
			s.Logger.Warn("failed to clean up orphaned upload",
				zap.String("publicId", publicID), zap.Error(delErr))
		}
		return nil, err
	}
	return file, nil
}

func (s *DefaultService) ListFiles(ctx context.Context, projectID string) ([]models.ProjectFile, error) {
	return s.Repo.ListFiles(ctx, projectID)
}

func (s *DefaultService) FileURL(ctx context.Context, projectID, fileID string) (string, error) {
	files, err := s.Repo.ListFiles(ctx, projectID)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.ID == fileID {
			return s.Storage.GetDownloadURL(ctx, f.FilePath, time.Hour)
		}
	}
	return "", projectRepo.ErrNotFound
}

func (s *DefaultService) DeleteFile(ctx context.Context, id string) error {
	file, err := s.Repo.DeleteFile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteFile(ctx, file.FilePath); err != nil {
		s.Logger.Warn("failed to delete stored file",
			zap.String("fileId", id), zap.Error(err))
	}
	return nil
}

// SendMessage persists the message and fans it out on the project's chat
// channel so connected clients see it live.
func (s *DefaultService) SendMessage(ctx context.Context, message *models.ProjectMessage) (*models.ProjectMessage, error) {
	if _, err := s.Repo.GetByID(ctx, message.ProjectID); err != nil {
		return nil, err
	}

	message.ID = uuid.NewString()
	message.IsRead = false
	if err := s.Repo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		b, err := json.Marshal(message)
		if err == nil {
			channel := utils.ChatChannelPrefix + message.ProjectID
			if err := s.Pub.Publish(ctx, channel, b).Err(); err != nil {
				s.Logger.Warn("chat publish failed",
					zap.String("projectId", message.ProjectID), zap.Error(err))
			}
		}
	}
	return message, nil
}

func (s *DefaultService) ListMessages(ctx context.Context, projectID string) ([]models.ProjectMessage, error) {
	return s.Repo.ListMessages(ctx, projectID)
}

func (s *DefaultService) MarkMessagesRead(ctx context.Context, projectID, recipientID string) error {
	return s.Repo.MarkMessagesRead(ctx, projectID, recipientID)
}

// scheduleReminder enqueues a deadline reminder. Deadlines closer than the
// lead time still get a reminder, fired immediately. Scheduling problems
// are logged, never surfaced: the project write already succeeded.
func (s *DefaultService) scheduleReminder(payload models.ReminderPayload) {
	if s.Enqueuer == nil {
		return
	}

	fireAt := payload.DueAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task, opts, err := tasks.NewDeadlineReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Enqueuer.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue reminder",
			zap.String("projectId", payload.ProjectID), zap.Error(err))
	}
}
