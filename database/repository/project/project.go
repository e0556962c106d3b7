package projectRepo

import (
	"context"
	"errors"

	"freelanceai/models"
)

var ErrNotFound = errors.New("project not found")

// Repository covers projects and the records hanging off them. Tasks,
// comments, files and messages live in their own collections keyed by
// projectId; there is no embedding, listings stay cheap.
type Repository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task *models.ProjectTask) error
	ListTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error)
	UpdateTask(ctx context.Context, task *models.ProjectTask) error
	DeleteTask(ctx context.Context, id string) error

	CreateComment(ctx context.Context, comment *models.ProjectComment) error
	ListComments(ctx context.Context, projectID string) ([]models.ProjectComment, error)

	CreateFile(ctx context.Context, file *models.ProjectFile) error
	ListFiles(ctx context.Context, projectID string) ([]models.ProjectFile, error)
	DeleteFile(ctx context.Context, id string) (*models.ProjectFile, error)

	CreateMessage(ctx context.Context, message *models.ProjectMessage) error
	ListMessages(ctx context.Context, projectID string) ([]models.ProjectMessage, error)
	MarkMessagesRead(ctx context.Context, projectID, recipientID string) error
}
