package models

import "time"

// Project statuses move through a simple lifecycle; no state machine is
// enforced beyond the allowed values.
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Project links a client with an optional freelancer.
type Project struct {
	ID           string     `json:"id" bson:"_id"`
	Title        string     `json:"title" bson:"title"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
	ClientID     string     `json:"clientId" bson:"clientId"`
	FreelancerID string     `json:"freelancerId,omitempty" bson:"freelancerId,omitempty"`
	Status       string     `json:"status" bson:"status"`
	Budget       float64    `json:"budget,omitempty" bson:"budget,omitempty"`
	Currency     string     `json:"currency" bson:"currency"`
	StartDate    *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type ProjectTask struct {
	ID          string     `json:"id" bson:"_id"`
	ProjectID   string     `json:"projectId" bson:"projectId"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      string     `json:"status" bson:"status"`
	AssignedTo  string     `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type ProjectComment struct {
	ID        string    `json:"id" bson:"_id"`
	ProjectID string    `json:"projectId" bson:"projectId"`
	TaskID    string    `json:"taskId,omitempty" bson:"taskId,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProjectFile records an uploaded attachment; FilePath is the storage
// provider's public ID, not a local path.
type ProjectFile struct {
	ID        string    `json:"id" bson:"_id"`
	ProjectID string    `json:"projectId" bson:"projectId"`
	TaskID    string    `json:"taskId,omitempty" bson:"taskId,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	FileName  string    `json:"fileName" bson:"fileName"`
	FilePath  string    `json:"filePath" bson:"filePath"`
	FileSize  int64     `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	FileType  string    `json:"fileType,omitempty" bson:"fileType,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type ProjectMessage struct {
	ID          string    `json:"id" bson:"_id"`
	SenderID    string    `json:"senderId" bson:"senderId"`
	RecipientID string    `json:"recipientId" bson:"recipientId"`
	ProjectID   string    `json:"projectId" bson:"projectId"`
	Content     string    `json:"content" bson:"content"`
	IsRead      bool      `json:"isRead" bson:"isRead"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// ReminderPayload is what the deadline reminder worker receives.
type ReminderPayload struct {
	ProjectID string    `json:"projectId"`
	TaskID    string    `json:"taskId,omitempty"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	DueAt     time.Time `json:"dueAt"`
}
