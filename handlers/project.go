package handlers

import (
	"errors"
	"net/http"

	projectRepo "freelanceai/database/repository/project"
	"freelanceai/models"
	"freelanceai/services/project"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler exposes project management: the project itself plus its
// tasks, comments, files and chat messages.
type ProjectHandler struct {
	Svc    project.Service
	Logger *zap.Logger
}

func NewProjectHandler(svc project.Service, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

func (h *ProjectHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, projectRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	h.Logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project", "message": err.Error()})
		return
	}
	if p.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	p.ClientID = c.GetString("userID")

	created, err := h.Svc.CreateProject(c.Request.Context(), &p)
	if err != nil {
		h.fail(c, err, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /api/projects: every project the caller participates in.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.ListProjects(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.fail(c, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project", "message": err.Error()})
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Svc.UpdateProject(c.Request.Context(), &p)
	if err != nil {
		h.fail(c, err, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

// CreateTask handles POST /api/projects/:id/tasks.
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	var t models.ProjectTask
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task", "message": err.Error()})
		return
	}
	t.ProjectID = c.Param("id")

	created, err := h.Svc.CreateTask(c.Request.Context(), &t)
	if err != nil {
		h.fail(c, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTasks handles GET /api/projects/:id/tasks.
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	tasks, err := h.Svc.ListTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// UpdateTask handles PUT /api/projects/:id/tasks/:taskId.
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	var t models.ProjectTask
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task", "message": err.Error()})
		return
	}
	t.ID = c.Param("taskId")
	t.ProjectID = c.Param("id")

	updated, err := h.Svc.UpdateTask(c.Request.Context(), &t)
	if err != nil {
		h.fail(c, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTask handles DELETE /api/projects/:id/tasks/:taskId.
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	if err := h.Svc.DeleteTask(c.Request.Context(), c.Param("taskId")); err != nil {
		h.fail(c, err, "failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// AddComment handles POST /api/projects/:id/comments.
func (h *ProjectHandler) AddComment(c *gin.Context) {
	var cm models.ProjectComment
	if err := c.ShouldBindJSON(&cm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment", "message": err.Error()})
		return
	}
	cm.ProjectID = c.Param("id")
	cm.UserID = c.GetString("userID")

	created, err := h.Svc.AddComment(c.Request.Context(), &cm)
	if err != nil {
		h.fail(c, err, "failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListComments handles GET /api/projects/:id/comments.
func (h *ProjectHandler) ListComments(c *gin.Context) {
	comments, err := h.Svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list comments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// UploadFile handles POST /api/projects/:id/files (multipart form, field
// "file").
func (h *ProjectHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "message": err.Error()})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()

	record := &models.ProjectFile{
		ProjectID: c.Param("id"),
		UserID:    c.GetString("userID"),
		FileName:  fileHeader.Filename,
		FileSize:  fileHeader.Size,
		FileType:  fileHeader.Header.Get("Content-Type"),
	}
	created, err := h.Svc.UploadFile(c.Request.Context(), record, f)
	if err != nil {
		h.fail(c, err, "failed to upload file")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListFiles handles GET /api/projects/:id/files.
func (h *ProjectHandler) ListFiles(c *gin.Context) {
	files, err := h.Svc.ListFiles(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list files")
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// FileURL handles GET /api/projects/:id/files/:fileId/url.
func (h *ProjectHandler) FileURL(c *gin.Context) {
	url, err := h.Svc.FileURL(c.Request.Context(), c.Param("id"), c.Param("fileId"))
	if err != nil {
		h.fail(c, err, "failed to resolve file URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteFile handles DELETE /api/projects/:id/files/:fileId.
func (h *ProjectHandler) DeleteFile(c *gin.Context) {
	if err := h.Svc.DeleteFile(c.Request.Context(), c.Param("fileId")); err != nil {
		h.fail(c, err, "failed to delete file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// SendMessage handles POST /api/projects/:id/messages.
func (h *ProjectHandler) SendMessage(c *gin.Context) {
	var m models.ProjectMessage
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message", "message": err.Error()})
		return
	}
	m.ProjectID = c.Param("id")
	m.SenderID = c.GetString("userID")

	sent, err := h.Svc.SendMessage(c.Request.Context(), &m)
	if err != nil {
		h.fail(c, err, "failed to send message")
		return
	}
	c.JSON(http.StatusCreated, sent)
}

// ListMessages handles GET /api/projects/:id/messages and marks the
// caller's messages as read.
func (h *ProjectHandler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")
	userID := c.GetString("userID")

	messages, err := h.Svc.ListMessages(ctx, projectID)
	if err != nil {
		h.fail(c, err, "failed to list messages")
		return
	}
	if err := h.Svc.MarkMessagesRead(ctx, projectID, userID); err != nil {
		h.Logger.Warn("failed to mark messages read",
			zap.String("projectId", projectID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
