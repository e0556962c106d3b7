package projectRepo

import (
	"context"
	"fmt"
	"time"

	"freelanceai/database"
	"freelanceai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository across the project collections.
type MongoRepo struct {
	projects *mongo.Collection
	tasks    *mongo.Collection
	comments *mongo.Collection
	files    *mongo.Collection
	messages *mongo.Collection
}

func NewMongoRepo() *MongoRepo {
	db := database.MongoClient.Database("freelanceai")
	repo := &MongoRepo{
		projects: db.Collection("projects"),
		tasks:    db.Collection("project_tasks"),
		comments: db.Collection("project_comments"),
		files:    db.Collection("project_files"),
		messages: db.Collection("project_messages"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.ensureIndexes(ctx); err != nil {
		fmt.Printf("failed to create project indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRepo) ensureIndexes(ctx context.Context) error {
	byProject := mongo.IndexModel{Keys: bson.D{{Key: "projectId", Value: 1}}}
	for _, coll := range []*mongo.Collection{r.tasks, r.comments, r.files, r.messages} {
		if _, err := coll.Indexes().CreateOne(ctx, byProject); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll.Name(), err)
		}
	}
	_, err := r.projects.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
		{Keys: bson.D{{Key: "freelancerId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create project indexes: %w", err)
	}
	return nil
}

func (r *MongoRepo) Create(ctx context.Context, project *models.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.projects.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	return &p, nil
}

// ListByUser returns every project the user participates in, client or
// freelancer side, newest first.
func (r *MongoRepo) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	filter := bson.M{"$or": []bson.M{
		{"clientId": userID},
		{"freelancerId": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.projects.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("project query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Project
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	result, err := r.projects.UpdateOne(ctx, bson.M{"_id": project.ID}, bson.M{"$set": project})
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project and everything hanging off it.
func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	result, err := r.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	filter := bson.M{"projectId": id}
	for _, coll := range []*mongo.Collection{r.tasks, r.comments, r.files, r.messages} {
		if _, err := coll.DeleteMany(ctx, filter); err != nil {
			return fmt.Errorf("failed to clear %s for project %s: %w", coll.Name(), id, err)
		}
	}
	return nil
}

func (r *MongoRepo) CreateTask(ctx context.Context, task *models.ProjectTask) error {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := r.tasks.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *MongoRepo) ListTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.tasks.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("task query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ProjectTask
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) UpdateTask(ctx context.Context, task *models.ProjectTask) error {
	task.UpdatedAt = time.Now()

	result, err := r.tasks.UpdateOne(ctx, bson.M{"_id": task.ID}, bson.M{"$set": task})
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteTask(ctx context.Context, id string) error {
	result, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) CreateComment(ctx context.Context, comment *models.ProjectComment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *MongoRepo) ListComments(ctx context.Context, projectID string) ([]models.ProjectComment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("comment query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ProjectComment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) CreateFile(ctx context.Context, file *models.ProjectFile) error {
	file.CreatedAt = time.Now()

	if _, err := r.files.InsertOne(ctx, file); err != nil {
		return fmt.Errorf("failed to record file: %w", err)
	}
	return nil
}

func (r *MongoRepo) ListFiles(ctx context.Context, projectID string) ([]models.ProjectFile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.files.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("file query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ProjectFile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}
	return out, nil
}

// DeleteFile removes the record and returns it so the caller can clean up
// the stored object.
func (r *MongoRepo) DeleteFile(ctx context.Context, id string) (*models.ProjectFile, error) {
	var f models.ProjectFile
	err := r.files.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete file %s: %w", id, err)
	}
	return &f, nil
}

func (r *MongoRepo) CreateMessage(ctx context.Context, message *models.ProjectMessage) error {
	message.CreatedAt = time.Now()

	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MongoRepo) ListMessages(ctx context.Context, projectID string) ([]models.ProjectMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("message query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ProjectMessage
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) MarkMessagesRead(ctx context.Context, projectID, recipientID string) error {
	filter := bson.M{"projectId": projectID, "recipientId": recipientID, "isRead": false}
	_, err := r.messages.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
