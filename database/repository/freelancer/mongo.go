package freelancerRepo

import (
	"context"
	"fmt"

	"freelanceai/database"
	"freelanceai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo reads the catalog from the freelancers collection. The
// "relevant" ordering is the ascending _id order the records were seeded in.
type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo() *MongoRepo {
	coll := database.MongoClient.Database("freelanceai").Collection("freelancers")
	return &MongoRepo{coll: coll}
}

func (r *MongoRepo) GetAll(ctx context.Context) ([]models.Freelancer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("freelancer query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Freelancer
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode freelancers: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id int) (*models.Freelancer, error) {
	var f models.Freelancer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("freelancer lookup failed: %w", err)
	}
	return &f, nil
}

// EnsureSeed loads the built-in catalog into an empty collection so a fresh
// deployment has something to browse.
func (r *MongoRepo) EnsureSeed(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count freelancers: %w", err)
	}
	if count > 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(SeedCatalog()))
	for _, f := range SeedCatalog() {
		docs = append(docs, f)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed freelancers: %w", err)
	}
	return nil
}
