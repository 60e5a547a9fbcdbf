package repository

import (
	"context"
	"time"

	"capstone-backend/app/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityCollection = "project_activities"

// ActivityRepository timeline aktivitas project di MongoDB.
type ActivityRepository interface {
	Insert(ctx context.Context, a *model.ProjectActivity) error
	// ListByProject terbaru lebih dulu; limit <= 0 berarti 50.
	ListByProject(ctx context.Context, projectID string, limit int64) ([]model.ProjectActivity, error)
}

type activityRepository struct {
	mongo *mongo.Database
}

func NewActivityRepository(mongoDB *mongo.Database) ActivityRepository {
	return &activityRepository{mongo: mongoDB}
}

// EnsureActivityIndexes membuat index (projectId, createdAt) untuk query timeline.
func EnsureActivityIndexes(ctx context.Context, mongoDB *mongo.Database) error {
	_, err := mongoDB.Collection(activityCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}}},
	})
	return errors.Wrap(err, "create activity indexes")
}

func (r *activityRepository) Insert(ctx context.Context, a *model.ProjectActivity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.mongo.Collection(activityCollection).InsertOne(ctx, a)
	return errors.Wrap(err, "insert activity")
}

func (r *activityRepository) ListByProject(ctx context.Context, projectID string, limit int64) ([]model.ProjectActivity, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.mongo.Collection(activityCollection).Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find activities")
	}
	defer cur.Close(ctx)

	out := []model.ProjectActivity{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode activities")
	}
	return out, nil
}
