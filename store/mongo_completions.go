package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecowaste-be/models"
)

// MongoCompletionStore implements CompletionStore on a MongoDB collection
// with a unique (userId, moduleId) index.
type MongoCompletionStore struct {
	coll *mongo.Collection
}

func NewMongoCompletionStore(coll *mongo.Collection) *MongoCompletionStore {
	return &MongoCompletionStore{coll: coll}
}

// EnsureCompletionIndex creates the unique compound index that makes the
// upsert atomic per (user, module) pair.
func EnsureCompletionIndex(ctx context.Context, coll *mongo.Collection) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "moduleId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := coll.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (s *MongoCompletionStore) Upsert(ctx context.Context, c models.TrainingCompletion) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": c.UserID, "moduleId": c.ModuleID},
		bson.M{"$set": bson.M{
			"score":       c.Score,
			"completedAt": c.CompletedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoCompletionStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TrainingCompletion, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	completions := make([]models.TrainingCompletion, 0)
	if err := cursor.All(ctx, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}
